package testutil

import (
	"worldcup-stats-service/internal/bracket"
	"worldcup-stats-service/internal/domain/results"
	"worldcup-stats-service/internal/domain/tournaments"
	"worldcup-stats-service/internal/geo"
	"worldcup-stats-service/internal/providers"
)

// SampleTeams returns two quarterfinal-style team records: Brazil with two games, Germany with one.
func SampleTeams() []results.TeamRecord {
	return []results.TeamRecord{
		{
			Team: "Brazil", Wins: 1, Losses: 1, TotalGames: 2, GoalsMade: 4, GoalsConceded: 8,
			Result: results.NewResult(results.RoundFourthPlace),
			Games: []results.GameRecord{
				{Opponent: "Croatia", GoalsMade: 3, GoalsConceded: 1, Wins: 1, Result: results.NewResult(results.RoundGroup)},
				{Opponent: "Germany", GoalsMade: 1, GoalsConceded: 7, Losses: 1, Result: results.NewResult(results.RoundSemiFinals)},
			},
		},
		{
			Team: "Germany", Wins: 1, TotalGames: 1, GoalsMade: 7, GoalsConceded: 1,
			Result: results.NewResult(results.RoundWinner),
			Games: []results.GameRecord{
				{Opponent: "Brazil", GoalsMade: 7, GoalsConceded: 1, Wins: 1, Result: results.NewResult(results.RoundSemiFinals)},
			},
		},
	}
}

// SampleDataset builds a small but complete dataset around SampleTeams.
func SampleDataset() providers.Dataset {
	return providers.Dataset{
		Tournaments: []tournaments.Tournament{
			{
				Edition: "2010 FIFA World Cup South Africa", Year: 2010, Host: "South Africa", HostCountryCode: "ZAF",
				Winner: "Spain", RunnerUp: "Netherlands", Teams: 32, Matches: 64, Goals: 145, AverageGoals: 2.27, AverageAttendance: 49670,
				TeamISO: []string{"ZAF", "ESP", "NLD", "DEU", "BRA"}, TeamNames: []string{"South Africa", "Spain", "Netherlands", "Germany", "Brazil"},
			},
			{
				Edition: "2014 FIFA World Cup Brazil", Year: 2014, Host: "Brazil", HostCountryCode: "BRA",
				Winner: "Germany", RunnerUp: "Argentina", Teams: 32, Matches: 64, Goals: 171, AverageGoals: 2.67, AverageAttendance: 53592,
				WinnerPos:   tournaments.Position{Lon: 10.5, Lat: 51.2},
				RunnerUpPos: tournaments.Position{Lon: -64, Lat: -34},
				TeamISO:     []string{"BRA", "HRV", "DEU", "ARG"}, TeamNames: []string{"Brazil", "Croatia", "Germany", "Argentina"},
			},
		},
		Teams: SampleTeams(),
		Bracket: []bracket.Entry{
			{Team: "Germany", Opponent: "Argentina", Wins: 1, GoalsMade: 1, ParentGame: bracket.NoParent},
			{Team: "Germany", Opponent: "Brazil", Wins: 1, GoalsMade: 7, GoalsConceded: 1, ParentGame: 0},
			{Team: "Argentina", Opponent: "Netherlands", Wins: 1, ParentGame: 0},
		},
		Countries: []geo.Country{
			{ID: "ARG", Name: "Argentina"},
			{ID: "BRA", Name: "Brazil"},
			{ID: "DEU", Name: "Germany"},
			{ID: "FRA", Name: "France"},
		},
	}
}
