package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"

	"worldcup-stats-service/internal/bracket"
	"worldcup-stats-service/internal/domain/tournaments"
	"worldcup-stats-service/internal/providers"
)

// StaticSource serves dataset files from memory.
type StaticSource struct {
	Files map[string][]byte
	Calls atomic.Int32
}

func (s *StaticSource) Open(ctx context.Context, name string) ([]byte, error) {
	s.Calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := s.Files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", providers.ErrNotFound, name)
	}
	return data, nil
}

// ErrSource always returns Err.
type ErrSource struct {
	Err error
}

func (s ErrSource) Open(ctx context.Context, name string) ([]byte, error) {
	return nil, s.Err
}

// SampleSource encodes SampleDataset in the on-disk formats.
func SampleSource() *StaticSource {
	ds := SampleDataset()
	return &StaticSource{Files: map[string][]byte{
		providers.FileTournaments: tournamentsCSV(ds.Tournaments),
		providers.FileMatches:     matchesJSON(),
		providers.FileBracket:     bracketCSV(ds.Bracket),
		providers.FileCountries:   mustJSON(ds.Countries),
	}}
}

func tournamentsCSV(list []tournaments.Tournament) []byte {
	var b strings.Builder
	b.WriteString("EDITION,YEAR,HOST,HOST_COUNTRY_CODE,WINNER,RUNNER_UP,TEAMS,MATCHES,GOALS,AVERAGE_GOALS,AVERAGE_ATTENDANCE,WIN_LON,WIN_LAT,RUP_LON,RUP_LAT,TEAM_LIST,TEAM_NAMES\n")
	for _, t := range list {
		fmt.Fprintf(&b, "%s,%d,%s,%s,%s,%s,%d,%d,%d,%.2f,%d,%g,%g,%g,%g,%q,%q\n",
			t.Edition, t.Year, t.Host, t.HostCountryCode, t.Winner, t.RunnerUp,
			t.Teams, t.Matches, t.Goals, t.AverageGoals, t.AverageAttendance,
			t.WinnerPos.Lon, t.WinnerPos.Lat, t.RunnerUpPos.Lon, t.RunnerUpPos.Lat,
			strings.Join(t.TeamISO, ","), strings.Join(t.TeamNames, ","))
	}
	return []byte(b.String())
}

func bracketCSV(entries []bracket.Entry) []byte {
	var b strings.Builder
	b.WriteString("Team,Opponent,Wins,Losses,Goals Made,Goals Conceded,ParentGame\n")
	for _, e := range entries {
		parent := ""
		if e.ParentGame != bracket.NoParent {
			parent = fmt.Sprint(e.ParentGame)
		}
		fmt.Fprintf(&b, "%s,%s,%d,%d,%d,%d,%s\n", e.Team, e.Opponent, e.Wins, e.Losses, e.GoalsMade, e.GoalsConceded, parent)
	}
	return []byte(b.String())
}

func matchesJSON() []byte {
	type value struct {
		GoalsMade     int               `json:"Goals Made"`
		GoalsConceded int               `json:"Goals Conceded"`
		Wins          int               `json:"Wins"`
		Losses        int               `json:"Losses"`
		TotalGames    int               `json:"TotalGames,omitempty"`
		Result        map[string]string `json:"Result"`
		Type          string            `json:"type"`
		Games         []map[string]any  `json:"games,omitempty"`
	}
	out := []map[string]any{}
	for _, team := range SampleTeams() {
		games := []map[string]any{}
		for _, g := range team.Games {
			games = append(games, map[string]any{"key": g.Opponent, "value": value{
				GoalsMade: g.GoalsMade, GoalsConceded: g.GoalsConceded, Wins: g.Wins, Losses: g.Losses,
				Result: map[string]string{"label": g.Result.Label}, Type: "game",
			}})
		}
		out = append(out, map[string]any{"key": team.Team, "value": value{
			GoalsMade: team.GoalsMade, GoalsConceded: team.GoalsConceded, Wins: team.Wins, Losses: team.Losses,
			TotalGames: team.TotalGames, Result: map[string]string{"label": team.Result.Label}, Type: "aggregate", Games: games,
		}})
	}
	return mustJSON(out)
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
