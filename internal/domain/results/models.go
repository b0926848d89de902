package results

// Round labels as they appear in the matches dataset.
const (
	RoundWinner        = "Winner"
	RoundRunnerUp      = "Runner-Up"
	RoundThirdPlace    = "Third Place"
	RoundFourthPlace   = "Fourth Place"
	RoundSemiFinals    = "Semi Finals"
	RoundQuarterFinals = "Quarter Finals"
	RoundOfSixteen     = "Round of Sixteen"
	RoundGroup         = "Group"
)

var rankings = map[string]int{
	RoundWinner:        7,
	RoundRunnerUp:      6,
	RoundThirdPlace:    5,
	RoundFourthPlace:   4,
	RoundSemiFinals:    3,
	RoundQuarterFinals: 2,
	RoundOfSixteen:     1,
	RoundGroup:         0,
}

// Ranking converts a round label into its ordinal value (Group = 0, Winner = 7).
// Unknown labels rank as Group.
func Ranking(label string) int {
	return rankings[label]
}

// Result is the furthest round reached (aggregate) or the round a game was played in (game).
type Result struct {
	Label   string `json:"label"`
	Ranking int    `json:"ranking"`
}

// NewResult builds a Result with the ranking derived from the label.
func NewResult(label string) Result {
	return Result{Label: label, Ranking: Ranking(label)}
}

// IsGroupStage reports whether the result belongs to the group stage.
func (r Result) IsGroupStage() bool {
	return r.Label == RoundGroup
}

// GameRecord is one match from the owning team's perspective.
type GameRecord struct {
	Opponent      string `json:"opponent"`
	GoalsMade     int    `json:"goalsMade"`
	GoalsConceded int    `json:"goalsConceded"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Result        Result `json:"result"`
}

// DeltaGoals is goals made minus goals conceded.
func (g GameRecord) DeltaGoals() int {
	return g.GoalsMade - g.GoalsConceded
}

// TeamRecord aggregates one team's tournament performance.
type TeamRecord struct {
	Team          string       `json:"team"`
	Wins          int          `json:"wins"`
	Losses        int          `json:"losses"`
	TotalGames    int          `json:"totalGames"`
	GoalsMade     int          `json:"goalsMade"`
	GoalsConceded int          `json:"goalsConceded"`
	Result        Result       `json:"result"`
	Games         []GameRecord `json:"games"`
}

// DeltaGoals is goals made minus goals conceded.
func (t TeamRecord) DeltaGoals() int {
	return t.GoalsMade - t.GoalsConceded
}

// MaxGoalsMade returns the largest GoalsMade across teams and their games.
func MaxGoalsMade(teams []TeamRecord) int {
	most := 0
	for _, t := range teams {
		most = max(most, t.GoalsMade)
		for _, g := range t.Games {
			most = max(most, g.GoalsMade)
		}
	}
	return most
}
