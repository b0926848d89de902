package tables

import (
	"worldcup-stats-service/internal/chart"
	"worldcup-stats-service/internal/domain/results"
	"worldcup-stats-service/internal/resultlist"
)

// gamePrefix marks game rows in the team column.
const gamePrefix = "x"

// RowView is one table row with its cell marks computed.
type RowView struct {
	Index         int             `json:"index"`
	Kind          resultlist.Kind `json:"kind"`
	Team          string          `json:"team"`
	Opponent      string          `json:"opponent,omitempty"`
	Label         string          `json:"label"`
	Expanded      bool            `json:"expanded,omitempty"`
	Result        results.Result  `json:"result"`
	GoalsMade     int             `json:"goalsMade"`
	GoalsConceded int             `json:"goalsConceded"`
	Wins          chart.CountBar  `json:"wins"`
	Losses        chart.CountBar  `json:"losses"`
	Total         *chart.CountBar `json:"totalGames,omitempty"`
	Goals         chart.GoalCell  `json:"goals"`
}

// Render draws every row. It is called after each mutation; there is no incremental update.
func Render(rows []resultlist.Row, scale chart.LinearScale) []RowView {
	out := make([]RowView, 0, len(rows))
	for i, row := range rows {
		switch r := row.(type) {
		case resultlist.AggregateRow:
			rec := r.Record
			total := chart.NewCountBar(rec.TotalGames)
			out = append(out, RowView{
				Index:         i,
				Kind:          resultlist.KindAggregate,
				Team:          rec.Team,
				Label:         rec.Team,
				Expanded:      resultlist.ExpandedAt(rows, i),
				Result:        rec.Result,
				GoalsMade:     rec.GoalsMade,
				GoalsConceded: rec.GoalsConceded,
				Wins:          chart.NewCountBar(rec.Wins),
				Losses:        chart.NewCountBar(rec.Losses),
				Total:         &total,
				Goals:         chart.NewGoalCell(scale, rec.GoalsMade, rec.GoalsConceded, false),
			})
		case resultlist.GameRow:
			g := r.Game
			out = append(out, RowView{
				Index:         i,
				Kind:          resultlist.KindGame,
				Team:          r.Owner,
				Opponent:      g.Opponent,
				Label:         gamePrefix + g.Opponent,
				Result:        g.Result,
				GoalsMade:     g.GoalsMade,
				GoalsConceded: g.GoalsConceded,
				Wins:          chart.NewCountBar(g.Wins),
				Losses:        chart.NewCountBar(g.Losses),
				Goals:         chart.NewGoalCell(scale, g.GoalsMade, g.GoalsConceded, true),
			})
		}
	}
	return out
}
