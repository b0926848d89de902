package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"worldcup-stats-service/internal/app/tables"
	"worldcup-stats-service/internal/resultlist"
)

const (
	colTeam   = 22
	colGoals  = 14
	colResult = 16
	colCount  = 10

	barGlyph      = "■"
	expandedMark  = "- "
	collapsedMark = "+ "
	gameIndent    = "    "
)

func columns() []table.Column {
	return []table.Column{
		{Title: "Team", Width: colTeam},
		{Title: "Goals", Width: colGoals},
		{Title: "Round/Result", Width: colResult},
		{Title: "Wins", Width: colCount},
		{Title: "Losses", Width: colCount},
		{Title: "Total Games", Width: colCount + 2},
	}
}

// tableRows formats rendered rows as plain text cells.
func tableRows(views []tables.RowView) []table.Row {
	out := make([]table.Row, len(views))
	for i, v := range views {
		total := ""
		if v.Total != nil {
			total = bar(v.Total.Value)
		}
		out[i] = table.Row{
			teamCell(v),
			fmt.Sprintf("%d:%d (%+d)", v.GoalsMade, v.GoalsConceded, v.Goals.Delta),
			v.Result.Label,
			bar(v.Wins.Value),
			bar(v.Losses.Value),
			total,
		}
	}
	return out
}

func teamCell(v tables.RowView) string {
	switch v.Kind {
	case resultlist.KindGame:
		return gameIndent + v.Label
	default:
		if v.Expanded {
			return expandedMark + v.Label
		}
		return collapsedMark + v.Label
	}
}

func bar(n int) string {
	if n <= 0 {
		return "0"
	}
	return strings.Repeat(barGlyph, n) + " " + fmt.Sprint(n)
}
