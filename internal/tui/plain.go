package tui

import (
	"fmt"
	"io"
	"strings"

	"worldcup-stats-service/internal/app/tables"
	"worldcup-stats-service/internal/chart"
	"worldcup-stats-service/internal/domain/results"
	"worldcup-stats-service/internal/resultlist"
)

// RenderPlain writes the table once without styling, with the named teams expanded.
// It is the output used when no terminal is attached.
func RenderPlain(w io.Writer, teams []results.TeamRecord, expand []string) error {
	manager, err := resultlist.New(teams)
	if err != nil {
		return err
	}
	for _, team := range expand {
		if manager.Expanded(team) {
			continue
		}
		idx := aggregateIndex(manager.Rows(), team)
		if idx < 0 {
			return fmt.Errorf("%w: unknown team %q", resultlist.ErrInvalidArgument, team)
		}
		if err := manager.Toggle(idx); err != nil {
			return err
		}
	}

	cols := columns()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Title
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	for _, row := range tableRows(tables.Render(manager.Rows(), chart.GoalScale(teams))) {
		if err := writeLine(w, row); err != nil {
			return err
		}
	}
	return nil
}

func aggregateIndex(rows []resultlist.Row, team string) int {
	for i, row := range rows {
		if agg, ok := row.(resultlist.AggregateRow); ok && agg.Team() == team {
			return i
		}
	}
	return -1
}

func writeLine(w io.Writer, cells []string) error {
	cols := columns()
	var b strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		fmt.Fprintf(&b, "%-*s ", cols[i].Width, cell)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	return err
}
