package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"worldcup-stats-service/internal/bracket"
	"worldcup-stats-service/internal/chart"
	"worldcup-stats-service/internal/domain/tournaments"
	"worldcup-stats-service/internal/geo"
)

const (
	chartBarWidth = 40
	chartGlyph    = "█"
)

// formatValue groups thousands and keeps two decimals for fractional values.
func formatValue(p *message.Printer, v float64) string {
	if v == math.Trunc(v) {
		return p.Sprintf("%d", int64(v))
	}
	return p.Sprintf("%.2f", v)
}

func renderChart(w io.Writer, c chart.Chart) error {
	p := message.NewPrinter(language.English)
	if _, err := fmt.Fprintf(w, "%s (max %s)\n", c.Dimension, formatValue(p, c.MaxValue)); err != nil {
		return err
	}

	plotHeight := c.Frame.Height - 2*c.Frame.Padding
	for _, bar := range c.Bars {
		n := 0
		if plotHeight > 0 {
			n = int(math.Round(bar.Height / plotHeight * chartBarWidth))
		}
		mark := " "
		if bar.Selected {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %d %-*s %s\n", mark, bar.Year, chartBarWidth, strings.Repeat(chartGlyph, n), formatValue(p, bar.Value)); err != nil {
			return err
		}
	}
	return nil
}

func renderMap(w io.Writer, info tournaments.Info, m geo.Map) error {
	counts := map[string]int{}
	for _, c := range m.Countries {
		counts[c.Class]++
	}

	var b strings.Builder
	fmt.Fprintln(&b, info.Edition)
	fmt.Fprintf(&b, "host: %s  winner: %s  runner-up: %s\n", info.Host, info.Winner, info.RunnerUp)
	fmt.Fprintf(&b, "teams (%d): %s\n", len(info.Teams), strings.Join(info.Teams, ", "))
	fmt.Fprintf(&b, "countries: %s %d, %s %d, %s %d\n",
		geo.ClassHost, counts[geo.ClassHost],
		geo.ClassTeam, counts[geo.ClassTeam],
		geo.ClassCountries, counts[geo.ClassCountries])
	for _, mk := range m.Markers {
		fmt.Fprintf(&b, "%-6s %-16s (%.1f, %.1f)\n", mk.Class, mk.Team, mk.Center.X, mk.Center.Y)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// renderBracket prints the tree root first, one game per line, indented by depth.
// Nodes listed in lit are starred.
func renderBracket(w io.Writer, tree *bracket.Tree, lit []string) error {
	marked := make(map[string]bool, len(lit))
	for _, id := range lit {
		marked[id] = true
	}

	var b strings.Builder
	var walk func(n *bracket.Node)
	walk = func(n *bracket.Node) {
		mark := " "
		if marked[n.ID] {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %s%s vs %s  %d-%d\n", mark, strings.Repeat("  ", n.Depth), n.Team, n.Opponent, n.GoalsMade, n.GoalsConceded)
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(tree.Root)

	_, err := io.WriteString(w, b.String())
	return err
}
