package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"worldcup-stats-service/internal/tui"
)

const (
	tableTitle    = "World Cup team results"
	defaultHeight = 24
)

var errNoTerminal = errors.New("table needs an interactive terminal; rerun with --plain")

// runProgram is swapped in tests.
var runProgram = func(m tea.Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func newTableCmd() *cobra.Command {
	var (
		plain  bool
		expand []string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Explore the expandable team results table",
		Long: "table opens an interactive view of the team results. Enter expands or collapses a team, " +
			"r collapses everything and the footer shows what the hovered row lights up in the bracket.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			teams := ms.ListTeams()

			if plain {
				return tui.RenderPlain(cmd.OutOrStdout(), teams, expand)
			}
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errNoTerminal
			}

			tree, _, err := ms.Bracket()
			if err != nil {
				return err
			}
			height := defaultHeight
			if _, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && h > 0 {
				height = h
			}
			model, err := tui.NewTableModel(tableTitle, teams, tree, height)
			if err != nil {
				return err
			}
			if err := runProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen()); err != nil {
				return fmt.Errorf("failed to run interactive table: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print the table once instead of starting the interactive view")
	cmd.Flags().StringSliceVar(&expand, "expand", nil, "teams to expand in --plain output")
	return cmd
}
