package cli

import (
	"github.com/spf13/cobra"

	"worldcup-stats-service/internal/resultlist"
)

func newBracketCmd() *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "bracket",
		Short: "Print the knockout tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			tree, _, err := ms.Bracket()
			if err != nil {
				return err
			}

			var lit []string
			if team != "" {
				lit = tree.Highlight(resultlist.Selection{Kind: resultlist.KindAggregate, Team: team}).Labels
			}
			return renderBracket(cmd.OutOrStdout(), tree, lit)
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "star every game the team played")
	return cmd
}
