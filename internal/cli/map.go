package cli

import (
	"errors"

	"github.com/spf13/cobra"

	apptournaments "worldcup-stats-service/internal/app/tournaments"
	"worldcup-stats-service/internal/chart"
)

func newMapCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Print the info panel, country classes and medal markers for a tournament",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			svc := apptournaments.NewService(ms, chart.DefaultFrame())
			if year == 0 {
				all, err := svc.Tournaments()
				if err != nil {
					return err
				}
				if len(all) == 0 {
					return errors.New("no tournaments loaded")
				}
				year = all[len(all)-1].Year
			}

			info, err := svc.Info(year)
			if err != nil {
				return err
			}
			m, err := svc.Map(year)
			if err != nil {
				return err
			}
			return renderMap(cmd.OutOrStdout(), info, m)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "tournament year (defaults to the latest)")
	return cmd
}
