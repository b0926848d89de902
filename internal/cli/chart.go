package cli

import (
	"github.com/spf13/cobra"

	apptournaments "worldcup-stats-service/internal/app/tournaments"
	"worldcup-stats-service/internal/chart"
	"worldcup-stats-service/internal/domain/tournaments"
)

func newChartCmd() *cobra.Command {
	var (
		dimension string
		selected  int
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the tournament bar chart for one attribute",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dim, err := tournaments.ParseDimension(dimension)
			if err != nil {
				return err
			}
			ms, cfg, err := openStore(cmd)
			if err != nil {
				return err
			}
			frame := chart.DefaultFrame()
			frame.Width, frame.Height = float64(cfg.Chart.Width), float64(cfg.Chart.Height)

			c, err := apptournaments.NewService(ms, frame).Chart(dim, selected)
			if err != nil {
				return err
			}
			return renderChart(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().StringVar(&dimension, "dimension", string(tournaments.DefaultDimension), "attribute to chart")
	cmd.Flags().IntVar(&selected, "selected", 0, "year to mark as selected")
	return cmd
}
