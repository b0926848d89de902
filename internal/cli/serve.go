package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"worldcup-stats-service/internal/logging"
	"worldcup-stats-service/internal/server"
)

func newServeCmd(version string) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and metrics endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			logger := newLogger(cmd, cfg, version)

			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logging.Info(logger, "starting worldcup service", logging.FieldProvider, cfg.Provider)
			srv.Run(ctx, stop)
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "HTTP listen port (overrides PORT)")
	return cmd
}
