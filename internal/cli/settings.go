package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"worldcup-stats-service/internal/config"
	"worldcup-stats-service/internal/logging"
	"worldcup-stats-service/internal/metrics"
	"worldcup-stats-service/internal/server"
	"worldcup-stats-service/internal/store"
)

var (
	// loadStore is swapped in tests.
	loadStore = server.LoadStore

	isTerminal = func(f *os.File) bool {
		return term.IsTerminal(int(f.Fd()))
	}
)

// loadConfig reads config from the environment and file, then applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString(flagConfig)

	var (
		cfg config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}

	if flags.Changed(flagProvider) {
		cfg.Provider, _ = flags.GetString(flagProvider)
	}
	if flags.Changed(flagDataDir) {
		cfg.Data.Dir, _ = flags.GetString(flagDataDir)
	}
	if flags.Changed(flagBaseURL) {
		cfg.Data.BaseURL, _ = flags.GetString(flagBaseURL)
	}
	if debug, _ := flags.GetBool(flagDebug); debug {
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

func newLogger(cmd *cobra.Command, cfg config.Config, version string) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Metrics.ServiceName,
		Version: version,
		Output:  cmd.ErrOrStderr(),
	})
}

// openStore loads every dataset for a one-shot command. Terminal commands log at
// warn unless --debug is set so the rendered output stays readable.
func openStore(cmd *cobra.Command) (*store.MemoryStore, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	if debug, _ := cmd.Flags().GetBool(flagDebug); !debug {
		cfg.Log.Level = "warn"
	}
	logger := newLogger(cmd, cfg, cmd.Root().Version)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ms, err := loadStore(logging.WithLogger(ctx, logger), cfg, logger, metrics.NewRecorder())
	if err != nil {
		return nil, config.Config{}, err
	}
	return ms, cfg, nil
}
