package server

import (
	"context"
	"log/slog"

	"worldcup-stats-service/internal/config"
	"worldcup-stats-service/internal/metrics"
	"worldcup-stats-service/internal/store"
)

// LoadStore fetches every dataset from the configured provider into a fresh MemoryStore.
// The CLI uses it to render without starting the HTTP server.
func LoadStore(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*store.MemoryStore, error) {
	provider, err := newSourceFactory(logger, recorder).build(cfg)
	if err != nil {
		return nil, err
	}
	ms := store.NewMemoryStore()
	ds, err := provider.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := (storeSink{store: ms, view: cfg.Bracket}).Replace(ds); err != nil {
		return nil, err
	}
	return ms, nil
}
