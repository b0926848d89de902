package server

import (
	"fmt"
	"log/slog"

	"worldcup-stats-service/internal/config"
	"worldcup-stats-service/internal/metrics"
	"worldcup-stats-service/internal/providers"
	"worldcup-stats-service/internal/providers/fixture"
	"worldcup-stats-service/internal/providers/local"
	"worldcup-stats-service/internal/providers/remote"
)

// sourceFactory assembles the dataset provider with shared wrappers (rate limit + retry).
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, recorder *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: recorder}
}

func (f sourceFactory) build(cfg config.Config) (*providers.DatasetProvider, error) {
	base, err := selectSource(cfg)
	if err != nil {
		return nil, err
	}
	name := cfg.Provider
	if name == "" {
		name = config.ProviderFixture
	}
	limited := providers.NewRateLimitedSource(base, cfg.Data.MinInterval, name, f.logger)
	retrying := providers.NewRetryingSource(limited, f.logger, f.metrics, name, cfg.Data.Retries, 0)
	return providers.NewDatasetProvider(retrying, name, f.logger, f.metrics), nil
}

func selectSource(cfg config.Config) (providers.Source, error) {
	switch cfg.Provider {
	case config.ProviderFixture, "":
		return fixture.New(), nil
	case config.ProviderFile:
		src, err := local.New(cfg.Data.Dir)
		if err != nil {
			return nil, err
		}
		return src, nil
	case config.ProviderHTTP:
		client, err := remote.NewClient(remote.Config{
			BaseURL: cfg.Data.BaseURL,
			Timeout: cfg.Data.FetchTimeout,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
