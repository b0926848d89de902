package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"worldcup-stats-service/internal/logging"
	"worldcup-stats-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingSource wraps a Source with retry/backoff behavior and records attempts.
type retryingSource struct {
	inner       Source
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetryingSource wraps the given source with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingSource(inner Source, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) Source {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingSource{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingSource) Open(ctx context.Context, file string) ([]byte, error) {
	if r.inner == nil {
		return nil, errors.New("no source configured")
	}

	b := r.newBackOff()
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		data, err := r.inner.Open(ctx, file)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return data, nil
		}
		lastErr = err

		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnknownDataset) || attempt == r.maxAttempts {
			break
		}

		delay := b.NextBackOff()
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
			delay = max(delay, rl.RetryAfter)
		}
		if delay == backoff.Stop {
			break
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "dataset fetch retry",
			"file", file, "attempt", attempt, "max_attempts", r.maxAttempts, logging.FieldError, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "dataset fetch failed",
		"file", file, logging.FieldError, lastErr)
	return nil, lastErr
}
