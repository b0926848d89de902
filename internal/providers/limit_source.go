package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// rateLimitedSource enforces a minimum interval between calls to the wrapped source.
type rateLimitedSource struct {
	next     Source
	interval time.Duration
	logger   *slog.Logger
	name     string

	mu   sync.Mutex
	last time.Time
}

// NewRateLimitedSource returns a Source that spaces calls by at least interval.
// Calls block until their slot arrives. A non-positive interval returns next unchanged.
func NewRateLimitedSource(next Source, interval time.Duration, name string, logger *slog.Logger) Source {
	if interval <= 0 {
		return next
	}
	return &rateLimitedSource{next: next, interval: interval, logger: logger, name: name}
}

func (s *rateLimitedSource) Open(ctx context.Context, file string) ([]byte, error) {
	wait := s.reserve()
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			logWithProvider(ctx, s.logger, slog.LevelWarn, s.name, "rate-limited fetch canceled", "file", file)
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return s.next.Open(ctx, file)
}

// reserve claims the next free slot and returns how long the caller must wait for it.
func (s *rateLimitedSource) reserve() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	slot := now
	if next := s.last.Add(s.interval); !s.last.IsZero() && next.After(now) {
		slot = next
	}
	s.last = slot
	return slot.Sub(now)
}
