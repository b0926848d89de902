package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"worldcup-stats-service/internal/providers"
)

// StubLoader is a test double for poller.Loader.
type StubLoader struct {
	Dataset providers.Dataset
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// Load returns the configured dataset and error while tracking calls.
// Notify, when set, is closed on the first call.
func (s *StubLoader) Load(ctx context.Context) (providers.Dataset, error) {
	s.Calls.Add(1)
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	if err := ctx.Err(); err != nil {
		return providers.Dataset{}, err
	}
	return s.Dataset, s.Err
}

// StubSink is a test double for poller.Sink.
type StubSink struct {
	Err error

	mu       sync.Mutex
	replaced []providers.Dataset
}

// Replace records the dataset for verification in tests.
func (s *StubSink) Replace(ds providers.Dataset) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaced = append(s.replaced, ds)
	return nil
}

// Replaced returns every dataset received so far.
func (s *StubSink) Replaced() []providers.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]providers.Dataset(nil), s.replaced...)
}
