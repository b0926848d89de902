package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"worldcup-stats-service/internal/domain/results"
	"worldcup-stats-service/internal/providers"
	"worldcup-stats-service/internal/teststubs"
)

func sampleDataset() providers.Dataset {
	return providers.Dataset{Teams: []results.TeamRecord{{Team: "Brazil"}, {Team: "Germany"}}}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(500 * time.Millisecond)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for condition")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestPollerLoadsAndHandsToSink(t *testing.T) {
	loader := &teststubs.StubLoader{Dataset: sampleDataset(), Notify: make(chan struct{})}
	sink := &teststubs.StubSink{}

	p := New(loader, sink, nil, 0, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-loader.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial load")
	}
	waitFor(t, func() bool { return len(sink.Replaced()) == 1 })

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
	if got := sink.Replaced()[0].Teams; len(got) != 2 {
		t.Fatalf("unexpected dataset %+v", got)
	}
	if !p.Status().IsReady() {
		t.Fatalf("expected ready after load")
	}
}

func TestPollerLoadsOnceWithoutInterval(t *testing.T) {
	loader := &teststubs.StubLoader{Dataset: sampleDataset()}
	sink := &teststubs.StubSink{}

	p := New(loader, sink, nil, 0, time.Millisecond)
	p.Start(context.Background())
	waitFor(t, func() bool { return p.Status().IsReady() })

	time.Sleep(20 * time.Millisecond)
	if loader.Calls.Load() != 1 {
		t.Fatalf("expected a single load, got %d", loader.Calls.Load())
	}
	_ = p.Stop(context.Background())
}

func TestPollerReloadsOnInterval(t *testing.T) {
	loader := &teststubs.StubLoader{Dataset: sampleDataset()}
	sink := &teststubs.StubSink{}

	p := New(loader, sink, nil, 5*time.Millisecond, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	waitFor(t, func() bool { return loader.Calls.Load() >= 3 })
	_ = p.Stop(context.Background())
}

func TestPollerRetriesUntilFirstSuccess(t *testing.T) {
	loader := &teststubs.StubLoader{Err: errors.New("offline")}

	p := New(loader, &teststubs.StubSink{}, nil, 0, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	waitFor(t, func() bool { return loader.Calls.Load() >= 3 })
	_ = p.Stop(context.Background())

	status := p.Status()
	if status.IsReady() {
		t.Fatalf("expected not ready while failing")
	}
	if status.LastError != "offline" {
		t.Fatalf("expected last error recorded, got %q", status.LastError)
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	loader := &teststubs.StubLoader{Dataset: sampleDataset(), Notify: make(chan struct{})}

	p := New(loader, &teststubs.StubSink{}, nil, 5*time.Millisecond, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)

	select {
	case <-loader.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial load")
	}

	cancel()
	_ = p.Stop(context.Background())

	callsAfterStop := loader.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if loader.Calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional loads after stop; before=%d after=%d", callsAfterStop, loader.Calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubLoader{}, nil, nil, time.Hour, 0)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	loader := &teststubs.StubLoader{Dataset: sampleDataset()}
	p := New(loader, nil, nil, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx) // should no-op
	waitFor(t, func() bool { return p.Status().IsReady() })

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
	if loader.Calls.Load() != 1 {
		t.Fatalf("expected one load, got %d", loader.Calls.Load())
	}
}

func TestPollerDefaultsRetryInterval(t *testing.T) {
	p := New(&teststubs.StubLoader{}, nil, nil, 0, 0)
	if p.retryInterval != defaultRetryInterval {
		t.Fatalf("expected default retry interval %s, got %s", defaultRetryInterval, p.retryInterval)
	}
}

func TestPollerStopTimesOutOnBlockedLoad(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	loader := loaderFunc(func(ctx context.Context) (providers.Dataset, error) {
		<-block
		return providers.Dataset{}, nil
	})

	p := New(loader, nil, nil, 0, 0)
	p.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	if err := p.Stop(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	loader := &teststubs.StubLoader{Err: errors.New("boom")}
	p := New(loader, nil, nil, 0, 0)

	if err := p.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}
	status := p.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected 1 failure, got %d", status.ConsecutiveFailures)
	}
	if status.LastError == "" {
		t.Fatalf("expected last error recorded")
	}
	if !status.LastSuccess.IsZero() {
		t.Fatalf("expected no success recorded yet")
	}

	loader.Err = nil
	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected refresh error: %v", err)
	}
	status = p.Status()
	if status.ConsecutiveFailures != 0 || status.LastSuccess.IsZero() || !status.IsReady() {
		t.Fatalf("expected ready status after success, got %+v", status)
	}
}

func TestPollerNotReadyAfterRepeatedFailures(t *testing.T) {
	loader := &teststubs.StubLoader{Dataset: sampleDataset()}
	p := New(loader, nil, nil, 0, 0)
	_ = p.Refresh(context.Background())

	loader.Err = errors.New("flaky")
	for range 3 {
		_ = p.Refresh(context.Background())
	}
	if p.Status().IsReady() {
		t.Fatalf("expected not ready after three consecutive failures")
	}
}

func TestPollerSinkErrorCountsAsFailure(t *testing.T) {
	loader := &teststubs.StubLoader{Dataset: sampleDataset()}
	sink := &teststubs.StubSink{Err: errors.New("bad bracket")}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	p := New(loader, sink, logger, 0, 0)
	if err := p.Refresh(context.Background()); err == nil {
		t.Fatalf("expected sink error")
	}
	if p.Status().ConsecutiveFailures != 1 {
		t.Fatalf("expected failure recorded")
	}
}

type loaderFunc func(ctx context.Context) (providers.Dataset, error)

func (f loaderFunc) Load(ctx context.Context) (providers.Dataset, error) { return f(ctx) }
