package teststubs

import (
	"context"
	"errors"
	"testing"

	"worldcup-stats-service/internal/domain/results"
	"worldcup-stats-service/internal/providers"
)

func TestStubLoaderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	l := &StubLoader{Err: err, Notify: make(chan struct{})}

	if _, got := l.Load(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if _, got := l.Load(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough on second call, got %v", got)
	}
	if l.Calls.Load() != 2 {
		t.Fatalf("expected call count 2, got %d", l.Calls.Load())
	}
	select {
	case <-l.Notify:
	default:
		t.Fatalf("expected notify channel closed")
	}
}

func TestStubLoaderHonoursCancelledContext(t *testing.T) {
	l := &StubLoader{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := l.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancelled, got %v", err)
	}
}

func TestStubSinkRecordsDatasets(t *testing.T) {
	s := &StubSink{}
	ds := providers.Dataset{Teams: []results.TeamRecord{{Team: "Brazil"}}}

	if err := s.Replace(ds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s.Replaced()
	if len(got) != 1 || got[0].Teams[0].Team != "Brazil" {
		t.Fatalf("unexpected replaced datasets %+v", got)
	}

	s.Err = errors.New("full")
	if err := s.Replace(ds); err == nil {
		t.Fatalf("expected configured error")
	}
	if len(s.Replaced()) != 1 {
		t.Fatalf("failed replace must not be recorded")
	}
}
