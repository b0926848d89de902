package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"worldcup-stats-service/internal/metrics"
	"worldcup-stats-service/internal/store"
	"worldcup-stats-service/internal/testutil"
)

type failingListener struct {
	addr net.Addr
}

func (l *failingListener) Accept() (net.Conn, error) { return nil, errors.New("accept failure") }
func (l *failingListener) Close() error              { return nil }
func (l *failingListener) Addr() net.Addr            { return l.addr }

func TestNetHTTPServerReturnsListenerFailure(t *testing.T) {
	l := &failingListener{addr: &net.TCPAddr{IP: net.IPv4zero, Port: 0}}
	s := netHTTPServer{srv: &http.Server{Handler: http.NewServeMux()}, listener: l}

	if err := s.ListenAndServe(); err == nil {
		t.Fatalf("expected serve error from failing listener")
	}
}

func TestNetHTTPServerServesTeamsOverTCP(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	built := buildHTTPServer(disabledMetrics(), testutil.NewLoadedStore(t), store.NewSessionStore(4, nil), nil, metrics.NewRecorder())
	s := netHTTPServer{srv: built.(netHTTPServer).srv, listener: l}

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()
	defer func() {
		_ = s.Shutdown(context.Background())
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Errorf("serve did not return after shutdown")
		}
	}()

	client := &http.Client{Timeout: time.Second}
	resp, err := client.Get("http://" + l.Addr().String() + "/teams")
	if err != nil {
		t.Fatalf("get teams: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var teams []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&teams); err != nil {
		t.Fatalf("decode teams: %v", err)
	}
	if len(teams) != len(testutil.SampleTeams()) {
		t.Fatalf("expected %d teams, got %d", len(testutil.SampleTeams()), len(teams))
	}
}

func TestNetHTTPServerAccessors(t *testing.T) {
	handler := http.NewServeMux()
	s := netHTTPServer{srv: &http.Server{Addr: ":4000", Handler: handler}}

	if s.Addr() != ":4000" {
		t.Fatalf("expected addr passthrough, got %s", s.Addr())
	}
	if s.Handler() != handler {
		t.Fatalf("expected handler passthrough")
	}
}
