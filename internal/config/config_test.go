package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != ProviderFixture {
		t.Fatalf("expected default provider %s, got %s", ProviderFixture, cfg.Provider)
	}
	if cfg.Data.FetchTimeout != defaultFetchTimeout {
		t.Fatalf("expected default fetch timeout %s, got %s", defaultFetchTimeout, cfg.Data.FetchTimeout)
	}
	if cfg.Table.MaxSessions != defaultMaxSessions {
		t.Fatalf("expected default max sessions %d, got %d", defaultMaxSessions, cfg.Table.MaxSessions)
	}
	if cfg.Chart.Width != defaultChartWidth || cfg.Chart.Height != defaultChartHeight {
		t.Fatalf("unexpected chart size %+v", cfg.Chart)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled by default")
	}
	if cfg.Data.RefreshInterval != 0 || cfg.Data.RetryInterval != defaultRetryInterval {
		t.Fatalf("unexpected refresh settings %s/%s", cfg.Data.RefreshInterval, cfg.Data.RetryInterval)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, ProviderHTTP)
	t.Setenv(envDataBaseURL, "http://example.com/data")
	t.Setenv(envFetchTimeout, "3s")
	t.Setenv(envMaxSessions, "12")
	t.Setenv(envChartWidth, "1000")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envRefresh, "15m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderHTTP {
		t.Fatalf("expected provider http, got %s", cfg.Provider)
	}
	if cfg.Data.BaseURL != "http://example.com/data" {
		t.Fatalf("expected base url override, got %s", cfg.Data.BaseURL)
	}
	if cfg.Data.FetchTimeout != 3*time.Second {
		t.Fatalf("expected fetch timeout 3s, got %s", cfg.Data.FetchTimeout)
	}
	if cfg.Table.MaxSessions != 12 {
		t.Fatalf("expected 12 sessions, got %d", cfg.Table.MaxSessions)
	}
	if cfg.Chart.Width != 1000 {
		t.Fatalf("expected chart width 1000, got %d", cfg.Chart.Width)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Log.Format)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
	if cfg.Data.RefreshInterval != 15*time.Minute {
		t.Fatalf("expected refresh interval 15m, got %s", cfg.Data.RefreshInterval)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envFetchTimeout, "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.FetchTimeout != defaultFetchTimeout {
		t.Fatalf("expected default fetch timeout on invalid value, got %s", cfg.Data.FetchTimeout)
	}
}

func TestLoadNonPositiveSessionsFallsBack(t *testing.T) {
	t.Setenv(envMaxSessions, "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Table.MaxSessions != defaultMaxSessions {
		t.Fatalf("expected default sessions on non-positive value, got %d", cfg.Table.MaxSessions)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv(envProvider, "ftp")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "ftp") {
		t.Fatalf("expected unknown provider error, got %v", err)
	}
}

func TestLoadHTTPProviderRequiresBaseURL(t *testing.T) {
	t.Setenv(envProvider, ProviderHTTP)

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without base url")
	}
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worldcup.yaml")
	body := `
port: "7000"
provider: file
data:
  dir: /srv/worldcup
  fetch_timeout: 2s
  refresh_interval: 1h
table:
  max_sessions: 8
bracket:
  width: 600
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)
	t.Setenv(envPort, "7100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "7100" {
		t.Fatalf("expected env to win over file, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderFile || cfg.Data.Dir != "/srv/worldcup" {
		t.Fatalf("expected file provider from overlay, got %s %s", cfg.Provider, cfg.Data.Dir)
	}
	if cfg.Data.FetchTimeout != 2*time.Second {
		t.Fatalf("expected fetch timeout 2s, got %s", cfg.Data.FetchTimeout)
	}
	if cfg.Table.MaxSessions != 8 {
		t.Fatalf("expected 8 sessions, got %d", cfg.Table.MaxSessions)
	}
	if cfg.Bracket.Width != 600 || cfg.Bracket.Height != defaultBracketHeight {
		t.Fatalf("expected partial bracket overlay, got %+v", cfg.Bracket)
	}
	if cfg.Data.RefreshInterval != time.Hour {
		t.Fatalf("expected refresh interval 1h from overlay, got %s", cfg.Data.RefreshInterval)
	}
	if cfg.Data.Retries != defaultFetchRetries {
		t.Fatalf("expected untouched retries default, got %d", cfg.Data.Retries)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("poll_interval: 5s\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadFromExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explicit.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoadEnvDisablesFileRefresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refresh.yaml")
	if err := os.WriteFile(path, []byte("data:\n  refresh_interval: 30m\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envRefresh, "0s")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.RefreshInterval != 0 {
		t.Fatalf("expected env to switch refresh off, got %s", cfg.Data.RefreshInterval)
	}
}
