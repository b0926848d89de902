package config

import "time"

const (
	envConfigFile    = "CONFIG_FILE"
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envDataDir       = "DATA_DIR"
	envDataBaseURL   = "DATA_BASE_URL"
	envFetchTimeout  = "FETCH_TIMEOUT"
	envFetchInterval = "FETCH_MIN_INTERVAL"
	envFetchRetries  = "FETCH_RETRIES"
	envRefresh       = "DATA_REFRESH_INTERVAL"
	envRetryInterval = "DATA_RETRY_INTERVAL"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envMaxSessions   = "TABLE_MAX_SESSIONS"
	envChartWidth    = "CHART_WIDTH"
	envChartHeight   = "CHART_HEIGHT"
	envBracketWidth  = "BRACKET_WIDTH"
	envBracketHeight = "BRACKET_HEIGHT"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"

	ProviderFixture = "fixture"
	ProviderFile    = "file"
	ProviderHTTP    = "http"

	defaultPort          = "4000"
	defaultProvider      = ProviderFixture
	defaultDataDir       = "data"
	defaultFetchTimeout  = 10 * time.Second
	defaultFetchRetries  = 3
	defaultRetryInterval = 30 * time.Second
	defaultMetricsPort   = "9090"
	defaultServiceName   = "worldcup-stats-service"
	defaultMaxSessions   = 256
	defaultChartWidth    = 800
	defaultChartHeight   = 400
	defaultBracketWidth  = 550
	defaultBracketHeight = 750
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
)
