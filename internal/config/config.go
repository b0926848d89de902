package config

import "fmt"

// Config holds runtime configuration for the server and the CLI.
type Config struct {
	Port     string        `yaml:"port"`
	Provider string        `yaml:"provider"`
	Data     DataConfig    `yaml:"data"`
	Table    TableConfig   `yaml:"table"`
	Chart    ViewConfig    `yaml:"chart"`
	Bracket  ViewConfig    `yaml:"bracket"`
	Log      LogConfig     `yaml:"log"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// DataConfig describes where the datasets come from and how they are fetched.
type DataConfig struct {
	Dir          string   `yaml:"dir"`
	BaseURL      string   `yaml:"base_url"`
	FetchTimeout Duration `yaml:"fetch_timeout"`
	MinInterval  Duration `yaml:"min_interval"`
	Retries      int      `yaml:"retries"`

	// RefreshInterval reloads the datasets periodically; zero loads once.
	RefreshInterval Duration `yaml:"refresh_interval"`
	RetryInterval   Duration `yaml:"retry_interval"`
}

// TableConfig bounds the interactive result table sessions.
type TableConfig struct {
	MaxSessions int `yaml:"max_sessions"`
}

// ViewConfig is the drawing area of a chart or tree layout.
type ViewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load builds the configuration from defaults, the optional CONFIG_FILE overlay
// and finally environment variables.
func Load() (Config, error) {
	return LoadFrom(envOrDefault(envConfigFile, ""))
}

// LoadFrom is Load with an explicit YAML file. An empty path skips the overlay.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := overlayFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:     defaultPort,
		Provider: defaultProvider,
		Data: DataConfig{
			Dir:           defaultDataDir,
			FetchTimeout:  defaultFetchTimeout,
			Retries:       defaultFetchRetries,
			RetryInterval: defaultRetryInterval,
		},
		Table:   TableConfig{MaxSessions: defaultMaxSessions},
		Chart:   ViewConfig{Width: defaultChartWidth, Height: defaultChartHeight},
		Bracket: ViewConfig{Width: defaultBracketWidth, Height: defaultBracketHeight},
		Log:     LogConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Port = envOrDefault(envPort, cfg.Port)
	cfg.Provider = envOrDefault(envProvider, cfg.Provider)
	cfg.Data = loadData(cfg.Data)
	cfg.Table.MaxSessions = intEnvOrDefault(envMaxSessions, cfg.Table.MaxSessions)
	cfg.Chart.Width = intEnvOrDefault(envChartWidth, cfg.Chart.Width)
	cfg.Chart.Height = intEnvOrDefault(envChartHeight, cfg.Chart.Height)
	cfg.Bracket.Width = intEnvOrDefault(envBracketWidth, cfg.Bracket.Width)
	cfg.Bracket.Height = intEnvOrDefault(envBracketHeight, cfg.Bracket.Height)
	cfg.Log.Level = envOrDefault(envLogLevel, cfg.Log.Level)
	cfg.Log.Format = envOrDefault(envLogFormat, cfg.Log.Format)
	cfg.Metrics = loadMetrics(cfg.Metrics)
}

// Validate rejects combinations the server cannot start with.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderFixture:
	case ProviderFile:
		if c.Data.Dir == "" {
			return fmt.Errorf("provider %q requires %s", c.Provider, envDataDir)
		}
	case ProviderHTTP:
		if c.Data.BaseURL == "" {
			return fmt.Errorf("provider %q requires %s", c.Provider, envDataBaseURL)
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}
