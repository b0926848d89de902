package config

func loadData(base DataConfig) DataConfig {
	return DataConfig{
		Dir:          envOrDefault(envDataDir, base.Dir),
		BaseURL:      envOrDefault(envDataBaseURL, base.BaseURL),
		FetchTimeout: durationEnvOrDefault(envFetchTimeout, base.FetchTimeout),
		MinInterval:  intervalEnvOrDefault(envFetchInterval, base.MinInterval),
		Retries:      intEnvOrDefault(envFetchRetries, base.Retries),

		RefreshInterval: intervalEnvOrDefault(envRefresh, base.RefreshInterval),
		RetryInterval:   durationEnvOrDefault(envRetryInterval, base.RetryInterval),
	}
}
