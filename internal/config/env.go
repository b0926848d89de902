package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// lookupEnv returns the trimmed value of key and whether it was set to anything.
func lookupEnv(key string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	return raw, raw != ""
}

func envOrDefault(key, defaultValue string) string {
	if raw, ok := lookupEnv(key); ok {
		return raw
	}
	return defaultValue
}

// durationEnvOrDefault accepts only positive durations.
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	parsed, ok := parseDurationEnv(key)
	if !ok || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

// intervalEnvOrDefault also accepts zero, which switches the interval off.
func intervalEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	parsed, ok := parseDurationEnv(key)
	if !ok || parsed < 0 {
		return defaultValue
	}
	return parsed
}

func parseDurationEnv(key string) (time.Duration, bool) {
	raw, ok := lookupEnv(key)
	if !ok {
		return 0, false
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func intEnvOrDefault(key string, defaultValue int) int {
	raw, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}
