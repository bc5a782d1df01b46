package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables.
// NO_COLOR (https://no-color.org) is applied first so an explicit
// TASKLIST_COLOR still wins.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Color = ColorNever
	}
	if v := os.Getenv("TASKLIST_COLOR"); v != "" {
		cfg.Color = ColorMode(strings.ToLower(strings.TrimSpace(v)))
	}
	if v := os.Getenv("TASKLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("TASKLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("TASKLIST_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := os.Getenv("TASKLIST_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
	}
	if v := os.Getenv("TASKLIST_LOG_PREFIX"); v != "" {
		cfg.LogPrefix = v
	}
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
