package config

import (
	"fmt"
	"os"
	"strings"
)

// loadFromEnv overrides config from LEAGUETRACK_* environment variables
// and updates source tracking.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setString := func(env, field string, dst *string) {
		if v := os.Getenv(env); v != "" {
			*dst = v
			sources[field] = SourceEnv
		}
	}
	setInt := func(env, field string, dst *int) {
		if v := os.Getenv(env); v != "" {
			var i int
			if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
				*dst = i
				sources[field] = SourceEnv
			}
		}
	}
	setBool := func(env, field string, dst *bool) {
		if v := os.Getenv(env); v != "" {
			*dst = boolFromString(v)
			sources[field] = SourceEnv
		}
	}

	setString("LEAGUETRACK_TASKS", "tasks_file", &cfg.TasksFile)
	setString("LEAGUETRACK_TASKS_CSV", "tasks_csv_file", &cfg.TasksCSVFile)
	setString("LEAGUETRACK_STATE", "state_file", &cfg.StateFile)
	setInt("LEAGUETRACK_COLUMNS", "columns", &cfg.Columns)
	setString("LEAGUETRACK_LOG_LEVEL", "log_level", &cfg.LogLevel)
	setString("LEAGUETRACK_LOG_FORMAT", "log_format", &cfg.LogFormat)
	setBool("LEAGUETRACK_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps)
	setBool("LEAGUETRACK_LOG_CALLER", "log_caller", &cfg.LogCaller)
}

func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}
