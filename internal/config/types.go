package config

import "leaguetrack/internal/appdir"

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
}

// Default values.
const (
	DefaultTasksFile    = "catalyst_league_tasks.json"
	DefaultTasksCSVFile = "catalyst_league_tasks.csv"
	DefaultColumns      = 0 // auto from terminal width
)

// Config holds the full configuration for leaguetrack.
type Config struct {
	// Dataset locations. Either may be a local path or an http(s) URL;
	// the JSON source is tried first, the CSV fallback second.
	TasksFile    string `toml:"tasks_file"`
	TasksCSVFile string `toml:"tasks_csv_file"`

	// Progress state file (completed/favorite id sets).
	StateFile string `toml:"state_file"`

	// Layout: fixed column count, 0 picks from terminal width.
	Columns int `toml:"columns"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// configFields returns the configurable field names for source tracking.
func configFields() []string {
	return []string{
		"tasks_file",
		"tasks_csv_file",
		"state_file",
		"columns",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.TasksFile = DefaultTasksFile
	cfg.TasksCSVFile = DefaultTasksCSVFile
	cfg.StateFile = appdir.StatePath(".")
	cfg.Columns = DefaultColumns
	cfg.LogLevel = "info"
	cfg.LogFormat = "text"
}
