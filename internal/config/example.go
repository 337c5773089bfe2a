package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# leaguetrack configuration file
# Values can be overridden by environment variables or CLI flags

# Task dataset: a local file path or an http(s) URL (JSON, tried first)
tasks_file = "catalyst_league_tasks.json"

# CSV fallback dataset, tried when the JSON source fails
tasks_csv_file = "catalyst_league_tasks.csv"

# Progress state file (completed/favorite task ids)
state_file = ".leaguetrack/state.json"

# Section columns: 0 picks 1/2/3 from terminal width
columns = 0

# Logging
log_level = "info"       # debug, info, warn, error
log_format = "text"      # text, json, logfmt
log_timestamps = false
log_caller = false
`
}
