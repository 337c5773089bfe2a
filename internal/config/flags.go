package config

import "flag"

// parseFlags defines and parses CLI flags, tracking which were set
// explicitly.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("leaguetrack", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.TasksFile, "tasks", cfg.TasksFile, "Task dataset (file path or http(s) URL)")
	fs.StringVar(&cfg.TasksCSVFile, "tasks-csv", cfg.TasksCSVFile, "CSV fallback dataset (file path or http(s) URL)")
	fs.StringVar(&cfg.StateFile, "state", cfg.StateFile, "Progress state file")
	fs.IntVar(&cfg.Columns, "columns", cfg.Columns, "Section columns (0 = from terminal width)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	flagToSource := map[string]string{
		"tasks":          "tasks_file",
		"tasks-csv":      "tasks_csv_file",
		"state":          "state_file",
		"columns":        "columns",
		"log-level":      "log_level",
		"log-format":     "log_format",
		"log-timestamps": "log_timestamps",
		"log-caller":     "log_caller",
	}
	fs.Visit(func(f *flag.Flag) {
		if fieldName, ok := flagToSource[f.Name]; ok {
			sources[fieldName] = SourceFlag
		}
	})

	return nil
}
