// Package appdir provides constants and utilities for the .leaguetrack directory structure.
//
// The dotdir holds per-project state and configuration. The task dataset
// itself defaults to the project root, not the dotdir.
package appdir

import "path/filepath"

const (
	// Dir is the name of the leaguetrack state directory.
	Dir = ".leaguetrack"

	// DefaultStateFile is the default progress state file name (inside .leaguetrack).
	DefaultStateFile = "state.json"

	// DefaultConfigFile is the default config file name (inside .leaguetrack).
	DefaultConfigFile = "leaguetrack.toml"
)

// StatePath returns the full path to the progress state file within a work directory.
func StatePath(workDir string) string {
	return joinPath(workDir, DefaultStateFile)
}

// ConfigPath returns the full path to the config file within a work directory.
func ConfigPath(workDir string) string {
	return joinPath(workDir, DefaultConfigFile)
}

func joinPath(workDir, file string) string {
	if workDir == "." || workDir == "" {
		return Dir + string(filepath.Separator) + file
	}
	return workDir + string(filepath.Separator) + Dir + string(filepath.Separator) + file
}
