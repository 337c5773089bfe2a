// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.leaguetrack/leaguetrack.toml or OS-specific config directory)
// 3. Project config file (leaguetrack.toml, .leaguetrack.toml, or .leaguetrack/leaguetrack.toml)
// 4. Environment variables (LEAGUETRACK_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.leaguetrack/leaguetrack.toml (preferred)
// - Windows: %APPDATA%\leaguetrack\leaguetrack.toml
// - macOS: ~/Library/Application Support/leaguetrack/leaguetrack.toml
// - Linux/BSD: $XDG_CONFIG_HOME/leaguetrack/leaguetrack.toml or ~/.config/leaguetrack/leaguetrack.toml
package config
