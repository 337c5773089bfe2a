package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir changes into dir for the duration of the test. It stands in for
// testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

// newFlagSet returns a quiet flag set for tests.
func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	return fs
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Base(cfg.TasksFile) != DefaultTasksFile {
		t.Errorf("TasksFile = %q, want basename %q", cfg.TasksFile, DefaultTasksFile)
	}
	if !filepath.IsAbs(cfg.TasksFile) {
		t.Errorf("TasksFile not absolutized: %q", cfg.TasksFile)
	}
	if cfg.Columns != DefaultColumns {
		t.Errorf("Columns = %d, want %d", cfg.Columns, DefaultColumns)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("logging defaults wrong: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadProjectConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := "tasks_file = \"custom.json\"\ncolumns = 2\n"
	if err := os.WriteFile(filepath.Join(dir, "leaguetrack.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cws, err := LoadWithSources(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("LoadWithSources failed: %v", err)
	}
	cfg := cws.Config

	if filepath.Base(cfg.TasksFile) != "custom.json" {
		t.Errorf("TasksFile = %q, want custom.json", cfg.TasksFile)
	}
	if cfg.Columns != 2 {
		t.Errorf("Columns = %d, want 2", cfg.Columns)
	}
	if cws.Sources["tasks_file"] != SourceProjFile {
		t.Errorf("tasks_file source = %q, want %q", cws.Sources["tasks_file"], SourceProjFile)
	}
	if cws.Sources["state_file"] != SourceDefault {
		t.Errorf("state_file source = %q, want %q", cws.Sources["state_file"], SourceDefault)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "leaguetrack.toml"), []byte("columns = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LEAGUETRACK_COLUMNS", "3")

	cws, err := LoadWithSources(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("LoadWithSources failed: %v", err)
	}
	if cws.Config.Columns != 3 {
		t.Errorf("Columns = %d, want 3", cws.Config.Columns)
	}
	if cws.Sources["columns"] != SourceEnv {
		t.Errorf("columns source = %q, want %q", cws.Sources["columns"], SourceEnv)
	}
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LEAGUETRACK_LOG_LEVEL", "warn")

	cws, err := LoadWithSources(newFlagSet(), []string{"-log-level", "debug"})
	if err != nil {
		t.Fatalf("LoadWithSources failed: %v", err)
	}
	if cws.Config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cws.Config.LogLevel)
	}
	if cws.Sources["log_level"] != SourceFlag {
		t.Errorf("log_level source = %q, want %q", cws.Sources["log_level"], SourceFlag)
	}
}

func TestLoadURLNotAbsolutized(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(newFlagSet(), []string{"-tasks", "https://example.com/tasks.json"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TasksFile != "https://example.com/tasks.json" {
		t.Errorf("URL was rewritten: %q", cfg.TasksFile)
	}
}

func TestLoadRejectsBadColumns(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Load(newFlagSet(), []string{"-columns", "7"}); err == nil {
		t.Error("expected error for columns out of range")
	}
}

func TestExampleConfigParses(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile("leaguetrack.toml", []byte(ExampleConfig()), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(newFlagSet(), nil); err != nil {
		t.Fatalf("example config does not load: %v", err)
	}
}
