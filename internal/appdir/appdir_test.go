package appdir

import (
	"path/filepath"
	"testing"
)

func TestStatePath(t *testing.T) {
	tests := []struct {
		workDir string
		want    string
	}{
		{".", filepath.Join(".leaguetrack", "state.json")},
		{"", filepath.Join(".leaguetrack", "state.json")},
		{"/work", filepath.Join("/work", ".leaguetrack", "state.json")},
	}
	for _, tt := range tests {
		if got := StatePath(tt.workDir); got != tt.want {
			t.Errorf("StatePath(%q) = %q, want %q", tt.workDir, got, tt.want)
		}
	}
}

func TestConfigPath(t *testing.T) {
	if got := ConfigPath("."); got != filepath.Join(".leaguetrack", "leaguetrack.toml") {
		t.Errorf("ConfigPath(\".\") = %q", got)
	}
	if got := ConfigPath("/work"); got != filepath.Join("/work", ".leaguetrack", "leaguetrack.toml") {
		t.Errorf("ConfigPath(\"/work\") = %q", got)
	}
}
