package task

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadJSONFirst(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "tasks.json", `{"tasks":[{"Task":"From JSON"}]}`)
	csvPath := writeFile(t, dir, "tasks.csv", "Lumbridge,From CSV,,,10,\n")

	tasks, err := Load(context.Background(), JSONSource{Location: jsonPath}, CSVSource{Location: csvPath})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "From JSON" {
		t.Errorf("expected JSON source to win, got %+v", tasks)
	}
}

func TestLoadFallsBackToCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "tasks.csv", "Lumbridge,From CSV,,,10,\n")

	tasks, err := Load(context.Background(),
		JSONSource{Location: filepath.Join(dir, "missing.json")},
		CSVSource{Location: csvPath},
	)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "From CSV" {
		t.Errorf("expected CSV fallback, got %+v", tasks)
	}
}

func TestLoadAllSourcesFail(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(context.Background(),
		JSONSource{Location: filepath.Join(dir, "missing.json")},
		CSVSource{Location: filepath.Join(dir, "missing.csv")},
	)
	if err == nil {
		t.Fatal("expected error when every source fails")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if len(loadErr.Failures) != 2 {
		t.Errorf("failure count: got %d, want 2", len(loadErr.Failures))
	}
	if !strings.Contains(err.Error(), "all task data sources failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLoadMalformedJSONFallsBack(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "tasks.json", "{broken")
	csvPath := writeFile(t, dir, "tasks.csv", "Lumbridge,From CSV,,,10,\n")

	tasks, err := Load(context.Background(), JSONSource{Location: jsonPath}, CSVSource{Location: csvPath})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tasks[0].Name != "From CSV" {
		t.Errorf("expected CSV fallback after parse failure, got %+v", tasks[0])
	}
}

func TestLoadNoSources(t *testing.T) {
	if _, err := Load(context.Background()); err == nil {
		t.Error("expected error with no sources")
	}
}
