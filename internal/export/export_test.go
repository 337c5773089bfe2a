package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"leaguetrack/internal/task"
)

func testExporter() *Exporter {
	tasks := []task.Task{
		{ID: 0, Area: "Lumbridge", Name: "Chop a tree", Points: 10, Tags: []string{"Skill"}},
		{ID: 1, Area: "Varrock", Name: "Visit the museum", Points: 40},
	}
	return New(tasks, map[int]bool{0: true}, map[int]bool{1: true})
}

func TestExportJSON(t *testing.T) {
	data, err := testExporter().Export("json")
	if err != nil {
		t.Fatalf("Export(json): %v", err)
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("row count: got %d, want 2", len(rows))
	}
	if rows[0]["completed"] != true || rows[0]["favorite"] != false {
		t.Errorf("row 0 flags wrong: %v", rows[0])
	}
	if rows[1]["completed"] != false || rows[1]["favorite"] != true {
		t.Errorf("row 1 flags wrong: %v", rows[1])
	}
}

func TestExportCSV(t *testing.T) {
	data, err := testExporter().Export("csv")
	if err != nil {
		t.Fatalf("Export(csv): %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("record count: got %d, want 3 (header + 2 rows)", len(records))
	}
	if records[0][0] != "id" || records[0][7] != "completed" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][2] != "Chop a tree" || records[1][7] != "true" {
		t.Errorf("unexpected row: %v", records[1])
	}
	if records[2][6] != "" {
		t.Errorf("untagged task should export empty tags, got %q", records[2][6])
	}
}

func TestExportPDF(t *testing.T) {
	data, err := testExporter().Export("pdf")
	if err != nil {
		t.Fatalf("Export(pdf): %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("export does not look like a PDF: %q", data[:min(8, len(data))])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := testExporter().Export("xml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}
