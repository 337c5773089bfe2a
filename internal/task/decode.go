package task

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// document mirrors the dataset's object form. The scraper exports
// {"tasks": [...]}, but a bare top-level array is accepted too.
type document struct {
	Tasks []rawTask `json:"tasks"`
}

// DecodeJSON parses a task dataset from JSON. The document may be an
// object with a "tasks" array or a bare array. Individual elements are
// normalized field by field and never rejected.
func DecodeJSON(r io.Reader) ([]Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var raw []rawTask
	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse dataset: %w", err)
		}
	} else {
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse dataset: %w", err)
		}
		raw = doc.Tasks
	}
	if raw == nil {
		return nil, fmt.Errorf("parse dataset: no task array found")
	}

	tasks := make([]Task, len(raw))
	for i, rt := range raw {
		tasks[i] = rt.normalize(i)
	}
	return tasks, nil
}

// CSV column order: area, task, information, requirements, points,
// semicolon-delimited tags.
const csvColumns = 6

// DecodeCSV parses the CSV fallback form of the dataset. Rows shorter
// than six columns are padded with empty fields; a leading header row is
// skipped when detected.
func DecodeCSV(r io.Reader) ([]Task, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv dataset: %w", err)
	}
	if len(records) > 0 && isHeaderRow(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse csv dataset: no rows")
	}

	tasks := make([]Task, len(records))
	for i, rec := range records {
		row := make([]string, csvColumns)
		copy(row, rec)
		tasks[i] = Task{
			ID:           i,
			Area:         strings.TrimSpace(row[0]),
			Name:         strings.TrimSpace(row[1]),
			Information:  strings.TrimSpace(row[2]),
			Requirements: strings.TrimSpace(row[3]),
			Points:       PointsFromString(row[4]),
			Tags:         TagsFromString(row[5]),
		}
	}
	return tasks, nil
}

func isHeaderRow(rec []string) bool {
	if len(rec) < 2 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(rec[0]), "area") &&
		strings.EqualFold(strings.TrimSpace(rec[1]), "task")
}
