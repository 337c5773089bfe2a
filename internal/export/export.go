// Package export renders the task list with progress marks as a report.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"leaguetrack/internal/stats"
	"leaguetrack/internal/task"
)

// Exporter renders the loaded tasks plus progress flags in one of the
// supported formats: json, csv, or pdf.
type Exporter struct {
	tasks     []task.Task
	completed map[int]bool
	favorites map[int]bool
}

// New builds an Exporter over the task list and the two membership sets.
func New(tasks []task.Task, completed, favorites map[int]bool) *Exporter {
	return &Exporter{tasks: tasks, completed: completed, favorites: favorites}
}

// row is the JSON export shape for one task.
type row struct {
	task.Task
	Completed bool `json:"completed"`
	Favorite  bool `json:"favorite"`
}

// Export renders the report in the requested format.
func (e *Exporter) Export(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		rows := make([]row, len(e.tasks))
		for i, t := range e.tasks {
			rows[i] = row{Task: t, Completed: e.completed[t.ID], Favorite: e.favorites[t.ID]}
		}
		return json.MarshalIndent(rows, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "area", "task", "information", "requirements", "points", "tags", "completed", "favorite"})
		for _, t := range e.tasks {
			_ = w.Write([]string{
				strconv.Itoa(t.ID),
				t.Area,
				t.Name,
				t.Information,
				t.Requirements,
				strconv.Itoa(t.Points),
				strings.Join(t.Tags, ";"),
				strconv.FormatBool(e.completed[t.ID]),
				strconv.FormatBool(e.favorites[t.ID]),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "pdf":
		return e.exportPDF()
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

func (e *Exporter) exportPDF() ([]byte, error) {
	summary := stats.Compute(e.tasks, e.completed, e.favorites)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Catalyst League Progress Report")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Completed %d/%d tasks, %d/%d points (%.1f%%)",
		summary.CompletedTasks, summary.TotalTasks,
		summary.CompletedPoints, summary.TotalPoints,
		summary.PercentComplete()), "0", "L", false)
	pdf.Ln(4)

	for _, t := range e.tasks {
		mark := " "
		if e.completed[t.ID] {
			mark = "x"
		}
		fav := ""
		if e.favorites[t.ID] {
			fav = " *"
		}
		line := fmt.Sprintf("[%s]%s %s (%d pts) - %s", mark, fav, t.Name, t.Points, t.Area)
		if len(t.Tags) > 0 {
			line += " [" + strings.Join(t.Tags, "; ") + "]"
		}
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
