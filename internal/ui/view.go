package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"leaguetrack/internal/group"
	"leaguetrack/internal/task"
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Catalyst League Tracker"))
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("Could not load the task list."))
		b.WriteString("\n\n  " + m.loadErr.Error() + "\n\n")
		b.WriteString("Press r to retry, q to quit.\n")
		return b.String()
	}
	if !m.loaded {
		b.WriteString("\nLoading tasks...\n")
		return b.String()
	}

	b.WriteString(m.styles.Stats.Render(m.statsLine()))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.styles.SearchPrompt.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	} else if m.query != "" {
		b.WriteString(m.styles.SearchPrompt.Render(fmt.Sprintf("Filter: %q (press / to edit)", m.query)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.visible) == 0 {
		if m.query != "" {
			b.WriteString("No tasks match the current search.\n")
		} else {
			b.WriteString("No tasks to show.\n")
		}
	} else {
		b.WriteString(m.renderColumns())
		b.WriteString("\n")
	}

	if m.confirmReset {
		b.WriteString("\n")
		b.WriteString(m.styles.Confirm.Render("Reset all progress? This clears completed and favorite tasks. (y/N)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// statsLine summarizes progress in the header.
func (m *Model) statsLine() string {
	return fmt.Sprintf("%d/%d tasks · %d/%d points (%.1f%%) · %d favorites",
		m.summary.CompletedTasks, m.summary.TotalTasks,
		m.summary.CompletedPoints, m.summary.TotalPoints,
		m.summary.PercentComplete(), m.summary.FavoriteTasks)
}

// renderColumns lays the sections out as contiguous chunks across the
// column count derived from terminal width (or the configured override).
func (m *Model) renderColumns() string {
	n := m.columnCount()
	cols := group.Columns(m.visible, n)

	colWidth := 0
	if m.width > 0 {
		colWidth = m.width/len(cols) - 1
	}

	rendered := make([]string, 0, len(cols))
	for _, col := range cols {
		var cb strings.Builder
		for _, bucket := range col {
			cb.WriteString(m.renderSection(bucket, colWidth))
		}
		content := cb.String()
		if colWidth > 0 {
			content = lipgloss.NewStyle().Width(colWidth).Render(content)
		}
		rendered = append(rendered, content)
	}
	if len(rendered) == 1 {
		return rendered[0]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderSection renders one collapsible section: header with live count,
// then task cards unless collapsed.
func (m *Model) renderSection(b group.Bucket, width int) string {
	var sb strings.Builder

	arrow := "▾"
	if m.collapsed[b.Key] {
		arrow = "▸"
	}
	header := fmt.Sprintf("%s %s %s", arrow,
		m.styles.SectionHeader.Render(b.Title),
		m.styles.SectionCount.Render(fmt.Sprintf("(%d)", b.Count())))
	sb.WriteString(header)
	sb.WriteString("\n")

	if m.collapsed[b.Key] {
		sb.WriteString("\n")
		return sb.String()
	}

	for ti, t := range b.Tasks {
		sb.WriteString(m.renderCard(b, ti, t, width))
	}
	sb.WriteString("\n")
	return sb.String()
}

// renderCard renders one task card, plus its detail block when expanded.
func (m *Model) renderCard(b group.Bucket, ti int, t task.Task, width int) string {
	selected := false
	if ref, ok := m.current(); ok {
		selected = m.visible[ref.bucket].Key == b.Key && ref.task == ti
	}

	fav := " "
	if m.store.IsFavorite(t.ID) {
		fav = m.styles.Favorite.Render("★")
	}
	mark := " "
	if m.store.IsCompleted(t.ID) {
		mark = "x"
	}

	line := fmt.Sprintf("  [%s] %s %s %s %s",
		mark, fav, areaIcon(t.Area), truncate(t.Name, width-16),
		m.styles.Points.Render(fmt.Sprintf("%dpts", t.Points)))

	style := m.styles.Card
	if m.store.IsCompleted(t.ID) {
		style = m.styles.CardCompleted
	}
	if selected {
		style = m.styles.CardSelected
	}

	var sb strings.Builder
	sb.WriteString(style.Render(line))
	sb.WriteString("\n")

	if m.store.IsExpanded(t.ID) {
		sb.WriteString(m.renderDetail(t))
	}
	return sb.String()
}

// renderDetail renders the expanded view of a card: information,
// requirements, points, tags, and the applicable completion action.
func (m *Model) renderDetail(t task.Task) string {
	var lines []string
	if t.Information != "" {
		lines = append(lines, "Info: "+t.Information)
	}
	if t.Requirements != "" {
		lines = append(lines, "Requires: "+t.Requirements)
	}
	lines = append(lines, fmt.Sprintf("Points: %d", t.Points))
	if len(t.Tags) > 0 {
		lines = append(lines, "Tags: "+strings.Join(t.Tags, ", "))
	}
	if m.store.IsCompleted(t.ID) {
		lines = append(lines, "[c] mark incomplete")
	} else {
		lines = append(lines, "[c] mark complete")
	}
	return m.styles.Detail.Render(strings.Join(lines, "\n")) + "\n"
}

// truncate shortens s to max runes with an ellipsis. Non-positive max
// leaves s untouched.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
