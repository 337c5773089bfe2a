package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the tracker view.
type Styles struct {
	Title         lipgloss.Style
	Stats         lipgloss.Style
	SectionHeader lipgloss.Style
	SectionCount  lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardCompleted lipgloss.Style
	Favorite      lipgloss.Style
	Points        lipgloss.Style
	Detail        lipgloss.Style
	Error         lipgloss.Style
	Confirm       lipgloss.Style
	SearchPrompt  lipgloss.Style
}

// NewStyles returns the default style set.
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Stats:         lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		SectionHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		SectionCount:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Card:          lipgloss.NewStyle(),
		CardSelected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		CardCompleted: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Favorite:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Points:        lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Detail:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(6),
		Error:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Confirm:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		SearchPrompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
