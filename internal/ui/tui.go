// Package ui provides the interactive terminal tracker.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"leaguetrack/internal/config"
	"leaguetrack/internal/group"
	"leaguetrack/internal/search"
	"leaguetrack/internal/state"
	"leaguetrack/internal/stats"
	"leaguetrack/internal/task"
)

// RunTUI starts the tracker TUI with the given config and store.
func RunTUI(ctx context.Context, cfg *config.Config, store *state.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := newModel(cfg, store)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// cardRef addresses one rendered task card: bucket index into the
// visible buckets plus task index within that bucket.
type cardRef struct {
	bucket int
	task   int
}

type tasksLoadedMsg struct {
	tasks []task.Task
}

type loadFailedMsg struct {
	err error
}

// Model owns the whole application state: the loaded task list, the
// progress store, the derived buckets, and the view state. Every
// mutation runs through Update, so no two mutations interleave.
type Model struct {
	cfg   *config.Config
	store *state.Store

	tasks   []task.Task
	buckets []group.Bucket
	visible []group.Bucket
	refs    []cardRef
	summary stats.Summary

	loaded  bool
	loadErr error

	cursor    int
	collapsed map[string]bool
	query     string

	searching    bool
	searchInput  textinput.Model
	confirmReset bool
	showHelp     bool

	width  int
	height int

	keys   keyMap
	help   help.Model
	styles *Styles
}

func newModel(cfg *config.Config, store *state.Store) *Model {
	input := textinput.New()
	input.Placeholder = "Search tasks..."
	input.CharLimit = 100
	input.Width = 40

	return &Model{
		cfg:         cfg,
		store:       store,
		collapsed:   make(map[string]bool),
		searchInput: input,
		keys:        newKeyMap(),
		help:        help.New(),
		styles:      NewStyles(),
	}
}

func (m *Model) Init() tea.Cmd {
	return loadCmd(m.cfg)
}

// loadCmd runs the one-time dataset fetch: JSON source first, CSV
// fallback second.
func loadCmd(cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		tasks, err := task.Load(context.Background(),
			task.JSONSource{Location: cfg.TasksFile},
			task.CSVSource{Location: cfg.TasksCSVFile},
		)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tasksLoadedMsg:
		m.tasks = msg.tasks
		m.loaded = true
		m.loadErr = nil
		m.regroup()
		return m, nil

	case loadFailedMsg:
		m.loadErr = msg.err
		m.loaded = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Load-failure view: only retry and quit are live.
	if m.loadErr != nil {
		switch {
		case key.Matches(msg, m.keys.Retry):
			m.loadErr = nil
			return m, loadCmd(m.cfg)
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	// Reset confirmation gate: y proceeds, anything else cancels.
	if m.confirmReset {
		m.confirmReset = false
		if msg.String() == "y" || msg.String() == "Y" {
			if err := m.store.ResetAll(); err == nil {
				m.regroup()
			}
		}
		return m, nil
	}

	// Search mode: keystrokes edit the query and refilter immediately.
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.query = ""
			m.regroup()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.query = m.searchInput.Value()
		m.regroup()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.refs)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.PrevSect):
		m.jumpSection(-1)
	case key.Matches(msg, m.keys.NextSect):
		m.jumpSection(1)
	case key.Matches(msg, m.keys.Collapse):
		if ref, ok := m.current(); ok {
			keyName := m.visible[ref.bucket].Key
			m.collapsed[keyName] = !m.collapsed[keyName]
			m.rebuildRefs()
		} else {
			// Every section is collapsed, so no card is current.
			// Reopen the first collapsed section.
			for _, b := range m.visible {
				if m.collapsed[b.Key] {
					m.collapsed[b.Key] = false
					m.rebuildRefs()
					break
				}
			}
		}
	case key.Matches(msg, m.keys.Expand):
		if t, ok := m.currentTask(); ok {
			m.store.ToggleExpanded(t.ID)
		}
	case key.Matches(msg, m.keys.Complete):
		if t, ok := m.currentTask(); ok {
			var err error
			if m.store.IsCompleted(t.ID) {
				err = m.store.MarkIncomplete(t.ID)
			} else {
				err = m.store.MarkComplete(t.ID)
			}
			if err == nil {
				m.regroup()
			}
		}
	case key.Matches(msg, m.keys.Uncomplete):
		if t, ok := m.currentTask(); ok && m.store.IsCompleted(t.ID) {
			if err := m.store.MarkIncomplete(t.ID); err == nil {
				m.regroup()
			}
		}
	case key.Matches(msg, m.keys.Favorite):
		if t, ok := m.currentTask(); ok {
			if _, err := m.store.ToggleFavorite(t.ID); err == nil {
				m.regroup()
			}
		}
	case key.Matches(msg, m.keys.Reset):
		m.confirmReset = true
	}

	return m, nil
}

// regroup rebuilds the buckets, the search-filtered view, the navigable
// card refs, and the stats from current state. This is the full-rebuild
// step that follows every mutation.
func (m *Model) regroup() {
	completed := m.store.CompletedSet()
	favorites := m.store.FavoriteSet()
	m.buckets = group.Build(m.tasks, completed, favorites)
	m.visible = search.Filter(m.buckets, m.query)
	m.summary = stats.Compute(m.tasks, completed, favorites)
	m.rebuildRefs()
}

// rebuildRefs flattens the visible, non-collapsed cards into the
// navigation order and clamps the cursor.
func (m *Model) rebuildRefs() {
	m.refs = m.refs[:0]
	for bi, b := range m.visible {
		if m.collapsed[b.Key] {
			continue
		}
		for ti := range b.Tasks {
			m.refs = append(m.refs, cardRef{bucket: bi, task: ti})
		}
	}
	if m.cursor >= len(m.refs) {
		m.cursor = len(m.refs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) current() (cardRef, bool) {
	if len(m.refs) == 0 || m.cursor >= len(m.refs) {
		return cardRef{}, false
	}
	return m.refs[m.cursor], true
}

func (m *Model) currentTask() (task.Task, bool) {
	ref, ok := m.current()
	if !ok {
		return task.Task{}, false
	}
	return m.visible[ref.bucket].Tasks[ref.task], true
}

// jumpSection moves the cursor to the first card of the previous or next
// section.
func (m *Model) jumpSection(dir int) {
	ref, ok := m.current()
	if !ok {
		return
	}
	target := ref.bucket + dir
	for target >= 0 && target < len(m.visible) {
		for i, r := range m.refs {
			if r.bucket == target && r.task == 0 {
				m.cursor = i
				return
			}
		}
		// Collapsed sections carry no refs; keep going.
		target += dir
	}
}

// columnCount resolves the layout column count: a configured override
// wins, otherwise the terminal width breakpoints decide.
func (m *Model) columnCount() int {
	if m.cfg != nil && m.cfg.Columns > 0 {
		return m.cfg.Columns
	}
	return group.ColumnsForWidth(m.width)
}

// IsTTY returns true if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
