package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Persisted storage keys. These match the original tracker's storage
// layout, so an exported state file stays recognizable.
const (
	CompletedKey = "completedTasks"
	FavoriteKey  = "favoriteTasks"
)

// Store owns the three task-id sets and their persistence. All access
// goes through the store; callers never touch the sets directly.
type Store struct {
	path string

	completed map[int]bool
	favorites map[int]bool
	expanded  map[int]bool

	onChange func()
}

// fileFormat is the on-disk shape: a key-value object holding one JSON
// array of ids per set.
type fileFormat struct {
	CompletedTasks []int `json:"completedTasks"`
	FavoriteTasks  []int `json:"favoriteTasks"`
}

// Open loads the store backed by the state file at path. A missing or
// unreadable file yields empty sets rather than an error.
func Open(path string) *Store {
	s := &Store{
		path:      path,
		completed: make(map[int]bool),
		favorites: make(map[int]bool),
		expanded:  make(map[int]bool),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return s
	}
	for _, id := range f.CompletedTasks {
		s.completed[id] = true
	}
	for _, id := range f.FavoriteTasks {
		s.favorites[id] = true
	}
	return s
}

// SetOnChange registers a hook invoked after every successful mutation.
// The UI uses it to re-group, re-render, and recompute stats.
func (s *Store) SetOnChange(fn func()) {
	s.onChange = fn
}

// IsCompleted reports whether the task id is in the completed set.
func (s *Store) IsCompleted(id int) bool { return s.completed[id] }

// IsFavorite reports whether the task id is in the favorite set.
func (s *Store) IsFavorite(id int) bool { return s.favorites[id] }

// IsExpanded reports whether the task's detail view is open.
func (s *Store) IsExpanded(id int) bool { return s.expanded[id] }

// Completed returns the completed ids in ascending order.
func (s *Store) Completed() []int { return sortedIDs(s.completed) }

// Favorites returns the favorite ids in ascending order.
func (s *Store) Favorites() []int { return sortedIDs(s.favorites) }

// CompletedSet returns a snapshot of the completed membership map.
func (s *Store) CompletedSet() map[int]bool { return copySet(s.completed) }

// FavoriteSet returns a snapshot of the favorite membership map.
func (s *Store) FavoriteSet() map[int]bool { return copySet(s.favorites) }

// MarkComplete adds the task id to the completed set and persists.
func (s *Store) MarkComplete(id int) error {
	if s.completed[id] {
		return nil
	}
	s.completed[id] = true
	return s.commit()
}

// MarkIncomplete removes the task id from the completed set and persists.
func (s *Store) MarkIncomplete(id int) error {
	if !s.completed[id] {
		return nil
	}
	delete(s.completed, id)
	return s.commit()
}

// ToggleFavorite flips the task's favorite membership and persists.
// It returns the new membership state.
func (s *Store) ToggleFavorite(id int) (bool, error) {
	if s.favorites[id] {
		delete(s.favorites, id)
		return false, s.commit()
	}
	s.favorites[id] = true
	return true, s.commit()
}

// ToggleExpanded flips the task's ephemeral expanded flag. No persistence
// and no change hook: expansion is pure view state.
func (s *Store) ToggleExpanded(id int) {
	if s.expanded[id] {
		delete(s.expanded, id)
		return
	}
	s.expanded[id] = true
}

// ResetAll clears both persisted sets and the expanded set. Confirmation
// is the caller's responsibility.
func (s *Store) ResetAll() error {
	s.completed = make(map[int]bool)
	s.favorites = make(map[int]bool)
	s.expanded = make(map[int]bool)
	return s.commit()
}

// commit writes both persisted keys and fires the change hook.
func (s *Store) commit() error {
	if err := s.save(); err != nil {
		return err
	}
	if s.onChange != nil {
		s.onChange()
	}
	return nil
}

// save writes the state file with 2-space indentation and a trailing
// newline.
func (s *Store) save() error {
	f := fileFormat{
		CompletedTasks: sortedIDs(s.completed),
		FavoriteTasks:  sortedIDs(s.favorites),
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

func sortedIDs(set map[int]bool) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func copySet(set map[int]bool) map[int]bool {
	out := make(map[int]bool, len(set))
	for id := range set {
		out[id] = true
	}
	return out
}
