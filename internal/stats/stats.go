// Package stats computes progress summaries over the task list.
package stats

import "leaguetrack/internal/task"

// Summary holds the recomputed progress numbers shown in the header and
// the stats command.
type Summary struct {
	TotalTasks      int
	CompletedTasks  int
	FavoriteTasks   int
	TotalPoints     int
	CompletedPoints int
}

// Compute builds a Summary from the task list and the two membership
// sets. CompletedPoints sums points over exactly the completed set;
// TotalPoints sums over every loaded task regardless of state.
func Compute(tasks []task.Task, completed, favorites map[int]bool) Summary {
	s := Summary{TotalTasks: len(tasks)}
	for _, t := range tasks {
		s.TotalPoints += t.Points
		if completed[t.ID] {
			s.CompletedTasks++
			s.CompletedPoints += t.Points
		}
		if favorites[t.ID] {
			s.FavoriteTasks++
		}
	}
	return s
}

// PercentComplete returns completed points as a percentage of total
// points, 0 when no points exist.
func (s Summary) PercentComplete() float64 {
	if s.TotalPoints == 0 {
		return 0
	}
	return float64(s.CompletedPoints) / float64(s.TotalPoints) * 100
}
