package stats

import (
	"testing"

	"leaguetrack/internal/task"
)

func TestCompute(t *testing.T) {
	tasks := []task.Task{
		{ID: 0, Points: 10},
		{ID: 1, Points: 40},
		{ID: 2, Points: 120},
		{ID: 3, Points: 0},
	}
	s := Compute(tasks, map[int]bool{0: true, 2: true}, map[int]bool{1: true})

	if s.TotalTasks != 4 {
		t.Errorf("TotalTasks = %d, want 4", s.TotalTasks)
	}
	if s.CompletedTasks != 2 {
		t.Errorf("CompletedTasks = %d, want 2", s.CompletedTasks)
	}
	if s.FavoriteTasks != 1 {
		t.Errorf("FavoriteTasks = %d, want 1", s.FavoriteTasks)
	}
	if s.TotalPoints != 170 {
		t.Errorf("TotalPoints = %d, want 170", s.TotalPoints)
	}
	if s.CompletedPoints != 130 {
		t.Errorf("CompletedPoints = %d, want 130", s.CompletedPoints)
	}
}

func TestComputeIgnoresUnknownIDs(t *testing.T) {
	tasks := []task.Task{{ID: 0, Points: 10}}
	// Stale ids from an old dataset load contribute nothing.
	s := Compute(tasks, map[int]bool{99: true}, nil)
	if s.CompletedPoints != 0 || s.CompletedTasks != 0 {
		t.Errorf("stale ids counted: %+v", s)
	}
}

func TestPercentComplete(t *testing.T) {
	s := Summary{TotalPoints: 200, CompletedPoints: 50}
	if got := s.PercentComplete(); got != 25 {
		t.Errorf("PercentComplete = %v, want 25", got)
	}
	if (Summary{}).PercentComplete() != 0 {
		t.Error("zero-point summary should report 0 percent")
	}
}
