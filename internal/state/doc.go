// Package state persists per-task progress flags.
//
// Two independent sets of task ids are tracked: completed and favorite.
// They are stored as JSON arrays under the fixed keys "completedTasks"
// and "favoriteTasks" in a single key-value state file:
//
//	{
//	  "completedTasks": [0, 4, 17],
//	  "favoriteTasks": [4]
//	}
//
// A third set, the expanded set, tracks which task detail views are open.
// It is ephemeral and never written to disk.
//
// Task ids are positional indices into the loaded dataset, so a state
// file is only meaningful against the same dataset order it was written
// for.
//
// A missing or unreadable state file behaves as empty sets. Every
// mutating call persists immediately and fires the optional change hook.
package state
