// Package search filters rendered task buckets by substring match.
package search

import (
	"strings"

	"leaguetrack/internal/group"
	"leaguetrack/internal/task"
)

// Matches reports whether the task's searchable text (name, information,
// requirements, area, tags) contains the query. The empty query matches
// every task.
func Matches(t task.Task, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(t.Searchable(), query)
}

// Filter returns the buckets with only the tasks matching the query.
// While a query is active, buckets with zero visible matches are dropped
// entirely; an empty query returns the input unchanged.
func Filter(buckets []group.Bucket, query string) []group.Bucket {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return buckets
	}

	out := make([]group.Bucket, 0, len(buckets))
	for _, b := range buckets {
		var visible []task.Task
		for _, t := range b.Tasks {
			if strings.Contains(t.Searchable(), query) {
				visible = append(visible, t)
			}
		}
		if len(visible) == 0 {
			continue
		}
		out = append(out, group.Bucket{Key: b.Key, Title: b.Title, Tasks: visible})
	}
	return out
}
