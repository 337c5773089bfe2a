// Package group partitions the task list into named buckets.
//
// Bucket order is fixed: favorites first, then one bucket per distinct
// tag sorted by tag name, then untagged tasks, then completed tasks last.
// Completed tasks appear only in the completed bucket; favorites also
// stay in their tag buckets. A task with several tags appears once per
// tag bucket. Empty buckets are omitted.
package group

import (
	"sort"

	"leaguetrack/internal/task"
)

// Reserved bucket keys. Tag buckets use the tag itself as key.
const (
	KeyFavorites = "favorites"
	KeyNoTags    = "no-tags"
	KeyCompleted = "completed"
)

// Bucket is a named, ordered group of tasks shown as one section.
type Bucket struct {
	Key   string
	Title string
	Tasks []task.Task
}

// Count returns the number of tasks in the bucket.
func (b Bucket) Count() int { return len(b.Tasks) }

// Build produces the ordered bucket list from the full task list and the
// two membership sets.
func Build(tasks []task.Task, completed, favorites map[int]bool) []Bucket {
	var favBucket, noTagBucket, doneBucket Bucket
	favBucket = Bucket{Key: KeyFavorites, Title: "Favorites"}
	noTagBucket = Bucket{Key: KeyNoTags, Title: "No Tags"}
	doneBucket = Bucket{Key: KeyCompleted, Title: "Completed"}

	tagBuckets := make(map[string]*Bucket)

	for _, t := range tasks {
		if completed[t.ID] {
			doneBucket.Tasks = append(doneBucket.Tasks, t)
			continue
		}
		if favorites[t.ID] {
			favBucket.Tasks = append(favBucket.Tasks, t)
		}
		if len(t.Tags) == 0 {
			noTagBucket.Tasks = append(noTagBucket.Tasks, t)
			continue
		}
		for _, tag := range t.Tags {
			b, ok := tagBuckets[tag]
			if !ok {
				b = &Bucket{Key: tag, Title: tag}
				tagBuckets[tag] = b
			}
			b.Tasks = append(b.Tasks, t)
		}
	}

	tags := make([]string, 0, len(tagBuckets))
	for tag := range tagBuckets {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	out := make([]Bucket, 0, len(tagBuckets)+3)
	if len(favBucket.Tasks) > 0 {
		out = append(out, favBucket)
	}
	for _, tag := range tags {
		out = append(out, *tagBuckets[tag])
	}
	if len(noTagBucket.Tasks) > 0 {
		out = append(out, noTagBucket)
	}
	if len(doneBucket.Tasks) > 0 {
		out = append(out, doneBucket)
	}
	return out
}

// Columns distributes buckets into n columns as contiguous chunks,
// preserving bucket order down each column. n < 1 is treated as 1.
func Columns(buckets []Bucket, n int) [][]Bucket {
	if n < 1 {
		n = 1
	}
	if n > len(buckets) && len(buckets) > 0 {
		n = len(buckets)
	}
	cols := make([][]Bucket, n)
	if len(buckets) == 0 {
		return cols
	}

	chunk := (len(buckets) + n - 1) / n
	for i := range cols {
		start := i * chunk
		if start >= len(buckets) {
			break
		}
		end := start + chunk
		if end > len(buckets) {
			end = len(buckets)
		}
		cols[i] = buckets[start:end]
	}
	return cols
}

// ColumnsForWidth maps a view width to a column count using the layout
// breakpoints: 1 column under 80 cells, 2 under 120, otherwise 3.
func ColumnsForWidth(width int) int {
	switch {
	case width < 80:
		return 1
	case width < 120:
		return 2
	default:
		return 3
	}
}
