package task

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"leaguetrack/internal/utils"
)

// Task is a single trackable unit of league content. Tasks are created
// once at load and never mutated afterwards; ID is the position of the
// task in the loaded dataset.
type Task struct {
	ID           int      `json:"id"`
	Area         string   `json:"area"`
	Name         string   `json:"task"`
	Information  string   `json:"information"`
	Requirements string   `json:"requirements"`
	Points       int      `json:"points"`
	Tags         []string `json:"tags,omitempty"`
}

// rawTask mirrors one dataset element with loosely typed fields. The wiki
// export is not consistent about field types, so Pts and Tags are decoded
// after the fact.
type rawTask struct {
	Area         string          `json:"Area"`
	Task         string          `json:"Task"`
	Information  string          `json:"Information"`
	Requirements string          `json:"Requirements"`
	Pts          json.RawMessage `json:"Pts"`
	Tags         json.RawMessage `json:"Tags"`
}

// normalize converts a raw dataset element into a Task with the given
// positional id. Missing fields become zero values.
func (r rawTask) normalize(id int) Task {
	return Task{
		ID:           id,
		Area:         strings.TrimSpace(r.Area),
		Name:         strings.TrimSpace(r.Task),
		Information:  strings.TrimSpace(r.Information),
		Requirements: strings.TrimSpace(r.Requirements),
		Points:       parsePoints(r.Pts),
		Tags:         parseTags(r.Tags),
	}
}

// parsePoints decodes a Pts value that may be a JSON number or a numeric
// string. Anything else, including negative values, yields 0.
func parsePoints(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return clampPoints(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return PointsFromString(s)
	}
	return 0
}

// PointsFromString parses a points value from its string form, tolerating
// surrounding whitespace and a trailing ".0" style float. Non-numeric
// input yields 0.
func PointsFromString(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return clampPoints(float64(n))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return clampPoints(f)
	}
	return 0
}

func clampPoints(f float64) int {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

// parseTags decodes a Tags value that may be an array of strings or a
// single semicolon-delimited string.
func parseTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return NormalizeTags(list)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return TagsFromString(s)
	}
	return nil
}

// NormalizeTags trims each tag and drops empty entries. Returns nil for
// an empty result so untagged tasks compare equal regardless of source
// representation.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// TagsFromString splits a semicolon-delimited tag string into a normalized
// tag list.
func TagsFromString(s string) []string {
	tags := utils.SplitAndTrim(s, ";")
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// Searchable returns the lowercase concatenation of the task's textual
// fields used by substring search.
func (t Task) Searchable() string {
	parts := []string{t.Name, t.Information, t.Requirements, t.Area}
	parts = append(parts, t.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// TotalPoints sums points over all tasks regardless of state.
func TotalPoints(tasks []Task) int {
	total := 0
	for _, t := range tasks {
		total += t.Points
	}
	return total
}

// TagCount is one entry of the tag census.
type TagCount struct {
	Tag   string
	Count int
}

// CountTags returns the unique tags across all tasks with the number of
// tasks carrying each, sorted by tag name.
func CountTags(tasks []Task) []TagCount {
	counts := make(map[string]int)
	for _, t := range tasks {
		for _, tag := range t.Tags {
			counts[tag]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}
