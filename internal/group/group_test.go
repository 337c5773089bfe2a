package group

import (
	"reflect"
	"testing"

	"leaguetrack/internal/task"
)

func sampleTasks() []task.Task {
	return []task.Task{
		{ID: 0, Name: "Alpha", Tags: []string{"Skill"}},
		{ID: 1, Name: "Bravo", Tags: []string{"Quest", "Skill"}},
		{ID: 2, Name: "Charlie"},
		{ID: 3, Name: "Delta", Tags: []string{"Combat"}},
	}
}

func bucketKeys(buckets []Bucket) []string {
	keys := make([]string, len(buckets))
	for i, b := range buckets {
		keys[i] = b.Key
	}
	return keys
}

func findBucket(t *testing.T, buckets []Bucket, key string) Bucket {
	t.Helper()
	for _, b := range buckets {
		if b.Key == key {
			return b
		}
	}
	t.Fatalf("bucket %q not found in %v", key, bucketKeys(buckets))
	return Bucket{}
}

func containsID(b Bucket, id int) bool {
	for _, tk := range b.Tasks {
		if tk.ID == id {
			return true
		}
	}
	return false
}

func TestBuildOrdering(t *testing.T) {
	buckets := Build(sampleTasks(),
		map[int]bool{3: true},
		map[int]bool{0: true},
	)
	want := []string{KeyFavorites, "Quest", "Skill", KeyNoTags, KeyCompleted}
	if got := bucketKeys(buckets); !reflect.DeepEqual(got, want) {
		t.Errorf("bucket order = %v, want %v", got, want)
	}
}

func TestBuildEmptyBucketsOmitted(t *testing.T) {
	buckets := Build(sampleTasks(), nil, nil)
	for _, b := range buckets {
		if len(b.Tasks) == 0 {
			t.Errorf("empty bucket %q present", b.Key)
		}
		if b.Key == KeyFavorites || b.Key == KeyCompleted {
			t.Errorf("unexpected bucket %q with no members", b.Key)
		}
	}
}

func TestCompletedExcludedEverywhereElse(t *testing.T) {
	// Task 1 is completed and also favorite; it must surface only in the
	// completed bucket.
	buckets := Build(sampleTasks(),
		map[int]bool{1: true},
		map[int]bool{1: true},
	)
	for _, b := range buckets {
		if b.Key == KeyCompleted {
			if !containsID(b, 1) {
				t.Error("completed bucket missing task 1")
			}
			continue
		}
		if containsID(b, 1) {
			t.Errorf("completed task leaked into bucket %q", b.Key)
		}
	}
}

func TestFavoritesStayInTagBuckets(t *testing.T) {
	buckets := Build(sampleTasks(), nil, map[int]bool{0: true})
	if !containsID(findBucket(t, buckets, KeyFavorites), 0) {
		t.Error("favorites bucket missing task 0")
	}
	if !containsID(findBucket(t, buckets, "Skill"), 0) {
		t.Error("favorite task dropped from its tag bucket")
	}
}

func TestUntaggedTaskOnlyInNoTags(t *testing.T) {
	buckets := Build(sampleTasks(), nil, nil)
	noTags := findBucket(t, buckets, KeyNoTags)
	if !containsID(noTags, 2) {
		t.Error("no-tags bucket missing task 2")
	}
	for _, b := range buckets {
		if b.Key != KeyNoTags && containsID(b, 2) {
			t.Errorf("untagged task appeared in bucket %q", b.Key)
		}
	}
}

func TestMultiTagDuplication(t *testing.T) {
	buckets := Build(sampleTasks(), nil, nil)
	if !containsID(findBucket(t, buckets, "Quest"), 1) {
		t.Error("task 1 missing from Quest bucket")
	}
	if !containsID(findBucket(t, buckets, "Skill"), 1) {
		t.Error("task 1 missing from Skill bucket")
	}
}

func TestColumns(t *testing.T) {
	buckets := []Bucket{
		{Key: "a"}, {Key: "b"}, {Key: "c"}, {Key: "d"}, {Key: "e"},
	}
	cols := Columns(buckets, 2)
	if len(cols) != 2 {
		t.Fatalf("column count: got %d, want 2", len(cols))
	}
	if got := bucketKeys(cols[0]); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("col 0 = %v", got)
	}
	if got := bucketKeys(cols[1]); !reflect.DeepEqual(got, []string{"d", "e"}) {
		t.Errorf("col 1 = %v", got)
	}

	// More columns than buckets collapses to one bucket per column.
	cols = Columns(buckets[:2], 3)
	if len(cols) != 2 {
		t.Errorf("column count with short input: got %d, want 2", len(cols))
	}

	// Zero columns is treated as one.
	cols = Columns(buckets, 0)
	if len(cols) != 1 || len(cols[0]) != 5 {
		t.Errorf("zero columns should collapse to one: %v", cols)
	}
}

func TestColumnsForWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1}, {79, 1}, {80, 2}, {119, 2}, {120, 3}, {200, 3},
	}
	for _, tt := range tests {
		if got := ColumnsForWidth(tt.width); got != tt.want {
			t.Errorf("ColumnsForWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
