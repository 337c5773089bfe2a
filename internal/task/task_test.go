package task

import (
	"reflect"
	"strings"
	"testing"
)

func TestDecodeJSONDefaults(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Task
	}{
		{
			name: "all fields present",
			doc:  `{"tasks":[{"Area":"Lumbridge","Task":"Chop a tree","Information":"Any tree","Requirements":"None","Pts":10,"Tags":["Skill","Woodcutting"]}]}`,
			want: Task{ID: 0, Area: "Lumbridge", Name: "Chop a tree", Information: "Any tree", Requirements: "None", Points: 10, Tags: []string{"Skill", "Woodcutting"}},
		},
		{
			name: "empty object defaults everything",
			doc:  `{"tasks":[{}]}`,
			want: Task{ID: 0},
		},
		{
			name: "non-numeric points default to zero",
			doc:  `{"tasks":[{"Task":"X","Pts":"lots"}]}`,
			want: Task{ID: 0, Name: "X"},
		},
		{
			name: "numeric string points",
			doc:  `{"tasks":[{"Task":"X","Pts":"250"}]}`,
			want: Task{ID: 0, Name: "X", Points: 250},
		},
		{
			name: "float points truncate",
			doc:  `{"tasks":[{"Task":"X","Pts":40.0}]}`,
			want: Task{ID: 0, Name: "X", Points: 40},
		},
		{
			name: "negative points clamp to zero",
			doc:  `{"tasks":[{"Task":"X","Pts":-5}]}`,
			want: Task{ID: 0, Name: "X"},
		},
		{
			name: "semicolon tag string",
			doc:  `{"tasks":[{"Task":"X","Tags":"Skill; Quest ;"}]}`,
			want: Task{ID: 0, Name: "X", Tags: []string{"Skill", "Quest"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := DecodeJSON(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("DecodeJSON failed: %v", err)
			}
			if len(tasks) != 1 {
				t.Fatalf("task count: got %d, want 1", len(tasks))
			}
			if !reflect.DeepEqual(tasks[0], tt.want) {
				t.Errorf("got %+v, want %+v", tasks[0], tt.want)
			}
		})
	}
}

func TestDecodeJSONBareArray(t *testing.T) {
	tasks, err := DecodeJSON(strings.NewReader(`[{"Task":"A"},{"Task":"B"}]`))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("task count: got %d, want 2", len(tasks))
	}
	if tasks[0].ID != 0 || tasks[1].ID != 1 {
		t.Errorf("ids not positional: %d, %d", tasks[0].ID, tasks[1].ID)
	}
}

func TestDecodeJSONInvalid(t *testing.T) {
	for _, doc := range []string{"", "not json", `{"other":1}`} {
		if _, err := DecodeJSON(strings.NewReader(doc)); err == nil {
			t.Errorf("DecodeJSON(%q): expected error", doc)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"unchanged", []string{"A", "B"}, []string{"A", "B"}},
		{"trimmed and dropped", []string{" Skill", "Quest ", " ", ""}, []string{"Skill", "Quest"}},
		{"all empty becomes nil", []string{"", "  "}, nil},
		{"empty input", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTags(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTagsFromString(t *testing.T) {
	got := TagsFromString("Skill; Quest ;")
	want := []string{"Skill", "Quest"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagsFromString = %v, want %v", got, want)
	}
	if TagsFromString("") != nil {
		t.Errorf("TagsFromString(\"\") should be nil")
	}
}

func TestSearchable(t *testing.T) {
	task := Task{Name: "Chop a Tree", Information: "Any tree", Requirements: "None", Area: "Lumbridge", Tags: []string{"Skill"}}
	hay := task.Searchable()
	for _, needle := range []string{"chop a tree", "any tree", "none", "lumbridge", "skill"} {
		if !strings.Contains(hay, needle) {
			t.Errorf("Searchable() missing %q: %q", needle, hay)
		}
	}
	if hay != strings.ToLower(hay) {
		t.Errorf("Searchable() not lowercased: %q", hay)
	}
}

func TestTotalPoints(t *testing.T) {
	tasks := []Task{{Points: 10}, {Points: 40}, {Points: 0}}
	if got := TotalPoints(tasks); got != 50 {
		t.Errorf("TotalPoints = %d, want 50", got)
	}
}

func TestCountTags(t *testing.T) {
	tasks := []Task{
		{Tags: []string{"Skill", "Quest"}},
		{Tags: []string{"Skill"}},
		{},
	}
	got := CountTags(tasks)
	want := []TagCount{{Tag: "Quest", Count: 1}, {Tag: "Skill", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountTags = %v, want %v", got, want)
	}
}
