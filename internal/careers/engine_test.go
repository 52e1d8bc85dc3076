package careers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func defaultEngine(t *testing.T) *Engine {
	t.Helper()

	quiz, err := DefaultQuiz()
	if err != nil {
		t.Fatalf("loading default quiz: %v", err)
	}

	return NewEngine(quiz.Catalog)
}

func TestEngineScore(t *testing.T) {
	t.Parallel()

	engine := defaultEngine(t)

	tests := []struct {
		name    string
		answers AnswerSet
		want    []string
	}{
		{
			name:    "no answers",
			answers: AnswerSet{},
			want:    []string{},
		},
		{
			name:    "nil answers",
			answers: nil,
			want:    []string{},
		},
		{
			name:    "single tag keeps catalog order",
			answers: AnswerSet{0: "stem"},
			want:    []string{"Engineer", "Computer Scientist", "Biologist", "Chemist", "Physicist", "Mathematician"},
		},
		{
			name:    "shared career ranks first then insertion order",
			answers: AnswerSet{0: "humanities", 1: "intellectual"},
			want:    []string{"Librarian", "Writer/Journalist", "Lawyer", "Historian", "Translator", "Public Relations Specialist"},
		},
		{
			name:    "ties resolved by first tally",
			answers: AnswerSet{0: "social", 1: "helping"},
			want:    []string{"Social Worker", "Counselor", "Nurse", "Teacher/Educator", "Human Resources Specialist", "Community Health Worker"},
		},
		{
			name:    "question order not map order decides ties",
			answers: AnswerSet{1: "social", 0: "helping"},
			want:    []string{"Social Worker", "Nurse", "Counselor", "Teacher", "Non-profit Worker", "Healthcare Administrator"},
		},
		{
			name:    "unknown tag contributes nothing",
			answers: AnswerSet{0: "active", 1: "arts", 2: "does-not-exist"},
			want:    []string{"Artist", "Photographer", "Fashion Designer", "Musician", "Film Director", "Architect"},
		},
		{
			name:    "only unknown tags",
			answers: AnswerSet{0: "active"},
			want:    []string{},
		},
		{
			name:    "sparse indexes",
			answers: AnswerSet{4: "physical", 2: "practical"},
			want:    []string{"Landscaper", "Electrician", "Plumber", "Construction Manager", "HVAC Technician", "Automotive Technician"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := engine.Score(tt.answers)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngineScoreIsBoundedAndUnique(t *testing.T) {
	t.Parallel()

	engine := defaultEngine(t)
	answers := AnswerSet{0: "social", 1: "business", 2: "social", 3: "financial", 4: "interpersonal"}

	got := engine.Score(answers)
	if len(got) > DefaultLimit {
		t.Fatalf("expected at most %d careers, got %d", DefaultLimit, len(got))
	}

	seen := make(map[string]bool)
	for _, title := range got {
		if seen[title] {
			t.Fatalf("duplicate career %q in %v", title, got)
		}
		seen[title] = true
	}

	// Social is answered twice so each of its titles reaches 2; Sales
	// Representative also reaches 2 via business and interpersonal.
	want := []string{"Social Worker", "Teacher/Educator", "Counselor", "Human Resources Specialist", "Nurse", "Community Health Worker"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
	}
}

func TestEngineScoreIsIdempotent(t *testing.T) {
	t.Parallel()

	engine := defaultEngine(t)
	answers := AnswerSet{0: "creative", 1: "arts", 3: "creative", 4: "technical"}

	first := engine.Score(answers)
	second := engine.Score(answers)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated scoring differs (-first +second):\n%s", diff)
	}
}

func TestEngineRepeatedTagsCompound(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(map[string][]string{
		"stem":   {"Engineer", "Chemist"},
		"social": {"Chemist", "Nurse", "Teacher"},
	})
	engine := NewEngine(catalog)

	// Chemist is listed under both tags and leads either way; a second stem
	// answer adds another point to every stem title instead of being ignored.
	once := engine.Score(AnswerSet{0: "stem", 1: "social"})
	if diff := cmp.Diff([]string{"Chemist", "Engineer", "Nurse", "Teacher"}, once); diff != "" {
		t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
	}

	twice := engine.Score(AnswerSet{0: "stem", 1: "stem", 2: "social"})
	if diff := cmp.Diff([]string{"Chemist", "Engineer", "Nurse", "Teacher"}, twice); diff != "" {
		t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
	}

	only := engine.Score(AnswerSet{0: "stem", 1: "stem"})
	if diff := cmp.Diff([]string{"Engineer", "Chemist"}, only); diff != "" {
		t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
	}
}

func TestEngineWithoutCatalog(t *testing.T) {
	t.Parallel()

	var engine *Engine
	if got := engine.Score(AnswerSet{0: "stem"}); len(got) != 0 {
		t.Fatalf("expected empty ranking from nil engine, got %v", got)
	}

	if got := NewEngine(nil).Score(AnswerSet{0: "stem"}); len(got) != 0 {
		t.Fatalf("expected empty ranking without catalog, got %v", got)
	}
}
