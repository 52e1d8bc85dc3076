package ai

import (
	"strings"
	"testing"
)

func TestProfileValidate(t *testing.T) {
	t.Parallel()

	full := &Profile{GPA: "3.8", Grade: "11", Interests: "robotics", Activities: "FIRST", Classes: "AP Calc"}
	if err := full.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := (&Profile{Grade: "11", Interests: " "}).Validate()
	if err == nil {
		t.Fatalf("expected error for incomplete profile")
	}
	if !strings.Contains(err.Error(), "gpa, classes, interests, activities") {
		t.Fatalf("unexpected error: %v", err)
	}

	var missing *Profile
	if err := missing.Validate(); err == nil {
		t.Fatalf("expected error for nil profile")
	}
}

func TestEssaySubmissionValidate(t *testing.T) {
	t.Parallel()

	if err := (&EssaySubmission{Prompt: "Why us?", Essay: "Because."}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (&EssaySubmission{Prompt: "Why us?"}).Validate(); err == nil {
		t.Fatalf("expected error for empty essay")
	}
	if err := (&EssaySubmission{Essay: "text"}).Validate(); err == nil {
		t.Fatalf("expected error for missing prompt")
	}
}

func TestExtractGrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		feedback string
		want     int
		ok       bool
	}{
		{name: "plain", feedback: "Nice work.\nGrade: 87\nResubmit after your changes.", want: 87, ok: true},
		{name: "bracketed", feedback: "Grade:[92]", want: 92, ok: true},
		{name: "out of", feedback: "grade - 78/100", want: 78, ok: true},
		{name: "last wins", feedback: "Your earlier grade: 70. Final Grade: 81", want: 81, ok: true},
		{name: "out of range skipped", feedback: "Grade: 85 ... Grade: 150", want: 85, ok: true},
		{name: "missing", feedback: "Keep going!", ok: false},
		{name: "grade level is not a score", feedback: "As a 12th grade student", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractGrade(tt.feedback)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("expected (%d, %v), got (%d, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}
