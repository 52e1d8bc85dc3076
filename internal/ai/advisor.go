package ai

import (
	"context"
	"fmt"
	"strings"
)

// Profile is what a student tells the advisor before a roadmap is generated.
type Profile struct {
	GPA          string `json:"gpa" mapstructure:"gpa"`
	Grade        string `json:"grade" mapstructure:"grade"`
	Interests    string `json:"interests" mapstructure:"interests"`
	Activities   string `json:"activities" mapstructure:"activities"`
	Demographics string `json:"demographics" mapstructure:"demographics"`
	Testing      string `json:"testing" mapstructure:"testing"`
	CollegeGoals string `json:"collegeGoals" mapstructure:"college-goals"`
	Classes      string `json:"classes" mapstructure:"classes"`
}

// Validate checks the fields a roadmap cannot be generated without.
func (p *Profile) Validate() error {
	if p == nil {
		return fmt.Errorf("profile is required")
	}

	required := []struct {
		name  string
		value string
	}{
		{"grade", p.Grade},
		{"gpa", p.GPA},
		{"classes", p.Classes},
		{"interests", p.Interests},
		{"activities", p.Activities},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("profile is missing: %s", strings.Join(missing, ", "))
	}

	return nil
}

// EssaySubmission is an essay sent for feedback.
type EssaySubmission struct {
	Grade   string `json:"grade" mapstructure:"grade"`
	Prompt  string `json:"prompt" mapstructure:"prompt"`
	Program string `json:"program" mapstructure:"program"`
	Essay   string `json:"essay" mapstructure:"essay"`
}

func (e *EssaySubmission) Validate() error {
	if e == nil {
		return fmt.Errorf("essay submission is required")
	}
	if strings.TrimSpace(e.Essay) == "" {
		return fmt.Errorf("essay text must not be empty")
	}
	if strings.TrimSpace(e.Prompt) == "" {
		return fmt.Errorf("essay prompt is required")
	}
	return nil
}

// Advisor produces roadmap and essay content. Results are raw generator
// payloads, either text or an already decoded object, and are meant to be
// passed to content.Interpreter.
type Advisor interface {
	Name() string
	Roadmap(ctx context.Context, profile *Profile) (any, error)
	EssayFeedback(ctx context.Context, essay *EssaySubmission) (any, error)
}
