package careers

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_quiz.yaml
var defaultQuizYAML []byte

// Option is a selectable answer. Tag is the catalog key the answer votes for.
type Option struct {
	Label string `yaml:"label"`
	Tag   string `yaml:"tag"`
}

// Question is a quiz prompt with its ordered options.
type Question struct {
	Index   int      `yaml:"-"`
	Prompt  string   `yaml:"prompt"`
	Options []Option `yaml:"options"`
}

// Quiz bundles the questions with the catalog their tags are scored against.
type Quiz struct {
	Questions []Question
	Catalog   *Catalog
}

type quizDocument struct {
	Questions []Question          `yaml:"questions"`
	Catalog   map[string][]string `yaml:"catalog"`
}

// DefaultQuiz returns the built-in career quiz.
func DefaultQuiz() (*Quiz, error) {
	return ParseQuiz(defaultQuizYAML)
}

// LoadQuiz reads a quiz document from path. An empty path yields the built-in quiz.
func LoadQuiz(path string) (*Quiz, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultQuiz()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading quiz file %q: %w", path, err)
	}

	quiz, err := ParseQuiz(data)
	if err != nil {
		return nil, fmt.Errorf("quiz file %q: %w", path, err)
	}

	return quiz, nil
}

// ParseQuiz decodes and validates a YAML quiz document.
func ParseQuiz(data []byte) (*Quiz, error) {
	var doc quizDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}

	if len(doc.Questions) == 0 {
		return nil, errors.New("quiz has no questions")
	}
	if len(doc.Catalog) == 0 {
		return nil, errors.New("quiz has an empty catalog")
	}

	for i := range doc.Questions {
		q := &doc.Questions[i]
		q.Index = i

		if strings.TrimSpace(q.Prompt) == "" {
			return nil, fmt.Errorf("question %d has no prompt", i+1)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d has no options", i+1)
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt.Tag) == "" {
				return nil, fmt.Errorf("question %d option %d has no tag", i+1, j+1)
			}
		}
	}

	return &Quiz{
		Questions: doc.Questions,
		Catalog:   NewCatalog(doc.Catalog),
	}, nil
}

// Len returns the number of questions.
func (q *Quiz) Len() int {
	if q == nil {
		return 0
	}
	return len(q.Questions)
}
