package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/college-compass/internal/ai"
	"github.com/spigell/college-compass/internal/utils"
)

//go:embed roadmap_prompt.md
var roadmapTemplate string

//go:embed essay_prompt.md
var essayTemplate string

const (
	providerName        = "gemini"
	defaultMaxLogLength = 200
	notProvided         = "not provided"
)

type contentGenerator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Model() string
}

// Advisor generates roadmaps and essay feedback with Gemini.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Advisor = (*Advisor)(nil)

func NewAdvisor(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Advisor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (a *Advisor) Name() string { return providerName }

// Roadmap returns the model's text, which is expected to be a JSON roadmap but
// is not checked here.
func (a *Advisor) Roadmap(ctx context.Context, profile *ai.Profile) (any, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	prompt := buildRoadmapPrompt(profile)
	return a.generate(ctx, "roadmap", Request{Prompt: prompt, JSON: true})
}

func (a *Advisor) EssayFeedback(ctx context.Context, essay *ai.EssaySubmission) (any, error) {
	if err := essay.Validate(); err != nil {
		return nil, err
	}

	prompt := buildEssayPrompt(essay)
	return a.generate(ctx, "essay", Request{Prompt: prompt})
}

func (a *Advisor) generate(ctx context.Context, kind string, req Request) (any, error) {
	a.logger.Debug("gemini generate content request",
		zap.String("kind", kind),
		zap.Int("prompt_length", utf8.RuneCountInString(req.Prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(req.Prompt, a.maxLogLen)),
	)

	raw, err := a.generator.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	a.logger.Debug("gemini generate content response",
		zap.String("kind", kind),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return raw, nil
}

func buildRoadmapPrompt(p *ai.Profile) string {
	return strings.NewReplacer(
		"{{GRADE}}", promptValue(p.Grade),
		"{{GPA}}", promptValue(p.GPA),
		"{{INTERESTS}}", promptValue(p.Interests),
		"{{ACTIVITIES}}", promptValue(p.Activities),
		"{{DEMOGRAPHICS}}", promptValue(p.Demographics),
		"{{TESTING}}", promptValue(p.Testing),
		"{{COLLEGE_GOALS}}", promptValue(p.CollegeGoals),
		"{{CLASSES}}", promptValue(p.Classes),
	).Replace(roadmapTemplate)
}

func buildEssayPrompt(e *ai.EssaySubmission) string {
	return strings.NewReplacer(
		"{{PROMPT}}", promptValue(e.Prompt),
		"{{PROGRAM}}", promptValue(e.Program),
		"{{GRADE}}", promptValue(e.Grade),
		"{{ESSAY}}", strings.TrimSpace(e.Essay),
	).Replace(essayTemplate)
}

// promptValue collapses a form value onto one line so it cannot open new
// prompt sections.
func promptValue(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return notProvided
	}
	s = strings.ReplaceAll(s, "[", "(")
	return strings.ReplaceAll(s, "]", ")")
}
