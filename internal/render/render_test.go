package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/college-compass/internal/content"
)

func newPlainRenderer(out *bytes.Buffer) *Renderer {
	r := New(out)
	r.heading = lipgloss.NewStyle()
	r.label = lipgloss.NewStyle()
	return r
}

func interpret(t *testing.T, raw any) content.Result {
	t.Helper()
	return content.NewInterpreter().Interpret(raw, false)
}

func TestCareers(t *testing.T) {
	var out bytes.Buffer
	r := newPlainRenderer(&out)

	require.NoError(t, r.Careers([]string{"Software Engineer", "Data Scientist"}))

	assert.Contains(t, out.String(), "Recommended Careers\n")
	assert.Contains(t, out.String(), "1. Software Engineer\n2. Data Scientist\n")

	out.Reset()
	require.NoError(t, r.Careers(nil))
	assert.Contains(t, out.String(), noCareers)
}

func TestRoadmapStructured(t *testing.T) {
	raw := "```json\n" + `{
		"student_summary": "A driven junior.",
		"college_list_suggestions": {"reach": ["MIT"], "target": ["Purdue", "UIUC"]},
		"timeline": [{"period": "Junior Spring", "focus": "Testing", "tasks": ["Take the SAT"]}],
		"academic_plan": {"course_suggestions": ["AP Physics C"]},
		"extracurriculars": {"current_optimization": "Lead robotics", "new_opportunities": ["Research internship"]},
		"scholarships": ["Coca-Cola Scholars"]
	}` + "\n```"

	var out bytes.Buffer
	r := newPlainRenderer(&out)
	require.NoError(t, r.Roadmap(interpret(t, raw)))
	text := out.String()

	for _, want := range []string{
		"Your Personalized Strategy\n\"A driven junior.\"\n",
		"Reach Schools\n  • MIT\n",
		"Target Schools\n  • Purdue\n  • UIUC\n",
		"Safety Schools\n  None listed\n",
		"Action Timeline\nJunior Spring Testing\n  [ ] Take the SAT\n",
		"Recommended Courses\n  • AP Physics C\n",
		"Testing Strategy\nNone listed\n",
		"Current Optimization\nLead robotics\n",
		"New Opportunities\n  → Research internship\n",
		"Additional Details\nScholarships:\n",
		"\"Coca-Cola Scholars\"",
	} {
		assert.Contains(t, text, want)
	}

	order := []string{"Your Personalized Strategy", "College List", "Action Timeline", "Academic Plan", "Extracurriculars", "Additional Details"}
	last := -1
	for _, heading := range order {
		idx := strings.Index(text, heading)
		require.Greater(t, idx, last, heading)
		last = idx
	}
}

func TestRoadmapOmitsAbsentSections(t *testing.T) {
	var out bytes.Buffer
	r := newPlainRenderer(&out)

	require.NoError(t, r.Roadmap(interpret(t, `{"student_summary": "Only this."}`)))

	assert.Contains(t, out.String(), "Only this.")
	assert.NotContains(t, out.String(), "College List")
	assert.NotContains(t, out.String(), "Action Timeline")
	assert.NotContains(t, out.String(), "Additional Details")
}

func TestRoadmapPrintsUnexpectedShapeVerbatim(t *testing.T) {
	var out bytes.Buffer
	r := newPlainRenderer(&out)

	require.NoError(t, r.Roadmap(interpret(t, `{"timeline": "Apply early in the fall."}`)))

	assert.Contains(t, out.String(), "Action Timeline\nApply early in the fall.\n")
}

func TestRoadmapObjectWithoutKnownFields(t *testing.T) {
	var out bytes.Buffer
	r := newPlainRenderer(&out)

	require.NoError(t, r.Roadmap(interpret(t, `{}`)))

	assert.Equal(t, emptyContent+"\n", out.String())
}

func TestRoadmapStates(t *testing.T) {
	var out bytes.Buffer
	r := newPlainRenderer(&out)

	require.NoError(t, r.Roadmap(content.Result{State: content.StateLoading}))
	assert.Equal(t, loadingRoadmap+"\n", out.String())

	out.Reset()
	require.NoError(t, r.Roadmap(content.Result{State: content.StateEmpty}))
	assert.Equal(t, emptyContent+"\n", out.String())

	out.Reset()
	require.Error(t, r.Roadmap(content.Result{State: content.State(42)}))
}

func TestRawFallback(t *testing.T) {
	raw := "Focus on AP classes and start your essays early."

	t.Run("markdown", func(t *testing.T) {
		var out bytes.Buffer
		r := newPlainRenderer(&out)

		require.NoError(t, r.Roadmap(interpret(t, raw)))

		assert.True(t, strings.HasPrefix(out.String(), fallbackNote+"\n"))
		assert.Contains(t, out.String(), "Focus on AP classes")
	})

	t.Run("plain text when markdown fails", func(t *testing.T) {
		var out bytes.Buffer
		r := newPlainRenderer(&out)
		r.markdown = func(string) (string, error) { return "", errors.New("no style") }

		require.NoError(t, r.Roadmap(interpret(t, raw)))

		assert.Equal(t, fallbackNote+"\n\n"+raw+"\n", out.String())
	})
}

func TestEssay(t *testing.T) {
	var out bytes.Buffer
	r := newPlainRenderer(&out)
	r.markdown = func(s string) (string, error) { return s, nil }

	feedback := "Strong voice.\nGrade: 88"
	require.NoError(t, r.Essay(interpret(t, feedback), 88, true))

	assert.True(t, strings.HasPrefix(out.String(), essayHeader+"\n"))
	assert.Contains(t, out.String(), "Strong voice.")
	assert.NotContains(t, out.String(), fallbackNote)
	assert.True(t, strings.HasSuffix(out.String(), "\nGrade: 88/100\n"))

	out.Reset()
	require.NoError(t, r.Essay(content.Result{State: content.StateLoading}, 0, false))
	assert.Equal(t, loadingEssay+"\n", out.String())
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "College List", sectionTitle(content.FieldCollegeList))
	assert.Equal(t, "Financial Aid Notes", sectionTitle("financial_aid-notes"))
}
