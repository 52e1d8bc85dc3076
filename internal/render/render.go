package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/spigell/college-compass/internal/content"
)

const (
	loadingRoadmap = "Generating your personalized roadmap. This can take a minute or two..."
	loadingEssay   = "Analyzing your essay. This can take a minute or two..."
	emptyContent   = "Nothing to show yet."
	fallbackNote   = "Note: we couldn't format this into the visual roadmap, but here is your advice:"
	essayHeader    = "Your Essay Feedback:"
	noneListed     = "None listed"
	noCareers      = "No recommendations yet. Answer at least one question first."
	wordWrap       = 80
)

var sectionTitles = map[string]string{
	content.FieldStudentSummary:   "Your Personalized Strategy",
	content.FieldCollegeList:      "College List",
	content.FieldTimeline:         "Action Timeline",
	content.FieldAcademicPlan:     "Academic Plan",
	content.FieldExtracurriculars: "Extracurriculars",
}

// Renderer writes quiz results and interpreted content to a terminal.
type Renderer struct {
	out      io.Writer
	heading  lipgloss.Style
	label    lipgloss.Style
	markdown func(string) (string, error)
}

func New(out io.Writer) *Renderer {
	return &Renderer{
		out:      out,
		heading:  lipgloss.NewStyle().Bold(true).Underline(true),
		label:    lipgloss.NewStyle().Bold(true),
		markdown: renderMarkdown,
	}
}

func renderMarkdown(text string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", err
	}

	return r.Render(text)
}

// Careers prints ranked career titles as a numbered list.
func (r *Renderer) Careers(titles []string) error {
	var b strings.Builder
	b.WriteString(r.heading.Render("Recommended Careers"))
	b.WriteString("\n")

	if len(titles) == 0 {
		b.WriteString(noCareers + "\n")
		return r.write(b.String())
	}

	b.WriteString("Based on your answers, here are some career paths that might be a good fit for you:\n")
	for i, title := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}

	return r.write(b.String())
}

// Roadmap prints an interpreted roadmap payload.
func (r *Renderer) Roadmap(res content.Result) error {
	return r.result(res, loadingRoadmap, fallbackNote)
}

// Essay prints interpreted essay feedback followed by the grade, when the
// feedback carries one.
func (r *Renderer) Essay(res content.Result, grade int, graded bool) error {
	if err := r.result(res, loadingEssay, essayHeader); err != nil {
		return err
	}

	if !graded {
		return nil
	}

	return r.write(fmt.Sprintf("\n%s %d/100\n", r.label.Render("Grade:"), grade))
}

func (r *Renderer) result(res content.Result, loading, note string) error {
	switch res.State {
	case content.StateLoading:
		return r.write(loading + "\n")
	case content.StateEmpty:
		return r.write(emptyContent + "\n")
	case content.StateRawFallback:
		return r.rawFallback(res.Raw, note)
	case content.StateStructured:
		return r.write(r.structured(res.Content))
	default:
		return fmt.Errorf("unknown content state %s", res.State)
	}
}

func (r *Renderer) rawFallback(raw, note string) error {
	text, err := r.markdown(raw)
	if err != nil || strings.TrimSpace(text) == "" {
		text = raw
	}

	return r.write(note + "\n\n" + strings.TrimRight(text, "\n") + "\n")
}

func (r *Renderer) structured(c *content.Canonical) string {
	var b strings.Builder

	for _, name := range c.Sections() {
		r.section(&b, sectionTitle(name))

		switch {
		case name == content.FieldStudentSummary && c.StudentSummary != nil:
			b.WriteString("\"" + *c.StudentSummary + "\"\n")
		case name == content.FieldCollegeList && c.CollegeList != nil:
			r.collegeList(&b, c.CollegeList)
		case name == content.FieldTimeline && c.Timeline != nil:
			r.timeline(&b, c.Timeline)
		case name == content.FieldAcademicPlan && c.AcademicPlan != nil:
			r.academicPlan(&b, c.AcademicPlan)
		case name == content.FieldExtracurriculars && c.Extracurriculars != nil:
			r.extracurriculars(&b, c.Extracurriculars)
		default:
			value, _ := c.Value(name)
			b.WriteString(verbatim(value) + "\n")
		}
	}

	extras := c.Extras()
	if len(extras) > 0 {
		r.section(&b, "Additional Details")
		for _, name := range extras {
			value, _ := c.Value(name)
			fmt.Fprintf(&b, "%s\n%s\n", r.label.Render(sectionTitle(name)+":"), verbatim(value))
		}
	}

	if b.Len() == 0 {
		return emptyContent + "\n"
	}

	return b.String()
}

func (r *Renderer) section(b *strings.Builder, title string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(r.heading.Render(title))
	b.WriteString("\n")
}

func (r *Renderer) collegeList(b *strings.Builder, list *content.CollegeList) {
	tiers := []struct {
		name    string
		schools []string
	}{
		{"Reach", list.Reach},
		{"Target", list.Target},
		{"Safety", list.Safety},
	}

	for _, tier := range tiers {
		b.WriteString(r.label.Render(tier.name+" Schools") + "\n")
		bullets(b, tier.schools, "  • ")
	}
}

func (r *Renderer) timeline(b *strings.Builder, entries []content.TimelineEntry) {
	for _, entry := range entries {
		line := r.label.Render(entry.Period)
		if entry.Focus != "" {
			line += " " + entry.Focus
		}
		b.WriteString(line + "\n")
		for _, task := range entry.Tasks {
			b.WriteString("  [ ] " + task + "\n")
		}
	}
}

func (r *Renderer) academicPlan(b *strings.Builder, plan *content.AcademicPlan) {
	b.WriteString(r.label.Render("Recommended Courses") + "\n")
	bullets(b, plan.CourseSuggestions, "  • ")
	b.WriteString(r.label.Render("Testing Strategy") + "\n")
	b.WriteString(orNone(plan.TestingStrategy) + "\n")
}

func (r *Renderer) extracurriculars(b *strings.Builder, ec *content.Extracurriculars) {
	b.WriteString(r.label.Render("Current Optimization") + "\n")
	b.WriteString(orNone(ec.CurrentOptimization) + "\n")
	b.WriteString(r.label.Render("New Opportunities") + "\n")
	bullets(b, ec.NewOpportunities, "  → ")
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.out, s)
	return err
}

func bullets(b *strings.Builder, items []string, marker string) {
	if len(items) == 0 {
		b.WriteString("  " + noneListed + "\n")
		return
	}
	for _, item := range items {
		b.WriteString(marker + item + "\n")
	}
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return noneListed
	}
	return s
}

func sectionTitle(name string) string {
	if title, ok := sectionTitles[name]; ok {
		return title
	}

	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(name))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

// verbatim prints values without a typed view. Strings are printed as is,
// everything else as indented JSON.
func verbatim(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprint(value)
	}

	return string(data)
}
