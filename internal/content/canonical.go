package content

import (
	"sort"

	"github.com/mitchellh/mapstructure"
)

// Recognized top-level fields of a roadmap document.
const (
	FieldStudentSummary   = "student_summary"
	FieldCollegeList      = "college_list_suggestions"
	FieldTimeline         = "timeline"
	FieldAcademicPlan     = "academic_plan"
	FieldExtracurriculars = "extracurriculars"
)

// DefaultFields lists the recognized fields in display order.
var DefaultFields = []string{
	FieldStudentSummary,
	FieldCollegeList,
	FieldTimeline,
	FieldAcademicPlan,
	FieldExtracurriculars,
}

type CollegeList struct {
	Reach  []string `json:"reach"`
	Target []string `json:"target"`
	Safety []string `json:"safety"`
}

type TimelineEntry struct {
	Period string   `json:"period"`
	Focus  string   `json:"focus"`
	Tasks  []string `json:"tasks"`
}

type AcademicPlan struct {
	CourseSuggestions []string `json:"course_suggestions"`
	TestingStrategy   string   `json:"testing_strategy"`
}

type Extracurriculars struct {
	CurrentOptimization string   `json:"current_optimization"`
	NewOpportunities    []string `json:"new_opportunities"`
}

// Canonical is a normalized roadmap document. Every section is optional: a nil
// typed view means the field is absent or its value does not have the expected
// shape. Has reports presence independently of the typed views, so a section
// with an unexpected shape can still be shown verbatim.
type Canonical struct {
	StudentSummary   *string
	CollegeList      *CollegeList
	Timeline         []TimelineEntry
	AcademicPlan     *AcademicPlan
	Extracurriculars *Extracurriculars

	fields map[string]any
	known  []string
}

func newCanonical(fields map[string]any, known []string) (*Canonical, []error) {
	c := &Canonical{fields: fields, known: known}

	var errs []error
	for _, name := range known {
		value, ok := c.Value(name)
		if !ok {
			continue
		}

		var err error
		switch name {
		case FieldStudentSummary:
			var summary string
			if err = decodeSection(value, &summary); err == nil {
				c.StudentSummary = &summary
			}
		case FieldCollegeList:
			var list CollegeList
			if err = decodeSection(value, &list); err == nil {
				c.CollegeList = &list
			}
		case FieldTimeline:
			var timeline []TimelineEntry
			if err = decodeSection(value, &timeline); err == nil {
				c.Timeline = timeline
			}
		case FieldAcademicPlan:
			var plan AcademicPlan
			if err = decodeSection(value, &plan); err == nil {
				c.AcademicPlan = &plan
			}
		case FieldExtracurriculars:
			var ec Extracurriculars
			if err = decodeSection(value, &ec); err == nil {
				c.Extracurriculars = &ec
			}
		}

		if err != nil {
			errs = append(errs, &SectionError{Field: name, Err: err})
		}
	}

	return c, errs
}

func decodeSection(input, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

// Has reports whether name is present with a non-null value.
func (c *Canonical) Has(name string) bool {
	_, ok := c.Value(name)
	return ok
}

// Value returns the decoded JSON value of a top-level field.
func (c *Canonical) Value(name string) (any, bool) {
	if c == nil {
		return nil, false
	}

	value, ok := c.fields[name]
	if !ok || value == nil {
		return nil, false
	}

	return value, true
}

// Sections returns the recognized fields that are present, in display order.
func (c *Canonical) Sections() []string {
	if c == nil {
		return nil
	}

	var sections []string
	for _, name := range c.known {
		if c.Has(name) {
			sections = append(sections, name)
		}
	}

	return sections
}

// Extras returns present top-level fields that are not recognized, sorted.
func (c *Canonical) Extras() []string {
	if c == nil {
		return nil
	}

	recognized := make(map[string]bool, len(c.known))
	for _, name := range c.known {
		recognized[name] = true
	}

	var extras []string
	for name, value := range c.fields {
		if recognized[name] || value == nil {
			continue
		}
		extras = append(extras, name)
	}
	sort.Strings(extras)

	return extras
}

// Fields returns a shallow copy of the canonical object.
func (c *Canonical) Fields() map[string]any {
	if c == nil {
		return nil
	}

	copied := make(map[string]any, len(c.fields))
	for k, v := range c.fields {
		copied[k] = v
	}

	return copied
}
