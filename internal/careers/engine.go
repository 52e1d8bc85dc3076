package careers

import "sort"

// DefaultLimit is the maximum number of careers a ranking returns.
const DefaultLimit = 6

// Engine ranks careers for an AnswerSet against a Catalog.
type Engine struct {
	catalog *Catalog
	limit   int
}

// NewEngine returns an Engine over catalog that keeps at most DefaultLimit results.
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog, limit: DefaultLimit}
}

type tally struct {
	title string
	count int
}

// Score tallies every catalog title reachable from the answered tags and returns
// them ordered by descending count. Tags are visited in question order; titles
// with equal counts keep the order in which they were first tallied. Tags that
// are not in the catalog contribute nothing. The result is never nil.
func (e *Engine) Score(answers AnswerSet) []string {
	if e == nil || e.catalog == nil || len(answers) == 0 {
		return []string{}
	}

	positions := make(map[string]int)
	var tallies []tally

	for _, idx := range answers.Indexes() {
		titles, ok := e.catalog.entries[answers[idx]]
		if !ok {
			continue
		}

		for _, title := range titles {
			if pos, seen := positions[title]; seen {
				tallies[pos].count++
				continue
			}
			positions[title] = len(tallies)
			tallies = append(tallies, tally{title: title, count: 1})
		}
	}

	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].count > tallies[j].count
	})

	limit := e.limit
	if limit <= 0 || limit > len(tallies) {
		limit = len(tallies)
	}

	ranked := make([]string, 0, limit)
	for _, t := range tallies[:limit] {
		ranked = append(ranked, t.title)
	}

	return ranked
}
