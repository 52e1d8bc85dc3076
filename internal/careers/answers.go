package careers

import "sort"

// AnswerSet maps a question index to the tag of the chosen option.
// Unanswered questions have no entry.
type AnswerSet map[int]string

// Indexes returns the answered question indexes in ascending order.
func (a AnswerSet) Indexes() []int {
	indexes := make([]int, 0, len(a))
	for idx := range a {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	return indexes
}

// Clone returns an independent copy of the set.
func (a AnswerSet) Clone() AnswerSet {
	cloned := make(AnswerSet, len(a))
	for idx, tag := range a {
		cloned[idx] = tag
	}
	return cloned
}
