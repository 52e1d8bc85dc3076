package careers

import "github.com/google/uuid"

// Session holds the answers of one person taking a quiz.
// It is not safe for concurrent use.
type Session struct {
	ID string

	quiz    *Quiz
	engine  *Engine
	answers AnswerSet
}

func NewSession(quiz *Quiz) *Session {
	var catalog *Catalog
	if quiz != nil {
		catalog = quiz.Catalog
	}

	return &Session{
		ID:      uuid.NewString(),
		quiz:    quiz,
		engine:  NewEngine(catalog),
		answers: make(AnswerSet),
	}
}

// RecordAnswer stores tag as the answer to the question at index, replacing
// any earlier answer. Tags are not checked against the catalog.
func (s *Session) RecordAnswer(index int, tag string) {
	s.answers[index] = tag
}

// Reset discards every recorded answer.
func (s *Session) Reset() {
	s.answers = make(AnswerSet)
}

func (s *Session) Answered(index int) (string, bool) {
	tag, ok := s.answers[index]
	return tag, ok
}

// Answers returns a snapshot of the recorded answers.
func (s *Session) Answers() AnswerSet {
	return s.answers.Clone()
}

// Complete reports whether every question of the quiz has an answer.
func (s *Session) Complete() bool {
	for i := 0; i < s.quiz.Len(); i++ {
		if _, ok := s.answers[i]; !ok {
			return false
		}
	}
	return true
}

// Recommendations ranks careers for the current answers.
func (s *Session) Recommendations() []string {
	return s.engine.Score(s.answers)
}
