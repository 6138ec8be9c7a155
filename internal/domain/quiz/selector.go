package quiz

import (
	"math/rand"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
)

// Sequential walks the question set strictly in order. It is the
// strategy behind the guided quiz session: questions[index] until the
// set is exhausted, which is a defined terminal state rather than an
// error.
type Sequential struct {
	questions []question.Question
	index     int
}

func NewSequential(questions []question.Question) *Sequential {
	return &Sequential{questions: questions}
}

// Current returns the question at the cursor. ok is false once the set
// is exhausted (or was empty to begin with).
func (s *Sequential) Current() (question.Question, bool) {
	if s.index >= len(s.questions) {
		return question.Question{}, false
	}
	return s.questions[s.index], true
}

// Advance moves the cursor to the next question.
func (s *Sequential) Advance() {
	if s.index < len(s.questions) {
		s.index++
	}
}

// Exhausted reports whether every question has been passed.
func (s *Sequential) Exhausted() bool {
	return s.index >= len(s.questions)
}

// Position returns the 1-based position of the current question and
// the total count, for "question N of total" display.
func (s *Sequential) Position() (current, total int) {
	return s.index + 1, len(s.questions)
}

// Reset moves the cursor back to the first question.
func (s *Sequential) Reset() {
	s.index = 0
}

// Adaptive samples from the pool matching the session's current
// difficulty level, falling back to the whole set when that pool is
// empty. Selection is uniform over the pool and has no memory of what
// was already shown unless avoidRepeat is enabled, in which case only
// an immediate repeat of the previous pick is re-rolled.
type Adaptive struct {
	questions   []question.Question
	level       question.Difficulty
	rng         *rand.Rand
	avoidRepeat bool
	lastText    string
}

// NewAdaptive creates an adaptive selector starting at medium
// difficulty. The random source is injected so tests can seed it.
func NewAdaptive(questions []question.Question, rng *rand.Rand, avoidRepeat bool) *Adaptive {
	return &Adaptive{
		questions:   questions,
		level:       InitialDifficulty,
		rng:         rng,
		avoidRepeat: avoidRepeat,
	}
}

// Level returns the selector's current difficulty.
func (a *Adaptive) Level() question.Difficulty {
	return a.level
}

// Next picks a question for the current level. ok is false only when
// the question set itself is empty ("no question available").
func (a *Adaptive) Next() (question.Question, bool) {
	pool := a.pool(a.level)
	if len(pool) == 0 {
		pool = a.questions
	}
	if len(pool) == 0 {
		return question.Question{}, false
	}

	q := pool[a.rng.Intn(len(pool))]
	// Re-roll an immediate repeat only while the pool offers an
	// alternative; a pool of identical texts must still return.
	if a.avoidRepeat && q.Text == a.lastText && hasOtherText(pool, a.lastText) {
		for q.Text == a.lastText {
			q = pool[a.rng.Intn(len(pool))]
		}
	}
	a.lastText = q.Text
	return q, true
}

func hasOtherText(pool []question.Question, text string) bool {
	for _, q := range pool {
		if q.Text != text {
			return true
		}
	}
	return false
}

// RecordOutcome steps the difficulty ladder after an answer.
func (a *Adaptive) RecordOutcome(wasCorrect bool) {
	a.level = NextDifficulty(a.level, wasCorrect)
}

// Reset returns the selector to its initial medium level.
func (a *Adaptive) Reset() {
	a.level = InitialDifficulty
	a.lastText = ""
}

func (a *Adaptive) pool(level question.Difficulty) []question.Question {
	var pool []question.Question
	for _, q := range a.questions {
		if q.Difficulty == level {
			pool = append(pool, q)
		}
	}
	return pool
}
