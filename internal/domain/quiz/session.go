package quiz

import (
	"math/rand"
	"time"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
)

// Mode selects the question-selection strategy for a session. The two
// modes are deliberately independent subsystems: the guided session
// walks the set in order, the adaptive one samples by difficulty.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeAdaptive   Mode = "adaptive"
)

// SelectionState tells the caller what a selection attempt produced.
type SelectionState int

const (
	// SelectionOK means a question is available for presentation.
	SelectionOK SelectionState = iota
	// SelectionExhausted is the sequential terminal state: every
	// question has been attempted.
	SelectionExhausted
	// SelectionEmpty means no question is available for selection,
	// a "not ready" condition rather than an error.
	SelectionEmpty
)

// Config holds the options for a new session.
type Config struct {
	Mode        Mode
	AvoidRepeat bool       // adaptive only: re-roll immediate repeats
	Rand        *rand.Rand // nil = time-seeded; inject a seeded source in tests
}

// Presented is one question as shown to the user: shuffled options,
// fixed for the lifetime of this presentation.
type Presented struct {
	Question question.Question
	Options  []string
	Position int // 1-based, sequential mode
	Total    int
}

// Feedback is the immediate result of one submitted answer.
type Feedback struct {
	IsCorrect     bool
	CorrectAnswer string
}

// Progress is a snapshot of how far the session has come.
type Progress struct {
	Attempted      int     `json:"attempted"`
	Remaining      int     `json:"remaining"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// Results is the full analytics bundle for the result view.
type Results struct {
	Accuracy            float64               `json:"accuracy"`
	AverageResponseTime float64               `json:"average_response_time"`
	Score               int                   `json:"score"`
	Attempts            int                   `json:"attempts"`
	Progression         []question.Difficulty `json:"difficulty_progression"`
	ProgressionValues   []int                 `json:"difficulty_values"`
	Topics              []TopicPerformance    `json:"topics"`
	WeakTopics          []string              `json:"weak_topics"`
	Recommendation      string                `json:"recommendation"`
}

// Session is the per-user quiz state: cursor or difficulty level,
// score, attempt history, start time and result-view flag. It is owned
// by exactly one caller and is not safe for concurrent use.
type Session struct {
	mode      Mode
	questions []question.Question
	seq       *Sequential
	adaptive  *Adaptive
	rng       *rand.Rand

	score      int
	attempts   int
	history    []Attempt
	startedAt  time.Time
	resultView bool

	// presented pins the current question and its shuffled options so
	// re-renders of the same presentation see a stable order.
	presented *Presented
}

// New creates a session over an immutable question set.
func New(questions []question.Question, cfg Config) *Session {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	mode := cfg.Mode
	if mode == "" {
		mode = ModeSequential
	}
	return &Session{
		mode:      mode,
		questions: questions,
		seq:       NewSequential(questions),
		adaptive:  NewAdaptive(questions, rng, cfg.AvoidRepeat),
		rng:       rng,
		startedAt: time.Now(),
	}
}

func (s *Session) Mode() Mode           { return s.mode }
func (s *Session) Score() int           { return s.score }
func (s *Session) Attempts() int        { return s.attempts }
func (s *Session) History() []Attempt   { return s.history }
func (s *Session) InResultView() bool   { return s.resultView }
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Level returns the difficulty pointer. It starts at medium and steps
// with every answer; only adaptive selection consults it, the
// sequential cursor ignores it.
func (s *Session) Level() question.Difficulty {
	return s.adaptive.Level()
}

// Current returns the pending question, selecting one first if none is
// pinned. The presentation (including option order) stays stable until
// the answer is submitted.
func (s *Session) Current() (Presented, SelectionState) {
	if len(s.questions) == 0 {
		return Presented{}, SelectionEmpty
	}
	if s.presented != nil {
		return *s.presented, SelectionOK
	}

	var q question.Question
	var pos int
	switch s.mode {
	case ModeAdaptive:
		next, ok := s.adaptive.Next()
		if !ok {
			return Presented{}, SelectionEmpty
		}
		q = next
		pos = s.attempts + 1
	default:
		cur, ok := s.seq.Current()
		if !ok {
			return Presented{}, SelectionExhausted
		}
		q = cur
		pos, _ = s.seq.Position()
	}

	s.presented = &Presented{
		Question: q,
		Options:  q.Options(s.rng),
		Position: pos,
		Total:    len(s.questions),
	}
	return *s.presented, SelectionOK
}

// SubmitAnswer grades the pending question, records the attempt and
// moves the session forward. ok is false when there is no question to
// answer (empty set or exhausted sequence). A non-matching option is
// recorded as incorrect, never rejected.
func (s *Session) SubmitAnswer(selected string, elapsedSeconds float64) (Feedback, bool) {
	presented, state := s.Current()
	if state != SelectionOK {
		return Feedback{}, false
	}

	q := presented.Question
	correct := q.IsCorrect(selected)
	s.record(q, correct, elapsedSeconds)

	// The ladder follows every answer. In sequential mode it only feeds
	// the level display; selection stays strictly by index.
	s.adaptive.RecordOutcome(correct)
	if s.mode != ModeAdaptive {
		s.seq.Advance()
	}
	s.presented = nil

	return Feedback{IsCorrect: correct, CorrectAnswer: q.Answer}, true
}

// record is the single point of mutation for the score and attempt
// counters. It snapshots the question's difficulty and topic into the
// history entry.
func (s *Session) record(q question.Question, correct bool, responseTime float64) {
	if responseTime < 0 {
		responseTime = 0
	}
	s.history = append(s.history, Attempt{
		IsCorrect:    correct,
		Difficulty:   q.Difficulty,
		Topic:        q.Topic,
		ResponseTime: responseTime,
	})
	s.attempts++
	if correct {
		s.score++
	}
}

// Exhausted reports whether a sequential session has attempted every
// question. Adaptive sessions never exhaust.
func (s *Session) Exhausted() bool {
	return s.mode == ModeSequential && s.seq.Exhausted()
}

// Progress reports attempted/remaining counts and wall-clock session
// time.
func (s *Session) Progress() Progress {
	remaining := len(s.questions) - s.attempts
	if remaining < 0 {
		remaining = 0
	}
	return Progress{
		Attempted:      s.attempts,
		Remaining:      remaining,
		ElapsedSeconds: time.Since(s.startedAt).Seconds(),
	}
}

// Results switches the session into the read-only result view and
// returns the analytics bundle.
func (s *Session) Results() Results {
	s.resultView = true
	progression := DifficultyProgression(s.history)
	values := make([]int, len(progression))
	for i, d := range progression {
		values[i] = DifficultyValue(d)
	}
	topics := TopicWisePerformance(s.history)
	return Results{
		Accuracy:            Accuracy(s.history),
		AverageResponseTime: AverageResponseTime(s.history),
		Score:               TotalScore(s.history, 1),
		Attempts:            s.attempts,
		Progression:         progression,
		ProgressionValues:   values,
		Topics:              topics,
		WeakTopics:          HardestTopics(topics, 3),
		Recommendation:      Recommendation(s.history),
	}
}

// Restart clears all session state back to initial values: cursor at
// the first question, level at medium, empty history, fresh clock.
func (s *Session) Restart() {
	s.seq.Reset()
	s.adaptive.Reset()
	s.score = 0
	s.attempts = 0
	s.history = nil
	s.startedAt = time.Now()
	s.resultView = false
	s.presented = nil
}
