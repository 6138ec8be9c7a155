package quiz_test

import (
	"math/rand"
	"testing"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/quiz"
)

func newSequentialSession(n int) (*quiz.Session, []question.Question) {
	difficulties := make([]question.Difficulty, n)
	for i := range difficulties {
		difficulties[i] = question.Medium
	}
	questions := makeQuestions(difficulties...)
	s := quiz.New(questions, quiz.Config{
		Mode: quiz.ModeSequential,
		Rand: rand.New(rand.NewSource(11)),
	})
	return s, questions
}

func TestSession_EmptySetIsNotReady(t *testing.T) {
	s := quiz.New(nil, quiz.Config{Mode: quiz.ModeSequential})

	if _, state := s.Current(); state != quiz.SelectionEmpty {
		t.Errorf("expected SelectionEmpty, got %v", state)
	}
	if _, ok := s.SubmitAnswer("anything", 1.0); ok {
		t.Error("expected submit to be rejected with no questions")
	}
}

func TestSession_SequentialWalkAndExhaustion(t *testing.T) {
	s, questions := newSequentialSession(5)

	for i := 0; i < 5; i++ {
		presented, state := s.Current()
		if state != quiz.SelectionOK {
			t.Fatalf("question %d: expected SelectionOK, got %v", i, state)
		}
		if presented.Question.Text != questions[i].Text {
			t.Errorf("question %d: expected %q, got %q", i, questions[i].Text, presented.Question.Text)
		}
		if presented.Position != i+1 || presented.Total != 5 {
			t.Errorf("question %d: expected position %d/5, got %d/%d", i, i+1, presented.Position, presented.Total)
		}
		if _, ok := s.SubmitAnswer(presented.Question.Answer, 1.0); !ok {
			t.Fatalf("question %d: submit failed", i)
		}
	}

	if _, state := s.Current(); state != quiz.SelectionExhausted {
		t.Errorf("expected SelectionExhausted after 5 submissions, got %v", state)
	}
	if !s.Exhausted() {
		t.Error("expected Exhausted to report true")
	}
}

func TestSession_RestartResetsEverything(t *testing.T) {
	s, questions := newSequentialSession(3)

	for i := 0; i < 3; i++ {
		presented, _ := s.Current()
		s.SubmitAnswer(presented.Question.Answer, 1.0)
	}
	s.Results() // flip into result view

	s.Restart()

	if s.Score() != 0 || s.Attempts() != 0 || len(s.History()) != 0 {
		t.Errorf("expected cleared counters, got score=%d attempts=%d history=%d",
			s.Score(), s.Attempts(), len(s.History()))
	}
	if s.InResultView() {
		t.Error("expected result view flag to be cleared")
	}
	presented, state := s.Current()
	if state != quiz.SelectionOK || presented.Question.Text != questions[0].Text {
		t.Errorf("expected first question after restart, got %q (state=%v)", presented.Question.Text, state)
	}
}

func TestSession_ScoreAndAttemptConsistency(t *testing.T) {
	s, questions := newSequentialSession(4)

	// Two correct, two incorrect.
	answers := []string{questions[0].Answer, "wrong", questions[2].Answer, "wrong"}
	for _, a := range answers {
		s.Current()
		if _, ok := s.SubmitAnswer(a, 1.0); !ok {
			t.Fatal("submit failed")
		}
	}

	if s.Attempts() != 4 {
		t.Errorf("expected 4 attempts, got %d", s.Attempts())
	}
	if s.Score() != 2 {
		t.Errorf("expected score 2, got %d", s.Score())
	}
	if got := quiz.TotalScore(s.History(), 1); got != s.Score() {
		t.Errorf("score %d and TotalScore %d disagree", s.Score(), got)
	}
}

func TestSession_SubmitNormalizesAnswer(t *testing.T) {
	questions := []question.Question{{
		Text:        "Capital of France?",
		Answer:      "Paris",
		Distractors: []string{"Lyon"},
		Difficulty:  question.Easy,
		Topic:       "Geography",
	}}
	s := quiz.New(questions, quiz.Config{Rand: rand.New(rand.NewSource(1))})

	s.Current()
	feedback, ok := s.SubmitAnswer("  PARIS ", 2.5)
	if !ok || !feedback.IsCorrect {
		t.Errorf("expected normalized match to count as correct, got %+v (ok=%v)", feedback, ok)
	}
	if feedback.CorrectAnswer != "Paris" {
		t.Errorf("expected correct answer echoed, got %q", feedback.CorrectAnswer)
	}
}

func TestSession_HistorySnapshotsDifficultyAndTopic(t *testing.T) {
	questions := []question.Question{{
		Text:        "Q",
		Answer:      "A",
		Distractors: []string{"B"},
		Difficulty:  question.Hard,
		Topic:       "Channels",
	}}
	s := quiz.New(questions, quiz.Config{Rand: rand.New(rand.NewSource(1))})

	s.Current()
	s.SubmitAnswer("B", 3.0)

	history := s.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(history))
	}
	got := history[0]
	if got.IsCorrect || got.Difficulty != question.Hard || got.Topic != "Channels" || got.ResponseTime != 3.0 {
		t.Errorf("unexpected attempt record: %+v", got)
	}
}

func TestSession_NegativeResponseTimeClampedToZero(t *testing.T) {
	s, _ := newSequentialSession(1)
	s.Current()
	s.SubmitAnswer("wrong", -5.0)

	if rt := s.History()[0].ResponseTime; rt != 0 {
		t.Errorf("expected clamped response time 0, got %v", rt)
	}
}

func TestSession_PresentationIsStableAcrossRereads(t *testing.T) {
	questions := []question.Question{{
		Text:        "Q",
		Answer:      "A",
		Distractors: []string{"B", "C", "D"},
		Difficulty:  question.Medium,
	}}
	s := quiz.New(questions, quiz.Config{Rand: rand.New(rand.NewSource(9))})

	first, _ := s.Current()
	second, _ := s.Current()

	if len(first.Options) != len(second.Options) {
		t.Fatal("expected identical option sets")
	}
	for i := range first.Options {
		if first.Options[i] != second.Options[i] {
			t.Fatalf("option order changed between re-reads: %v vs %v", first.Options, second.Options)
		}
	}
}

func TestSession_AdaptiveLadderMoves(t *testing.T) {
	questions := makeQuestions(question.Easy, question.Medium, question.Hard)
	s := quiz.New(questions, quiz.Config{
		Mode: quiz.ModeAdaptive,
		Rand: rand.New(rand.NewSource(21)),
	})

	if s.Level() != question.Medium {
		t.Fatalf("expected initial level medium, got %q", s.Level())
	}

	presented, state := s.Current()
	if state != quiz.SelectionOK {
		t.Fatalf("expected a question, got state %v", state)
	}
	s.SubmitAnswer(presented.Question.Answer, 1.0)
	if s.Level() != question.Hard {
		t.Errorf("expected level hard after correct answer, got %q", s.Level())
	}

	presented, _ = s.Current()
	s.SubmitAnswer("wrong", 1.0)
	if s.Level() != question.Medium {
		t.Errorf("expected level medium after incorrect answer, got %q", s.Level())
	}
}

func TestSession_SequentialLevelFollowsAnswers(t *testing.T) {
	questions := makeQuestions(question.Easy, question.Medium, question.Hard)
	s := quiz.New(questions, quiz.Config{
		Mode: quiz.ModeSequential,
		Rand: rand.New(rand.NewSource(4)),
	})

	s.SubmitAnswer("wrong", 1.0)
	if s.Level() != question.Easy {
		t.Errorf("expected level easy after incorrect answer, got %q", s.Level())
	}

	// Selection still walks the set in order regardless of the level.
	presented, state := s.Current()
	if state != quiz.SelectionOK {
		t.Fatalf("expected a question, got state %v", state)
	}
	if presented.Position != 2 {
		t.Errorf("expected position 2, got %d", presented.Position)
	}
	if presented.Question.Difficulty != question.Medium {
		t.Errorf("expected the second question in order, got %q", presented.Question.Difficulty)
	}
}

func TestSession_AdaptiveNeverExhausts(t *testing.T) {
	questions := makeQuestions(question.Medium, question.Medium)
	s := quiz.New(questions, quiz.Config{
		Mode: quiz.ModeAdaptive,
		Rand: rand.New(rand.NewSource(5)),
	})

	for i := 0; i < 10; i++ {
		presented, state := s.Current()
		if state != quiz.SelectionOK {
			t.Fatalf("round %d: expected a question, got state %v", i, state)
		}
		s.SubmitAnswer(presented.Question.Answer, 0.5)
	}
	if s.Exhausted() {
		t.Error("adaptive sessions must not exhaust")
	}
}

func TestSession_Progress(t *testing.T) {
	s, questions := newSequentialSession(3)

	s.Current()
	s.SubmitAnswer(questions[0].Answer, 1.0)

	p := s.Progress()
	if p.Attempted != 1 || p.Remaining != 2 {
		t.Errorf("expected 1 attempted / 2 remaining, got %d/%d", p.Attempted, p.Remaining)
	}
	if p.ElapsedSeconds < 0 {
		t.Errorf("expected non-negative elapsed time, got %v", p.ElapsedSeconds)
	}
}

func TestSession_ResultsBundle(t *testing.T) {
	questions := []question.Question{
		{Text: "Q1", Answer: "A", Distractors: []string{"B"}, Difficulty: question.Easy, Topic: "T1"},
		{Text: "Q2", Answer: "A", Distractors: []string{"B"}, Difficulty: question.Medium, Topic: "T2"},
	}
	s := quiz.New(questions, quiz.Config{Rand: rand.New(rand.NewSource(2))})

	s.Current()
	s.SubmitAnswer("A", 2.0)
	s.Current()
	s.SubmitAnswer("B", 4.0)

	results := s.Results()

	if !s.InResultView() {
		t.Error("expected Results to flip the result-view flag")
	}
	if results.Accuracy != 0.5 || results.Score != 1 || results.Attempts != 2 {
		t.Errorf("unexpected summary: %+v", results)
	}
	if results.AverageResponseTime != 3.0 {
		t.Errorf("expected average response time 3.0, got %v", results.AverageResponseTime)
	}
	wantValues := []int{1, 2}
	for i, v := range results.ProgressionValues {
		if v != wantValues[i] {
			t.Errorf("progression values: expected %v, got %v", wantValues, results.ProgressionValues)
			break
		}
	}
	if len(results.WeakTopics) == 0 || results.WeakTopics[0] != "T2" {
		t.Errorf("expected T2 as weakest topic, got %v", results.WeakTopics)
	}
	if results.Recommendation == "" {
		t.Error("expected a recommendation")
	}
}
