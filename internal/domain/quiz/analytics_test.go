package quiz_test

import (
	"math"
	"testing"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/quiz"
)

func attempts(outcomes ...bool) []quiz.Attempt {
	history := make([]quiz.Attempt, len(outcomes))
	for i, correct := range outcomes {
		history[i] = quiz.Attempt{IsCorrect: correct, Difficulty: question.Medium, Topic: "General"}
	}
	return history
}

func TestAccuracy(t *testing.T) {
	if got := quiz.Accuracy(nil); got != 0.0 {
		t.Errorf("empty history: expected 0.0, got %v", got)
	}
	if got := quiz.Accuracy(attempts(true, true, false, false)); got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
	if got := quiz.Accuracy(attempts(true, true)); got != 1.0 {
		t.Errorf("expected 1.0, got %v", got)
	}
}

func TestAccuracy_StaysInBounds(t *testing.T) {
	histories := [][]quiz.Attempt{
		attempts(true),
		attempts(false),
		attempts(true, false, true, false, false),
	}
	for _, h := range histories {
		acc := quiz.Accuracy(h)
		if acc < 0.0 || acc > 1.0 {
			t.Errorf("accuracy out of bounds: %v", acc)
		}
	}
}

func TestAverageResponseTime(t *testing.T) {
	if got := quiz.AverageResponseTime(nil); got != 0.0 {
		t.Errorf("empty history: expected 0.0, got %v", got)
	}

	history := []quiz.Attempt{
		{ResponseTime: 2.0},
		{ResponseTime: 4.0},
	}
	if got := quiz.AverageResponseTime(history); got != 3.0 {
		t.Errorf("expected 3.0, got %v", got)
	}
}

func TestTotalScore(t *testing.T) {
	if got := quiz.TotalScore(nil, 1); got != 0 {
		t.Errorf("empty history: expected 0, got %d", got)
	}
	if got := quiz.TotalScore(attempts(true, false, true), 1); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := quiz.TotalScore(attempts(true, false, true), 5); got != 10 {
		t.Errorf("mark 5: expected 10, got %d", got)
	}
}

func TestDifficultyProgression(t *testing.T) {
	history := []quiz.Attempt{
		{Difficulty: question.Easy},
		{Difficulty: question.Hard},
		{Difficulty: question.Medium},
	}
	got := quiz.DifficultyProgression(history)
	want := []question.Difficulty{question.Easy, question.Hard, question.Medium}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if empty := quiz.DifficultyProgression(nil); len(empty) != 0 {
		t.Errorf("empty history: expected empty progression, got %v", empty)
	}
}

func TestDifficultyValue(t *testing.T) {
	cases := []struct {
		in   question.Difficulty
		want int
	}{
		{question.Easy, 1},
		{question.Medium, 2},
		{question.Hard, 3},
		{question.Unknown, 2},
		{question.Difficulty("weird"), 2}, // medium is the neutral default
	}
	for _, c := range cases {
		if got := quiz.DifficultyValue(c.in); got != c.want {
			t.Errorf("DifficultyValue(%q): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestTopicWisePerformance(t *testing.T) {
	history := []quiz.Attempt{
		{Topic: "A", IsCorrect: true},
		{Topic: "A", IsCorrect: true},
		{Topic: "B", IsCorrect: false},
		{Topic: "A", IsCorrect: false},
		{Topic: "B", IsCorrect: false},
	}

	perf := quiz.TopicWisePerformance(history)

	if len(perf) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(perf))
	}
	// First-appearance order: A before B.
	if perf[0].Topic != "A" || perf[1].Topic != "B" {
		t.Fatalf("expected topics [A B], got [%s %s]", perf[0].Topic, perf[1].Topic)
	}
	if perf[0].Attempts != 3 || perf[0].Correct != 2 {
		t.Errorf("topic A: expected 3 attempts / 2 correct, got %d/%d", perf[0].Attempts, perf[0].Correct)
	}
	if math.Abs(perf[0].Accuracy-2.0/3.0) > 0.001 {
		t.Errorf("topic A: expected accuracy ~0.667, got %v", perf[0].Accuracy)
	}
	if perf[1].Attempts != 2 || perf[1].Correct != 0 || perf[1].Accuracy != 0.0 {
		t.Errorf("topic B: expected 2 attempts / 0 correct / 0.0, got %+v", perf[1])
	}
}

func TestTopicWisePerformance_EmptyAndMissingTopic(t *testing.T) {
	if perf := quiz.TopicWisePerformance(nil); len(perf) != 0 {
		t.Errorf("empty history: expected no topics, got %v", perf)
	}

	perf := quiz.TopicWisePerformance([]quiz.Attempt{{IsCorrect: true}})
	if len(perf) != 1 || perf[0].Topic != "Unknown" {
		t.Errorf("expected missing topic to default to Unknown, got %+v", perf)
	}
}

func TestHardestTopics(t *testing.T) {
	history := []quiz.Attempt{
		{Topic: "A", IsCorrect: true},
		{Topic: "A", IsCorrect: true},
		{Topic: "A", IsCorrect: false},
		{Topic: "B", IsCorrect: false},
		{Topic: "B", IsCorrect: false},
	}
	perf := quiz.TopicWisePerformance(history)

	worst := quiz.HardestTopics(perf, 1)
	if len(worst) != 1 || worst[0] != "B" {
		t.Errorf("expected [B], got %v", worst)
	}

	all := quiz.HardestTopics(perf, 3)
	if len(all) != 2 || all[0] != "B" || all[1] != "A" {
		t.Errorf("expected [B A], got %v", all)
	}

	if empty := quiz.HardestTopics(nil, 3); len(empty) != 0 {
		t.Errorf("expected empty result, got %v", empty)
	}

	if negative := quiz.HardestTopics(perf, -1); len(negative) != 0 {
		t.Errorf("expected empty result for negative k, got %v", negative)
	}
}

func TestHardestTopics_TiesKeepGroupingOrder(t *testing.T) {
	history := []quiz.Attempt{
		{Topic: "First", IsCorrect: false},
		{Topic: "Second", IsCorrect: false},
		{Topic: "Third", IsCorrect: false},
	}
	perf := quiz.TopicWisePerformance(history)

	got := quiz.HardestTopics(perf, 3)
	want := []string{"First", "Second", "Third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRecommendation_Tiers(t *testing.T) {
	// accuracy 0.3 → remedial
	low := quiz.Recommendation(attempts(true, false, false, false, false, false, true, false, false, false))
	// accuracy 0.65 → moderate
	mid := quiz.Recommendation(attempts(true, true, true, true, true, true, true, true, true, true, true, true, true, false, false, false, false, false, false, false))
	// accuracy 0.9 → mastery
	high := quiz.Recommendation(attempts(true, true, true, true, true, true, true, true, true, false))

	if low == mid || mid == high || low == high {
		t.Fatal("expected three distinct recommendation texts")
	}
	if quiz.Recommendation(nil) != low {
		t.Error("expected empty history to map to the remedial tier")
	}
}

func TestRecommendation_Boundaries(t *testing.T) {
	// Exactly 0.5 is the moderate tier, not remedial.
	half := quiz.Recommendation(attempts(true, false))
	mid := quiz.Recommendation(attempts(true, true, false, true, false, true)) // ~0.67
	if half != mid {
		t.Error("expected accuracy 0.5 to land in the moderate tier")
	}

	// Exactly 0.8 is the mastery tier, not moderate.
	eight := quiz.Recommendation(attempts(true, true, true, true, false))
	high := quiz.Recommendation(attempts(true, true, true, true, true, true, true, true, true, false))
	if eight != high {
		t.Error("expected accuracy 0.8 to land in the mastery tier")
	}
}
