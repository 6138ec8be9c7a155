package question_test

import (
	"math/rand"
	"testing"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
)

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want question.Difficulty
	}{
		{"easy", question.Easy},
		{"  Medium ", question.Medium},
		{"HARD", question.Hard},
		{"tricky", question.Unknown},
		{"", question.Unknown},
	}
	for _, c := range cases {
		if got := question.ParseDifficulty(c.in); got != c.want {
			t.Errorf("ParseDifficulty(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestOptions_DeduplicatesAnswerAndDistractors(t *testing.T) {
	q := question.Question{
		Text:        "What is the capital of France?",
		Answer:      "Paris",
		Distractors: []string{"Lyon", "Paris", "Marseille", "Lyon"},
	}

	opts := q.Options(rand.New(rand.NewSource(1)))

	if len(opts) != 3 {
		t.Fatalf("expected 3 distinct options, got %d: %v", len(opts), opts)
	}
	seen := map[string]bool{}
	for _, o := range opts {
		if seen[o] {
			t.Errorf("duplicate option %q in %v", o, opts)
		}
		seen[o] = true
	}
	if !seen["Paris"] {
		t.Error("expected the correct answer to be among the options")
	}
}

func TestOptions_ShuffleIsDeterministicPerSeed(t *testing.T) {
	q := question.Question{
		Answer:      "A",
		Distractors: []string{"B", "C", "D"},
	}

	first := q.Options(rand.New(rand.NewSource(42)))
	second := q.Options(rand.New(rand.NewSource(42)))

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical order for the same seed, got %v vs %v", first, second)
		}
	}
}

func TestIsCorrect_NormalizesCaseAndWhitespace(t *testing.T) {
	q := question.Question{Answer: "Paris"}

	if !q.IsCorrect("  paris ") {
		t.Error("expected trimmed lowercase match to be correct")
	}
	if q.IsCorrect("Lyon") {
		t.Error("expected a different option to be incorrect")
	}
}

func TestClean_DropsInvalidQuestions(t *testing.T) {
	input := []question.Question{
		{Text: "What is Go?", Answer: "A language", Distractors: []string{"A city"}},
		{Text: "", Answer: "A", Distractors: []string{"B"}},
		{Text: "Missing answer?", Answer: "  ", Distractors: []string{"B"}},
		{Text: "No distractors?", Answer: "A", Distractors: []string{"  ", ""}},
		{Text: "Who wrote the paper?", Answer: "1969", Distractors: []string{"Smith"}},
		{Text: "When did it happen?", Answer: "last century", Distractors: []string{"1901"}},
		{Text: "When was Go released?", Answer: "2009", Distractors: []string{"2012"}},
	}

	cleaned := question.Clean(input)

	if len(cleaned) != 2 {
		t.Fatalf("expected 2 surviving questions, got %d", len(cleaned))
	}
	if cleaned[0].Text != "What is Go?" || cleaned[1].Text != "When was Go released?" {
		t.Errorf("unexpected survivors: %+v", cleaned)
	}
}

func TestClean_TrimsDistractors(t *testing.T) {
	input := []question.Question{
		{Text: "Q", Answer: "A", Distractors: []string{" B ", "", "C"}},
	}

	cleaned := question.Clean(input)

	if len(cleaned) != 1 {
		t.Fatalf("expected 1 question, got %d", len(cleaned))
	}
	got := cleaned[0].Distractors
	if len(got) != 2 || got[0] != "B" || got[1] != "C" {
		t.Errorf("expected trimmed distractors [B C], got %v", got)
	}
}
