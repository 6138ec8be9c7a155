package question

import (
	"math/rand"
	"strings"
)

// Difficulty is the three-level ladder used both as a question attribute
// and as the adaptive session pointer.
type Difficulty string

const (
	Easy    Difficulty = "easy"
	Medium  Difficulty = "medium"
	Hard    Difficulty = "hard"
	Unknown Difficulty = "unknown"
)

// Levels returns the ladder in ascending order.
func Levels() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty maps a raw label onto the ladder. Anything the
// generator produced outside the three known labels is treated as
// Unknown rather than rejected.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Easy:
		return Easy
	case Medium:
		return Medium
	case Hard:
		return Hard
	default:
		return Unknown
	}
}

type Kind string

const (
	KindMCQ         Kind = "mcq"
	KindTrueFalse   Kind = "true_false"
	KindShortAnswer Kind = "short_answer"
	KindFillBlank   Kind = "fill_blank"
)

// Question is one generated quiz question. The JSON field names match
// the questions.json interchange format, so a set exported by one
// instance can be imported by another.
type Question struct {
	ID          string     `json:"id,omitempty"`
	Text        string     `json:"question"`
	Answer      string     `json:"answer"`
	Distractors []string   `json:"distractors"`
	Difficulty  Difficulty `json:"difficulty"`
	Topic       string     `json:"topic"`
	Kind        Kind       `json:"type"`
}

// Options builds the presented option set: the correct answer plus all
// distractors, de-duplicated (first occurrence wins), shuffled with the
// given source. Callers cache the result so the order stays fixed for
// the lifetime of one presentation.
func (q Question) Options(rng *rand.Rand) []string {
	seen := make(map[string]struct{}, len(q.Distractors)+1)
	opts := make([]string, 0, len(q.Distractors)+1)
	for _, o := range append([]string{q.Answer}, q.Distractors...) {
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		opts = append(opts, o)
	}
	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

// IsCorrect compares a selected option against the answer,
// case-insensitively and ignoring surrounding whitespace. A mismatch is
// an incorrect answer, never an error.
func (q Question) IsCorrect(selected string) bool {
	return strings.EqualFold(strings.TrimSpace(selected), strings.TrimSpace(q.Answer))
}
