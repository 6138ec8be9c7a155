package question

import (
	"strings"
	"unicode"
)

// Clean validates and normalizes a batch of generated questions,
// dropping the ones the model got obviously wrong:
//   - empty question text or answer
//   - no distractors left after trimming
//   - "who" questions whose answer looks numeric (a year is not a person)
//   - "when" questions whose answer contains no digit at all
//
// Kept questions come back with text, answer and distractors trimmed.
func Clean(questions []Question) []Question {
	cleaned := make([]Question, 0, len(questions))
	for _, q := range questions {
		q.Text = strings.TrimSpace(q.Text)
		q.Answer = strings.TrimSpace(q.Answer)

		distractors := make([]string, 0, len(q.Distractors))
		for _, d := range q.Distractors {
			if d = strings.TrimSpace(d); d != "" {
				distractors = append(distractors, d)
			}
		}
		q.Distractors = distractors

		if q.Text == "" || q.Answer == "" || len(q.Distractors) == 0 {
			continue
		}

		lower := strings.ToLower(q.Text)
		if strings.HasPrefix(lower, "who") && containsDigit(q.Answer) {
			continue
		}
		if strings.HasPrefix(lower, "when") && !containsDigit(q.Answer) {
			continue
		}

		cleaned = append(cleaned, q)
	}
	return cleaned
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
