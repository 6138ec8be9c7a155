package store

import (
	"encoding/json"
	"io"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
)

// ExportQuestions writes the questions as an indented JSON array, the
// same shape accepted by ImportQuestions.
func ExportQuestions(w io.Writer, questions []question.Question) error {
	if questions == nil {
		questions = []question.Question{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(questions)
}

// ImportQuestions reads a JSON array of questions. A payload that is
// valid JSON but not an array yields an empty set rather than an
// error, so a stray object or null file imports as "no questions".
func ImportQuestions(r io.Reader) ([]question.Question, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var questions []question.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		var probe any
		if json.Unmarshal(data, &probe) == nil {
			return nil, nil
		}
		return nil, err
	}
	return questions, nil
}
