package generator

import (
	"context"
	"fmt"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
)

// Generator produces quiz questions from study material.
// Implementations may call a hosted LLM or return canned results (for tests).
type Generator interface {
	// GenerateQuestions returns up to count multiple-choice questions
	// derived from the given material chunk.
	GenerateQuestions(ctx context.Context, material string, count int) ([]question.Question, error)

	// ClassifyDifficulty assigns an easy/medium/hard label to a
	// question's text.
	ClassifyDifficulty(ctx context.Context, questionText string) (question.Difficulty, error)
}

// GenerateError is returned when generation fails so the caller can
// distinguish "model produced unusable output" from "model was
// unreachable."
type GenerateError struct {
	Reason  string
	Wrapped error
}

func (e *GenerateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}
