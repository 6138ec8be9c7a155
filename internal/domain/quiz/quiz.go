package quiz

import (
	"time"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
)

// Quiz is a stored bundle of questions, usually generated from one
// uploaded document.
type Quiz struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	CreatedAt time.Time           `json:"created_at"`
	Questions []question.Question `json:"questions,omitempty"`
}

// Summary is the listing view of a quiz, without its questions.
type Summary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"created_at"`
	QuestionCount int       `json:"question_count"`
}
