package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/quiz"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/extract"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/generator"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/worker"
)

// QuizStore is the persistence surface the service needs.
type QuizStore interface {
	SaveQuiz(q *quiz.Quiz) error
	GetQuiz(id string) (*quiz.Quiz, error)
	ListQuizzes() ([]quiz.Summary, error)
	DeleteQuiz(id string) error
}

// GenerationService turns uploaded study material into stored quizzes.
// Chunks of the material are generated in parallel; chunk failures are
// logged and skipped as long as at least one chunk produces questions.
type GenerationService struct {
	store   QuizStore
	gen     generator.Generator
	logger  *slog.Logger
	workers int
}

func NewGenerationService(s QuizStore, g generator.Generator, logger *slog.Logger, workers int) *GenerationService {
	if workers < 1 {
		workers = 1
	}
	return &GenerationService{
		store:   s,
		gen:     g,
		logger:  logger,
		workers: workers,
	}
}

// CreateFromPDF extracts text from a PDF and generates a quiz from it.
func (gs *GenerationService) CreateFromPDF(ctx context.Context, title string, r io.ReaderAt, size int64, count int) (*quiz.Quiz, error) {
	text, err := extract.FromPDF(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to extract PDF text: %w", err)
	}
	return gs.CreateFromText(ctx, title, text, count)
}

// CreateFromText generates a quiz from raw study material and persists
// it.
func (gs *GenerationService) CreateFromText(ctx context.Context, title, text string, count int) (*quiz.Quiz, error) {
	if count < 1 {
		count = 1
	}

	chunks := extract.SplitChunks(extract.CleanText(text), 0)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no text to generate questions from")
	}

	perChunk := (count + len(chunks) - 1) / len(chunks)

	type chunkResult struct {
		questions []question.Question
		err       error
	}

	results := worker.Map(gs.workers, chunks, func(chunk string) chunkResult {
		questions, err := gs.gen.GenerateQuestions(ctx, chunk, perChunk)
		return chunkResult{questions: questions, err: err}
	})

	var questions []question.Question
	for i, res := range results {
		if res.err != nil {
			gs.logger.Warn("chunk generation failed", "chunk", i, "error", res.err)
			continue
		}
		questions = append(questions, res.questions...)
	}

	questions = question.Clean(questions)
	if len(questions) > count {
		questions = questions[:count]
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no usable questions generated")
	}

	gs.classifyMissing(ctx, questions)

	return gs.save(title, questions)
}

// Import stores a ready-made question set as a quiz. The same cleaning
// rules apply as for generated questions.
func (gs *GenerationService) Import(title string, questions []question.Question) (*quiz.Quiz, error) {
	questions = question.Clean(questions)
	if len(questions) == 0 {
		return nil, fmt.Errorf("no usable questions in import")
	}
	return gs.save(title, questions)
}

// classifyMissing fills in difficulty labels the model left out.
// Classification failures leave the question at medium.
func (gs *GenerationService) classifyMissing(ctx context.Context, questions []question.Question) {
	for i := range questions {
		switch questions[i].Difficulty {
		case question.Easy, question.Medium, question.Hard:
			continue
		}
		difficulty, err := gs.gen.ClassifyDifficulty(ctx, questions[i].Text)
		if err != nil {
			gs.logger.Warn("difficulty classification failed", "error", err)
			questions[i].Difficulty = question.Medium
			continue
		}
		questions[i].Difficulty = difficulty
	}
}

func (gs *GenerationService) save(title string, questions []question.Question) (*quiz.Quiz, error) {
	q := &quiz.Quiz{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
		Questions: questions,
	}
	for i := range q.Questions {
		if q.Questions[i].ID == "" {
			q.Questions[i].ID = uuid.New().String()
		}
	}

	if err := gs.store.SaveQuiz(q); err != nil {
		return nil, fmt.Errorf("failed to save quiz: %w", err)
	}

	gs.logger.Info("quiz created", "quiz_id", q.ID, "questions", len(q.Questions))
	return q, nil
}
