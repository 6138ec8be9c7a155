package store

import (
	"database/sql"
	"encoding/json"

	_ "modernc.org/sqlite"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/quiz"
)

const schema = `
CREATE TABLE IF NOT EXISTS quizzes (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    quiz_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    text TEXT NOT NULL,
    answer TEXT NOT NULL,
    distractors TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    topic TEXT NOT NULL,
    kind TEXT NOT NULL,
    FOREIGN KEY (quiz_id) REFERENCES quizzes(id) ON DELETE CASCADE
);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Quizzes
// ============================================================================

// SaveQuiz stores the quiz and its questions in one transaction.
// Question order is preserved via the position column; distractors are
// stored as a JSON array in a single column.
func (s *SQLiteStore) SaveQuiz(q *quiz.Quiz) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec("INSERT INTO quizzes (id, title, created_at) VALUES (?, ?, ?)",
		q.ID, q.Title, q.CreatedAt.UTC())
	if err != nil {
		return err
	}

	for i, qu := range q.Questions {
		distractors, err := json.Marshal(qu.Distractors)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			"INSERT INTO questions (id, quiz_id, position, text, answer, distractors, difficulty, topic, kind) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			qu.ID, q.ID, i, qu.Text, qu.Answer, string(distractors), string(qu.Difficulty), qu.Topic, string(qu.Kind))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetQuiz(id string) (*quiz.Quiz, error) {
	var q quiz.Quiz
	err := s.db.QueryRow("SELECT id, title, created_at FROM quizzes WHERE id = ?", id).
		Scan(&q.ID, &q.Title, &q.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	questions, err := s.quizQuestions(id)
	if err != nil {
		return nil, err
	}
	q.Questions = questions
	return &q, nil
}

// ListQuizzes returns all quizzes as summaries, newest first.
func (s *SQLiteStore) ListQuizzes() ([]quiz.Summary, error) {
	rows, err := s.db.Query(`
		SELECT q.id, q.title, q.created_at, COUNT(qs.id)
		FROM quizzes q
		LEFT JOIN questions qs ON qs.quiz_id = q.id
		GROUP BY q.id
		ORDER BY q.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []quiz.Summary
	for rows.Next() {
		var q quiz.Summary
		if err := rows.Scan(&q.ID, &q.Title, &q.CreatedAt, &q.QuestionCount); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

func (s *SQLiteStore) DeleteQuiz(id string) error {
	res, err := s.db.Exec("DELETE FROM quizzes WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	_, err = s.db.Exec("DELETE FROM questions WHERE quiz_id = ?", id)
	return err
}

func (s *SQLiteStore) quizQuestions(quizID string) ([]question.Question, error) {
	rows, err := s.db.Query(
		"SELECT id, text, answer, distractors, difficulty, topic, kind FROM questions WHERE quiz_id = ? ORDER BY position",
		quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []question.Question
	for rows.Next() {
		var qu question.Question
		var distractors, difficulty, kind string
		if err := rows.Scan(&qu.ID, &qu.Text, &qu.Answer, &distractors, &difficulty, &qu.Topic, &kind); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(distractors), &qu.Distractors); err != nil {
			return nil, err
		}
		qu.Difficulty = question.Difficulty(difficulty)
		qu.Kind = question.Kind(kind)
		questions = append(questions, qu)
	}
	return questions, rows.Err()
}
