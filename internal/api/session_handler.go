package api

import (
	"math/rand"
	"net/http"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/quiz"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Mode        string `json:"mode" example:"adaptive"` // "sequential" (default) or "adaptive"
	Seed        *int64 `json:"seed,omitempty"`          // fixes the shuffle order, for reproducible runs
	AvoidRepeat bool   `json:"avoid_repeat,omitempty"`  // adaptive only: re-roll immediate repeats
}

type CreateSessionResponse struct {
	ID             string `json:"id"`
	QuizID         string `json:"quiz_id"`
	Mode           string `json:"mode" example:"adaptive"`
	TotalQuestions int    `json:"total_questions" example:"10"`
}

type QuestionView struct {
	Question   string   `json:"question" example:"What is a goroutine?"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty" example:"medium"`
	Topic      string   `json:"topic" example:"Concurrency"`
	Position   int      `json:"position" example:"3"`
	Total      int      `json:"total" example:"10"`
	Level      string   `json:"level" example:"medium"` // adaptive difficulty pointer
}

type SubmitAnswerRequest struct {
	Answer         string  `json:"answer" example:"A lightweight thread"`
	ElapsedSeconds float64 `json:"elapsed_seconds" example:"7.4"`
}

type SubmitAnswerResponse struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Score         int    `json:"score" example:"4"`
	Attempts      int    `json:"attempts" example:"6"`
	Finished      bool   `json:"finished"` // sequential mode: no questions left
}

type ProgressResponse struct {
	quiz.Progress
	Score int    `json:"score" example:"4"`
	Level string `json:"level" example:"hard"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a quiz session over a stored quiz.
// @Summary      Start a session
// @Description  Creates an in-memory session. Sessions are lost on restart; only quizzes persist.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        quizID   path  string                true  "Quiz ID"
// @Param        request  body  CreateSessionRequest  true  "Session options"
// @Success      201  {object}  CreateSessionResponse
// @Failure      400  {string}  string  "invalid mode"
// @Failure      404  {string}  string  "quiz not found"
// @Failure      409  {string}  string  "quiz has no questions"
// @Router       /quizzes/{quizID}/sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	mode := quiz.Mode(req.Mode)
	if req.Mode == "" {
		mode = quiz.ModeSequential
	}
	if mode != quiz.ModeSequential && mode != quiz.ModeAdaptive {
		http.Error(w, "mode must be sequential or adaptive", http.StatusBadRequest)
		return
	}

	q, err := h.store.GetQuiz(r.PathValue("quizID"))
	if h.handleStoreError(w, err, "quiz") {
		return
	}
	if len(q.Questions) == 0 {
		http.Error(w, "quiz has no questions", http.StatusConflict)
		return
	}

	cfg := quiz.Config{Mode: mode, AvoidRepeat: req.AvoidRepeat}
	if req.Seed != nil {
		cfg.Rand = rand.New(rand.NewSource(*req.Seed))
	}

	id, _ := h.sessions.Create(q.ID, q.Questions, cfg)
	h.logger.Info("session created", "session_id", id, "quiz_id", q.ID, "mode", mode)

	respondJSON(w, http.StatusCreated, CreateSessionResponse{
		ID:             id,
		QuizID:         q.ID,
		Mode:           string(mode),
		TotalQuestions: len(q.Questions),
	})
}

// currentQuestion returns the pending question with shuffled options.
// Re-reading without answering returns the same question in the same
// option order.
// @Summary      Get the current question
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  QuestionView
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "no question available"
// @Router       /sessions/{sessionID}/question [get]
func (h *Handler) currentQuestion(w http.ResponseWriter, r *http.Request) {
	handle, err := h.sessions.Get(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	handle.Lock()
	presented, state := handle.Session.Current()
	level := handle.Session.Level()
	handle.Unlock()

	switch state {
	case quiz.SelectionExhausted:
		http.Error(w, "all questions attempted", http.StatusConflict)
		return
	case quiz.SelectionEmpty:
		http.Error(w, "no question available", http.StatusConflict)
		return
	}

	respondJSON(w, http.StatusOK, QuestionView{
		Question:   presented.Question.Text,
		Options:    presented.Options,
		Difficulty: string(presented.Question.Difficulty),
		Topic:      presented.Question.Topic,
		Position:   presented.Position,
		Total:      presented.Total,
		Level:      string(level),
	})
}

// submitAnswer grades the pending question and moves the session
// forward.
// @Summary      Submit an answer
// @Description  Any string is accepted; a non-matching one is recorded as incorrect.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string               true  "Session ID"
// @Param        request    body  SubmitAnswerRequest  true  "Selected answer"
// @Success      200  {object}  SubmitAnswerResponse
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "no question to answer"
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	handle, err := h.sessions.Get(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	handle.Lock()
	feedback, ok := handle.Session.SubmitAnswer(req.Answer, req.ElapsedSeconds)
	score := handle.Session.Score()
	attempts := handle.Session.Attempts()
	finished := handle.Session.Exhausted()
	handle.Unlock()

	if !ok {
		http.Error(w, "no question to answer", http.StatusConflict)
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		IsCorrect:     feedback.IsCorrect,
		CorrectAnswer: feedback.CorrectAnswer,
		Score:         score,
		Attempts:      attempts,
		Finished:      finished,
	})
}

// restartSession resets the session to its initial state.
// @Summary      Restart a session
// @Description  Clears score, history and difficulty level; the question set is kept.
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204  "restarted"
// @Failure      404  {string}  string  "session not found"
// @Router       /sessions/{sessionID}/restart [post]
func (h *Handler) restartSession(w http.ResponseWriter, r *http.Request) {
	handle, err := h.sessions.Get(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	handle.Lock()
	handle.Session.Restart()
	handle.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// sessionProgress reports attempted/remaining counts and elapsed time.
// @Summary      Get session progress
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  ProgressResponse
// @Failure      404  {string}  string  "session not found"
// @Router       /sessions/{sessionID}/progress [get]
func (h *Handler) sessionProgress(w http.ResponseWriter, r *http.Request) {
	handle, err := h.sessions.Get(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	handle.Lock()
	resp := ProgressResponse{
		Progress: handle.Session.Progress(),
		Score:    handle.Session.Score(),
		Level:    string(handle.Session.Level()),
	}
	handle.Unlock()

	respondJSON(w, http.StatusOK, resp)
}

// sessionResults returns the analytics bundle for the result view.
// @Summary      Get session results
// @Description  Accuracy, response times, difficulty progression, weak topics and a study recommendation.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  quiz.Results
// @Failure      404  {string}  string  "session not found"
// @Router       /sessions/{sessionID}/results [get]
func (h *Handler) sessionResults(w http.ResponseWriter, r *http.Request) {
	handle, err := h.sessions.Get(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	handle.Lock()
	results := handle.Session.Results()
	handle.Unlock()

	respondJSON(w, http.StatusOK, results)
}

// deleteSession discards a session.
// @Summary      Delete a session
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204  "deleted"
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(r.PathValue("sessionID"))
	w.WriteHeader(http.StatusNoContent)
}
