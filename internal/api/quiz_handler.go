package api

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/quiz"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type QuizResponse struct {
	ID            string    `json:"id" example:"6b911b3e-8b6c-4b9f-9a76-2f31c0d1a1f2"`
	Title         string    `json:"title" example:"Operating Systems Chapter 3"`
	CreatedAt     time.Time `json:"created_at"`
	QuestionCount int       `json:"question_count" example:"10"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Sessions int    `json:"sessions" example:"2"`
}

const maxUploadBytes = 32 << 20 // 32 MiB

// ── Handlers ────────────────────────────────────────────────────────────────

// health reports service liveness.
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Sessions: h.sessions.Count(),
	})
}

// createQuiz generates a quiz from an uploaded document.
// @Summary      Create a quiz from a document
// @Description  Upload a PDF or plain-text file and generate questions from it.
// @Tags         Quizzes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file           formData  file    true   "PDF or text document"
// @Param        title          formData  string  false  "Quiz title (defaults to the file name)"
// @Param        num_questions  formData  int     false  "Number of questions to generate"  default(10)
// @Success      201  {object}  QuizResponse
// @Failure      400  {string}  string  "bad upload"
// @Failure      502  {string}  string  "generation failed"
// @Router       /quizzes [post]
func (h *Handler) createQuiz(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	if title == "" {
		title = strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	}

	count := 10
	if v := r.FormValue("num_questions"); v != "" {
		count, err = strconv.Atoi(v)
		if err != nil || count < 1 {
			http.Error(w, "num_questions must be a positive integer", http.StatusBadRequest)
			return
		}
	}

	var created *quiz.Quiz
	if strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		created, err = h.generation.CreateFromPDF(r.Context(), title, file, header.Size, count)
	} else {
		var text []byte
		text, err = io.ReadAll(file)
		if err != nil {
			http.Error(w, "failed to read upload", http.StatusBadRequest)
			return
		}
		created, err = h.generation.CreateFromText(r.Context(), title, string(text), count)
	}
	if err != nil {
		h.logger.Error("quiz generation failed", "file", header.Filename, "error", err)
		http.Error(w, "failed to generate quiz", http.StatusBadGateway)
		return
	}

	respondJSON(w, http.StatusCreated, QuizResponse{
		ID:            created.ID,
		Title:         created.Title,
		CreatedAt:     created.CreatedAt,
		QuestionCount: len(created.Questions),
	})
}

// importQuiz stores a ready-made question set.
// @Summary      Import a question set
// @Description  Accepts the JSON array format produced by the export endpoint.
// @Tags         Quizzes
// @Accept       json
// @Produce      json
// @Param        title  query  string  false  "Quiz title"  default(Imported quiz)
// @Success      201  {object}  QuizResponse
// @Failure      400  {string}  string  "bad payload"
// @Router       /quizzes/import [post]
func (h *Handler) importQuiz(w http.ResponseWriter, r *http.Request) {
	questions, err := store.ImportQuestions(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		title = "Imported quiz"
	}

	q, err := h.generation.Import(title, questions)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusCreated, QuizResponse{
		ID:            q.ID,
		Title:         q.Title,
		CreatedAt:     q.CreatedAt,
		QuestionCount: len(q.Questions),
	})
}

// listQuizzes returns all stored quizzes.
// @Summary      List quizzes
// @Tags         Quizzes
// @Produce      json
// @Success      200  {array}  QuizResponse
// @Router       /quizzes [get]
func (h *Handler) listQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.store.ListQuizzes()
	if h.handleStoreError(w, err, "quiz") {
		return
	}

	resp := make([]QuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		resp = append(resp, QuizResponse{
			ID:            q.ID,
			Title:         q.Title,
			CreatedAt:     q.CreatedAt,
			QuestionCount: q.QuestionCount,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// getQuiz returns one quiz with its questions.
// @Summary      Get a quiz
// @Tags         Quizzes
// @Produce      json
// @Param        quizID  path  string  true  "Quiz ID"
// @Success      200  {object}  quiz.Quiz
// @Failure      404  {string}  string  "quiz not found"
// @Router       /quizzes/{quizID} [get]
func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	q, err := h.store.GetQuiz(r.PathValue("quizID"))
	if h.handleStoreError(w, err, "quiz") {
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// deleteQuiz removes a quiz and its questions.
// @Summary      Delete a quiz
// @Tags         Quizzes
// @Param        quizID  path  string  true  "Quiz ID"
// @Success      204  "deleted"
// @Failure      404  {string}  string  "quiz not found"
// @Router       /quizzes/{quizID} [delete]
func (h *Handler) deleteQuiz(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.DeleteQuiz(r.PathValue("quizID")), "quiz") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// exportQuiz downloads a quiz's questions as a JSON array.
// @Summary      Export quiz questions
// @Tags         Quizzes
// @Produce      json
// @Param        quizID  path  string  true  "Quiz ID"
// @Success      200  {array}  question.Question
// @Failure      404  {string}  string  "quiz not found"
// @Router       /quizzes/{quizID}/export [get]
func (h *Handler) exportQuiz(w http.ResponseWriter, r *http.Request) {
	q, err := h.store.GetQuiz(r.PathValue("quizID"))
	if h.handleStoreError(w, err, "quiz") {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="questions.json"`)
	if err := store.ExportQuestions(w, q.Questions); err != nil {
		h.logger.Error("export failed", "quiz_id", q.ID, "error", err)
	}
}
