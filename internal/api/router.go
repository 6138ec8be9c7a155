package api

import "net/http"

// RegisterRoutes wires up all API endpoints on the given mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /health", h.health)

	// Quizzes
	mux.HandleFunc("POST /quizzes", h.createQuiz)
	mux.HandleFunc("POST /quizzes/import", h.importQuiz)
	mux.HandleFunc("GET /quizzes", h.listQuizzes)
	mux.HandleFunc("GET /quizzes/{quizID}", h.getQuiz)
	mux.HandleFunc("DELETE /quizzes/{quizID}", h.deleteQuiz)
	mux.HandleFunc("GET /quizzes/{quizID}/export", h.exportQuiz)

	// Sessions
	mux.HandleFunc("POST /quizzes/{quizID}/sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}/question", h.currentQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/restart", h.restartSession)
	mux.HandleFunc("GET /sessions/{sessionID}/progress", h.sessionProgress)
	mux.HandleFunc("GET /sessions/{sessionID}/results", h.sessionResults)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.deleteSession)
}
