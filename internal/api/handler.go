package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/service"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/session"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store      service.QuizStore
	sessions   *session.Manager
	generation *service.GenerationService
	logger     *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s service.QuizStore, sessions *session.Manager, generation *service.GenerationService, logger *slog.Logger) *Handler {
	return &Handler{
		store:      s,
		sessions:   sessions,
		generation: generation,
		logger:     logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v. On failure it writes a
// 400 response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, entity+" not found", http.StatusNotFound)
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	http.Error(w, "internal error", http.StatusInternalServerError)
	return true
}
