package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/quiz"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/store"
)

// Handle pairs a session with its own lock. The domain session is
// single-owner state, so every caller must hold the lock while using
// it.
type Handle struct {
	mu      sync.Mutex
	Session *quiz.Session
	QuizID  string
}

func (h *Handle) Lock()   { h.mu.Lock() }
func (h *Handle) Unlock() { h.mu.Unlock() }

// Manager holds the live quiz sessions for this process. Sessions are
// ephemeral; only quizzes are persisted.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Handle
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Handle),
	}
}

// Create starts a new session over the given questions and returns its
// ID.
func (m *Manager) Create(quizID string, questions []question.Question, cfg quiz.Config) (string, *Handle) {
	handle := &Handle{
		Session: quiz.New(questions, cfg),
		QuizID:  quizID,
	}
	id := uuid.New().String()

	m.mu.Lock()
	m.sessions[id] = handle
	m.mu.Unlock()

	return id, handle
}

// Get returns the session with the given ID, or store.ErrNotFound.
func (m *Manager) Get(id string) (*Handle, error) {
	m.mu.RLock()
	handle, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, store.ErrNotFound
	}
	return handle, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
