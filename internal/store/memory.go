package store

import (
	"sync"

	"github.com/shx-dow/impostor-hunt/internal/game"
	"github.com/shx-dow/impostor-hunt/internal/models"
)

// Registry manages the active sessions, one per room
type Registry struct {
	sessions map[string]*models.Session
	mu       sync.RWMutex
}

// NewRegistry creates a new session registry
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*models.Session),
	}
}

// Create stores a session for the room. It is atomic create-if-absent:
// a room with a live session rejects the new one with ErrSessionExists.
func (r *Registry) Create(room string, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[room]; exists {
		return game.ErrSessionExists
	}
	r.sessions[room] = session
	return nil
}

// Get retrieves the session for a room
func (r *Registry) Get(room string) (*models.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, exists := r.sessions[room]
	return session, exists
}

// Remove drops the session for a room, if any
func (r *Registry) Remove(room string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, room)
}

// Exists checks if a room has an active session
func (r *Registry) Exists(room string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.sessions[room]
	return exists
}
