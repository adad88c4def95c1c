// Package store keeps the in-memory session a running process plays in.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ronnykraitman/clue/internal/game"
)

// Session ties an engine handle to an identity and start time
type Session struct {
	ID        string
	Engine    *game.Engine
	StartedAt time.Time
}

// SessionStore holds the single active session. Starting a new game
// replaces the previous one; there is no multi-session play.
type SessionStore struct {
	current *Session
	mu      sync.RWMutex
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Start registers a fresh session around the given engine and returns it
func (s *SessionStore) Start(engine *game.Engine) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &Session{
		ID:        uuid.NewString(),
		Engine:    engine,
		StartedAt: time.Now(),
	}
	return s.current
}

// Current returns the active session, if any
func (s *SessionStore) Current() (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

// End drops the session with the given ID. Ending a stale ID is a no-op.
func (s *SessionStore) End(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.ID != id {
		return false
	}
	s.current = nil
	return true
}

// Exists reports whether a session with the given ID is active
func (s *SessionStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.ID == id
}
