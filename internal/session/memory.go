package session

import (
	"sync"

	"lexibot/internal/domain"
)

// MemoryStore is an in-memory Store implementation
type MemoryStore struct {
	mu     sync.RWMutex
	states map[int64]domain.UserState
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[int64]domain.UserState),
	}
}

// Get returns the user's current state, defaulting to idle for users
// that have never been seen.
func (s *MemoryStore) Get(userID int64) domain.UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, exists := s.states[userID]
	if !exists {
		return domain.StateIdle
	}
	return state
}

// Set stores the user's state
func (s *MemoryStore) Set(userID int64, state domain.UserState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
}

// Clear resets the user to idle
func (s *MemoryStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}
