package forge

import (
	"sync"

	"github.com/google/uuid"
)

// Store is an in-memory session store. Sessions live exactly as long as
// the process; there is deliberately no durable backing.
//
// The store returns copies, never pointers into the map, so callers can
// read a snapshot without racing concurrent mutations. All mutation goes
// through Save and Update under the write lock.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Save inserts or replaces a session.
func (s *Store) Save(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *session
	s.sessions[session.ID] = &copied
}

// Get returns a snapshot of the session with the given ID, or
// ErrSessionNotFound.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := *session
	return &copied, nil
}

// Update applies mutate to the stored session under the write lock,
// refreshes UpdatedAt, and returns a snapshot of the result. Returns
// ErrSessionNotFound if no session exists for the ID.
func (s *Store) Update(id uuid.UUID, mutate func(*Session)) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	mutate(session)
	session.UpdatedAt = nowUTC()

	copied := *session
	return &copied, nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
