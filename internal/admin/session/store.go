// Package session holds the authenticated user's identity and credential.
//
// The store is an explicit object injected into whatever needs the current
// identity, not ambient global state. It is written by the login flow on
// success and read everywhere else. There is no expiry or refresh handling:
// the credential is treated as valid until replaced or cleared, and the
// backend rejects requests once it stops being.
package session

import "sync"

// Session is the authenticated user's identity and access credential.
type Session struct {
	Name  string
	Email string
	Role  string
	Token string
}

// Store is a single mutable slot holding the current session. At most one
// session is active at a time; Set replaces any previous one.
type Store struct {
	mu      sync.RWMutex
	current Session
	active  bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the current session and whether one is active.
func (s *Store) Get() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.active
}

// Set replaces the current session.
func (s *Store) Set(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess
	s.active = true
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{}
	s.active = false
}

// Token returns the current access credential, or "" when no session is
// active. Shaped to plug straight into the SDK's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}
