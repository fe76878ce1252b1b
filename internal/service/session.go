package service

import (
	"sync"
)

// Session is the per-viewer browsing state: the live search term, the dirty
// flag driving the debounced catalog refresh, and the per-entity upload
// loading map. The catalog list is not push-updated; dirty tells the
// consumer a re-run of ListVisible is due, and completing that refresh
// clears it.
type Session struct {
	mu         sync.Mutex
	searchTerm string
	dirty      bool
	loading    map[string]bool
}

func newSession() *Session {
	return &Session{loading: make(map[string]bool)}
}

// SetSearchTerm records a submitted search and marks the list stale.
func (s *Session) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
	s.dirty = true
}

func (s *Session) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm
}

// MarkDirty flags that a completed mutation invalidated the rendered list.
func (s *Session) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
}

func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// CompleteRefresh clears the dirty flag once a refresh has run.
func (s *Session) CompleteRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

// SetLoading tracks whether an upload for the given target entity is in
// flight. Concurrent uploads for different entities do not disturb each
// other.
func (s *Session) SetLoading(targetID string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loading {
		s.loading[targetID] = true
	} else {
		delete(s.loading, targetID)
	}
}

func (s *Session) Loading(targetID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading[targetID]
}

// SessionRegistry owns the sessions, one per signed-in user.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

// Session returns the user's session, creating it on first use.
func (r *SessionRegistry) Session(userID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[userID]
	if !ok {
		session = newSession()
		r.sessions[userID] = session
	}
	return session
}

// Drop discards a session, e.g. on sign-out.
func (r *SessionRegistry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}
