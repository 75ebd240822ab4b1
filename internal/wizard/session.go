package wizard

import (
	"errors"
	"sync"
)

// ErrStaleToken is returned when a navigation request carries a sequence
// token that no longer matches the session, typically because another
// request for the same resume landed first.
var ErrStaleToken = errors.New("wizard: stale sequence token")

// ErrBusy is returned when a navigation request arrives while another one
// for the same session is still being processed.
var ErrBusy = errors.New("wizard: session busy")

type session struct {
	index    int
	seq      int64
	inFlight bool
}

// SessionManager tracks the flow position per user and resume so the step
// pointer survives across requests. Sessions are kept in memory only; a
// fresh session starts at the first step.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionManager constructs an empty SessionManager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*session)}
}

func sessionKey(userID, resumeID string) string {
	return userID + "/" + resumeID
}

// Snapshot returns the current position and sequence token for the
// session, creating it at the first step when absent.
func (m *SessionManager) Snapshot(userID, resumeID string) (index int, seq int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.lookup(userID, resumeID)
	return s.index, s.seq
}

// Begin claims the session for one navigation move. The caller must pass
// the sequence token from its last snapshot; a mismatch means another
// request moved the flow in between and the move is rejected. The session
// stays claimed until Commit or Abort.
func (m *SessionManager) Begin(userID, resumeID string, seq int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.lookup(userID, resumeID)
	if s.inFlight {
		return 0, ErrBusy
	}
	if seq != s.seq {
		return 0, ErrStaleToken
	}
	s.inFlight = true
	return s.index, nil
}

// Commit records the new position, bumps the sequence token and releases
// the session.
func (m *SessionManager) Commit(userID, resumeID string, index int) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.lookup(userID, resumeID)
	s.index = index
	s.seq++
	s.inFlight = false
	return s.seq
}

// Abort releases the session without moving it.
func (m *SessionManager) Abort(userID, resumeID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.lookup(userID, resumeID)
	s.inFlight = false
}

// Drop forgets the session, e.g. after the flow exits or the resume is
// deleted.
func (m *SessionManager) Drop(userID, resumeID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionKey(userID, resumeID))
}

func (m *SessionManager) lookup(userID, resumeID string) *session {
	key := sessionKey(userID, resumeID)
	s, ok := m.sessions[key]
	if !ok {
		s = &session{}
		m.sessions[key] = s
	}
	return s
}
