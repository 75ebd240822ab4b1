package wizard

import (
	"errors"
	"testing"
)

func TestSessionAdvanceBumpsSequence(t *testing.T) {
	m := NewSessionManager()

	index, seq := m.Snapshot("user-1", "resume-1")
	if index != 0 || seq != 0 {
		t.Fatalf("fresh session: index=%d seq=%d", index, seq)
	}

	got, err := m.Begin("user-1", "resume-1", seq)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if got != 0 {
		t.Fatalf("begin index = %d", got)
	}

	newSeq := m.Commit("user-1", "resume-1", 1)
	if newSeq != seq+1 {
		t.Fatalf("seq = %d, want %d", newSeq, seq+1)
	}

	index, seq = m.Snapshot("user-1", "resume-1")
	if index != 1 || seq != newSeq {
		t.Fatalf("after commit: index=%d seq=%d", index, seq)
	}
}

func TestSessionRejectsStaleToken(t *testing.T) {
	m := NewSessionManager()
	_, seq := m.Snapshot("user-1", "resume-1")

	if _, err := m.Begin("user-1", "resume-1", seq); err != nil {
		t.Fatalf("begin: %v", err)
	}
	m.Commit("user-1", "resume-1", 1)

	// A second client still holding the old token loses.
	if _, err := m.Begin("user-1", "resume-1", seq); !errors.Is(err, ErrStaleToken) {
		t.Fatalf("expected ErrStaleToken, got %v", err)
	}
}

func TestSessionRejectsConcurrentMoves(t *testing.T) {
	m := NewSessionManager()
	_, seq := m.Snapshot("user-1", "resume-1")

	if _, err := m.Begin("user-1", "resume-1", seq); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := m.Begin("user-1", "resume-1", seq); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	m.Abort("user-1", "resume-1")
	if _, err := m.Begin("user-1", "resume-1", seq); err != nil {
		t.Fatalf("begin after abort: %v", err)
	}
}

func TestSessionsAreScopedPerUserAndResume(t *testing.T) {
	m := NewSessionManager()
	_, seqA := m.Snapshot("user-1", "resume-1")
	if _, err := m.Begin("user-1", "resume-1", seqA); err != nil {
		t.Fatalf("begin: %v", err)
	}
	m.Commit("user-1", "resume-1", 3)

	// Same resume but another user starts fresh.
	index, seq := m.Snapshot("user-2", "resume-1")
	if index != 0 || seq != 0 {
		t.Fatalf("other user's session polluted: index=%d seq=%d", index, seq)
	}
}

func TestSessionDropResets(t *testing.T) {
	m := NewSessionManager()
	_, seq := m.Snapshot("user-1", "resume-1")
	if _, err := m.Begin("user-1", "resume-1", seq); err != nil {
		t.Fatalf("begin: %v", err)
	}
	m.Commit("user-1", "resume-1", 5)

	m.Drop("user-1", "resume-1")
	index, seq := m.Snapshot("user-1", "resume-1")
	if index != 0 || seq != 0 {
		t.Fatalf("drop should reset: index=%d seq=%d", index, seq)
	}
}
