// ABOUTME: Tests for the session service
// ABOUTME: Covers session creation, retrieval, and unknown IDs

package services

import (
	"testing"
	"time"

	"github.com/markalston/bookshelf/cache"
)

func TestSessionService_CreateAndGet(t *testing.T) {
	s := NewSessionService(cache.New(), time.Hour)

	session, err := s.Create("alice", "signed-token")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if session.ID == "" {
		t.Fatal("Expected non-empty session ID")
	}
	if session.CSRFToken == "" {
		t.Fatal("Expected non-empty CSRF token")
	}

	got, err := s.Get(session.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("Expected username 'alice', got %q", got.Username)
	}
	if got.Token != "signed-token" {
		t.Errorf("Expected stored token, got %q", got.Token)
	}
}

func TestSessionService_Get_Unknown(t *testing.T) {
	s := NewSessionService(cache.New(), time.Hour)

	if _, err := s.Get("no-such-session"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_ReloginReplacesSession(t *testing.T) {
	s := NewSessionService(cache.New(), time.Hour)

	first, err := s.Create("alice", "token-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := s.Create("alice", "token-2")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if first.ID == second.ID {
		t.Error("Expected repeated logins to produce distinct session IDs")
	}

	// Re-login retires the previous session; only the newest cookie works
	if _, err := s.Get(first.ID); err != ErrSessionNotFound {
		t.Errorf("Expected first session to be replaced, got %v", err)
	}
	got, err := s.Get(second.ID)
	if err != nil {
		t.Fatalf("Second session lookup failed: %v", err)
	}
	if got.Token != "token-2" {
		t.Errorf("Expected the re-login token, got %q", got.Token)
	}
}

func TestSessionService_ReloginLeavesOtherUsersAlone(t *testing.T) {
	s := NewSessionService(cache.New(), time.Hour)

	bob, err := s.Create("bob", "bob-token")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := s.Create("alice", "token-1"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := s.Create("alice", "token-2"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := s.Get(bob.ID); err != nil {
		t.Errorf("Expected bob's session to survive alice's re-login: %v", err)
	}
}
