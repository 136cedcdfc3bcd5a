package session

import (
	"errors"
	"testing"
	"time"

	"github.com/n9rs9/hadithsahih/internal/domain"
)

func TestRegistryUpdate(t *testing.T) {
	reg := NewRegistry()
	s := New(owner, domain.CommandHadith, time.Minute)
	reg.Track(s, 42, 7)

	err := reg.Update(42, 7, func(s *Session) error {
		return s.Resolve(owner, domain.LanguageFR, time.Now())
	})
	if err != nil {
		t.Fatalf("Update returned %v", err)
	}
	if s.Language != domain.LanguageFR {
		t.Errorf("Language = %q, want FR", s.Language)
	}
}

func TestRegistryUpdateUnknownMessage(t *testing.T) {
	reg := NewRegistry()

	err := reg.Update(42, 7, func(*Session) error { return nil })
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("Update returned %v, want ErrNoSession", err)
	}
}

func TestRegistryRemovesTerminalSessions(t *testing.T) {
	reg := NewRegistry()
	s := New(owner, domain.CommandHadith, time.Minute)
	reg.Track(s, 42, 7)

	err := reg.Update(42, 7, func(s *Session) error {
		s.Finish()
		return nil
	})
	if err != nil {
		t.Fatalf("Update returned %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("Len = %d, terminal session must leave the registry", reg.Len())
	}

	err = reg.Update(42, 7, func(*Session) error { return nil })
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("Update after finish returned %v, want ErrNoSession", err)
	}
}

func TestRegistryExpireDue(t *testing.T) {
	reg := NewRegistry()
	expired := New(owner, domain.CommandHadith, time.Minute)
	fresh := New(owner, domain.CommandBook, time.Minute)
	reg.Track(expired, 1, 1)
	reg.Track(fresh, 1, 2)

	due := reg.ExpireDue(time.Now().Add(2 * time.Minute))
	if len(due) != 2 {
		t.Fatalf("ExpireDue returned %d sessions, want 2", len(due))
	}

	due = reg.ExpireDue(time.Now().Add(2 * time.Minute))
	if len(due) != 0 {
		t.Errorf("second ExpireDue returned %d sessions, want 0", len(due))
	}
}

func TestRegistryExpireDueSkipsFutureDeadlines(t *testing.T) {
	reg := NewRegistry()
	s := New(owner, domain.CommandHadith, time.Minute)
	reg.Track(s, 1, 1)

	if due := reg.ExpireDue(time.Now()); len(due) != 0 {
		t.Errorf("ExpireDue returned %d sessions before the deadline", len(due))
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
}

// A session resolved to a terminal state can never be expired later:
// resolution removes it from the map before the sweeper sees it.
func TestRegistryResolutionBeatsExpiry(t *testing.T) {
	reg := NewRegistry()
	s := New(owner, domain.CommandHadith, 10*time.Millisecond)
	reg.Track(s, 1, 1)

	err := reg.Update(1, 1, func(s *Session) error {
		if err := s.Resolve(owner, domain.LanguageEN, time.Now()); err != nil {
			return err
		}
		s.Finish()
		return nil
	})
	if err != nil {
		t.Fatalf("Update returned %v", err)
	}

	due := reg.ExpireDue(time.Now().Add(time.Hour))
	if len(due) != 0 {
		t.Fatalf("ExpireDue returned a resolved session")
	}
	if s.State != StateDone {
		t.Errorf("State = %v, want StateDone untouched by the sweeper", s.State)
	}
}
