// Package session implements the per-invocation interactive sessions
// behind the bot's language prompts, book browser and quiz.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/n9rs9/hadithsahih/internal/domain"
)

// State is the lifecycle state of a Session.
type State int

const (
	// StateAwaitingLanguage means the FR/EN prompt is outstanding.
	StateAwaitingLanguage State = iota
	// StateResolved means a language was chosen and a sub-flow
	// (book browser or quiz) is still interactive.
	StateResolved
	// StateDone means the session rendered its final payload.
	StateDone
	// StateExpired means the deadline elapsed before completion.
	StateExpired
)

var (
	// ErrNotOwner is returned when someone other than the invoking
	// user interacts with a session. The session is left untouched.
	ErrNotOwner = errors.New("interaction from non-owner")
	// ErrExpired is returned for interactions arriving after the
	// session's deadline or after the sweeper finalized it.
	ErrExpired = errors.New("session expired")
	// ErrTerminal is returned for interactions with a session that
	// already rendered its final payload.
	ErrTerminal = errors.New("session already terminal")
)

// Session is the interactive state bound to one command invocation and
// one owning user. It lives only as long as its prompt message stays
// actionable and is never persisted.
type Session struct {
	ID       uuid.UUID
	Owner    int64
	Command  domain.Command
	State    State
	Language domain.Language
	Deadline time.Time

	// ChatID and MessageID identify the rendered prompt message; they
	// are set by the registry once the prompt is sent.
	ChatID    int64
	MessageID int

	// At most one of these is non-nil, and only after resolution.
	Pages *Pages
	Quiz  *Quiz
}

// New creates a session awaiting a language choice.
func New(owner int64, command domain.Command, timeout time.Duration) *Session {
	return &Session{
		ID:       uuid.New(),
		Owner:    owner,
		Command:  command,
		State:    StateAwaitingLanguage,
		Deadline: time.Now().Add(timeout),
	}
}

// guard validates that actor may drive a transition right now.
func (s *Session) guard(actor int64, now time.Time) error {
	if actor != s.Owner {
		return ErrNotOwner
	}
	switch s.State {
	case StateExpired:
		return ErrExpired
	case StateDone:
		return ErrTerminal
	}
	if now.After(s.Deadline) {
		return ErrExpired
	}
	return nil
}

// Resolve transitions an awaiting session to the chosen language.
// The owner check runs first so a non-owner click never mutates state.
func (s *Session) Resolve(actor int64, lang domain.Language, now time.Time) error {
	if err := s.guard(actor, now); err != nil {
		return err
	}
	if s.State != StateAwaitingLanguage {
		return ErrTerminal
	}
	s.State = StateResolved
	s.Language = lang
	return nil
}

// Navigate moves the book browser's page cursor. Owner-gated exactly
// like Resolve; boundary navigation holds the cursor in place.
func (s *Session) Navigate(actor int64, forward bool, now time.Time) error {
	if err := s.guard(actor, now); err != nil {
		return err
	}
	if s.State != StateResolved || s.Pages == nil {
		return ErrTerminal
	}
	if forward {
		s.Pages.Next()
	} else {
		s.Pages.Prev()
	}
	return nil
}

// Answer scores the quiz option at index for the current question and
// advances the quiz. Options are resolved to values here: the display
// order is random, so only the value identifies the chosen answer.
// Answering the last question finishes the session.
func (s *Session) Answer(actor int64, index int, now time.Time) (correct bool, err error) {
	if err := s.guard(actor, now); err != nil {
		return false, err
	}
	if s.State != StateResolved || s.Quiz == nil {
		return false, ErrTerminal
	}
	if index < 0 || index >= len(s.Quiz.Options) {
		return false, ErrTerminal
	}
	correct, err = s.Quiz.Advance(s.Quiz.Options[index])
	if err != nil {
		return false, err
	}
	if s.Quiz.Finished() {
		s.Finish()
	}
	return correct, nil
}

// Finish marks the session terminal. Idempotent.
func (s *Session) Finish() {
	if s.State != StateExpired {
		s.State = StateDone
	}
}

// Extend moves the deadline for a resolved session entering a
// longer-lived sub-flow. The deadline is fixed from this point on.
func (s *Session) Extend(now time.Time, timeout time.Duration) {
	s.Deadline = now.Add(timeout)
}
