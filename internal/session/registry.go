package session

import (
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// ErrNoSession is returned for interactions whose prompt message has no
// live session, e.g. a button click after the sweeper removed it.
var ErrNoSession = errors.New("no session for message")

// Registry tracks every outstanding session, keyed by the chat and
// message carrying its prompt. All state transitions run under the
// registry lock, so a resolution and a sweep can never race on the
// same session: whichever runs first removes it from the map.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func key(chatID int64, messageID int) string {
	return strconv.FormatInt(chatID, 10) + ":" + strconv.Itoa(messageID)
}

// Track registers a session under its rendered prompt message.
func (r *Registry) Track(s *Session, chatID int64, messageID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ChatID = chatID
	s.MessageID = messageID
	r.sessions[key(chatID, messageID)] = s
	slog.Debug("Session tracked",
		"session_id", s.ID, "owner", s.Owner, "command", s.Command)
}

// Update runs fn on the session behind (chatID, messageID) under the
// registry lock. A session left terminal by fn is removed from the
// map, which deterministically keeps the sweeper away from it.
func (r *Registry) Update(chatID int64, messageID int, fn func(*Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(chatID, messageID)
	s, ok := r.sessions[k]
	if !ok {
		return ErrNoSession
	}

	err := fn(s)

	if s.State == StateDone || s.State == StateExpired {
		delete(r.sessions, k)
	}
	return err
}

// ExpireDue finalizes every session whose deadline passed and returns
// them so the caller can disable their message affordances. Sessions
// already resolved or finished are never returned: they either carry a
// later deadline or have left the map.
func (r *Registry) ExpireDue(now time.Time) []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []*Session
	for k, s := range r.sessions {
		if now.Before(s.Deadline) {
			continue
		}
		s.State = StateExpired
		delete(r.sessions, k)
		due = append(due, s)
	}
	return due
}

// Len reports the number of outstanding sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
