// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/n9rs9/hadithsahih/internal/domain"
)

// Repository defines the interface for the bot's usage log. Failures
// here are logged and swallowed by callers; the log never blocks a
// session.
type Repository interface {
	// RecordInvocation inserts a command invocation record.
	RecordInvocation(ctx context.Context, inv *domain.Invocation) error

	// SetInvocationLanguage backfills the resolved language.
	SetInvocationLanguage(ctx context.Context, sessionID string, lang domain.Language) error

	// RecordQuizResult inserts a completed quiz's final score.
	RecordQuizResult(ctx context.Context, res *domain.QuizResult) error

	// Stats aggregates the usage log.
	Stats(ctx context.Context) (*domain.Stats, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
