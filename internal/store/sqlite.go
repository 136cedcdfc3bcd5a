package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/n9rs9/hadithsahih/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS invocations (
		session_id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL,
		command TEXT NOT NULL,
		language TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_invocations_user ON invocations(user_id);

	CREATE TABLE IF NOT EXISTS quiz_results (
		session_id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL,
		score INTEGER NOT NULL,
		total INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordInvocation inserts a command invocation record.
func (s *SQLiteStore) RecordInvocation(ctx context.Context, inv *domain.Invocation) error {
	query := `
		INSERT INTO invocations (session_id, user_id, command, language, created_at)
		VALUES (?, ?, ?, ?, ?)`

	lang := sql.NullString{String: string(inv.Language), Valid: inv.Language != ""}
	_, err := s.db.ExecContext(ctx, query,
		inv.SessionID, inv.UserID, string(inv.Command), lang, inv.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert invocation: %w", err)
	}
	return nil
}

// SetInvocationLanguage backfills the resolved language.
func (s *SQLiteStore) SetInvocationLanguage(ctx context.Context, sessionID string, lang domain.Language) error {
	query := `UPDATE invocations SET language = ? WHERE session_id = ?`
	if _, err := s.db.ExecContext(ctx, query, string(lang), sessionID); err != nil {
		return fmt.Errorf("update invocation language: %w", err)
	}
	return nil
}

// RecordQuizResult inserts a completed quiz's final score.
func (s *SQLiteStore) RecordQuizResult(ctx context.Context, res *domain.QuizResult) error {
	query := `
		INSERT INTO quiz_results (session_id, user_id, score, total, created_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		res.SessionID, res.UserID, res.Score, res.Total, res.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert quiz result: %w", err)
	}
	return nil
}

// Stats aggregates the usage log.
func (s *SQLiteStore) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats

	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT user_id), COUNT(*) FROM invocations`)
	if err := row.Scan(&stats.UsersServed, &stats.Invocations); err != nil {
		return nil, fmt.Errorf("scan invocation stats: %w", err)
	}

	var avg sql.NullFloat64
	row = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), AVG(CAST(score AS REAL) / total) FROM quiz_results`)
	if err := row.Scan(&stats.QuizzesTaken, &avg); err != nil {
		return nil, fmt.Errorf("scan quiz stats: %w", err)
	}
	stats.AverageScore = avg.Float64

	return &stats, nil
}
