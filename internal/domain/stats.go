package domain

import "time"

// Invocation is one recorded command invocation. The language is
// backfilled once the owner resolves the prompt.
type Invocation struct {
	SessionID string
	UserID    int64
	Command   Command
	Language  Language
	CreatedAt time.Time
}

// QuizResult is the final score of one completed quiz session.
type QuizResult struct {
	SessionID string
	UserID    int64
	Score     int
	Total     int
	CreatedAt time.Time
}

// Stats aggregates the usage log for /info and the stats endpoint.
type Stats struct {
	UsersServed  int64   `json:"users_served"`
	Invocations  int64   `json:"invocations"`
	QuizzesTaken int64   `json:"quizzes_taken"`
	AverageScore float64 `json:"average_score"`
}
