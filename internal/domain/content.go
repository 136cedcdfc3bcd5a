package domain

import "math/rand"

// BookEntry is one recommended book parsed from a `[LINK] [TITLE]` line.
type BookEntry struct {
	Title string
	Link  string
}

// QuizQuestion is one multiple-choice question parsed from a
// `[QUESTION] [CORRECT] [WRONG] [WRONG]` line.
type QuizQuestion struct {
	Text        string
	Correct     string
	Distractors [2]string
}

// Options returns the correct answer and both distractors in a fresh
// random order. The order changes on every call; callers must compare
// answers by value, never by position.
func (q QuizQuestion) Options(rng *rand.Rand) []string {
	opts := []string{q.Correct, q.Distractors[0], q.Distractors[1]}
	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}
