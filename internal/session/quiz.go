package session

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/n9rs9/hadithsahih/internal/domain"
)

// ErrQuizFinished is returned by Advance once every question was
// answered; the final score view has already been rendered by then.
var ErrQuizFinished = errors.New("quiz already finished")

// Quiz is the multi-question trial spawned by a resolved quiz session.
type Quiz struct {
	Questions []domain.QuizQuestion
	Index     int
	Score     int

	// Options is the current question's answer set in display order,
	// reshuffled every time Index advances.
	Options []string

	rng *rand.Rand
}

// NewQuiz draws n questions from pool without replacement and prepares
// the first question's shuffled options.
func NewQuiz(pool []domain.QuizQuestion, n int, rng *rand.Rand) (*Quiz, error) {
	if len(pool) < n {
		return nil, fmt.Errorf("need %d questions, have %d", n, len(pool))
	}
	questions := make([]domain.QuizQuestion, 0, n)
	for _, i := range rng.Perm(len(pool))[:n] {
		questions = append(questions, pool[i])
	}
	q := &Quiz{Questions: questions, rng: rng}
	q.Options = q.Current().Options(rng)
	return q, nil
}

// Current returns the question the options belong to.
func (q *Quiz) Current() domain.QuizQuestion {
	return q.Questions[q.Index]
}

// Finished reports whether every question was answered.
func (q *Quiz) Finished() bool {
	return q.Index >= len(q.Questions)
}

// Advance scores answer against the current question and moves to the
// next one. Answers compare by value: the displayed order is random,
// so a positional comparison would be meaningless.
func (q *Quiz) Advance(answer string) (correct bool, err error) {
	if q.Finished() {
		return false, ErrQuizFinished
	}
	correct = answer == q.Current().Correct
	if correct {
		q.Score++
	}
	q.Index++
	if !q.Finished() {
		q.Options = q.Current().Options(q.rng)
	} else {
		q.Options = nil
	}
	return correct, nil
}
