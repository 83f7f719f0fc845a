package store

import (
	"context"
	"errors"

	"github.com/mistakebook/backend/internal/domain/question"
)

// ErrNotFound is returned when a referenced record does not exist.
// Callers distinguish it from backend failures with errors.Is.
var ErrNotFound = errors.New("not found")

// QuestionFilter narrows a listing by exact match. Empty fields match all.
type QuestionFilter struct {
	Status  string
	Subject string
}

// Store is the persistence boundary for question records. It is the
// single source of truth for mastery state and practice counters.
type Store interface {
	SaveQuestion(ctx context.Context, q *question.Question) error
	GetQuestion(ctx context.Context, id string) (*question.Question, error)
	// ListQuestions returns matching records newest-created-first.
	// An empty result is an empty slice, not an error.
	ListQuestions(ctx context.Context, f QuestionFilter) ([]*question.Question, error)
	UpdateQuestion(ctx context.Context, q *question.Question) error
	DeleteQuestion(ctx context.Context, id string) error
	Close() error
}
