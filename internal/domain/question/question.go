package question

import (
	"errors"
	"fmt"
	"time"

	"github.com/mistakebook/backend/internal/id"
)

// Status is the authoritative mastery state of a question.
type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewing Status = "reviewing"
	StatusMastered  Status = "mastered"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusMastered:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty coerces free-form input to a known difficulty.
// Empty or unrecognized values default to medium.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s)
	}
	return DifficultyMedium
}

// Question is a single captured mistaken problem and its tracked state.
// Optional text fields use the empty string for "not set".
type Question struct {
	ID            string
	Subject       string
	QuestionText  string
	ImageURL      string
	UserAnswer    string
	CorrectAnswer string
	Explanation   string
	Difficulty    Difficulty
	Status        Status
	PracticeCount int
	CorrectCount  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewParams carries the caller-supplied fields for a new question.
// Subject and QuestionText are required; everything else is optional.
type NewParams struct {
	Subject       string
	QuestionText  string
	ImageURL      string
	UserAnswer    string
	CorrectAnswer string
	Explanation   string
	Difficulty    string
	Status        string
	PracticeCount int
	CorrectCount  int
}

// New creates a question with a fresh ID and creation defaults.
// CreatedAt and UpdatedAt are set to the same instant.
func New(p NewParams) (*Question, error) {
	if p.Subject == "" {
		return nil, errors.New("subject cannot be empty")
	}
	if p.QuestionText == "" {
		return nil, errors.New("question_text cannot be empty")
	}

	status := StatusPending
	if p.Status != "" {
		status = Status(p.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("invalid status %q: must be pending, reviewing, or mastered", p.Status)
		}
	}

	if err := validCounts(p.PracticeCount, p.CorrectCount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Question{
		ID:            id.GenerateID(),
		Subject:       p.Subject,
		QuestionText:  p.QuestionText,
		ImageURL:      p.ImageURL,
		UserAnswer:    p.UserAnswer,
		CorrectAnswer: p.CorrectAnswer,
		Explanation:   p.Explanation,
		Difficulty:    ParseDifficulty(p.Difficulty),
		Status:        status,
		PracticeCount: p.PracticeCount,
		CorrectCount:  p.CorrectCount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Patch holds a partial update. Nil fields are left unchanged.
// ID and CreatedAt are not patchable.
type Patch struct {
	Subject       *string
	QuestionText  *string
	ImageURL      *string
	UserAnswer    *string
	CorrectAnswer *string
	Explanation   *string
	Difficulty    *string
	Status        *string
	PracticeCount *int
	CorrectCount  *int
}

// Apply merges the patch into q and advances UpdatedAt.
// The update is all-or-nothing: if any field is invalid, q is untouched.
func (q *Question) Apply(p Patch) error {
	if p.Subject != nil && *p.Subject == "" {
		return errors.New("subject cannot be empty")
	}
	if p.QuestionText != nil && *p.QuestionText == "" {
		return errors.New("question_text cannot be empty")
	}
	if p.Status != nil && !Status(*p.Status).Valid() {
		return fmt.Errorf("invalid status %q: must be pending, reviewing, or mastered", *p.Status)
	}

	// Validate counts against the merged values so a lone correct_count
	// update cannot exceed the stored practice_count.
	practice := q.PracticeCount
	if p.PracticeCount != nil {
		practice = *p.PracticeCount
	}
	correct := q.CorrectCount
	if p.CorrectCount != nil {
		correct = *p.CorrectCount
	}
	if err := validCounts(practice, correct); err != nil {
		return err
	}

	if p.Subject != nil {
		q.Subject = *p.Subject
	}
	if p.QuestionText != nil {
		q.QuestionText = *p.QuestionText
	}
	if p.ImageURL != nil {
		q.ImageURL = *p.ImageURL
	}
	if p.UserAnswer != nil {
		q.UserAnswer = *p.UserAnswer
	}
	if p.CorrectAnswer != nil {
		q.CorrectAnswer = *p.CorrectAnswer
	}
	if p.Explanation != nil {
		q.Explanation = *p.Explanation
	}
	if p.Difficulty != nil {
		q.Difficulty = ParseDifficulty(*p.Difficulty)
	}
	if p.Status != nil {
		q.Status = Status(*p.Status)
	}
	q.PracticeCount = practice
	q.CorrectCount = correct
	q.UpdatedAt = time.Now().UTC()
	return nil
}

func validCounts(practice, correct int) error {
	if practice < 0 {
		return errors.New("practice_count cannot be negative")
	}
	if correct < 0 {
		return errors.New("correct_count cannot be negative")
	}
	if correct > practice {
		return fmt.Errorf("correct_count (%d) cannot exceed practice_count (%d)", correct, practice)
	}
	return nil
}
