package question_test

import (
	"testing"

	"github.com/mistakebook/backend/internal/domain/question"
)

func mk(status question.Status, practice, correct int) *question.Question {
	return &question.Question{
		Subject:       "math",
		QuestionText:  "1+1=?",
		Status:        status,
		PracticeCount: practice,
		CorrectCount:  correct,
	}
}

func TestAggregate_EmptyCollection(t *testing.T) {
	s := question.Aggregate(nil)

	if s != (question.Summary{}) {
		t.Errorf("expected all-zero summary, got %+v", s)
	}
}

func TestAggregate_StatusPartition(t *testing.T) {
	questions := []*question.Question{
		mk(question.StatusPending, 0, 0),
		mk(question.StatusPending, 1, 1),
		mk(question.StatusReviewing, 2, 1),
		mk(question.StatusMastered, 3, 3),
		mk(question.StatusMastered, 5, 4),
	}

	s := question.Aggregate(questions)

	if s.TotalQuestions != 5 {
		t.Errorf("expected 5 total questions, got %d", s.TotalQuestions)
	}
	if got := s.MasteredCount + s.ReviewingCount + s.PendingCount; got != s.TotalQuestions {
		t.Errorf("status counts sum to %d, want %d", got, s.TotalQuestions)
	}
	if s.MasteredCount != 2 || s.ReviewingCount != 1 || s.PendingCount != 2 {
		t.Errorf("unexpected partition: %+v", s)
	}
}

func TestAggregate_AccuracyExample(t *testing.T) {
	questions := []*question.Question{
		mk(question.StatusPending, 4, 3),
		mk(question.StatusReviewing, 2, 2),
		mk(question.StatusMastered, 0, 0),
	}

	s := question.Aggregate(questions)

	if s.TotalPractices != 6 {
		t.Errorf("expected 6 total practices, got %d", s.TotalPractices)
	}
	// 5 correct out of 6 practices, rounded to one decimal place.
	if s.AccuracyRate != 83.3 {
		t.Errorf("expected accuracy 83.3, got %v", s.AccuracyRate)
	}
}

func TestAggregate_NoPracticesMeansZeroAccuracy(t *testing.T) {
	questions := []*question.Question{
		mk(question.StatusPending, 0, 0),
		mk(question.StatusMastered, 0, 0),
	}

	s := question.Aggregate(questions)

	if s.TotalPractices != 0 {
		t.Errorf("expected 0 total practices, got %d", s.TotalPractices)
	}
	if s.AccuracyRate != 0 {
		t.Errorf("expected accuracy 0, got %v", s.AccuracyRate)
	}
}

func TestAggregate_AccuracyBounds(t *testing.T) {
	tests := []struct {
		name      string
		questions []*question.Question
	}{
		{"all correct", []*question.Question{mk(question.StatusMastered, 7, 7)}},
		{"none correct", []*question.Question{mk(question.StatusPending, 7, 0)}},
		{"mixed", []*question.Question{
			mk(question.StatusPending, 3, 1),
			mk(question.StatusReviewing, 9, 5),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := question.Aggregate(tt.questions)
			if s.AccuracyRate < 0 || s.AccuracyRate > 100 {
				t.Errorf("accuracy %v out of [0, 100]", s.AccuracyRate)
			}
		})
	}
}
