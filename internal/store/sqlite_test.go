package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mistakebook/backend/internal/domain/question"
	"github.com/mistakebook/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func saveQuestion(t *testing.T, s *store.SQLiteStore, p question.NewParams) *question.Question {
	t.Helper()
	q, err := question.New(p)
	if err != nil {
		t.Fatalf("failed to build question: %v", err)
	}
	if err := s.SaveQuestion(context.Background(), q); err != nil {
		t.Fatalf("failed to save question: %v", err)
	}
	return q
}

func TestSaveAndGetQuestion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	q := saveQuestion(t, s, question.NewParams{
		Subject:       "math",
		QuestionText:  "1+1=?",
		UserAnswer:    "3",
		CorrectAnswer: "2",
		Difficulty:    "easy",
		PracticeCount: 4,
		CorrectCount:  3,
	})

	got, err := s.GetQuestion(ctx, q.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Subject != "math" || got.QuestionText != "1+1=?" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.Difficulty != question.DifficultyEasy {
		t.Errorf("expected difficulty easy, got %q", got.Difficulty)
	}
	if got.PracticeCount != 4 || got.CorrectCount != 3 {
		t.Errorf("expected counts 4/3, got %d/%d", got.PracticeCount, got.CorrectCount)
	}
	if !got.CreatedAt.Equal(q.CreatedAt) {
		t.Errorf("created_at changed in round-trip: %v vs %v", got.CreatedAt, q.CreatedAt)
	}
}

func TestGetQuestion_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetQuestion(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListQuestions_Filters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saveQuestion(t, s, question.NewParams{Subject: "math", QuestionText: "a", Status: "mastered"})
	saveQuestion(t, s, question.NewParams{Subject: "math", QuestionText: "b"})
	saveQuestion(t, s, question.NewParams{Subject: "english", QuestionText: "c", Status: "mastered"})

	all, err := s.ListQuestions(ctx, store.QuestionFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(all))
	}

	mastered, err := s.ListQuestions(ctx, store.QuestionFilter{Status: "mastered"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mastered) != 2 {
		t.Errorf("expected 2 mastered questions, got %d", len(mastered))
	}
	for _, q := range mastered {
		if q.Status != question.StatusMastered {
			t.Errorf("filter returned status %q", q.Status)
		}
	}

	mathMastered, err := s.ListQuestions(ctx, store.QuestionFilter{Status: "mastered", Subject: "math"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mathMastered) != 1 || mathMastered[0].QuestionText != "a" {
		t.Errorf("combined filter mismatch: %+v", mathMastered)
	}

	none, err := s.ListQuestions(ctx, store.QuestionFilter{Subject: "chemistry"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected empty result, got %d", len(none))
	}
}

func TestListQuestions_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	q1, _ := question.New(question.NewParams{Subject: "math", QuestionText: "old"})
	q1.CreatedAt = time.Now().UTC().Add(-time.Hour)
	q1.UpdatedAt = q1.CreatedAt
	if err := s.SaveQuestion(ctx, q1); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	q2 := saveQuestion(t, s, question.NewParams{Subject: "math", QuestionText: "new"})

	all, err := s.ListQuestions(ctx, store.QuestionFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(all))
	}
	if all[0].ID != q2.ID {
		t.Errorf("expected newest question first, got %q", all[0].QuestionText)
	}
}

func TestUpdateQuestion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	q := saveQuestion(t, s, question.NewParams{Subject: "math", QuestionText: "1+1=?"})

	status := "reviewing"
	if err := q.Apply(question.Patch{Status: &status}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.UpdateQuestion(ctx, q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.GetQuestion(ctx, q.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != question.StatusReviewing {
		t.Errorf("expected status reviewing, got %q", got.Status)
	}
	if got.QuestionText != "1+1=?" {
		t.Error("expected question_text unchanged")
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Error("expected updated_at >= created_at")
	}
}

func TestUpdateQuestion_NotFound(t *testing.T) {
	s := newTestStore(t)

	q, _ := question.New(question.NewParams{Subject: "math", QuestionText: "1+1=?"})
	q.ID = "missing"

	if err := s.UpdateQuestion(context.Background(), q); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteQuestion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	q := saveQuestion(t, s, question.NewParams{Subject: "math", QuestionText: "1+1=?"})

	if err := s.DeleteQuestion(ctx, q.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := s.ListQuestions(ctx, store.QuestionFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, got := range all {
		if got.ID == q.ID {
			t.Error("deleted question still listed")
		}
	}

	// Deleting again is an error, not a no-op.
	if err := s.DeleteQuestion(ctx, q.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetQuestion(ctx, q.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
