package question_test

import (
	"testing"

	"github.com/mistakebook/backend/internal/domain/question"
)

func TestNew_Defaults(t *testing.T) {
	q, err := question.New(question.NewParams{Subject: "math", QuestionText: "1+1=?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.ID == "" {
		t.Error("expected non-empty ID")
	}
	if q.Status != question.StatusPending {
		t.Errorf("expected status %q, got %q", question.StatusPending, q.Status)
	}
	if q.Difficulty != question.DifficultyMedium {
		t.Errorf("expected difficulty %q, got %q", question.DifficultyMedium, q.Difficulty)
	}
	if q.PracticeCount != 0 || q.CorrectCount != 0 {
		t.Errorf("expected zero counts, got practice=%d correct=%d", q.PracticeCount, q.CorrectCount)
	}
	if !q.CreatedAt.Equal(q.UpdatedAt) {
		t.Errorf("expected created_at == updated_at, got %v and %v", q.CreatedAt, q.UpdatedAt)
	}
}

func TestNew_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		params question.NewParams
	}{
		{"empty subject", question.NewParams{QuestionText: "1+1=?"}},
		{"empty question_text", question.NewParams{Subject: "math"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := question.New(tt.params); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNew_InvalidStatus(t *testing.T) {
	_, err := question.New(question.NewParams{
		Subject:      "math",
		QuestionText: "1+1=?",
		Status:       "done",
	})
	if err == nil {
		t.Error("expected error for unrecognized status, got nil")
	}
}

func TestNew_UnrecognizedDifficultyDefaultsToMedium(t *testing.T) {
	q, err := question.New(question.NewParams{
		Subject:      "math",
		QuestionText: "1+1=?",
		Difficulty:   "impossible",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Difficulty != question.DifficultyMedium {
		t.Errorf("expected difficulty %q, got %q", question.DifficultyMedium, q.Difficulty)
	}
}

func TestNew_CountInvariant(t *testing.T) {
	tests := []struct {
		name              string
		practice, correct int
		wantErr           bool
	}{
		{"correct exceeds practice", 2, 3, true},
		{"negative practice", -1, 0, true},
		{"negative correct", 0, -1, true},
		{"equal counts", 3, 3, false},
		{"correct below practice", 5, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := question.New(question.NewParams{
				Subject:       "math",
				QuestionText:  "1+1=?",
				PracticeCount: tt.practice,
				CorrectCount:  tt.correct,
			})
			if (err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	q1, _ := question.New(question.NewParams{Subject: "math", QuestionText: "a"})
	q2, _ := question.New(question.NewParams{Subject: "math", QuestionText: "b"})

	if q1.ID == q2.ID {
		t.Error("expected different IDs for different questions")
	}
}

func TestApply_PartialUpdate(t *testing.T) {
	q, err := question.New(question.NewParams{
		Subject:       "math",
		QuestionText:  "1+1=?",
		PracticeCount: 4,
		CorrectCount:  3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := q.UpdatedAt

	status := "mastered"
	if err := q.Apply(question.Patch{Status: &status}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Status != question.StatusMastered {
		t.Errorf("expected status mastered, got %q", q.Status)
	}
	if q.Subject != "math" || q.QuestionText != "1+1=?" {
		t.Error("expected unspecified fields to be unchanged")
	}
	if q.PracticeCount != 4 || q.CorrectCount != 3 {
		t.Errorf("expected counts unchanged, got practice=%d correct=%d", q.PracticeCount, q.CorrectCount)
	}
	if q.UpdatedAt.Before(before) {
		t.Error("expected updated_at to advance")
	}
	if q.UpdatedAt.Before(q.CreatedAt) {
		t.Error("expected updated_at >= created_at")
	}
}

func TestApply_InvalidStatusLeavesQuestionUntouched(t *testing.T) {
	q, _ := question.New(question.NewParams{Subject: "math", QuestionText: "1+1=?"})
	before := *q

	status := "finished"
	if err := q.Apply(question.Patch{Status: &status}); err == nil {
		t.Fatal("expected error for unrecognized status, got nil")
	}

	if *q != before {
		t.Error("expected question to be unchanged after failed patch")
	}
}

func TestApply_CorrectCountAgainstStoredPractice(t *testing.T) {
	q, _ := question.New(question.NewParams{
		Subject:       "math",
		QuestionText:  "1+1=?",
		PracticeCount: 4,
		CorrectCount:  3,
	})

	// A lone correct_count above the stored practice_count must be rejected.
	correct := 5
	if err := q.Apply(question.Patch{CorrectCount: &correct}); err == nil {
		t.Error("expected error for correct_count > practice_count, got nil")
	}

	// Raising both together is fine.
	practice, correct2 := 10, 8
	if err := q.Apply(question.Patch{PracticeCount: &practice, CorrectCount: &correct2}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if q.PracticeCount != 10 || q.CorrectCount != 8 {
		t.Errorf("expected counts 10/8, got %d/%d", q.PracticeCount, q.CorrectCount)
	}
}

func TestApply_EmptySubjectRejected(t *testing.T) {
	q, _ := question.New(question.NewParams{Subject: "math", QuestionText: "1+1=?"})

	empty := ""
	if err := q.Apply(question.Patch{Subject: &empty}); err == nil {
		t.Error("expected error for empty subject, got nil")
	}
	if q.Subject != "math" {
		t.Error("expected subject unchanged after failed patch")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want question.Difficulty
	}{
		{"easy", question.DifficultyEasy},
		{"medium", question.DifficultyMedium},
		{"hard", question.DifficultyHard},
		{"", question.DifficultyMedium},
		{"extreme", question.DifficultyMedium},
	}

	for _, tt := range tests {
		if got := question.ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
