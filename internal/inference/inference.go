package inference

import (
	"context"

	"github.com/mistakebook/backend/internal/domain/question"
)

// PracticeQuestion is a generated practice problem with its answer key.
type PracticeQuestion struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

// Analysis summarizes recurring weaknesses across a set of mistakes.
type Analysis struct {
	WeakTopics  []string `json:"weakTopics"`
	Suggestions []string `json:"suggestions"`
}

// Service performs image-to-text recognition and explanation generation.
// Implementations may call an OCR/LLM endpoint or return canned results
// (for tests and offline use).
type Service interface {
	// Recognize transcribes the problem statement from an image.
	Recognize(ctx context.Context, image []byte, mimeType string) (string, error)

	// Explain produces a child-friendly walkthrough of a question.
	// userAnswer and correctAnswer may be empty.
	Explain(ctx context.Context, questionText, userAnswer, correctAnswer string) (string, error)

	// GeneratePractice produces a fresh practice problem for a subject.
	// difficulty and topic may be empty.
	GeneratePractice(ctx context.Context, subject, difficulty, topic string) (PracticeQuestion, error)

	// AnalyzeMistakes looks for patterns across the given questions.
	AnalyzeMistakes(ctx context.Context, questions []*question.Question) (Analysis, error)
}
