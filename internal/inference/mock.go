package inference

import (
	"context"

	"github.com/mistakebook/backend/internal/domain/question"
)

// Mock returns deterministic fixed text for every operation. It is the
// default service until a real OCR/LLM endpoint is configured, and the
// test double for everything that depends on inference.
type Mock struct{}

// Compile-time check: *Mock satisfies the Service interface.
var _ Service = (*Mock)(nil)

func NewMock() *Mock {
	return &Mock{}
}

const mockQuestionText = `Tom has 5 apples. He gives 2 to Lucy, then buys 3 more.
How many apples does Tom have now?`

const mockExplanation = `Let's look at this problem together.

Step 1: Read the question carefully and make sure you understand what it asks.

Step 2: Find the key numbers and facts in the problem.

Step 3: Work through the calculation or reasoning one step at a time.

Step 4: Check that your answer actually answers the question.

Watch out for these common slips:
1. Misreading the question
2. Small calculation mistakes
3. Leaving the answer incomplete

Try a few similar problems to make this skill stick. You can do it!`

func (m *Mock) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	return mockQuestionText, nil
}

func (m *Mock) Explain(ctx context.Context, questionText, userAnswer, correctAnswer string) (string, error) {
	return mockExplanation, nil
}

func (m *Mock) GeneratePractice(ctx context.Context, subject, difficulty, topic string) (PracticeQuestion, error) {
	return PracticeQuestion{
		Question: `Mia has 6 oranges. She gives 3 to Sam, then her mom gives her 4 more.
How many oranges does Mia have now?`,
		Answer: "7",
		Explanation: `Mia starts with 6 oranges. After giving 3 away she has 6 - 3 = 3.
Her mom gives her 4 more, so she now has 3 + 4 = 7 oranges.`,
	}, nil
}

func (m *Mock) AnalyzeMistakes(ctx context.Context, questions []*question.Question) (Analysis, error) {
	if len(questions) == 0 {
		return Analysis{WeakTopics: []string{}, Suggestions: []string{}}, nil
	}
	return Analysis{
		WeakTopics: []string{
			"addition and subtraction",
			"reading word problems",
		},
		Suggestions: []string{
			"Practice basic addition and subtraction drills",
			"Read each problem twice before answering",
			"Try more word problems to build comprehension",
		},
	}, nil
}
