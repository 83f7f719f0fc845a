package question

import "math"

// Summary holds the derived learning statistics for a collection of
// questions. It is recomputed from a full scan on every request rather
// than maintained incrementally.
type Summary struct {
	TotalQuestions int     `json:"totalQuestions"`
	MasteredCount  int     `json:"masteredCount"`
	ReviewingCount int     `json:"reviewingCount"`
	PendingCount   int     `json:"pendingCount"`
	TotalPractices int     `json:"totalPractices"`
	AccuracyRate   float64 `json:"accuracyRate"`
}

// Aggregate derives summary statistics from the given questions.
// AccuracyRate is the overall correct/practice ratio as a percentage
// rounded to one decimal place, and 0 when there are no practices.
func Aggregate(questions []*Question) Summary {
	var s Summary
	var correct int

	s.TotalQuestions = len(questions)
	for _, q := range questions {
		switch q.Status {
		case StatusMastered:
			s.MasteredCount++
		case StatusReviewing:
			s.ReviewingCount++
		default:
			s.PendingCount++
		}
		s.TotalPractices += q.PracticeCount
		correct += q.CorrectCount
	}

	if s.TotalPractices > 0 {
		rate := float64(correct) / float64(s.TotalPractices) * 100
		s.AccuracyRate = math.Round(rate*10) / 10
	}
	return s
}
