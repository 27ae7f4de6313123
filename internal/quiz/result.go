package quiz

import "math"

// QuestionResult is the per-question review entry of a finished session.
type QuestionResult struct {
	Question      string
	UserAnswer    string
	CorrectAnswer string
	Correct       bool
	Explanation   string
}

// Result summarizes one completed quiz. It is produced exactly once per
// session, by Finish or timer expiry.
type Result struct {
	ID             string
	Subject        string
	TotalQuestions int
	CorrectAnswers int
	Accuracy       int // integer percent, 0..100
	TimeSpent      int // seconds
	HintsUsed      int
	SkipsUsed      int
	Questions      []QuestionResult
}

// accuracyPercent returns round(correct/total*100), or 0 for an empty set.
func accuracyPercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
