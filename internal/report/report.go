package report

import (
	"time"

	"knowit/internal/quiz"
)

// Report is the data rendered for a finished attempt.
type Report struct {
	QuizPath  string
	KindLabel string
	Results   quiz.Results
	Questions []quiz.Question
	Elapsed   time.Duration
	Generated time.Time
}

// questionStatus labels a question's outcome.
func questionStatus(question quiz.Question) string {
	switch {
	case !question.Answered():
		return "unanswered"
	case question.IsCorrect():
		return "correct"
	default:
		return "incorrect"
	}
}
