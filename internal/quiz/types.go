package quiz

import "slices"

// Question is one row of a quiz file.
type Question struct {
	Number        int
	Text          string
	CorrectAnswer string
	// Options is empty for short-answer questions. Otherwise it holds the
	// correct answer followed by the remaining declared options.
	Options    []string
	UserAnswer *string
}

// IsMultipleChoice reports whether the question offers options.
func (q Question) IsMultipleChoice() bool {
	return len(q.Options) > 0
}

// Answered reports whether a user answer has been recorded.
func (q Question) Answered() bool {
	return q.UserAnswer != nil
}

// AnswerText returns the recorded answer, or "" when unanswered.
func (q Question) AnswerText() string {
	if q.UserAnswer == nil {
		return ""
	}
	return *q.UserAnswer
}

// IsCorrect reports whether the recorded answer matches the correct answer.
func (q Question) IsCorrect() bool {
	if q.UserAnswer == nil {
		return false
	}
	return AnswersMatch(*q.UserAnswer, q.CorrectAnswer)
}

// clone returns a deep copy so callers never alias session state.
func (q Question) clone() Question {
	out := q
	out.Options = slices.Clone(q.Options)
	if q.UserAnswer != nil {
		answer := *q.UserAnswer
		out.UserAnswer = &answer
	}
	return out
}

// Kind classifies the mix of question types in a quiz.
type Kind int

const (
	// KindShortAnswer means no question offers options.
	KindShortAnswer Kind = iota
	// KindMultipleChoice means every question offers options.
	KindMultipleChoice
	// KindMixed means both kinds are present.
	KindMixed
)

// String returns a stable machine name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShortAnswer:
		return "short_answer"
	case KindMultipleChoice:
		return "multiple_choice"
	case KindMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// classify derives the kind from the presence flags gathered while loading.
func classify(hasShortAnswer, hasMultipleChoice bool) Kind {
	switch {
	case hasShortAnswer && !hasMultipleChoice:
		return KindShortAnswer
	case hasMultipleChoice && !hasShortAnswer:
		return KindMultipleChoice
	default:
		return KindMixed
	}
}
