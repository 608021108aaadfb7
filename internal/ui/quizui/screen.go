package quizui

import "knowit/internal/quiz"

// Screen identifies which view the model is showing.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenSettings
	ScreenFileSelection
	ScreenSummary
	ScreenInProgress
	ScreenResults
	ScreenReview
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenSettings:
		return "settings"
	case ScreenFileSelection:
		return "file_selection"
	case ScreenSummary:
		return "summary"
	case ScreenInProgress:
		return "in_progress"
	case ScreenResults:
		return "results"
	case ScreenReview:
		return "review"
	default:
		return "unknown"
	}
}

// KindLabel returns the display label for a question set kind.
func KindLabel(kind quiz.Kind) string {
	switch kind {
	case quiz.KindShortAnswer:
		return "Short Answer"
	case quiz.KindMultipleChoice:
		return "Multiple Choice"
	case quiz.KindMixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}
