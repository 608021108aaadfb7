package quiz

import "strings"

// NormalizeAnswerText trims whitespace and lowercases an answer for matching.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// AnswersMatch compares two answers ignoring surrounding whitespace and case.
func AnswersMatch(given, correct string) bool {
	return NormalizeAnswerText(given) == NormalizeAnswerText(correct)
}
