package quizui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"knowit/internal/quiz"
)

func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = styles.Selected.UnsetForeground().UnsetBackground().Bold(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

func incorrectColumns() []table.Column {
	return columnsForWidth(0)
}

// columnsForWidth sizes the question column to fill the terminal width.
func columnsForWidth(width int) []table.Column {
	const fixed = 4 + 20 + 20 + 8
	questionWidth := 40
	if width > fixed+20 {
		questionWidth = width - fixed
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: questionWidth},
		{Title: "Your answer", Width: 20},
		{Title: "Correct answer", Width: 20},
	}
}

// incorrectRows lists the incorrectly answered questions in session order.
func incorrectRows(session *quiz.Session, results quiz.Results) []table.Row {
	rows := make([]table.Row, 0, len(results.Incorrect))
	for _, idx := range results.Incorrect {
		question, ok := session.Question(idx)
		if !ok {
			continue
		}
		rows = append(rows, table.Row{
			strconv.Itoa(question.Number),
			question.Text,
			question.AnswerText(),
			question.CorrectAnswer,
		})
	}
	return rows
}
