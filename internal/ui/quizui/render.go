package quizui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"knowit/internal/stopwatch"
)

const (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
	colorAccent  = lipgloss.Color("212")
	colorGood    = lipgloss.Color("42")
	colorBad     = lipgloss.Color("214")
	colorWarning = lipgloss.Color("203")
)

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var body string
	switch m.screen {
	case ScreenHome:
		body = m.viewHome()
	case ScreenSettings:
		body = m.viewSettings()
	case ScreenFileSelection:
		body = m.viewFileSelection()
	case ScreenSummary:
		body = m.viewSummary()
	case ScreenInProgress:
		body = m.viewInProgress()
	case ScreenResults:
		body = m.viewResults()
	case ScreenReview:
		body = m.viewReview()
	}
	parts := []string{m.stylize("knowit", colorTitle, true), body}
	if m.status != "" {
		parts = append(parts, m.stylize(m.status, colorWarning, false))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m Model) viewHome() string {
	return lines(
		"",
		"Practice quizzes from CSV and TSV files.",
		"",
		m.hint("enter: choose a quiz  s: settings  q: quit"),
	)
}

func (m Model) viewSettings() string {
	rows := []string{
		"Quiz folder: " + m.folder.View(),
		"Allow going back: " + onOff(m.allowBack),
		"Shuffle questions: " + onOff(m.shuffle),
	}
	for i := range rows {
		rows[i] = m.cursorLine(i == m.settingsCursor, rows[i])
	}
	return lines(
		"",
		m.stylize("Settings", colorAccent, true),
		strings.Join(rows, "\n"),
		"",
		m.hint("up/down: move  enter: save/toggle  esc: home"),
	)
}

func (m Model) viewFileSelection() string {
	out := []string{"", m.stylize("Choose a quiz ("+m.cfg.QuizFolder+")", colorAccent, true)}
	if len(m.files) == 0 {
		out = append(out, m.stylize("No .csv or .tsv files found.", colorMuted, false))
	}
	for i, entry := range m.files {
		label := entry.Path
		if entry.Recent {
			label += m.stylize(" (recent)", colorMuted, false)
		}
		out = append(out, m.cursorLine(i == m.fileCursor, label))
	}
	out = append(out, "", m.hint("up/down: move  enter: load  esc: home"))
	return lines(out...)
}

func (m Model) viewSummary() string {
	return lines(
		"",
		m.stylize("Quiz summary", colorAccent, true),
		"File: "+m.quizPath,
		"Questions: "+strconv.Itoa(m.session.Len()),
		"Question Type: "+KindLabel(m.session.Kind()),
		"Allow going back: "+onOff(m.allowBack),
		"Shuffle questions: "+onOff(m.shuffle),
		"",
		m.hint("enter: begin  b: toggle going back  s: toggle shuffle  esc: home"),
	)
}

func (m Model) viewInProgress() string {
	question, ok := m.session.CurrentQuestion()
	if !ok {
		return ""
	}
	timer := "Time: " + stopwatch.Format(m.watch.Elapsed())
	if m.watch.Paused() {
		timer += " (paused)"
	}
	header := fmt.Sprintf("Question %d of %d", m.session.CurrentIndex()+1, m.session.Len())
	out := []string{
		"",
		m.stylize(header, colorAccent, true) + "  " + m.stylize(timer, colorMuted, false),
		"",
		question.Text,
		"",
	}
	if m.watch.Paused() {
		out = append(out, m.stylize("Paused. Press ctrl+t to resume.", colorMuted, false))
	} else if question.IsMultipleChoice() {
		for i, option := range question.Options {
			out = append(out, m.cursorLine(i == m.optionCursor, fmt.Sprintf("%d. %s", i+1, option)))
		}
	} else {
		out = append(out, m.answer.View())
	}
	action := "enter: next"
	if m.session.IsLast() {
		action = "enter: finish"
	}
	hints := []string{action}
	if m.allowBack && m.session.CurrentIndex() > 0 {
		hints = append(hints, "ctrl+p: back")
	}
	hints = append(hints, "ctrl+t: pause", "esc: home")
	out = append(out, "", m.hint(strings.Join(hints, "  ")))
	return lines(out...)
}

func (m Model) viewResults() string {
	results := m.session.Results()
	score := fmt.Sprintf("Score: %d/%d (%.1f%%)", results.Correct, results.Total, results.Percent())
	scoreColor := colorGood
	if len(results.Incorrect) > 0 {
		scoreColor = colorBad
	}
	out := []string{
		"",
		m.stylize("Results", colorAccent, true),
		m.stylize(score, scoreColor, true),
		"Time: " + stopwatch.Format(m.watch.Elapsed()),
		"",
	}
	if len(results.Incorrect) == 0 {
		out = append(out, "No incorrect answers.")
	} else {
		out = append(out, "Incorrect questions:", m.incorrect.View())
	}
	out = append(out, "", m.hint("enter: review  r: restart  s: restart shuffled  f: choose file  q: quit"))
	return lines(out...)
}

func (m Model) viewReview() string {
	question, ok := m.session.Question(m.reviewIndex)
	if !ok {
		return ""
	}
	return lines(
		"",
		m.stylize(fmt.Sprintf("Question %d", question.Number), colorAccent, true),
		question.Text,
		"",
		"Your answer: "+m.stylize(question.AnswerText(), colorBad, false),
		"Correct answer: "+m.stylize(question.CorrectAnswer, colorGood, false),
		"",
		m.hint("esc: back to results"),
	)
}

func (m Model) cursorLine(selected bool, text string) string {
	if selected {
		return m.stylize("> ", colorAccent, true) + text
	}
	return "  " + text
}

func (m Model) hint(text string) string {
	return m.stylize(text, colorMuted, false)
}

// stylize applies optional color styling.
func (m Model) stylize(text string, color lipgloss.Color, bold bool) string {
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}

func onOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}
