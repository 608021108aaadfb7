package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"knowit/internal/quiz"
	"knowit/internal/stopwatch"
	"knowit/internal/ui/quizui"
)

const (
	plainBack = ":back"
	plainQuit = ":quit"
)

type plainOptions struct {
	QuizPath  string
	AllowBack bool
	Shuffle   bool
	Clock     stopwatch.Clock
	OnFinish  func(quizui.Finish)
}

// runPlain runs a quiz as a line-oriented dialogue. It reports whether the
// attempt was finished; quitting or reaching end of input aborts it.
func runPlain(in io.Reader, out io.Writer, session *quiz.Session, opts plainOptions) (bool, error) {
	if session == nil || session.Len() == 0 {
		return false, errors.New("no quiz loaded")
	}
	scanner := bufio.NewScanner(in)
	session.Restart(opts.Shuffle)
	watch := stopwatch.New(opts.Clock)
	watch.Start()

	fmt.Fprintf(out, "Quiz: %s\n", opts.QuizPath)
	fmt.Fprintf(out, "%d questions (%s)\n", session.Len(), quizui.KindLabel(session.Kind()))
	commands := plainQuit + " to stop"
	if opts.AllowBack {
		commands = plainBack + " to go back, " + commands
	}
	fmt.Fprintf(out, "Answer with an option number or text; %s.\n", commands)

	for {
		question, _ := session.CurrentQuestion()
		printPlainQuestion(out, session, question)

		line, ok, err := readPlainLine(scanner, out)
		if err != nil {
			return false, fmt.Errorf("read answer: %w", err)
		}
		if !ok || line == plainQuit {
			fmt.Fprintln(out, "Quiz aborted.")
			return false, nil
		}
		if line == plainBack {
			switch {
			case !opts.AllowBack:
				fmt.Fprintln(out, "Going back is disabled.")
			case !session.Previous():
				fmt.Fprintln(out, "Already at the first question.")
			}
			continue
		}

		session.SubmitAnswer(plainAnswer(question, line))
		if session.IsLast() {
			break
		}
		session.Next()
	}

	watch.Pause()
	finish := quizui.NewFinish(opts.QuizPath, session, watch.Elapsed())
	printPlainResults(out, finish)
	if opts.OnFinish != nil {
		opts.OnFinish(finish)
	}
	return true, nil
}

func printPlainQuestion(out io.Writer, session *quiz.Session, question quiz.Question) {
	fmt.Fprintf(out, "\nQuestion %d of %d\n%s\n", session.CurrentIndex()+1, session.Len(), question.Text)
	for i, option := range question.Options {
		fmt.Fprintf(out, "  %d. %s\n", i+1, option)
	}
	if question.Answered() {
		fmt.Fprintf(out, "(current answer: %s)\n", question.AnswerText())
	}
}

// readPlainLine prompts until a non-empty line arrives. ok is false at end
// of input.
func readPlainLine(scanner *bufio.Scanner, out io.Writer) (string, bool, error) {
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return "", false, scanner.Err()
		}
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, true, nil
		}
	}
}

// plainAnswer maps an option number to its text for multiple choice
// questions; anything else is taken as typed. Input matching an option's
// text wins over an index so numeric options stay answerable.
func plainAnswer(question quiz.Question, line string) string {
	if !question.IsMultipleChoice() {
		return line
	}
	for _, option := range question.Options {
		if quiz.AnswersMatch(line, option) {
			return option
		}
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(question.Options) {
		return question.Options[n-1]
	}
	return line
}

func printPlainResults(out io.Writer, finish quizui.Finish) {
	results := finish.Results
	fmt.Fprintf(out, "\nScore: %d/%d (%.1f%%)\n", results.Correct, results.Total, results.Percent())
	fmt.Fprintf(out, "Time: %s\n", stopwatch.Format(finish.Elapsed))
	if len(results.Incorrect) == 0 {
		return
	}
	fmt.Fprintln(out, "Incorrect answers:")
	for _, idx := range results.Incorrect {
		question := finish.Questions[idx]
		fmt.Fprintf(out, "  Question %d: %s\n", question.Number, question.Text)
		fmt.Fprintf(out, "    Your answer: %s\n", question.AnswerText())
		fmt.Fprintf(out, "    Correct answer: %s\n", question.CorrectAnswer)
	}
}
