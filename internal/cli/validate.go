package cli

import (
	"flag"
	"fmt"
	"io"

	"knowit/internal/quiz"
	"knowit/internal/ui/quizui"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		if err := flags.Parse(args); err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		path := flags.Arg(0)
		session, err := quiz.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Quiz OK: %d questions (%s)\n", session.Len(), quizui.KindLabel(session.Kind()))
		return ExitOK
	}
}
