package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"knowit/internal/attempts"
	"knowit/internal/stopwatch"
)

// runStats builds the handler for the stats command.
func runStats(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dbPath := flags.String("attempts", "", "Attempt database (default: user config dir)")
		quizPath := flags.String("quiz", "", "Only show attempts for this quiz file")
		limit := flags.Int("limit", 20, "Maximum attempts to list")
		if err := flags.Parse(args); err != nil {
			return ExitUsage
		}
		if flags.NArg() > 0 || *limit <= 0 {
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		path, err := resolveAttemptsPath(*dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to locate attempt log: %v\n", err)
			return ExitError
		}
		if path != ":memory:" {
			if _, err := os.Stat(path); err != nil {
				fmt.Fprintln(stdout, "No attempts recorded.")
				return ExitOK
			}
		}

		ctx := context.Background()
		store, err := attempts.Open(ctx, path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open attempt log: %v\n", err)
			return ExitError
		}
		defer func() { _ = store.Close() }()

		var list []attempts.Attempt
		if strings.TrimSpace(*quizPath) != "" {
			abs, absErr := filepath.Abs(*quizPath)
			if absErr != nil {
				fmt.Fprintf(stderr, "Failed to resolve quiz path: %v\n", absErr)
				return ExitError
			}
			list, err = store.ForQuiz(ctx, abs, *limit)
		} else {
			list, err = store.Recent(ctx, *limit)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read attempts: %v\n", err)
			return ExitError
		}
		if len(list) == 0 {
			fmt.Fprintln(stdout, "No attempts recorded.")
			return ExitOK
		}

		writer := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "FINISHED\tSCORE\tPERCENT\tTIME\tKIND\tQUIZ")
		for _, attempt := range list {
			fmt.Fprintf(writer, "%s\t%d/%d\t%.1f%%\t%s\t%s\t%s\n",
				attempt.FinishedAt.UTC().Format("2006-01-02 15:04"),
				attempt.Correct,
				attempt.Total,
				attempt.Percent(),
				stopwatch.Format(attempt.Elapsed),
				attempt.Kind,
				attempt.QuizPath,
			)
		}
		if err := writer.Flush(); err != nil {
			fmt.Fprintf(stderr, "Failed to write stats: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
