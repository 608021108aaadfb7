package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"knowit/internal/config"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: user config dir)")
		if err := flags.Parse(args); err != nil {
			return ExitUsage
		}
		if flags.NArg() > 0 {
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		path, err := config.ResolvePath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to locate config: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		if len(cfg.FileHistory) == 0 {
			fmt.Fprintln(stdout, "No recent quiz files.")
			return ExitOK
		}
		for _, entry := range cfg.FileHistory {
			opened := time.Unix(entry.Timestamp, 0).UTC().Format(time.RFC3339)
			fmt.Fprintf(stdout, "%s  %s\n", opened, entry.Path)
		}
		return ExitOK
	}
}
