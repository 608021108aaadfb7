package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"knowit/internal/attempts"
	"knowit/internal/config"
	"knowit/internal/quiz"
	"knowit/internal/report"
	"knowit/internal/ui/quizui"
)

// runLiveUI is a test seam for the full-screen program.
var runLiveUI = quizui.Run

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: user config dir)")
		folder := fs.String("folder", "", "Quiz folder to browse (saved to config)")
		shuffle := fs.Bool("shuffle", false, "Shuffle questions and options")
		noBack := fs.Bool("no-back", false, "Disallow going back to earlier questions")
		uiMode := fs.String("ui", "auto", "UI mode: auto|live|plain")
		seed := fs.Int64("seed", 0, "Shuffle seed (0 uses the clock)")
		reportPath := fs.String("report", "", "Write an HTML results report to this file")
		attemptsPath := fs.String("attempts", "", "Attempt database (default: user config dir)")
		noRecord := fs.Bool("no-record", false, "Do not record the attempt")
		verbose := fs.Bool("verbose", false, "Verbose logging")
		logPath := fs.String("log", "", "Write verbose logs to a file")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		if err := parseInterspersed(fs, args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args()[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, stdin, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		var logFile io.WriteCloser
		if strings.TrimSpace(*logPath) != "" {
			logFile, err = openLogFile(*logPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
				return ExitError
			}
			defer func() { _ = logFile.Close() }()
		}
		var console io.Writer = stdout
		if decision.useLive {
			console = nil
			if *verbose && logFile == nil {
				fmt.Fprintln(stderr, "Verbose output is hidden in live mode; use --log to capture it.")
			}
		}
		var logSink io.Writer
		if logFile != nil {
			logSink = logFile
		}
		logger := newVerboseLogger(*verbose, console, logSink, *noColor)

		resolvedConfig, err := config.ResolvePath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to locate config: %v\n", err)
			return ExitError
		}
		cfg, err := config.LoadOrDefault(resolvedConfig)
		if err != nil {
			fmt.Fprintf(stderr, "Warning: %v; using default settings\n", err)
		}
		if strings.TrimSpace(*folder) != "" {
			cfg.QuizFolder = *folder
			config.Normalize(&cfg)
		}
		logger.Logf("config %s (quiz folder %s)", resolvedConfig, cfg.QuizFolder)
		saveConfig := func(c config.UserConfig) error {
			return config.Save(resolvedConfig, c)
		}
		load := func(path string) (*quiz.Session, error) {
			return quiz.LoadFile(path, quiz.Options{Seed: *seed})
		}

		ctx := context.Background()
		recorder := openRecorder(ctx, *noRecord, *attemptsPath, logger, stderr)
		defer recorder.Close()

		var last *quizui.Finish
		onFinish := func(finish quizui.Finish) {
			last = &finish
			recorder.Record(ctx, finish)
		}

		var (
			session  *quiz.Session
			quizPath string
		)
		switch {
		case fs.NArg() == 1:
			quizPath, err = resolveQuizArg(cfg.QuizFolder, fs.Arg(0))
			if err != nil {
				fmt.Fprintln(stderr, err)
				return ExitError
			}
		case !decision.useLive:
			recent, ok := cfg.MostRecent()
			if !ok {
				fmt.Fprintln(stderr, "No quiz file given and no recent quiz files.")
				printCommandUsage(cmd, stderr)
				return ExitUsage
			}
			quizPath = recent
		}
		if quizPath != "" {
			session, err = load(quizPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load quiz: %v\n", err)
				return ExitError
			}
			logger.Logf("loaded %s: %d questions (%s)", quizPath, session.Len(), session.Kind())
			cfg.RecordFile(quizPath, time.Now())
			if err := saveConfig(cfg); err != nil {
				fmt.Fprintf(stderr, "Warning: failed to save config: %v\n", err)
			}
		}

		if decision.useLive {
			model := quizui.NewModel(quizui.Options{
				Config:     cfg,
				SaveConfig: saveConfig,
				Load:       load,
				Session:    session,
				QuizPath:   quizPath,
				AllowBack:  !*noBack,
				Shuffle:    *shuffle,
				OnFinish:   onFinish,
				Logf:       logger.Logf,
				NoColor:    *noColor,
			})
			if _, err := runLiveUI(ctx, model, stdin, stdout); err != nil {
				fmt.Fprintf(stderr, "Quiz UI failed: %v\n", err)
				return ExitError
			}
		} else {
			_, err := runPlain(stdin, stdout, session, plainOptions{
				QuizPath:  quizPath,
				AllowBack: !*noBack,
				Shuffle:   *shuffle,
				OnFinish:  onFinish,
			})
			if err != nil {
				fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
				return ExitError
			}
		}
		recorder.Report(stderr)

		if strings.TrimSpace(*reportPath) != "" {
			if last == nil {
				fmt.Fprintln(stderr, "No finished attempt; report not written.")
				return ExitOK
			}
			data := report.Report{
				QuizPath:  last.QuizPath,
				KindLabel: quizui.KindLabel(last.Kind),
				Results:   last.Results,
				Questions: last.Questions,
				Elapsed:   last.Elapsed,
				Generated: time.Now(),
			}
			if err := report.WriteFile(*reportPath, data); err != nil {
				fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Report: %s\n", *reportPath)
		}
		return ExitOK
	}
}

// parseInterspersed parses flags that may appear before or after the
// positional quiz file.
func parseInterspersed(fs *flag.FlagSet, args []string) error {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
	return fs.Parse(positional)
}

// attemptRecorder writes finished attempts to the attempt log. Failures are
// logged and counted, never fatal.
type attemptRecorder struct {
	store    *attempts.Store
	logger   verboseLogger
	failures int
	lastErr  error
}

func openRecorder(ctx context.Context, disabled bool, path string, logger verboseLogger, stderr io.Writer) *attemptRecorder {
	recorder := &attemptRecorder{logger: logger}
	if disabled {
		return recorder
	}
	resolved, err := resolveAttemptsPath(path)
	if err == nil {
		recorder.store, err = attempts.Open(ctx, resolved)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Warning: attempt log unavailable: %v\n", err)
		return recorder
	}
	logger.Logf("recording attempts in %s", resolved)
	return recorder
}

func (r *attemptRecorder) Record(ctx context.Context, finish quizui.Finish) {
	if r.store == nil {
		return
	}
	saved, err := r.store.Record(ctx, attemptFromFinish(finish))
	if err != nil {
		r.failures++
		r.lastErr = err
		r.logger.logf(styleError, "record attempt: %v", err)
		return
	}
	r.logger.logf(styleResult, "recorded attempt %s: %d/%d", saved.ID, saved.Correct, saved.Total)
}

// Report prints a warning when any attempt could not be recorded.
func (r *attemptRecorder) Report(stderr io.Writer) {
	if r.failures == 0 {
		return
	}
	fmt.Fprintf(stderr, "Warning: %d attempt(s) were not recorded: %v\n", r.failures, r.lastErr)
}

func (r *attemptRecorder) Close() {
	if r.store != nil {
		_ = r.store.Close()
	}
}

func attemptFromFinish(finish quizui.Finish) attempts.Attempt {
	return attempts.Attempt{
		QuizPath: finish.QuizPath,
		Kind:     finish.Kind.String(),
		Total:    finish.Results.Total,
		Correct:  finish.Results.Correct,
		Answered: finish.Results.Answered(),
		Shuffled: finish.Shuffled,
		Elapsed:  finish.Elapsed,
	}
}
