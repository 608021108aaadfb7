package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const verbosePrefix = "[verbose]"

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGray  = "\x1b[90m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
)

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	styleResult
	styleError
)

// verboseLogger writes [verbose] lines to the console and an optional log
// file. The console copy is styled when the writer supports it; the file
// copy never is.
type verboseLogger struct {
	enabled bool
	console io.Writer
	file    io.Writer
	palette verbosePalette
}

func newVerboseLogger(enabled bool, console, file io.Writer, noColor bool) verboseLogger {
	return verboseLogger{
		enabled: enabled,
		console: console,
		file:    file,
		palette: paletteFor(console, noColor),
	}
}

func (l verboseLogger) logf(style verboseStyle, format string, args ...any) {
	if !l.enabled {
		return
	}
	line := fmt.Sprintf(format, args...)
	if l.console != nil {
		fmt.Fprintf(l.console, "%s %s\n", l.palette.prefix(verbosePrefix), l.palette.apply(style, line))
	}
	if l.file != nil {
		fmt.Fprintf(l.file, "%s %s\n", verbosePrefix, line)
	}
}

// Logf logs an unstyled line; it matches the quiz UI's Logf hook.
func (l verboseLogger) Logf(format string, args ...any) {
	l.logf(styleDefault, format, args...)
}

type verbosePalette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) verbosePalette {
	if noColor {
		return verbosePalette{enabled: false}
	}
	return verbosePalette{enabled: shouldUseStyling(writer)}
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	return isTerminal(writer)
}

func (p verbosePalette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return ansiDim + ansiGray + text + ansiReset
}

func (p verbosePalette) apply(style verboseStyle, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case styleResult:
		return ansiBold + ansiGreen + text + ansiReset
	case styleError:
		return ansiBold + ansiRed + text + ansiReset
	default:
		return text
	}
}
