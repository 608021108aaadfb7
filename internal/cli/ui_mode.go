package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type uiMode string

const (
	uiAuto  uiMode = "auto"
	uiLive  uiMode = "live"
	uiPlain uiMode = "plain"
)

// parseUIMode accepts auto, live, or plain in any case; blank means auto.
func parseUIMode(raw string) (uiMode, error) {
	switch mode := uiMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return uiAuto, nil
	case uiAuto, uiLive, uiPlain:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", raw)
	}
}

// uiModeDecision says which front end plays the quiz.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a stream is attached to a TTY. Tests swap it.
var isTerminal = streamIsTerminal

// resolveUIMode picks the full-screen UI only when both ends of the session
// are interactive. Asking for live without a terminal degrades to plain
// with a warning.
func resolveUIMode(raw string, stdin io.Reader, stdout io.Writer) (uiModeDecision, error) {
	mode, err := parseUIMode(raw)
	if err != nil {
		return uiModeDecision{}, err
	}
	interactive := isTerminal(stdout) && isTerminal(stdin)
	switch {
	case mode == uiPlain:
		return uiModeDecision{}, nil
	case interactive:
		return uiModeDecision{useLive: true}, nil
	case mode == uiLive:
		return uiModeDecision{warning: "Live UI needs an interactive terminal; playing in plain mode."}, nil
	}
	return uiModeDecision{}, nil
}

func streamIsTerminal(stream any) bool {
	switch s := stream.(type) {
	case nil:
		return false
	case *os.File:
		return s != nil && term.IsTerminal(int(s.Fd()))
	case interface{ Fd() uintptr }:
		return term.IsTerminal(int(s.Fd()))
	}
	return false
}
