package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"knowit/internal/config"
)

// resolveQuizArg resolves a quiz file argument. Paths that exist relative
// to the working directory win; other relative names are looked up in the
// quiz folder.
func resolveQuizArg(folder, arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return filepath.Abs(arg)
	}
	path := config.ResolveQuizPath(folder, arg)
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve quiz path: %w", err)
	}
	return abs, nil
}

// resolveAttemptsPath returns the attempt database path, defaulting to the
// per-user application directory.
func resolveAttemptsPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.DefaultAttemptsPath()
	}
	if path == ":memory:" {
		return path, nil
	}
	return filepath.Abs(path)
}

// openLogFile truncates or creates the verbose log file.
func openLogFile(path string) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
