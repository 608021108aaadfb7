package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	AppDirName        = "knowit"
	ConfigFileName    = "config.yml"
	AttemptsFileName  = "attempts.duckdb"
	DefaultQuizFolder = "."
	CurrentVersion    = 1
	MaxHistoryEntries = 10
	configPathEnvKey  = "KNOWIT_CONFIG"
)

// userConfigDir is a test seam for os.UserConfigDir.
var userConfigDir = os.UserConfigDir

// AppDir returns the per-user application directory.
func AppDir() (string, error) {
	base, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// DefaultPath returns the config file path, honoring KNOWIT_CONFIG.
func DefaultPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(configPathEnvKey)); override != "" {
		return filepath.Abs(override)
	}
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// DefaultAttemptsPath returns the attempt log database path.
func DefaultAttemptsPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AttemptsFileName), nil
}

// ResolvePath normalizes an explicit config path or falls back to the default.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// ResolveQuizPath joins a relative quiz file name onto the quiz folder.
// Absolute paths are returned unchanged.
func ResolveQuizPath(folder, file string) string {
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}
	if strings.TrimSpace(folder) == "" {
		folder = DefaultQuizFolder
	}
	return filepath.Join(folder, file)
}
