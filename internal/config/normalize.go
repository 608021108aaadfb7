package config

import "strings"

// Normalize fills defaults, trims paths and enforces the history policy:
// most recent first, unique by exact path, at most MaxHistoryEntries.
func Normalize(cfg *UserConfig) {
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	cfg.QuizFolder = strings.TrimSpace(cfg.QuizFolder)
	if cfg.QuizFolder == "" {
		cfg.QuizFolder = DefaultQuizFolder
	}
	seen := map[string]struct{}{}
	history := make([]HistoryEntry, 0, len(cfg.FileHistory))
	for _, entry := range cfg.FileHistory {
		entry.Path = strings.TrimSpace(entry.Path)
		if entry.Path == "" {
			continue
		}
		if _, exists := seen[entry.Path]; exists {
			continue
		}
		seen[entry.Path] = struct{}{}
		history = append(history, entry)
	}
	if len(history) > MaxHistoryEntries {
		history = history[:MaxHistoryEntries]
	}
	cfg.FileHistory = history
}
