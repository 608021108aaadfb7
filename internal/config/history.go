package config

import (
	"slices"
	"time"
)

// RecordFile moves path to the front of the history with timestamp at,
// dropping any earlier entry for the same path and trimming to
// MaxHistoryEntries.
func (cfg *UserConfig) RecordFile(path string, at time.Time) {
	cfg.FileHistory = slices.DeleteFunc(cfg.FileHistory, func(entry HistoryEntry) bool {
		return entry.Path == path
	})
	cfg.FileHistory = slices.Insert(cfg.FileHistory, 0, HistoryEntry{Path: path, Timestamp: at.Unix()})
	if len(cfg.FileHistory) > MaxHistoryEntries {
		cfg.FileHistory = cfg.FileHistory[:MaxHistoryEntries]
	}
}

// RecentPaths returns history paths, most recent first.
func (cfg UserConfig) RecentPaths() []string {
	paths := make([]string, 0, len(cfg.FileHistory))
	for _, entry := range cfg.FileHistory {
		paths = append(paths, entry.Path)
	}
	return paths
}

// MostRecent returns the most recently opened path, if any.
func (cfg UserConfig) MostRecent() (string, bool) {
	if len(cfg.FileHistory) == 0 {
		return "", false
	}
	return cfg.FileHistory[0].Path, true
}
