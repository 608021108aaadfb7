package quizui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// fileEntry is one selectable quiz file.
type fileEntry struct {
	Path   string
	Recent bool
}

// listQuizFiles returns recent paths followed by the .csv and .tsv files of
// folder sorted by name. Folder files already present in the history are
// skipped. A folder read error is returned alongside the history entries.
func listQuizFiles(folder string, recent []string) ([]fileEntry, error) {
	entries := make([]fileEntry, 0, len(recent))
	seen := make(map[string]struct{}, len(recent))
	for _, path := range recent {
		entries = append(entries, fileEntry{Path: path, Recent: true})
		seen[canonicalPath(path)] = struct{}{}
	}
	if strings.TrimSpace(folder) == "" {
		folder = "."
	}
	dirEntries, err := os.ReadDir(folder)
	if err != nil {
		return entries, err
	}
	names := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if entry.IsDir() || !isQuizFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(folder, name)
		if _, ok := seen[canonicalPath(path)]; ok {
			continue
		}
		entries = append(entries, fileEntry{Path: path})
	}
	return entries, nil
}

func isQuizFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".tsv":
		return true
	}
	return false
}

// canonicalPath returns an absolute, cleaned form of path for comparisons.
func canonicalPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
