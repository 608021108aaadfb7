package quizui

import (
	"path/filepath"
	"testing"

	"knowit/internal/testutil"
)

// TestListQuizFilesMissingFolder verifies history survives a bad folder.
func TestListQuizFilesMissingFolder(t *testing.T) {
	entries, err := listQuizFiles(filepath.Join(t.TempDir(), "missing"), []string{"/a.csv"})
	if err == nil {
		t.Fatalf("expected folder error")
	}
	if len(entries) != 1 || !entries[0].Recent {
		t.Fatalf("expected history entry, got %+v", entries)
	}
}

// TestListQuizFilesSortsByName verifies folder files are name ordered.
func TestListQuizFilesSortsByName(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.csv", "a.csv", "b.tsv"} {
		testutil.WriteFile(t, dir, name, "1,Q,A\n")
	}
	entries, err := listQuizFiles(dir, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"a.csv", "b.tsv", "c.csv"}
	for i, name := range want {
		if filepath.Base(entries[i].Path) != name {
			t.Fatalf("entry %d: expected %s, got %s", i, name, entries[i].Path)
		}
	}
}
