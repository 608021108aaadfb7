package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// TestLoadMissingFileReturnsDefault verifies a fresh install starts from defaults.
func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected default config, got %+v", cfg)
	}
}

// TestSaveLoadRoundTrip verifies saved configs load back unchanged.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	cfg := Default()
	cfg.QuizFolder = "/quizzes"
	cfg.RecordFile("/quizzes/a.csv", time.Unix(100, 0))
	cfg.RecordFile("/quizzes/b.csv", time.Unix(200, 0))

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file to be removed, got %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Fatalf("expected %+v, got %+v", cfg, loaded)
	}
}

// TestLoadRejectsUnknownFields verifies strict YAML decoding.
func TestLoadRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("version: 1\nquiz_dir: x\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
	cfg, err := LoadOrDefault(path)
	if err == nil {
		t.Fatalf("expected error to be reported")
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected fallback to defaults, got %+v", cfg)
	}
}

// TestLoadRejectsMultipleDocuments verifies only one YAML document is read.
func TestLoadRejectsMultipleDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("version: 1\n---\nversion: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
}

// TestLoadNormalizesHistory verifies trimming, dedupe, and the entry cap.
func TestLoadNormalizesHistory(t *testing.T) {
	var body strings.Builder
	body.WriteString("version: 1\nquiz_folder: \"  \"\nfile_history:\n")
	body.WriteString("  - path: \" /a.csv \"\n    timestamp: 5\n")
	body.WriteString("  - path: /a.csv\n    timestamp: 4\n")
	body.WriteString("  - path: \"\"\n    timestamp: 3\n")
	for i := 0; i < 12; i++ {
		body.WriteString(fmt.Sprintf("  - path: /q%d.csv\n    timestamp: %d\n", i, i))
	}
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.QuizFolder != DefaultQuizFolder {
		t.Fatalf("expected default quiz folder, got %q", cfg.QuizFolder)
	}
	if len(cfg.FileHistory) != MaxHistoryEntries {
		t.Fatalf("expected %d entries, got %d", MaxHistoryEntries, len(cfg.FileHistory))
	}
	if cfg.FileHistory[0] != (HistoryEntry{Path: "/a.csv", Timestamp: 5}) {
		t.Fatalf("unexpected first entry: %+v", cfg.FileHistory[0])
	}
	if cfg.FileHistory[1].Path != "/q0.csv" {
		t.Fatalf("expected duplicate and empty entries dropped, got %+v", cfg.FileHistory[1])
	}
}

// TestValidateReportsIssues verifies validation errors name the fields.
func TestValidateReportsIssues(t *testing.T) {
	cfg := UserConfig{
		Version:     2,
		FileHistory: []HistoryEntry{{Path: "", Timestamp: -1}},
	}
	err := Validate(&cfg)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	message := err.Error()
	for _, field := range []string{"version", "quiz_folder", "file_history[0].path", "file_history[0].timestamp"} {
		if !strings.Contains(message, field) {
			t.Fatalf("expected %s in %q", field, message)
		}
	}
}

// TestRecordFileMovesToFront verifies re-adding a path moves it to the front.
func TestRecordFileMovesToFront(t *testing.T) {
	cfg := Default()
	cfg.RecordFile("/a.csv", time.Unix(1, 0))
	cfg.RecordFile("/b.csv", time.Unix(2, 0))
	cfg.RecordFile("/a.csv", time.Unix(3, 0))

	if got := cfg.RecentPaths(); !reflect.DeepEqual(got, []string{"/a.csv", "/b.csv"}) {
		t.Fatalf("unexpected history: %v", got)
	}
	if cfg.FileHistory[0].Timestamp != 3 {
		t.Fatalf("expected refreshed timestamp, got %d", cfg.FileHistory[0].Timestamp)
	}
	recent, ok := cfg.MostRecent()
	if !ok || recent != "/a.csv" {
		t.Fatalf("expected most recent /a.csv, got %q", recent)
	}
}

// TestRecordFileCapsHistory verifies the history never exceeds the cap.
func TestRecordFileCapsHistory(t *testing.T) {
	cfg := Default()
	for i := 0; i < MaxHistoryEntries+5; i++ {
		cfg.RecordFile(fmt.Sprintf("/q%d.csv", i), time.Unix(int64(i), 0))
	}
	if len(cfg.FileHistory) != MaxHistoryEntries {
		t.Fatalf("expected %d entries, got %d", MaxHistoryEntries, len(cfg.FileHistory))
	}
	if cfg.FileHistory[0].Path != fmt.Sprintf("/q%d.csv", MaxHistoryEntries+4) {
		t.Fatalf("expected newest entry first, got %+v", cfg.FileHistory[0])
	}
}

// TestResolveQuizPath verifies relative names join onto the quiz folder.
func TestResolveQuizPath(t *testing.T) {
	if got := ResolveQuizPath("/quizzes", "a.csv"); got != filepath.Join("/quizzes", "a.csv") {
		t.Fatalf("unexpected relative resolution: %q", got)
	}
	if got := ResolveQuizPath("/quizzes", "/other/b.csv"); got != "/other/b.csv" {
		t.Fatalf("unexpected absolute resolution: %q", got)
	}
	if got := ResolveQuizPath("", "c.csv"); got != "c.csv" {
		t.Fatalf("unexpected default folder resolution: %q", got)
	}
}

// TestDefaultPathUsesUserConfigDir verifies the default location and override.
func TestDefaultPathUsesUserConfigDir(t *testing.T) {
	dir := t.TempDir()
	original := userConfigDir
	t.Cleanup(func() { userConfigDir = original })
	userConfigDir = func() (string, error) { return dir, nil }
	t.Setenv(configPathEnvKey, "")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if path != filepath.Join(dir, AppDirName, ConfigFileName) {
		t.Fatalf("unexpected default path: %q", path)
	}

	override := filepath.Join(dir, "custom.yml")
	t.Setenv(configPathEnvKey, override)
	path, err = DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if path != override {
		t.Fatalf("expected override %q, got %q", override, path)
	}
}
