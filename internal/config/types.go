package config

// UserConfig is the persisted per-user state: where quiz files live and
// which files were opened recently.
type UserConfig struct {
	Version     int            `yaml:"version"`
	QuizFolder  string         `yaml:"quiz_folder"`
	FileHistory []HistoryEntry `yaml:"file_history"`
}

// HistoryEntry records when a quiz file was last opened.
type HistoryEntry struct {
	Path      string `yaml:"path"`
	Timestamp int64  `yaml:"timestamp"`
}

// Default returns the config used when no file exists yet.
func Default() UserConfig {
	return UserConfig{
		Version:    CurrentVersion,
		QuizFolder: DefaultQuizFolder,
	}
}
