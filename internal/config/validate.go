package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config.
func Validate(cfg *UserConfig) error {
	collector := &issueCollector{}
	if cfg.Version != CurrentVersion {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if strings.TrimSpace(cfg.QuizFolder) == "" {
		collector.add("quiz_folder", "is required")
	}
	if len(cfg.FileHistory) > MaxHistoryEntries {
		collector.add("file_history", fmt.Sprintf("must have at most %d entries", MaxHistoryEntries))
	}
	for i, entry := range cfg.FileHistory {
		prefix := fmt.Sprintf("file_history[%d]", i)
		if strings.TrimSpace(entry.Path) == "" {
			collector.add(prefix+".path", "is required")
		}
		if entry.Timestamp < 0 {
			collector.add(prefix+".timestamp", "must be >= 0")
		}
	}
	return collector.result()
}
