package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"knowit/internal/quiz"
)

const generatedLayout = "2006-01-02 15:04:05"

// scoreText renders "correct/total (pct%)".
func scoreText(results quiz.Results) string {
	return fmt.Sprintf("%d/%d (%.1f%%)", results.Correct, results.Total, results.Percent())
}

// RenderHTML renders the report into a string.
func RenderHTML(report Report) (string, error) {
	var builder strings.Builder
	if err := ReportPage(report).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// WriteFile renders the report to path, creating parent directories.
func WriteFile(path string, report Report) error {
	html, err := RenderHTML(report)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
