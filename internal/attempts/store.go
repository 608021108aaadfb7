package attempts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
)

// Attempt is one finished pass through a quiz.
type Attempt struct {
	ID         string
	QuizPath   string
	Kind       string
	Total      int
	Correct    int
	Answered   int
	Shuffled   bool
	Elapsed    time.Duration
	FinishedAt time.Time
}

// Percent returns the share of correct answers over all questions.
func (a Attempt) Percent() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total) * 100
}

// Store records attempts in a DuckDB database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the attempt database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if ctx == nil {
		return nil, errors.New("attempts: context is nil")
	}
	if path != "" && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create attempts dir: %w", err)
		}
	}
	dsn := path
	if dsn == ":memory:" {
		dsn = ""
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open attempts db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping attempts db: %w", err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply attempts schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts an attempt, assigning an id and finish time when missing.
func (s *Store) Record(ctx context.Context, attempt Attempt) (Attempt, error) {
	if s == nil || s.db == nil {
		return Attempt{}, errors.New("attempts: store is closed")
	}
	if err := validate(attempt); err != nil {
		return Attempt{}, err
	}
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}
	if attempt.FinishedAt.IsZero() {
		attempt.FinishedAt = time.Now()
	}
	attempt.FinishedAt = attempt.FinishedAt.UTC().Truncate(time.Microsecond)
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO attempts (attempt_id, quiz_path, kind, total, correct, answered, shuffled, elapsed_ms, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		attempt.ID,
		attempt.QuizPath,
		attempt.Kind,
		attempt.Total,
		attempt.Correct,
		attempt.Answered,
		attempt.Shuffled,
		attempt.Elapsed.Milliseconds(),
		attempt.FinishedAt,
	); err != nil {
		return Attempt{}, fmt.Errorf("insert attempt: %w", err)
	}
	return attempt, nil
}

// Recent returns up to limit attempts, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	return s.query(ctx,
		`SELECT attempt_id, quiz_path, kind, total, correct, answered, shuffled, elapsed_ms, finished_at
		 FROM attempts ORDER BY finished_at DESC, attempt_id LIMIT ?`,
		normalizeLimit(limit),
	)
}

// ForQuiz returns up to limit attempts for one quiz file, newest first.
func (s *Store) ForQuiz(ctx context.Context, quizPath string, limit int) ([]Attempt, error) {
	return s.query(ctx,
		`SELECT attempt_id, quiz_path, kind, total, correct, answered, shuffled, elapsed_ms, finished_at
		 FROM attempts WHERE quiz_path = ? ORDER BY finished_at DESC, attempt_id LIMIT ?`,
		quizPath,
		normalizeLimit(limit),
	)
}

// query runs an attempt select and scans every row.
func (s *Store) query(ctx context.Context, query string, args ...any) ([]Attempt, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("attempts: store is closed")
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()
	var out []Attempt
	for rows.Next() {
		var (
			attempt   Attempt
			elapsedMs int64
		)
		if err := rows.Scan(
			&attempt.ID,
			&attempt.QuizPath,
			&attempt.Kind,
			&attempt.Total,
			&attempt.Correct,
			&attempt.Answered,
			&attempt.Shuffled,
			&elapsedMs,
			&attempt.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempt.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		out = append(out, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

// validate rejects attempts that would violate the table constraints.
func validate(attempt Attempt) error {
	switch {
	case attempt.QuizPath == "":
		return errors.New("attempts: quiz path is required")
	case attempt.Total < 0 || attempt.Correct < 0 || attempt.Answered < 0:
		return errors.New("attempts: counts must be >= 0")
	case attempt.Correct > attempt.Answered || attempt.Answered > attempt.Total:
		return fmt.Errorf("attempts: inconsistent counts correct=%d answered=%d total=%d", attempt.Correct, attempt.Answered, attempt.Total)
	case attempt.Elapsed < 0:
		return errors.New("attempts: elapsed must be >= 0")
	}
	return nil
}

// normalizeLimit clamps the row limit to a sane default.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	return limit
}
