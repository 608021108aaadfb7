package cli

import (
	"bytes"
	"strings"
	"testing"

	"knowit/internal/testutil"
)

// TestValidateCommandSuccess verifies a loadable quiz is summarized.
func TestValidateCommandSuccess(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "quiz.csv", "1,Capital?,Paris,London\n2,2+2?,4\n")

	var out, err bytes.Buffer
	code := Run([]string{"validate", path}, nil, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Quiz OK: 2 questions (Mixed)") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

// TestValidateCommandFailure verifies load errors name the row.
func TestValidateCommandFailure(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "quiz.csv", "1,Q,A\nx,Q,A\n")

	var out, err bytes.Buffer
	code := Run([]string{"validate", path}, nil, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "row 2") {
		t.Fatalf("expected row number in error, got %q", err.String())
	}
}

// TestValidateCommandUsage verifies a quiz file argument is required.
func TestValidateCommandUsage(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run([]string{"validate"}, nil, &out, &err); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
