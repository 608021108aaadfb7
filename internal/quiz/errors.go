package quiz

import (
	"errors"
	"fmt"
)

// ErrEmptyQuizFile indicates the file contained no question rows.
var ErrEmptyQuizFile = errors.New("no questions found in quiz file")

// MalformedRowError reports a row with fewer than three fields.
type MalformedRowError struct {
	Row        int
	FieldCount int
}

// Error returns a readable message naming the row.
func (err *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d must have at least %d columns (number, question, answer), found %d", err.Row, minFields, err.FieldCount)
}

// InvalidQuestionNumberError reports a row whose first field is not a
// non-negative integer.
type InvalidQuestionNumberError struct {
	Row   int
	Value string
}

// Error returns a readable message naming the row.
func (err *InvalidQuestionNumberError) Error() string {
	return fmt.Sprintf("invalid question number %q in row %d", err.Value, err.Row)
}

// ReadError wraps I/O and delimited-format failures. Row is zero when the
// failure is not tied to a specific row.
type ReadError struct {
	Row int
	Err error
}

// Error returns a readable message including the row when known.
func (err *ReadError) Error() string {
	if err.Row > 0 {
		return fmt.Sprintf("read row %d: %v", err.Row, err.Err)
	}
	return fmt.Sprintf("read quiz file: %v", err.Err)
}

// Unwrap exposes the underlying error.
func (err *ReadError) Unwrap() error {
	return err.Err
}
