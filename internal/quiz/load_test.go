package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// writeQuiz writes a quiz file into a temp dir and returns its path.
func writeQuiz(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
	return path
}

// TestLoadMixedQuiz verifies parsing, option building, and classification.
func TestLoadMixedQuiz(t *testing.T) {
	path := writeQuiz(t, "mixed.csv", "1,2+2?,4\n2,Capital of France?,Paris,London,Paris,Berlin\n")
	session, err := Load(path)
	if err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	if session.Len() != 2 {
		t.Fatalf("expected 2 questions, got %d", session.Len())
	}
	if session.Kind() != KindMixed {
		t.Fatalf("expected mixed kind, got %s", session.Kind())
	}
	if session.CurrentIndex() != 0 || session.Shuffled() {
		t.Fatalf("expected fresh session, got index=%d shuffled=%v", session.CurrentIndex(), session.Shuffled())
	}
	first, _ := session.Question(0)
	if first.Number != 1 || first.Text != "2+2?" || first.CorrectAnswer != "4" || len(first.Options) != 0 {
		t.Fatalf("unexpected first question: %+v", first)
	}
	second, _ := session.Question(1)
	want := []string{"Paris", "London", "Paris", "Berlin"}
	if !reflect.DeepEqual(second.Options, want) {
		t.Fatalf("expected options %v, got %v", want, second.Options)
	}
}

// TestLoadTrimsFields verifies surrounding whitespace and quoting are handled.
func TestLoadTrimsFields(t *testing.T) {
	body := "  7 ,  \"Hello, world?\", yes ,  no  \n"
	session, err := LoadReader(strings.NewReader(body), Options{})
	if err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	question, _ := session.CurrentQuestion()
	if question.Number != 7 {
		t.Fatalf("expected number 7, got %d", question.Number)
	}
	if question.Text != "Hello, world?" {
		t.Fatalf("expected trimmed quoted text, got %q", question.Text)
	}
	if !reflect.DeepEqual(question.Options, []string{"yes", "no"}) {
		t.Fatalf("unexpected options: %q", question.Options)
	}
}

// TestLoadClassification verifies the kind for each question mix.
func TestLoadClassification(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Kind
	}{
		{name: "short answer", body: "1,a,b\n2,c,d\n", want: KindShortAnswer},
		{name: "multiple choice", body: "1,a,b,c\n2,c,d,e,f\n", want: KindMultipleChoice},
		{name: "mixed", body: "1,a,b\n2,c,d,e\n", want: KindMixed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			session, err := LoadReader(strings.NewReader(tc.body), Options{})
			if err != nil {
				t.Fatalf("load quiz: %v", err)
			}
			if session.Kind() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, session.Kind())
			}
		})
	}
}

// TestLoadMalformedRow verifies short rows fail with their 1-based row number.
func TestLoadMalformedRow(t *testing.T) {
	path := writeQuiz(t, "bad.csv", "1,ok,yes\n2,missing answer\n3,never,read\n")
	_, err := Load(path)
	var malformed *MalformedRowError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRowError, got %v", err)
	}
	if malformed.Row != 2 || malformed.FieldCount != 2 {
		t.Fatalf("expected row 2 with 2 fields, got %+v", malformed)
	}
	if RowOf(err) != 2 {
		t.Fatalf("expected RowOf 2, got %d", RowOf(err))
	}
}

// TestLoadInvalidQuestionNumber verifies non-numeric and negative numbers fail.
func TestLoadInvalidQuestionNumber(t *testing.T) {
	for _, body := range []string{"x,q,a\n", "-1,q,a\n", "1.5,q,a\n"} {
		_, err := LoadReader(strings.NewReader(body), Options{})
		var invalid *InvalidQuestionNumberError
		if !errors.As(err, &invalid) {
			t.Fatalf("%q: expected InvalidQuestionNumberError, got %v", body, err)
		}
		if invalid.Row != 1 {
			t.Fatalf("%q: expected row 1, got %d", body, invalid.Row)
		}
	}
}

// TestLoadEmptyFile verifies empty files are rejected.
func TestLoadEmptyFile(t *testing.T) {
	path := writeQuiz(t, "empty.csv", "\n\n")
	_, err := Load(path)
	if !errors.Is(err, ErrEmptyQuizFile) {
		t.Fatalf("expected ErrEmptyQuizFile, got %v", err)
	}
}

// TestLoadMissingFile verifies I/O failures are wrapped in ReadError.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected ReadError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

// TestLoadBadQuoting verifies delimited-format errors carry the row.
func TestLoadBadQuoting(t *testing.T) {
	_, err := LoadReader(strings.NewReader("1,ok,yes\n2,\"broken,no\n"), Options{})
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected ReadError, got %v", err)
	}
	if readErr.Row != 2 {
		t.Fatalf("expected row 2, got %d", readErr.Row)
	}
}

// TestLoadTSVAndBOM verifies tab-separated files and a leading BOM.
func TestLoadTSVAndBOM(t *testing.T) {
	path := writeQuiz(t, "quiz.tsv", "\ufeff1\tColor of sky?\tblue\tred\n")
	session, err := Load(path)
	if err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	question, _ := session.CurrentQuestion()
	if question.Number != 1 || question.CorrectAnswer != "blue" {
		t.Fatalf("unexpected question: %+v", question)
	}
	if !reflect.DeepEqual(question.Options, []string{"blue", "red"}) {
		t.Fatalf("unexpected options: %q", question.Options)
	}
}

// TestLoadDuplicateNumbers verifies numbers need not be unique or ordered.
func TestLoadDuplicateNumbers(t *testing.T) {
	session, err := LoadReader(strings.NewReader("5,a,b\n5,c,d\n0,e,f\n"), Options{})
	if err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	if session.Len() != 3 {
		t.Fatalf("expected 3 questions, got %d", session.Len())
	}
}

// TestLoadTSVEmptyFields verifies empty tab-separated fields keep their column.
func TestLoadTSVEmptyFields(t *testing.T) {
	body := "1\t\tblue\tred\n2\tQ\tA\t\tB\n"
	session, err := LoadReader(strings.NewReader(body), Options{Comma: '\t'})
	if err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	if session.Kind() != KindMultipleChoice {
		t.Fatalf("expected multiple choice, got %s", session.Kind())
	}
	first, _ := session.Question(0)
	if first.Text != "" || first.CorrectAnswer != "blue" {
		t.Fatalf("unexpected first question: %+v", first)
	}
	if !reflect.DeepEqual(first.Options, []string{"blue", "red"}) {
		t.Fatalf("unexpected first options: %q", first.Options)
	}
	second, _ := session.Question(1)
	if !reflect.DeepEqual(second.Options, []string{"A", "A", "", "B"}) {
		t.Fatalf("unexpected second options: %q", second.Options)
	}
}

// TestLoadBOMBeforeQuotedField verifies a BOM does not break a quoted first field.
func TestLoadBOMBeforeQuotedField(t *testing.T) {
	session, err := LoadReader(strings.NewReader("\ufeff\"1\",q,a\n"), Options{})
	if err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	question, _ := session.CurrentQuestion()
	if question.Number != 1 || question.Text != "q" || question.CorrectAnswer != "a" {
		t.Fatalf("unexpected question: %+v", question)
	}
}

// TestLoadPlusSignedNumber verifies an explicit plus sign is accepted.
func TestLoadPlusSignedNumber(t *testing.T) {
	session, err := LoadReader(strings.NewReader("+5,q,a\n"), Options{})
	if err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	question, _ := session.CurrentQuestion()
	if question.Number != 5 {
		t.Fatalf("expected number 5, got %d", question.Number)
	}
	for _, body := range []string{"+,q,a\n", "++5,q,a\n", "+-5,q,a\n"} {
		_, err := LoadReader(strings.NewReader(body), Options{})
		var invalid *InvalidQuestionNumberError
		if !errors.As(err, &invalid) {
			t.Fatalf("%q: expected InvalidQuestionNumberError, got %v", body, err)
		}
	}
}
