package quiz

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// minFields is the number of leading columns every row must carry:
// number, question text, and correct answer.
const minFields = 3

var utf8BOM = []byte("\ufeff")

// Options tunes how a quiz file is read.
type Options struct {
	// Comma is the field delimiter. Zero infers it from the file extension
	// for LoadFile and defaults to ',' for LoadReader.
	Comma rune
	// Seed seeds the shuffle RNG. Zero seeds from the wall clock.
	Seed int64
}

// Load reads a quiz file with default options.
func Load(path string) (*Session, error) {
	return LoadFile(path, Options{})
}

// LoadFile reads, parses, and classifies a quiz file.
func LoadFile(path string, opts Options) (*Session, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	defer file.Close()
	if opts.Comma == 0 {
		opts.Comma = commaForPath(path)
	}
	return LoadReader(file, opts)
}

// LoadReader parses quiz rows from r. Loading is all-or-nothing: the first
// bad row aborts with an error naming that row.
func LoadReader(r io.Reader, opts Options) (*Session, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	// A whitespace delimiter would be eaten by leading-space trimming and
	// shift every column after an empty field.
	reader.TrimLeadingSpace = !unicode.IsSpace(reader.Comma)

	var (
		questions         []Question
		hasShortAnswer    bool
		hasMultipleChoice bool
	)
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ReadError{Row: row, Err: err}
		}
		question, err := parseRow(row, record)
		if err != nil {
			return nil, err
		}
		if question.IsMultipleChoice() {
			hasMultipleChoice = true
		} else {
			hasShortAnswer = true
		}
		questions = append(questions, question)
	}

	if len(questions) == 0 {
		return nil, ErrEmptyQuizFile
	}

	return &Session{
		questions: questions,
		kind:      classify(hasShortAnswer, hasMultipleChoice),
		rng:       newRand(opts.Seed),
	}, nil
}

// parseRow converts one record into a Question.
func parseRow(row int, record []string) (Question, error) {
	if len(record) < minFields {
		return Question{}, &MalformedRowError{Row: row, FieldCount: len(record)}
	}
	rawNumber := strings.TrimSpace(record[0])
	number, err := strconv.ParseUint(strings.TrimPrefix(rawNumber, "+"), 10, 32)
	if err != nil {
		return Question{}, &InvalidQuestionNumberError{Row: row, Value: rawNumber}
	}
	question := Question{
		Number:        int(number),
		Text:          strings.TrimSpace(record[1]),
		CorrectAnswer: strings.TrimSpace(record[2]),
	}
	if len(record) > minFields {
		options := make([]string, 0, len(record)-minFields+1)
		options = append(options, question.CorrectAnswer)
		for _, option := range record[minFields:] {
			options = append(options, strings.TrimSpace(option))
		}
		question.Options = options
	}
	return question, nil
}

// skipBOM drops a leading UTF-8 byte order mark before the csv reader
// tokenizes the first field.
func skipBOM(r io.Reader) io.Reader {
	buffered := bufio.NewReader(r)
	if head, err := buffered.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = buffered.Discard(len(utf8BOM))
	}
	return buffered
}

// commaForPath picks the delimiter for a file extension.
func commaForPath(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

// newRand builds the session RNG; a zero seed uses the current time.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RowOf returns the row number carried by a load error, or zero.
func RowOf(err error) int {
	var malformed *MalformedRowError
	if errors.As(err, &malformed) {
		return malformed.Row
	}
	var invalid *InvalidQuestionNumberError
	if errors.As(err, &invalid) {
		return invalid.Row
	}
	var read *ReadError
	if errors.As(err, &read) {
		return read.Row
	}
	return 0
}
