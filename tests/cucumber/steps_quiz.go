//go:build cucumber

package cucumber

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"knowit/internal/quiz"
)

func (s *featureState) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *featureState) aQuizFileContaining(name string, doc *godog.DocString) error {
	return os.WriteFile(s.path(name), []byte(doc.Content+"\n"), 0o644)
}

func (s *featureState) anEmptyQuizFile(name string) error {
	return os.WriteFile(s.path(name), nil, 0o644)
}

func (s *featureState) iLoad(name string) error {
	s.session, s.loadErr = quiz.Load(s.path(name))
	return nil
}

func (s *featureState) iLoadWithSeed(name string, seed int64) error {
	s.session, s.loadErr = quiz.LoadFile(s.path(name), quiz.Options{Seed: seed})
	return nil
}

func (s *featureState) loaded() error {
	if s.loadErr != nil {
		return fmt.Errorf("quiz did not load: %w", s.loadErr)
	}
	if s.session == nil {
		return errors.New("no quiz loaded")
	}
	return nil
}

func (s *featureState) loadingSucceedsWith(count int) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if s.session.Len() != count {
		return fmt.Errorf("expected %d questions, got %d", count, s.session.Len())
	}
	return nil
}

func (s *featureState) theQuestionSetKindIs(kind string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if got := s.session.Kind().String(); got != kind {
		return fmt.Errorf("expected kind %s, got %s", kind, got)
	}
	return nil
}

func (s *featureState) loadingFailsMalformed(row int) error {
	var target *quiz.MalformedRowError
	if !errors.As(s.loadErr, &target) {
		return fmt.Errorf("expected malformed row error, got %v", s.loadErr)
	}
	if target.Row != row {
		return fmt.Errorf("expected row %d, got %d", row, target.Row)
	}
	return nil
}

func (s *featureState) loadingFailsInvalidNumber(row int) error {
	var target *quiz.InvalidQuestionNumberError
	if !errors.As(s.loadErr, &target) {
		return fmt.Errorf("expected invalid question number error, got %v", s.loadErr)
	}
	if target.Row != row {
		return fmt.Errorf("expected row %d, got %d", row, target.Row)
	}
	return nil
}

func (s *featureState) loadingFailsEmpty() error {
	if !errors.Is(s.loadErr, quiz.ErrEmptyQuizFile) {
		return fmt.Errorf("expected empty quiz error, got %v", s.loadErr)
	}
	return nil
}

func (s *featureState) questionHasOptions(index int, options string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	question, ok := s.session.Question(index - 1)
	if !ok {
		return fmt.Errorf("no question at position %d", index)
	}
	want := splitList(options)
	if !slices.Equal(question.Options, want) {
		return fmt.Errorf("expected options %q, got %q", want, question.Options)
	}
	return nil
}

func (s *featureState) iAnswer(answer string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.session.SubmitAnswer(answer)
	return nil
}

func (s *featureState) iMoveNext() error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.session.Next()
	return nil
}

func (s *featureState) iMovePrevious() error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.session.Previous()
	return nil
}

func (s *featureState) theCurrentQuestionIs(number int) error {
	question, ok := s.session.CurrentQuestion()
	if !ok {
		return errors.New("no current question")
	}
	if question.Number != number {
		return fmt.Errorf("expected question %d, got %d", number, question.Number)
	}
	return nil
}

func (s *featureState) theScoreIs(correct, total int) error {
	results := s.session.Results()
	if results.Correct != correct || results.Total != total {
		return fmt.Errorf("expected %d/%d, got %d/%d", correct, total, results.Correct, results.Total)
	}
	return nil
}

func (s *featureState) theIncorrectIndicesAre(list string) error {
	want := []int{}
	for _, item := range splitList(list) {
		value, err := strconv.Atoi(item)
		if err != nil {
			return fmt.Errorf("bad index %q: %w", item, err)
		}
		want = append(want, value)
	}
	got := s.session.Results().Incorrect
	if got == nil {
		got = []int{}
	}
	if !slices.Equal(got, want) {
		return fmt.Errorf("expected incorrect %v, got %v", want, got)
	}
	return nil
}

func (s *featureState) iRestart() error {
	s.session.Restart(false)
	return nil
}

func (s *featureState) iRestartShuffled() error {
	s.session.Restart(true)
	return nil
}

func (s *featureState) noQuestionIsAnswered() error {
	if s.session.CurrentIndex() != 0 {
		return fmt.Errorf("expected cursor at 0, got %d", s.session.CurrentIndex())
	}
	for _, question := range s.session.Questions() {
		if question.Answered() {
			return fmt.Errorf("question %d still answered", question.Number)
		}
	}
	return nil
}

func (s *featureState) theQuizIsShuffled() error {
	if !s.session.Shuffled() {
		return errors.New("expected shuffled quiz")
	}
	return nil
}

func (s *featureState) theQuestionsArePermutation() error {
	numbers := make([]int, 0, s.session.Len())
	for _, question := range s.session.Questions() {
		numbers = append(numbers, question.Number)
	}
	slices.Sort(numbers)
	for i, number := range numbers {
		if number != i+1 {
			return fmt.Errorf("expected questions 1..%d, got %v", len(numbers), numbers)
		}
	}
	return nil
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
