//go:build cucumber

package cucumber

import (
	"bytes"
	"context"
	"os"

	"github.com/cucumber/godog"

	"knowit/internal/quiz"
)

// featureState holds scenario state for quiz features.
type featureState struct {
	dir      string
	session  *quiz.Session
	loadErr  error
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	exitCode int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a quiz file "([^"]+)" containing:$`, state.aQuizFileContaining)
	ctx.Step(`^an empty quiz file "([^"]+)"$`, state.anEmptyQuizFile)
	ctx.Step(`^I load "([^"]+)"$`, state.iLoad)
	ctx.Step(`^I load "([^"]+)" with seed (\d+)$`, state.iLoadWithSeed)
	ctx.Step(`^loading succeeds with (\d+) questions?$`, state.loadingSucceedsWith)
	ctx.Step(`^the question set kind is "([^"]+)"$`, state.theQuestionSetKindIs)
	ctx.Step(`^loading fails with a malformed row error at row (\d+)$`, state.loadingFailsMalformed)
	ctx.Step(`^loading fails with an invalid question number error at row (\d+)$`, state.loadingFailsInvalidNumber)
	ctx.Step(`^loading fails because the file has no questions$`, state.loadingFailsEmpty)
	ctx.Step(`^question (\d+) has options "([^"]*)"$`, state.questionHasOptions)

	ctx.Step(`^I answer "([^"]*)"$`, state.iAnswer)
	ctx.Step(`^I move to the next question$`, state.iMoveNext)
	ctx.Step(`^I move to the previous question$`, state.iMovePrevious)
	ctx.Step(`^the current question is number (\d+)$`, state.theCurrentQuestionIs)
	ctx.Step(`^the score is (\d+) out of (\d+)$`, state.theScoreIs)
	ctx.Step(`^the incorrect question indices are "([^"]*)"$`, state.theIncorrectIndicesAre)
	ctx.Step(`^I restart the quiz$`, state.iRestart)
	ctx.Step(`^I restart the quiz with shuffling$`, state.iRestartShuffled)
	ctx.Step(`^no question is answered$`, state.noQuestionIsAnswered)
	ctx.Step(`^the quiz is marked as shuffled$`, state.theQuizIsShuffled)
	ctx.Step(`^the questions are a permutation of the file$`, state.theQuestionsArePermutation)

	ctx.Step(`^I run knowit "([^"]*)"$`, state.iRunKnowit)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
}

// reset creates a fresh scratch directory before each scenario.
func (s *featureState) reset() error {
	s.cleanup()
	dir, err := os.MkdirTemp("", "knowit-feature-")
	if err != nil {
		return err
	}
	s.dir = dir
	return nil
}

// cleanup removes scenario files and clears results.
func (s *featureState) cleanup() {
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
	s.dir = ""
	s.session = nil
	s.loadErr = nil
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
}
