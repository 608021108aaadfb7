//go:build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"knowit/internal/cli"
)

// iRunKnowit runs the CLI with arguments; {dir} expands to the scenario
// directory.
func (s *featureState) iRunKnowit(args string) error {
	s.stdout.Reset()
	s.stderr.Reset()
	fields := strings.Fields(strings.ReplaceAll(args, "{dir}", s.dir))
	s.exitCode = cli.Run(fields, strings.NewReader(""), &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %s)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}
