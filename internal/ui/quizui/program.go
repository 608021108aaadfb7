package quizui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives model on the terminal until the user quits or ctx is done,
// and returns the final model state.
func Run(ctx context.Context, model Model, stdin io.Reader, stdout io.Writer) (Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(stdout), tea.WithAltScreen()}
	if stdin != nil {
		opts = append(opts, tea.WithInput(stdin))
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if typed, ok := final.(Model); ok {
		model = typed
	}
	return model, err
}
