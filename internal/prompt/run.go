// Package prompt asks the interactive project questions in the terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user aborts the flow.
var ErrCancelled = errors.New("operation cancelled")

// Run asks questions on in/out and returns the answers.
func Run(ctx context.Context, in io.Reader, out io.Writer, questions []Question) (Answers, error) {
	program := tea.NewProgram(NewModel(questions),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected prompt model %T", final)
	}
	if m.Cancelled() || !m.Done() {
		return nil, ErrCancelled
	}
	return m.Answers(), nil
}
