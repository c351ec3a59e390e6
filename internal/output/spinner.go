package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// Spin runs step while a spinner titled title is drawn on the terminal.
// Clones and installs have no deadline of their own, so the spinner stops
// only when step returns or ctx is cancelled. Off a TTY, step runs plainly.
func Spin(ctx context.Context, title string, step func(context.Context) error) error {
	if !IsTTY() {
		return step(ctx)
	}

	done := make(chan error, 1)
	go func() { done <- step(ctx) }()

	var stepErr error
	err := spinner.New().
		Context(ctx).
		Title(title).
		Action(func() {
			select {
			case stepErr = <-done:
			case <-ctx.Done():
				stepErr = ctx.Err()
			}
		}).
		Run()
	if stepErr != nil {
		return stepErr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", title, err)
	}
	return nil
}
