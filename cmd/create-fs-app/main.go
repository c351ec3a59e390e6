// Package main is the entry point for the create-fs-app CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/create-fs-app/cli/internal/cmd"
	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/output"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Ctrl+C cancels in-flight clones and installs instead of killing the
	// process, so the cursor can be restored on the way out.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer output.RestoreCursor(os.Stdout)

	err := cmd.NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return oerrors.ExitSuccess
	}
	var exitErr *oerrors.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Printed {
		fmt.Fprintln(os.Stderr, err)
	}
	return oerrors.ExitCodeFromError(err)
}
