package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// showCursor is the ANSI sequence that makes the terminal cursor visible.
const showCursor = "\x1b[?25h"

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RestoreCursor re-shows the cursor when w is a terminal. A spinner that is
// interrupted can leave it hidden.
func RestoreCursor(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	_, _ = io.WriteString(w, showCursor)
}
