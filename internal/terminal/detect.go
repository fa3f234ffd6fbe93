// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether the file is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// StdinInteractive reports whether stdin can service interactive prompts.
// Confirmation prompts decline instead of blocking when this is false and
// the user has not passed --yes.
func StdinInteractive() bool {
	return IsTerminal(os.Stdin)
}
