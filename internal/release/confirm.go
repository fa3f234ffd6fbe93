package release

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/pack-release/internal/messages"
	"github.com/conn-castle/pack-release/internal/terminal"
)

// Confirmer asks the user to confirm an action before it runs.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// PromptConfirmer asks yes/no questions on a text interface.
// Only answers whose first character is "y" or "Y" accept; anything else,
// including leading whitespace, an empty answer, or EOF, declines.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer

	// Interactive overrides terminal detection in tests; nil means detect.
	Interactive func() bool
}

// Confirm writes the prompt and reads a single answer line.
func (p PromptConfirmer) Confirm(prompt string) (bool, error) {
	interactive := p.Interactive
	if interactive == nil {
		interactive = terminal.StdinInteractive
	}
	if !interactive() {
		_, _ = fmt.Fprintln(p.Out, messages.PromptNonInteractive)
		return false, nil
	}

	if _, err := fmt.Fprintf(p.Out, messages.PromptNoDefaultFmt, prompt); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.TrimRight(line, "\r\n")
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

// AutoConfirmer accepts every prompt. Used for --yes.
type AutoConfirmer struct{}

// Confirm always accepts.
func (AutoConfirmer) Confirm(string) (bool, error) {
	return true, nil
}
