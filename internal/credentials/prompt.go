package credentials

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads one value from the user. Implementations must flush the
// message before blocking for input and return the value trimmed.
type Prompter interface {
	Prompt(message string, secret bool) (string, error)
}

// TerminalPrompter reads from the controlling terminal, suppressing echo
// for secret values.
type TerminalPrompter struct {
	in  *os.File
	out io.Writer
	r   *bufio.Reader
}

// NewTerminalPrompter returns a prompter on stdin/stdout.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{
		in:  os.Stdin,
		out: os.Stdout,
		r:   bufio.NewReader(os.Stdin),
	}
}

func (p *TerminalPrompter) Prompt(message string, secret bool) (string, error) {
	if _, err := fmt.Fprint(p.out, message); err != nil {
		return "", err
	}
	if secret {
		raw, err := term.ReadPassword(int(p.in.Fd()))
		if err != nil {
			return "", fmt.Errorf("reading masked input: %w", err)
		}
		// ReadPassword swallows the user's newline along with the echo.
		fmt.Fprintln(p.out)
		return strings.TrimSpace(string(raw)), nil
	}
	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
