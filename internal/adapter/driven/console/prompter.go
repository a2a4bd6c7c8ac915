// Package console implements the Prompter port on the controlling terminal.
package console

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ericfisherdev/jiracheck/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Prompter = (*Prompter)(nil)

// Prompter reads interactive input from stdin. Secrets are read with local
// echo disabled when stdin is a terminal.
type Prompter struct {
	in  *bufio.Reader
	out *os.File
}

// NewPrompter creates a Prompter on os.Stdin, writing prompts to os.Stderr
// so they never mix into a redirected report.
func NewPrompter() *Prompter {
	return &Prompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stderr,
	}
}

// Line prints the prompt and reads one line of visible input.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Secret prints the prompt and reads one line without echoing it. When
// stdin is not a terminal (tests, scripted input) it falls back to a
// plain line read.
func (p *Prompter) Secret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.Line(prompt)
	}

	fmt.Fprint(p.out, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out) // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(secret), nil
}
