package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/rios0rios0/docbatch/internal/domain/repositories"
)

// StdinPrompter implements repositories.Prompter by reading a yes/no answer
// from standard input.
type StdinPrompter struct {
	in  io.Reader
	out io.Writer
}

var _ repositories.Prompter = (*StdinPrompter)(nil)

// NewStdinPrompter creates a prompter bound to os.Stdin and os.Stdout.
func NewStdinPrompter() *StdinPrompter {
	return &StdinPrompter{in: os.Stdin, out: os.Stdout}
}

// Confirm prints the question and blocks until a line is read. Only "y" and
// "yes" (case-insensitive) count as confirmation. A non-terminal stdin is
// refused so unattended invocations fail fast instead of hanging.
func (p *StdinPrompter) Confirm(question string) (bool, error) {
	if file, ok := p.in.(*os.File); ok && !term.IsTerminal(int(file.Fd())) {
		return false, errors.New(
			"standard input is not a terminal; use --yes to confirm non-interactively")
	}

	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
