// Package prompt provides interactive confirmation prompts for jsprune.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForConfirmation asks a yes/no question. Only "y" or "yes" confirm,
	// any other answer (including an empty one) declines.
	PromptForConfirmation(message string) (bool, error)
}

type realPrompt struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompt creates a new Prompt instance reading from stdin.
func NewPrompt() Prompter {
	return NewPromptWithIO(os.Stdin, os.Stdout)
}

// NewPromptWithIO creates a new Prompt instance reading answers from in and writing questions to out.
func NewPromptWithIO(in io.Reader, out io.Writer) Prompter {
	return &realPrompt{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// PromptForConfirmation prompts the user for confirmation, defaulting to no.
func (p *realPrompt) PromptForConfirmation(message string) (bool, error) {
	fmt.Fprintf(p.writer, "%s (y/N): ", message)

	input, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}
	if errors.Is(err, io.EOF) {
		// Keep the next output on its own line when stdin is closed
		fmt.Fprintln(p.writer)
	}

	return IsAffirmative(input), nil
}

// IsAffirmative reports whether an answer confirms a prompt.
func IsAffirmative(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
