package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const rootPrompt = "Digite o caminho da pasta do projeto alvo: "

// Prompter asks the user for one line of input.
type Prompter interface {
	PromptLine(message string) (string, error)
}

// linePrompter writes the message to out and reads a line from in.
type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{in: bufio.NewReader(in), out: out}
}

func (p *linePrompter) PromptLine(message string) (string, error) {
	fmt.Fprint(p.out, message)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	// EOF with no input is an empty answer.
	return line, nil
}

// ResolveRootPath picks the traversal root: the argument when given, otherwise
// the prompted answer, otherwise ".".
func ResolveRootPath(args []string, prompter Prompter) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	answer, err := prompter.PromptLine(rootPrompt)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return ".", nil
	}
	return answer, nil
}
