package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPrompter struct {
	answer   string
	err      error
	messages []string
}

func (s *stubPrompter) PromptLine(message string) (string, error) {
	s.messages = append(s.messages, message)
	return s.answer, s.err
}

func TestResolveRootPathUsesArgument(t *testing.T) {
	p := &stubPrompter{answer: "ignored"}

	root, err := ResolveRootPath([]string{"/work/project"}, p)
	require.NoError(t, err)

	assert.Equal(t, "/work/project", root)
	assert.Empty(t, p.messages, "the prompt must not be shown when an argument is given")
}

func TestResolveRootPathPrompts(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{"plain answer", "src/app\n", "src/app"},
		{"surrounding whitespace", "  ../other \t\n", "../other"},
		{"empty answer", "\n", "."},
		{"only spaces", "   ", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &stubPrompter{answer: tt.answer}

			root, err := ResolveRootPath(nil, p)
			require.NoError(t, err)

			assert.Equal(t, tt.want, root)
			assert.Equal(t, []string{rootPrompt}, p.messages)
		})
	}
}

func TestResolveRootPathPromptError(t *testing.T) {
	boom := errors.New("terminal closed")

	_, err := ResolveRootPath(nil, &stubPrompter{err: boom})

	assert.ErrorIs(t, err, boom)
}

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	p := newLinePrompter(strings.NewReader("my/project\nnext line\n"), &out)

	answer, err := p.PromptLine(rootPrompt)
	require.NoError(t, err)

	assert.Equal(t, "my/project\n", answer)
	assert.Equal(t, rootPrompt, out.String())
}

func TestLinePrompterEOF(t *testing.T) {
	p := newLinePrompter(strings.NewReader(""), &bytes.Buffer{})

	root, err := ResolveRootPath(nil, p)
	require.NoError(t, err)

	assert.Equal(t, ".", root)
}
