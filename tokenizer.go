package main

import (
	"fmt"
	"os"
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"
	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Tokenizer counts tokens of consolidated text.
type Tokenizer interface {
	CountTokens(text string) int
	Close()
}

const (
	defaultTiktokenModel = "gpt-4o"
	defaultHFModel       = "gpt2"
)

// warnFunc reports a problem that does not stop the run.
type warnFunc func(format string, args ...any)

// tokenCounter adapts one encoder backend to Tokenizer. A text the backend
// cannot encode counts as zero tokens and is reported through warn.
type tokenCounter struct {
	backend string
	encode  func(text string) (int, error)
	warn    warnFunc
}

func (c *tokenCounter) CountTokens(text string) int {
	n, err := c.encode(text)
	if err != nil {
		c.warn("o tokenizador %s não conseguiu contar os tokens: %v", c.backend, err)
		return 0
	}
	return n
}

func (c *tokenCounter) Close() {}

// newTokenizer builds the tokenizer named by kind. model is a tiktoken model
// name, a HuggingFace hub id or the path of a tokenizer.json; empty picks the
// backend's default.
func newTokenizer(kind, model string, warn warnFunc) (Tokenizer, error) {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "tiktoken":
		return loadTiktoken(model, warn)
	case "huggingface", "hf":
		return loadHuggingFace(model, warn)
	default:
		return nil, fmt.Errorf("unsupported tokenizer type %q (want tiktoken or huggingface)", kind)
	}
}

func loadTiktoken(model string, warn warnFunc) (Tokenizer, error) {
	if model == "" {
		model = defaultTiktokenModel
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		warn("modelo tiktoken '%s' desconhecido, usando '%s'", model, defaultTiktokenModel)
		if enc, err = tiktoken.EncodingForModel(defaultTiktokenModel); err != nil {
			return nil, fmt.Errorf("tiktoken encoding for %s: %w", defaultTiktokenModel, err)
		}
	}
	return &tokenCounter{
		backend: "tiktoken",
		encode:  func(text string) (int, error) { return len(enc.EncodeOrdinary(text)), nil },
		warn:    warn,
	}, nil
}

func loadHuggingFace(model string, warn warnFunc) (Tokenizer, error) {
	if model == "" {
		model = defaultHFModel
	}
	path := model
	if _, err := os.Stat(model); err != nil {
		// Not a local file: fetch tokenizer.json from the hub into the local cache.
		if path, err = hf.CachedPath(model, "tokenizer.json"); err != nil {
			return nil, fmt.Errorf("huggingface tokenizer %s: %w", model, err)
		}
	}
	tk, err := pretrained.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("huggingface tokenizer %s: %w", path, err)
	}
	return &tokenCounter{
		backend: "huggingface",
		encode: func(text string) (int, error) {
			en, err := tk.EncodeSingle(text)
			if err != nil {
				return 0, err
			}
			return len(en.Tokens), nil
		},
		warn: warn,
	}, nil
}
