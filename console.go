package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter receives the user-visible events of a run.
type Reporter interface {
	Started(absRoot string)
	ReadFailed(path string, err error)
}

// Console prints progress to out and problems to errOut.
// Colors are only used when the destination is a terminal.
type Console struct {
	out    io.Writer
	errOut io.Writer

	info    *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
}

func NewConsole(out, errOut io.Writer) *Console {
	c := &Console{
		out:     out,
		errOut:  errOut,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}
	for _, col := range []*color.Color{c.info, c.success} {
		setColor(col, out)
	}
	for _, col := range []*color.Color{c.warn, c.fail} {
		setColor(col, errOut)
	}
	return c
}

func setColor(c *color.Color, w io.Writer) {
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) Started(absRoot string) {
	c.info.Fprintf(c.out, "🔍 Iniciando varredura em: %s\n", absRoot)
}

func (c *Console) ReadFailed(path string, err error) {
	c.warn.Fprintf(c.errOut, "✖ Erro ao ler %s: %v\n", path, err)
}

func (c *Console) Succeeded(res *RunResult, outputName string) {
	c.success.Fprintf(c.out, "✅ SUCESSO! %d arquivos consolidados em '%s'.\n", res.Consolidated, outputName)
	if res.Tokens > 0 {
		fmt.Fprintf(c.out, "Total de tokens: %d\n", res.Tokens)
	}
}

func (c *Console) PathNotFound(path string) {
	c.fail.Fprintf(c.errOut, "❌ Erro: O diretório '%s' não existe.\n", path)
}

func (c *Console) Fatal(err error) {
	c.fail.Fprintf(c.errOut, "❌ Erro fatal: %v\n", err)
}

// Warnf reports a non-fatal problem outside the per-file path.
func (c *Console) Warnf(format string, args ...any) {
	c.warn.Fprintf(c.errOut, "⚠ Aviso: "+format+"\n", args...)
}

// Infof prints a plain progress line.
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}
