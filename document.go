package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	headerTitle    = "CONSOLIDAÇÃO DE PROJETO: "
	fileLabel      = "📂 ARQUIVO: "
	readErrorLabel = "[ERRO AO LER ARQUIVO: "
)

var (
	headerRule = strings.Repeat("=", 80)
	blockRule  = strings.Repeat("=", 20)
)

// documentWriter writes the consolidated document. The first write error is
// kept and every later call becomes a no-op; check Err (or Flush) at the end.
type documentWriter struct {
	w   *bufio.Writer
	err error
}

func newDocumentWriter(w io.Writer) *documentWriter {
	return &documentWriter{w: bufio.NewWriter(w)}
}

func (d *documentWriter) write(s string) {
	if d.err != nil {
		return
	}
	_, d.err = d.w.WriteString(s)
}

// Header names the consolidated project, followed by a rule and a blank line.
func (d *documentWriter) Header(projectName string) {
	d.write(headerTitle + projectName + "\n")
	d.write(headerRule + "\n\n")
}

// BlockHeader opens the block of one file.
func (d *documentWriter) BlockHeader(path string) {
	d.write(fmt.Sprintf("\n%s\n%s%s\n%s\n", blockRule, fileLabel, path, blockRule))
}

// Content appends a file's text verbatim plus a line break.
func (d *documentWriter) Content(text string) {
	d.write(text)
	d.write("\n")
}

// ReadError stands in for the content of a file that could not be read.
func (d *documentWriter) ReadError(err error) {
	d.write(readErrorLabel + err.Error() + "]\n")
}

func (d *documentWriter) Err() error { return d.err }

// Flush pushes buffered output to the underlying writer.
func (d *documentWriter) Flush() error {
	if d.err != nil {
		return d.err
	}
	d.err = d.w.Flush()
	return d.err
}

// DocumentBlock is one file block read back from a consolidated document.
type DocumentBlock struct {
	Path    string
	Content string
	Failed  bool
}

// ParseDocument splits a consolidated document back into its header name and
// blocks. It is used by the exporters that re-render the finished document.
func ParseDocument(doc string) (string, []DocumentBlock) {
	var project string
	if first, _, ok := strings.Cut(doc, "\n"); ok && strings.HasPrefix(first, headerTitle) {
		project = strings.TrimPrefix(first, headerTitle)
	}

	opener := "\n" + blockRule + "\n" + fileLabel
	parts := strings.Split(doc, opener)
	var blocks []DocumentBlock
	for _, part := range parts[1:] {
		path, rest, ok := strings.Cut(part, "\n")
		if !ok {
			blocks = append(blocks, DocumentBlock{Path: path})
			continue
		}
		rest = strings.TrimPrefix(rest, blockRule+"\n")
		content := strings.TrimSuffix(rest, "\n")
		block := DocumentBlock{Path: path, Content: content}
		if strings.HasPrefix(content, readErrorLabel) && strings.HasSuffix(content, "]") && !strings.Contains(content, "\n") {
			block.Failed = true
		}
		blocks = append(blocks, block)
	}
	return project, blocks
}
