package main

import (
	"context"
	"os"
	"path/filepath"
)

// Source is what a run reads from and how it is labeled in the document.
type Source struct {
	Path    string // directory (or file) to traverse
	Label   string // prefix of the block paths; defaults to Path
	Project string // name in the document header; defaults to the base name of Path
}

// Consolidator concatenates the retained files of a tree into one document.
type Consolidator struct {
	cfg       Config
	fs        FileSystem
	reporter  Reporter
	tokenizer Tokenizer
}

// Option customizes a Consolidator.
type Option func(*Consolidator)

// WithFileSystem replaces the disk-backed FileSystem.
func WithFileSystem(fsys FileSystem) Option {
	return func(c *Consolidator) { c.fs = fsys }
}

func WithReporter(r Reporter) Option {
	return func(c *Consolidator) { c.reporter = r }
}

// WithTokenizer enables token counting of every consolidated file.
func WithTokenizer(t Tokenizer) Option {
	return func(c *Consolidator) { c.tokenizer = t }
}

func NewConsolidator(cfg Config, opts ...Option) *Consolidator {
	c := &Consolidator{
		cfg:      cfg,
		fs:       osFS{},
		reporter: NewConsole(os.Stdout, os.Stderr),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run consolidates the tree at root.
func (c *Consolidator) Run(ctx context.Context, root string) (*RunResult, error) {
	return c.RunSource(ctx, Source{Path: root})
}

// RunSource consolidates src into the configured output document.
//
// A missing root yields *PathNotFoundError before anything is written. Failing to
// lock, open or write the output, or to list a directory, yields *FatalIOError;
// whatever was written up to that point is left on disk. Files that cannot be
// read only get an error marker and do not fail the run.
func (c *Consolidator) RunSource(ctx context.Context, src Source) (*RunResult, error) {
	if !c.fs.Exists(src.Path) {
		return nil, &PathNotFoundError{Path: src.Path}
	}
	absRoot, err := filepath.Abs(src.Path)
	if err != nil {
		return nil, &FatalIOError{Op: "resolve", Path: src.Path, Err: err}
	}
	if src.Label == "" {
		src.Label = src.Path
	}
	if src.Project == "" {
		src.Project = filepath.Base(absRoot)
	}

	c.reporter.Started(absRoot)

	rules, err := NewRules(c.cfg, src.Path)
	if err != nil {
		return nil, &FatalIOError{Op: "load ignore rules", Path: src.Path, Err: err}
	}

	outputPath := c.cfg.OutputPath()
	lock := newOutputLock(outputPath)
	if err := lock.Acquire(); err != nil {
		return nil, &FatalIOError{Op: "lock output", Path: outputPath, Err: err}
	}
	defer lock.Release()

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, &FatalIOError{Op: "open output", Path: outputPath, Err: err}
	}
	defer out.Close()

	res := &RunResult{
		Root:       src.Path,
		AbsRoot:    absRoot,
		Project:    src.Project,
		OutputPath: outputPath,
	}

	doc := newDocumentWriter(out)
	doc.Header(src.Project)

	if c.fs.IsDir(src.Path) {
		walkErr := c.walk(ctx, rules, doc, src, ".", res)
		if walkErr != nil {
			// Keep what was consolidated so far.
			_ = doc.Flush()
			return res, walkErr
		}
	}

	if err := doc.Flush(); err != nil {
		return res, &FatalIOError{Op: "write output", Path: outputPath, Err: err}
	}
	if err := out.Close(); err != nil {
		return res, &FatalIOError{Op: "close output", Path: outputPath, Err: err}
	}
	return res, nil
}

// walk processes the files of one directory, then descends into its
// admissible subdirectories. rel is relative to src.Path.
func (c *Consolidator) walk(ctx context.Context, rules *Rules, doc *documentWriter, src Source, rel string, res *RunResult) error {
	dirPath := filepath.Join(src.Path, rel)
	if err := ctx.Err(); err != nil {
		return &FatalIOError{Op: "traverse", Path: dirPath, Err: err}
	}

	dirs, files, err := c.fs.ListDir(dirPath)
	if err != nil {
		return &FatalIOError{Op: "list directory", Path: dirPath, Err: err}
	}

	for _, name := range files {
		if !rules.Retain(rel, name) {
			continue
		}
		c.consolidateFile(doc, filepath.Join(dirPath, name), blockLabel(src.Label, filepath.Join(rel, name)), res)
		if err := doc.Err(); err != nil {
			return &FatalIOError{Op: "write output", Path: res.OutputPath, Err: err}
		}
	}

	for _, name := range rules.AdmissibleDirs(rel, dirs) {
		if err := c.walk(ctx, rules, doc, src, filepath.Join(rel, name), res); err != nil {
			return err
		}
	}
	return nil
}

// blockLabel prefixes rel with the root exactly as the user gave it, so a root of
// "./" or "proj/" keeps that spelling in the document. Only the part below the
// root is cleaned.
func blockLabel(root, rel string) string {
	if root == "" {
		return rel
	}
	if os.IsPathSeparator(root[len(root)-1]) {
		return root + rel
	}
	return root + string(filepath.Separator) + rel
}

// consolidateFile appends one file block. Read failures become a marker.
func (c *Consolidator) consolidateFile(doc *documentWriter, path, label string, res *RunResult) {
	doc.BlockHeader(label)
	record := FileRecord{Path: label}

	text, err := c.fs.ReadTextFile(path)
	if err != nil {
		readErr := &FileReadError{Path: label, Err: err}
		doc.ReadError(readErr)
		c.reporter.ReadFailed(label, readErr)
		record.Error = readErr.Error()
		res.Failed++
	} else {
		doc.Content(text)
		record.Size = len(text)
		if c.tokenizer != nil {
			record.Tokens = c.tokenizer.CountTokens(text)
			res.Tokens += record.Tokens
		}
		res.Consolidated++
	}
	res.Files = append(res.Files, record)
}
