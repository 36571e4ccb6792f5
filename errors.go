package main

import "fmt"

// PathNotFoundError is returned when the resolved root does not exist.
// Nothing has been written when it is returned.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// FileReadError describes a retained file whose content could not be read or
// decoded. The run continues; the error text goes into the document as a marker.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return e.Err.Error()
}

func (e *FileReadError) Unwrap() error { return e.Err }

// FatalIOError aborts the run. Output already written stays on disk.
type FatalIOError struct {
	Op   string // e.g. "open output", "list directory"
	Path string
	Err  error
}

func (e *FatalIOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FatalIOError) Unwrap() error { return e.Err }
