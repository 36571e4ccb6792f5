package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// FileSystem is everything the Consolidator needs from the disk.
type FileSystem interface {
	Exists(path string) bool
	IsDir(path string) bool
	// ListDir returns the names of the subdirectories and files directly under
	// path, each sorted by name.
	ListDir(path string) (dirs, files []string, err error)
	// ReadTextFile returns the whole file decoded as UTF-8.
	ReadTextFile(path string) (string, error)
}

// errInvalidUTF8 is returned by ReadTextFile for content that is not valid UTF-8.
var errInvalidUTF8 = errors.New("'utf-8' codec can't decode file content: invalid byte sequence")

// osFS is the FileSystem backed by the real disk.
type osFS struct{}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false // Treat errors as non-directories
	}
	return info.IsDir()
}

func (osFS) ListDir(path string) ([]string, []string, error) {
	entries, err := os.ReadDir(path) // sorted by filename
	if err != nil {
		return nil, nil, err
	}
	var dirs, files []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
			continue
		}
		// Links to directories are neither listed as files nor followed.
		if entry.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(path, entry.Name())); err == nil && info.IsDir() {
				continue
			}
		}
		files = append(files, entry.Name())
	}
	return dirs, files, nil
}

func (osFS) ReadTextFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// Errors from os.File already carry the path.
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return string(data), nil
}
