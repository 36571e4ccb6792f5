package main

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// errOutputBusy means another run holds the lock on the same output document.
var errOutputBusy = errors.New("output document is being written by another process")

// outputLock is an exclusive lock on the output document, held for a whole run.
// The lock lives in a sidecar file: "projeto_consolidado.txt" uses
// "projeto_consolidado.txt.lock". The sidecar is never deleted.
type outputLock struct {
	flock *flock.Flock
	path  string
}

func newOutputLock(outputPath string) *outputLock {
	lockPath := outputPath + ".lock"
	return &outputLock{flock: flock.New(lockPath), path: lockPath}
}

// Acquire takes the lock without blocking.
func (l *outputLock) Acquire() error {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to try lock on %s: %w", l.path, err)
	}
	if !acquired {
		return errOutputBusy
	}
	return nil
}

// Release drops the lock. The sidecar file stays on disk.
func (l *outputLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
