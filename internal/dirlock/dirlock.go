// Package dirlock takes an advisory, process-wide lock on a file so that two
// processes cannot open the same storage directory.
package dirlock

import (
	"errors"
	"fmt"
	"os"
)

// ErrLocked reports a lock held by another open handle.
var ErrLocked = errors.New("already locked")

// Lock is a held file lock.
type Lock struct {
	path string
	file *os.File
}

// Acquire creates path if needed and locks it without waiting.
func Acquire(path string) (*Lock, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open lock file %s: %w", path, err)
	}
	if err := lock(file); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	return &Lock{path: path, file: file}, nil
}

// Release unlocks and closes the lock file. The file itself is left in place.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlock(l.file)
	closeErr := l.file.Close()
	l.file = nil
	if unlockErr != nil {
		return fmt.Errorf("unlock %s: %w", l.path, unlockErr)
	}
	return closeErr
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}
