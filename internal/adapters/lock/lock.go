package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
)

// FileLock is an exclusive, non-blocking lock on a file.
// Only one daemon per GITNAG_HOME can hold it.
type FileLock struct {
	file *os.File
	path string
}

// Acquire takes the lock at path. It returns domain.ErrAlreadyRunning
// (wrapped with the holder's pid when known) if another process holds it.
func Acquire(path string) (*FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		holder := readPID(file)
		_ = file.Close()
		if isLockHeld(err) {
			if holder != "" {
				return nil, fmt.Errorf("%w (pid %s)", domain.ErrAlreadyRunning, holder)
			}
			return nil, domain.ErrAlreadyRunning
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	// Record our pid for the next contender's error message
	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	logging.Logger.Debug("Daemon lock acquired", "path", path, "pid", os.Getpid())
	return &FileLock{file: file, path: path}, nil
}

// Release drops the lock. Safe to call more than once.
func (l *FileLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := unlockFile(l.file)
	if closeErr := l.file.Close(); err == nil {
		err = closeErr
	}
	l.file = nil
	logging.Logger.Debug("Daemon lock released", "path", l.path)
	return err
}

func readPID(file *os.File) string {
	buf := make([]byte, 32)
	n, _ := file.ReadAt(buf, 0)
	return strings.TrimSpace(string(buf[:n]))
}
