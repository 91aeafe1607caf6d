package domain

import "errors"

var (
	ErrAlreadyRunning      = errors.New("another gitnag daemon is already running")
	ErrCheckInterrupted    = errors.New("repository check did not complete")
	ErrInvalidInterval     = errors.New("watcher interval must be positive")
	ErrNoTerminal          = errors.New("no interactive terminal attached")
	ErrProviderUnavailable = errors.New("source control provider not available")
	ErrUnknownCommand      = errors.New("unknown command")
)
