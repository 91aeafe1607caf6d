package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

// EnvEditor names the gitnag-specific editor override
const EnvEditor = "GITNAG_EDITOR"

// startCommand launches a process without waiting for it
var startCommand = func(name string, args []string) (wait func() error, err error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Wait, nil
}

// Opener implements ports.EditorOpener
type Opener struct{}

// Verify interface compliance at compile time
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the specified directory in an editor
// Priority: cliEditor → $GITNAG_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(path string, cliEditor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	editor, args := findEditor(path, cliEditor)
	if editor == "" {
		return fmt.Errorf("no suitable editor found. Set --editor flag, $%s, $VISUAL, or $EDITOR", EnvEditor)
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)

	wait, err := startCommand(editor, args)
	if err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}

	go func() {
		if err := wait(); err != nil {
			logging.Logger.Warn("Editor exited with error", "error", err, "editor", editor)
		}
	}()

	return nil
}

func findEditor(path string, cliEditor string) (string, []string) {
	for _, editor := range []string{
		cliEditor,
		os.Getenv(EnvEditor),
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
	} {
		if editor = strings.TrimSpace(editor); editor != "" {
			return splitEditor(editor, path)
		}
	}

	return findPlatformEditor(path)
}

// splitEditor allows editors configured with flags, e.g. "code --new-window"
func splitEditor(editor string, path string) (string, []string) {
	fields := strings.Fields(editor)
	return fields[0], append(fields[1:], path)
}
