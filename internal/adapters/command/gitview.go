package command

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

// startInDir launches a process in dir without waiting for it
var startInDir = func(dir string, name string, args []string) (wait func() error, err error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Wait, nil
}

// GitView opens the source-control view for a repository
type GitView struct {
	cliEditor string
	editor    ports.EditorOpener
	settings  ports.SettingsReader
}

// NewGitView creates the git view command. cliEditor takes precedence over
// the editor from settings.
func NewGitView(settings ports.SettingsReader, editor ports.EditorOpener, cliEditor string) *GitView {
	return &GitView{
		cliEditor: cliEditor,
		editor:    editor,
		settings:  settings,
	}
}

// Register binds the git view to domain.CommandOpenGitView
func (g *GitView) Register(d *Dispatcher) {
	d.Register(domain.CommandOpenGitView, g.Open)
}

// Open starts git_view_command in the repository given as the first argument,
// or opens the repository in an editor when no command is configured
func (g *GitView) Open(ctx context.Context, args ...string) error {
	if len(args) == 0 || args[0] == "" {
		return errors.New("no repository given")
	}
	root := args[0]

	s, err := g.settings.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if fields := strings.Fields(s.GitViewCommand); len(fields) > 0 {
		logging.Logger.Info("Opening git view", "command", s.GitViewCommand, "root", root)
		wait, err := startInDir(root, fields[0], fields[1:])
		if err != nil {
			return fmt.Errorf("failed to start git view: %w", err)
		}
		go func() {
			if err := wait(); err != nil {
				logging.Logger.Warn("Git view exited with error", "command", s.GitViewCommand, "error", err)
			}
		}()
		return nil
	}

	editor := g.cliEditor
	if editor == "" {
		editor = s.Editor
	}
	return g.editor.Open(root, editor)
}
