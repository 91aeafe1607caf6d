package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

const defaultDebounce = 200 * time.Millisecond

// StoreOption customizes a FileStore
type StoreOption func(*FileStore)

// WithDebounce sets how long Watch waits for writes to settle
func WithDebounce(d time.Duration) StoreOption {
	return func(s *FileStore) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithDefaultWorkspaces sets the roots used when settings.json lists none
func WithDefaultWorkspaces(roots ...string) StoreOption {
	return func(s *FileStore) {
		s.defaultRoots = NormalizeRoots(roots)
	}
}

// WithWorkspaceOverride sets roots given on the command line; they win over settings.json
func WithWorkspaceOverride(roots ...string) StoreOption {
	return func(s *FileStore) {
		s.overrideRoots = NormalizeRoots(roots)
	}
}

// FileStore implements ports.SettingsStore on top of settings.json
type FileStore struct {
	debounce      time.Duration
	defaultRoots  []string
	overrideRoots []string
	path          string
}

// Verify interface compliance at compile time
var _ ports.SettingsStore = (*FileStore)(nil)

// NewFileStore creates a store for the settings file at path
func NewFileStore(path string, opts ...StoreOption) *FileStore {
	s := &FileStore{
		debounce: defaultDebounce,
		path:     filepath.Clean(path),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the settings file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and resolves the settings file. Invalid keys fall back to
// their defaults with a warning.
func (s *FileStore) Load() (domain.ReminderSettings, error) {
	settings, err := LoadSettings(s.path)
	if err != nil {
		return domain.ReminderSettings{}, err
	}

	resolved, warnings := Resolve(settings)
	for _, w := range warnings {
		logging.Logger.Warn("Invalid setting, using default", "path", s.path, "warning", w)
	}

	switch {
	case len(s.overrideRoots) > 0:
		resolved.Workspaces = s.overrideRoots
	case len(resolved.Workspaces) == 0:
		resolved.Workspaces = s.defaultRoots
	}

	return resolved, nil
}

// Watch calls onChange once per burst of changes to the settings file
// until ctx is done
func (s *FileStore) Watch(ctx context.Context, onChange func()) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create settings watcher: %w", err)
	}

	// Watch the directory: editors replace the file on save
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	logging.Logger.Debug("Watching settings", "path", s.path)
	go s.observe(ctx, watcher, onChange)
	return nil
}

func (s *FileStore) observe(ctx context.Context, watcher *fsnotify.Watcher, onChange func()) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		_ = watcher.Close()
	}()

	name := filepath.Base(s.path)
	relevant := fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name || ev.Op&relevant == 0 {
				continue
			}
			logging.Logger.Debug("Settings file event", "op", ev.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(s.debounce, func() {
				if ctx.Err() == nil {
					onChange()
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logging.Logger.Warn("Settings watcher error", "error", err)
		}
	}
}
