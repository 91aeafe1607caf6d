package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own GITNAG_HOME.
type TestEnvironment struct {
	GitnagHome string
	extraEnv   map[string]string
	tb         testing.TB
	workDir    string
}

// NewTestEnvironment creates an isolated test environment with a temp GITNAG_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		GitnagHome: tb.TempDir(),
		extraEnv:   make(map[string]string),
		tb:         tb,
		workDir:    tb.TempDir(),
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out GITNAG_* variables and sets:
//   - GITNAG_HOME to the temp directory
//   - GITNAG_DEBUG to empty string (disables debug logging)
//   - GITNAG_EDITOR to "true" (no-op command)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := make(map[string]bool)
	overrideKeys["GITNAG_HOME"] = true
	overrideKeys["GITNAG_DEBUG"] = true
	overrideKeys["GITNAG_EDITOR"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "GITNAG_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"GITNAG_HOME="+e.GitnagHome,
		"GITNAG_DEBUG=",
		"GITNAG_EDITOR=true",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.GitnagHome, "state.db")
}

// LockPath returns the path to the daemon lock file.
func (e *TestEnvironment) LockPath() string {
	return filepath.Join(e.GitnagHome, "daemon.lock")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.GitnagHome, "settings.json")
}

// WriteSettings writes raw JSON to the test settings file.
func (e *TestEnvironment) WriteSettings(json string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(json), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// WorkDir returns the directory commands run in. It is not a repository,
// so the default workspace resolves to nothing.
func (e *TestEnvironment) WorkDir() string {
	return e.workDir
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
