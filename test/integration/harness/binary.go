package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

const defaultTimeout = 30 * time.Second

var (
	binary     string
	binaryErr  error
	binaryOnce sync.Once
)

// CommandResult is what one gitnag invocation produced
type CommandResult struct {
	ExitCode int // -1 when the process did not exit on its own
	Stderr   string
	Stdout   string
}

// BuildBinary compiles ./cmd into a temp dir the first time it is called.
func BuildBinary() (string, error) {
	binaryOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			binaryErr = err
			return
		}

		dir, err := os.MkdirTemp("", "gitnag-it-*")
		if err != nil {
			binaryErr = err
			return
		}
		binary = filepath.Join(dir, "gitnag")

		build := exec.Command("go", "build", "-o", binary, "./cmd")
		build.Dir = root
		if out, err := build.CombinedOutput(); err != nil {
			binaryErr = fmt.Errorf("go build failed: %w\n%s", err, out)
		}
	})
	return binary, binaryErr
}

// CleanupBinary removes the directory BuildBinary created.
func CleanupBinary() {
	if binary != "" {
		_ = os.RemoveAll(filepath.Dir(binary))
	}
}

// RunCommand runs gitnag in env with the default timeout.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommandWithTimeout(tb, env, defaultTimeout, args...)
}

// RunCommandWithTimeout runs gitnag in env and kills it after timeout.
func RunCommandWithTimeout(tb testing.TB, env *TestEnvironment, timeout time.Duration, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = env.WorkDir()
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case ctx.Err() != nil:
		tb.Logf("gitnag %v killed after %v", args, timeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("gitnag %v did not run: %v", args, err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// moduleRoot walks up from the working directory to the go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above the test directory")
		}
		dir = parent
	}
}
