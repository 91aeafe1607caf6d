package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// commandError carries git's stderr alongside the exit error
type commandError struct {
	args   []string
	err    error
	stderr string
}

func (e *commandError) Error() string {
	msg := strings.TrimSpace(e.stderr)
	if msg == "" {
		return fmt.Sprintf("git %s: %v", strings.Join(e.args, " "), e.err)
	}
	return fmt.Sprintf("git %s: %v: %s", strings.Join(e.args, " "), e.err, msg)
}

func (e *commandError) Unwrap() error {
	return e.err
}

// runGit runs git in dir and returns stdout
func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	// Status must not take index.lock while the user is committing
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", &commandError{args: args, err: err, stderr: stderr.String()}
	}
	return string(out), nil
}

// parsePorcelain counts index and working tree entries in
// `git status --porcelain=v1 -z` output
func parsePorcelain(out string) (index, workingTree int) {
	entries := strings.Split(out, "\x00")
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if len(entry) < 3 {
			continue
		}

		x, y := entry[0], entry[1]
		switch {
		case x == '?' && y == '?':
			workingTree++
			continue
		case x == '!' && y == '!':
			continue
		}

		if x != ' ' {
			index++
		}
		if y != ' ' {
			workingTree++
		}

		// Renames and copies carry the origin path as the next entry
		if x == 'R' || x == 'C' || y == 'R' || y == 'C' {
			i++
		}
	}
	return index, workingTree
}

// aheadOfUpstream counts commits on HEAD missing from its upstream.
// Returns nil when the branch has no upstream.
func aheadOfUpstream(ctx context.Context, dir string) (*int, error) {
	out, err := runGit(ctx, dir, "rev-list", "--count", "@{upstream}..HEAD")
	if err != nil {
		var gerr *commandError
		if errors.As(err, &gerr) && isNoUpstream(gerr.stderr) {
			return nil, nil
		}
		return nil, err
	}

	ahead, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return nil, fmt.Errorf("unexpected rev-list output %q: %w", out, err)
	}
	return &ahead, nil
}

func isNotRepository(stderr string) bool {
	return strings.Contains(strings.ToLower(stderr), "not a git repository")
}

// isNoUpstream matches the errors git gives for a branch without upstream,
// a detached HEAD or an unborn branch
func isNoUpstream(stderr string) bool {
	s := strings.ToLower(stderr)
	markers := []string{
		"no upstream configured",
		"no upstream branch",
		"does not point to a branch",
		"upstream branch",
		"unknown revision",
		"ambiguous argument",
	}
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
