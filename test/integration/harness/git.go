package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestGitSetup holds paths for a complete git test environment.
// It creates a bare repo (simulating remote/origin) and a clone with origin configured.
type TestGitSetup struct {
	BareRepoPath string // Acts as "origin" remote
	ClonePath    string // Working repo tracking origin/main
	tb           testing.TB
}

// NewTestGitSetup creates a complete git environment with origin.
//  1. Creates a bare repo (simulates remote/origin)
//  2. Clones it to create a working repo with origin remote
//  3. Creates and pushes an initial commit so main tracks origin/main
//
// Setup structure:
//
//	tb.TempDir()/
//	├── bare/           <- git init --bare (acts as origin)
//	└── clone/          <- git clone bare/ clone/ (has origin remote)
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()

	baseDir := tb.TempDir()
	bareRepoPath := filepath.Join(baseDir, "bare")
	clonePath := filepath.Join(baseDir, "clone")

	runGitCommand(tb, baseDir, "init", "--bare", bareRepoPath)
	runGitCommand(tb, baseDir, "clone", bareRepoPath, clonePath)

	runGitCommand(tb, clonePath, "config", "user.email", "test@example.com")
	runGitCommand(tb, clonePath, "config", "user.name", "Test User")

	dummyFile := filepath.Join(clonePath, "README.md")
	if err := os.WriteFile(dummyFile, []byte("# Test Repo\n"), 0644); err != nil {
		tb.Fatalf("Failed to create dummy file: %v", err)
	}
	runGitCommand(tb, clonePath, "add", "README.md")
	runGitCommand(tb, clonePath, "commit", "-m", "Initial commit")

	// Ensure branch is named "main" (git might default to "master")
	runGitCommand(tb, clonePath, "branch", "-M", "main")
	runGitCommand(tb, clonePath, "push", "-u", "origin", "main")

	// Report paths the way git does (macOS temp dirs are symlinks)
	if resolved, err := filepath.EvalSymlinks(clonePath); err == nil {
		clonePath = resolved
	}

	return &TestGitSetup{
		BareRepoPath: bareRepoPath,
		ClonePath:    clonePath,
		tb:           tb,
	}
}

// WriteFile creates or overwrites a file in the working repo.
func (g *TestGitSetup) WriteFile(name, content string) {
	g.tb.Helper()
	if err := os.WriteFile(filepath.Join(g.ClonePath, name), []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write %s: %v", name, err)
	}
}

// Commit stages everything and commits it without pushing.
func (g *TestGitSetup) Commit(message string) {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, "add", "-A")
	runGitCommand(g.tb, g.ClonePath, "commit", "-m", message)
}

// Push pushes the current branch to origin.
func (g *TestGitSetup) Push() {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, "push")
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}
