package integration_test

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitnag/test/integration/harness"
)

type checkOutput struct {
	Message      string `json:"message"`
	Repositories []struct {
		Root                    string `json:"root"`
		State                   string `json:"state"`
		UncommittedChangesCount int    `json:"uncommitted_changes_count"`
		UnpushedCommitsCount    *int   `json:"unpushed_commits_count"`
	} `json:"repositories"`
	UncommittedOverdue bool `json:"uncommitted_overdue"`
	UnpushedOverdue    bool `json:"unpushed_overdue"`
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestCheck(t *testing.T) {
	requireGit(t)

	for _, provider := range []string{"git", "go-git"} {
		t.Run(provider, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			env.WriteSettings(`{"provider": "` + provider + `"}`)
			repo := harness.NewTestGitSetup(t)

			t.Run("clean repository", func(t *testing.T) {
				result := harness.RunCommand(t, env, "check", "--json", "-w", repo.ClonePath)
				harness.AssertSuccess(t, result)

				var out checkOutput
				harness.AssertValidJSON(t, result, &out)
				require.Len(t, out.Repositories, 1)
				assert.Equal(t, repo.ClonePath, out.Repositories[0].Root)
				assert.Equal(t, "clean", out.Repositories[0].State)
				require.NotNil(t, out.Repositories[0].UnpushedCommitsCount)
				assert.Equal(t, 0, *out.Repositories[0].UnpushedCommitsCount)
			})

			t.Run("untracked file is uncommitted", func(t *testing.T) {
				repo.WriteFile("notes.txt", "draft\n")

				result := harness.RunCommand(t, env, "check", "--json", "-w", repo.ClonePath)
				harness.AssertSuccess(t, result)

				var out checkOutput
				harness.AssertValidJSON(t, result, &out)
				require.Len(t, out.Repositories, 1)
				assert.Equal(t, 1, out.Repositories[0].UncommittedChangesCount)
				assert.Equal(t, "dirty", out.Repositories[0].State)
				assert.False(t, out.UncommittedOverdue, "just became dirty")
			})

			t.Run("local commit is unpushed", func(t *testing.T) {
				repo.Commit("Add notes")

				result := harness.RunCommand(t, env, "check", "--json", "-w", repo.ClonePath)
				harness.AssertSuccess(t, result)

				var out checkOutput
				harness.AssertValidJSON(t, result, &out)
				require.Len(t, out.Repositories, 1)
				assert.Equal(t, 0, out.Repositories[0].UncommittedChangesCount)
				require.NotNil(t, out.Repositories[0].UnpushedCommitsCount)
				assert.Equal(t, 1, *out.Repositories[0].UnpushedCommitsCount)
			})

			t.Run("push clears unpushed", func(t *testing.T) {
				repo.Push()

				result := harness.RunCommand(t, env, "check", "--json", "-w", repo.ClonePath)
				harness.AssertSuccess(t, result)

				var out checkOutput
				harness.AssertValidJSON(t, result, &out)
				require.Len(t, out.Repositories, 1)
				assert.Equal(t, "clean", out.Repositories[0].State)
				require.NotNil(t, out.Repositories[0].UnpushedCommitsCount)
				assert.Equal(t, 0, *out.Repositories[0].UnpushedCommitsCount)
			})
		})
	}
}

func TestCheck_TableOutput(t *testing.T) {
	requireGit(t)
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestGitSetup(t)
	repo.WriteFile("a.txt", "a\n")

	result := harness.RunCommand(t, env, "check", "-w", repo.ClonePath)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "REPOSITORY")
	harness.AssertStdoutContains(t, result, repo.ClonePath)
	harness.AssertStdoutContains(t, result, "dirty")
}

func TestCheck_NonRepositoryWorkspace(t *testing.T) {
	requireGit(t)
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "check", "-w", t.TempDir())

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No repositories found")
}

func TestCheck_UnknownProviderFails(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"provider": "svn"}`)

	result := harness.RunCommand(t, env, "check")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "source control provider not available")
}
