package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitnag/test/integration/harness"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		setup    func(t *testing.T, env *harness.TestEnvironment)
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "no snapshot shows zeros",
			args: []string{"status", "--short"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "±0 ↑0")
			},
		},
		{
			name: "no snapshot table",
			args: []string{"status"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No repositories found")
			},
		},
		{
			name: "after check shows stored snapshot",
			args: []string{"status", "--short"},
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				requireGit(t)
				repo := harness.NewTestGitSetup(t)
				repo.WriteFile("wip.txt", "wip\n")
				harness.AssertSuccess(t, harness.RunCommand(t, env, "check", "-w", repo.ClonePath))
			},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "±1 ↑0")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertSuccess(t, result)

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestHistory_Empty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "history")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No reminders fired yet.")
	assert.FileExists(t, env.DBPath(), "state database is created on first use")
}
