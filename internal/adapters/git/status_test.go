package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePorcelain(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		index       int
		workingTree int
	}{
		{"empty", "", 0, 0},
		{"modified in working tree", " M a.go\x00", 0, 1},
		{"staged", "M  a.go\x00A  b.go\x00", 2, 0},
		{"staged and modified", "MM a.go\x00", 1, 1},
		{"untracked", "?? new.txt\x00?? other.txt\x00", 0, 2},
		{"ignored", "!! build/\x00", 0, 0},
		{"rename skips origin path", "R  new.go\x00old.go\x00 M c.go\x00", 1, 1},
		{"deleted", " D gone.go\x00D  staged-gone.go\x00", 1, 1},
		{"conflict", "UU merge.go\x00", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, workingTree := parsePorcelain(tt.output)
			assert.Equal(t, tt.index, index)
			assert.Equal(t, tt.workingTree, workingTree)
		})
	}
}

func TestIsNoUpstream(t *testing.T) {
	tests := []struct {
		stderr   string
		expected bool
	}{
		{"fatal: no upstream configured for branch 'main'\n", true},
		{"fatal: HEAD does not point to a branch\n", true},
		{"fatal: ambiguous argument 'HEAD': unknown revision or path not in the working tree.\n", true},
		{"fatal: not a git repository (or any of the parent directories): .git\n", false},
		{"error: object file .git/objects/ab is empty\n", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, isNoUpstream(tt.stderr), tt.stderr)
	}
}

func TestCommandErrorMessage(t *testing.T) {
	err := &commandError{args: []string{"status"}, err: assert.AnError, stderr: "fatal: bad\n"}
	assert.Equal(t, "git status: "+assert.AnError.Error()+": fatal: bad", err.Error())
	assert.ErrorIs(t, err, assert.AnError)
}
