package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type started struct {
	args []string
	name string
}

func stubStart(t *testing.T, err error) *[]started {
	t.Helper()
	var calls []started
	original := startCommand
	startCommand = func(name string, args []string) (func() error, error) {
		calls = append(calls, started{args: args, name: name})
		if err != nil {
			return nil, err
		}
		return func() error { return nil }, nil
	}
	t.Cleanup(func() { startCommand = original })
	return &calls
}

func clearEditorEnv(t *testing.T) {
	t.Setenv(EnvEditor, "")
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
}

func TestFindEditor_Precedence(t *testing.T) {
	clearEditorEnv(t)
	t.Setenv("EDITOR", "vim")
	t.Setenv("VISUAL", "nvim")
	t.Setenv(EnvEditor, "zed")

	name, args := findEditor("/repo", "")
	assert.Equal(t, "zed", name)
	assert.Equal(t, []string{"/repo"}, args)

	name, _ = findEditor("/repo", "subl")
	assert.Equal(t, "subl", name, "cli editor wins over environment")

	t.Setenv(EnvEditor, "")
	name, _ = findEditor("/repo", "")
	assert.Equal(t, "nvim", name)

	t.Setenv("VISUAL", "")
	name, _ = findEditor("/repo", "")
	assert.Equal(t, "vim", name)
}

func TestFindEditor_SplitsFlags(t *testing.T) {
	clearEditorEnv(t)

	name, args := findEditor("/repo", "code --new-window")

	assert.Equal(t, "code", name)
	assert.Equal(t, []string{"--new-window", "/repo"}, args)
}

func TestOpen_StartsEditor(t *testing.T) {
	clearEditorEnv(t)
	calls := stubStart(t, nil)
	dir := t.TempDir()

	err := NewOpener().Open(dir, "myeditor")

	require.NoError(t, err)
	require.Len(t, *calls, 1)
	assert.Equal(t, "myeditor", (*calls)[0].name)
	assert.Equal(t, []string{dir}, (*calls)[0].args)
}

func TestOpen_Errors(t *testing.T) {
	clearEditorEnv(t)
	stubStart(t, errors.New("exec: not found"))

	assert.Error(t, NewOpener().Open("", "myeditor"))
	assert.Error(t, NewOpener().Open("/definitely/not/here", "myeditor"))

	err := NewOpener().Open(t.TempDir(), "myeditor")
	assert.ErrorContains(t, err, "failed to start editor")
}
