//go:build linux

package editor

import "os/exec"

var pathEditors = []string{
	"code",
	"code-insiders",
	"cursor",
	"codium",
	"subl",
	"zed",
}

func findPlatformEditor(path string) (string, []string) {
	for _, editor := range pathEditors {
		if _, err := exec.LookPath(editor); err == nil {
			return editor, []string{path}
		}
	}

	// Fallback: the desktop file manager
	if _, err := exec.LookPath("xdg-open"); err == nil {
		return "xdg-open", []string{path}
	}
	return "", nil
}
