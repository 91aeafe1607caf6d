//go:build windows

package editor

import "os/exec"

// Windows installs editor launchers as .cmd shims
var pathEditors = []string{"code.cmd", "cursor.cmd", "subl.exe"}

func findPlatformEditor(path string) (string, []string) {
	for _, name := range pathEditors {
		if _, err := exec.LookPath(name); err == nil {
			return name, []string{path}
		}
	}
	return "explorer.exe", []string{path}
}
