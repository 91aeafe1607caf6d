//go:build darwin

package editor

import (
	"os"
	"os/exec"
)

var pathEditors = []string{"code", "cursor", "zed", "subl"}

// Bundled CLIs for apps installed without their shell command
var appEditors = []string{
	"/Applications/Visual Studio Code.app/Contents/Resources/app/bin/code",
	"/Applications/Cursor.app/Contents/Resources/app/bin/cursor",
	"/Applications/Sublime Text.app/Contents/SharedSupport/bin/subl",
}

func findPlatformEditor(path string) (string, []string) {
	for _, name := range pathEditors {
		if _, err := exec.LookPath(name); err == nil {
			return name, []string{path}
		}
	}
	for _, app := range appEditors {
		if _, err := os.Stat(app); err == nil {
			return app, []string{path}
		}
	}
	// Finder shows the repository folder
	return "open", []string{path}
}
