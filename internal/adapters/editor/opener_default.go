//go:build !darwin && !linux && !windows

package editor

// No fallback on other platforms; an editor must be configured
func findPlatformEditor(string) (string, []string) {
	return "", nil
}
