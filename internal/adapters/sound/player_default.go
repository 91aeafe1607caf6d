//go:build !darwin && !linux && !windows

package sound

// candidates is empty on unsupported platforms; the terminal bell is used
func candidates(eventType string) []command {
	return nil
}
