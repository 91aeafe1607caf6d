//go:build darwin

package sound

import "gitnag/internal/domain"

// candidates returns afplay commands for macOS system sounds
func candidates(eventType string) []command {
	var soundFiles []string

	switch eventType {
	case domain.SoundEventUncommitted:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff", "/System/Library/Sounds/Tink.aiff"}
	case domain.SoundEventUnpushed:
		soundFiles = []string{"/System/Library/Sounds/Ping.aiff", "/System/Library/Sounds/Pop.aiff"}
	case domain.SoundEventCombined:
		soundFiles = []string{"/System/Library/Sounds/Submarine.aiff", "/System/Library/Sounds/Glass.aiff"}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	cmds := make([]command, 0, len(soundFiles))
	for _, f := range soundFiles {
		cmds = append(cmds, command{args: []string{f}, name: "afplay"})
	}
	return cmds
}
