//go:build windows

package sound

import "gitnag/internal/domain"

// candidates returns PowerShell system sound commands
func candidates(eventType string) []command {
	var sounds []string

	switch eventType {
	case domain.SoundEventUncommitted:
		sounds = []string{"Asterisk", "Beep"}
	case domain.SoundEventUnpushed:
		sounds = []string{"Exclamation", "Beep"}
	case domain.SoundEventCombined:
		sounds = []string{"Hand", "Beep"}
	default:
		sounds = []string{"Beep"}
	}

	cmds := make([]command, 0, len(sounds))
	for _, s := range sounds {
		cmds = append(cmds, command{
			args: []string{"-c", "[System.Media.SystemSounds]::" + s + ".Play()"},
			name: "powershell",
		})
	}
	return cmds
}
