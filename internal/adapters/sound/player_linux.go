//go:build linux

package sound

import "gitnag/internal/domain"

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// candidates returns paplay (PulseAudio) and aplay (ALSA) commands
func candidates(eventType string) []command {
	var names []string

	switch eventType {
	case domain.SoundEventUncommitted:
		names = []string{"message", "bell"}
	case domain.SoundEventUnpushed:
		names = []string{"complete", "bell"}
	case domain.SoundEventCombined:
		names = []string{"dialog-warning", "bell"}
	default:
		names = []string{"bell"}
	}

	var cmds []command
	for _, n := range names {
		cmds = append(cmds,
			command{args: []string{freedesktopSounds + n + ".oga"}, name: "paplay"},
			command{args: []string{freedesktopSounds + n + ".wav"}, name: "aplay"},
		)
	}
	return cmds
}
