package sound

import (
	"fmt"
	"os"
	"os/exec"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

// command is one way of playing a sound on the current platform
type command struct {
	args []string
	name string
}

// runCommand runs a sound command to completion
var runCommand = func(c command) error {
	return exec.Command(c.name, c.args...).Run()
}

// Player implements ports.SoundPlayer
type Player struct{}

// Verify interface compliance at compile time
var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlaySound plays the combined reminder sound
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(domain.SoundEventCombined)
}

// PlaySoundForEvent plays the sound for a reminder event.
// Platform-specific candidates are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	for _, c := range candidates(eventType) {
		err := runCommand(c)
		if err == nil {
			return nil
		}
		logging.Logger.Debug("Sound command failed", "command", c.name, "error", err)
	}
	return terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	_, err := fmt.Fprint(os.Stderr, "\a")
	return err
}
