package cmd

import "gitnag/internal/domain"

// PlaySoundCmd plays a reminder sound
type PlaySoundCmd struct {
	Event string `help:"Reminder event to play" enum:"combined,uncommitted,unpushed" default:"combined"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	if p.Event == domain.SoundEventCombined {
		return cli.Container.SoundPlayer.PlaySound()
	}
	return cli.Container.SoundPlayer.PlaySoundForEvent(p.Event)
}
