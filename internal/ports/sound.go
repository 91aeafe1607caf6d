package ports

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// PlaySound plays the default reminder sound
	PlaySound() error

	// PlaySoundForEvent plays a sound for a specific reminder event
	PlaySoundForEvent(eventType string) error
}
