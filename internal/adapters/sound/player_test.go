package sound

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitnag/internal/domain"
)

func stubRunner(t *testing.T, fn func(command) error) *[]command {
	t.Helper()
	var ran []command
	original := runCommand
	runCommand = func(c command) error {
		ran = append(ran, c)
		return fn(c)
	}
	t.Cleanup(func() { runCommand = original })
	return &ran
}

func TestPlaySoundForEvent_StopsAtFirstSuccess(t *testing.T) {
	if len(candidates(domain.SoundEventUncommitted)) == 0 {
		t.Skip("no sound commands on " + runtime.GOOS)
	}
	ran := stubRunner(t, func(command) error { return nil })

	err := NewPlayer().PlaySoundForEvent(domain.SoundEventUncommitted)

	assert.NoError(t, err)
	assert.Len(t, *ran, 1)
}

func TestPlaySoundForEvent_FallsBackThroughCandidates(t *testing.T) {
	want := candidates(domain.SoundEventCombined)
	ran := stubRunner(t, func(command) error { return errors.New("missing") })

	err := NewPlayer().PlaySound()

	assert.NoError(t, err, "terminal bell is the last resort")
	assert.Equal(t, want, *ran)
}

func TestCandidates_EveryEventHasASound(t *testing.T) {
	if runtime.GOOS != "darwin" && runtime.GOOS != "linux" && runtime.GOOS != "windows" {
		t.Skip("bell only on " + runtime.GOOS)
	}
	for _, event := range []string{domain.SoundEventCombined, domain.SoundEventUncommitted, domain.SoundEventUnpushed, "unknown"} {
		assert.NotEmpty(t, candidates(event), event)
	}
}
