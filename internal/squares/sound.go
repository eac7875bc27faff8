package squares

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	spawnTone  = 660
)

// Sound plays the game's effects.
type Sound interface {
	Spawn()
	Close()
}

// Silence is a Sound that plays nothing.
type Silence struct{}

func (Silence) Spawn() {}
func (Silence) Close() {}

type speakerSound struct{}

// NewSound opens the speaker when enabled. On failure it still returns a
// usable Silence together with the error, so callers can carry on without
// audio.
func NewSound(enabled bool) (Sound, error) {
	if !enabled {
		return Silence{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return Silence{}, fmt.Errorf("init speaker: %w", err)
	}
	return speakerSound{}, nil
}

func (speakerSound) Spawn() {
	sine, err := generators.SineTone(sampleRate, spawnTone)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}

func (speakerSound) Close() {
	speaker.Close()
}
