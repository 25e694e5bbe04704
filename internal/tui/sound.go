package tui

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lampygame/lampy/internal/game"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[string][]tone{
	game.SFXPling: {{freq: 1320, duration: 40 * time.Millisecond}, {freq: 1760, duration: 60 * time.Millisecond}},
}

// Speaker plays effects as short sine tones through the system speaker.
type Speaker struct{}

// NewSpeaker initialises the speaker. Callers run without sound when it
// fails.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{}, nil
}

// PlaySFX implements game.SoundPlayer.
func (s *Speaker) PlaySFX(name string) {
	seq, ok := tones[name]
	if !ok {
		return
	}
	parts := make([]beep.Streamer, 0, len(seq))
	for _, t := range seq {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return
		}
		parts = append(parts, beep.Take(sampleRate.N(t.duration), sine))
	}
	speaker.Play(beep.Seq(parts...))
}

// Close releases the audio device.
func (s *Speaker) Close() {
	speaker.Close()
}
