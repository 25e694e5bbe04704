package game

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sfxSampleRate = 44100
	sfxMaxVoices  = 8
)

// ChimePlayer plays procedurally generated effects through ebiten audio.
type ChimePlayer struct {
	ctx    *audio.Context
	clips  map[string][]byte
	voices []*audio.Player
}

// NewChimePlayer creates the audio context and renders every effect. Only
// one may exist per process because ebiten allows a single audio context.
func NewChimePlayer() *ChimePlayer {
	return &ChimePlayer{
		ctx: audio.NewContext(sfxSampleRate),
		clips: map[string][]byte{
			SFXPling: renderChime(1320, 1760, 0.12, sfxSampleRate),
		},
	}
}

// PlaySFX implements SoundPlayer. Unknown names are ignored.
func (c *ChimePlayer) PlaySFX(name string) {
	clip, ok := c.clips[name]
	if !ok {
		return
	}
	if len(c.voices) >= sfxMaxVoices {
		_ = c.voices[0].Close()
		c.voices = c.voices[1:]
	}
	p := c.ctx.NewPlayerFromBytes(clip)
	p.Play()
	c.voices = append(c.voices, p)
}

// renderChime synthesises a two-partial sine with exponential decay as
// 16-bit little-endian stereo PCM.
func renderChime(f1, f2, seconds float64, rate int) []byte {
	n := int(seconds * float64(rate))
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(rate)
		env := math.Exp(-t * 30)
		v := (0.6*math.Sin(2*math.Pi*f1*t) + 0.4*math.Sin(2*math.Pi*f2*t)) * env * 0.5
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}
