package game

import "math"

// Pad is a decoded directional-pad sample: bearing in world orientation
// (+Y down) and magnitude in raw device units.
type Pad struct {
	Bearing   Angle
	Magnitude float64
}

// Buttons is the held state of the four face buttons.
type Buttons struct {
	N, E, S, W bool
}

// Any reports whether any button is held.
func (b Buttons) Any() bool { return b.N || b.E || b.S || b.W }

// JustPressed returns the buttons held now that were not held in prev.
func (b Buttons) JustPressed(prev Buttons) Buttons {
	return Buttons{N: b.N && !prev.N, E: b.E && !prev.E, S: b.S && !prev.S, W: b.W && !prev.W}
}

// JustReleased returns the buttons held in prev that are no longer held.
func (b Buttons) JustReleased(prev Buttons) Buttons {
	return prev.JustPressed(b)
}

// InputSource supplies per-peer input that has already been decoded by the
// frontend. A false second value from Pad means the peer has no pad.
type InputSource interface {
	Pad(peer Peer) (Pad, bool)
	Buttons(peer Peer) Buttons
}

type nopInput struct{}

func (nopInput) Pad(Peer) (Pad, bool) { return Pad{}, false }
func (nopInput) Buttons(Peer) Buttons { return Buttons{} }

// ScriptedInput replays fixed input per peer. Tests and headless runs set
// the fields between ticks.
type ScriptedInput struct {
	Pads    map[Peer]Pad
	Pressed map[Peer]Buttons
}

// NewScriptedInput creates an empty script.
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{Pads: make(map[Peer]Pad), Pressed: make(map[Peer]Buttons)}
}

// Pad implements InputSource.
func (s *ScriptedInput) Pad(peer Peer) (Pad, bool) {
	p, ok := s.Pads[peer]
	return p, ok
}

// Buttons implements InputSource.
func (s *ScriptedInput) Buttons(peer Peer) Buttons { return s.Pressed[peer] }

// PadFromVector converts a raw stick vector (+Y down) into a Pad.
func PadFromVector(dx, dy float64) Pad {
	return Pad{Bearing: Angle(math.Atan2(dy, dx)), Magnitude: math.Hypot(dx, dy)}
}
