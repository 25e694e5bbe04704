package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lampygame/lampy/internal/game"
)

// holdFrames is how long a key counts as held after its last event.
// Terminals report presses and auto-repeat but never releases, so a key is
// released when its repeats stop arriving.
const holdFrames = 8

const padMagnitude = 600

type heldKey int

const (
	keyLeft heldKey = iota
	keyRight
	keyUp
	keyDown
	keyN
	keyE
	keyS
	keyW
	heldKeyCount
)

// Input turns terminal key events into input for one peer. Keys: WASD or
// arrows move, I/L/K/J are the N/E/S/W buttons.
type Input struct {
	peer  game.Peer
	frame int
	until [heldKeyCount]int
}

// NewInput creates input for peer.
func NewInput(peer game.Peer) *Input {
	return &Input{peer: peer}
}

// press records a key event. It returns false for keys it ignores.
func (in *Input) press(key tcell.Key, r rune) bool {
	k, ok := mapKey(key, r)
	if !ok {
		return false
	}
	in.until[k] = in.frame + holdFrames
	return true
}

// Advance moves to the next frame, letting stale keys lapse.
func (in *Input) Advance() { in.frame++ }

func (in *Input) held(k heldKey) bool { return in.until[k] > in.frame }

// Pad implements game.InputSource.
func (in *Input) Pad(peer game.Peer) (game.Pad, bool) {
	if peer != in.peer {
		return game.Pad{}, false
	}
	var dx, dy float64
	if in.held(keyLeft) {
		dx--
	}
	if in.held(keyRight) {
		dx++
	}
	if in.held(keyUp) {
		dy--
	}
	if in.held(keyDown) {
		dy++
	}
	if dx == 0 && dy == 0 {
		return game.Pad{}, true
	}
	p := game.PadFromVector(dx, dy)
	p.Magnitude = padMagnitude
	return p, true
}

// Buttons implements game.InputSource.
func (in *Input) Buttons(peer game.Peer) game.Buttons {
	if peer != in.peer {
		return game.Buttons{}
	}
	return game.Buttons{N: in.held(keyN), E: in.held(keyE), S: in.held(keyS), W: in.held(keyW)}
}

func mapKey(key tcell.Key, r rune) (heldKey, bool) {
	switch key {
	case tcell.KeyLeft:
		return keyLeft, true
	case tcell.KeyRight:
		return keyRight, true
	case tcell.KeyUp:
		return keyUp, true
	case tcell.KeyDown:
		return keyDown, true
	case tcell.KeyRune:
	default:
		return 0, false
	}
	switch r {
	case 'a', 'A':
		return keyLeft, true
	case 'd', 'D':
		return keyRight, true
	case 'w', 'W':
		return keyUp, true
	case 's', 'S':
		return keyDown, true
	case 'i', 'I':
		return keyN, true
	case 'l', 'L':
		return keyE, true
	case 'k', 'K':
		return keyS, true
	case 'j', 'J':
		return keyW, true
	}
	return 0, false
}
