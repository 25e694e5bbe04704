package game

import "github.com/hajimehoshi/ebiten/v2"

// Raw stick magnitudes match the handheld touchpad range.
const (
	keyboardMagnitude = 600
	stickScale        = 1000
)

// DeviceInput reads ebiten keyboard and gamepad state. Peer 0 is the
// keyboard: WASD or arrows steer and I/L/K/J are the N/E/S/W buttons. Peer
// n > 0 is the n-th connected standard gamepad.
type DeviceInput struct {
	pads []ebiten.GamepadID
}

// NewDeviceInput creates a reader with no gamepads known yet.
func NewDeviceInput() *DeviceInput {
	return &DeviceInput{}
}

// Poll refreshes the connected gamepad list. Call once per frame before the
// simulation reads input.
func (d *DeviceInput) Poll() {
	d.pads = ebiten.AppendGamepadIDs(d.pads[:0])
}

func (d *DeviceInput) gamepad(peer Peer) (ebiten.GamepadID, bool) {
	i := int(peer) - 1
	if i < 0 || i >= len(d.pads) {
		return 0, false
	}
	id := d.pads[i]
	return id, ebiten.IsStandardGamepadLayoutAvailable(id)
}

// Pad implements InputSource.
func (d *DeviceInput) Pad(peer Peer) (Pad, bool) {
	if peer == 0 {
		return keyboardPad(), true
	}
	id, ok := d.gamepad(peer)
	if !ok {
		return Pad{}, false
	}
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	return PadFromVector(x*stickScale, y*stickScale), true
}

// Buttons implements InputSource.
func (d *DeviceInput) Buttons(peer Peer) Buttons {
	if peer == 0 {
		return Buttons{
			N: ebiten.IsKeyPressed(ebiten.KeyI),
			E: ebiten.IsKeyPressed(ebiten.KeyL),
			S: ebiten.IsKeyPressed(ebiten.KeyK),
			W: ebiten.IsKeyPressed(ebiten.KeyJ),
		}
	}
	id, ok := d.gamepad(peer)
	if !ok {
		return Buttons{}
	}
	return Buttons{
		N: ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightTop),
		E: ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight),
		S: ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom),
		W: ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft),
	}
}

func keyboardPad() Pad {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if dx == 0 && dy == 0 {
		return Pad{}
	}
	p := PadFromVector(dx, dy)
	p.Magnitude = keyboardMagnitude
	return p
}
