package game

import "math"

const (
	floatingTextRise     = 0.6 // pixels per frame
	floatingTextLifetime = 30  // frames
)

// FloatingText is a short label, usually "+N", that drifts up from where a
// firefly was collected.
type FloatingText struct {
	Text      string
	Color     Palette
	position  Point
	remainder float64
	age       int
}

// NewFloatingText places a label at a world position.
func NewFloatingText(text string, pos Point, color Palette) *FloatingText {
	return &FloatingText{Text: text, Color: color, position: pos}
}

// Position returns the world position of the label.
func (t *FloatingText) Position() Point { return t.position }

// Update raises the label, rounding the accumulated rise to whole pixels,
// and reports whether it is still alive.
func (t *FloatingText) Update() bool {
	t.age++
	t.remainder += floatingTextRise
	step := math.Floor(t.remainder + 0.5)
	t.remainder -= step
	t.position.Y -= int(step)
	return t.age <= floatingTextLifetime
}

// Draw renders the label over a one pixel black shadow.
func (t *FloatingText) Draw(canvas Canvas, cam *Camera) {
	sp := cam.WorldToScreen(t.position)
	canvas.DrawText(t.Text, sp.Add(Point{X: 1, Y: 1}), PaletteBlack)
	canvas.DrawText(t.Text, sp, t.Color)
}

// updateTexts advances every label and drops expired ones in place.
func updateTexts(texts []*FloatingText) []*FloatingText {
	kept := texts[:0]
	for _, t := range texts {
		if t.Update() {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(texts); i++ {
		texts[i] = nil
	}
	return kept
}
