package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Inspector panel layout in logical screen pixels.
const (
	inspPad     = 3
	inspLineH   = 12
	inspPickRad = 8.0 // click radius in world pixels
)

// Inspector follows one firefly picked with the mouse. It remembers the ID
// rather than the pointer so a collected firefly simply drops out.
type Inspector struct {
	selected int
	active   bool
	rawView  bool
}

// Select picks the firefly nearest to the screen point, or clears the
// selection when none is within reach. It reports whether one was picked.
func (in *Inspector) Select(s *Sim, screen Point) bool {
	f := s.FireflyNear(s.Camera().ScreenToWorld(screen), inspPickRad)
	if f == nil {
		in.active = false
		return false
	}
	in.selected = f.ID
	in.active = true
	return true
}

// ToggleView switches between the curated and raw views.
func (in *Inspector) ToggleView() { in.rawView = !in.rawView }

// Selected returns the inspected firefly if it is still alive.
func (in *Inspector) Selected(s *Sim) *Firefly {
	if !in.active {
		return nil
	}
	for _, f := range s.Flock().Fireflies() {
		if f.ID == in.selected {
			return f
		}
	}
	in.active = false
	return nil
}

// FireflyNear returns the firefly closest to p within radius, or nil.
func (s *Sim) FireflyNear(p Point, radius float64) *Firefly {
	best := math.Inf(1)
	var hit *Firefly
	for _, f := range s.flock.Fireflies() {
		d := f.Position().Distance(p)
		if d <= radius && d < best {
			best, hit = d, f
		}
	}
	return hit
}

// Lines returns the panel text for f.
func (in *Inspector) Lines(s *Sim, f *Firefly) []string {
	if in.rawView {
		return inspectRaw(s, f)
	}
	return inspectCurated(s, f)
}

func inspectCurated(s *Sim, f *Firefly) []string {
	pos := f.Position()
	lines := []string{
		fmt.Sprintf("[ F%d %s +%d ]", f.ID, f.Color(), f.Points()),
		fmt.Sprintf("pos (%d,%d) hdg %.0f", pos.X, pos.Y, f.Direction().Normalize().Degrees()),
	}
	target, ok := f.AttractedTo()
	if !ok {
		return append(lines, "wandering")
	}
	lines = append(lines, fmt.Sprintf("-> (%d,%d) %.0fpx", target.X, target.Y, pos.Distance(target)))
	for _, p := range s.Players() {
		if p.AttractionTarget() == target {
			return append(lines, "led by "+peerLabel(p.Peer()))
		}
	}
	return append(lines, "target stale")
}

func inspectRaw(s *Sim, f *Firefly) []string {
	pos := f.Position()
	target, ok := f.AttractedTo()
	return []string{
		fmt.Sprintf("id=%d col=%s pts=%d", f.ID, f.Color(), f.Points()),
		fmt.Sprintf("pos=(%d,%d) dir=%.2f", pos.X, pos.Y, f.Direction().Radians()),
		fmt.Sprintf("att=%v tgt=(%d,%d)", ok, target.X, target.Y),
		fmt.Sprintf("cache=%d/%d bnc=%d", f.CacheAge(), s.Config().CacheThreshold, f.Bounces()),
		fmt.Sprintf("trail=%d goal=%v", f.Particles().Count(), s.World().IsInGoal(pos)),
	}
}

// drawInspector renders the panel in the top right corner and rings the
// inspected firefly.
func (g *Game) drawInspector(screen *ebiten.Image) {
	f := g.inspector.Selected(g.sim)
	if f == nil {
		return
	}
	sp := g.sim.Camera().WorldToScreen(f.Position())
	vector.StrokeCircle(screen, float32(sp.X), float32(sp.Y), 5, 1, PaletteLightYellow.Faded(200), false)

	lines := g.inspector.Lines(g.sim, f)
	w, h := 0, len(lines)*inspLineH+2*inspPad
	for _, l := range lines {
		w = max(w, 6*len(l))
	}
	w += 2 * inspPad
	x := g.sim.Camera().Screen().W - w - 2
	y := 14

	panelBg := color.RGBA{R: 14, G: 16, B: 14, A: 220}
	panelBorder := color.RGBA{R: 55, G: 80, B: 55, A: 255}
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), panelBg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, panelBorder, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x+inspPad, y+inspPad+i*inspLineH-2)
	}
}
