package game

import (
	"math"
	"testing"
)

func newTestPlayer(pos Point) (*Player, *ScriptedInput, *Config) {
	cfg := DefaultConfig()
	return newPlayerAt(0, pos, &cfg), NewScriptedInput(), &cfg
}

func TestPlayer_DeadzoneAndThreshold(t *testing.T) {
	w := openWorld(20, 20)
	cases := []struct {
		name string
		pad  Pad
	}{
		{"below deadzone", Pad{Bearing: AngleFromDegrees(45), Magnitude: 0.5}},
		{"nan bearing", Pad{Bearing: Angle(math.NaN()), Magnitude: 800}},
		{"nan magnitude", Pad{Bearing: 0, Magnitude: math.NaN()}},
		{"at threshold", Pad{Bearing: 0, Magnitude: 100}},
	}
	for _, c := range cases {
		p, in, cfg := newTestPlayer(Point{100, 100})
		in.Pads[0] = c.pad
		p.Update(w, in, cfg)
		if p.Position() != (Point{100, 100}) {
			t.Errorf("%s: player moved to %+v", c.name, p.Position())
		}
		if p.remainder != 0 {
			t.Errorf("%s: remainder should be cleared, got %f", c.name, p.remainder)
		}
	}
}

func TestPlayer_NoPadKeepsState(t *testing.T) {
	w := openWorld(20, 20)
	p, in, cfg := newTestPlayer(Point{100, 100})
	p.direction = AngleFromDegrees(90)
	p.Update(w, in, cfg)
	if p.Position() != (Point{100, 100}) || p.Direction() != AngleFromDegrees(90) {
		t.Fatalf("peer without a pad should not change, got %+v dir %f", p.Position(), p.Direction().Degrees())
	}
}

func TestPlayer_MovesAndReprojectsTarget(t *testing.T) {
	w := openWorld(20, 20)
	p, in, cfg := newTestPlayer(Point{100, 100})
	in.Pads[0] = Pad{Bearing: 0, Magnitude: 1000} // 2 px per frame
	p.Update(w, in, cfg)
	if p.Position() != (Point{102, 100}) {
		t.Fatalf("expected (102,100), got %+v", p.Position())
	}
	if p.AttractionTarget() != (Point{122, 100}) {
		t.Fatalf("expected target 20px ahead at (122,100), got %+v", p.AttractionTarget())
	}
}

func TestPlayer_LightSlowsMovement(t *testing.T) {
	w := openWorld(20, 20)
	lit, litIn, cfg := newTestPlayer(Point{100, 100})
	dark, darkIn, _ := newTestPlayer(Point{100, 100})

	// Switch the light on before moving.
	litIn.Pressed[0] = Buttons{N: true}
	lit.Update(w, litIn, cfg)
	if lit.Color() != SoftRed {
		t.Fatalf("expected soft-red light, got %s", lit.Color())
	}

	litIn.Pads[0] = Pad{Bearing: 0, Magnitude: 1000}
	darkIn.Pads[0] = Pad{Bearing: 0, Magnitude: 1000}
	for i := 0; i < 10; i++ {
		lit.Update(w, litIn, cfg)
		dark.Update(w, darkIn, cfg)
	}
	if got := dark.Position().X - 100; got != 20 {
		t.Fatalf("dark lamp should cover 20px, got %d", got)
	}
	if got := lit.Position().X - 100; got < 7 || got > 8 {
		t.Fatalf("lit lamp should cover about 8px, got %d", got)
	}
}

// Slow movement on a heading with two negative components used to jump a
// whole diagonal pixel per frame and drive the carry negative.
func TestPlayer_SlowOffAxisMovementTracksDistance(t *testing.T) {
	const frames = 60
	w := openWorld(30, 30)
	for _, lit := range []bool{false, true} {
		for mag := 150.0; mag <= 300; mag += 25 {
			p, in, cfg := newTestPlayer(Point{240, 240})
			if lit {
				in.Pressed[0] = Buttons{N: true}
			}
			in.Pads[0] = Pad{Bearing: AngleFromDegrees(200), Magnitude: mag}
			factor := 1.0
			if lit {
				factor = cfg.FlashlightFactor
			}
			want := mag * cfg.PlayerSpeed * factor * frames

			for i := 0; i < frames; i++ {
				p.Update(w, in, cfg)
				if p.remainder < 0 || p.remainder >= math.Sqrt2 {
					t.Fatalf("lit=%v mag=%.0f frame %d: remainder %f", lit, mag, i, p.remainder)
				}
			}
			start := Point{240, 240}
			moved := start.Distance(p.Position())
			if math.Abs(moved-want) > 0.2*want+1.5 {
				t.Errorf("lit=%v mag=%.0f: moved %.1f px, want about %.1f (at %+v)", lit, mag, moved, want, p.Position())
			}
			if p.Position().X >= start.X || p.Position().Y > start.Y {
				t.Errorf("lit=%v mag=%.0f: lamp went the wrong way to %+v", lit, mag, p.Position())
			}
		}
	}
}

func TestPlayer_RemainderDroppedAgainstWall(t *testing.T) {
	w := NewWorldFromGrid(GridFromGlyphs([]string{"..#..", "..#.."}))
	p, in, cfg := newTestPlayer(Point{31, 8})
	in.Pads[0] = Pad{Bearing: 0, Magnitude: 750} // 1.5 px per frame
	for i := 0; i < 5; i++ {
		p.Update(w, in, cfg)
		if p.remainder != 0 {
			t.Fatalf("frame %d: blocked lamp kept a carry of %f", i, p.remainder)
		}
	}
}

func TestPlayer_SweepDoesNotTunnel(t *testing.T) {
	// Wall at column 2 (pixels 32..47), open beyond it.
	w := NewWorldFromGrid(GridFromGlyphs([]string{"..#..", "..#.."}))
	p, in, cfg := newTestPlayer(Point{20, 8})
	in.Pads[0] = Pad{Bearing: 0, Magnitude: 20000} // 40 px per frame
	p.Update(w, in, cfg)
	if p.Position() != (Point{31, 8}) {
		t.Fatalf("expected to stop against the wall at (31,8), got %+v", p.Position())
	}
	for i := 0; i < 5; i++ {
		p.Update(w, in, cfg)
	}
	if w.IsBlocked(p.Position()) || p.Position().X > 31 {
		t.Fatalf("player got through the wall: %+v", p.Position())
	}
}

func TestPlayer_SlidesAlongWall(t *testing.T) {
	w := NewWorldFromGrid(GridFromGlyphs([]string{"..#", "..#", "..."}))
	p, in, cfg := newTestPlayer(Point{28, 8})
	in.Pads[0] = Pad{Bearing: AngleFromDegrees(45), Magnitude: 5000} // ~10 px per frame
	p.Update(w, in, cfg)
	pos := p.Position()
	if pos.X != 31 {
		t.Fatalf("X should stop at the wall, got %+v", pos)
	}
	if pos.Y <= 8 {
		t.Fatalf("Y should keep moving along the wall, got %+v", pos)
	}
}

func TestPlayer_StaysInWorld(t *testing.T) {
	w := openWorld(4, 4)
	p, in, cfg := newTestPlayer(Point{2, 2})
	in.Pads[0] = Pad{Bearing: AngleFromDegrees(225), Magnitude: 3000}
	for i := 0; i < 10; i++ {
		p.Update(w, in, cfg)
	}
	if p.Position() != (Point{0, 0}) {
		t.Fatalf("expected clamp at the world corner, got %+v", p.Position())
	}
}

func TestPlayer_LightCone(t *testing.T) {
	w := openWorld(10, 10)
	p, in, cfg := newTestPlayer(Point{50, 50})

	in.Pressed[0] = Buttons{E: true}
	p.Update(w, in, cfg)
	if p.Color() != BrightMagenta {
		t.Fatalf("E should select bright-magenta, got %s", p.Color())
	}

	// Adding a second button switches to it; holding both keeps it.
	in.Pressed[0] = Buttons{E: true, W: true}
	p.Update(w, in, cfg)
	if p.Color() != BrightBlue {
		t.Fatalf("newly pressed W should select bright-blue, got %s", p.Color())
	}
	p.Update(w, in, cfg)
	if p.Color() != BrightBlue {
		t.Fatalf("held buttons should keep the colour, got %s", p.Color())
	}

	// Releasing one of two keeps the light on in its colour.
	in.Pressed[0] = Buttons{E: true}
	p.Update(w, in, cfg)
	if p.Color() != BrightBlue {
		t.Fatalf("light should stay bright-blue while E is held, got %s", p.Color())
	}

	in.Pressed[0] = Buttons{}
	p.Update(w, in, cfg)
	if p.Color() != ColorNone {
		t.Fatalf("light should go out with no button held, got %s", p.Color())
	}
	if b := p.Beacon(); b.Color != ColorNone || b.Target != p.AttractionTarget() {
		t.Fatalf("beacon should publish the dark light at the target, got %+v", b)
	}
}

func TestPlayer_ResetClearsScore(t *testing.T) {
	w := DefaultWorld()
	cfg := DefaultConfig()
	rng := NewRandom(3)
	p := NewPlayer(1, w, rng, &cfg)
	p.AddPoints(7)
	p.color = BrightGreen
	p.Reset(w, rng, &cfg)
	if p.Points() != 0 || p.Color() != ColorNone {
		t.Fatalf("reset should clear score and light, got %d %s", p.Points(), p.Color())
	}
	if w.IsBlocked(p.Position()) {
		t.Fatalf("reset placed the player in a wall at %+v", p.Position())
	}
}

func TestPlayer_DrawConeOnlyWhenLit(t *testing.T) {
	w := openWorld(20, 20)
	p, in, cfg := newTestPlayer(Point{50, 50})
	cam := NewCamera(320, 320)

	c := newRecordCanvas()
	p.Draw(c, cam)
	if c.triangles != 0 || len(c.circles) != 1 {
		t.Fatalf("dark lamp: expected 0 triangles and 1 circle, got %d and %d", c.triangles, len(c.circles))
	}

	in.Pressed[0] = Buttons{S: true}
	p.Update(w, in, cfg)
	c = newRecordCanvas()
	p.Draw(c, cam)
	if c.triangles != 1 {
		t.Fatalf("lit lamp should draw its cone, got %d triangles", c.triangles)
	}
}
