package game

import "testing"

func TestNewWorldFromGrid_RaggedRows(t *testing.T) {
	w := NewWorldFromGrid([][]int{
		{SpriteGrass, SpriteGrass, SpriteGrass},
		{SpriteGrass},
		{SpriteGrass, SpriteGrass, SpriteGrass, SpriteGoal},
	})
	if w.Width() != 3 || w.Height() != 3 {
		t.Fatalf("expected 3x3, got %dx%d", w.Width(), w.Height())
	}
	if !w.TileAt(1, 1).Solid {
		t.Fatal("short row should be padded with solid tiles")
	}
	if w.TileAt(3, 2) != nil {
		t.Fatal("long row should be truncated to the first row's width")
	}
	if s := w.PixelSize(); s != (Size{W: 48, H: 48}) {
		t.Fatalf("expected 48x48 pixels, got %+v", s)
	}
}

func TestNewWorldFromGrid_Empty(t *testing.T) {
	w := NewWorldFromGrid(nil)
	if w.Width() != 0 || w.Height() != 0 {
		t.Fatalf("expected empty world, got %dx%d", w.Width(), w.Height())
	}
	if w.IsBlocked(Point{0, 0}) || w.IsInGoal(Point{0, 0}) {
		t.Fatal("queries on an empty world should report open and not goal")
	}
	cam := NewCamera(0, 0)
	for range w.TilesInView(cam) {
		t.Fatal("empty world should yield no tiles")
	}
}

func TestWorld_Classification(t *testing.T) {
	w := NewWorldFromGrid(GridFromGlyphs(pondLevel))
	cases := []struct {
		p       Point
		blocked bool
		goal    bool
	}{
		{Point{0, 0}, true, false},     // border wall
		{Point{20, 20}, false, false},  // grass
		{Point{64, 32}, false, true},   // goal corner
		{Point{95, 63}, false, true},   // last goal pixel
		{Point{96, 63}, false, false},  // just past the pad
		{Point{-1, 20}, false, false},  // off-grid is open
		{Point{20, 999}, false, false}, // off-grid is open
	}
	for _, c := range cases {
		if got := w.IsBlocked(c.p); got != c.blocked {
			t.Errorf("IsBlocked(%+v)=%v, want %v", c.p, got, c.blocked)
		}
		if got := w.IsInGoal(c.p); got != c.goal {
			t.Errorf("IsInGoal(%+v)=%v, want %v", c.p, got, c.goal)
		}
	}
}

func TestGridFromGlyphs_UnknownIsWall(t *testing.T) {
	rows := GridFromGlyphs([]string{".?G"})
	if rows[0][0] != SpriteGrass || rows[0][1] != SpriteWall || rows[0][2] != SpriteGoal {
		t.Fatalf("unexpected decode %v", rows[0])
	}
}

func TestRandomUnblockedPointInRect_NeverBlocked(t *testing.T) {
	w := DefaultWorld()
	rng := NewRandom(7)
	for _, c := range FireflyColors() {
		r := c.SpawnRegion(w)
		for i := 0; i < 200; i++ {
			p := w.RandomUnblockedPointInRect(rng, r)
			if w.IsBlocked(p) {
				t.Fatalf("%s spawn %+v is blocked", c, p)
			}
			if !r.Contains(p) {
				t.Fatalf("%s spawn %+v outside region %+v", c, p, r)
			}
		}
	}
}

func TestRandomUnblockedPointInRect_ScanFallback(t *testing.T) {
	// One open tile in a field of walls: sampling will mostly miss, and the
	// scan must still find it.
	w := NewWorldFromGrid(GridFromGlyphs([]string{
		"####",
		"####",
		"###.",
	}))
	rng := NewRandom(3)
	for i := 0; i < 20; i++ {
		p := w.RandomUnblockedPointInRect(rng, w.Bounds())
		if w.IsBlocked(p) {
			t.Fatalf("expected an open pixel, got %+v", p)
		}
	}
}

func TestRandomUnblockedPointInRect_AllSolidReturnsClampedCentre(t *testing.T) {
	w := NewWorldFromGrid(GridFromGlyphs([]string{"###", "###", "###"}))
	p := w.RandomUnblockedPointInRect(NewRandom(1), NewRect(0, 0, 100, 100))
	if p != (Point{47, 47}) {
		t.Fatalf("expected centre clamped to (47,47), got %+v", p)
	}
}

func TestRandomUnblockedPointInRect_StaysInsideWorld(t *testing.T) {
	w := NewWorldFromGrid(GridFromGlyphs([]string{"#..", "...", "..."}))
	rng := NewRandom(5)
	r := NewRect(-40, -40, 200, 200)
	for i := 0; i < 500; i++ {
		p := w.RandomUnblockedPointInRect(rng, r)
		if !w.Bounds().Contains(p) || w.IsBlocked(p) {
			t.Fatalf("sample %d landed at %+v", i, p)
		}
	}

	// Entirely off the grid: straight to the clamped centre.
	p := w.RandomUnblockedPointInRect(rng, NewRect(100, 100, 20, 20))
	if p != (Point{47, 47}) {
		t.Fatalf("off-grid rect should fall back to (47,47), got %+v", p)
	}
}

func TestRect_Intersect(t *testing.T) {
	got := NewRect(0, 0, 10, 10).Intersect(NewRect(5, -3, 10, 6))
	if got != NewRect(5, 0, 5, 3) {
		t.Errorf("overlap = %+v", got)
	}
	if e := NewRect(0, 0, 4, 4).Intersect(NewRect(4, 0, 4, 4)); e.W != 0 || e.H != 0 {
		t.Errorf("touching rects should not overlap, got %+v", e)
	}
}

func TestTilesInView_CountsAndScreenPositions(t *testing.T) {
	w := DefaultWorld()
	size := w.PixelSize()
	cam := NewCamera(size.W, size.H)

	n := 0
	for tile, sp := range w.TilesInView(cam) {
		if sp != tile.Position {
			t.Fatalf("at origin screen and world positions should match, got %+v vs %+v", sp, tile.Position)
		}
		n++
	}
	if n != 15*10 {
		t.Fatalf("expected 150 tiles at the origin, got %d", n)
	}

	cam.SetPosition(Point{8, 8})
	n = 0
	for tile, sp := range w.TilesInView(cam) {
		if sp != tile.Position.Sub(Point{8, 8}) {
			t.Fatalf("screen position should be offset by the camera, got %+v", sp)
		}
		n++
	}
	if n != 16*11 {
		t.Fatalf("expected 176 partially visible tiles, got %d", n)
	}
}

func TestWorld_DrawOnlyVisibleTiles(t *testing.T) {
	w := DefaultWorld()
	size := w.PixelSize()
	cam := NewCamera(size.W, size.H)
	c := newRecordCanvas()
	w.Draw(c, cam)
	total := 0
	for _, n := range c.sprites {
		total += n
	}
	if total != 150 {
		t.Fatalf("expected 150 sprite draws, got %d", total)
	}
}

func TestGoalCenter(t *testing.T) {
	w := NewWorldFromGrid(GridFromGlyphs(pondLevel))
	c, ok := w.GoalCenter()
	if !ok {
		t.Fatal("pond level has a goal")
	}
	if c != (Point{80, 48}) {
		t.Fatalf("expected goal centre (80,48), got %+v", c)
	}
	if _, ok := NewWorldFromGrid(GridFromGlyphs([]string{"..."})).GoalCenter(); ok {
		t.Fatal("world without goal tiles should report false")
	}
}
