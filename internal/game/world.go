package game

import "iter"

// Tile dimensions in pixels.
const (
	TileWidth  = 16
	TileHeight = 16
)

// maxSpawnAttempts bounds rejection sampling before falling back to a scan.
const maxSpawnAttempts = 64

// Sprite indices with gameplay meaning.
const (
	SpriteGrass    = 0
	SpriteGrassAlt = 1
	SpritePath     = 2
	SpritePathAlt  = 3
	SpriteTree     = 4
	SpriteRock     = 5
	SpriteWall     = 6
	SpriteWater    = 7
	SpriteGoal     = 8
	SpriteGoalEdge = 9
)

// spriteIsOpen returns true for sprite indices agents can walk over.
func spriteIsOpen(index int) bool {
	switch index {
	case SpriteGrass, SpriteGrassAlt, SpritePath, SpritePathAlt, SpriteGoal, SpriteGoalEdge:
		return true
	default:
		return false
	}
}

// spriteIsGoal returns true for sprite indices that score fireflies.
func spriteIsGoal(index int) bool {
	return index == SpriteGoal || index == SpriteGoalEdge
}

// Tile is one cell of the world grid. Classification is derived from the
// sprite index once, at construction.
type Tile struct {
	Position    Point // pixel top-left of the cell
	SpriteIndex int
	Solid       bool
	Goal        bool
}

func newTile(col, row, sprite int) Tile {
	return Tile{
		Position:    Point{X: col * TileWidth, Y: row * TileHeight},
		SpriteIndex: sprite,
		Solid:       !spriteIsOpen(sprite),
		Goal:        spriteIsGoal(sprite),
	}
}

// World is the static tile grid. It is read-only after construction.
type World struct {
	tiles  []Tile // row-major: index = row*width + col
	width  int    // in tiles
	height int    // in tiles
}

// NewWorldFromGrid builds a world from rows of sprite indices. The first row
// fixes the width; shorter rows are padded with walls and longer rows are
// truncated. Empty input yields a zero-sized world.
func NewWorldFromGrid(rows [][]int) *World {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &World{}
	}
	width := len(rows[0])
	height := len(rows)
	tiles := make([]Tile, 0, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			sprite := SpriteWall
			if col < len(rows[row]) {
				sprite = rows[row][col]
			}
			tiles = append(tiles, newTile(col, row, sprite))
		}
	}
	return &World{tiles: tiles, width: width, height: height}
}

// Width returns the grid width in tiles.
func (w *World) Width() int { return w.width }

// Height returns the grid height in tiles.
func (w *World) Height() int { return w.height }

// PixelSize returns the world extent in pixels.
func (w *World) PixelSize() Size {
	return Size{W: w.width * TileWidth, H: w.height * TileHeight}
}

// Bounds returns the world as a pixel rectangle.
func (w *World) Bounds() Rect {
	s := w.PixelSize()
	return NewRect(0, 0, s.W, s.H)
}

func (w *World) inBounds(col, row int) bool {
	return col >= 0 && col < w.width && row >= 0 && row < w.height
}

// TileAt returns the tile at grid coordinates, or nil when off-grid.
func (w *World) TileAt(col, row int) *Tile {
	if !w.inBounds(col, row) {
		return nil
	}
	return &w.tiles[row*w.width+col]
}

// tileAtPoint converts a pixel position to its tile. Negative pixels are
// off-grid rather than rounding into column or row zero.
func (w *World) tileAtPoint(p Point) *Tile {
	if p.X < 0 || p.Y < 0 {
		return nil
	}
	return w.TileAt(p.X/TileWidth, p.Y/TileHeight)
}

// IsBlocked reports whether the pixel lies in a solid tile. Off-grid points
// are open; the pixel bounds clamp done by movers is the real boundary.
func (w *World) IsBlocked(p Point) bool {
	t := w.tileAtPoint(p)
	return t != nil && t.Solid
}

// IsInGoal reports whether the pixel lies in a goal tile. Off-grid is false.
func (w *World) IsInGoal(p Point) bool {
	t := w.tileAtPoint(p)
	return t != nil && t.Goal
}

// ClampPoint limits p to the world pixel area.
func (w *World) ClampPoint(p Point) Point {
	s := w.PixelSize()
	return Point{X: clamp(p.X, 0, max(0, s.W-1)), Y: clamp(p.Y, 0, max(0, s.H-1))}
}

// RandomUnblockedPoint samples an open pixel anywhere in the world.
func (w *World) RandomUnblockedPoint(rng *Random) Point {
	return w.RandomUnblockedPointInRect(rng, w.Bounds())
}

// RandomUnblockedPointInRect draws uniform points inside the part of r that
// lies in the world until one is not blocked. After maxSpawnAttempts it scans
// the tiles under that area and returns the centre of the first open one; if
// there is none it returns the centre of r clamped into the world.
func (w *World) RandomUnblockedPointInRect(rng *Random, r Rect) Point {
	if area := r.Intersect(w.Bounds()); area.W > 0 && area.H > 0 {
		br := area.BottomRight()
		for i := 0; i < maxSpawnAttempts; i++ {
			p := Point{X: rng.Range(area.Min.X, br.X), Y: rng.Range(area.Min.Y, br.Y)}
			if !w.IsBlocked(p) {
				return p
			}
		}
		for row := floorDivTile(area.Min.Y, TileHeight); row <= floorDivTile(br.Y, TileHeight); row++ {
			for col := floorDivTile(area.Min.X, TileWidth); col <= floorDivTile(br.X, TileWidth); col++ {
				t := w.TileAt(col, row)
				if t == nil || t.Solid {
					continue
				}
				c := Point{X: t.Position.X + TileWidth/2, Y: t.Position.Y + TileHeight/2}
				if area.Contains(c) {
					return c
				}
			}
		}
	}
	return w.ClampPoint(r.Center())
}

// TilesInView yields every tile overlapping the camera viewport together with
// its screen position.
func (w *World) TilesInView(cam *Camera) iter.Seq2[Tile, Point] {
	return func(yield func(Tile, Point) bool) {
		view := cam.Viewport()
		c0 := max(0, floorDivTile(view.Min.X, TileWidth))
		r0 := max(0, floorDivTile(view.Min.Y, TileHeight))
		c1 := min(w.width-1, floorDivTile(view.Min.X+view.W-1, TileWidth))
		r1 := min(w.height-1, floorDivTile(view.Min.Y+view.H-1, TileHeight))
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				t := w.tiles[row*w.width+col]
				if !yield(t, cam.WorldToScreen(t.Position)) {
					return
				}
			}
		}
	}
}

// Draw blits every visible tile.
func (w *World) Draw(canvas Canvas, cam *Camera) {
	for t, p := range w.TilesInView(cam) {
		canvas.DrawSprite(t.SpriteIndex, p)
	}
}

// floorDivTile performs floor division so negative pixels map to negative tiles.
func floorDivTile(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}

// GoalCenter returns the mean centre of all goal tiles. The second value is
// false when the world has no goal.
func (w *World) GoalCenter() (Point, bool) {
	var sx, sy, n int
	for _, t := range w.tiles {
		if !t.Goal {
			continue
		}
		sx += t.Position.X + TileWidth/2
		sy += t.Position.Y + TileHeight/2
		n++
	}
	if n == 0 {
		return Point{}, false
	}
	return Point{X: sx / n, Y: sy / n}, true
}
