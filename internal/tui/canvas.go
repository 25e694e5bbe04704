package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lampygame/lampy/internal/game"
)

// Terminal cells are taller than wide, so each cell samples a 2x4 pixel
// block and renders it as an upper half block: the top pixel row as the
// foreground and the middle row as the background.
const (
	cellPixelsX = 2
	cellPixelsY = 4
)

type overlayText struct {
	col, row int
	text     string
	color    game.Palette
}

// Canvas rasterises into a palette framebuffer at the logical screen size
// and flushes it to a tcell screen. Text is not rasterised; it is written
// as terminal runes at the cell covering its pixel position.
type Canvas struct {
	w, h  int
	pix   []game.Palette
	texts []overlayText
}

// NewCanvas allocates a framebuffer for a logical screen of the given size.
func NewCanvas(size game.Size) *Canvas {
	return &Canvas{w: size.W, h: size.H, pix: make([]game.Palette, size.W*size.H)}
}

// Cells returns the terminal size the canvas needs.
func (c *Canvas) Cells() (cols, rows int) {
	return (c.w + cellPixelsX - 1) / cellPixelsX, (c.h + cellPixelsY - 1) / cellPixelsY
}

// At returns the pixel at (x, y), PaletteNone when off-screen.
func (c *Canvas) At(x, y int) game.Palette {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return game.PaletteNone
	}
	return c.pix[y*c.w+x]
}

func (c *Canvas) set(x, y int, p game.Palette) {
	if p == game.PaletteNone || x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.pix[y*c.w+x] = p
}

func (c *Canvas) fillRect(x0, y0, w, h int, p game.Palette) {
	for y := max(y0, 0); y < min(y0+h, c.h); y++ {
		for x := max(x0, 0); x < min(x0+w, c.w); x++ {
			c.pix[y*c.w+x] = p
		}
	}
}

func (c *Canvas) Clear(p game.Palette) {
	for i := range c.pix {
		c.pix[i] = p
	}
	c.texts = c.texts[:0]
}

func (c *Canvas) DrawPoint(p game.Point, col game.Palette) {
	c.set(p.X, p.Y, col)
}

// DrawLine uses Bresenham; both endpoints are drawn.
func (c *Canvas) DrawLine(a, b game.Point, col game.Palette) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		c.set(x, y, col)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawTriangle fills every pixel whose centre lies inside or on the edges.
func (c *Canvas) DrawTriangle(a, b, d game.Point, fill game.Palette) {
	if fill == game.PaletteNone {
		return
	}
	minX := max(min(a.X, b.X, d.X), 0)
	maxX := min(max(a.X, b.X, d.X), c.w-1)
	minY := max(min(a.Y, b.Y, d.Y), 0)
	maxY := min(max(a.Y, b.Y, d.Y), c.h-1)
	area := edge(a, b, d)
	if area == 0 {
		c.DrawLine(a, b, fill)
		c.DrawLine(b, d, fill)
		return
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := game.Point{X: x, Y: y}
			w0, w1, w2 := edge(b, d, p), edge(d, a, p), edge(a, b, p)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				c.pix[y*c.w+x] = fill
			}
		}
	}
}

func (c *Canvas) DrawCircle(topLeft game.Point, diameter int, fill, stroke game.Palette) {
	if diameter <= 0 {
		return
	}
	// Doubled coordinates keep even diameters centred between pixels.
	r2 := diameter * diameter
	inner := (diameter - 2) * (diameter - 2)
	cx2 := 2*topLeft.X + diameter - 1
	cy2 := 2*topLeft.Y + diameter - 1
	for y := topLeft.Y; y < topLeft.Y+diameter; y++ {
		for x := topLeft.X; x < topLeft.X+diameter; x++ {
			dx, dy := 2*x-cx2, 2*y-cy2
			d := dx*dx + dy*dy
			switch {
			case d > r2:
			case d > inner && stroke != game.PaletteNone:
				c.set(x, y, stroke)
			default:
				c.set(x, y, fill)
			}
		}
	}
}

func (c *Canvas) DrawSprite(index int, p game.Point) {
	ground, blob := game.SpriteStyle(index)
	c.fillRect(p.X, p.Y, game.TileWidth, game.TileHeight, ground)
	if blob != game.PaletteNone {
		inset := 3
		c.DrawCircle(game.Point{X: p.X + inset, Y: p.Y + inset}, game.TileWidth-2*inset, blob, game.PaletteNone)
	}
}

func (c *Canvas) DrawText(s string, p game.Point, col game.Palette) {
	if col == game.PaletteBlack {
		// Drop shadows are meaningless at cell resolution.
		return
	}
	c.texts = append(c.texts, overlayText{col: p.X / cellPixelsX, row: p.Y / cellPixelsY, text: s, color: col})
}

// Flush writes the framebuffer to screen and shows it.
func (c *Canvas) Flush(screen tcell.Screen) {
	cols, rows := c.Cells()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := col*cellPixelsX, row*cellPixelsY
			top := c.At(x, y)
			bottom := c.At(x, y+cellPixelsY/2)
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(col, row, '▀', nil, style)
		}
	}
	for _, t := range c.texts {
		x := t.col
		for _, r := range t.text {
			if x >= cols {
				break
			}
			bg := c.At(x*cellPixelsX, t.row*cellPixelsY+cellPixelsY/2)
			style := tcell.StyleDefault.Foreground(tcellColor(t.color)).Background(tcellColor(bg)).Bold(true)
			screen.SetContent(x, t.row, r, nil, style)
			x++
		}
	}
	screen.Show()
}

func tcellColor(p game.Palette) tcell.Color {
	if p == game.PaletteNone {
		return tcell.ColorBlack
	}
	rgba := p.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// edge is twice the signed area of (a, b, p).
func edge(a, b, p game.Point) int {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
