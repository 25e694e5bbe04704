package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// ebitenCanvas draws onto an ebiten image. Tiles are painted as flat
// palette shapes; there is no sprite sheet.
type ebitenCanvas struct {
	dst  *ebiten.Image
	face *text.GoXFace
}

func newEbitenCanvas() *ebitenCanvas {
	return &ebitenCanvas{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (c *ebitenCanvas) Clear(p Palette) {
	c.dst.Fill(p.RGBA())
}

func (c *ebitenCanvas) DrawPoint(p Point, col Palette) {
	if col == PaletteNone {
		return
	}
	vector.FillRect(c.dst, float32(p.X), float32(p.Y), 1, 1, col.RGBA(), false)
}

func (c *ebitenCanvas) DrawLine(a, b Point, col Palette) {
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, col.RGBA(), false)
}

func (c *ebitenCanvas) DrawTriangle(a, b, d Point, fill Palette) {
	var path vector.Path
	path.MoveTo(float32(a.X), float32(a.Y))
	path.LineTo(float32(b.X), float32(b.Y))
	path.LineTo(float32(d.X), float32(d.Y))
	path.Close()
	opts := &vector.DrawPathOptions{}
	opts.ColorScale.ScaleWithColor(fill.RGBA())
	vector.FillPath(c.dst, &path, &vector.FillOptions{}, opts)
}

func (c *ebitenCanvas) DrawCircle(topLeft Point, diameter int, fill, stroke Palette) {
	r := float32(diameter) / 2
	cx := float32(topLeft.X) + r
	cy := float32(topLeft.Y) + r
	if fill != PaletteNone {
		vector.FillCircle(c.dst, cx, cy, r, fill.RGBA(), true)
	}
	if stroke != PaletteNone && stroke != fill {
		vector.StrokeCircle(c.dst, cx, cy, r, 1, stroke.RGBA(), true)
	}
}

func (c *ebitenCanvas) DrawSprite(index int, p Point) {
	ground, blob := SpriteStyle(index)
	x, y := float32(p.X), float32(p.Y)
	vector.FillRect(c.dst, x, y, TileWidth, TileHeight, ground.RGBA(), false)
	if blob != PaletteNone {
		vector.FillCircle(c.dst, x+TileWidth/2, y+TileHeight/2, TileWidth/2-2, blob.RGBA(), true)
	}
}

func (c *ebitenCanvas) DrawText(s string, p Point, col Palette) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	op.ColorScale.ScaleWithColor(col.RGBA())
	text.Draw(c.dst, s, c.face, op)
}
