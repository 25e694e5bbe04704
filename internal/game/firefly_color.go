package game

// FireflyColor is both a firefly's colour and the colour of a player's light.
type FireflyColor uint8

const (
	ColorNone FireflyColor = iota
	SoftRed
	BrightMagenta
	BrightGreen
	BrightBlue
	fireflyColorCount // sentinel
)

type fireflyColorInfo struct {
	name    string
	palette Palette
	points  int
	weight  int // relative spawn weight
}

var fireflyColors = [fireflyColorCount]fireflyColorInfo{
	ColorNone:     {name: "none", palette: PaletteBlack, points: 0, weight: 0},
	SoftRed:       {name: "soft-red", palette: PaletteSoftRed, points: 1, weight: 40},
	BrightMagenta: {name: "bright-magenta", palette: PaletteBrightMagenta, points: 2, weight: 30},
	BrightGreen:   {name: "bright-green", palette: PaletteBrightGreen, points: 3, weight: 20},
	BrightBlue:    {name: "bright-blue", palette: PaletteBrightBlue, points: 5, weight: 10},
}

func (c FireflyColor) info() fireflyColorInfo {
	if c >= fireflyColorCount {
		return fireflyColors[ColorNone]
	}
	return fireflyColors[c]
}

// String returns a short name for logs.
func (c FireflyColor) String() string { return c.info().name }

// Palette returns the render colour.
func (c FireflyColor) Palette() Palette { return c.info().palette }

// Points returns the score awarded when a firefly of this colour is collected.
func (c FireflyColor) Points() int { return c.info().points }

// SpawnRegion returns the part of the world where fireflies of this colour
// appear: one quadrant per colour, inset by a tile from the edges.
func (c FireflyColor) SpawnRegion(w *World) Rect {
	s := w.PixelSize()
	halfW, halfH := s.W/2, s.H/2
	qw := max(0, halfW-TileWidth)
	qh := max(0, halfH-TileHeight)
	switch c {
	case SoftRed:
		return NewRect(TileWidth, TileHeight, qw, qh)
	case BrightMagenta:
		return NewRect(halfW, TileHeight, qw, qh)
	case BrightGreen:
		return NewRect(TileWidth, halfH, qw, qh)
	case BrightBlue:
		return NewRect(halfW, halfH, qw, qh)
	default:
		return w.Bounds()
	}
}

// RandomFireflyColor picks a colour by spawn weight; rarer colours score more.
func RandomFireflyColor(rng *Random) FireflyColor {
	total := 0
	for c := SoftRed; c < fireflyColorCount; c++ {
		total += fireflyColors[c].weight
	}
	roll := rng.Range(0, total-1)
	for c := SoftRed; c < fireflyColorCount; c++ {
		roll -= fireflyColors[c].weight
		if roll < 0 {
			return c
		}
	}
	return SoftRed
}

// FireflyColors returns every scoring colour in spawn-weight order.
func FireflyColors() []FireflyColor {
	out := make([]FireflyColor, 0, fireflyColorCount-1)
	for c := SoftRed; c < fireflyColorCount; c++ {
		out = append(out, c)
	}
	return out
}
