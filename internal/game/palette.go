package game

import "image/color"

// Palette is an index into the game's fixed 16-colour palette.
type Palette uint8

const (
	PaletteNone Palette = iota
	PaletteDarkGreen
	PaletteGreen
	PaletteLightGreen
	PaletteLightYellow
	PaletteYellow
	PaletteLightBrown
	PaletteBrown
	PaletteDarkPurple
	PaletteBlack
	PalettePurple
	PaletteLightPurple
	PaletteDarkBlue
	PaletteSoftRed
	PaletteBrightMagenta
	PaletteBrightGreen
	PaletteBrightBlue
	paletteCount // sentinel
)

var paletteRGBA = [paletteCount]color.RGBA{
	PaletteNone:          {R: 0, G: 0, B: 0, A: 0},
	PaletteDarkGreen:     {R: 0x21, G: 0x3b, B: 0x25, A: 255},
	PaletteGreen:         {R: 0x3a, G: 0x60, B: 0x4a, A: 255},
	PaletteLightGreen:    {R: 0x4f, G: 0x77, B: 0x54, A: 255},
	PaletteLightYellow:   {R: 0xa1, G: 0x9f, B: 0x7c, A: 255},
	PaletteYellow:        {R: 0x77, G: 0x74, B: 0x4f, A: 255},
	PaletteLightBrown:    {R: 0x77, G: 0x5c, B: 0x4f, A: 255},
	PaletteBrown:         {R: 0x60, G: 0x3b, B: 0x3a, A: 255},
	PaletteDarkPurple:    {R: 0x3b, G: 0x21, B: 0x37, A: 255},
	PaletteBlack:         {R: 0x17, G: 0x0e, B: 0x19, A: 255},
	PalettePurple:        {R: 0x2f, G: 0x21, B: 0x3b, A: 255},
	PaletteLightPurple:   {R: 0x43, G: 0x3a, B: 0x60, A: 255},
	PaletteDarkBlue:      {R: 0x4f, G: 0x52, B: 0x77, A: 255},
	PaletteSoftRed:       {R: 0xde, G: 0x5d, B: 0x49, A: 255},
	PaletteBrightMagenta: {R: 0xe5, G: 0x33, B: 0xe8, A: 255},
	PaletteBrightGreen:   {R: 0x70, G: 0xeb, B: 0x44, A: 255},
	PaletteBrightBlue:    {R: 0x43, G: 0xb1, B: 0xe8, A: 255},
}

// RGBA returns the display colour for the palette entry.
func (p Palette) RGBA() color.RGBA {
	if p >= paletteCount {
		return paletteRGBA[PaletteBlack]
	}
	return paletteRGBA[p]
}

// Faded scales the colour's alpha by brightness/255.
func (p Palette) Faded(brightness uint8) color.RGBA {
	c := p.RGBA()
	c.A = uint8(uint16(c.A) * uint16(brightness) / 255)
	// Premultiplied alpha: colour channels must not exceed alpha.
	c.R = uint8(uint16(c.R) * uint16(brightness) / 255)
	c.G = uint8(uint16(c.G) * uint16(brightness) / 255)
	c.B = uint8(uint16(c.B) * uint16(brightness) / 255)
	return c
}
