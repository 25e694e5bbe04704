package game

// Canvas is the drawing surface a frontend hands to the simulation. All
// positions are screen-space pixels; the simulation never rasterises itself.
type Canvas interface {
	Clear(c Palette)
	DrawPoint(p Point, c Palette)
	DrawLine(a, b Point, c Palette)
	DrawTriangle(a, b, c Point, fill Palette)
	// DrawCircle draws a circle whose bounding box starts at topLeft.
	DrawCircle(topLeft Point, diameter int, fill, stroke Palette)
	DrawSprite(index int, p Point)
	DrawText(s string, p Point, c Palette)
}

// SoundPlayer plays one-shot effects by name ("pling" on collection).
type SoundPlayer interface {
	PlaySFX(name string)
}

// ProgressRecorder receives badge progress when a match is won.
type ProgressRecorder interface {
	AddProgress(peer Peer, badge Badge, value int)
}

// Badge identifies a persistent achievement.
type Badge int

// BadgeWins counts matches won.
const BadgeWins Badge = 1

type nopSound struct{}

func (nopSound) PlaySFX(string) {}

type nopProgress struct{}

func (nopProgress) AddProgress(Peer, Badge, int) {}

// MemoryProgress keeps badge progress in memory, keyed by peer.
type MemoryProgress struct {
	Totals map[Peer]map[Badge]int
}

// NewMemoryProgress creates an empty in-memory recorder.
func NewMemoryProgress() *MemoryProgress {
	return &MemoryProgress{Totals: make(map[Peer]map[Badge]int)}
}

// AddProgress implements ProgressRecorder.
func (m *MemoryProgress) AddProgress(peer Peer, badge Badge, value int) {
	if m.Totals[peer] == nil {
		m.Totals[peer] = make(map[Badge]int)
	}
	m.Totals[peer][badge] += value
}

type spriteStyle struct {
	ground Palette
	blob   Palette
}

var spriteStyles = map[int]spriteStyle{
	SpriteGrass:    {ground: PaletteGreen},
	SpriteGrassAlt: {ground: PaletteLightGreen},
	SpritePath:     {ground: PaletteLightBrown},
	SpritePathAlt:  {ground: PaletteBrown},
	SpriteTree:     {ground: PaletteGreen, blob: PaletteDarkGreen},
	SpriteRock:     {ground: PaletteGreen, blob: PaletteDarkBlue},
	SpriteWall:     {ground: PaletteDarkPurple},
	SpriteWater:    {ground: PaletteDarkBlue},
	SpriteGoal:     {ground: PaletteYellow},
	SpriteGoalEdge: {ground: PaletteLightYellow},
}

// SpriteStyle returns the flat colours a frontend without a sprite sheet
// paints for a tile: the ground fill and an optional centred blob
// (PaletteNone when absent). Unknown indices paint as walls.
func SpriteStyle(index int) (ground, blob Palette) {
	st, ok := spriteStyles[index]
	if !ok {
		st = spriteStyles[SpriteWall]
	}
	return st.ground, st.blob
}
