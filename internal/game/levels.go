package game

// glyphSprites maps level glyphs to sprite indices.
var glyphSprites = map[rune]int{
	'.': SpriteGrass,
	',': SpriteGrassAlt,
	'=': SpritePath,
	'-': SpritePathAlt,
	'T': SpriteTree,
	'o': SpriteRock,
	'#': SpriteWall,
	'~': SpriteWater,
	'G': SpriteGoal,
	'g': SpriteGoalEdge,
}

// GridFromGlyphs decodes a level drawn with one glyph per tile. Unknown
// glyphs become walls.
func GridFromGlyphs(lines []string) [][]int {
	rows := make([][]int, 0, len(lines))
	for _, line := range lines {
		row := make([]int, 0, len(line))
		for _, r := range line {
			sprite, ok := glyphSprites[r]
			if !ok {
				sprite = SpriteWall
			}
			row = append(row, sprite)
		}
		rows = append(rows, row)
	}
	return rows
}

// defaultLevel is the 30x30 meadow with the score pad in the middle.
var defaultLevel = []string{
	"##############################",
	"#....,....T.......,....T.....#",
	"#.TT.....,....~~~.......,..o.#",
	"#.T...=========~~.====......,#",
	"#.....=...,...~~..=..T.......#",
	"#..o..=.......~...=......TT..#",
	"#.....=..TT.......=....,..T..#",
	"#.,...=...T...o...=..........#",
	"#.....====-====...====....o..#",
	"#..~~.....=.....,....=.......#",
	"#..~~~....=..T.......=...,...#",
	"#...~.....=.......T..=.......#",
	"#.T.......=....####..=..TT...#",
	"#.....o...=....#..#..=...T...#",
	"#.,.......==ggggggggg=.......#",
	"#....T.....-gGGGGGGGg-.......#",
	"#..........=gGGGGGGGg=..o....#",
	"#...TT.....=ggggggggg=.......#",
	"#....T.....=.........=...,...#",
	"#..........=...T.....=.......#",
	"#.o....,...=.........=..~~...#",
	"#..........=====-=====..~~~..#",
	"#....TT.......=.........~~...#",
	"#.....T..,....=....o.........#",
	"#.............=.....,....T...#",
	"#..~~...o.....=..T.......TT..#",
	"#..~~~........=.........,....#",
	"#.,.....T..........o.........#",
	"#......TT....,.........T.....#",
	"##############################",
}

// DefaultLevel returns the built-in level grid.
func DefaultLevel() [][]int {
	return GridFromGlyphs(defaultLevel)
}

// DefaultWorld builds the built-in level.
func DefaultWorld() *World {
	return NewWorldFromGrid(DefaultLevel())
}
