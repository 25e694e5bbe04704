package game

import "testing"

// recordCanvas counts draw calls instead of rasterising.
type recordCanvas struct {
	clears    int
	points    []Point
	lines     int
	triangles int
	circles   []Point
	sprites   map[int]int
	texts     []string
}

func newRecordCanvas() *recordCanvas {
	return &recordCanvas{sprites: make(map[int]int)}
}

func (c *recordCanvas) Clear(Palette) { c.clears++ }
func (c *recordCanvas) DrawPoint(p Point, _ Palette) { c.points = append(c.points, p) }
func (c *recordCanvas) DrawLine(_, _ Point, _ Palette) { c.lines++ }
func (c *recordCanvas) DrawTriangle(_, _, _ Point, _ Palette) { c.triangles++ }
func (c *recordCanvas) DrawCircle(p Point, _ int, _, _ Palette) { c.circles = append(c.circles, p) }
func (c *recordCanvas) DrawSprite(index int, _ Point) { c.sprites[index]++ }
func (c *recordCanvas) DrawText(s string, _ Point, _ Palette) { c.texts = append(c.texts, s) }

// recordSound remembers every effect played.
type recordSound struct {
	played []string
}

func (s *recordSound) PlaySFX(name string) { s.played = append(s.played, name) }

// pondLevel is a walled field with a 2x2 goal pad at columns 4-5, rows 2-3
// (pixels 64..95 x 32..63).
var pondLevel = []string{
	"##########",
	"#........#",
	"#...GG...#",
	"#...GG...#",
	"#........#",
	"##########",
}

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}
