package game

import "testing"

func TestFloatingTextRisesAndExpires(t *testing.T) {
	ft := NewFloatingText("+3", Point{X: 50, Y: 100}, PaletteBrightGreen)
	for i := 1; i <= floatingTextLifetime; i++ {
		if !ft.Update() {
			t.Fatalf("text died early on frame %d", i)
		}
	}
	rise := 100 - ft.Position().Y
	if rise < 17 || rise > 19 {
		t.Errorf("rise after %d frames = %d, want ~18", floatingTextLifetime, rise)
	}
	if ft.Position().X != 50 {
		t.Errorf("text drifted sideways to x=%d", ft.Position().X)
	}
	if ft.Update() {
		t.Error("text still alive after its lifetime")
	}
}

func TestUpdateTextsDropsExpired(t *testing.T) {
	old := NewFloatingText("+1", Point{}, PaletteSoftRed)
	old.age = floatingTextLifetime
	fresh := NewFloatingText("+5", Point{}, PaletteBrightBlue)

	texts := updateTexts([]*FloatingText{old, fresh})
	if len(texts) != 1 || texts[0] != fresh {
		t.Fatalf("kept %d texts, want only the fresh one", len(texts))
	}
}

func TestFloatingTextDrawsShadowFirst(t *testing.T) {
	cam := NewCamera(480, 480)
	c := newRecordCanvas()
	NewFloatingText("+2", Point{X: 10, Y: 10}, PaletteBrightMagenta).Draw(c, cam)
	if len(c.texts) != 2 {
		t.Fatalf("drew %d texts, want shadow and label", len(c.texts))
	}
}
