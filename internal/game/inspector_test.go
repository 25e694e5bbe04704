package game

import (
	"strings"
	"testing"
)

func TestInspectorSelectsNearestFirefly(t *testing.T) {
	ts := NewTestSim(
		WithLevel(pondLevel...),
		WithPlayer(0, 60, 48),
		WithFirefly(BrightGreen, 30, 30, 0),
		WithFirefly(BrightBlue, 36, 30, 0),
	)
	cam := ts.Sim.Camera()
	var in Inspector

	if !in.Select(ts.Sim, cam.WorldToScreen(Point{X: 35, Y: 31})) {
		t.Fatal("click next to a firefly selected nothing")
	}
	f := in.Selected(ts.Sim)
	if f == nil || f.Color() != BrightBlue {
		t.Fatalf("selected %v, want the blue firefly", f)
	}

	if in.Select(ts.Sim, cam.WorldToScreen(Point{X: 130, Y: 70})) {
		t.Error("click on empty grass selected a firefly")
	}
	if in.Selected(ts.Sim) != nil {
		t.Error("selection kept after clicking empty space")
	}
}

func TestInspectorLines(t *testing.T) {
	ts := NewTestSim(
		WithLevel(pondLevel...),
		WithPlayer(0, 60, 48),
		WithFirefly(SoftRed, 110, 48, 0),
	)
	ts.Hold(0, Buttons{N: true})
	ts.RunTicks(1)

	var in Inspector
	if !in.Select(ts.Sim, ts.Sim.Camera().WorldToScreen(Point{X: 109, Y: 48})) {
		t.Fatal("firefly not picked")
	}
	f := in.Selected(ts.Sim)
	curated := strings.Join(in.Lines(ts.Sim, f), "\n")
	if !strings.Contains(curated, "led by P0") {
		t.Errorf("curated view:\n%s", curated)
	}

	in.ToggleView()
	raw := strings.Join(in.Lines(ts.Sim, f), "\n")
	if !strings.Contains(raw, "att=true tgt=(80,48)") {
		t.Errorf("raw view:\n%s", raw)
	}

	// The firefly is collected and drops out of the inspector.
	ts.RunUntil(func(ts *TestSim) bool { return ts.Sim.Flock().Len() == 0 }, 60)
	if in.Selected(ts.Sim) != nil {
		t.Error("collected firefly still selected")
	}
}

func TestSelectionDoesNotSurviveRestart(t *testing.T) {
	ts := NewTestSim(
		WithLevel(pondLevel...),
		WithPlayer(0, 60, 48),
		WithFirefly(BrightGreen, 30, 30, 0),
	)
	var in Inspector
	if !in.Select(ts.Sim, ts.Sim.Camera().WorldToScreen(Point{X: 30, Y: 30})) {
		t.Fatal("nothing selected")
	}
	old := in.Selected(ts.Sim).ID

	ts.Sim.Restart()
	f := ts.AddFirefly(SoftRed, Point{X: 30, Y: 30}, 0)
	if f.ID <= old {
		t.Fatalf("firefly after restart reused ID %d (old %d)", f.ID, old)
	}
	if got := in.Selected(ts.Sim); got != nil {
		t.Fatalf("stale selection now points at F%d", got.ID)
	}
}
