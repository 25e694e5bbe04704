package game

import "testing"

// arenaLevel is an open field with a 2x2 goal in the middle.
var arenaLevel = []string{
	"################",
	"#..............#",
	"#..............#",
	"#......GG......#",
	"#......GG......#",
	"#..............#",
	"#..............#",
	"################",
}

// refill keeps a few fireflies around so a bot that loses one at the goal
// has another to chase.
func refill(c *Config) {
	c.SpawnChancePct = 2
	c.MaxFireflies = 4
}

func TestAutoPilotLeadsAFireflyHome(t *testing.T) {
	ts := NewTestSim(
		WithLevel(arenaLevel...),
		WithSeed(5),
		WithTuning(refill),
		WithBot(0),
		WithFirefly(BrightMagenta, 40, 30, 45),
	)
	tick := ts.RunUntil(func(ts *TestSim) bool { return ts.Sim.Stats().TotalCollected() >= 1 }, 6000)
	if tick < 0 {
		dumpLog(t, ts)
		t.Fatalf("bot never scored: %s", ts.Snapshot())
	}
	t.Logf("bot scored at T=%d", tick)

	if ts.Player(0).Points() == 0 {
		t.Error("collection not credited to the bot")
	}
	t.Log(ts.Sim.Stats().Format())
}

func TestAutoPilotPassesThroughOtherPeers(t *testing.T) {
	base := NewScriptedInput()
	base.Pressed[1] = Buttons{S: true}
	base.Pads[1] = Pad{Bearing: AngleFromDegrees(90), Magnitude: 500}
	ap := NewAutoPilot(base, 0)

	if b := ap.Buttons(1); !b.S {
		t.Errorf("peer 1 buttons = %+v, want S from the base input", b)
	}
	if pad, ok := ap.Pad(1); !ok || pad.Magnitude != 500 {
		t.Errorf("peer 1 pad = %+v, %v", pad, ok)
	}
	// Not attached yet: the bot idles.
	if pad, ok := ap.Pad(0); !ok || pad.Magnitude != 0 {
		t.Errorf("detached bot pad = %+v, %v", pad, ok)
	}
}

func TestAutoPilotToggle(t *testing.T) {
	ap := NewAutoPilot(nil)
	if ap.Enabled(0) {
		t.Fatal("bot enabled without being asked")
	}
	ap.Enable(0, true)
	if !ap.Enabled(0) {
		t.Fatal("Enable(true) had no effect")
	}
	ap.Enable(0, false)
	if ap.Enabled(0) {
		t.Fatal("Enable(false) had no effect")
	}
	if b := ap.Buttons(0); b.Any() {
		t.Errorf("disabled bot with nil base pressed %+v", b)
	}
}

func TestAutoPilotRestartsAfterGameOver(t *testing.T) {
	ts := NewTestSim(
		WithLevel(arenaLevel...),
		WithTuning(refill),
		WithTuning(func(c *Config) { c.WinPoints = 1 }),
		WithBot(0),
		WithFirefly(SoftRed, 40, 30, 0),
	)
	if ts.RunUntil(func(ts *TestSim) bool { return ts.Sim.Phase() == PhaseGameOver }, 6000) < 0 {
		dumpLog(t, ts)
		t.Fatal("bot never won")
	}
	if ts.RunUntil(func(ts *TestSim) bool { return ts.Sim.Phase() == PhasePlaying }, 10) < 0 {
		t.Fatal("bot did not restart the match")
	}
	if ts.Sim.Stats().Restarts != 1 {
		t.Errorf("restarts = %d", ts.Sim.Stats().Restarts)
	}
}
