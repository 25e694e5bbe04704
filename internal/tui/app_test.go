package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lampygame/lampy/internal/game"
)

func newTestApp(t *testing.T, bot bool) *App {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 40)

	cfg := game.DefaultConfig()
	cfg.Seed = 11
	return NewApp(screen, Options{Config: cfg, Bot: bot})
}

func TestAppStepAdvancesAndPauses(t *testing.T) {
	a := newTestApp(t, false)
	a.Step()
	a.Step()
	if a.Sim().Tick() != 2 {
		t.Fatalf("tick = %d, want 2", a.Sim().Tick())
	}

	a.handleKey(tcell.KeyRune, 'p')
	a.Step()
	if a.Sim().Tick() != 2 {
		t.Error("paused app kept ticking")
	}
	a.handleKey(tcell.KeyRune, 'p')
	a.Step()
	if a.Sim().Tick() != 3 {
		t.Error("unpause did not resume")
	}
}

func TestAppQuitKeys(t *testing.T) {
	a := newTestApp(t, false)
	if !a.handleKey(tcell.KeyRune, 'w') {
		t.Error("movement key ended the app")
	}
	if a.handleKey(tcell.KeyRune, 'q') {
		t.Error("q did not quit")
	}
	if a.handleKey(tcell.KeyEscape, 0) {
		t.Error("Esc did not quit")
	}
}

func TestAppBotToggleAndRestart(t *testing.T) {
	a := newTestApp(t, true)
	if !a.pilot.Enabled(0) {
		t.Fatal("bot option ignored")
	}
	a.handleKey(tcell.KeyRune, 'b')
	if a.pilot.Enabled(0) {
		t.Error("b did not switch the bot off")
	}
	a.handleKey(tcell.KeyRune, 'r')
	if a.Sim().Stats().Restarts != 1 {
		t.Errorf("restarts = %d", a.Sim().Stats().Restarts)
	}
}
