// Package tui runs a match in a terminal through tcell.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lampygame/lampy/internal/game"
)

// frameInterval is ~60 FPS, matching the window frontend's tick rate.
const frameInterval = 16 * time.Millisecond

// Options configures an App.
type Options struct {
	Config  game.Config
	Sound   game.SoundPlayer
	Logger  *zap.SugaredLogger
	Bot     bool
	Verbose bool
}

// App is a single-player match drawn into a terminal.
type App struct {
	screen tcell.Screen
	sim    *game.Sim
	canvas *Canvas
	input  *Input
	pilot  *game.AutoPilot
	log    *zap.SugaredLogger
	paused bool
}

// NewApp builds an App around an initialised screen.
func NewApp(screen tcell.Screen, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	a := &App{
		screen: screen,
		input:  NewInput(0),
		log:    opts.Logger,
	}
	a.pilot = game.NewAutoPilot(a.input)
	simOpts := []game.Option{
		game.WithConfig(opts.Config),
		game.WithPeers(0),
		game.WithLocalPeer(0),
		game.WithInput(a.pilot),
		game.WithLogger(opts.Logger),
		game.WithSimLog(game.NewSimLog(opts.Verbose)),
	}
	if opts.Sound != nil {
		simOpts = append(simOpts, game.WithSound(opts.Sound))
	}
	a.sim = game.NewSim(simOpts...)
	a.pilot.Attach(a.sim)
	a.pilot.Enable(0, opts.Bot)
	a.canvas = NewCanvas(a.sim.Camera().Screen())
	return a
}

// Sim returns the running match.
func (a *App) Sim() *game.Sim { return a.sim }

// Run polls input on its own goroutine and steps the match on a ticker
// until the player quits or the screen closes.
func (a *App) Run() error {
	cols, rows := a.canvas.Cells()
	if w, h := a.screen.Size(); w < cols || h < rows {
		a.log.Warnw("terminal smaller than the playfield", "have", fmt.Sprintf("%dx%d", w, h),
			"want", fmt.Sprintf("%dx%d", cols, rows))
	}

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Step()
		}
	}
}

// Step advances one frame and redraws.
func (a *App) Step() {
	if !a.paused {
		a.sim.Update()
	}
	a.input.Advance()
	a.sim.Draw(a.canvas)
	if a.paused {
		a.canvas.DrawText("PAUSED", game.Point{X: 2, Y: 14}, game.PaletteLightYellow)
	}
	a.canvas.Flush(a.screen)
}

// handleEvent returns false when the app should exit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return false
	}
	if a.input.press(key, r) || key != tcell.KeyRune {
		return true
	}
	switch r {
	case 'q':
		return false
	case 'p':
		a.paused = !a.paused
	case 'r':
		a.sim.Restart()
	case 'b':
		a.pilot.Enable(0, !a.pilot.Enabled(0))
		a.log.Infow("autopilot toggled", "on", a.pilot.Enabled(0))
	}
	return true
}
