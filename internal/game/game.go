package game

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// windowScale is the integer upscale from the logical screen to the window.
const windowScale = 4

// reportInterval is how often the reporter samples the match (~1s at 60TPS).
const reportInterval = 60

// statusTicks is how long a status line stays on screen.
const statusTicks = 120

// Game is the ebiten frontend around a Sim. Peer 0 plays from the keyboard;
// peers 1 and up each take the matching connected gamepad.
type Game struct {
	sim      *Sim
	canvas   *ebitenCanvas
	devices  *DeviceInput
	pilot    *AutoPilot
	reporter  *SimReporter
	inspector Inspector
	log       *zap.SugaredLogger

	paused    bool
	prevKeys  map[ebiten.Key]bool
	prevClick bool

	status      string
	statusTimer int
}

// GameOptions configures the window frontend.
type GameOptions struct {
	Config  Config
	Peers   int // total players, keyboard included
	Sound   SoundPlayer
	Logger  *zap.SugaredLogger
	Bot     bool // start with the local player on autopilot
	Verbose bool // verbose SimLog
}

// New builds the window frontend.
func New(opts GameOptions) *Game {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.Sound == nil {
		opts.Sound = nopSound{}
	}
	peers := make([]Peer, max(1, opts.Peers))
	for i := range peers {
		peers[i] = Peer(i)
	}

	g := &Game{
		canvas:   newEbitenCanvas(),
		devices:  NewDeviceInput(),
		reporter: NewSimReporter(reportWindowTicks),
		log:      opts.Logger,
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.pilot = NewAutoPilot(g.devices)
	g.sim = NewSim(
		WithConfig(opts.Config),
		WithPeers(peers...),
		WithLocalPeer(0),
		WithInput(g.pilot),
		WithSound(opts.Sound),
		WithProgress(NewMemoryProgress()),
		WithLogger(opts.Logger),
		WithSimLog(NewSimLog(opts.Verbose)),
	)
	g.pilot.Attach(g.sim)
	if opts.Bot {
		g.pilot.Enable(0, true)
	}
	return g
}

// Sim returns the running match.
func (g *Game) Sim() *Sim { return g.sim }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.devices.Poll()
	g.handleKeys()
	if g.statusTimer > 0 {
		g.statusTimer--
	}
	if g.paused {
		return nil
	}
	g.sim.Update()
	if g.sim.Tick()%reportInterval == 0 {
		g.reporter.Collect(g.sim)
	}
	return nil
}

// handleKeys processes frontend hotkeys (edge-triggered).
func (g *Game) handleKeys() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// P: pause/resume.
	if pressed(ebiten.KeyP) {
		g.paused = !g.paused
		if g.paused {
			g.setStatus("paused")
		} else {
			g.setStatus("resumed")
		}
	}

	// R: restart the match.
	if pressed(ebiten.KeyR) {
		g.sim.Restart()
		g.reporter.Reset()
		g.setStatus("restarted")
	}

	// B: toggle autopilot for the keyboard player.
	if pressed(ebiten.KeyB) {
		on := !g.pilot.Enabled(0)
		g.pilot.Enable(0, on)
		if on {
			g.setStatus("autopilot on")
		} else {
			g.setStatus("autopilot off")
		}
	}

	// C: copy the match report.
	if pressed(ebiten.KeyC) {
		g.copyReport()
	}

	// Tab: switch the inspector between curated and raw views.
	if pressed(ebiten.KeyTab) {
		g.inspector.ToggleView()
	}

	g.prevKeys = currentKeys

	// Left click: inspect the firefly under the cursor.
	click := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if click && !g.prevClick {
		x, y := ebiten.CursorPosition()
		g.inspector.Select(g.sim, Point{X: x, Y: y})
	}
	g.prevClick = click
}

func (g *Game) copyReport() {
	g.reporter.Collect(g.sim)
	report := MatchReport(g.sim, g.reporter)
	if err := clipboard.WriteAll(report); err != nil {
		g.log.Warnw("copy report failed", "error", err)
		g.setStatus("copy failed")
		return
	}
	g.log.Infow("report copied", "bytes", len(report))
	g.setStatus("report copied")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusTimer = statusTicks
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.sim.Draw(g.canvas)
	g.drawInspector(screen)
	if g.statusTimer > 0 {
		w := g.sim.Camera().Screen().W
		g.canvas.DrawText(g.status, Point{X: w - 7*len(g.status) - 2, Y: 2}, PaletteLightYellow)
	}
	if g.sim.Config().Debug {
		f := g.sim.Flock()
		line := fmt.Sprintf("T%d ff=%d fx=%d", g.sim.Tick(), f.Len(), g.sim.Ambient().Count())
		g.canvas.DrawText(line, Point{X: 2, Y: 14}, PaletteLightYellow)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	s := g.sim.Camera().Screen()
	return s.W, s.H
}

// WindowSize returns the default window size in device-independent pixels.
func (g *Game) WindowSize() (int, int) {
	s := g.sim.Camera().Screen()
	return s.W * windowScale, s.H * windowScale
}
