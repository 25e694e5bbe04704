package game

import "fmt"

// TestSim is a headless match harness used by tests and the headless report.
// It drives a real Sim with scripted input, deterministic seeding and
// structured logging.
type TestSim struct {
	Sim    *Sim
	Input  *ScriptedInput
	SimLog *SimLog

	cfg      Config
	world    *World
	peers    []Peer
	placed   map[Peer]Point
	bots     []Peer
	pilot    *AutoPilot
	sound    SoundPlayer
	progress ProgressRecorder
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // level, seed, tuning, verbose: applied first
	simOptActor                      // players and fireflies: applied after the Sim exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithLevel uses a glyph level instead of the default meadow.
func WithLevel(lines ...string) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.world = NewWorldFromGrid(GridFromGlyphs(lines))
	}}
}

// WithGrid uses a sprite index grid as the level.
func WithGrid(rows [][]int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.world = NewWorldFromGrid(rows)
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Seed = seed
	}}
}

// WithTuning edits the harness config. The harness starts from
// DefaultConfig with spawning switched off.
func WithTuning(edit func(*Config)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		edit(&ts.cfg)
	}}
}

// WithVerbose enables per-firefly attraction logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithSFX routes sound effects to sp.
func WithSFX(sp SoundPlayer) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.sound = sp
	}}
}

// WithBadges records badge progress in pr.
func WithBadges(pr ProgressRecorder) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.progress = pr
	}}
}

// WithPlayer adds a player for peer at a fixed pixel position.
func WithPlayer(peer Peer, x, y int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.peers = append(ts.peers, peer)
		ts.placed[peer] = Point{X: x, Y: y}
	}}
}

// WithBot adds a player for peer driven by the AutoPilot at a random start.
func WithBot(peer Peer) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.peers = append(ts.peers, peer)
		ts.bots = append(ts.bots, peer)
	}}
}

// WithFirefly adds a firefly of the given colour and heading.
func WithFirefly(color FireflyColor, x, y int, headingDeg float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.AddFirefly(color, Point{X: x, Y: y}, AngleFromDegrees(headingDeg))
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (level, seed, tuning, verbose, player slots)
//  2. Build the Sim and pin scripted players to their positions
//  3. Fireflies
func NewTestSim(opts ...SimOption) *TestSim {
	cfg := DefaultConfig()
	cfg.SpawnChancePct = 0
	ts := &TestSim{
		Input:  NewScriptedInput(),
		SimLog: NewSimLog(false),
		cfg:    cfg,
		placed: make(map[Peer]Point),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	if len(ts.peers) == 0 {
		ts.peers = []Peer{0}
	}
	if ts.world == nil {
		ts.world = DefaultWorld()
	}

	var input InputSource = ts.Input
	if len(ts.bots) > 0 {
		ts.pilot = NewAutoPilot(ts.Input, ts.bots...)
		input = ts.pilot
	}
	simOpts := []Option{
		WithConfig(ts.cfg),
		WithWorld(ts.world),
		WithPeers(ts.peers...),
		WithLocalPeer(ts.peers[0]),
		WithInput(input),
		WithSimLog(ts.SimLog),
	}
	if ts.sound != nil {
		simOpts = append(simOpts, WithSound(ts.sound))
	}
	if ts.progress != nil {
		simOpts = append(simOpts, WithProgress(ts.progress))
	}
	ts.Sim = NewSim(simOpts...)
	if ts.pilot != nil {
		ts.pilot.Attach(ts.Sim)
	}
	for peer, pos := range ts.placed {
		ts.PlacePlayer(peer, pos)
	}

	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(ts)
		}
	}
	return ts
}

// PlacePlayer moves a player to pos and re-projects its attraction target.
func (ts *TestSim) PlacePlayer(peer Peer, pos Point) {
	p := ts.Sim.Player(peer)
	if p == nil {
		return
	}
	p.position = pos
	p.remainder = 0
	p.attractionTarget = attractionTargetFor(pos, p.direction, &ts.cfg)
}

// AddFirefly inserts a firefly into the live flock and returns it.
func (ts *TestSim) AddFirefly(color FireflyColor, pos Point, heading Angle) *Firefly {
	f := newFirefly(0, pos, color, heading, ts.world.PixelSize(), ts.Sim.rng, &ts.cfg)
	ts.Sim.Flock().Add(f)
	return f
}

// Hold sets the buttons a scripted peer keeps pressed.
func (ts *TestSim) Hold(peer Peer, b Buttons) {
	ts.Input.Pressed[peer] = b
}

// Steer sets a scripted peer's pad.
func (ts *TestSim) Steer(peer Peer, bearingDeg, magnitude float64) {
	ts.Input.Pads[peer] = Pad{Bearing: AngleFromDegrees(bearingDeg), Magnitude: magnitude}
}

// Release clears a scripted peer's pad and buttons.
func (ts *TestSim) Release(peer Peer) {
	delete(ts.Input.Pads, peer)
	delete(ts.Input.Pressed, peer)
}

// Player returns the player for peer.
func (ts *TestSim) Player(peer Peer) *Player { return ts.Sim.Player(peer) }

// RunTicks advances the match n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Sim.Update()
	}
}

// RunUntil advances the match up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Sim.Update()
		if predicate(ts) {
			return ts.Sim.Tick()
		}
	}
	return -1
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.Sim.Tick()
}

// Summary returns the SimLog summary for the current tick.
func (ts *TestSim) Summary() string {
	return ts.SimLog.Summary(ts.Sim.Tick(), ts.Sim.Players(), ts.Sim.Flock())
}

// SimSnapshot captures a lightweight state summary.
type SimSnapshot struct {
	Tick      int
	Phase     Phase
	Players   []PlayerSnapshot
	Fireflies []FireflySnapshot
}

// PlayerSnapshot is a copy of a player's state at a tick.
type PlayerSnapshot struct {
	Peer     Peer
	Position Point
	Target   Point
	Color    FireflyColor
	Points   int
}

// FireflySnapshot is a copy of a firefly's state at a tick.
type FireflySnapshot struct {
	ID        int
	Position  Point
	Color     FireflyColor
	Attracted bool
	CacheAge  int
}

// Snapshot returns the current state of every player and firefly.
func (ts *TestSim) Snapshot() SimSnapshot {
	snap := SimSnapshot{Tick: ts.Sim.Tick(), Phase: ts.Sim.Phase()}
	for _, p := range ts.Sim.Players() {
		snap.Players = append(snap.Players, PlayerSnapshot{
			Peer:     p.Peer(),
			Position: p.Position(),
			Target:   p.AttractionTarget(),
			Color:    p.Color(),
			Points:   p.Points(),
		})
	}
	for _, f := range ts.Sim.Flock().Fireflies() {
		_, attracted := f.AttractedTo()
		snap.Fireflies = append(snap.Fireflies, FireflySnapshot{
			ID:        f.ID,
			Position:  f.Position(),
			Color:     f.Color(),
			Attracted: attracted,
			CacheAge:  f.CacheAge(),
		})
	}
	return snap
}

// String renders a snapshot for t.Log.
func (s SimSnapshot) String() string {
	out := fmt.Sprintf("T=%d %s", s.Tick, s.Phase)
	for _, p := range s.Players {
		out += fmt.Sprintf(" | %s (%d,%d) %s %dpt", peerLabel(p.Peer), p.Position.X, p.Position.Y, p.Color, p.Points)
	}
	for _, f := range s.Fireflies {
		out += fmt.Sprintf(" | F%d (%d,%d) %s", f.ID, f.Position.X, f.Position.Y, f.Color)
	}
	return out
}
