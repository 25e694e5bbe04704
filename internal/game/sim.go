package game

import (
	"fmt"

	"go.uber.org/zap"
)

// SFXPling is played when a firefly is collected.
const SFXPling = "pling"

// textScatter spreads simultaneous "+N" labels so they stay readable.
const textScatter = 12

// Phase is the match state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Sim is one match: the world, every player, the flock and the effects they
// leave behind. It holds no package-level state, so several can run side by
// side. Sim is not safe for concurrent use.
type Sim struct {
	cfg    Config
	world  *World
	camera *Camera
	rng    *Random

	peers   []Peer
	local   Peer
	players []*Player
	flock   *Flock
	ambient *ParticleSystem
	texts   []*FloatingText

	phase   Phase
	winner  *Player
	tick    int
	buttons Buttons // combined, for the game-over screen

	input    InputSource
	sound    SoundPlayer
	progress ProgressRecorder
	log      *zap.SugaredLogger
	simLog   *SimLog
	events   *EventLog
	stats    *MatchStats
}

// Option configures a Sim.
type Option func(*Sim)

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) Option {
	return func(s *Sim) { s.cfg = cfg }
}

// WithWorld sets the level. The default is DefaultWorld.
func WithWorld(w *World) Option {
	return func(s *Sim) { s.world = w }
}

// WithPeers sets the participants, one player each.
func WithPeers(peers ...Peer) Option {
	return func(s *Sim) { s.peers = append([]Peer(nil), peers...) }
}

// WithLocalPeer selects the player the camera follows.
func WithLocalPeer(p Peer) Option {
	return func(s *Sim) { s.local = p }
}

// WithInput sets where player input is read from.
func WithInput(in InputSource) Option {
	return func(s *Sim) { s.input = in }
}

// WithSound sets the effect player.
func WithSound(sp SoundPlayer) Option {
	return func(s *Sim) { s.sound = sp }
}

// WithProgress sets the badge recorder.
func WithProgress(pr ProgressRecorder) Option {
	return func(s *Sim) { s.progress = pr }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Sim) { s.log = l }
}

// WithSimLog records events into sl instead of a fresh quiet log.
func WithSimLog(sl *SimLog) Option {
	return func(s *Sim) { s.simLog = sl }
}

// NewSim builds a match ready to play.
func NewSim(opts ...Option) *Sim {
	s := &Sim{
		cfg:      DefaultConfig(),
		peers:    []Peer{0},
		input:    nopInput{},
		sound:    nopSound{},
		progress: nopProgress{},
		log:      zap.NewNop().Sugar(),
		events:   NewEventLog(),
		stats:    NewMatchStats(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.world == nil {
		s.world = DefaultWorld()
	}
	if s.simLog == nil {
		s.simLog = NewSimLog(false)
	}
	s.rng = NewRandom(s.cfg.Seed)
	size := s.world.PixelSize()
	s.camera = NewCamera(size.W, size.H)
	s.flock = NewFlock()
	s.ambient = NewParticleSystem(s.cfg.AmbientParticles, size, s.rng)
	for _, peer := range s.peers {
		s.players = append(s.players, NewPlayer(peer, s.world, s.rng, &s.cfg))
	}
	if p := s.LocalPlayer(); p != nil {
		s.camera.FollowPlayer(p.Position(), 1)
	}
	s.log.Infow("match ready",
		"peers", len(s.players),
		"seed", s.cfg.Seed,
		"world", fmt.Sprintf("%dx%d", s.world.Width(), s.world.Height()))
	return s
}

// Config returns the tuning in use.
func (s *Sim) Config() Config { return s.cfg }

// World returns the level.
func (s *Sim) World() *World { return s.world }

// Camera returns the local viewport.
func (s *Sim) Camera() *Camera { return s.camera }

// Players returns every player in peer order.
func (s *Sim) Players() []*Player { return s.players }

// Player returns the player for peer, or nil.
func (s *Sim) Player(peer Peer) *Player {
	for _, p := range s.players {
		if p.Peer() == peer {
			return p
		}
	}
	return nil
}

// LocalPlayer returns the player the camera follows, or nil.
func (s *Sim) LocalPlayer() *Player { return s.Player(s.local) }

// Flock returns the live fireflies.
func (s *Sim) Flock() *Flock { return s.flock }

// Ambient returns the shared particle pool used for collection bursts.
func (s *Sim) Ambient() *ParticleSystem { return s.ambient }

// Texts returns the floating score labels.
func (s *Sim) Texts() []*FloatingText { return s.texts }

// Phase returns the match state.
func (s *Sim) Phase() Phase { return s.phase }

// Winner returns the winning player once the match is over.
func (s *Sim) Winner() *Player { return s.winner }

// LocalWon reports whether the local player won the finished match.
func (s *Sim) LocalWon() bool {
	return s.winner != nil && s.winner.Peer() == s.local
}

// Tick returns the number of frames simulated.
func (s *Sim) Tick() int { return s.tick }

// SimLog returns the structured event record.
func (s *Sim) SimLog() *SimLog { return s.simLog }

// Events returns the HUD event ring.
func (s *Sim) Events() *EventLog { return s.events }

// Stats returns the counters for the current match.
func (s *Sim) Stats() *MatchStats { return s.stats }

// Beacons snapshots every player's light for the flock.
func (s *Sim) Beacons() []Beacon {
	out := make([]Beacon, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p.Beacon())
	}
	return out
}

// Update advances the match by one frame.
func (s *Sim) Update() {
	s.tick++
	switch s.phase {
	case PhasePlaying:
		s.updatePlaying()
	case PhaseGameOver:
		s.updateGameOver()
	}
}

func (s *Sim) updatePlaying() {
	s.stats.Ticks++
	for _, p := range s.players {
		before := p.Color()
		p.Update(s.world, s.input, &s.cfg)
		if p.Color() != before {
			s.logLight(p, before)
		}
		if p.Peer() == s.local {
			s.camera.FollowPlayer(p.Position(), s.cfg.CameraSmoothness)
		}
	}

	var wasAttracted map[int]bool
	if s.simLog.verbose {
		wasAttracted = s.attractionSnapshot()
	}
	res := s.flock.Update(s.world, s.Beacons(), s.rng, &s.cfg)
	if res.Spawned != nil {
		s.stats.Spawned++
		pos := res.Spawned.Position()
		s.simLog.Add(s.tick, fireflyLabel(res.Spawned), LogSpawn, res.Spawned.Color().String(),
			fmt.Sprintf("at (%d,%d)", pos.X, pos.Y), 0)
	}
	if wasAttracted != nil {
		s.logAttractionChanges(wasAttracted)
	}
	s.stats.observePopulation(s.flock.Len())

	for _, f := range res.Collected {
		s.handleCollected(f)
	}
	s.checkWinCondition()
	s.texts = updateTexts(s.texts)
	s.ambient.Update()
	s.stats.DroppedParticles = s.ambient.Dropped()
}

func (s *Sim) updateGameOver() {
	buttons := s.combinedButtons()
	pressed := buttons.JustPressed(s.buttons)
	s.buttons = buttons
	if pressed.E {
		s.Restart()
		return
	}
	s.texts = updateTexts(s.texts)
	s.ambient.Update()
}

func (s *Sim) combinedButtons() Buttons {
	var b Buttons
	for _, peer := range s.peers {
		pb := s.input.Buttons(peer)
		b.N = b.N || pb.N
		b.E = b.E || pb.E
		b.S = b.S || pb.S
		b.W = b.W || pb.W
	}
	return b
}

// Restart clears the flock and effects, resets every player and resumes
// play. Badge progress already recorded is kept.
func (s *Sim) Restart() {
	s.flock.Clear()
	for _, p := range s.players {
		p.Reset(s.world, s.rng, &s.cfg)
	}
	for i := range s.texts {
		s.texts[i] = nil
	}
	s.texts = s.texts[:0]
	s.ambient.Clear()
	s.events.Clear()
	s.phase = PhasePlaying
	s.winner = nil
	s.stats.Restarts++
	s.stats.resetMatch()
	if p := s.LocalPlayer(); p != nil {
		s.camera.FollowPlayer(p.Position(), 1)
	}
	s.simLog.Add(s.tick, "--", LogRestart, "restart", fmt.Sprintf("restart #%d", s.stats.Restarts), 0)
	s.log.Infow("match restarted", "tick", s.tick, "restarts", s.stats.Restarts)
}

// handleCollected credits the player whose attraction target the firefly
// was chasing. A firefly whose target no player holds any more is removed
// without scoring.
func (s *Sim) handleCollected(f *Firefly) {
	target, _ := f.AttractedTo()
	for _, p := range s.players {
		if p.AttractionTarget() != target {
			continue
		}
		total := p.AddPoints(f.Points())
		s.sound.PlaySFX(SFXPling)
		s.spawnCollectionBurst(f)
		s.spawnPointText(f)
		s.stats.recordCollect(p.Peer(), f)
		s.simLog.Add(s.tick, peerLabel(p.Peer()), LogCollect, f.Color().String(),
			fmt.Sprintf("%s +%d -> %d", fireflyLabel(f), f.Points(), total), float64(total))
		s.events.Add(s.tick, peerLabel(p.Peer()), f.Color().Palette(),
			fmt.Sprintf("+%d %s", f.Points(), f.Color()))
		s.log.Debugw("firefly collected",
			"peer", p.Peer(), "color", f.Color().String(), "points", f.Points(), "total", total)
		return
	}
	s.stats.Unclaimed++
	s.simLog.Add(s.tick, fireflyLabel(f), LogUnclaimed, f.Color().String(),
		fmt.Sprintf("target (%d,%d) not held", target.X, target.Y), 0)
}

func (s *Sim) spawnCollectionBurst(f *Firefly) {
	pos := f.Position()
	count := s.rng.Range(s.cfg.CollectionBurstMin, s.cfg.CollectionBurstMax)
	speed := int16(s.rng.Range(1, 2))
	s.ambient.SpawnRadialBurst(pos.X, pos.Y, count, speed, s.cfg.CollectionBurstLife, f.Color().Palette())
}

func (s *Sim) spawnPointText(f *Firefly) {
	label := fmt.Sprintf("+%d", f.Points())
	s.texts = append(s.texts, NewFloatingText(label, f.Position().Scatter(s.rng, textScatter), f.Color().Palette()))
}

func (s *Sim) checkWinCondition() {
	for _, p := range s.players {
		if p.Points() < s.cfg.WinPoints {
			continue
		}
		s.progress.AddProgress(p.Peer(), BadgeWins, 1)
		s.phase = PhaseGameOver
		s.winner = p
		s.buttons = s.combinedButtons()
		s.stats.recordWin(p.Peer(), s.stats.Ticks)
		s.simLog.Add(s.tick, peerLabel(p.Peer()), LogWin, "win",
			fmt.Sprintf("%d points", p.Points()), float64(p.Points()))
		s.events.Add(s.tick, peerLabel(p.Peer()), PaletteYellow, "wins")
		s.log.Infow("match won", "peer", p.Peer(), "points", p.Points(), "tick", s.tick)
		return
	}
}

func (s *Sim) logLight(p *Player, before FireflyColor) {
	key := "on"
	if p.Color() == ColorNone {
		key = "off"
	}
	s.simLog.Add(s.tick, peerLabel(p.Peer()), LogLight, key,
		fmt.Sprintf("%s -> %s", before, p.Color()), 0)
}

func (s *Sim) attractionSnapshot() map[int]bool {
	snap := make(map[int]bool, s.flock.Len())
	for _, f := range s.flock.Fireflies() {
		_, ok := f.AttractedTo()
		snap[f.ID] = ok
	}
	return snap
}

func (s *Sim) logAttractionChanges(before map[int]bool) {
	for _, f := range s.flock.Fireflies() {
		target, now := f.AttractedTo()
		if now == before[f.ID] {
			continue
		}
		if now {
			s.simLog.AddVerbose(s.tick, fireflyLabel(f), LogAttract, "gained",
				fmt.Sprintf("-> (%d,%d)", target.X, target.Y), f.Position().Distance(target))
		} else {
			s.simLog.AddVerbose(s.tick, fireflyLabel(f), LogAttract, "lost", "wandering", 0)
		}
	}
}

// Draw renders the match from the local camera.
func (s *Sim) Draw(canvas Canvas) {
	canvas.Clear(PaletteLightYellow)
	s.world.Draw(canvas, s.camera)
	for _, p := range s.players {
		p.Draw(canvas, s.camera)
	}
	s.flock.Draw(canvas, s.camera)
	s.ambient.Render(canvas, s.camera)
	for _, t := range s.texts {
		t.Draw(canvas, s.camera)
	}
	s.drawHUD(canvas)
}

func (s *Sim) drawHUD(canvas Canvas) {
	x := 2
	for _, p := range s.players {
		c := PaletteLightYellow
		if p.Peer() == s.local {
			c = PaletteYellow
		}
		label := fmt.Sprintf("%s:%d", peerLabel(p.Peer()), p.Points())
		canvas.DrawText(label, Point{X: x + 1, Y: 3}, PaletteBlack)
		canvas.DrawText(label, Point{X: x, Y: 2}, c)
		x += 8 * len(label)
	}
	screen := s.camera.Screen()
	s.events.Draw(canvas, screen)
	if s.phase != PhaseGameOver {
		return
	}
	msg := "GAME OVER"
	if s.LocalWon() {
		msg = "YOU WIN!"
	}
	center := Point{X: screen.W/2 - 4*len(msg), Y: screen.H/2 - 8}
	canvas.DrawText(msg, center.Add(Point{X: 1, Y: 1}), PaletteBlack)
	canvas.DrawText(msg, center, PaletteYellow)
	hint := "press E"
	hp := Point{X: screen.W/2 - 4*len(hint), Y: screen.H/2 + 6}
	canvas.DrawText(hint, hp, PaletteLightYellow)
}
