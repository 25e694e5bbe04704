package game

// Bot pad magnitudes: cruise moves at full speed, aim only turns the lamp.
const (
	autoPilotCruise = 600
	autoPilotAim    = 50
)

// AutoPilot is an InputSource that plays for the peers it is given. Each
// bot picks the nearest firefly, walks up to it with the light off,
// switches on the matching colour and leads the firefly to the goal.
// Decisions read the Sim as of the last frame.
type AutoPilot struct {
	sim    *Sim
	peers  map[Peer]bool
	quarry map[Peer]int // firefly ID each bot is after
	goal   Point
	next   InputSource
}

// NewAutoPilot drives peers of s. Other peers fall through to next, which
// may be nil.
func NewAutoPilot(next InputSource, peers ...Peer) *AutoPilot {
	ap := &AutoPilot{
		peers:  make(map[Peer]bool, len(peers)),
		quarry: make(map[Peer]int),
		next:   next,
	}
	if ap.next == nil {
		ap.next = nopInput{}
	}
	for _, p := range peers {
		ap.peers[p] = true
	}
	return ap
}

// Enable switches the bot on or off for peer.
func (ap *AutoPilot) Enable(peer Peer, on bool) {
	if on {
		ap.peers[peer] = true
		return
	}
	delete(ap.peers, peer)
	delete(ap.quarry, peer)
}

// Enabled reports whether the bot drives peer.
func (ap *AutoPilot) Enabled(peer Peer) bool { return ap.peers[peer] }

// Attach binds the bot to the match it plays. It must be called before the
// first Update of s.
func (ap *AutoPilot) Attach(s *Sim) {
	ap.sim = s
	if g, ok := s.World().GoalCenter(); ok {
		ap.goal = g
	} else {
		ap.goal = s.World().Bounds().Center()
	}
}

// Pad implements InputSource.
func (ap *AutoPilot) Pad(peer Peer) (Pad, bool) {
	if !ap.peers[peer] {
		return ap.next.Pad(peer)
	}
	pad, _ := ap.plan(peer)
	return pad, true
}

// Buttons implements InputSource.
func (ap *AutoPilot) Buttons(peer Peer) Buttons {
	if !ap.peers[peer] {
		return ap.next.Buttons(peer)
	}
	if ap.sim != nil && ap.sim.Phase() == PhaseGameOver {
		// Tap E to restart: held on even ticks only.
		return Buttons{E: ap.sim.Tick()%2 == 0}
	}
	_, b := ap.plan(peer)
	return b
}

// plan decides the pad and buttons for peer from the Sim and the remembered
// quarry. Pad is read before the lamp moves and Buttons after, so the two
// may disagree for a frame at a mode switch.
func (ap *AutoPilot) plan(peer Peer) (Pad, Buttons) {
	if ap.sim == nil {
		return Pad{}, Buttons{}
	}
	p := ap.sim.Player(peer)
	if p == nil {
		return Pad{}, Buttons{}
	}
	f := ap.pickQuarry(peer, p)
	if f == nil {
		return Pad{}, Buttons{}
	}

	cfg := ap.sim.Config()
	target := p.AttractionTarget()
	if !ap.leading(p, f, &cfg) {
		return ap.steer(p.Position(), f.Position(), autoPilotCruise), Buttons{}
	}

	held := colorButton(f.Color())
	if ap.sim.World().IsInGoal(target) {
		// Stand still until the firefly's cached target catches up, so the
		// collection is credited.
		return ap.steer(p.Position(), ap.goal, autoPilotAim), held
	}
	return ap.steer(p.Position(), ap.goal, autoPilotCruise), held
}

// leading reports whether the bot should have its light on for f: either
// the lamp is close enough that any heading keeps the target within reach,
// or f is already following a light near the bot's target.
func (ap *AutoPilot) leading(p *Player, f *Firefly, cfg *Config) bool {
	if p.Position().Distance(f.Position()) <= cfg.AttractionRadius/2 {
		return true
	}
	_, attracted := f.AttractedTo()
	return attracted && f.Position().Distance(p.AttractionTarget()) <= cfg.AttractionRadius
}

// pickQuarry keeps chasing the remembered firefly while it lives, otherwise
// switches to the nearest one not claimed by another bot.
func (ap *AutoPilot) pickQuarry(peer Peer, p *Player) *Firefly {
	taken := make(map[int]bool, len(ap.quarry))
	for other, id := range ap.quarry {
		if other != peer {
			taken[id] = true
		}
	}
	var best *Firefly
	bestDist := 0.0
	for _, f := range ap.sim.Flock().Fireflies() {
		if id, ok := ap.quarry[peer]; ok && f.ID == id {
			return f
		}
		if taken[f.ID] {
			continue
		}
		d := p.Position().Distance(f.Position())
		if best == nil || d < bestDist {
			best, bestDist = f, d
		}
	}
	if best == nil {
		delete(ap.quarry, peer)
		return nil
	}
	ap.quarry[peer] = best.ID
	return best
}

func (ap *AutoPilot) steer(from, to Point, magnitude float64) Pad {
	if from == to {
		return Pad{}
	}
	return Pad{Bearing: from.AngleTo(to), Magnitude: magnitude}
}

// colorButton returns the face button that lights the given colour.
func colorButton(c FireflyColor) Buttons {
	switch c {
	case SoftRed:
		return Buttons{N: true}
	case BrightMagenta:
		return Buttons{E: true}
	case BrightGreen:
		return Buttons{S: true}
	case BrightBlue:
		return Buttons{W: true}
	default:
		return Buttons{}
	}
}
