package game

import "math"

// Light cone geometry.
const (
	coneLength = 25.0
	coneAngle  = Angle(math.Pi / 20)
)

// Player is a lamp steered by one peer. Its light colour decides which
// fireflies follow the attraction target projected ahead of it.
type Player struct {
	peer             Peer
	position         Point
	direction        Angle
	speed            float64
	remainder        float64
	color            FireflyColor
	attractionTarget Point
	points           int
	buttons          Buttons
}

// NewPlayer places a player for peer on a random open pixel.
func NewPlayer(peer Peer, w *World, rng *Random, cfg *Config) *Player {
	return newPlayerAt(peer, w.RandomUnblockedPoint(rng), cfg)
}

func newPlayerAt(peer Peer, pos Point, cfg *Config) *Player {
	p := &Player{peer: peer, position: pos}
	p.attractionTarget = attractionTargetFor(pos, p.direction, cfg)
	return p
}

// Peer returns the owning participant.
func (p *Player) Peer() Peer { return p.peer }

// Position returns the lamp position.
func (p *Player) Position() Point { return p.position }

// Direction returns the heading of the lamp.
func (p *Player) Direction() Angle { return p.direction }

// Color returns the active light colour, ColorNone when the light is off.
func (p *Player) Color() FireflyColor { return p.color }

// AttractionTarget returns the point matching fireflies steer toward.
func (p *Player) AttractionTarget() Point { return p.attractionTarget }

// Points returns the current score.
func (p *Player) Points() int { return p.points }

// AddPoints adds to the score and returns the new total.
func (p *Player) AddPoints(n int) int {
	p.points += n
	return p.points
}

// Beacon publishes the state fireflies react to.
func (p *Player) Beacon() Beacon {
	return Beacon{Peer: p.peer, Target: p.attractionTarget, Color: p.color}
}

// Update reads the peer's input, moves the lamp and updates the light.
func (p *Player) Update(w *World, input InputSource, cfg *Config) {
	p.updatePosition(w, input, cfg)
	p.updateLightCone(input)
}

// Reset zeroes the score and drops the lamp on a fresh open pixel.
func (p *Player) Reset(w *World, rng *Random, cfg *Config) {
	p.points = 0
	p.remainder = 0
	p.speed = 0
	p.color = ColorNone
	p.buttons = Buttons{}
	p.position = w.RandomUnblockedPoint(rng)
	p.attractionTarget = attractionTargetFor(p.position, p.direction, cfg)
}

func attractionTargetFor(pos Point, dir Angle, cfg *Config) Point {
	target, _ := pos.PointFromDistanceAndAngle(cfg.AttractionLength, dir)
	return target
}

func (p *Player) updatePosition(w *World, input InputSource, cfg *Config) {
	pad, ok := input.Pad(p.peer)
	if !ok {
		return
	}
	p.direction = pad.Bearing
	p.speed = pad.Magnitude
	if p.direction.IsNaN() || math.IsNaN(p.speed) || p.speed < cfg.PadDeadzone {
		p.direction = 0
		p.speed = 0
	}
	if p.speed <= cfg.MoveThreshold {
		p.remainder = 0
		return
	}

	factor := 1.0
	if p.color != ColorNone {
		factor = cfg.FlashlightFactor
	}
	distance := p.speed*cfg.PlayerSpeed*factor + p.remainder
	cand, rem := p.position.PointFromDistanceAndAngle(distance, p.direction)

	next := p.sweep(w, w.ClampPoint(cand))
	if next == cand {
		p.remainder = rem
	} else {
		// Stopped short by a wall or the world edge.
		p.remainder = 0
	}
	if next != p.position {
		p.position = next
		p.attractionTarget = attractionTargetFor(p.position, p.direction, cfg)
	}
}

// sweep walks toward target one pixel at a time, first along X then along
// Y, stopping each axis at the first solid pixel so thin walls cannot be
// skipped over.
func (p *Player) sweep(w *World, target Point) Point {
	pos := p.position
	for pos.X != target.X {
		next := Point{X: pos.X + sign(target.X-pos.X), Y: pos.Y}
		if w.IsBlocked(next) {
			break
		}
		pos = next
	}
	for pos.Y != target.Y {
		next := Point{X: pos.X, Y: pos.Y + sign(target.Y-pos.Y)}
		if w.IsBlocked(next) {
			break
		}
		pos = next
	}
	return pos
}

func (p *Player) updateLightCone(input InputSource) {
	buttons := input.Buttons(p.peer)
	pressed := buttons.JustPressed(p.buttons)
	p.buttons = buttons
	switch {
	case pressed.N:
		p.color = SoftRed
	case pressed.E:
		p.color = BrightMagenta
	case pressed.S:
		p.color = BrightGreen
	case pressed.W:
		p.color = BrightBlue
	}
	if !buttons.Any() {
		p.color = ColorNone
	}
}

// Draw renders the light cone under the lamp.
func (p *Player) Draw(canvas Canvas, cam *Camera) {
	sp := cam.WorldToScreen(p.position)
	if p.color != ColorNone {
		b, _ := sp.PointFromDistanceAndAngle(coneLength, p.direction-coneAngle)
		c, _ := sp.PointFromDistanceAndAngle(coneLength, p.direction+coneAngle)
		canvas.DrawTriangle(sp, b, c, p.color.Palette())
	}
	fill := PaletteYellow
	if p.color != ColorNone {
		fill = p.color.Palette()
	}
	canvas.DrawCircle(Point{X: sp.X - 2, Y: sp.Y - 2}, 6, fill, PaletteBlack)
}
