package game

import "math"

// Peer identifies a participant. It is only ever compared.
type Peer uint8

// Beacon is the state a player publishes for fireflies to read: where its
// light points and in which colour. Fireflies only see beacons captured after
// every player has finished updating for the frame.
type Beacon struct {
	Peer   Peer
	Target Point
	Color  FireflyColor
}

// Firefly wanders the world until a matching light comes within reach, then
// steers toward it. Reaching a goal tile while attracted collects it.
type Firefly struct {
	ID        int
	position  Point
	direction Angle
	color     FireflyColor
	remainder float64

	attractedTo Point
	attracted   bool

	cachedPos Point
	cacheHit  bool
	cacheAge  int

	bounces   int
	particles *ParticleSystem
}

// NewFirefly spawns a firefly of a random colour inside that colour's region.
func NewFirefly(id int, w *World, rng *Random, cfg *Config) *Firefly {
	color := RandomFireflyColor(rng)
	pos := w.RandomUnblockedPointInRect(rng, color.SpawnRegion(w))
	return newFirefly(id, pos, color, AngleFromDegrees(float64(rng.Range(0, 359))), w.PixelSize(), rng, cfg)
}

func newFirefly(id int, pos Point, color FireflyColor, dir Angle, bounds Size, rng *Random, cfg *Config) *Firefly {
	return &Firefly{
		ID:        id,
		position:  pos,
		direction: dir,
		color:     color,
		// Force a lookup on the first update.
		cacheAge:  cfg.CacheThreshold,
		particles: NewParticleSystem(cfg.FireflyParticles, bounds, rng),
	}
}

// Position returns the current pixel position.
func (f *Firefly) Position() Point { return f.position }

// Direction returns the current heading.
func (f *Firefly) Direction() Angle { return f.direction }

// Color returns the firefly's colour.
func (f *Firefly) Color() FireflyColor { return f.color }

// Points returns the score this firefly is worth.
func (f *Firefly) Points() int { return f.color.Points() }

// AttractedTo returns the point being pursued, if any.
func (f *Firefly) AttractedTo() (Point, bool) { return f.attractedTo, f.attracted }

// CacheAge returns how many frames old the nearest-target lookup is.
func (f *Firefly) CacheAge() int { return f.cacheAge }

// Bounces returns how many moves were refused by solid tiles.
func (f *Firefly) Bounces() int { return f.bounces }

// Particles returns the firefly's private trail pool.
func (f *Firefly) Particles() *ParticleSystem { return f.particles }

// Update runs one frame: target selection, movement and particle emission.
func (f *Firefly) Update(w *World, beacons []Beacon, rng *Random, cfg *Config) {
	if f.updateDirection(beacons, rng, cfg) {
		f.updateMovement(w, rng, cfg)
	}
	f.emitParticles(rng, cfg)
	f.particles.Update()
}

// updateDirection refreshes the target cache when it is too old and turns
// toward the target, or wanders. It returns false when the firefly is
// already sitting on its target and should not move.
func (f *Firefly) updateDirection(beacons []Beacon, rng *Random, cfg *Config) bool {
	f.cacheAge++
	if f.cacheAge > cfg.CacheThreshold {
		f.cachedPos, f.cacheHit = nearestBeacon(f.position, f.color, beacons, cfg.AttractionRadius)
		f.cacheAge = 0
	}

	if f.cacheHit {
		f.attractedTo = f.cachedPos
		f.attracted = true
		if f.position == f.cachedPos {
			f.remainder = 0
			return false
		}
		f.direction = f.position.AngleTo(f.cachedPos)
		return true
	}

	if f.attracted {
		f.attracted = false
		f.direction = AngleFromDegrees(float64(rng.Range(0, 359)))
		return true
	}

	jitter := rng.Range(-cfg.WanderJitterDeg, cfg.WanderJitterDeg)
	f.direction = (f.direction + AngleFromDegrees(float64(jitter))).Normalize()
	return true
}

// updateMovement advances along the heading. A step into a solid tile is
// refused and the firefly bounces off instead.
func (f *Firefly) updateMovement(w *World, rng *Random, cfg *Config) {
	cand, rem := f.position.PointFromDistanceAndAngle(cfg.FireflySpeed+f.remainder, f.direction)
	clamped := w.ClampPoint(cand)
	if w.IsBlocked(clamped) {
		f.direction = deflectionAngle(f.position, cand, rng, cfg.BounceSpreadDeg)
		f.remainder = 0
		f.bounces++
		return
	}
	if clamped != cand {
		rem = 0
	}
	f.position = clamped
	f.remainder = rem
}

// deflectionAngle picks a new heading after hitting a wall, biased away from
// the axis of approach: moving right turns toward 90°, left toward 270°,
// down toward 180° and up toward 0°, each plus a random spread.
func deflectionAngle(from, to Point, rng *Random, spreadDeg int) Angle {
	var base float64
	switch {
	case to.X > from.X:
		base = 90
	case to.X < from.X:
		base = 270
	case to.Y > from.Y:
		base = 180
	default:
		base = 0
	}
	spread := rng.Range(0, max(0, spreadDeg-1))
	return AngleFromDegrees(base + float64(spread)).Normalize()
}

func (f *Firefly) emitParticles(rng *Random, cfg *Config) {
	tint := f.color.Palette()
	if rng.Chance(1, cfg.TrailChance) {
		f.particles.Spawn(f.position.X, f.position.Y,
			int16(rng.Range(-16, 16)), int16(rng.Range(-16, 16)), 20, tint, 1)
	}
	if rng.Chance(1, cfg.FlashChance) {
		f.particles.SpawnRadialBurst(f.position.X, f.position.Y, rng.Range(4, 8), 1, 6, tint)
	}
}

// collectible reports whether the firefly is being led and has reached a goal.
func (f *Firefly) collectible(w *World) bool {
	return f.attracted && w.IsInGoal(f.position)
}

// Draw renders the trail and the firefly body.
func (f *Firefly) Draw(canvas Canvas, cam *Camera) {
	f.particles.Render(canvas, cam)
	if !cam.Visible(NewRect(f.position.X-1, f.position.Y-1, 3, 3)) {
		return
	}
	sp := cam.WorldToScreen(f.position)
	canvas.DrawCircle(Point{X: sp.X - 1, Y: sp.Y - 1}, 3, f.color.Palette(), PaletteLightYellow)
}

// nearestBeacon returns the closest same-coloured target within radius.
func nearestBeacon(from Point, color FireflyColor, beacons []Beacon, radius float64) (Point, bool) {
	best := math.Inf(1)
	var target Point
	found := false
	for _, b := range beacons {
		if b.Color != color || b.Color == ColorNone {
			continue
		}
		d := from.Distance(b.Target)
		if d > radius || d >= best {
			continue
		}
		best = d
		target = b.Target
		found = true
	}
	return target, found
}
