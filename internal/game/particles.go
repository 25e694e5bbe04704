package game

// FixedPointShift scales particle velocities: a stored velocity of v moves a
// particle v>>FixedPointShift pixels per update. Keeping velocity as a scaled
// integer avoids float drift on small targets.
const FixedPointShift = 4

// particleBoundsMargin is how far past the world edge a particle may drift
// before it is recycled.
const particleBoundsMargin = 5

// 16-step circle in 1<<FixedPointShift units.
var (
	sinTable = [16]int16{0, 6, 11, 15, 16, 15, 11, 6, 0, -6, -11, -15, -16, -15, -11, -6}
	cosTable = [16]int16{16, 15, 11, 6, 0, -6, -11, -15, -16, -15, -11, -6, 0, 6, 11, 15}
)

// Particle is one pooled visual effect element.
type Particle struct {
	X, Y        int
	VX, VY      int16 // pre-scaled by 1<<FixedPointShift
	Lifetime    uint8
	MaxLifetime uint8
	Color       Palette
	Size        uint8
	Active      bool
}

func (p *Particle) deactivate() {
	p.Active = false
	p.Lifetime = 0
}

// ParticleSystem is a fixed-capacity particle pool. Slots are reused and the
// backing slice never grows.
type ParticleSystem struct {
	particles []Particle
	bounds    Size
	rng       *Random
	dropped   int
}

// NewParticleSystem allocates a pool of capacity slots for a world of the
// given pixel size.
func NewParticleSystem(capacity int, bounds Size, rng *Random) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, capacity),
		bounds:    bounds,
		rng:       rng,
	}
}

// Update integrates every active particle one frame and recycles the ones
// that expired or left the world.
func (ps *ParticleSystem) Update() {
	for i := range ps.particles {
		p := &ps.particles[i]
		if !p.Active {
			continue
		}

		p.X += int(p.VX >> FixedPointShift)
		p.Y += int(p.VY >> FixedPointShift)

		if p.Lifetime > 0 {
			p.Lifetime--
		}

		out := p.X < -particleBoundsMargin || p.X > ps.bounds.W+particleBoundsMargin ||
			p.Y < -particleBoundsMargin || p.Y > ps.bounds.H+particleBoundsMargin
		if p.Lifetime == 0 || out {
			p.deactivate()
		}
	}
}

// Render draws active particles through the camera. It does not mutate state.
func (ps *ParticleSystem) Render(canvas Canvas, cam *Camera) {
	for i := range ps.particles {
		p := &ps.particles[i]
		if !p.Active {
			continue
		}
		sp := cam.WorldToScreen(Point{X: p.X, Y: p.Y})
		if p.Size > 1 {
			canvas.DrawCircle(sp, int(p.Size), p.Color, p.Color)
			continue
		}
		canvas.DrawPoint(sp, p.Color)
	}
}

// Spawn claims the first free slot. A full pool drops the particle.
func (ps *ParticleSystem) Spawn(x, y int, vx, vy int16, lifetime uint8, color Palette, size uint8) {
	i := ps.freeSlot(0)
	if i < 0 {
		ps.dropped++
		return
	}
	ps.particles[i] = Particle{
		X: x, Y: y,
		VX: vx, VY: vy,
		Lifetime: lifetime, MaxLifetime: lifetime,
		Color:  color,
		Size:   size,
		Active: true,
	}
}

// SpawnRadialBurst emits up to count particles outward from (x, y), each in
// a random direction from the 16-step table scaled by speed.
func (ps *ParticleSystem) SpawnRadialBurst(x, y, count int, speed int16, lifetime uint8, color Palette) {
	spawned := 0
	next := 0
	for spawned < count {
		i := ps.freeSlot(next)
		if i < 0 {
			ps.dropped += count - spawned
			return
		}
		dir := ps.rng.Range(0, len(cosTable)-1)
		ps.particles[i] = Particle{
			X: x, Y: y,
			VX: speed * cosTable[dir], VY: speed * sinTable[dir],
			Lifetime: lifetime, MaxLifetime: lifetime,
			Color:  color,
			Size:   1,
			Active: true,
		}
		next = i + 1
		spawned++
	}
}

// freeSlot returns the index of the first inactive slot at or after from,
// or -1 when the pool is full.
func (ps *ParticleSystem) freeSlot(from int) int {
	for i := from; i < len(ps.particles); i++ {
		if !ps.particles[i].Active {
			return i
		}
	}
	return -1
}

// Clear deactivates every particle.
func (ps *ParticleSystem) Clear() {
	for i := range ps.particles {
		ps.particles[i].deactivate()
	}
}

// Count returns the number of active particles.
func (ps *ParticleSystem) Count() int {
	n := 0
	for i := range ps.particles {
		if ps.particles[i].Active {
			n++
		}
	}
	return n
}

// Capacity returns the fixed pool size.
func (ps *ParticleSystem) Capacity() int { return len(ps.particles) }

// Dropped returns how many spawns were refused because the pool was full.
func (ps *ParticleSystem) Dropped() int { return ps.dropped }

// Particles exposes the pool slots for read-only inspection.
func (ps *ParticleSystem) Particles() []Particle { return ps.particles }
