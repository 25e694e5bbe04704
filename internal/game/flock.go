package game

// Flock is the live set of fireflies.
type Flock struct {
	fireflies []*Firefly
	nextID    int
}

// NewFlock creates an empty flock.
func NewFlock() *Flock {
	return &Flock{}
}

// FlockResult reports what changed in the flock during one update.
type FlockResult struct {
	Spawned   *Firefly
	Collected []*Firefly
}

// Fireflies returns the live fireflies. Callers must not keep the slice
// across updates.
func (fl *Flock) Fireflies() []*Firefly { return fl.fireflies }

// Len returns the live population.
func (fl *Flock) Len() int { return len(fl.fireflies) }

// Add inserts a firefly and assigns it an ID.
func (fl *Flock) Add(f *Firefly) {
	fl.nextID++
	f.ID = fl.nextID
	fl.fireflies = append(fl.fireflies, f)
}

// Clear drops every firefly. IDs keep counting so an ID held from before
// the clear never names a new firefly.
func (fl *Flock) Clear() {
	clear(fl.fireflies)
	fl.fireflies = fl.fireflies[:0]
}

// Update spawns at most one firefly while under the cap, advances every
// firefly one frame and removes the ones that reached a goal while attracted.
func (fl *Flock) Update(w *World, beacons []Beacon, rng *Random, cfg *Config) FlockResult {
	var res FlockResult
	if len(fl.fireflies) < cfg.MaxFireflies && rng.Chance(cfg.SpawnChancePct, 100) {
		f := NewFirefly(0, w, rng, cfg)
		fl.Add(f)
		res.Spawned = f
	}
	for _, f := range fl.fireflies {
		f.Update(w, beacons, rng, cfg)
	}
	res.Collected = fl.collect(w)
	return res
}

// collect splits the live set into kept and collected in a single pass.
func (fl *Flock) collect(w *World) []*Firefly {
	var collected []*Firefly
	kept := fl.fireflies[:0]
	for _, f := range fl.fireflies {
		if f.collectible(w) {
			collected = append(collected, f)
			continue
		}
		kept = append(kept, f)
	}
	for i := len(kept); i < len(fl.fireflies); i++ {
		fl.fireflies[i] = nil
	}
	fl.fireflies = kept
	return collected
}

// Draw renders every firefly.
func (fl *Flock) Draw(canvas Canvas, cam *Camera) {
	for _, f := range fl.fireflies {
		f.Draw(canvas, cam)
	}
}
