package sim

import "smarticles/pkg/vec"

// Population stores particle state as dense class-by-slot tables allocated at
// full capacity. Slots at or beyond a class's active count stay zeroed and are
// never stepped or published.
type Population struct {
	pos [][]vec.Vec2
	vel [][]vec.Vec2
}

// NewPopulation allocates the position and velocity tables at
// MaxClasses x MaxParticleCount.
func NewPopulation() *Population {
	p := &Population{
		pos: make([][]vec.Vec2, MaxClasses),
		vel: make([][]vec.Vec2, MaxClasses),
	}
	for c := 0; c < MaxClasses; c++ {
		p.pos[c] = make([]vec.Vec2, MaxParticleCount)
		p.vel[c] = make([]vec.Vec2, MaxParticleCount)
	}
	return p
}

// Pos returns the position of particle (class, slot).
func (p *Population) Pos(c, i int) vec.Vec2 { return p.pos[c][i] }

// Vel returns the velocity of particle (class, slot).
func (p *Population) Vel(c, i int) vec.Vec2 { return p.vel[c][i] }

// SetPos stores the position of particle (class, slot).
func (p *Population) SetPos(c, i int, v vec.Vec2) { p.pos[c][i] = v }

// SetVel stores the velocity of particle (class, slot).
func (p *Population) SetVel(c, i int, v vec.Vec2) { p.vel[c][i] = v }

// Clear zeroes every slot, active or not.
func (p *Population) Clear() {
	for c := 0; c < MaxClasses; c++ {
		for i := range p.pos[c] {
			p.pos[c][i] = vec.Zero
			p.vel[c][i] = vec.Zero
		}
	}
}

// CopyFrom copies the full tables from another population. Both populations
// must come from NewPopulation, so the shapes always match.
func (p *Population) CopyFrom(src *Population) {
	for c := 0; c < MaxClasses; c++ {
		copy(p.pos[c], src.pos[c])
		copy(p.vel[c], src.vel[c])
	}
}

// SnapshotPositions copies the active position window into a freshly
// allocated per-class slice table. The result is independent of further
// stepping, so it can cross the channel to the presentation side untouched.
func (p *Population) SnapshotPositions(classCount int, counts [MaxClasses]int) [][]vec.Vec2 {
	classCount = clampClassCount(classCount)
	out := make([][]vec.Vec2, classCount)
	for c := 0; c < classCount; c++ {
		n := clampParticleCount(counts[c])
		out[c] = make([]vec.Vec2, n)
		copy(out[c], p.pos[c][:n])
	}
	return out
}
