package sim

import (
	"math"
	"math/rand/v2"
	"sync"

	"smarticles/pkg/vec"
)

// Integration constants.
const (
	// DampingFactor multiplies velocity once per tick. It must stay below 1:
	// it is the only energy dissipation in the system.
	DampingFactor float32 = 0.4
	// PosFactor converts velocity into position displacement per tick.
	PosFactor float32 = 40

	// SpawnAreaRadius is the radius of the disk around the origin that Spawn
	// draws positions from.
	SpawnAreaRadius float32 = 40
)

// State is the run state of the engine. Only Running advances the
// integrator; Paused and Stopped still accept configuration and spawning.
type State int

const (
	// Stopped is the initial state and the state after Reset.
	Stopped State = iota
	// Paused holds the current particle state without stepping.
	Paused
	// Running advances the integrator each tick.
	Running
)

// Engine owns the parameter settings and the particle population and advances
// them tick by tick. It is not safe for concurrent use; Loop gives it a
// goroutine of its own and mediates all access through messages.
type Engine struct {
	settings Settings
	state    State

	cur  *Population
	next *Population
}

// NewEngine returns a stopped engine with default settings and an empty
// population allocated at full capacity.
func NewEngine() *Engine {
	return &Engine{
		settings: DefaultSettings(),
		cur:      NewPopulation(),
		next:     NewPopulation(),
	}
}

// State returns the current run state.
func (e *Engine) State() State { return e.state }

// Play switches the engine to Running.
func (e *Engine) Play() { e.state = Running }

// Pause switches the engine to Paused.
func (e *Engine) Pause() { e.state = Paused }

// Settings returns a copy of the current settings.
func (e *Engine) Settings() Settings { return e.settings }

// SetSettings replaces the current settings wholesale.
func (e *Engine) SetSettings(s Settings) { e.settings = s }

// Reset stops the simulation and restores the documented defaults: default
// world radius, full class window, zero particle counts, zero force and
// minimum radius in every matrix cell. The population is cleared.
func (e *Engine) Reset() {
	e.state = Stopped
	e.settings = DefaultSettings()
	e.cur.Clear()
	e.next.Clear()
}

// Spawn zeroes every active particle and re-draws its position uniformly by
// angle and radius within the spawn disk around the origin. The draw uses the
// process-global entropy source, independent of seed derivation.
func (e *Engine) Spawn() {
	classCount := clampClassCount(e.settings.ClassCount)
	for c := 0; c < classCount; c++ {
		n := clampParticleCount(e.settings.ParticleCounts[c])
		for i := 0; i < n; i++ {
			dir := vec.Angled(2 * math.Pi * rand.Float32())
			e.cur.SetPos(c, i, dir.Scale(SpawnAreaRadius*rand.Float32()))
			e.cur.SetVel(c, i, vec.Zero)
		}
	}
}

// Step advances the simulation by one tick of length dt seconds.
//
// Every particle reads last tick's positions and velocities and writes into a
// staging population, which is committed by a buffer swap at the end. Within
// one tick all force contributions on a particle are accumulated first and
// damping plus the position update are applied exactly once, so the outcome
// does not depend on class iteration order. Classes are stepped in parallel;
// per-particle updates never touch shared state.
func (e *Engine) Step(dt float32) {
	classCount := clampClassCount(e.settings.ClassCount)
	var counts [MaxClasses]int
	for c := 0; c < MaxClasses; c++ {
		counts[c] = clampParticleCount(e.settings.ParticleCounts[c])
	}

	// Inactive slots must survive the swap unchanged.
	e.next.CopyFrom(e.cur)

	var wg sync.WaitGroup
	for c1 := 0; c1 < classCount; c1++ {
		wg.Add(1)
		go func(c1 int) {
			defer wg.Done()
			e.stepClass(c1, classCount, counts, dt)
		}(c1)
	}
	wg.Wait()

	e.cur, e.next = e.next, e.cur
}

// stepClass integrates every active particle of class c1 for one tick.
func (e *Engine) stepClass(c1, classCount int, counts [MaxClasses]int, dt float32) {
	worldRadius := e.settings.WorldRadius
	for p1 := 0; p1 < counts[c1]; p1++ {
		pos := e.cur.Pos(c1, p1)

		dv := vec.Zero
		for c2 := 0; c2 < classCount; c2++ {
			param := e.settings.Params[c1][c2]
			force := -param.Force * ForceFactor
			for p2 := 0; p2 < counts[c2]; p2++ {
				dv = dv.Add(PartialVelocity(e.cur.Pos(c2, p2).Sub(pos), param.Radius, force))
			}
		}

		// Soft spring back toward the arena once outside the world radius.
		if r := pos.Len(); r >= worldRadius {
			dv = dv.Add(pos.Normalized().Neg().Scale(BorderForce * (r - worldRadius)))
		}

		vel := e.cur.Vel(c1, p1).Add(dv).Scale(DampingFactor)
		e.next.SetVel(c1, p1, vel)
		e.next.SetPos(c1, p1, pos.Add(vel.Scale(PosFactor*dt)))
	}
}

// Snapshot copies the active particle positions into an immutable per-class
// table for publication to the presentation side.
func (e *Engine) Snapshot() [][]vec.Vec2 {
	return e.cur.SnapshotPositions(e.settings.ClassCount, e.settings.ParticleCounts)
}
