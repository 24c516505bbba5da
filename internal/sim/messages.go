package sim

import (
	"time"

	"smarticles/pkg/vec"
)

// Command is a message from the presentation side to the simulation
// goroutine. Commands are applied in arrival order at the start of each tick.
type Command interface {
	isCommand()
}

// Play starts stepping.
type Play struct{}

// Pause holds the current state without stepping.
type Pause struct{}

// Reset restores the default configuration and stops the simulation.
type Reset struct{}

// Spawn re-draws positions for all active particles and publishes a frame.
type Spawn struct{}

// Quit asks the simulation goroutine to exit its loop.
type Quit struct{}

// ParamsUpdate replaces the full parameter matrix.
type ParamsUpdate struct {
	Params Matrix
}

// ClassCountUpdate changes the number of active classes.
type ClassCountUpdate struct {
	Count int
}

// ParticleCountsUpdate replaces the per-class particle counts.
type ParticleCountsUpdate struct {
	Counts [MaxClasses]int
}

// WorldRadiusUpdate changes the arena radius.
type WorldRadiusUpdate struct {
	Radius float32
}

func (Play) isCommand() {}
func (Pause) isCommand() {}
func (Reset) isCommand() {}
func (Spawn) isCommand() {}
func (Quit) isCommand() {}
func (ParamsUpdate) isCommand() {}
func (ClassCountUpdate) isCommand() {}
func (ParticleCountsUpdate) isCommand() {}
func (WorldRadiusUpdate) isCommand() {}

// Frame is a published simulation result: an immutable copy of the active
// particle positions, one inner slice per active class. Stepped frames also
// carry the measured wall-clock duration of the step; spawn-triggered frames
// do not.
type Frame struct {
	Stepped bool
	Elapsed time.Duration

	Positions [][]vec.Vec2
}
