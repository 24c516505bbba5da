package sim

// Capacity and tunable-range constants. Storage for classes and particles is
// allocated at maximum capacity up front; the active window is tracked by
// counts and never triggers reallocation.
const (
	// MinClasses is the smallest usable number of particle classes.
	MinClasses = 1
	// MaxClasses is the number of class slots allocated up front.
	MaxClasses = 8

	// MinParticleCount and MaxParticleCount bound the per-class particle count.
	MinParticleCount = 0
	MaxParticleCount = 1000

	// RandomMinParticleCount and RandomMaxParticleCount bound the counts drawn
	// by seed randomization. Narrower than the full range so random seeds land
	// in a visually interesting regime.
	RandomMinParticleCount = 100
	RandomMaxParticleCount = 600
)

// Tunable parameter ranges. Positive force repels, negative force attracts.
const (
	MinForce float32 = -100
	MaxForce float32 = 100

	MinRadius float32 = 10
	MaxRadius float32 = 100

	MinWorldRadius float32 = 100
	MaxWorldRadius float32 = 1000
)

// Defaults restored by Reset.
const (
	DefaultWorldRadius float32 = 500
	DefaultForce       float32 = 0
	DefaultRadius      float32 = MinRadius
)

// Param is the influence one class exerts on another: a signed force and the
// action radius beyond which the force is zero.
type Param struct {
	Force  float32
	Radius float32
}

// Matrix is the dense class-pair parameter table. Params[i][j] controls how
// particles of class i respond to particles of class j; self pairs are
// meaningful (self-attraction or repulsion).
type Matrix [MaxClasses][MaxClasses]Param

// Settings bundles everything the seed codec covers: arena size, the active
// class window, per-class particle counts and the parameter matrix. The
// simulation goroutine and the presentation side each own their own copy and
// reconcile through messages.
type Settings struct {
	WorldRadius    float32
	ClassCount     int
	ParticleCounts [MaxClasses]int
	Params         Matrix
}

// DefaultSettings returns the documented default configuration: full class
// window, no active particles, zero force and minimum radius everywhere.
func DefaultSettings() Settings {
	s := Settings{
		WorldRadius: DefaultWorldRadius,
		ClassCount:  MaxClasses,
	}
	for i := 0; i < MaxClasses; i++ {
		for j := 0; j < MaxClasses; j++ {
			s.Params[i][j] = Param{Force: DefaultForce, Radius: DefaultRadius}
		}
	}
	return s
}

// clampClassCount keeps a class count inside the allocated window.
func clampClassCount(n int) int {
	if n < MinClasses {
		return MinClasses
	}
	if n > MaxClasses {
		return MaxClasses
	}
	return n
}

// clampParticleCount keeps a per-class count inside the allocated window.
func clampParticleCount(n int) int {
	if n < MinParticleCount {
		return MinParticleCount
	}
	if n > MaxParticleCount {
		return MaxParticleCount
	}
	return n
}
