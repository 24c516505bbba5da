package sim

import "smarticles/pkg/vec"

// Integrator constants. ForceFactor converts the user-facing force range into
// velocity units; the remaining values shape the distance response.
const (
	// ForceFactor scales configured forces before they enter the kernel.
	ForceFactor float32 = 0.001

	// RampStart is the distance below which the unconditional close-range
	// repulsion takes over, regardless of the configured force.
	RampStart float32 = MinRadius
	// RampLength is the distance over which the configured force ramps up
	// from zero at RampStart to its full plateau value.
	RampLength float32 = 10

	// CloseForce is the peak magnitude of the close-range repulsion, reached
	// as the distance approaches zero.
	CloseForce float32 = 20 * ForceFactor
	// BorderForce scales the inward spring applied beyond the world radius.
	BorderForce float32 = 10 * ForceFactor
)

// PartialVelocity returns the velocity contribution one particle receives
// from another, given the vector from the receiver to the other particle,
// the configured action radius and the pre-scaled force.
//
// Three regimes over the distance r:
//
//	r == 0                  zero (no defined direction)
//	0 < r <= RampStart      repulsion ramping from CloseForce down to zero,
//	                        independent of the configured force
//	RampStart < r < radius  configured force, ramped in over RampLength then
//	                        held constant
//	r >= radius             zero (out of range)
//
// The function is pure and order-independent, which is what allows particles
// of one class to be evaluated in parallel.
func PartialVelocity(distance vec.Vec2, actionRadius, force float32) vec.Vec2 {
	r := distance.Len()
	switch {
	case RampStart < r && r < actionRadius:
		return distance.Normalized().Scale(force * rampThenConst(r, RampStart, RampLength))
	case 0 < r && r <= RampStart:
		return distance.Normalized().Scale(CloseForce * (r/RampStart - 1))
	default:
		return vec.Zero
	}
}

// rampThenConst is zero at x = zero, rises linearly over constStart and then
// plateaus at 2*constStart/(zero+constStart). Keeping it continuous at the
// RampStart boundary avoids a force jump against the close-range arm.
func rampThenConst(x, zero, constStart float32) float32 {
	d := x - zero - constStart
	if d < 0 {
		d = -d
	}
	return (-d + x - zero + constStart) / (zero + constStart)
}
