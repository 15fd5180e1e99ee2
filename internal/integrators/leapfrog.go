// Package integrators provides symplectic time stepping for particle
// systems with second-order dynamics.
package integrators

// AccelFunc computes accelerations for flattened particle positions.
// The returned slice must have the same length as pos.
type AccelFunc func(pos []float64) []float64

// Leapfrog advances positions and velocities with kick-drift-kick
// stepping. The closing acceleration of one step is reused as the
// opening acceleration of the next, so each step costs one force
// evaluation in steady state.
type Leapfrog struct {
	acc []float64
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

// Step advances pos and vel in place by one timestep dt.
func (l *Leapfrog) Step(pos, vel []float64, accel AccelFunc, dt float64) {
	if len(l.acc) != len(pos) {
		l.acc = accel(pos)
	}

	half := 0.5 * dt
	for i := range vel {
		vel[i] += l.acc[i] * half
	}
	for i := range pos {
		pos[i] += vel[i] * dt
	}

	l.acc = accel(pos)
	for i := range vel {
		vel[i] += l.acc[i] * half
	}
}

// Reset discards the cached acceleration. Call after mutating positions
// outside of Step.
func (l *Leapfrog) Reset() {
	l.acc = nil
}
