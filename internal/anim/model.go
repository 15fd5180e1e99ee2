package anim

import "github.com/san-kum/nbodyanim/internal/grid"

// Model is the simulation advanced by the pipeline. The pipeline
// borrows the model for the duration of one session and is its only
// mutator while the session runs; all mutation happens inside Evolve.
type Model interface {
	// GridSize is the side length of the square simulation domain,
	// used to fix the display limits.
	GridSize() int

	// Positions returns the particle coordinate columns for points
	// style rendering.
	Positions() (xs, ys []float64)

	// Density returns the current rank-2 or rank-3 density field for
	// grid style rendering.
	Density() *grid.Dense

	// Evolve advances the model nsteps timesteps and returns the total
	// energy. A returned error aborts the session.
	Evolve(nsteps int) (float64, error)
}

// Observer receives the per-frame diagnostic value after it has been
// reported.
type Observer interface {
	OnFrame(frame int, energy float64)
}
