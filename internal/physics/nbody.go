// Package physics provides the gravitational N-body model driven by the
// animation pipeline.
//
// [NBody] simulates softened pairwise gravity in 2 or 3 dimensions on a
// square (or cubic) domain of Grid cells per side. Each call to
// [NBody.Evolve] advances the particles with leapfrog steps, deposits
// particle mass onto the density grid, and returns the total energy.
package physics

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/nbodyanim/internal/grid"
	"github.com/san-kum/nbodyanim/internal/integrators"
)

// ErrDiverged indicates the particle state produced a non-finite energy.
var ErrDiverged = errors.New("physics: simulation diverged (NaN or Inf energy)")

// Initial condition presets.
const (
	InitUniform  = "uniform"
	InitRing     = "ring"
	InitCollapse = "collapse"
)

type Params struct {
	Bodies    int
	Grid      int
	Dims      int // 2 or 3
	Dt        float64
	G         float64
	Softening float64
	Seed      int64
	Init      string
}

func DefaultParams() Params {
	return Params{
		Bodies:    300,
		Grid:      64,
		Dims:      2,
		Dt:        0.05,
		G:         1.0,
		Softening: 1.0,
		Seed:      1,
		Init:      InitUniform,
	}
}

// NBody holds particle state and the deposited density grid.
type NBody struct {
	p       Params
	masses  []float64
	pos     []float64 // bodies*dims, interleaved
	vel     []float64
	density *grid.Dense
	lf      *integrators.Leapfrog
}

func NewNBody(p Params) (*NBody, error) {
	if p.Bodies <= 0 {
		return nil, fmt.Errorf("physics: bodies must be positive, got %d", p.Bodies)
	}
	if p.Grid <= 0 {
		return nil, fmt.Errorf("physics: grid must be positive, got %d", p.Grid)
	}
	if p.Dims != 2 && p.Dims != 3 {
		return nil, fmt.Errorf("physics: dims must be 2 or 3, got %d", p.Dims)
	}
	if p.Dt <= 0 {
		return nil, fmt.Errorf("physics: dt must be positive, got %f", p.Dt)
	}

	shape := []int{p.Grid, p.Grid}
	if p.Dims == 3 {
		shape = append(shape, p.Grid)
	}
	density, err := grid.New(shape...)
	if err != nil {
		return nil, err
	}

	masses := make([]float64, p.Bodies)
	for i := range masses {
		masses[i] = 1.0
	}

	nb := &NBody{
		p:       p,
		masses:  masses,
		pos:     make([]float64, p.Bodies*p.Dims),
		vel:     make([]float64, p.Bodies*p.Dims),
		density: density,
		lf:      integrators.NewLeapfrog(),
	}
	if err := nb.initState(); err != nil {
		return nil, err
	}
	nb.deposit()
	return nb, nil
}

func (nb *NBody) initState() error {
	rng := rand.New(rand.NewSource(nb.p.Seed))
	side := float64(nb.p.Grid)
	center := side / 2

	switch nb.p.Init {
	case InitUniform, "":
		for i := range nb.pos {
			nb.pos[i] = rng.Float64() * side
		}
	case InitRing:
		radius := side / 4
		speed := 0.5 * math.Sqrt(nb.p.G*float64(nb.p.Bodies)/radius)
		for i := 0; i < nb.p.Bodies; i++ {
			angle := float64(i) * 2 * math.Pi / float64(nb.p.Bodies)
			base := i * nb.p.Dims
			nb.pos[base] = center + radius*math.Cos(angle)
			nb.pos[base+1] = center + radius*math.Sin(angle)
			nb.vel[base] = -speed * math.Sin(angle)
			nb.vel[base+1] = speed * math.Cos(angle)
			if nb.p.Dims == 3 {
				nb.pos[base+2] = center + rng.NormFloat64()
			}
		}
	case InitCollapse:
		sigma := side / 8
		for i := 0; i < nb.p.Bodies; i++ {
			base := i * nb.p.Dims
			for k := 0; k < nb.p.Dims; k++ {
				nb.pos[base+k] = center + sigma*rng.NormFloat64()
			}
		}
	default:
		return fmt.Errorf("physics: unknown init preset %q", nb.p.Init)
	}
	return nil
}

func (nb *NBody) GridSize() int { return nb.p.Grid }

// Positions returns the first two coordinate columns of the particle
// positions, in grid units.
func (nb *NBody) Positions() (xs, ys []float64) {
	xs = make([]float64, nb.p.Bodies)
	ys = make([]float64, nb.p.Bodies)
	for i := 0; i < nb.p.Bodies; i++ {
		xs[i] = nb.pos[i*nb.p.Dims]
		ys[i] = nb.pos[i*nb.p.Dims+1]
	}
	return xs, ys
}

// Density returns the deposited mass grid. The grid is owned by the
// model and rewritten on every Evolve call.
func (nb *NBody) Density() *grid.Dense { return nb.density }

// Evolve advances the model nsteps leapfrog steps, refreshes the
// density grid, and returns the total energy.
func (nb *NBody) Evolve(nsteps int) (float64, error) {
	for s := 0; s < nsteps; s++ {
		nb.lf.Step(nb.pos, nb.vel, nb.accelerations, nb.p.Dt)
	}
	nb.deposit()

	e := nb.TotalEnergy()
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return e, ErrDiverged
	}
	return e, nil
}

func (nb *NBody) accelerations(pos []float64) []float64 {
	n, dims := nb.p.Bodies, nb.p.Dims
	acc := make([]float64, len(pos))
	eps2 := nb.p.Softening * nb.p.Softening
	var dr [3]float64

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r2 := eps2
			for k := 0; k < dims; k++ {
				dr[k] = pos[j*dims+k] - pos[i*dims+k]
				r2 += dr[k] * dr[k]
			}

			rInv := 1.0 / math.Sqrt(r2)
			r3Inv := rInv * rInv * rInv

			fij := nb.p.G * nb.masses[j] * r3Inv
			fji := nb.p.G * nb.masses[i] * r3Inv
			for k := 0; k < dims; k++ {
				acc[i*dims+k] += fij * dr[k]
				acc[j*dims+k] -= fji * dr[k]
			}
		}
	}
	return acc
}

// deposit rewrites the density grid with nearest-grid-point mass
// assignment. Particles outside the domain contribute nothing.
func (nb *NBody) deposit() {
	nb.density.Zero()
	dims := nb.p.Dims
	var cell [3]int
	for i := 0; i < nb.p.Bodies; i++ {
		inside := true
		for k := 0; k < dims; k++ {
			c := int(math.Floor(nb.pos[i*dims+k]))
			if c < 0 || c >= nb.p.Grid {
				inside = false
				break
			}
			cell[k] = c
		}
		if inside {
			nb.density.Add(nb.masses[i], cell[:dims]...)
		}
	}
}

// TotalEnergy returns kinetic plus softened potential energy.
func (nb *NBody) TotalEnergy() float64 {
	n, dims := nb.p.Bodies, nb.p.Dims
	eps2 := nb.p.Softening * nb.p.Softening
	ke := 0.0
	pe := 0.0

	for i := 0; i < n; i++ {
		v2 := 0.0
		for k := 0; k < dims; k++ {
			v := nb.vel[i*dims+k]
			v2 += v * v
		}
		ke += 0.5 * nb.masses[i] * v2

		for j := i + 1; j < n; j++ {
			r2 := eps2
			for k := 0; k < dims; k++ {
				dr := nb.pos[j*dims+k] - nb.pos[i*dims+k]
				r2 += dr * dr
			}
			pe -= nb.p.G * nb.masses[i] * nb.masses[j] / math.Sqrt(r2)
		}
	}
	return ke + pe
}

// Momentum returns the total momentum per axis.
func (nb *NBody) Momentum() []float64 {
	dims := nb.p.Dims
	p := make([]float64, dims)
	for i := 0; i < nb.p.Bodies; i++ {
		for k := 0; k < dims; k++ {
			p[k] += nb.masses[i] * nb.vel[i*dims+k]
		}
	}
	return p
}
