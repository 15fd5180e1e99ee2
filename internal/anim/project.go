package anim

import (
	"fmt"

	"github.com/san-kum/nbodyanim/internal/grid"
)

// Projector maps the model's density field to the rank-2 grid the
// image artifact consumes. Points style bypasses projection entirely.
type Projector interface {
	Project(d *grid.Dense) (*grid.Dense, error)
}

// Planar projects an already-2D density. The transpose maps the first
// density axis onto the vertical display axis.
type Planar struct{}

func (Planar) Project(d *grid.Dense) (*grid.Dense, error) {
	if d.Rank() != 2 {
		return nil, fmt.Errorf("anim: planar projection needs rank-2 density, got rank %d", d.Rank())
	}
	return d.Transpose()
}

// DepthSum collapses a 3D density to 2D by summing along the depth
// axis before transposing. The collapse must stay a sum: the display
// shows total column density, not a slice or a maximum.
type DepthSum struct{}

func (DepthSum) Project(d *grid.Dense) (*grid.Dense, error) {
	if d.Rank() != 3 {
		return nil, fmt.Errorf("anim: depth-sum projection needs rank-3 density, got rank %d", d.Rank())
	}
	flat, err := d.SumDepth()
	if err != nil {
		return nil, err
	}
	return flat.Transpose()
}
