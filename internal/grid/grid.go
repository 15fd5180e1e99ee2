// Package grid provides dense numeric arrays for density fields.
//
// A [Dense] is a rank-2 or rank-3 float64 array over a flat, row-major
// backing slice. It is the exchange format between the physics model
// (mass deposition) and the renderer (image artifacts):
//
//   - [Dense.Transpose]: swap the two axes of a rank-2 grid
//   - [Dense.SumDepth]: collapse a rank-3 grid to rank-2 by summing
//     along the last axis
package grid

import (
	"fmt"
	"math"
)

// Dense is a rank-2 or rank-3 array of float64 stored row-major.
type Dense struct {
	shape []int
	data  []float64
}

// New allocates a zeroed Dense with the given shape. Only rank 2 and
// rank 3 are supported.
func New(shape ...int) (*Dense, error) {
	if len(shape) != 2 && len(shape) != 3 {
		return nil, fmt.Errorf("grid: rank must be 2 or 3, got %d", len(shape))
	}
	n := 1
	for _, s := range shape {
		if s <= 0 {
			return nil, fmt.Errorf("grid: axis length must be positive, got %d", s)
		}
		n *= s
	}
	return &Dense{
		shape: append([]int(nil), shape...),
		data:  make([]float64, n),
	}, nil
}

// FromSlice builds a Dense over a copy of data, which must have exactly
// as many elements as the shape requires.
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	d, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(d.data) {
		return nil, fmt.Errorf("grid: shape %v needs %d elements, got %d", shape, len(d.data), len(data))
	}
	copy(d.data, data)
	return d, nil
}

func (d *Dense) Rank() int { return len(d.shape) }

// Shape returns a copy of the axis lengths.
func (d *Dense) Shape() []int { return append([]int(nil), d.shape...) }

// Data exposes the flat backing slice. Callers that mutate it mutate
// the grid.
func (d *Dense) Data() []float64 { return d.data }

func (d *Dense) index(ix ...int) int {
	idx := 0
	for k, i := range ix {
		idx = idx*d.shape[k] + i
	}
	return idx
}

// At reads the element at the given indices. The number of indices must
// equal the rank.
func (d *Dense) At(ix ...int) float64 { return d.data[d.index(ix...)] }

// Set writes the element at the given indices.
func (d *Dense) Set(v float64, ix ...int) { d.data[d.index(ix...)] = v }

// Add accumulates v into the element at the given indices.
func (d *Dense) Add(v float64, ix ...int) { d.data[d.index(ix...)] += v }

// Zero resets every element to 0.
func (d *Dense) Zero() {
	for i := range d.data {
		d.data[i] = 0
	}
}

// Transpose returns a new rank-2 grid with axes swapped.
func (d *Dense) Transpose() (*Dense, error) {
	if d.Rank() != 2 {
		return nil, fmt.Errorf("grid: transpose needs rank 2, got rank %d", d.Rank())
	}
	rows, cols := d.shape[0], d.shape[1]
	t, err := New(cols, rows)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t.data[j*rows+i] = d.data[i*cols+j]
		}
	}
	return t, nil
}

// SumDepth collapses a rank-3 grid to rank 2 by summing along the last
// axis. The collapse is a sum, not a max or mean: the result shows total
// column density.
func (d *Dense) SumDepth() (*Dense, error) {
	if d.Rank() != 3 {
		return nil, fmt.Errorf("grid: depth sum needs rank 3, got rank %d", d.Rank())
	}
	nx, ny, nz := d.shape[0], d.shape[1], d.shape[2]
	out, err := New(nx, ny)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			sum := 0.0
			base := (i*ny + j) * nz
			for k := 0; k < nz; k++ {
				sum += d.data[base+k]
			}
			out.data[i*ny+j] = sum
		}
	}
	return out, nil
}

// MinMax returns the smallest and largest element, ignoring NaNs.
func (d *Dense) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range d.data {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// Total returns the sum of all elements.
func (d *Dense) Total() float64 {
	sum := 0.0
	for _, v := range d.data {
		sum += v
	}
	return sum
}
