package viz

import "math"

// Norm rescales a raw grid value into [0, 1] given the frame's value
// range. lo and hi are recomputed from the grid on every render, so the
// display autoscales as the field evolves.
type Norm interface {
	Map(v, lo, hi float64) float64
}

// LinearNorm is the default linear rescaling.
type LinearNorm struct{}

func (LinearNorm) Map(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return clamp01((v - lo) / (hi - lo))
}

// LogNorm compresses high dynamic range fields, useful for clustered
// density grids where a few cells dominate.
type LogNorm struct{}

func (LogNorm) Map(v, lo, hi float64) float64 {
	if hi <= lo || v <= lo {
		return 0
	}
	return clamp01(math.Log1p(v-lo) / math.Log1p(hi-lo))
}

// NormByName returns LogNorm for "log" and LinearNorm otherwise.
func NormByName(name string) Norm {
	if name == "log" {
		return LogNorm{}
	}
	return LinearNorm{}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
