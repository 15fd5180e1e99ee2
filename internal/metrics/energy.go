// Package metrics accumulates per-frame diagnostics during an
// animation session.
package metrics

import "math"

// EnergySeries records the energy reported at every frame, in frame
// order.
type EnergySeries struct {
	values []float64
}

func NewEnergySeries() *EnergySeries {
	return &EnergySeries{values: make([]float64, 0, 64)}
}

func (s *EnergySeries) OnFrame(frame int, energy float64) {
	s.values = append(s.values, energy)
}

// Values returns the recorded series. The slice is owned by the
// series; callers must not mutate it.
func (s *EnergySeries) Values() []float64 { return s.values }

func (s *EnergySeries) Reset() { s.values = s.values[:0] }

// EnergyDrift tracks the largest relative deviation from the first
// frame's energy.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{}
}

func (d *EnergyDrift) OnFrame(frame int, energy float64) {
	if d.samples == 0 {
		d.initial = energy
	}
	d.samples++

	if d.initial != 0 {
		drift := math.Abs(energy-d.initial) / math.Abs(d.initial)
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
}

// Value returns the maximum relative drift observed so far.
func (d *EnergyDrift) Value() float64 { return d.maxDrift }

func (d *EnergyDrift) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}
