package anim

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/san-kum/nbodyanim/internal/viz"
)

// Sequence is the recorded output of a driver run: one rasterized
// frame per tick, in tick order, plus the playback parameters.
type Sequence struct {
	Frames   []*image.Paletted
	Interval time.Duration
	Repeat   bool
}

// TickFunc is the per-frame callback, invoked with the zero-based
// frame index.
type TickFunc func(frame int) error

// Driver invokes a tick callback a fixed number of times, strictly in
// order and never concurrently, capturing the figure after every tick.
type Driver struct {
	fig      *viz.Figure
	frames   int
	interval time.Duration
	repeat   bool
}

func NewDriver(fig *viz.Figure, frames int, interval time.Duration, repeat bool) *Driver {
	return &Driver{fig: fig, frames: frames, interval: interval, repeat: repeat}
}

// Run executes ticks 0..frames-1. The first tick error aborts the run;
// there is no retry and no partial-frame recovery. Context
// cancellation aborts between ticks.
func (d *Driver) Run(ctx context.Context, tick TickFunc) (*Sequence, error) {
	seq := &Sequence{
		Frames:   make([]*image.Paletted, 0, d.frames),
		Interval: d.interval,
		Repeat:   d.repeat,
	}

	for i := 0; i < d.frames; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := tick(i); err != nil {
			return nil, fmt.Errorf("anim: frame %d: %w", i, err)
		}
		seq.Frames = append(seq.Frames, d.fig.Render())
	}
	return seq, nil
}
