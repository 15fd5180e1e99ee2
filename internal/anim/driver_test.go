package anim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/nbodyanim/internal/viz"
)

func TestDriverTickOrder(t *testing.T) {
	fig := viz.NewFigure(8, 8)
	fig.Scatter(nil, nil, viz.MarkerPoint)

	var seen []int
	d := NewDriver(fig, 5, 10*time.Millisecond, false)
	seq, err := d.Run(context.Background(), func(frame int) error {
		seen = append(seen, frame)
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(seen) != 5 {
		t.Fatalf("expected 5 ticks, got %d", len(seen))
	}
	for i, f := range seen {
		if f != i {
			t.Errorf("tick %d: expected frame index %d, got %d", i, i, f)
		}
	}
	if len(seq.Frames) != 5 {
		t.Errorf("expected 5 recorded frames, got %d", len(seq.Frames))
	}
}

func TestDriverZeroFrames(t *testing.T) {
	fig := viz.NewFigure(8, 8)
	calls := 0
	seq, err := NewDriver(fig, 0, time.Millisecond, false).Run(context.Background(), func(int) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if calls != 0 || len(seq.Frames) != 0 {
		t.Errorf("expected no ticks and no frames, got %d ticks, %d frames", calls, len(seq.Frames))
	}
}

func TestDriverAbortsOnTickError(t *testing.T) {
	fig := viz.NewFigure(8, 8)
	wantErr := errors.New("tick failed")
	calls := 0
	_, err := NewDriver(fig, 10, time.Millisecond, false).Run(context.Background(), func(frame int) error {
		calls++
		if frame == 2 {
			return wantErr
		}
		return nil
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped tick error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected abort after frame 2, got %d calls", calls)
	}
}

func TestDriverContextCancel(t *testing.T) {
	fig := viz.NewFigure(8, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := NewDriver(fig, 10, time.Millisecond, false).Run(ctx, func(int) error {
		calls++
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no ticks after cancellation, got %d", calls)
	}
}
