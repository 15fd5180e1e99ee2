package anim

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/san-kum/nbodyanim/internal/export"
	"github.com/san-kum/nbodyanim/internal/metrics"
	"github.com/san-kum/nbodyanim/internal/tui"
	"github.com/san-kum/nbodyanim/internal/viz"
)

// Hooks replaced by session tests.
var (
	encodeGIF = export.GIF

	showSequence = func(seq *Sequence, energies []float64, title string) error {
		return tui.Play(tui.Options{
			Frames:   seq.Frames,
			Energies: energies,
			Title:    title,
			Interval: seq.Interval,
			Repeat:   seq.Repeat,
		})
	}

	warnf = func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
	}
)

// Options configure one animation session.
type Options struct {
	Frames    int   // displayed frames (niter)
	Steps     int   // model timesteps per frame
	Style     Style
	Marker    viz.Marker
	Show      bool
	SavePath  string // animated GIF output; must end in ".gif"
	LogPath   string // per-frame energy log; truncated at session start
	Title     string
	FigWidth  int // pixels
	FigHeight int
	Interval  time.Duration // delay between frames
	Repeat    bool
	Colormap  viz.Colormap
	Norm      viz.Norm
	Observers []Observer
}

func DefaultOptions() Options {
	return Options{
		Frames:    50,
		Steps:     1,
		Style:     StyleGrid,
		Marker:    viz.MarkerCircle,
		FigWidth:  320,
		FigHeight: 320,
		Interval:  200 * time.Millisecond,
		Colormap:  viz.Viridis,
		Norm:      viz.LinearNorm{},
	}
}

// Session is one forward pass through the animation pipeline. It is
// never reused: construct, Run once, discard.
type Session struct {
	model  Model
	proj   Projector
	opts   Options
	series *metrics.EnergySeries
}

// NewSession validates the configuration up front. An invalid style,
// frame count, or missing projector fails here rather than silently
// mid-animation.
func NewSession(model Model, proj Projector, opts Options) (*Session, error) {
	if model == nil {
		return nil, fmt.Errorf("anim: model is required")
	}
	if opts.Style != StyleGrid && opts.Style != StylePoints {
		return nil, fmt.Errorf("anim: unknown style %v", opts.Style)
	}
	if opts.Style == StyleGrid && proj == nil {
		return nil, fmt.Errorf("anim: grid style needs a projector")
	}
	if opts.Frames < 0 {
		return nil, fmt.Errorf("anim: frame count must be non-negative, got %d", opts.Frames)
	}
	if opts.Steps <= 0 {
		opts.Steps = 1
	}
	return &Session{
		model:  model,
		proj:   proj,
		opts:   opts,
		series: metrics.NewEnergySeries(),
	}, nil
}

// Energies returns the per-frame energy series recorded by Run.
func (s *Session) Energies() []float64 { return s.series.Values() }

// Run executes the session: truncate the log, seed the artifact from
// the model's current state, tick exactly opts.Frames times, then
// export and/or display. Export and display are independent; both,
// either, or neither happen depending on the options.
func (s *Session) Run(ctx context.Context) error {
	if s.opts.LogPath != "" {
		f, err := os.Create(s.opts.LogPath)
		if err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	fig := viz.NewFigure(s.opts.FigWidth, s.opts.FigHeight)
	if s.opts.Title != "" {
		fig.SetTitle(s.opts.Title)
	}

	var artifact viz.Artifact
	switch s.opts.Style {
	case StyleGrid:
		seed, err := s.proj.Project(s.model.Density())
		if err != nil {
			return err
		}
		img, err := fig.Image(seed, s.opts.Colormap, s.opts.Norm)
		if err != nil {
			return err
		}
		artifact = img
	case StylePoints:
		xs, ys := s.model.Positions()
		artifact = fig.Scatter(xs, ys, s.opts.Marker)
	}

	// Square domain: both axes span [0, grid size] regardless of style.
	side := float64(s.model.GridSize())
	fig.SetLimits(0, side, 0, side)

	fc := &FrameContext{
		Model:     s.model,
		Artifact:  artifact,
		Style:     s.opts.Style,
		Steps:     s.opts.Steps,
		Marker:    s.opts.Marker,
		LogPath:   s.opts.LogPath,
		Projector: s.proj,
		Observers: append([]Observer{s.series}, s.opts.Observers...),
	}

	driver := NewDriver(fig, s.opts.Frames, s.opts.Interval, s.opts.Repeat)
	seq, err := driver.Run(ctx, func(frame int) error { return Advance(frame, fc) })
	if err != nil {
		return err
	}

	if s.opts.SavePath != "" {
		if ext := extension(s.opts.SavePath); ext != "gif" {
			warnf("incorrect save format %q instead of \"gif\", animation will not be saved", ext)
		} else if err := encodeGIF(s.opts.SavePath, seq.Frames, seq.Interval, seq.Repeat); err != nil {
			return err
		}
	}

	if s.opts.Show {
		if err := showSequence(seq, s.series.Values(), s.opts.Title); err != nil {
			return err
		}
	}
	return nil
}

// extension returns the substring after the last dot, or "" when the
// path has none. The match against "gif" is exact and case-sensitive.
func extension(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return ""
}
