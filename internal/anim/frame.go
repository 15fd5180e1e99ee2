package anim

import (
	"fmt"

	"github.com/san-kum/nbodyanim/internal/viz"
)

// FrameContext is the state bound to every Frame Advancer invocation.
// It is assembled once at session start and never rebound; the model
// and artifact it references are the only things that mutate between
// frames.
type FrameContext struct {
	Model     Model
	Artifact  viz.Artifact
	Style     Style
	Steps     int // model timesteps per displayed frame
	Marker    viz.Marker
	LogPath   string
	Projector Projector
	Observers []Observer
}

// Advance runs one animation tick: advance the model Steps timesteps,
// report the returned energy, project the new state, and push it into
// the existing artifact in place. No new artifact is ever created.
func Advance(frame int, fc *FrameContext) error {
	energy, err := fc.Model.Evolve(fc.Steps)
	if err != nil {
		return fmt.Errorf("evolve: %w", err)
	}

	if err := ReportEnergy(frame, energy, fc.LogPath); err != nil {
		return err
	}
	for _, obs := range fc.Observers {
		obs.OnFrame(frame, energy)
	}

	switch fc.Style {
	case StyleGrid:
		proj, err := fc.Projector.Project(fc.Model.Density())
		if err != nil {
			return err
		}
		img, ok := fc.Artifact.(*viz.Image)
		if !ok {
			return fmt.Errorf("anim: grid style needs an image artifact, got %T", fc.Artifact)
		}
		return img.SetGrid(proj)
	case StylePoints:
		sc, ok := fc.Artifact.(*viz.Scatter)
		if !ok {
			return fmt.Errorf("anim: points style needs a scatter artifact, got %T", fc.Artifact)
		}
		xs, ys := fc.Model.Positions()
		sc.SetData(xs, ys)
		return nil
	}
	return fmt.Errorf("anim: unknown style %v", fc.Style)
}
