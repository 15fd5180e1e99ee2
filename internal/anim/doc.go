// Package anim drives the frame-advance-and-render pipeline.
//
// A [Session] owns one complete animation pass: it seeds a render
// artifact from the model's current state, advances the model once per
// displayed frame, reports the per-frame total energy, and finally
// exports the recorded sequence to GIF and/or replays it in the
// terminal.
//
// The per-tick work is explicit and testable in isolation:
//
//   - [Advance]: one tick (evolve, report, project, mutate artifact)
//   - [FrameContext]: the state bound to every tick
//   - [Planar], [DepthSum]: density-to-display projections
//   - [Driver]: the fixed-count tick loop that records frames
package anim
