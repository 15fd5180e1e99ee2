// Package viz renders model state into animation frames.
//
// A [Figure] owns one render artifact for the lifetime of an animation:
//
//   - [Image]: a 2D density field drawn through a [Colormap]
//   - [Scatter]: discrete particle positions drawn with a [Marker]
//
// Artifacts are mutated in place between frames ([Image.SetGrid],
// [Scatter.SetData]) and rasterized to paletted images suitable for GIF
// encoding. [Canvas] provides a Braille terminal view of the same
// frames for interactive playback.
package viz
