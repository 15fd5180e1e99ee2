// Package export serializes recorded animation frames to disk.
package export

import (
	"fmt"
	"image"
	"image/gif"
	"os"
	"time"
)

// GIF encodes frames to path as an animated GIF. interval is the
// per-frame display delay; repeat selects looping forever versus a
// single playback.
func GIF(path string, frames []*image.Paletted, interval time.Duration, repeat bool) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: no frames to encode")
	}

	// GIF delays are in centiseconds; clamp to the format's minimum
	// meaningful value.
	delay := int(interval / (10 * time.Millisecond))
	if delay < 2 {
		delay = 2
	}

	loop := 0 // loop forever
	if !repeat {
		loop = -1 // show each frame once
	}

	anim := gif.GIF{LoopCount: loop}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
