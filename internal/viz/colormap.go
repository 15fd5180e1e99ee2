package viz

import "image/color"

// Colormap maps a normalized value in [0, 1] to a color by linear
// interpolation between evenly spaced control stops.
type Colormap struct {
	Name  string
	stops []color.RGBA
}

var (
	Viridis = Colormap{Name: "viridis", stops: []color.RGBA{
		{68, 1, 84, 255},
		{72, 36, 117, 255},
		{65, 68, 135, 255},
		{53, 95, 141, 255},
		{42, 120, 142, 255},
		{33, 145, 140, 255},
		{34, 168, 132, 255},
		{68, 191, 112, 255},
		{122, 209, 81, 255},
		{189, 223, 38, 255},
		{253, 231, 37, 255},
	}}

	Inferno = Colormap{Name: "inferno", stops: []color.RGBA{
		{0, 0, 4, 255},
		{27, 12, 65, 255},
		{74, 12, 107, 255},
		{120, 28, 109, 255},
		{165, 44, 96, 255},
		{207, 68, 70, 255},
		{237, 105, 37, 255},
		{251, 155, 6, 255},
		{247, 209, 61, 255},
		{252, 255, 164, 255},
	}}

	Gray = Colormap{Name: "gray", stops: []color.RGBA{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
	}}

	Hot = Colormap{Name: "hot", stops: []color.RGBA{
		{10, 0, 0, 255},
		{230, 0, 0, 255},
		{255, 210, 0, 255},
		{255, 255, 255, 255},
	}}

	colormaps = []Colormap{Viridis, Inferno, Gray, Hot}
)

// ColormapByName returns the named colormap, falling back to Viridis
// for an empty or unknown name.
func ColormapByName(name string) Colormap {
	for _, c := range colormaps {
		if c.Name == name {
			return c
		}
	}
	return Viridis
}

// ColormapNames lists the available colormap names.
func ColormapNames() []string {
	names := make([]string, len(colormaps))
	for i, c := range colormaps {
		names[i] = c.Name
	}
	return names
}

// At returns the color for t in [0, 1]. Values outside the range clamp
// to the end stops.
func (c Colormap) At(t float64) color.RGBA {
	if len(c.stops) == 0 {
		return color.RGBA{A: 255}
	}
	if t <= 0 {
		return c.stops[0]
	}
	if t >= 1 {
		return c.stops[len(c.stops)-1]
	}

	segs := float64(len(c.stops) - 1)
	pos := t * segs
	i := int(pos)
	frac := pos - float64(i)

	a, b := c.stops[i], c.stops[i+1]
	return color.RGBA{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
		A: 255,
	}
}

// Palette samples the colormap into n entries for paletted images.
func (c Colormap) Palette(n int) color.Palette {
	if n < 2 {
		n = 2
	}
	p := make(color.Palette, n)
	for i := range p {
		p[i] = c.At(float64(i) / float64(n-1))
	}
	return p
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
}
