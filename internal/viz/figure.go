package viz

import (
	"fmt"
	"image"
	"image/color"

	"github.com/san-kum/nbodyanim/internal/grid"
)

// Marker selects the glyph drawn for each scatter point.
type Marker string

const (
	MarkerPoint  Marker = "."
	MarkerCircle Marker = "o"
	MarkerPlus   Marker = "+"
	MarkerCross  Marker = "x"
)

// ParseMarker validates a marker string, defaulting to MarkerCircle for
// the empty string.
func ParseMarker(s string) (Marker, error) {
	switch Marker(s) {
	case "":
		return MarkerCircle, nil
	case MarkerPoint, MarkerCircle, MarkerPlus, MarkerCross:
		return Marker(s), nil
	}
	return "", fmt.Errorf("viz: unknown marker %q", s)
}

// Artifact is a renderable plot object owned by a Figure. The same
// artifact instance persists across all frames of an animation; frame
// updates mutate it in place rather than rebuilding it.
type Artifact interface {
	render(f *Figure) *image.Paletted
}

// Figure holds one axes region with fixed data limits and a single
// artifact.
type Figure struct {
	Width, Height int // pixels
	Title         string

	xlim, ylim [2]float64
	artifact   Artifact
}

func NewFigure(width, height int) *Figure {
	if width <= 0 {
		width = 320
	}
	if height <= 0 {
		height = 320
	}
	return &Figure{
		Width:  width,
		Height: height,
		xlim:   [2]float64{0, 1},
		ylim:   [2]float64{0, 1},
	}
}

func (f *Figure) SetTitle(title string) { f.Title = title }

// SetLimits fixes the data-to-pixel mapping for scatter artifacts.
func (f *Figure) SetLimits(xlo, xhi, ylo, yhi float64) {
	f.xlim = [2]float64{xlo, xhi}
	f.ylim = [2]float64{ylo, yhi}
}

// Image attaches an image artifact seeded with a rank-2 grid.
func (f *Figure) Image(g *grid.Dense, cmap Colormap, norm Norm) (*Image, error) {
	if g.Rank() != 2 {
		return nil, fmt.Errorf("viz: image artifact needs a rank-2 grid, got rank %d", g.Rank())
	}
	if norm == nil {
		norm = LinearNorm{}
	}
	im := &Image{grid: g, cmap: cmap, norm: norm, palette: cmap.Palette(256)}
	f.artifact = im
	return im, nil
}

// Scatter attaches a point artifact seeded with coordinate columns.
func (f *Figure) Scatter(xs, ys []float64, marker Marker) *Scatter {
	sc := &Scatter{xs: xs, ys: ys, marker: marker}
	f.artifact = sc
	return sc
}

func (f *Figure) Artifact() Artifact { return f.artifact }

// Render rasterizes the current artifact state to a paletted frame.
func (f *Figure) Render() *image.Paletted {
	if f.artifact == nil {
		return image.NewPaletted(image.Rect(0, 0, f.Width, f.Height), color.Palette{color.Black})
	}
	return f.artifact.render(f)
}

// Image displays a 2D grid through a colormap, array row 0 at the top.
type Image struct {
	grid    *grid.Dense
	cmap    Colormap
	norm    Norm
	palette color.Palette
}

// SetGrid replaces the backing array. The artifact itself is reused.
func (im *Image) SetGrid(g *grid.Dense) error {
	if g.Rank() != 2 {
		return fmt.Errorf("viz: image artifact needs a rank-2 grid, got rank %d", g.Rank())
	}
	im.grid = g
	return nil
}

// Grid returns the current backing array.
func (im *Image) Grid() *grid.Dense { return im.grid }

func (im *Image) render(f *Figure) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, f.Width, f.Height), im.palette)
	shape := im.grid.Shape()
	rows, cols := shape[0], shape[1]
	lo, hi := im.grid.MinMax()
	last := len(im.palette) - 1

	for py := 0; py < f.Height; py++ {
		i := py * rows / f.Height
		for px := 0; px < f.Width; px++ {
			j := px * cols / f.Width
			t := im.norm.Map(im.grid.At(i, j), lo, hi)
			img.SetColorIndex(px, py, uint8(t*float64(last)))
		}
	}
	return img
}

// Scatter displays discrete points within the figure's data limits,
// y increasing upward.
type Scatter struct {
	xs, ys []float64
	marker Marker
}

// SetData replaces the coordinate columns. The artifact itself is
// reused.
func (sc *Scatter) SetData(xs, ys []float64) {
	sc.xs = xs
	sc.ys = ys
}

// Data returns the current coordinate columns.
func (sc *Scatter) Data() (xs, ys []float64) { return sc.xs, sc.ys }

func (sc *Scatter) render(f *Figure) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, f.Width, f.Height), color.Palette{color.Black, color.White})

	xspan := f.xlim[1] - f.xlim[0]
	yspan := f.ylim[1] - f.ylim[0]
	if xspan == 0 || yspan == 0 {
		return img
	}

	for i := range sc.xs {
		px := int((sc.xs[i] - f.xlim[0]) / xspan * float64(f.Width-1))
		py := f.Height - 1 - int((sc.ys[i]-f.ylim[0])/yspan*float64(f.Height-1))
		sc.drawMarker(img, px, py)
	}
	return img
}

func (sc *Scatter) drawMarker(img *image.Paletted, px, py int) {
	switch sc.marker {
	case MarkerPoint:
		setIndex(img, px, py)
	case MarkerPlus:
		for d := -2; d <= 2; d++ {
			setIndex(img, px+d, py)
			setIndex(img, px, py+d)
		}
	case MarkerCross:
		for d := -2; d <= 2; d++ {
			setIndex(img, px+d, py+d)
			setIndex(img, px+d, py-d)
		}
	default: // MarkerCircle
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx*dx+dy*dy <= 2 {
					setIndex(img, px+dx, py+dy)
				}
			}
		}
	}
}

func setIndex(img *image.Paletted, x, y int) {
	if image.Pt(x, y).In(img.Rect) {
		img.SetColorIndex(x, y, 1)
	}
}
