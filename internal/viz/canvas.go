package viz

import (
	"image"
	"strings"
)

// Braille patterns: 2x4 dots per character cell, Unicode offset 0x2800.
// 1 4
// 2 5
// 3 6
// 7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille-dot terminal surface. Its sub-pixel resolution is
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	cells         []rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, cells: make([]rune, w*h)}
	c.Clear()
	return c
}

// Set turns on the dot at sub-pixel coordinates (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.cells[row*c.Width+col] |= pixelMap[y%4][x%2]
}

// Clear resets every cell to the empty Braille character.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = 0x2800
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.Height * (c.Width + 1))
	for row := 0; row < c.Height; row++ {
		b.WriteString(string(c.cells[row*c.Width : (row+1)*c.Width]))
		b.WriteByte('\n')
	}
	return b.String()
}

// bayer4 is a 4x4 ordered-dithering threshold matrix.
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// DrawImage clears the canvas and dithers img onto it, mapping pixel
// luminance to Braille dot density.
func (c *Canvas) DrawImage(img image.Image) {
	c.Clear()
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	dotsW, dotsH := c.Width*2, c.Height*4
	for dy := 0; dy < dotsH; dy++ {
		sy := bounds.Min.Y + dy*bounds.Dy()/dotsH
		for dx := 0; dx < dotsW; dx++ {
			sx := bounds.Min.X + dx*bounds.Dx()/dotsW
			r, g, b, _ := img.At(sx, sy).RGBA()
			lum := (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 65535.0
			threshold := (bayer4[dy%4][dx%4] + 0.5) / 16.0
			if lum > threshold {
				c.Set(dx, dy)
			}
		}
	}
}
