package viz

import (
	"image/color"
	"testing"

	"github.com/san-kum/nbodyanim/internal/grid"
)

func TestImageArtifactIdentity(t *testing.T) {
	g, _ := grid.New(4, 4)
	fig := NewFigure(32, 32)

	im, err := fig.Image(g, Gray, LinearNorm{})
	if err != nil {
		t.Fatalf("image: %v", err)
	}

	g2, _ := grid.New(4, 4)
	g2.Set(5, 1, 1)
	if err := im.SetGrid(g2); err != nil {
		t.Fatalf("set grid: %v", err)
	}

	// The figure must still hold the same artifact object.
	if fig.Artifact() != Artifact(im) {
		t.Error("artifact identity lost after update")
	}
	if im.Grid() != g2 {
		t.Error("backing grid not replaced")
	}
}

func TestImageRejectsRank3(t *testing.T) {
	g3, _ := grid.New(4, 4, 4)
	fig := NewFigure(32, 32)
	if _, err := fig.Image(g3, Gray, LinearNorm{}); err == nil {
		t.Error("expected error seeding image with rank-3 grid")
	}

	g2, _ := grid.New(4, 4)
	im, _ := fig.Image(g2, Gray, LinearNorm{})
	if err := im.SetGrid(g3); err == nil {
		t.Error("expected error replacing with rank-3 grid")
	}
}

func TestImageRenderMapsExtremes(t *testing.T) {
	// One hot cell on a zero background: hottest pixel maps to the top
	// palette entry, background to the bottom.
	g, _ := grid.New(2, 2)
	g.Set(5, 0, 0)

	fig := NewFigure(4, 4)
	if _, err := fig.Image(g, Gray, LinearNorm{}); err != nil {
		t.Fatalf("image: %v", err)
	}

	img := fig.Render()
	if got := img.ColorIndexAt(0, 0); got != 255 {
		t.Errorf("hot cell: expected palette index 255, got %d", got)
	}
	if got := img.ColorIndexAt(3, 3); got != 0 {
		t.Errorf("cold cell: expected palette index 0, got %d", got)
	}
}

func TestScatterRender(t *testing.T) {
	fig := NewFigure(10, 10)
	sc := fig.Scatter([]float64{0}, []float64{0}, MarkerPoint)
	fig.SetLimits(0, 10, 0, 10)

	img := fig.Render()
	// y increases upward: (0,0) lands in the bottom-left pixel.
	if got := img.ColorIndexAt(0, 9); got != 1 {
		t.Errorf("expected point at bottom-left, index %d", got)
	}

	sc.SetData([]float64{10}, []float64{10})
	img = fig.Render()
	if got := img.ColorIndexAt(9, 0); got != 1 {
		t.Errorf("expected point at top-right after update, index %d", got)
	}
	if got := img.ColorIndexAt(0, 9); got != 0 {
		t.Error("stale point remained after update")
	}
}

func TestParseMarker(t *testing.T) {
	tests := []struct {
		in      string
		want    Marker
		wantErr bool
	}{
		{"", MarkerCircle, false},
		{"o", MarkerCircle, false},
		{".", MarkerPoint, false},
		{"+", MarkerPlus, false},
		{"x", MarkerCross, false},
		{"star", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMarker(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMarker(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMarker(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestColormapEndpoints(t *testing.T) {
	for _, name := range ColormapNames() {
		c := ColormapByName(name)
		if c.At(-1) != c.At(0) {
			t.Errorf("%s: values below 0 must clamp", name)
		}
		if c.At(2) != c.At(1) {
			t.Errorf("%s: values above 1 must clamp", name)
		}
	}

	if got := Gray.At(0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("gray start: got %v", got)
	}
	if got := Gray.At(1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("gray end: got %v", got)
	}
}

func TestColormapByNameFallback(t *testing.T) {
	if ColormapByName("").Name != "viridis" {
		t.Error("empty name should fall back to viridis")
	}
	if ColormapByName("nope").Name != "viridis" {
		t.Error("unknown name should fall back to viridis")
	}
}

func TestNorms(t *testing.T) {
	lin := LinearNorm{}
	if got := lin.Map(5, 0, 10); got != 0.5 {
		t.Errorf("linear midpoint: got %v", got)
	}
	if got := lin.Map(3, 3, 3); got != 0 {
		t.Errorf("degenerate range: got %v", got)
	}

	log := LogNorm{}
	if got := log.Map(0, 0, 10); got != 0 {
		t.Errorf("log at lo: got %v", got)
	}
	if got := log.Map(10, 0, 10); got != 1 {
		t.Errorf("log at hi: got %v", got)
	}
}

func TestCanvasDither(t *testing.T) {
	g, _ := grid.New(2, 2)
	g.Set(1, 0, 0)
	fig := NewFigure(16, 16)
	if _, err := fig.Image(g, Gray, LinearNorm{}); err != nil {
		t.Fatalf("image: %v", err)
	}

	c := NewCanvas(8, 4)
	c.DrawImage(fig.Render())

	out := c.String()
	if len(out) == 0 {
		t.Fatal("empty canvas output")
	}
	// The bright quadrant must produce at least one lit dot.
	lit := false
	for _, r := range out {
		if r != '\n' && r != 0x2800 {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("expected lit dots for bright region")
	}
}
