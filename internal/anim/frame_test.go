package anim

import (
	"errors"
	"testing"

	"github.com/san-kum/nbodyanim/internal/grid"
	"github.com/san-kum/nbodyanim/internal/viz"
)

// stubModel is a scripted Model: Evolve returns a fixed energy
// sequence and records the step counts it was asked to advance.
type stubModel struct {
	gridSize  int
	density   *grid.Dense
	xs, ys    []float64
	energies  []float64
	calls     int
	stepsSeen []int
	evolveErr error
}

func (m *stubModel) GridSize() int                    { return m.gridSize }
func (m *stubModel) Positions() ([]float64, []float64) { return m.xs, m.ys }
func (m *stubModel) Density() *grid.Dense              { return m.density }

func (m *stubModel) Evolve(nsteps int) (float64, error) {
	m.stepsSeen = append(m.stepsSeen, nsteps)
	if m.evolveErr != nil {
		return 0, m.evolveErr
	}
	e := 0.0
	if m.calls < len(m.energies) {
		e = m.energies[m.calls]
	}
	m.calls++
	return e, nil
}

func newStubModel() *stubModel {
	d, _ := grid.New(4, 4)
	d.Set(5, 1, 2)
	return &stubModel{
		gridSize: 10,
		density:  d,
		xs:       []float64{1, 2, 3},
		ys:       []float64{4, 5, 6},
		energies: []float64{1.0, 2.0, 3.0},
	}
}

type recordingObserver struct {
	frames   []int
	energies []float64
}

func (r *recordingObserver) OnFrame(frame int, energy float64) {
	r.frames = append(r.frames, frame)
	r.energies = append(r.energies, energy)
}

func TestAdvanceGridStyle(t *testing.T) {
	model := newStubModel()
	fig := viz.NewFigure(16, 16)
	seed, _ := Planar{}.Project(model.density)
	img, err := fig.Image(seed, viz.Gray, viz.LinearNorm{})
	if err != nil {
		t.Fatalf("image: %v", err)
	}

	obs := &recordingObserver{}
	fc := &FrameContext{
		Model:     model,
		Artifact:  img,
		Style:     StyleGrid,
		Steps:     3,
		Projector: Planar{},
		Observers: []Observer{obs},
	}

	if err := Advance(0, fc); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if len(model.stepsSeen) != 1 || model.stepsSeen[0] != 3 {
		t.Errorf("expected one evolve of 3 steps, got %v", model.stepsSeen)
	}
	// Artifact now holds the transpose: density[1][2] appears at [2][1].
	if got := img.Grid().At(2, 1); got != 5 {
		t.Errorf("expected transposed hot cell at (2,1), got %v", got)
	}
	if len(obs.energies) != 1 || obs.energies[0] != 1.0 {
		t.Errorf("observer: expected [1.0], got %v", obs.energies)
	}

	// Artifact identity is preserved across ticks.
	if err := Advance(1, fc); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if fc.Artifact != viz.Artifact(img) {
		t.Error("artifact replaced between frames")
	}
}

func TestAdvancePointsStyle(t *testing.T) {
	model := newStubModel()
	fig := viz.NewFigure(16, 16)
	sc := fig.Scatter(nil, nil, viz.MarkerCircle)

	fc := &FrameContext{
		Model:    model,
		Artifact: sc,
		Style:    StylePoints,
		Steps:    1,
	}

	if err := Advance(0, fc); err != nil {
		t.Fatalf("advance: %v", err)
	}

	xs, ys := sc.Data()
	for i := range model.xs {
		if xs[i] != model.xs[i] || ys[i] != model.ys[i] {
			t.Errorf("point %d: expected (%v,%v), got (%v,%v)",
				i, model.xs[i], model.ys[i], xs[i], ys[i])
		}
	}
}

func TestAdvanceEvolveErrorPropagates(t *testing.T) {
	model := newStubModel()
	wantErr := errors.New("boom")
	model.evolveErr = wantErr

	fc := &FrameContext{Model: model, Style: StylePoints, Steps: 1}
	err := Advance(0, fc)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped evolve error, got %v", err)
	}
}

func TestAdvance3DCollapse(t *testing.T) {
	// 4x4x2 density with one column: [1][2][0]=2, [1][2][1]=3 -> sum 5,
	// transposed to (2,1).
	d, _ := grid.New(4, 4, 2)
	d.Set(2, 1, 2, 0)
	d.Set(3, 1, 2, 1)

	model := newStubModel()
	model.density = d

	fig := viz.NewFigure(16, 16)
	seed, err := DepthSum{}.Project(d)
	if err != nil {
		t.Fatalf("seed projection: %v", err)
	}
	img, err := fig.Image(seed, viz.Gray, viz.LinearNorm{})
	if err != nil {
		t.Fatalf("image: %v", err)
	}

	fc := &FrameContext{
		Model:     model,
		Artifact:  img,
		Style:     StyleGrid,
		Steps:     1,
		Projector: DepthSum{},
	}

	if err := Advance(0, fc); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if got := img.Grid().At(2, 1); got != 5 {
		t.Errorf("expected collapsed sum 5 at (2,1), got %v", got)
	}
	for _, v := range img.Grid().Data() {
		if v != 0 && v != 5 {
			t.Errorf("unexpected value %v in collapsed grid", v)
		}
	}
}
