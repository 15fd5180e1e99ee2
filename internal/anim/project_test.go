package anim

import (
	"testing"

	"github.com/san-kum/nbodyanim/internal/grid"
)

func TestPlanarProject(t *testing.T) {
	d, _ := grid.FromSlice([]float64{
		1, 2,
		3, 4,
	}, 2, 2)

	out, err := Planar{}.Project(d)
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	want := []float64{1, 3, 2, 4}
	for i, v := range out.Data() {
		if v != want[i] {
			t.Errorf("element %d: expected %v, got %v", i, want[i], v)
		}
	}
}

func TestPlanarRejectsRank3(t *testing.T) {
	d, _ := grid.New(2, 2, 2)
	if _, err := (Planar{}).Project(d); err == nil {
		t.Error("expected error for rank-3 density")
	}
}

func TestDepthSumProject(t *testing.T) {
	// Shape (2,3,2): output must be the axis-2 sum, transposed to (3,2).
	d, _ := grid.FromSlice([]float64{
		1, 1, // [0,0,:] -> 2
		2, 0, // [0,1,:] -> 2
		0, 3, // [0,2,:] -> 3
		4, 4, // [1,0,:] -> 8
		0, 0, // [1,1,:] -> 0
		5, 1, // [1,2,:] -> 6
	}, 2, 3, 2)

	out, err := DepthSum{}.Project(d)
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	if got := out.Shape(); got[0] != 3 || got[1] != 2 {
		t.Fatalf("expected shape [3 2], got %v", got)
	}
	// Sum is (2,3): [[2,2,3],[8,0,6]]; transposed: [[2,8],[2,0],[3,6]].
	want := []float64{2, 8, 2, 0, 3, 6}
	for i, v := range out.Data() {
		if v != want[i] {
			t.Errorf("element %d: expected %v, got %v", i, want[i], v)
		}
	}
}

func TestDepthSumRejectsRank2(t *testing.T) {
	d, _ := grid.New(2, 2)
	if _, err := (DepthSum{}).Project(d); err == nil {
		t.Error("expected error for rank-2 density")
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"grid", StyleGrid, false},
		{"points", StylePoints, false},
		{"pts", StylePoints, false},
		{"", 0, true},
		{"Grid", 0, true},
		{"scatter", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStyle(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseStyle(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
