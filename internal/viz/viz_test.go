package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/fdtdgrid/internal/grid"
)

func TestSummary(t *testing.T) {
	g := &grid.Grid{Boundaries: grid.Coords{
		X: grid.Coords1D{-0.5, 0, 0.5},
		Y: grid.Coords1D{-1, 1},
		Z: grid.Coords1D{0, 0.5, 1},
	}}

	out := Summary(g)
	for _, want := range []string{"axis x", "axis y", "axis z", "2 cells", "total cells"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestStepProfile(t *testing.T) {
	bounds := grid.Coords1D{0, 0.1, 0.25, 0.5, 1}
	out := StepProfile(bounds, grid.X, 40, 6)
	if !strings.Contains(out, "cell size along x") {
		t.Errorf("profile missing caption:\n%s", out)
	}
}

func TestStepProfileDegenerate(t *testing.T) {
	if out := StepProfile(grid.Coords1D{1}, grid.Z, 40, 6); !strings.Contains(out, "no cells") {
		t.Errorf("expected placeholder for empty axis, got %q", out)
	}
	// A single cell still plots.
	if out := StepProfile(grid.Coords1D{0, 1}, grid.Y, 40, 6); out == "" {
		t.Error("expected non-empty plot for a single cell")
	}
}
