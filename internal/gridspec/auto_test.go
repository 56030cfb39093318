package gridspec

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/fdtdgrid/internal/grid"
)

// fakeMesher records its inputs and returns canned intervals.
type fakeMesher struct {
	bounds   []float64
	maxDl    []float64
	steps    [][]float64
	err      error
	periodic bool
	wvl      float64
	minSteps float64
}

func (f *fakeMesher) ParseStructures(axis grid.Axis, structures []grid.Structure, wavelength, minStepsPerWvl float64) ([]float64, []float64, error) {
	f.wvl = wavelength
	f.minSteps = minStepsPerWvl
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.bounds, f.maxDl, nil
}

func (f *fakeMesher) MakeGridMultipleIntervals(maxDl, lenIntervals []float64, maxScale float64, periodic bool) ([][]float64, error) {
	f.periodic = periodic
	return f.steps, nil
}

func TestNewAutoValidation(t *testing.T) {
	if _, err := NewAuto(5.9, 1.4, nil); !errors.Is(err, ErrMinStepsPerWvl) {
		t.Errorf("expected ErrMinStepsPerWvl, got %v", err)
	}
	if _, err := NewAuto(10, 1.1, nil); !errors.Is(err, ErrMaxScaleRange) {
		t.Errorf("expected ErrMaxScaleRange for 1.1, got %v", err)
	}
	if _, err := NewAuto(10, 2.0, nil); !errors.Is(err, ErrMaxScaleRange) {
		t.Errorf("expected ErrMaxScaleRange for 2.0 (exclusive), got %v", err)
	}
	if _, err := NewAuto(6.0, 1.2, nil); err != nil {
		t.Errorf("boundary values 6.0/1.2 must be accepted, got %v", err)
	}
}

func TestAutoConcatenatesIntervals(t *testing.T) {
	m := &fakeMesher{
		bounds: []float64{-1, 0, 2},
		maxDl:  []float64{0.5, 1},
		steps:  [][]float64{{0.5, 0.5}, {1, 1}},
	}
	a, err := NewAuto(10, 1.4, m)
	if err != nil {
		t.Fatal(err)
	}

	bounds, err := a.initial(axisContext{center: 0.5, size: 3, wavelength: 1.55})
	if err != nil {
		t.Fatal(err)
	}

	// Concatenated steps cumulative-summed, offset by the first interval
	// boundary.
	want := []float64{-1, -0.5, 0, 1, 2}
	if len(bounds) != len(want) {
		t.Fatalf("expected %v, got %v", want, bounds)
	}
	for i := range want {
		if math.Abs(bounds[i]-want[i]) > 1e-12 {
			t.Errorf("bounds[%d]: expected %g, got %g", i, want[i], bounds[i])
		}
	}

	if m.wvl != 1.55 {
		t.Errorf("mesher received wavelength %g, want 1.55", m.wvl)
	}
	if m.minSteps != 10 {
		t.Errorf("mesher received minStepsPerWvl %g, want 10", m.minSteps)
	}
}

func TestAutoForwardsPeriodicFlag(t *testing.T) {
	m := &fakeMesher{
		bounds: []float64{0, 1},
		maxDl:  []float64{0.5},
		steps:  [][]float64{{0.5, 0.5}},
	}
	a, _ := NewAuto(10, 1.4, m)

	if _, err := a.initial(axisContext{size: 1, periodic: true}); err != nil {
		t.Fatal(err)
	}
	if !m.periodic {
		t.Error("periodic flag not forwarded to the mesher")
	}
}

func TestAutoPropagatesMesherError(t *testing.T) {
	m := &fakeMesher{err: errors.New("boom")}
	a, _ := NewAuto(10, 1.4, m)

	_, err := a.initial(axisContext{size: 1})
	if err == nil || !errors.Is(err, m.err) {
		t.Fatalf("expected wrapped mesher error, got %v", err)
	}
}

func TestDefaultAuto(t *testing.T) {
	a := DefaultAuto()
	if a.MinStepsPerWvl() != DefaultMinStepsPerWvl {
		t.Errorf("expected default min steps %g, got %g", DefaultMinStepsPerWvl, a.MinStepsPerWvl())
	}
	if a.MaxScale() != DefaultMaxScale {
		t.Errorf("expected default max scale %g, got %g", DefaultMaxScale, a.MaxScale())
	}
}
