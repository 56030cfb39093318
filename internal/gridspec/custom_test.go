package gridspec

import (
	"errors"
	"math"
	"testing"
)

func TestNewCustomValidation(t *testing.T) {
	if _, err := NewCustom(nil); !errors.Is(err, ErrEmptyCustomSteps) {
		t.Errorf("expected ErrEmptyCustomSteps, got %v", err)
	}
	if _, err := NewCustom([]float64{0.1, 0, 0.1}); !errors.Is(err, ErrNonPositiveStep) {
		t.Errorf("expected ErrNonPositiveStep for zero step, got %v", err)
	}
	if _, err := NewCustom([]float64{-0.1}); !errors.Is(err, ErrNonPositiveStep) {
		t.Errorf("expected ErrNonPositiveStep for negative step, got %v", err)
	}
}

func TestCustomExactCoverageNoExtension(t *testing.T) {
	// Steps sum exactly to the domain size with binary-exact values:
	// no repetition should occur.
	c, err := NewCustom([]float64{0.25, 0.25})
	if err != nil {
		t.Fatal(err)
	}

	bounds, err := c.initial(axisContext{center: 0, size: 0.5})
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{-0.25, 0, 0.25}
	if len(bounds) != len(want) {
		t.Fatalf("expected %v, got %v", want, bounds)
	}
	for i := range want {
		if bounds[i] != want[i] {
			t.Errorf("bounds[%d]: expected %g, got %g", i, want[i], bounds[i])
		}
	}
}

func TestCustomDomainCoverage(t *testing.T) {
	tests := []struct {
		name   string
		dl     []float64
		center float64
		size   float64
	}{
		{"spanning", []float64{0.2, 0.1, 0.2}, 0, 0.5},
		{"undersized", []float64{0.125}, 0, 1.0},
		{"oversized", []float64{0.5, 0.5, 0.5, 0.5}, 0, 1.0},
		{"off-center", []float64{0.3, 0.3}, 1.5, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCustom(tt.dl)
			if err != nil {
				t.Fatal(err)
			}
			bounds, err := c.initial(axisContext{center: tt.center, size: tt.size})
			if err != nil {
				t.Fatal(err)
			}

			lo := tt.center - tt.size/2
			hi := tt.center + tt.size/2
			if bounds[0] > lo+1e-12 {
				t.Errorf("first boundary %g does not reach domain edge %g", bounds[0], lo)
			}
			if bounds[len(bounds)-1] < hi-1e-12 {
				t.Errorf("last boundary %g does not reach domain edge %g", bounds[len(bounds)-1], hi)
			}
			for i := 1; i < len(bounds); i++ {
				if bounds[i] <= bounds[i-1] {
					t.Fatalf("boundaries not strictly increasing at %d: %v", i, bounds)
				}
			}
		})
	}
}

func TestCustomRepeatsExtremeSteps(t *testing.T) {
	// A single 0.125 step must be repeated outward with the same size.
	c, _ := NewCustom([]float64{0.125})
	bounds, err := c.initial(axisContext{center: 0, size: 1.0})
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i < len(bounds); i++ {
		if got := bounds[i] - bounds[i-1]; got != 0.125 {
			t.Errorf("step %d: expected 0.125, got %g", i, got)
		}
	}
	if bounds[0] > -0.5 || bounds[len(bounds)-1] < 0.5 {
		t.Errorf("expected coverage of [-0.5, 0.5], got [%g, %g]", bounds[0], bounds[len(bounds)-1])
	}
}

func TestCustomExtensionUsesEdgeSteps(t *testing.T) {
	// Asymmetric steps: the head repeats dl[0], the tail repeats dl[-1].
	c, _ := NewCustom([]float64{0.5, 0.25})
	bounds, err := c.initial(axisContext{center: 0, size: 3.0})
	if err != nil {
		t.Fatal(err)
	}

	if got := bounds[1] - bounds[0]; math.Abs(got-0.5) > 1e-12 {
		t.Errorf("head extension: expected step 0.5, got %g", got)
	}
	n := len(bounds)
	if got := bounds[n-1] - bounds[n-2]; math.Abs(got-0.25) > 1e-12 {
		t.Errorf("tail extension: expected step 0.25, got %g", got)
	}
}

func TestCustomDomainSmallerThanEveryStep(t *testing.T) {
	// All cumsum boundaries fall outside the window; the sequence is
	// reseeded at the center and still covers the domain.
	c, _ := NewCustom([]float64{10})
	bounds, err := c.initial(axisContext{center: 0, size: 1.0})
	if err != nil {
		t.Fatal(err)
	}

	if len(bounds) < 2 {
		t.Fatalf("expected at least one cell, got %v", bounds)
	}
	if bounds[0] > -0.5 || bounds[len(bounds)-1] < 0.5 {
		t.Errorf("expected coverage of [-0.5, 0.5], got [%g, %g]", bounds[0], bounds[len(bounds)-1])
	}
}

func TestCustomDlReturnsCopy(t *testing.T) {
	c, _ := NewCustom([]float64{0.1, 0.2})
	dl := c.Dl()
	dl[0] = 99
	if c.Dl()[0] != 0.1 {
		t.Error("Dl must return a copy, not the internal slice")
	}
}
