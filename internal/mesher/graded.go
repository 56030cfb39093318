package mesher

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/fdtdgrid/internal/grid"
)

var (
	// ErrNoStructures indicates parsing was attempted without a domain structure.
	ErrNoStructures = errors.New("mesher: at least one structure (the domain) is required")

	// ErrIntervalMismatch indicates maxDl and interval lengths of different shape.
	ErrIntervalMismatch = errors.New("mesher: maxDl and interval lengths must have equal length")

	// ErrScaleRange indicates a grading ratio that cannot converge.
	ErrScaleRange = errors.New("mesher: maxScale must be greater than 1")
)

// Graded is the default Mesher: structure bounds split the domain into
// intervals, each interval resolves the wavelength in its densest medium,
// and step sizes ramp between intervals by at most the grading ratio.
type Graded struct{}

// NewGraded returns the default graded mesher.
func NewGraded() *Graded { return &Graded{} }

// ParseStructures implements Mesher.
func (m *Graded) ParseStructures(axis grid.Axis, structures []grid.Structure, wavelength, minStepsPerWvl float64) ([]float64, []float64, error) {
	if len(structures) == 0 {
		return nil, nil, ErrNoStructures
	}

	domLo, domHi := structures[0].Bounds(axis)
	if domHi < domLo {
		return nil, nil, fmt.Errorf("mesher: domain has negative size %g along %s", domHi-domLo, axis)
	}

	// Zero-size axis (2D setups): one cell resolving the densest medium.
	if domHi == domLo {
		dl := wavelength / (minStepsPerWvl * maxIndex(structures))
		return []float64{domLo, domLo + dl}, []float64{dl}, nil
	}

	// Interval boundaries: domain edges plus structure bounds clipped inside.
	tol := (domHi - domLo) * 1e-9
	points := []float64{domLo, domHi}
	for _, s := range structures[1:] {
		lo, hi := s.Bounds(axis)
		if hi < domLo || lo > domHi {
			continue
		}
		if lo > domLo+tol && lo < domHi-tol {
			points = append(points, lo)
		}
		if hi > domLo+tol && hi < domHi-tol {
			points = append(points, hi)
		}
	}
	sort.Float64s(points)

	bounds := points[:1]
	for _, p := range points[1:] {
		if p-bounds[len(bounds)-1] > tol {
			bounds = append(bounds, p)
		}
	}
	if len(bounds) < 2 {
		bounds = []float64{domLo, domHi}
	}

	// Max step per interval: wavelength in the densest medium present.
	maxDl := make([]float64, len(bounds)-1)
	for i := range maxDl {
		mid := 0.5 * (bounds[i] + bounds[i+1])
		n := 1.0
		for _, s := range structures {
			lo, hi := s.Bounds(axis)
			if mid >= lo && mid <= hi && s.Index() > n {
				n = s.Index()
			}
		}
		maxDl[i] = wavelength / (minStepsPerWvl * n)
	}

	return bounds, maxDl, nil
}

// MakeGridMultipleIntervals implements Mesher.
func (m *Graded) MakeGridMultipleIntervals(maxDl, lenIntervals []float64, maxScale float64, periodic bool) ([][]float64, error) {
	if len(maxDl) != len(lenIntervals) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrIntervalMismatch, len(maxDl), len(lenIntervals))
	}
	if maxScale <= 1 {
		return nil, fmt.Errorf("%w: got %g", ErrScaleRange, maxScale)
	}

	n := len(maxDl)
	if n == 0 {
		return [][]float64{}, nil
	}

	// First pass: snap each interval to an integer cell count.
	eff := make([]float64, n)
	for i := range eff {
		if lenIntervals[i] <= 0 {
			return nil, fmt.Errorf("mesher: interval %d has non-positive length %g", i, lenIntervals[i])
		}
		if maxDl[i] <= 0 {
			return nil, fmt.Errorf("mesher: interval %d has non-positive max step %g", i, maxDl[i])
		}
		cells := math.Max(1, math.Ceil(lenIntervals[i]/maxDl[i]))
		eff[i] = lenIntervals[i] / cells
	}

	// Second pass: grade each interval against its neighbours.
	out := make([][]float64, n)
	for i := range out {
		capLo, capHi := eff[i], eff[i]
		if i > 0 {
			capLo = math.Min(capLo, eff[i-1]*maxScale)
		} else if periodic {
			capLo = math.Min(capLo, eff[n-1]*maxScale)
		}
		if i < n-1 {
			capHi = math.Min(capHi, eff[i+1]*maxScale)
		} else if periodic {
			capHi = math.Min(capHi, eff[0]*maxScale)
		}
		out[i] = gradeInterval(lenIntervals[i], eff[i], capLo, capHi, maxScale)
	}

	return out, nil
}

// gradeInterval builds steps covering length exactly: a ramp up from capLo,
// a plateau at target, and a ramp down to capHi, each adjacent pair within
// the grading ratio.
func gradeInterval(length, target, capLo, capHi, maxScale float64) []float64 {
	const eps = 1e-12

	if target >= length {
		return []float64{length}
	}

	var front, back []float64
	for s := capLo; s < target*(1-eps); s = math.Min(s*maxScale, target) {
		front = append(front, s)
	}
	for s := capHi; s < target*(1-eps); s = math.Min(s*maxScale, target) {
		back = append(back, s)
	}

	ramp := floats.Sum(front) + floats.Sum(back)
	rem := length - ramp
	if rem < 0 {
		// Ramps alone overshoot: fall back to a uniform fill at the
		// smaller end cap, which keeps every junction within ratio.
		dl := math.Min(capLo, capHi)
		cells := math.Max(1, math.Ceil(length/dl))
		dl = length / cells
		steps := make([]float64, int(cells))
		for i := range steps {
			steps[i] = dl
		}
		return steps
	}

	mid := 0
	if rem > eps*length {
		mid = int(math.Ceil(rem / target))
	}

	steps := make([]float64, 0, len(front)+mid+len(back))
	steps = append(steps, front...)
	for i := 0; i < mid; i++ {
		steps = append(steps, target)
	}
	for i := len(back) - 1; i >= 0; i-- {
		steps = append(steps, back[i])
	}

	// Snap to the interval length exactly; uniform scaling preserves the
	// adjacent-step ratio.
	total := floats.Sum(steps)
	floats.Scale(length/total, steps)
	if d := length - floats.Sum(steps); d != 0 {
		steps[len(steps)-1] += d
	}
	return steps
}

func maxIndex(structures []grid.Structure) float64 {
	n := 1.0
	for _, s := range structures {
		if s.Index() > n {
			n = s.Index()
		}
	}
	return n
}
