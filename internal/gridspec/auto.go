package gridspec

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/fdtdgrid/internal/grid"
	"github.com/san-kum/fdtdgrid/internal/mesher"
)

// Default automatic grid parameters.
const (
	DefaultMinStepsPerWvl = 10.0
	DefaultMaxScale       = 1.4

	minStepsPerWvlFloor = 6.0
	maxScaleLo          = 1.2
	maxScaleHi          = 2.0
)

// Auto generates a nonuniform grid whose local step size resolves the
// structures present on the axis, delegating interval extraction and step
// smoothing to a Mesher.
type Auto struct {
	minStepsPerWvl float64
	maxScale       float64
	mesher         mesher.Mesher
}

// NewAuto returns an automatic strategy. minStepsPerWvl must be at least 6
// and maxScale in [1.2, 2.0). A nil mesher selects the default graded one.
func NewAuto(minStepsPerWvl, maxScale float64, m mesher.Mesher) (*Auto, error) {
	if minStepsPerWvl < minStepsPerWvlFloor {
		return nil, fmt.Errorf("%w: got %g", ErrMinStepsPerWvl, minStepsPerWvl)
	}
	if maxScale < maxScaleLo || maxScale >= maxScaleHi {
		return nil, fmt.Errorf("%w: got %g", ErrMaxScaleRange, maxScale)
	}
	if m == nil {
		m = mesher.NewGraded()
	}
	return &Auto{minStepsPerWvl: minStepsPerWvl, maxScale: maxScale, mesher: m}, nil
}

// DefaultAuto returns an automatic strategy with the default parameters
// and the default graded mesher.
func DefaultAuto() *Auto {
	a, _ := NewAuto(DefaultMinStepsPerWvl, DefaultMaxScale, nil)
	return a
}

// MinStepsPerWvl returns the configured resolution floor.
func (a *Auto) MinStepsPerWvl() float64 { return a.minStepsPerWvl }

// MaxScale returns the configured grading ratio.
func (a *Auto) MaxScale() float64 { return a.maxScale }

func (a *Auto) initial(ctx axisContext) (grid.Coords1D, error) {
	intervalBounds, maxDl, err := a.mesher.ParseStructures(ctx.axis, ctx.structures, ctx.wavelength, a.minStepsPerWvl)
	if err != nil {
		return nil, fmt.Errorf("parse structures: %w", err)
	}
	if len(intervalBounds) < 2 || len(maxDl) != len(intervalBounds)-1 {
		return nil, fmt.Errorf("gridspec: mesher returned %d interval bounds and %d max steps", len(intervalBounds), len(maxDl))
	}

	lenIntervals := make([]float64, len(intervalBounds)-1)
	for i := range lenIntervals {
		lenIntervals[i] = intervalBounds[i+1] - intervalBounds[i]
	}

	dlLists, err := a.mesher.MakeGridMultipleIntervals(maxDl, lenIntervals, a.maxScale, ctx.periodic)
	if err != nil {
		return nil, fmt.Errorf("make grid: %w", err)
	}

	var steps []float64
	for _, dl := range dlLists {
		steps = append(steps, dl...)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("gridspec: mesher produced no steps for axis %s", ctx.axis)
	}

	sums := make([]float64, len(steps))
	floats.CumSum(sums, steps)

	bounds := make(grid.Coords1D, 0, len(steps)+1)
	bounds = append(bounds, intervalBounds[0])
	for _, s := range sums {
		bounds = append(bounds, intervalBounds[0]+s)
	}
	return bounds, nil
}
