package gridspec

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/fdtdgrid/internal/grid"
)

// Uniform generates equally spaced boundaries. The requested step is
// rounded down just enough to fit an integer cell count, so the grid spans
// the domain exactly.
type Uniform struct {
	dl float64
}

// NewUniform returns a uniform strategy with the given step size.
func NewUniform(dl float64) (*Uniform, error) {
	if dl <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveDl, dl)
	}
	return &Uniform{dl: dl}, nil
}

// Dl returns the requested step size.
func (u *Uniform) Dl() float64 { return u.dl }

func (u *Uniform) initial(ctx axisContext) (grid.Coords1D, error) {
	cells := int(math.Ceil(ctx.size / u.dl))
	if cells < 1 {
		cells = 1
	}

	// A zero-size axis still gets one cell, at the requested step.
	if ctx.size == 0 {
		return grid.Coords1D{ctx.center, ctx.center + u.dl}, nil
	}

	bounds := make(grid.Coords1D, cells+1)
	floats.Span(bounds, ctx.center-ctx.size/2, ctx.center+ctx.size/2)
	return bounds, nil
}
