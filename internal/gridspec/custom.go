package gridspec

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/fdtdgrid/internal/grid"
)

// Custom generates boundaries from an explicit list of step sizes,
// centered on the simulation center. If the supplied steps do not cover
// the domain, the first and last step sizes are repeated outward until
// the domain edge is reached or exceeded.
type Custom struct {
	dl []float64
}

// NewCustom returns a custom strategy from ordered step sizes. Every step
// must be positive; a zero or negative step could never reach the domain
// edge and is rejected here rather than looping forever at build time.
func NewCustom(dl []float64) (*Custom, error) {
	if len(dl) == 0 {
		return nil, ErrEmptyCustomSteps
	}
	for i, d := range dl {
		if d <= 0 {
			return nil, fmt.Errorf("%w: dl[%d]=%g", ErrNonPositiveStep, i, d)
		}
	}
	steps := make([]float64, len(dl))
	copy(steps, dl)
	return &Custom{dl: steps}, nil
}

// Dl returns a copy of the configured step sizes.
func (c *Custom) Dl() []float64 {
	out := make([]float64, len(c.dl))
	copy(out, c.dl)
	return out
}

func (c *Custom) initial(ctx axisContext) (grid.Coords1D, error) {
	// Cumulative-sum the steps into boundaries starting at zero.
	sums := make([]float64, len(c.dl))
	floats.CumSum(sums, c.dl)
	bounds := make([]float64, 0, len(c.dl)+1)
	bounds = append(bounds, 0)
	bounds = append(bounds, sums...)

	// Align the sequence midpoint with the domain center.
	shift := ctx.center - bounds[len(bounds)-1]/2
	for i := range bounds {
		bounds[i] += shift
	}

	// Chop off boundaries outside of the domain.
	lo := ctx.center - ctx.size/2
	hi := ctx.center + ctx.size/2
	clipped := bounds[:0]
	for _, b := range bounds {
		if b >= lo && b <= hi {
			clipped = append(clipped, b)
		}
	}

	// A domain narrower than every step can clip away all boundaries;
	// reseed at the center and let the repetition loops extend outward.
	if len(clipped) == 0 {
		clipped = append(clipped, ctx.center)
	}

	// Repeat the extreme step sizes until the domain is covered.
	dlFirst := c.dl[0]
	dlLast := c.dl[len(c.dl)-1]
	var head []float64
	for b := clipped[0]; b > lo; b -= dlFirst {
		head = append(head, b-dlFirst)
	}
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}
	out := append(head, clipped...)
	for out[len(out)-1] < hi {
		out = append(out, out[len(out)-1]+dlLast)
	}

	// A zero-size axis still gets one cell, like the uniform strategy.
	if len(out) < 2 {
		out = append(out, out[0]+dlLast)
	}

	return grid.Coords1D(out), nil
}
