package gridspec

import (
	"math"

	"github.com/san-kum/fdtdgrid/internal/grid"
)

// foldSymmetry makes the sequence exactly mirror-symmetric about center
// when the symmetry flag is nonzero: the boundary closest to the center is
// shifted onto it, everything below the center is discarded, and the upper
// half is mirrored back. Mirroring (rather than recomputing) guarantees
// symmetry to floating-point precision.
func foldSymmetry(bounds grid.Coords1D, center float64, symmetry int) grid.Coords1D {
	if symmetry == 0 || len(bounds) == 0 {
		return bounds
	}

	nearest := 0
	for i, b := range bounds {
		if math.Abs(center-b) < math.Abs(center-bounds[nearest]) {
			nearest = i
		}
	}
	shift := center - bounds[nearest]

	shifted := make(grid.Coords1D, len(bounds))
	for i, b := range bounds {
		shifted[i] = b + shift
	}
	// a + (c - a) need not equal c in floating point; pin it.
	shifted[nearest] = center

	var upper grid.Coords1D
	for _, b := range shifted {
		if b >= center {
			upper = append(upper, b)
		}
	}

	out := make(grid.Coords1D, 0, 2*len(upper)-1)
	for i := len(upper) - 1; i >= 1; i-- {
		out = append(out, 2*center-upper[i])
	}
	return append(out, upper...)
}

// extendPML replicates the edge cell sizes outward: the first interior step
// prepended layers.Minus times, the last appended layers.Plus times. With
// fewer than two boundaries there is no step to extrapolate, so this is a
// no-op.
func extendPML(bounds grid.Coords1D, layers PMLLayers) grid.Coords1D {
	if len(bounds) < 2 {
		return bounds
	}

	first := bounds[1] - bounds[0]
	last := bounds[len(bounds)-1] - bounds[len(bounds)-2]

	out := make(grid.Coords1D, 0, layers.Minus+len(bounds)+layers.Plus)
	for i := layers.Minus; i > 0; i-- {
		out = append(out, bounds[0]-float64(i)*first)
	}
	out = append(out, bounds...)
	for i := 1; i <= layers.Plus; i++ {
		out = append(out, bounds[len(bounds)-1]+float64(i)*last)
	}
	return out
}
