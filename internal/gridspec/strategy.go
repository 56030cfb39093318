package gridspec

import "github.com/san-kum/fdtdgrid/internal/grid"

// PMLLayers is the number of absorbing boundary layers on the negative and
// positive side of one axis. Layer counts, not physical lengths.
type PMLLayers struct {
	Minus int
	Plus  int
}

// axisContext carries the per-axis inputs a strategy may consume.
type axisContext struct {
	center     float64
	size       float64
	axis       grid.Axis
	structures []grid.Structure
	wavelength float64
	periodic   bool
}

// AxisStrategy produces the initial boundary sequence for one axis,
// before symmetry folding and PML extension. The variant set is closed:
// Uniform, Custom and Auto.
type AxisStrategy interface {
	initial(ctx axisContext) (grid.Coords1D, error)
}
