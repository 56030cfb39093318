package mesher

import "github.com/san-kum/fdtdgrid/internal/grid"

// Mesher converts structures into local resolution intervals and smoothed
// step-size sequences for automatic grid generation along one axis.
type Mesher interface {
	// ParseStructures projects the structures onto the axis and returns
	// interval boundary coordinates together with the maximum allowed step
	// inside each interval. The first structure defines the domain; the
	// returned boundaries cover it exactly. len(maxDl) == len(bounds)-1.
	ParseStructures(axis grid.Axis, structures []grid.Structure, wavelength, minStepsPerWvl float64) (bounds, maxDl []float64, err error)

	// MakeGridMultipleIntervals generates one step-size array per interval.
	// Within each array the cumulative steps cover the interval length
	// exactly, adjacent steps never differ by more than maxScale, and no
	// step exceeds the interval's maximum. When periodic is set the grading
	// also matches the step sizes at the two domain ends.
	MakeGridMultipleIntervals(maxDl, lenIntervals []float64, maxScale float64, periodic bool) ([][]float64, error)
}
