package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// C0 is the free-space speed of light in µm/s.
const C0 = 2.99792458e14

// Axis identifies one of the three spatial axes.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Coords1D holds cell-boundary positions along one axis, strictly increasing.
type Coords1D []float64

func (c Coords1D) Clone() Coords1D {
	out := make(Coords1D, len(c))
	copy(out, c)
	return out
}

// Validate reports whether the sequence is a usable boundary set:
// at least two points, strictly increasing.
func (c Coords1D) Validate() error {
	if len(c) < 2 {
		return ErrTooFewBounds
	}
	for i := 1; i < len(c); i++ {
		if c[i] <= c[i-1] {
			return fmt.Errorf("%w: bounds[%d]=%g, bounds[%d]=%g", ErrNotIncreasing, i-1, c[i-1], i, c[i])
		}
	}
	return nil
}

// NumCells is the number of cells spanned by the boundaries.
func (c Coords1D) NumCells() int {
	if len(c) < 2 {
		return 0
	}
	return len(c) - 1
}

// Centers returns the midpoints of adjacent boundaries.
func (c Coords1D) Centers() Coords1D {
	if len(c) < 2 {
		return Coords1D{}
	}
	out := make(Coords1D, len(c)-1)
	for i := range out {
		out[i] = 0.5 * (c[i] + c[i+1])
	}
	return out
}

// Sizes returns the cell sizes (differences of adjacent boundaries).
func (c Coords1D) Sizes() Coords1D {
	if len(c) < 2 {
		return Coords1D{}
	}
	out := make(Coords1D, len(c)-1)
	for i := range out {
		out[i] = c[i+1] - c[i]
	}
	return out
}

// MinStep returns the smallest cell size, or 0 for fewer than two bounds.
func (c Coords1D) MinStep() float64 {
	s := c.Sizes()
	if len(s) == 0 {
		return 0
	}
	return floats.Min(s)
}

// MaxStep returns the largest cell size, or 0 for fewer than two bounds.
func (c Coords1D) MaxStep() float64 {
	s := c.Sizes()
	if len(s) == 0 {
		return 0
	}
	return floats.Max(s)
}

// Coords groups one boundary sequence per axis. The axes are independent;
// no cross-axis coupling exists.
type Coords struct {
	X Coords1D
	Y Coords1D
	Z Coords1D
}

// Along returns the sequence for the given axis.
func (c Coords) Along(a Axis) Coords1D {
	switch a {
	case X:
		return c.X
	case Y:
		return c.Y
	default:
		return c.Z
	}
}

// Grid is the immutable output of a build: cell boundaries along all three
// axes. Centers and sizes are always derived, never stored.
type Grid struct {
	Boundaries Coords
}

// Centers returns the cell-center coordinates along each axis.
func (g *Grid) Centers() Coords {
	return Coords{
		X: g.Boundaries.X.Centers(),
		Y: g.Boundaries.Y.Centers(),
		Z: g.Boundaries.Z.Centers(),
	}
}

// Sizes returns the cell sizes along each axis.
func (g *Grid) Sizes() Coords {
	return Coords{
		X: g.Boundaries.X.Sizes(),
		Y: g.Boundaries.Y.Sizes(),
		Z: g.Boundaries.Z.Sizes(),
	}
}

// NumCells returns the cell count along each axis.
func (g *Grid) NumCells() [3]int {
	return [3]int{
		g.Boundaries.X.NumCells(),
		g.Boundaries.Y.NumCells(),
		g.Boundaries.Z.NumCells(),
	}
}

// Validate checks the boundary invariant on all three axes.
func (g *Grid) Validate() error {
	for _, a := range []Axis{X, Y, Z} {
		if err := g.Boundaries.Along(a).Validate(); err != nil {
			return fmt.Errorf("axis %s: %w", a, err)
		}
	}
	return nil
}

// Structure is an axis-aligned box embedded in the simulation. The first
// structure passed to a build defines the simulation domain. RefIndex is
// the refractive index of the structure medium; zero means vacuum (1.0).
type Structure struct {
	Center   [3]float64
	Size     [3]float64
	RefIndex float64
}

// Bounds returns the structure extent along the given axis.
func (s Structure) Bounds(a Axis) (lo, hi float64) {
	half := s.Size[a] / 2
	return s.Center[a] - half, s.Center[a] + half
}

// Index returns the refractive index, defaulting to vacuum.
func (s Structure) Index() float64 {
	if s.RefIndex <= 0 {
		return 1.0
	}
	return s.RefIndex
}

// Source is a simulation excitation; only its central frequency matters
// for grid generation.
type Source struct {
	Freq0 float64
}
