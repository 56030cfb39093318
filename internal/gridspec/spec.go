package gridspec

import (
	"fmt"
	"sync"

	"github.com/san-kum/fdtdgrid/internal/grid"
	"github.com/san-kum/fdtdgrid/internal/mesher"
)

// Spec is the collective grid specification for all three dimensions:
// one strategy per axis plus an optional free-space wavelength
// (zero means unset; it is then derived from the sources when any axis
// is automatic).
type Spec struct {
	GridX AxisStrategy
	GridY AxisStrategy
	GridZ AxisStrategy

	Wavelength float64
}

// New returns a spec with automatic grids at default parameters on every
// axis, matching the zero-configuration default of the simulation engine.
func New() *Spec {
	a := DefaultAuto()
	return &Spec{GridX: a, GridY: a, GridZ: a}
}

// AutoSpec uses the same automatic strategy along each axis. A zero
// wavelength defers to the sources at build time; a nil mesher selects
// the default graded one.
func AutoSpec(wavelength, minStepsPerWvl, maxScale float64, m mesher.Mesher) (*Spec, error) {
	a, err := NewAuto(minStepsPerWvl, maxScale, m)
	if err != nil {
		return nil, err
	}
	return &Spec{GridX: a, GridY: a, GridZ: a, Wavelength: wavelength}, nil
}

// UniformSpec uses the same uniform step along each axis.
func UniformSpec(dl float64) (*Spec, error) {
	u, err := NewUniform(dl)
	if err != nil {
		return nil, err
	}
	return &Spec{GridX: u, GridY: u, GridZ: u}, nil
}

// AutoUsed reports whether any axis uses the automatic strategy.
func (s *Spec) AutoUsed() bool {
	for _, strat := range []AxisStrategy{s.GridX, s.GridY, s.GridZ} {
		if _, ok := strat.(*Auto); ok {
			return true
		}
	}
	return false
}

// Build produces the full simulation grid. The first structure defines the
// simulation domain; symmetry holds one flag per axis (zero for none,
// nonzero for mirror symmetry about the domain center); pml holds the
// absorbing layer counts per axis. The three axes are independent and are
// built concurrently.
func (s *Spec) Build(structures []grid.Structure, symmetry [3]int, sources []grid.Source, pml [3]PMLLayers) (*grid.Grid, error) {
	if len(structures) == 0 {
		return nil, fmt.Errorf("gridspec: at least one structure (the simulation domain) is required")
	}

	wavelength, err := resolveWavelength(s.Wavelength, s.AutoUsed(), sources)
	if err != nil {
		return nil, err
	}

	domain := structures[0]
	strategies := [3]AxisStrategy{s.GridX, s.GridY, s.GridZ}

	var (
		wg     sync.WaitGroup
		coords [3]grid.Coords1D
		errs   [3]error
	)
	for a := 0; a < 3; a++ {
		wg.Add(1)
		go func(a int) {
			defer wg.Done()
			axis := grid.Axis(a)
			coords[a], errs[a] = buildAxis(strategies[a], axisContext{
				center:     domain.Center[a],
				size:       domain.Size[a],
				axis:       axis,
				structures: structures,
				wavelength: wavelength,
				periodic:   pml[a].Minus+pml[a].Plus == 0,
			}, symmetry[a], pml[a])
		}(a)
	}
	wg.Wait()

	for a, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("axis %s (%s): %w", grid.Axis(a), strategyName(strategies[a]), err)
		}
	}

	g := &grid.Grid{Boundaries: grid.Coords{X: coords[0], Y: coords[1], Z: coords[2]}}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// buildAxis runs the per-axis pipeline: initial generation, symmetry fold,
// then PML extension. Ordering matters: the fold must see the raw grid so
// the mirrored half reuses generated boundaries, and the PML extension
// must see the folded grid so it replicates the final edge steps.
func buildAxis(strat AxisStrategy, ctx axisContext, symmetry int, pml PMLLayers) (grid.Coords1D, error) {
	bounds, err := strat.initial(ctx)
	if err != nil {
		return nil, err
	}
	bounds = foldSymmetry(bounds, ctx.center, symmetry)
	bounds = extendPML(bounds, pml)
	return bounds, nil
}

func strategyName(s AxisStrategy) string {
	switch s.(type) {
	case *Uniform:
		return "uniform"
	case *Custom:
		return "custom"
	case *Auto:
		return "auto"
	default:
		return "unknown"
	}
}
