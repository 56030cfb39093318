package gridspec

import (
	"fmt"
	"log"
	"math"

	"github.com/san-kum/fdtdgrid/internal/grid"
)

// Relative and absolute tolerance for comparing source frequencies.
const (
	freqRTol = 1e-5
	freqATol = 1e-8
)

// resolveWavelength determines the wavelength fed to automatic strategies.
// An explicit value (or the absence of any automatic axis) passes through
// unchanged. Otherwise the sources must exist and agree on a central
// frequency, from which the free-space wavelength is derived.
func resolveWavelength(explicit float64, autoUsed bool, sources []grid.Source) (float64, error) {
	if explicit != 0 || !autoUsed {
		return explicit, nil
	}

	if len(sources) == 0 {
		return 0, ErrNoWavelength
	}

	f0 := sources[0].Freq0
	for i, src := range sources[1:] {
		if !freqClose(src.Freq0, f0) {
			return 0, fmt.Errorf("%w: source 0 at %g Hz, source %d at %g Hz", ErrAmbiguousWavelength, f0, i+1, src.Freq0)
		}
	}

	wavelength := grid.C0 / f0
	log.Printf("auto meshing using wavelength %.4f defined from sources", wavelength)
	return wavelength, nil
}

func freqClose(a, b float64) bool {
	return math.Abs(a-b) <= freqATol+freqRTol*math.Abs(b)
}
