package gridspec

import "errors"

// Configuration errors, raised at strategy construction.
var (
	// ErrNonPositiveDl indicates a uniform step size that is not positive.
	ErrNonPositiveDl = errors.New("gridspec: step size must be positive")

	// ErrEmptyCustomSteps indicates a custom grid with no step sizes.
	ErrEmptyCustomSteps = errors.New("gridspec: custom grid requires at least one step size")

	// ErrNonPositiveStep indicates a custom step list containing a zero or
	// negative entry, which would never reach the domain edge.
	ErrNonPositiveStep = errors.New("gridspec: custom step sizes must be positive")

	// ErrMinStepsPerWvl indicates too few steps per wavelength for a stable grid.
	ErrMinStepsPerWvl = errors.New("gridspec: min steps per wavelength must be at least 6")

	// ErrMaxScaleRange indicates a grading ratio outside [1.2, 2.0).
	ErrMaxScaleRange = errors.New("gridspec: max scale must be in [1.2, 2.0)")
)

// Wavelength resolution errors, raised at build time.
var (
	// ErrNoWavelength indicates an automatic grid with neither an explicit
	// wavelength nor any source to derive one from.
	ErrNoWavelength = errors.New("gridspec: automatic grid generation requires a wavelength or at least one source")

	// ErrAmbiguousWavelength indicates sources with inconsistent central
	// frequencies; the caller must supply a wavelength explicitly.
	ErrAmbiguousWavelength = errors.New("gridspec: sources have different central frequencies, supply a wavelength explicitly")
)
