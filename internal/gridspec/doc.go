// Package gridspec builds the discretized simulation grid: per-axis
// cell-boundary coordinates resolving the embedded structures at a
// wavelength-tied resolution, folded under mirror symmetry and extended
// outward for absorbing boundary layers.
//
// A [Spec] owns one strategy per axis ([Uniform], [Custom] or [Auto])
// plus an optional free-space wavelength. [Spec.Build] runs, per axis:
//
//	strategy initial boundaries -> symmetry fold -> PML extension
//
// and assembles the three sequences into a [grid.Grid]. The three axes
// carry no data dependency and are built concurrently.
//
// All failures are deterministic configuration errors surfaced before any
// output is produced; there is no partial-success mode.
package gridspec
