// Package grid defines the value types shared across the grid generation
// pipeline:
//
//   - [Coords1D]: strictly increasing cell-boundary positions along one axis
//   - [Coords]: three Coords1D, one per axis
//   - [Grid]: the immutable build output; centers and cell sizes are derived
//   - [Structure]: axis-aligned box consumed by the mesher
//   - [Source]: excitation with a central frequency
//
// All lengths are in micrometers and frequencies in hertz, so the
// free-space speed of light is [C0] µm/s.
//
// Every type here is an immutable value object: a build allocates fresh
// slices and nothing is mutated after construction.
package grid
