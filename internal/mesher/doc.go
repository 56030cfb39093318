// Package mesher provides the meshing capability consumed by the
// automatic grid strategy: turning structure geometry into per-interval
// resolution limits and smoothed step-size sequences.
//
// The [Mesher] interface is deliberately narrow so alternative meshing
// heuristics can be injected; [NewGraded] returns the default
// implementation.
package mesher
