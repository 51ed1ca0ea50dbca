// Package hypercube implements the dense multi-dimensional array model:
// dimensions with optional key indexes, flat row-major storage cubes, and
// the lightweight view wrappers (slice, transpose, roll, reshape, mask)
// that delegate every read and write to a wrapped source cube through an
// index-transformation pipeline.
//
// A Cube never copies data when a view is taken. Each view re-derives its
// shape once at construction and recomputes the wrapped cube's index on
// every access. Views stack freely; algebraically redundant stacks
// (double transpose, repeated flat rolls) are simplified by the smart
// constructors so wrapper chains stay shallow.
package hypercube
