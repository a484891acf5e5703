// Package geom provides the planar geometry primitives the fitting and
// optimizer packages build on: a 2D point and a quadratic Bézier curve.
//
// Both types carry value semantics (no pointers, no shared mutable
// state) so they can be passed freely across goroutine boundaries
// during the optimizer's parallel error-cache build.
package geom
