// Package bezierfit approximates a planar polyline with a piecewise
// quadratic Bézier curve.
//
// 🚀 What is bezierfit?
//
//	A small, pure-Go numeric kernel that turns a dense list of (x, y)
//	samples into a short list of quadratic Bézier segments:
//
//	  • Chord-length-parameterized least-squares fit per candidate segment
//	  • Parallel error-cache build over every admissible segment length
//	  • Dynamic-programming cover selection: fewest segments first,
//	    lowest cumulative residual second
//
// ✨ Why choose bezierfit?
//
//   - Predictable    — lexicographic (segment count, residual) objective,
//     deterministic regardless of worker count
//   - Embeddable     — no cgo, consumed as a library by drawing,
//     vectorization, and path-simplification pipelines
//   - Bounded        — every segment respects a configured length window
//     and residual ceiling; when no cover meets the ceiling, an explicit
//     ε-fallback retries without it, and a length window that cannot
//     cover the input is reported as optimizer.ErrInfeasibleConfig
//
// Under the hood, everything is organized under five subpackages:
//
//	geom/              — Point and QuadraticBezier primitives
//	fit/               — single-segment least-squares fit and residual
//	config/            — validated (min length, max length, max error) tuple
//	optimizer/         — error cache, DP segmentation, FitResult, FitCurve entry point
//	internal/parallel/ — worker pool behind the parallel error-cache build
//
// Quick example:
//
//	cfg := config.NewClamped(10, 50, 2.0)
//	result, err := optimizer.FitCurve(points, cfg)
//	svg := result.ToSVGPath()
//
//	go get github.com/katalvlaran/bezierfit
package bezierfit
