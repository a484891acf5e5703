// Package optimizer chooses, among all admissible ways to cover a
// sample sequence with quadratic Bézier segments, the one using the
// fewest segments and, among ties, the lowest cumulative residual. It
// builds on fit (per-segment curve fitting) and config (the
// length/error window) and owns the one piece of concurrency in this
// module: the error-cache build fans out over internal/parallel.
package optimizer
