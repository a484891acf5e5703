// Package fit fits a single quadratic Bézier to a contiguous run of
// planar samples by chord-length-parameterized least squares, and
// measures the fit's residual against the source samples.
//
// Fit and FitWithLimit are the only two entry points; everything else
// in this package is an unexported helper they share.
package fit
