package fit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bezierfit/fit"
	"github.com/katalvlaran/bezierfit/geom"
)

func TestFit_BoundaryCases(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		r := fit.Fit(nil)
		require.Equal(t, 0.0, r.Residual)
		require.Equal(t, r.Bezier.P0, r.Bezier.P1)
		require.Equal(t, r.Bezier.P1, r.Bezier.P2)
	})

	t.Run("single point", func(t *testing.T) {
		p := geom.NewPoint(3, 4)
		r := fit.Fit([]geom.Point{p})
		require.Equal(t, 0.0, r.Residual)
		require.Equal(t, p, r.Bezier.P0)
		require.Equal(t, p, r.Bezier.P1)
		require.Equal(t, p, r.Bezier.P2)
	})

	t.Run("two points", func(t *testing.T) {
		p0, p1 := geom.NewPoint(0, 0), geom.NewPoint(10, 0)
		r := fit.Fit([]geom.Point{p0, p1})
		require.Equal(t, 0.0, r.Residual)
		require.Equal(t, p0, r.Bezier.P0)
		require.Equal(t, p1, r.Bezier.P2)
		require.Equal(t, geom.NewPoint(5, 0), r.Bezier.P1)
	})
}

func TestFit_EndpointPinning(t *testing.T) {
	points := make([]geom.Point, 0, 20)
	for i := 0; i < 20; i++ {
		points = append(points, geom.NewPoint(float64(i), float64(i)))
	}

	r := fit.Fit(points)
	require.Equal(t, points[0], r.Bezier.P0)
	require.Equal(t, points[len(points)-1], r.Bezier.P2)
	// The curve passes through every sample, so the residual is only the
	// error of the 50-sample distance approximation: at most the squared
	// half sample spacing, (19·√2/49/2)² ≈ 0.0752.
	require.Less(t, r.Residual, 0.0752, "a straight line should fit within the distance sampling resolution")
}

func TestFit_CoincidentSamples(t *testing.T) {
	p := geom.NewPoint(7, 3)
	points := make([]geom.Point, 20)
	for i := range points {
		points[i] = p
	}

	r := fit.Fit(points)
	require.Equal(t, 0.0, r.Residual)
	require.Equal(t, p, r.Bezier.P0)
	require.Equal(t, p, r.Bezier.P2)
}

func TestFitWithLimit_MatchesFitWhenUnderBudget(t *testing.T) {
	points := make([]geom.Point, 0, 30)
	for i := 0; i < 30; i++ {
		x := float64(i)
		points = append(points, geom.NewPoint(x, 0.01*x*x))
	}

	full := fit.Fit(points)
	limited := fit.FitWithLimit(points, 1e9)
	require.InDelta(t, full.Residual, limited.Residual, 1e-9)
}

func TestFitWithLimit_OverBudgetStillExceedsLimit(t *testing.T) {
	// A sharply zig-zagging run forces a large true residual; a tiny
	// budget should trigger the early exit and return a residual that,
	// like the true (unlimited) residual, exceeds the limit.
	points := []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(1, 10),
		geom.NewPoint(2, 0),
		geom.NewPoint(3, 10),
		geom.NewPoint(4, 0),
		geom.NewPoint(5, 10),
	}

	full := fit.Fit(points)
	limited := fit.FitWithLimit(points, 1e-6)
	require.Greater(t, full.Residual, 1e-6)
	require.Greater(t, limited.Residual, 1e-6)
}
