package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bezierfit/geom"
)

func TestPoint_Distance(t *testing.T) {
	cases := []struct {
		name string
		p, q geom.Point
		want float64
	}{
		{"same point", geom.NewPoint(1, 1), geom.NewPoint(1, 1), 0},
		{"3-4-5 triangle", geom.NewPoint(0, 0), geom.NewPoint(3, 4), 5},
		{"negative coords", geom.NewPoint(-2, -2), geom.NewPoint(-2, 2), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, tc.p.Distance(tc.q), 1e-9)
			require.InDelta(t, tc.want*tc.want, tc.p.DistanceSquared(tc.q), 1e-9)
		})
	}
}

func TestPoint_DistanceSquared_AvoidsSqrt(t *testing.T) {
	p, q := geom.NewPoint(0, 0), geom.NewPoint(1, 1)
	require.InDelta(t, 2.0, p.DistanceSquared(q), 1e-12)
	require.InDelta(t, math.Sqrt(2), p.Distance(q), 1e-12)
}

func TestPoint_Lerp(t *testing.T) {
	p := geom.NewPoint(0, 0)
	q := geom.NewPoint(10, 20)

	require.Equal(t, p, p.Lerp(q, 0))
	require.Equal(t, q, p.Lerp(q, 1))
	require.Equal(t, geom.NewPoint(5, 10), p.Lerp(q, 0.5))

	// t outside [0,1] extrapolates rather than clamping.
	require.Equal(t, geom.NewPoint(20, 40), p.Lerp(q, 2))
}
