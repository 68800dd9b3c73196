package xcomplex_test

import (
	"math"
	"slices"
	"testing"

	"deedles.dev/xcomplex"
	"github.com/stretchr/testify/require"
)

func TestUnitCircle(t *testing.T) {
	points := slices.Collect(xcomplex.UnitCircle[float64](4))
	require.Len(t, points, 4)
	requireComplexInDelta(t, xcomplex.C(1.0, 0.0), points[0], epsilon)
	requireComplexInDelta(t, xcomplex.C(0.0, 1.0), points[1], epsilon)
	requireComplexInDelta(t, xcomplex.C(-1.0, 0.0), points[2], epsilon)
	requireComplexInDelta(t, xcomplex.C(0.0, -1.0), points[3], epsilon)
}

func TestUnitCircleSpacing(t *testing.T) {
	const n = 9

	var k int
	for p := range xcomplex.UnitCircle[float64](n) {
		require.InDelta(t, 1, p.Magnitude(), epsilon)

		want := 2 * math.Pi * float64(k) / n
		if want > math.Pi {
			want -= 2 * math.Pi
		}
		require.InDelta(t, want, p.Argument(), 1e-9, "point %v", k)
		k++
	}
	require.Equal(t, n, k)
}

func TestUnitCircleEmpty(t *testing.T) {
	require.Empty(t, slices.Collect(xcomplex.UnitCircle[float64](0)))
	require.Empty(t, slices.Collect(xcomplex.UnitCircle[float64](-3)))
}

func TestUnitCircleStop(t *testing.T) {
	var count int
	for range xcomplex.UnitCircle[float32](100) {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}

func TestFillUnitCircle(t *testing.T) {
	points := make([]xcomplex.Complex[float64], 6)
	xcomplex.FillUnitCircle(points)
	require.Equal(t, slices.Collect(xcomplex.UnitCircle[float64](6)), points)

	xcomplex.FillUnitCircle[float64](nil)
}
