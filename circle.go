package xcomplex

import (
	"iter"
	"math"

	"deedles.dev/xiter"
)

// UnitCircle returns an iterator that yields n points spaced evenly
// around the unit circle, starting at 1+0i and proceeding
// counterclockwise. In other words, it yields the nth roots of unity.
// If n is not positive, nothing is yielded.
func UnitCircle[T Float](n int) iter.Seq[Complex[T]] {
	return func(yield func(Complex[T]) bool) {
		step := 2 * math.Pi / float64(n)
		for k := range n {
			if !yield(FromPhase(T(step * float64(k)))) {
				return
			}
		}
	}
}

// FillUnitCircle is the same as [UnitCircle] but inserts the points
// into a slice instead of yielding them. The number of points is
// len(points).
func FillUnitCircle[T Float](points []Complex[T]) {
	for i, p := range xiter.Enumerate(UnitCircle[T](len(points))) {
		points[i] = p
	}
}
