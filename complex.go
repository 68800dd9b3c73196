// Package xcomplex provides a generic complex number type.
//
// It is patterned after the builtin complex64 and complex128 types
// and the math/cmplx package, but works over any floating-point
// element type, including named ones.
package xcomplex

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is a constraint for the element types that Complex can hold.
type Float interface {
	constraints.Float
}

// Complex is a complex number with components of type T. The zero
// value is 0+0i.
//
// No validation is performed on the components. NaN and infinite
// values are legal and propagate through the methods exactly as the
// underlying floating-point arithmetic dictates.
type Complex[T Float] struct {
	re, im T
}

// New returns a complex number with the given real part and an
// optional imaginary part. If im is omitted, the imaginary part is
// zero. Values beyond the first element of im are ignored.
func New[T Float](re T, im ...T) Complex[T] {
	c := Complex[T]{re: re}
	if len(im) != 0 {
		c.im = im[0]
	}
	return c
}

// C is shorthand for New(re, im).
func C[T Float](re, im T) Complex[T] {
	return Complex[T]{re: re, im: im}
}

// FromComplex128 converts a builtin complex128 to a Complex[T].
func FromComplex128[T Float](c complex128) Complex[T] {
	return Complex[T]{re: T(real(c)), im: T(imag(c))}
}

func (c Complex[T]) Real() T { return c.re }
func (c Complex[T]) Imaginary() T { return c.im }

// SetReal replaces the real part of c.
func (c *Complex[T]) SetReal(re T) { c.re = re }

// SetImaginary replaces the imaginary part of c.
func (c *Complex[T]) SetImaginary(im T) { c.im = im }

// RealRef returns a pointer to the real part of c. Writes through it
// modify c in place.
func (c *Complex[T]) RealRef() *T { return &c.re }

// ImaginaryRef returns a pointer to the imaginary part of c. Writes
// through it modify c in place.
func (c *Complex[T]) ImaginaryRef() *T { return &c.im }

// Magnitude returns the distance of c from the origin, sqrt(re²+im²).
func (c Complex[T]) Magnitude() T {
	return T(math.Sqrt(float64(c.re*c.re + c.im*c.im)))
}

// Argument returns the angle of c in radians, as computed by
// math.Atan2(im, re). The result lies in [-π, π].
//
// At the origin the result follows math.Atan2's conventions: 0 for
// (+0, +0), π for (-0 real, +0 imaginary), and the corresponding
// negative values when the imaginary part is -0.
func (c Complex[T]) Argument() T {
	return T(math.Atan2(float64(c.im), float64(c.re)))
}

// ArgumentDegrees is the same as [Complex.Argument] but returns the
// angle in degrees.
func (c Complex[T]) ArgumentDegrees() T {
	return Degrees(c.Argument())
}

// Polar returns the magnitude and argument of c together, such that
// c = r * e**(θi).
func (c Complex[T]) Polar() (r, θ T) {
	return c.Magnitude(), c.Argument()
}

// Conjugate returns the complex conjugate of c. c itself is not
// modified.
func (c Complex[T]) Conjugate() Complex[T] {
	return Complex[T]{re: c.re, im: -c.im}
}

// Complex128 converts c to the builtin complex128 type.
func (c Complex[T]) Complex128() complex128 {
	return complex(float64(c.re), float64(c.im))
}
