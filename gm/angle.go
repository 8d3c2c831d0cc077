package gm

import (
	"fmt"
	"math"
)

// Angle is an angle in radians. Equality compares the raw value, so an angle
// of 2π is not equal to zero. Arithmetic never normalizes implicitly, use
// Positive or Signed for that.
type Angle[T Scalar] struct {
	Rad T
}

func Radians[T Scalar](radians T) Angle[T] {
	return Angle[T]{Rad: radians}
}

func Degrees[T Scalar](degrees T) Angle[T] {
	return Angle[T]{Rad: T(float64(degrees) * (math.Pi / 180))}
}

// Radians returns the value of the angle in radians.
func (a Angle[T]) Radians() T {
	return a.Rad
}

func (a Angle[T]) Degrees() T {
	return T(float64(a.Rad) * (180 / math.Pi))
}

// Positive returns the equivalent angle in the range [0, 2π)
func (a Angle[T]) Positive() Angle[T] {
	const twoPi = 2 * math.Pi

	angle := math.Mod(float64(a.Rad), twoPi)
	if angle < 0 {
		angle += twoPi
	}

	// adding 2π to a tiny negative value can round up to 2π, either here or
	// when converting to a narrower T
	res := T(angle)
	if res >= T(twoPi) {
		res = 0
	}

	return Angle[T]{Rad: res}
}

// Signed returns the equivalent angle in the range (-π, π]
func (a Angle[T]) Signed() Angle[T] {
	positive := Angle[T]{Rad: T(math.Pi - float64(a.Rad))}.Positive()
	return Angle[T]{Rad: T(math.Pi - float64(positive.Rad))}
}

// DifferenceTo returns the smallest signed difference between two angles
// in the range (-π, π]
func (a Angle[T]) DifferenceTo(other Angle[T]) Angle[T] {
	return a.Sub(other).Signed()
}

func (a Angle[T]) Add(other Angle[T]) Angle[T] {
	return Angle[T]{Rad: a.Rad + other.Rad}
}

func (a Angle[T]) Sub(other Angle[T]) Angle[T] {
	return Angle[T]{Rad: a.Rad - other.Rad}
}

func (a Angle[T]) Mul(factor T) Angle[T] {
	return Angle[T]{Rad: a.Rad * factor}
}

func (a Angle[T]) Div(factor T) Angle[T] {
	return Angle[T]{Rad: a.Rad / factor}
}

func (a Angle[T]) Neg() Angle[T] {
	return Angle[T]{Rad: -a.Rad}
}

func (a Angle[T]) Lerp(other Angle[T], t T) Angle[T] {
	return Angle[T]{Rad: Lerp(a.Rad, other.Rad, t)}
}

// Cos returns the cosine of the angle.
func (a Angle[T]) Cos() T {
	return T(math.Cos(float64(a.Rad)))
}

// Sin returns the sine of the angle.
func (a Angle[T]) Sin() T {
	return T(math.Sin(float64(a.Rad)))
}

func (a Angle[T]) Sincos() (sin, cos T) {
	return Sincos(a.Rad)
}

func (a Angle[T]) Tan() T {
	return Tan(a.Rad)
}

func (a Angle[T]) ApproxEq(other Angle[T]) bool {
	return ApproxEqEps(a.Rad, other.Rad, Epsilon[T]())
}

func (a Angle[T]) String() string {
	return fmt.Sprintf("Angle(%vrad)", a.Rad)
}
