package gm

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of numeric types the geometry primitives can be built on.
type Scalar interface {
	constraints.Float
}

// Epsilon returns the default tolerance used by the ApproxEq methods.
func Epsilon[T Scalar]() T {
	return 1e-6
}

// MachineEpsilon returns the distance between 1 and the next representable
// value of T. Determinants with a magnitude at or below this are treated as zero.
func MachineEpsilon[T Scalar]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Nextafter32(1, 2) - 1)
	}

	return T(math.Nextafter(1, 2) - 1)
}

// ApproxEqEps reports whether a and b differ by no more than eps.
func ApproxEqEps[T Scalar](a, b, eps T) bool {
	return Abs(a-b) <= eps
}

// isSingular reports whether det is indistinguishable from zero relative to
// bound, the product of the row lengths of the matrix. The ratio of both is
// one for rotations and independent of uniform scaling.
func isSingular[T Scalar](det, bound T) bool {
	return !IsFinite(det) || Abs(det) <= MachineEpsilon[T]()*bound
}

func Abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

func Sqrt[T Scalar](v T) T {
	return T(math.Sqrt(float64(v)))
}

func Sincos[T Scalar](radians T) (sin, cos T) {
	s, c := math.Sincos(float64(radians))
	return T(s), T(c)
}

func Tan[T Scalar](radians T) T {
	return T(math.Tan(float64(radians)))
}

func Atan2[T Scalar](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite[T Scalar](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Lerp interpolates linearly between a and b. t is expected to be in [0, 1]
// but is not clamped.
func Lerp[T Scalar](a, b, t T) T {
	return a + (b-a)*t
}

func Clamp[T Scalar](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

func round[T Scalar](v T) T {
	return T(math.Round(float64(v)))
}

func floor[T Scalar](v T) T {
	return T(math.Floor(float64(v)))
}

func ceil[T Scalar](v T) T {
	return T(math.Ceil(float64(v)))
}
