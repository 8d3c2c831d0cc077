package gm

import "fmt"

// Length is a one dimensional distance tagged with its unit.
type Length[T Scalar, U any] struct {
	Value T
}

func LengthOf[U any, T Scalar](value T) Length[T, U] {
	return Length[T, U]{Value: value}
}

func (l Length[T, U]) Get() T {
	return l.Value
}

func (l Length[T, U]) Add(other Length[T, U]) Length[T, U] {
	return Length[T, U]{Value: l.Value + other.Value}
}

func (l Length[T, U]) Sub(other Length[T, U]) Length[T, U] {
	return Length[T, U]{Value: l.Value - other.Value}
}

func (l Length[T, U]) Mul(scalar T) Length[T, U] {
	return Length[T, U]{Value: l.Value * scalar}
}

func (l Length[T, U]) Div(scalar T) Length[T, U] {
	return Length[T, U]{Value: l.Value / scalar}
}

func (l Length[T, U]) Neg() Length[T, U] {
	return Length[T, U]{Value: -l.Value}
}

// Ratio divides two lengths of the same unit, which yields a plain number.
func (l Length[T, U]) Ratio(other Length[T, U]) T {
	return l.Value / other.Value
}

func (l Length[T, U]) String() string {
	return fmt.Sprintf("Length[%s](%v)", unitName[U](), l.Value)
}

// ScaleLength converts a length from Src to Dst units.
func ScaleLength[T Scalar, Src, Dst any](l Length[T, Src], scale Scale[T, Src, Dst]) Length[T, Dst] {
	return Length[T, Dst]{Value: l.Value * scale.Factor}
}

// SideOffsets2D describes the distance of each side of a rectangle to some
// other rectangle, e.g. a margin or padding.
type SideOffsets2D[T Scalar, U any] struct {
	Top, Right, Bottom, Left T
}

func NewSideOffsets2D[U any, T Scalar](top, right, bottom, left T) SideOffsets2D[T, U] {
	return SideOffsets2D[T, U]{Top: top, Right: right, Bottom: bottom, Left: left}
}

func SideOffsets2DAllSame[U any, T Scalar](all T) SideOffsets2D[T, U] {
	return SideOffsets2D[T, U]{Top: all, Right: all, Bottom: all, Left: all}
}

func (s SideOffsets2D[T, U]) Horizontal() T {
	return s.Left + s.Right
}

func (s SideOffsets2D[T, U]) Vertical() T {
	return s.Top + s.Bottom
}

func (s SideOffsets2D[T, U]) Add(other SideOffsets2D[T, U]) SideOffsets2D[T, U] {
	return SideOffsets2D[T, U]{
		Top:    s.Top + other.Top,
		Right:  s.Right + other.Right,
		Bottom: s.Bottom + other.Bottom,
		Left:   s.Left + other.Left,
	}
}

func (s SideOffsets2D[T, U]) IsZero() bool {
	return s == SideOffsets2D[T, U]{}
}

func (s SideOffsets2D[T, U]) String() string {
	return fmt.Sprintf("SideOffsets2D[%s](top=%v, right=%v, bottom=%v, left=%v)",
		unitName[U](), s.Top, s.Right, s.Bottom, s.Left)
}
