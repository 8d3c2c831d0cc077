package gm

import "fmt"

// Size2D is a two dimensional extent. Sizes are expected to be non negative
// but this is not enforced.
type Size2D[T Scalar, U any] struct {
	Width, Height T
}

func Sz2[U any, T Scalar](width, height T) Size2D[T, U] {
	return Size2D[T, U]{Width: width, Height: height}
}

func Size2DFromArray[U any, T Scalar](a [2]T) Size2D[T, U] {
	return Size2D[T, U]{Width: a[0], Height: a[1]}
}

func (s Size2D[T, U]) Add(other Size2D[T, U]) Size2D[T, U] {
	s.Width += other.Width
	s.Height += other.Height
	return s
}

func (s Size2D[T, U]) Sub(other Size2D[T, U]) Size2D[T, U] {
	s.Width -= other.Width
	s.Height -= other.Height
	return s
}

func (s Size2D[T, U]) Mul(scalar T) Size2D[T, U] {
	s.Width *= scalar
	s.Height *= scalar
	return s
}

func (s Size2D[T, U]) Div(scalar T) Size2D[T, U] {
	s.Width /= scalar
	s.Height /= scalar
	return s
}

func (s Size2D[T, U]) Area() T {
	return s.Width * s.Height
}

// IsEmpty reports whether the size has no positive area. NaN extents are empty.
func (s Size2D[T, U]) IsEmpty() bool {
	return !(s.Width > 0 && s.Height > 0)
}

func (s Size2D[T, U]) Min(other Size2D[T, U]) Size2D[T, U] {
	return Size2D[T, U]{Width: min(s.Width, other.Width), Height: min(s.Height, other.Height)}
}

func (s Size2D[T, U]) Max(other Size2D[T, U]) Size2D[T, U] {
	return Size2D[T, U]{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

func (s Size2D[T, U]) Clamp(lo, hi Size2D[T, U]) Size2D[T, U] {
	return s.Max(lo).Min(hi)
}

func (s Size2D[T, U]) Lerp(other Size2D[T, U], t T) Size2D[T, U] {
	return Size2D[T, U]{Width: Lerp(s.Width, other.Width, t), Height: Lerp(s.Height, other.Height, t)}
}

func (s Size2D[T, U]) Abs() Size2D[T, U] {
	return Size2D[T, U]{Width: Abs(s.Width), Height: Abs(s.Height)}
}

func (s Size2D[T, U]) Round() Size2D[T, U] {
	return Size2D[T, U]{Width: round(s.Width), Height: round(s.Height)}
}

func (s Size2D[T, U]) ToVector() Vector2D[T, U] {
	return Vector2D[T, U]{X: s.Width, Y: s.Height}
}

func (s Size2D[T, U]) ToArray() [2]T {
	return [2]T{s.Width, s.Height}
}

func (s Size2D[T, U]) ApproxEq(other Size2D[T, U]) bool {
	eps := Epsilon[T]()
	return ApproxEqEps(s.Width, other.Width, eps) && ApproxEqEps(s.Height, other.Height, eps)
}

func (s Size2D[T, U]) String() string {
	return fmt.Sprintf("Size2D[%s](%vx%v)", unitName[U](), s.Width, s.Height)
}

// Size3D is a three dimensional extent.
type Size3D[T Scalar, U any] struct {
	Width, Height, Depth T
}

func Sz3[U any, T Scalar](width, height, depth T) Size3D[T, U] {
	return Size3D[T, U]{Width: width, Height: height, Depth: depth}
}

func Size3DFromArray[U any, T Scalar](a [3]T) Size3D[T, U] {
	return Size3D[T, U]{Width: a[0], Height: a[1], Depth: a[2]}
}

func (s Size3D[T, U]) Add(other Size3D[T, U]) Size3D[T, U] {
	s.Width += other.Width
	s.Height += other.Height
	s.Depth += other.Depth
	return s
}

func (s Size3D[T, U]) Sub(other Size3D[T, U]) Size3D[T, U] {
	s.Width -= other.Width
	s.Height -= other.Height
	s.Depth -= other.Depth
	return s
}

func (s Size3D[T, U]) Mul(scalar T) Size3D[T, U] {
	s.Width *= scalar
	s.Height *= scalar
	s.Depth *= scalar
	return s
}

func (s Size3D[T, U]) Div(scalar T) Size3D[T, U] {
	s.Width /= scalar
	s.Height /= scalar
	s.Depth /= scalar
	return s
}

func (s Size3D[T, U]) Volume() T {
	return s.Width * s.Height * s.Depth
}

func (s Size3D[T, U]) IsEmpty() bool {
	return !(s.Width > 0 && s.Height > 0 && s.Depth > 0)
}

func (s Size3D[T, U]) Min(other Size3D[T, U]) Size3D[T, U] {
	return Size3D[T, U]{
		Width:  min(s.Width, other.Width),
		Height: min(s.Height, other.Height),
		Depth:  min(s.Depth, other.Depth),
	}
}

func (s Size3D[T, U]) Max(other Size3D[T, U]) Size3D[T, U] {
	return Size3D[T, U]{
		Width:  max(s.Width, other.Width),
		Height: max(s.Height, other.Height),
		Depth:  max(s.Depth, other.Depth),
	}
}

func (s Size3D[T, U]) Clamp(lo, hi Size3D[T, U]) Size3D[T, U] {
	return s.Max(lo).Min(hi)
}

func (s Size3D[T, U]) ToVector() Vector3D[T, U] {
	return Vector3D[T, U]{X: s.Width, Y: s.Height, Z: s.Depth}
}

func (s Size3D[T, U]) ToArray() [3]T {
	return [3]T{s.Width, s.Height, s.Depth}
}

func (s Size3D[T, U]) String() string {
	return fmt.Sprintf("Size3D[%s](%vx%vx%v)", unitName[U](), s.Width, s.Height, s.Depth)
}
