package gm

import (
	"fmt"
	"image"
)

// Point2D is a location in the unit space U.
//
// Points and vectors only combine in meaningful ways: a point plus a vector is
// a point, and the difference of two points is a vector.
type Point2D[T Scalar, U any] struct {
	X, Y T
}

func Pt2[U any, T Scalar](x, y T) Point2D[T, U] {
	return Point2D[T, U]{X: x, Y: y}
}

func Point2DFromArray[U any, T Scalar](a [2]T) Point2D[T, U] {
	return Point2D[T, U]{X: a[0], Y: a[1]}
}

// Add returns the point translated by v.
func (p Point2D[T, U]) Add(v Vector2D[T, U]) Point2D[T, U] {
	p.X += v.X
	p.Y += v.Y
	return p
}

// AddSize returns the point translated by the extent of s.
func (p Point2D[T, U]) AddSize(s Size2D[T, U]) Point2D[T, U] {
	p.X += s.Width
	p.Y += s.Height
	return p
}

// Sub returns the vector pointing from other to p.
func (p Point2D[T, U]) Sub(other Point2D[T, U]) Vector2D[T, U] {
	return Vector2D[T, U]{X: p.X - other.X, Y: p.Y - other.Y}
}

// SubVector returns the point translated by the negated vector.
func (p Point2D[T, U]) SubVector(v Vector2D[T, U]) Point2D[T, U] {
	p.X -= v.X
	p.Y -= v.Y
	return p
}

// Mul scales the coordinates of the point, i.e. scales it relative to the origin.
func (p Point2D[T, U]) Mul(scalar T) Point2D[T, U] {
	p.X *= scalar
	p.Y *= scalar
	return p
}

func (p Point2D[T, U]) Div(scalar T) Point2D[T, U] {
	p.X /= scalar
	p.Y /= scalar
	return p
}

func (p Point2D[T, U]) Neg() Point2D[T, U] {
	return Point2D[T, U]{X: -p.X, Y: -p.Y}
}

func (p Point2D[T, U]) DistanceTo(other Point2D[T, U]) T {
	return p.Sub(other).Length()
}

func (p Point2D[T, U]) Min(other Point2D[T, U]) Point2D[T, U] {
	return Point2D[T, U]{X: min(p.X, other.X), Y: min(p.Y, other.Y)}
}

func (p Point2D[T, U]) Max(other Point2D[T, U]) Point2D[T, U] {
	return Point2D[T, U]{X: max(p.X, other.X), Y: max(p.Y, other.Y)}
}

func (p Point2D[T, U]) Clamp(lo, hi Point2D[T, U]) Point2D[T, U] {
	return p.Max(lo).Min(hi)
}

func (p Point2D[T, U]) Lerp(other Point2D[T, U], t T) Point2D[T, U] {
	return Point2D[T, U]{X: Lerp(p.X, other.X, t), Y: Lerp(p.Y, other.Y, t)}
}

func (p Point2D[T, U]) Round() Point2D[T, U] {
	return Point2D[T, U]{X: round(p.X), Y: round(p.Y)}
}

func (p Point2D[T, U]) Floor() Point2D[T, U] {
	return Point2D[T, U]{X: floor(p.X), Y: floor(p.Y)}
}

func (p Point2D[T, U]) Ceil() Point2D[T, U] {
	return Point2D[T, U]{X: ceil(p.X), Y: ceil(p.Y)}
}

// ToVector returns the vector from the origin to p.
func (p Point2D[T, U]) ToVector() Vector2D[T, U] {
	return Vector2D[T, U]{X: p.X, Y: p.Y}
}

// Extend returns a 3d point with the given z coordinate.
func (p Point2D[T, U]) Extend(z T) Point3D[T, U] {
	return Point3D[T, U]{X: p.X, Y: p.Y, Z: z}
}

func (p Point2D[T, U]) ToArray() [2]T {
	return [2]T{p.X, p.Y}
}

// ToImagePoint rounds the point to the nearest integer coordinates.
func (p Point2D[T, U]) ToImagePoint() image.Point {
	r := p.Round()
	return image.Point{X: int(r.X), Y: int(r.Y)}
}

func (p Point2D[T, U]) ApproxEq(other Point2D[T, U]) bool {
	return p.ApproxEqEps(other, Epsilon[T]())
}

func (p Point2D[T, U]) ApproxEqEps(other Point2D[T, U], eps T) bool {
	return ApproxEqEps(p.X, other.X, eps) && ApproxEqEps(p.Y, other.Y, eps)
}

func (p Point2D[T, U]) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

func (p Point2D[T, U]) String() string {
	return fmt.Sprintf("Point2D[%s](x=%v, y=%v)", unitName[U](), p.X, p.Y)
}

// Point3D is a location in the unit space U.
type Point3D[T Scalar, U any] struct {
	X, Y, Z T
}

func Pt3[U any, T Scalar](x, y, z T) Point3D[T, U] {
	return Point3D[T, U]{X: x, Y: y, Z: z}
}

func Point3DFromArray[U any, T Scalar](a [3]T) Point3D[T, U] {
	return Point3D[T, U]{X: a[0], Y: a[1], Z: a[2]}
}

func (p Point3D[T, U]) Add(v Vector3D[T, U]) Point3D[T, U] {
	p.X += v.X
	p.Y += v.Y
	p.Z += v.Z
	return p
}

func (p Point3D[T, U]) AddSize(s Size3D[T, U]) Point3D[T, U] {
	p.X += s.Width
	p.Y += s.Height
	p.Z += s.Depth
	return p
}

func (p Point3D[T, U]) Sub(other Point3D[T, U]) Vector3D[T, U] {
	return Vector3D[T, U]{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

func (p Point3D[T, U]) SubVector(v Vector3D[T, U]) Point3D[T, U] {
	p.X -= v.X
	p.Y -= v.Y
	p.Z -= v.Z
	return p
}

func (p Point3D[T, U]) Mul(scalar T) Point3D[T, U] {
	p.X *= scalar
	p.Y *= scalar
	p.Z *= scalar
	return p
}

func (p Point3D[T, U]) Div(scalar T) Point3D[T, U] {
	p.X /= scalar
	p.Y /= scalar
	p.Z /= scalar
	return p
}

func (p Point3D[T, U]) Neg() Point3D[T, U] {
	return Point3D[T, U]{X: -p.X, Y: -p.Y, Z: -p.Z}
}

func (p Point3D[T, U]) DistanceTo(other Point3D[T, U]) T {
	return p.Sub(other).Length()
}

func (p Point3D[T, U]) Min(other Point3D[T, U]) Point3D[T, U] {
	return Point3D[T, U]{X: min(p.X, other.X), Y: min(p.Y, other.Y), Z: min(p.Z, other.Z)}
}

func (p Point3D[T, U]) Max(other Point3D[T, U]) Point3D[T, U] {
	return Point3D[T, U]{X: max(p.X, other.X), Y: max(p.Y, other.Y), Z: max(p.Z, other.Z)}
}

func (p Point3D[T, U]) Clamp(lo, hi Point3D[T, U]) Point3D[T, U] {
	return p.Max(lo).Min(hi)
}

func (p Point3D[T, U]) Lerp(other Point3D[T, U], t T) Point3D[T, U] {
	return Point3D[T, U]{
		X: Lerp(p.X, other.X, t),
		Y: Lerp(p.Y, other.Y, t),
		Z: Lerp(p.Z, other.Z, t),
	}
}

func (p Point3D[T, U]) Round() Point3D[T, U] {
	return Point3D[T, U]{X: round(p.X), Y: round(p.Y), Z: round(p.Z)}
}

func (p Point3D[T, U]) ToVector() Vector3D[T, U] {
	return Vector3D[T, U]{X: p.X, Y: p.Y, Z: p.Z}
}

// Xy drops the z coordinate.
func (p Point3D[T, U]) Xy() Point2D[T, U] {
	return Point2D[T, U]{X: p.X, Y: p.Y}
}

func (p Point3D[T, U]) ToArray() [3]T {
	return [3]T{p.X, p.Y, p.Z}
}

func (p Point3D[T, U]) ApproxEq(other Point3D[T, U]) bool {
	return p.ApproxEqEps(other, Epsilon[T]())
}

func (p Point3D[T, U]) ApproxEqEps(other Point3D[T, U], eps T) bool {
	return ApproxEqEps(p.X, other.X, eps) &&
		ApproxEqEps(p.Y, other.Y, eps) &&
		ApproxEqEps(p.Z, other.Z, eps)
}

func (p Point3D[T, U]) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y) && IsFinite(p.Z)
}

func (p Point3D[T, U]) String() string {
	return fmt.Sprintf("Point3D[%s](x=%v, y=%v, z=%v)", unitName[U](), p.X, p.Y, p.Z)
}
