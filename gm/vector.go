package gm

import "fmt"

// Vector2D is a displacement in the unit space U. Unlike a Point2D it is not
// affected by the translation part of a transform.
type Vector2D[T Scalar, U any] struct {
	X, Y T
}

func Vec2[U any, T Scalar](x, y T) Vector2D[T, U] {
	return Vector2D[T, U]{X: x, Y: y}
}

// Vector2DSplat returns a vector with both components set to v.
func Vector2DSplat[U any, T Scalar](v T) Vector2D[T, U] {
	return Vector2D[T, U]{X: v, Y: v}
}

func Vector2DFromArray[U any, T Scalar](a [2]T) Vector2D[T, U] {
	return Vector2D[T, U]{X: a[0], Y: a[1]}
}

// Vector2DFromAngleAndLength returns the vector of the given length pointing
// in the direction of angle, measured from the positive x axis towards the
// positive y axis.
func Vector2DFromAngleAndLength[U any, T Scalar](angle Angle[T], length T) Vector2D[T, U] {
	sin, cos := angle.Sincos()
	return Vector2D[T, U]{X: cos * length, Y: sin * length}
}

func (v Vector2D[T, U]) Add(other Vector2D[T, U]) Vector2D[T, U] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vector2D[T, U]) Sub(other Vector2D[T, U]) Vector2D[T, U] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vector2D[T, U]) Mul(scalar T) Vector2D[T, U] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vector2D[T, U]) Div(scalar T) Vector2D[T, U] {
	v.X /= scalar
	v.Y /= scalar
	return v
}

func (v Vector2D[T, U]) MulEach(other Vector2D[T, U]) Vector2D[T, U] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vector2D[T, U]) DivEach(other Vector2D[T, U]) Vector2D[T, U] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

func (v Vector2D[T, U]) Neg() Vector2D[T, U] {
	return Vector2D[T, U]{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product. It is commutative.
func (v Vector2D[T, U]) Dot(other Vector2D[T, U]) T {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3d cross product of v and other,
// that is the signed area of the parallelogram they span.
func (v Vector2D[T, U]) Cross(other Vector2D[T, U]) T {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector2D[T, U]) LengthSqr() T {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2D[T, U]) Length() T {
	return Sqrt(v.LengthSqr())
}

// Normalized returns the vector scaled to length one. Normalizing the zero
// vector divides by zero and yields NaN components.
func (v Vector2D[T, U]) Normalized() Vector2D[T, U] {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

// TryNormalized returns the normalized vector, or false if v has zero or
// non finite length.
func (v Vector2D[T, U]) TryNormalized() (Vector2D[T, U], bool) {
	length := v.Length()
	if length == 0 || !IsFinite(length) {
		return Vector2D[T, U]{}, false
	}

	return v.Div(length), true
}

// Angle returns the angle between the positive x axis and v.
func (v Vector2D[T, U]) Angle() Angle[T] {
	return Radians(Atan2(v.Y, v.X))
}

// AngleTo returns the signed angle needed to rotate v onto other.
func (v Vector2D[T, U]) AngleTo(other Vector2D[T, U]) Angle[T] {
	return Radians(Atan2(v.Cross(other), v.Dot(other)))
}

// ProjectOnto returns the projection of v onto the direction of other.
func (v Vector2D[T, U]) ProjectOnto(other Vector2D[T, U]) Vector2D[T, U] {
	return other.Mul(v.Dot(other) / other.LengthSqr())
}

func (v Vector2D[T, U]) Abs() Vector2D[T, U] {
	return Vector2D[T, U]{X: Abs(v.X), Y: Abs(v.Y)}
}

func (v Vector2D[T, U]) Min(other Vector2D[T, U]) Vector2D[T, U] {
	return Vector2D[T, U]{X: min(v.X, other.X), Y: min(v.Y, other.Y)}
}

func (v Vector2D[T, U]) Max(other Vector2D[T, U]) Vector2D[T, U] {
	return Vector2D[T, U]{X: max(v.X, other.X), Y: max(v.Y, other.Y)}
}

// Clamp returns v with every component clamped to the range given by lo and hi.
func (v Vector2D[T, U]) Clamp(lo, hi Vector2D[T, U]) Vector2D[T, U] {
	return v.Max(lo).Min(hi)
}

func (v Vector2D[T, U]) Lerp(other Vector2D[T, U], t T) Vector2D[T, U] {
	return Vector2D[T, U]{X: Lerp(v.X, other.X, t), Y: Lerp(v.Y, other.Y, t)}
}

func (v Vector2D[T, U]) Round() Vector2D[T, U] {
	return Vector2D[T, U]{X: round(v.X), Y: round(v.Y)}
}

// Yx returns the vector with swapped components.
func (v Vector2D[T, U]) Yx() Vector2D[T, U] {
	return Vector2D[T, U]{X: v.Y, Y: v.X}
}

func (v Vector2D[T, U]) ToPoint() Point2D[T, U] {
	return Point2D[T, U]{X: v.X, Y: v.Y}
}

func (v Vector2D[T, U]) ToSize() Size2D[T, U] {
	return Size2D[T, U]{Width: v.X, Height: v.Y}
}

// Extend returns a 3d vector with the given z component.
func (v Vector2D[T, U]) Extend(z T) Vector3D[T, U] {
	return Vector3D[T, U]{X: v.X, Y: v.Y, Z: z}
}

func (v Vector2D[T, U]) ToArray() [2]T {
	return [2]T{v.X, v.Y}
}

func (v Vector2D[T, U]) ApproxEq(other Vector2D[T, U]) bool {
	return v.ApproxEqEps(other, Epsilon[T]())
}

func (v Vector2D[T, U]) ApproxEqEps(other Vector2D[T, U], eps T) bool {
	return ApproxEqEps(v.X, other.X, eps) && ApproxEqEps(v.Y, other.Y, eps)
}

func (v Vector2D[T, U]) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

func (v Vector2D[T, U]) String() string {
	return fmt.Sprintf("Vector2D[%s](x=%v, y=%v)", unitName[U](), v.X, v.Y)
}

// Vector3D is a displacement in the unit space U.
type Vector3D[T Scalar, U any] struct {
	X, Y, Z T
}

func Vec3[U any, T Scalar](x, y, z T) Vector3D[T, U] {
	return Vector3D[T, U]{X: x, Y: y, Z: z}
}

func Vector3DSplat[U any, T Scalar](v T) Vector3D[T, U] {
	return Vector3D[T, U]{X: v, Y: v, Z: v}
}

func Vector3DFromArray[U any, T Scalar](a [3]T) Vector3D[T, U] {
	return Vector3D[T, U]{X: a[0], Y: a[1], Z: a[2]}
}

func (v Vector3D[T, U]) Add(other Vector3D[T, U]) Vector3D[T, U] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v Vector3D[T, U]) Sub(other Vector3D[T, U]) Vector3D[T, U] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v Vector3D[T, U]) Mul(scalar T) Vector3D[T, U] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v Vector3D[T, U]) Div(scalar T) Vector3D[T, U] {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return v
}

func (v Vector3D[T, U]) MulEach(other Vector3D[T, U]) Vector3D[T, U] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

func (v Vector3D[T, U]) DivEach(other Vector3D[T, U]) Vector3D[T, U] {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	return v
}

func (v Vector3D[T, U]) Neg() Vector3D[T, U] {
	return Vector3D[T, U]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3D[T, U]) Dot(other Vector3D[T, U]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other. It is anti commutative:
// a.Cross(b) == b.Cross(a).Neg().
func (v Vector3D[T, U]) Cross(other Vector3D[T, U]) Vector3D[T, U] {
	return Vector3D[T, U]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3D[T, U]) LengthSqr() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3D[T, U]) Length() T {
	return Sqrt(v.LengthSqr())
}

// Normalized returns the vector scaled to length one. The zero vector
// normalizes to NaN components.
func (v Vector3D[T, U]) Normalized() Vector3D[T, U] {
	return v.Div(v.Length())
}

func (v Vector3D[T, U]) TryNormalized() (Vector3D[T, U], bool) {
	length := v.Length()
	if length == 0 || !IsFinite(length) {
		return Vector3D[T, U]{}, false
	}

	return v.Div(length), true
}

// AngleTo returns the unsigned angle between v and other.
func (v Vector3D[T, U]) AngleTo(other Vector3D[T, U]) Angle[T] {
	return Radians(Atan2(v.Cross(other).Length(), v.Dot(other)))
}

func (v Vector3D[T, U]) Abs() Vector3D[T, U] {
	return Vector3D[T, U]{X: Abs(v.X), Y: Abs(v.Y), Z: Abs(v.Z)}
}

func (v Vector3D[T, U]) Min(other Vector3D[T, U]) Vector3D[T, U] {
	return Vector3D[T, U]{X: min(v.X, other.X), Y: min(v.Y, other.Y), Z: min(v.Z, other.Z)}
}

func (v Vector3D[T, U]) Max(other Vector3D[T, U]) Vector3D[T, U] {
	return Vector3D[T, U]{X: max(v.X, other.X), Y: max(v.Y, other.Y), Z: max(v.Z, other.Z)}
}

func (v Vector3D[T, U]) Clamp(lo, hi Vector3D[T, U]) Vector3D[T, U] {
	return v.Max(lo).Min(hi)
}

func (v Vector3D[T, U]) Lerp(other Vector3D[T, U], t T) Vector3D[T, U] {
	return Vector3D[T, U]{
		X: Lerp(v.X, other.X, t),
		Y: Lerp(v.Y, other.Y, t),
		Z: Lerp(v.Z, other.Z, t),
	}
}

func (v Vector3D[T, U]) Round() Vector3D[T, U] {
	return Vector3D[T, U]{X: round(v.X), Y: round(v.Y), Z: round(v.Z)}
}

func (v Vector3D[T, U]) ToPoint() Point3D[T, U] {
	return Point3D[T, U]{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector3D[T, U]) ToSize() Size3D[T, U] {
	return Size3D[T, U]{Width: v.X, Height: v.Y, Depth: v.Z}
}

// Xy drops the z component.
func (v Vector3D[T, U]) Xy() Vector2D[T, U] {
	return Vector2D[T, U]{X: v.X, Y: v.Y}
}

func (v Vector3D[T, U]) ToArray() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

func (v Vector3D[T, U]) ApproxEq(other Vector3D[T, U]) bool {
	return v.ApproxEqEps(other, Epsilon[T]())
}

func (v Vector3D[T, U]) ApproxEqEps(other Vector3D[T, U], eps T) bool {
	return ApproxEqEps(v.X, other.X, eps) &&
		ApproxEqEps(v.Y, other.Y, eps) &&
		ApproxEqEps(v.Z, other.Z, eps)
}

func (v Vector3D[T, U]) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

func (v Vector3D[T, U]) String() string {
	return fmt.Sprintf("Vector3D[%s](x=%v, y=%v, z=%v)", unitName[U](), v.X, v.Y, v.Z)
}
