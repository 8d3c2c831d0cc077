package gm

import "fmt"

// Transform2D is a 2d affine transformation from Src to Dst stored as a 3x2
// row major matrix. Points are row vectors multiplied from the left:
//
//	[x y 1] * [M11 M12]  = [x' y']
//	          [M21 M22]
//	          [M31 M32]
//
// M31 and M32 hold the translation.
//
// Use Identity2D to build a new identity transformation.
type Transform2D[T Scalar, Src, Dst any] struct {
	M11, M12 T
	M21, M22 T
	M31, M32 T
}

// Identity2D returns the identity transformation.
func Identity2D[Src, Dst any, T Scalar]() Transform2D[T, Src, Dst] {
	return Transform2D[T, Src, Dst]{M11: 1, M22: 1}
}

func NewTransform2D[Src, Dst any, T Scalar](m11, m12, m21, m22, m31, m32 T) Transform2D[T, Src, Dst] {
	return Transform2D[T, Src, Dst]{
		M11: m11, M12: m12,
		M21: m21, M22: m22,
		M31: m31, M32: m32,
	}
}

// Transform2DFromArray builds a transform from [m11, m12, m21, m22, m31, m32].
func Transform2DFromArray[Src, Dst any, T Scalar](a [6]T) Transform2D[T, Src, Dst] {
	return NewTransform2D[Src, Dst](a[0], a[1], a[2], a[3], a[4], a[5])
}

func Translate2D[Src, Dst any, T Scalar](x, y T) Transform2D[T, Src, Dst] {
	return Transform2D[T, Src, Dst]{M11: 1, M22: 1, M31: x, M32: y}
}

// Rotate2D returns a rotation around the origin. A positive angle rotates the
// x axis towards the y axis.
func Rotate2D[Src, Dst any, T Scalar](angle Angle[T]) Transform2D[T, Src, Dst] {
	return NewRotation2D[Src, Dst](angle).ToTransform()
}

func Scale2D[Src, Dst any, T Scalar](x, y T) Transform2D[T, Src, Dst] {
	return Transform2D[T, Src, Dst]{M11: x, M22: y}
}

// Then2D returns the transformation that applies a first and b second. This
// is the matrix product a*b.
func Then2D[T Scalar, Src, Mid, Dst any](a Transform2D[T, Src, Mid], b Transform2D[T, Mid, Dst]) Transform2D[T, Src, Dst] {
	return Transform2D[T, Src, Dst]{
		M11: a.M11*b.M11 + a.M12*b.M21,
		M12: a.M11*b.M12 + a.M12*b.M22,

		M21: a.M21*b.M11 + a.M22*b.M21,
		M22: a.M21*b.M12 + a.M22*b.M22,

		M31: a.M31*b.M11 + a.M32*b.M21 + b.M31,
		M32: a.M31*b.M12 + a.M32*b.M22 + b.M32,
	}
}

// ToArray returns [m11, m12, m21, m22, m31, m32].
func (t Transform2D[T, Src, Dst]) ToArray() [6]T {
	return [6]T{t.M11, t.M12, t.M21, t.M22, t.M31, t.M32}
}

func (t Transform2D[T, Src, Dst]) IsIdentity() bool {
	return t == Identity2D[Src, Dst, T]()
}

// Determinant returns the determinant of the linear part.
func (t Transform2D[T, Src, Dst]) Determinant() T {
	return t.M11*t.M22 - t.M12*t.M21
}

func (t Transform2D[T, Src, Dst]) IsInvertible() bool {
	bound := Sqrt(t.M11*t.M11+t.M12*t.M12) * Sqrt(t.M21*t.M21+t.M22*t.M22)
	return !isSingular(t.Determinant(), bound)
}

// Inverse returns the inverse of the transformation if possible. The second
// result is false if the determinant is indistinguishable from zero.
func (t Transform2D[T, Src, Dst]) Inverse() (inverse Transform2D[T, Dst, Src], ok bool) {
	if !t.IsInvertible() {
		return Transform2D[T, Dst, Src]{}, false
	}

	f := 1 / t.Determinant()

	inverse = Transform2D[T, Dst, Src]{
		M11: f * t.M22,
		M12: f * -t.M12,
		M21: f * -t.M21,
		M22: f * t.M11,
		M31: f * (t.M21*t.M32 - t.M22*t.M31),
		M32: f * (t.M31*t.M12 - t.M11*t.M32),
	}

	return inverse, true
}

// TransformPoint applies the transformation to the given point.
func (t Transform2D[T, Src, Dst]) TransformPoint(p Point2D[T, Src]) Point2D[T, Dst] {
	return Point2D[T, Dst]{
		X: p.X*t.M11 + p.Y*t.M21 + t.M31,
		Y: p.X*t.M12 + p.Y*t.M22 + t.M32,
	}
}

// TransformVector applies the transform to a vector. This is different from
// transforming a point in that it will not apply the translation.
// The vector will only be rotated, scaled and sheared.
func (t Transform2D[T, Src, Dst]) TransformVector(v Vector2D[T, Src]) Vector2D[T, Dst] {
	return Vector2D[T, Dst]{
		X: v.X*t.M11 + v.Y*t.M21,
		Y: v.X*t.M12 + v.Y*t.M22,
	}
}

// OuterTransformedBox returns the axis aligned bounding box of the
// transformed corners of b.
func (t Transform2D[T, Src, Dst]) OuterTransformedBox(b Box2D[T, Src]) Box2D[T, Dst] {
	return Box2DFromPoints(
		t.TransformPoint(b.TopLeft()),
		t.TransformPoint(b.TopRight()),
		t.TransformPoint(b.BottomLeft()),
		t.TransformPoint(b.BottomRight()),
	)
}

func (t Transform2D[T, Src, Dst]) OuterTransformedRect(r Rect[T, Src]) Rect[T, Dst] {
	return t.OuterTransformedBox(r.ToBox()).ToRect()
}

// Then appends a transformation that stays within the destination space.
// Use Then2D to change the destination space.
func (t Transform2D[T, Src, Dst]) Then(other Transform2D[T, Dst, Dst]) Transform2D[T, Src, Dst] {
	return Then2D(t, other)
}

// ThenTranslate appends a translation in Dst space.
func (t Transform2D[T, Src, Dst]) ThenTranslate(v Vector2D[T, Dst]) Transform2D[T, Src, Dst] {
	return Then2D(t, Translate2D[Dst, Dst](v.X, v.Y))
}

// PreTranslate prepends a translation in Src space.
func (t Transform2D[T, Src, Dst]) PreTranslate(v Vector2D[T, Src]) Transform2D[T, Src, Dst] {
	return Then2D(Translate2D[Src, Src](v.X, v.Y), t)
}

func (t Transform2D[T, Src, Dst]) ThenRotate(angle Angle[T]) Transform2D[T, Src, Dst] {
	return Then2D(t, Rotate2D[Dst, Dst](angle))
}

func (t Transform2D[T, Src, Dst]) PreRotate(angle Angle[T]) Transform2D[T, Src, Dst] {
	return Then2D(Rotate2D[Src, Src](angle), t)
}

func (t Transform2D[T, Src, Dst]) ThenScale(x, y T) Transform2D[T, Src, Dst] {
	return Then2D(t, Scale2D[Dst, Dst](x, y))
}

func (t Transform2D[T, Src, Dst]) PreScale(x, y T) Transform2D[T, Src, Dst] {
	return Then2D(Scale2D[Src, Src](x, y), t)
}

// To3D embeds the transformation into a 3d transformation leaving z untouched.
func (t Transform2D[T, Src, Dst]) To3D() Transform3D[T, Src, Dst] {
	return NewTransform3D2D[Src, Dst](t.M11, t.M12, t.M21, t.M22, t.M31, t.M32)
}

func (t Transform2D[T, Src, Dst]) ApproxEq(other Transform2D[T, Src, Dst]) bool {
	return t.ApproxEqEps(other, Epsilon[T]())
}

// ApproxEqEps compares all six components with the given tolerance.
func (t Transform2D[T, Src, Dst]) ApproxEqEps(other Transform2D[T, Src, Dst], eps T) bool {
	a, b := t.ToArray(), other.ToArray()
	for idx := range a {
		if !ApproxEqEps(a[idx], b[idx], eps) {
			return false
		}
	}

	return true
}

func (t Transform2D[T, Src, Dst]) String() string {
	return fmt.Sprintf("Transform2D[%s -> %s](%v, %v, %v, %v, %v, %v)",
		unitName[Src](), unitName[Dst](),
		t.M11, t.M12, t.M21, t.M22, t.M31, t.M32)
}
