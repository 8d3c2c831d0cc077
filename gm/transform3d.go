package gm

import "fmt"

// Transform3D is a homogeneous 4x4 transformation from Src to Dst in row
// major order. Like Transform2D it uses row vectors:
//
//	[x y z w] * M = [x' y' z' w']
//
// The translation lives in M41, M42 and M43, the perspective terms in
// M14, M24 and M34.
type Transform3D[T Scalar, Src, Dst any] struct {
	M11, M12, M13, M14 T
	M21, M22, M23, M24 T
	M31, M32, M33, M34 T
	M41, M42, M43, M44 T
}

// HomogeneousVector is a point in homogeneous coordinates as produced by a
// Transform3D before the division by W.
type HomogeneousVector[T Scalar, U any] struct {
	X, Y, Z, W T
}

// ToPoint3D divides by W. The second result is false if W is zero or not
// finite, in which case the point can not be projected.
func (h HomogeneousVector[T, U]) ToPoint3D() (Point3D[T, U], bool) {
	if h.W == 0 || !IsFinite(h.W) {
		return Point3D[T, U]{}, false
	}

	return Point3D[T, U]{X: h.X / h.W, Y: h.Y / h.W, Z: h.Z / h.W}, true
}

// ToPoint2D divides by W and drops the z coordinate.
func (h HomogeneousVector[T, U]) ToPoint2D() (Point2D[T, U], bool) {
	if h.W == 0 || !IsFinite(h.W) {
		return Point2D[T, U]{}, false
	}

	return Point2D[T, U]{X: h.X / h.W, Y: h.Y / h.W}, true
}

func (h HomogeneousVector[T, U]) ToArray() [4]T {
	return [4]T{h.X, h.Y, h.Z, h.W}
}

func Identity3D[Src, Dst any, T Scalar]() Transform3D[T, Src, Dst] {
	return Transform3D[T, Src, Dst]{M11: 1, M22: 1, M33: 1, M44: 1}
}

func NewTransform3D[Src, Dst any, T Scalar](
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 T,
) Transform3D[T, Src, Dst] {
	return Transform3D[T, Src, Dst]{
		M11: m11, M12: m12, M13: m13, M14: m14,
		M21: m21, M22: m22, M23: m23, M24: m24,
		M31: m31, M32: m32, M33: m33, M34: m34,
		M41: m41, M42: m42, M43: m43, M44: m44,
	}
}

// NewTransform3D2D builds a 3d transformation that only acts on x and y.
func NewTransform3D2D[Src, Dst any, T Scalar](m11, m12, m21, m22, m41, m42 T) Transform3D[T, Src, Dst] {
	return Transform3D[T, Src, Dst]{
		M11: m11, M12: m12,
		M21: m21, M22: m22,
		M33: 1,
		M41: m41, M42: m42, M44: 1,
	}
}

// Transform3DFromArray builds a transform from the 16 entries in row major
// order, row 0 first.
func Transform3DFromArray[Src, Dst any, T Scalar](a [16]T) Transform3D[T, Src, Dst] {
	return NewTransform3D[Src, Dst](
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	)
}

func Translate3D[Src, Dst any, T Scalar](x, y, z T) Transform3D[T, Src, Dst] {
	t := Identity3D[Src, Dst, T]()
	t.M41, t.M42, t.M43 = x, y, z
	return t
}

func Scale3D[Src, Dst any, T Scalar](x, y, z T) Transform3D[T, Src, Dst] {
	return Transform3D[T, Src, Dst]{M11: x, M22: y, M33: z, M44: 1}
}

// Rotate3D returns a rotation around the axis (x, y, z) using Rodrigues'
// formula. The axis does not need to be normalized. A rotation around the
// z axis matches Rotate2D. A zero axis yields the identity.
func Rotate3D[Src, Dst any, T Scalar](x, y, z T, angle Angle[T]) Transform3D[T, Src, Dst] {
	axis, ok := Vector3D[T, Src]{X: x, Y: y, Z: z}.TryNormalized()
	if !ok {
		return Identity3D[Src, Dst, T]()
	}

	x, y, z = axis.X, axis.Y, axis.Z

	xx := x * x
	yy := y * y
	zz := z * z

	sin, cos := angle.Div(2).Sincos()
	sc := sin * cos
	sq := sin * sin

	return Transform3D[T, Src, Dst]{
		M11: 1 - 2*(yy+zz)*sq,
		M12: 2 * (x*y*sq + z*sc),
		M13: 2 * (x*z*sq - y*sc),

		M21: 2 * (x*y*sq - z*sc),
		M22: 1 - 2*(xx+zz)*sq,
		M23: 2 * (y*z*sq + x*sc),

		M31: 2 * (x*z*sq + y*sc),
		M32: 2 * (y*z*sq - x*sc),
		M33: 1 - 2*(xx+yy)*sq,

		M44: 1,
	}
}

// Perspective3D returns a simple perspective projection with the viewer at
// distance d on the positive z axis. A point at z == d is mapped to w == 0.
func Perspective3D[Src, Dst any, T Scalar](d T) Transform3D[T, Src, Dst] {
	t := Identity3D[Src, Dst, T]()
	t.M34 = -1 / d
	return t
}

// Skew3D returns a 2d skew, alpha along the x axis and beta along the y axis.
func Skew3D[Src, Dst any, T Scalar](alpha, beta Angle[T]) Transform3D[T, Src, Dst] {
	t := Identity3D[Src, Dst, T]()
	t.M12 = beta.Tan()
	t.M21 = alpha.Tan()
	return t
}

// Ortho3D returns an orthographic projection of the given view volume onto
// the cube [-1, 1]³.
func Ortho3D[Src, Dst any, T Scalar](left, right, bottom, top, near, far T) Transform3D[T, Src, Dst] {
	t := Identity3D[Src, Dst, T]()
	t.M11 = 2 / (right - left)
	t.M22 = 2 / (top - bottom)
	t.M33 = -2 / (far - near)
	t.M41 = -((right + left) / (right - left))
	t.M42 = -((top + bottom) / (top - bottom))
	t.M43 = -((far + near) / (far - near))
	return t
}

// Then3D returns the transformation that applies a first and b second. This
// is the matrix product a*b.
func Then3D[T Scalar, Src, Mid, Dst any](a Transform3D[T, Src, Mid], b Transform3D[T, Mid, Dst]) Transform3D[T, Src, Dst] {
	am, bm := a.ToArray(), b.ToArray()

	var result [16]T
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row*4+col] = am[row*4+0]*bm[0*4+col] +
				am[row*4+1]*bm[1*4+col] +
				am[row*4+2]*bm[2*4+col] +
				am[row*4+3]*bm[3*4+col]
		}
	}

	return Transform3DFromArray[Src, Dst](result)
}

// ToArray returns the 16 entries in row major order, row 0 first.
func (t Transform3D[T, Src, Dst]) ToArray() [16]T {
	return [16]T{
		t.M11, t.M12, t.M13, t.M14,
		t.M21, t.M22, t.M23, t.M24,
		t.M31, t.M32, t.M33, t.M34,
		t.M41, t.M42, t.M43, t.M44,
	}
}

func (t Transform3D[T, Src, Dst]) IsIdentity() bool {
	return t == Identity3D[Src, Dst, T]()
}

// Is2D reports whether the transformation leaves z untouched and has no
// perspective, so that it can be represented by a Transform2D.
func (t Transform3D[T, Src, Dst]) Is2D() bool {
	return t.M31 == 0 && t.M32 == 0 &&
		t.M13 == 0 && t.M23 == 0 &&
		t.M43 == 0 && t.M14 == 0 &&
		t.M24 == 0 && t.M34 == 0 &&
		t.M33 == 1 && t.M44 == 1
}

// To2D returns the equivalent 2d transformation, or false if the
// transformation couples z or has perspective terms.
func (t Transform3D[T, Src, Dst]) To2D() (Transform2D[T, Src, Dst], bool) {
	if !t.Is2D() {
		return Transform2D[T, Src, Dst]{}, false
	}

	return NewTransform2D[Src, Dst](t.M11, t.M12, t.M21, t.M22, t.M41, t.M42), true
}

// minors holds the 2x2 sub determinants of the upper two rows (s) and the
// lower two rows (c) shared by Determinant and Inverse.
type minors[T Scalar] struct {
	s0, s1, s2, s3, s4, s5 T
	c0, c1, c2, c3, c4, c5 T
}

func (t Transform3D[T, Src, Dst]) minors() minors[T] {
	return minors[T]{
		s0: t.M11*t.M22 - t.M21*t.M12,
		s1: t.M11*t.M23 - t.M21*t.M13,
		s2: t.M11*t.M24 - t.M21*t.M14,
		s3: t.M12*t.M23 - t.M22*t.M13,
		s4: t.M12*t.M24 - t.M22*t.M14,
		s5: t.M13*t.M24 - t.M23*t.M14,

		c5: t.M33*t.M44 - t.M43*t.M34,
		c4: t.M32*t.M44 - t.M42*t.M34,
		c3: t.M32*t.M43 - t.M42*t.M33,
		c2: t.M31*t.M44 - t.M41*t.M34,
		c1: t.M31*t.M43 - t.M41*t.M33,
		c0: t.M31*t.M42 - t.M41*t.M32,
	}
}

func (m minors[T]) determinant() T {
	return m.s0*m.c5 - m.s1*m.c4 + m.s2*m.c3 + m.s3*m.c2 - m.s4*m.c1 + m.s5*m.c0
}

func (t Transform3D[T, Src, Dst]) Determinant() T {
	return t.minors().determinant()
}

// rowLengths returns the product of the lengths of the four rows.
func (t Transform3D[T, Src, Dst]) rowLengths() T {
	return Sqrt(t.M11*t.M11+t.M12*t.M12+t.M13*t.M13+t.M14*t.M14) *
		Sqrt(t.M21*t.M21+t.M22*t.M22+t.M23*t.M23+t.M24*t.M24) *
		Sqrt(t.M31*t.M31+t.M32*t.M32+t.M33*t.M33+t.M34*t.M34) *
		Sqrt(t.M41*t.M41+t.M42*t.M42+t.M43*t.M43+t.M44*t.M44)
}

func (t Transform3D[T, Src, Dst]) IsInvertible() bool {
	return !isSingular(t.Determinant(), t.rowLengths())
}

// Inverse returns the inverse transformation computed by cofactor expansion.
// The second result is false if the determinant is indistinguishable from zero.
func (t Transform3D[T, Src, Dst]) Inverse() (Transform3D[T, Dst, Src], bool) {
	m := t.minors()

	det := m.determinant()
	if isSingular(det, t.rowLengths()) {
		return Transform3D[T, Dst, Src]{}, false
	}

	f := 1 / det

	return Transform3D[T, Dst, Src]{
		M11: (t.M22*m.c5 - t.M23*m.c4 + t.M24*m.c3) * f,
		M12: (-t.M12*m.c5 + t.M13*m.c4 - t.M14*m.c3) * f,
		M13: (t.M42*m.s5 - t.M43*m.s4 + t.M44*m.s3) * f,
		M14: (-t.M32*m.s5 + t.M33*m.s4 - t.M34*m.s3) * f,

		M21: (-t.M21*m.c5 + t.M23*m.c2 - t.M24*m.c1) * f,
		M22: (t.M11*m.c5 - t.M13*m.c2 + t.M14*m.c1) * f,
		M23: (-t.M41*m.s5 + t.M43*m.s2 - t.M44*m.s1) * f,
		M24: (t.M31*m.s5 - t.M33*m.s2 + t.M34*m.s1) * f,

		M31: (t.M21*m.c4 - t.M22*m.c2 + t.M24*m.c0) * f,
		M32: (-t.M11*m.c4 + t.M12*m.c2 - t.M14*m.c0) * f,
		M33: (t.M41*m.s4 - t.M42*m.s2 + t.M44*m.s0) * f,
		M34: (-t.M31*m.s4 + t.M32*m.s2 - t.M34*m.s0) * f,

		M41: (-t.M21*m.c3 + t.M22*m.c1 - t.M23*m.c0) * f,
		M42: (t.M11*m.c3 - t.M12*m.c1 + t.M13*m.c0) * f,
		M43: (-t.M41*m.s3 + t.M42*m.s1 - t.M43*m.s0) * f,
		M44: (t.M31*m.s3 - t.M32*m.s1 + t.M33*m.s0) * f,
	}, true
}

// IsBackfaceVisible reports whether the transformation flips the orientation
// of the xyz axes, which is the case if the determinant of the upper left
// 3x3 block is negative.
func (t Transform3D[T, Src, Dst]) IsBackfaceVisible() bool {
	det := t.M11*(t.M22*t.M33-t.M23*t.M32) -
		t.M12*(t.M21*t.M33-t.M23*t.M31) +
		t.M13*(t.M21*t.M32-t.M22*t.M31)

	return det < 0
}

// TransformPoint3DH applies the transformation without dividing by w.
func (t Transform3D[T, Src, Dst]) TransformPoint3DH(p Point3D[T, Src]) HomogeneousVector[T, Dst] {
	return HomogeneousVector[T, Dst]{
		X: p.X*t.M11 + p.Y*t.M21 + p.Z*t.M31 + t.M41,
		Y: p.X*t.M12 + p.Y*t.M22 + p.Z*t.M32 + t.M42,
		Z: p.X*t.M13 + p.Y*t.M23 + p.Z*t.M33 + t.M43,
		W: p.X*t.M14 + p.Y*t.M24 + p.Z*t.M34 + t.M44,
	}
}

// TransformPoint3D applies the transformation and projects the result back
// by dividing by w. The second result is false if w is zero or not finite.
func (t Transform3D[T, Src, Dst]) TransformPoint3D(p Point3D[T, Src]) (Point3D[T, Dst], bool) {
	return t.TransformPoint3DH(p).ToPoint3D()
}

// TransformPoint2D transforms a point on the z = 0 plane and drops the
// resulting z coordinate.
func (t Transform3D[T, Src, Dst]) TransformPoint2D(p Point2D[T, Src]) (Point2D[T, Dst], bool) {
	return t.TransformPoint3DH(p.Extend(0)).ToPoint2D()
}

// TransformVector3D applies the linear part. Translation and perspective are ignored.
func (t Transform3D[T, Src, Dst]) TransformVector3D(v Vector3D[T, Src]) Vector3D[T, Dst] {
	return Vector3D[T, Dst]{
		X: v.X*t.M11 + v.Y*t.M21 + v.Z*t.M31,
		Y: v.X*t.M12 + v.Y*t.M22 + v.Z*t.M32,
		Z: v.X*t.M13 + v.Y*t.M23 + v.Z*t.M33,
	}
}

func (t Transform3D[T, Src, Dst]) TransformVector2D(v Vector2D[T, Src]) Vector2D[T, Dst] {
	return Vector2D[T, Dst]{
		X: v.X*t.M11 + v.Y*t.M21,
		Y: v.X*t.M12 + v.Y*t.M22,
	}
}

// OuterTransformedBox2D returns the bounding box of the projected corners of
// b, or false if any corner can not be projected.
func (t Transform3D[T, Src, Dst]) OuterTransformedBox2D(b Box2D[T, Src]) (Box2D[T, Dst], bool) {
	corners := [4]Point2D[T, Src]{b.TopLeft(), b.TopRight(), b.BottomLeft(), b.BottomRight()}

	var projected [4]Point2D[T, Dst]
	for idx, corner := range corners {
		p, ok := t.TransformPoint2D(corner)
		if !ok {
			return Box2D[T, Dst]{}, false
		}

		projected[idx] = p
	}

	return Box2DFromPoints(projected[:]...), true
}

// OuterTransformedBox3D returns the bounding box of the eight projected
// corners of b, or false if any corner can not be projected.
func (t Transform3D[T, Src, Dst]) OuterTransformedBox3D(b Box3D[T, Src]) (Box3D[T, Dst], bool) {
	var projected [8]Point3D[T, Dst]
	for idx := range projected {
		corner := b.Min
		if idx&1 != 0 {
			corner.X = b.Max.X
		}
		if idx&2 != 0 {
			corner.Y = b.Max.Y
		}
		if idx&4 != 0 {
			corner.Z = b.Max.Z
		}

		p, ok := t.TransformPoint3D(corner)
		if !ok {
			return Box3D[T, Dst]{}, false
		}

		projected[idx] = p
	}

	return Box3DFromPoints(projected[:]...), true
}

// Then appends a transformation that stays within the destination space.
// Use Then3D to change the destination space.
func (t Transform3D[T, Src, Dst]) Then(other Transform3D[T, Dst, Dst]) Transform3D[T, Src, Dst] {
	return Then3D(t, other)
}

func (t Transform3D[T, Src, Dst]) ThenTranslate(v Vector3D[T, Dst]) Transform3D[T, Src, Dst] {
	return Then3D(t, Translate3D[Dst, Dst](v.X, v.Y, v.Z))
}

func (t Transform3D[T, Src, Dst]) PreTranslate(v Vector3D[T, Src]) Transform3D[T, Src, Dst] {
	return Then3D(Translate3D[Src, Src](v.X, v.Y, v.Z), t)
}

func (t Transform3D[T, Src, Dst]) ThenScale(x, y, z T) Transform3D[T, Src, Dst] {
	return Then3D(t, Scale3D[Dst, Dst](x, y, z))
}

func (t Transform3D[T, Src, Dst]) PreScale(x, y, z T) Transform3D[T, Src, Dst] {
	return Then3D(Scale3D[Src, Src](x, y, z), t)
}

func (t Transform3D[T, Src, Dst]) ThenRotate(x, y, z T, angle Angle[T]) Transform3D[T, Src, Dst] {
	return Then3D(t, Rotate3D[Dst, Dst](x, y, z, angle))
}

func (t Transform3D[T, Src, Dst]) PreRotate(x, y, z T, angle Angle[T]) Transform3D[T, Src, Dst] {
	return Then3D(Rotate3D[Src, Src](x, y, z, angle), t)
}

func (t Transform3D[T, Src, Dst]) ApproxEq(other Transform3D[T, Src, Dst]) bool {
	return t.ApproxEqEps(other, Epsilon[T]())
}

func (t Transform3D[T, Src, Dst]) ApproxEqEps(other Transform3D[T, Src, Dst], eps T) bool {
	a, b := t.ToArray(), other.ToArray()
	for idx := range a {
		if !ApproxEqEps(a[idx], b[idx], eps) {
			return false
		}
	}

	return true
}

func (t Transform3D[T, Src, Dst]) String() string {
	return fmt.Sprintf("Transform3D[%s -> %s]%v", unitName[Src](), unitName[Dst](), t.ToArray())
}
