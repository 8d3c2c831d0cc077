package gm

import "fmt"

// Scale is a uniform scale factor converting values from Src to Dst units,
// e.g. the number of device pixels per layout pixel.
type Scale[T Scalar, Src, Dst any] struct {
	Factor T
}

func NewScale[Src, Dst any, T Scalar](factor T) Scale[T, Src, Dst] {
	return Scale[T, Src, Dst]{Factor: factor}
}

func IdentityScale[Src, Dst any, T Scalar]() Scale[T, Src, Dst] {
	return Scale[T, Src, Dst]{Factor: 1}
}

func (s Scale[T, Src, Dst]) Get() T {
	return s.Factor
}

func (s Scale[T, Src, Dst]) IsIdentity() bool {
	return s.Factor == 1
}

// Inverse returns the scale converting back from Dst to Src. The inverse of
// a zero scale has an infinite factor.
func (s Scale[T, Src, Dst]) Inverse() Scale[T, Dst, Src] {
	return Scale[T, Dst, Src]{Factor: 1 / s.Factor}
}

func (s Scale[T, Src, Dst]) TransformPoint2D(p Point2D[T, Src]) Point2D[T, Dst] {
	return Point2D[T, Dst]{X: p.X * s.Factor, Y: p.Y * s.Factor}
}

func (s Scale[T, Src, Dst]) TransformVector2D(v Vector2D[T, Src]) Vector2D[T, Dst] {
	return Vector2D[T, Dst]{X: v.X * s.Factor, Y: v.Y * s.Factor}
}

func (s Scale[T, Src, Dst]) TransformSize2D(size Size2D[T, Src]) Size2D[T, Dst] {
	return Size2D[T, Dst]{Width: size.Width * s.Factor, Height: size.Height * s.Factor}
}

func (s Scale[T, Src, Dst]) TransformRect(r Rect[T, Src]) Rect[T, Dst] {
	return Rect[T, Dst]{
		Origin: s.TransformPoint2D(r.Origin),
		Size:   s.TransformSize2D(r.Size),
	}
}

// TransformBox2D scales both corners. A negative factor swaps them, so the
// result is rebuilt from the transformed corners.
func (s Scale[T, Src, Dst]) TransformBox2D(b Box2D[T, Src]) Box2D[T, Dst] {
	return Box2DWithPoints(s.TransformPoint2D(b.Min), s.TransformPoint2D(b.Max))
}

func (s Scale[T, Src, Dst]) TransformPoint3D(p Point3D[T, Src]) Point3D[T, Dst] {
	return Point3D[T, Dst]{X: p.X * s.Factor, Y: p.Y * s.Factor, Z: p.Z * s.Factor}
}

func (s Scale[T, Src, Dst]) TransformVector3D(v Vector3D[T, Src]) Vector3D[T, Dst] {
	return Vector3D[T, Dst]{X: v.X * s.Factor, Y: v.Y * s.Factor, Z: v.Z * s.Factor}
}

func (s Scale[T, Src, Dst]) TransformSize3D(size Size3D[T, Src]) Size3D[T, Dst] {
	return Size3D[T, Dst]{
		Width:  size.Width * s.Factor,
		Height: size.Height * s.Factor,
		Depth:  size.Depth * s.Factor,
	}
}

func (s Scale[T, Src, Dst]) TransformBox3D(b Box3D[T, Src]) Box3D[T, Dst] {
	return Box3DWithPoints(s.TransformPoint3D(b.Min), s.TransformPoint3D(b.Max))
}

func (s Scale[T, Src, Dst]) ToTransform2D() Transform2D[T, Src, Dst] {
	return Transform2D[T, Src, Dst]{M11: s.Factor, M22: s.Factor}
}

func (s Scale[T, Src, Dst]) ToTransform3D() Transform3D[T, Src, Dst] {
	return Scale3D[Src, Dst](s.Factor, s.Factor, s.Factor)
}

func (s Scale[T, Src, Dst]) ApproxEq(other Scale[T, Src, Dst]) bool {
	return ApproxEqEps(s.Factor, other.Factor, Epsilon[T]())
}

func (s Scale[T, Src, Dst]) String() string {
	return fmt.Sprintf("Scale[%s -> %s](%v)", unitName[Src](), unitName[Dst](), s.Factor)
}

// ThenScale returns the scale applying a first and b second.
func ThenScale[T Scalar, Src, Mid, Dst any](a Scale[T, Src, Mid], b Scale[T, Mid, Dst]) Scale[T, Src, Dst] {
	return Scale[T, Src, Dst]{Factor: a.Factor * b.Factor}
}
