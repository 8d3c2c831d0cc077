package gm

import "fmt"

// Rotation2D is a rotation around the origin mapping from Src to Dst. A
// positive angle rotates the x axis towards the y axis.
type Rotation2D[T Scalar, Src, Dst any] struct {
	Angle Angle[T]
}

func NewRotation2D[Src, Dst any, T Scalar](angle Angle[T]) Rotation2D[T, Src, Dst] {
	return Rotation2D[T, Src, Dst]{Angle: angle}
}

func (r Rotation2D[T, Src, Dst]) Inverse() Rotation2D[T, Dst, Src] {
	return Rotation2D[T, Dst, Src]{Angle: r.Angle.Neg()}
}

// ToTransform returns the rotation matrix
//
//	[ cos  sin]
//	[-sin  cos]
//	[   0    0]
func (r Rotation2D[T, Src, Dst]) ToTransform() Transform2D[T, Src, Dst] {
	sin, cos := r.Angle.Sincos()
	return Transform2D[T, Src, Dst]{
		M11: cos, M12: sin,
		M21: -sin, M22: cos,
	}
}

func (r Rotation2D[T, Src, Dst]) TransformPoint(p Point2D[T, Src]) Point2D[T, Dst] {
	sin, cos := r.Angle.Sincos()
	return Point2D[T, Dst]{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

func (r Rotation2D[T, Src, Dst]) TransformVector(v Vector2D[T, Src]) Vector2D[T, Dst] {
	sin, cos := r.Angle.Sincos()
	return Vector2D[T, Dst]{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

func (r Rotation2D[T, Src, Dst]) String() string {
	return fmt.Sprintf("Rotation2D[%s -> %s](%s)", unitName[Src](), unitName[Dst](), r.Angle)
}

// ThenRotation2D returns the rotation applying a first and b second.
func ThenRotation2D[T Scalar, Src, Mid, Dst any](a Rotation2D[T, Src, Mid], b Rotation2D[T, Mid, Dst]) Rotation2D[T, Src, Dst] {
	return Rotation2D[T, Src, Dst]{Angle: a.Angle.Add(b.Angle)}
}
