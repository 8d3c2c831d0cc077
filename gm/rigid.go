package gm

import "fmt"

// RigidTransform3D is a rotation followed by a translation. It preserves
// lengths and angles and is cheaper to invert than a general Transform3D.
type RigidTransform3D[T Scalar, Src, Dst any] struct {
	Rotation    Rotation3D[T, Src, Dst]
	Translation Vector3D[T, Dst]
}

func NewRigidTransform3D[T Scalar, Src, Dst any](rotation Rotation3D[T, Src, Dst], translation Vector3D[T, Dst]) RigidTransform3D[T, Src, Dst] {
	return RigidTransform3D[T, Src, Dst]{Rotation: rotation, Translation: translation}
}

func IdentityRigid3D[Src, Dst any, T Scalar]() RigidTransform3D[T, Src, Dst] {
	return RigidTransform3D[T, Src, Dst]{Rotation: IdentityRotation3D[Src, Dst, T]()}
}

// RigidTransform3DFromReversed returns the rigid transformation that
// translates first and rotates second.
func RigidTransform3DFromReversed[T Scalar, Src, Dst any](translation Vector3D[T, Src], rotation Rotation3D[T, Src, Dst]) RigidTransform3D[T, Src, Dst] {
	return RigidTransform3D[T, Src, Dst]{
		Rotation:    rotation,
		Translation: rotation.TransformVector3D(translation),
	}
}

// DecomposeReversed returns the translation to apply before the rotation
// so that both together are equal to t.
func (t RigidTransform3D[T, Src, Dst]) DecomposeReversed() (Vector3D[T, Src], Rotation3D[T, Src, Dst]) {
	return t.Rotation.Inverse().TransformVector3D(t.Translation), t.Rotation
}

func (t RigidTransform3D[T, Src, Dst]) TransformPoint(p Point3D[T, Src]) Point3D[T, Dst] {
	return t.Rotation.TransformPoint3D(p).Add(t.Translation)
}

func (t RigidTransform3D[T, Src, Dst]) TransformVector(v Vector3D[T, Src]) Vector3D[T, Dst] {
	return t.Rotation.TransformVector3D(v)
}

// Inverse rotates back first, then undoes the translation.
func (t RigidTransform3D[T, Src, Dst]) Inverse() RigidTransform3D[T, Dst, Src] {
	rotation := t.Rotation.Inverse()

	return RigidTransform3D[T, Dst, Src]{
		Rotation:    rotation,
		Translation: rotation.TransformVector3D(t.Translation).Neg(),
	}
}

func (t RigidTransform3D[T, Src, Dst]) Then(other RigidTransform3D[T, Dst, Dst]) RigidTransform3D[T, Src, Dst] {
	return ThenRigid3D(t, other)
}

// ThenRigid3D returns the rigid transformation applying a first and b second.
func ThenRigid3D[T Scalar, Src, Mid, Dst any](a RigidTransform3D[T, Src, Mid], b RigidTransform3D[T, Mid, Dst]) RigidTransform3D[T, Src, Dst] {
	return RigidTransform3D[T, Src, Dst]{
		Rotation:    ThenRotation3D(a.Rotation, b.Rotation),
		Translation: b.Rotation.TransformVector3D(a.Translation).Add(b.Translation),
	}
}

func (t RigidTransform3D[T, Src, Dst]) ToTransform() Transform3D[T, Src, Dst] {
	return t.Rotation.ToTransform().ThenTranslate(t.Translation)
}

func (t RigidTransform3D[T, Src, Dst]) ApproxEq(other RigidTransform3D[T, Src, Dst]) bool {
	return t.Rotation.ApproxEq(other.Rotation) && t.Translation.ApproxEq(other.Translation)
}

func (t RigidTransform3D[T, Src, Dst]) String() string {
	return fmt.Sprintf("RigidTransform3D[%s -> %s](%s, %s)", unitName[Src](), unitName[Dst](), t.Rotation, t.Translation)
}
