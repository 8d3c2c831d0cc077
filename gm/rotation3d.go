package gm

import "fmt"

// Rotation3D is a rotation in 3d space mapping from Src to Dst, stored as the
// unit quaternion R + I*i + J*j + K*k.
type Rotation3D[T Scalar, Src, Dst any] struct {
	I, J, K, R T
}

func IdentityRotation3D[Src, Dst any, T Scalar]() Rotation3D[T, Src, Dst] {
	return Rotation3D[T, Src, Dst]{R: 1}
}

// Rotation3DFromQuaternion normalizes the quaternion (i, j, k, r) into a
// rotation. A zero quaternion yields NaN components.
func Rotation3DFromQuaternion[Src, Dst any, T Scalar](i, j, k, r T) Rotation3D[T, Src, Dst] {
	return Rotation3D[T, Src, Dst]{I: i, J: j, K: k, R: r}.Normalized()
}

// Rotation3DAroundAxis returns a rotation around the axis (x, y, z), matching
// Rotate3D. A zero axis yields the identity.
func Rotation3DAroundAxis[Src, Dst any, T Scalar](x, y, z T, angle Angle[T]) Rotation3D[T, Src, Dst] {
	axis, ok := Vector3D[T, Src]{X: x, Y: y, Z: z}.TryNormalized()
	if !ok {
		return IdentityRotation3D[Src, Dst, T]()
	}

	sin, cos := angle.Div(2).Sincos()

	return Rotation3D[T, Src, Dst]{
		I: axis.X * sin,
		J: axis.Y * sin,
		K: axis.Z * sin,
		R: cos,
	}
}

func (r Rotation3D[T, Src, Dst]) Normalized() Rotation3D[T, Src, Dst] {
	f := 1 / Sqrt(r.I*r.I+r.J*r.J+r.K*r.K+r.R*r.R)
	return Rotation3D[T, Src, Dst]{I: r.I * f, J: r.J * f, K: r.K * f, R: r.R * f}
}

// Inverse returns the conjugate of the quaternion.
func (r Rotation3D[T, Src, Dst]) Inverse() Rotation3D[T, Dst, Src] {
	return Rotation3D[T, Dst, Src]{I: -r.I, J: -r.J, K: -r.K, R: r.R}
}

// Then returns the rotation applying r first and other second.
func (r Rotation3D[T, Src, Dst]) Then(other Rotation3D[T, Dst, Dst]) Rotation3D[T, Src, Dst] {
	return ThenRotation3D(r, other)
}

// ThenRotation3D returns the rotation applying a first and b second, which is
// the quaternion product b*a.
func ThenRotation3D[T Scalar, Src, Mid, Dst any](a Rotation3D[T, Src, Mid], b Rotation3D[T, Mid, Dst]) Rotation3D[T, Src, Dst] {
	return Rotation3D[T, Src, Dst]{
		I: b.R*a.I + b.I*a.R + b.J*a.K - b.K*a.J,
		J: b.R*a.J - b.I*a.K + b.J*a.R + b.K*a.I,
		K: b.R*a.K + b.I*a.J - b.J*a.I + b.K*a.R,
		R: b.R*a.R - b.I*a.I - b.J*a.J - b.K*a.K,
	}
}

func (r Rotation3D[T, Src, Dst]) TransformVector3D(v Vector3D[T, Src]) Vector3D[T, Dst] {
	u := Vector3D[T, Src]{X: r.I, Y: r.J, Z: r.K}

	t := u.Cross(v).Mul(2)
	res := v.Add(t.Mul(r.R)).Add(u.Cross(t))

	return Vector3D[T, Dst]{X: res.X, Y: res.Y, Z: res.Z}
}

func (r Rotation3D[T, Src, Dst]) TransformPoint3D(p Point3D[T, Src]) Point3D[T, Dst] {
	return r.TransformVector3D(p.ToVector()).ToPoint()
}

// ToTransform returns the rotation matrix for row vectors.
func (r Rotation3D[T, Src, Dst]) ToTransform() Transform3D[T, Src, Dst] {
	ii := r.I * r.I
	jj := r.J * r.J
	kk := r.K * r.K

	return Transform3D[T, Src, Dst]{
		M11: 1 - 2*(jj+kk),
		M12: 2 * (r.I*r.J + r.K*r.R),
		M13: 2 * (r.I*r.K - r.J*r.R),

		M21: 2 * (r.I*r.J - r.K*r.R),
		M22: 1 - 2*(ii+kk),
		M23: 2 * (r.J*r.K + r.I*r.R),

		M31: 2 * (r.I*r.K + r.J*r.R),
		M32: 2 * (r.J*r.K - r.I*r.R),
		M33: 1 - 2*(ii+jj),

		M44: 1,
	}
}

// Slerp interpolates along the shortest arc between r and other.
func (r Rotation3D[T, Src, Dst]) Slerp(other Rotation3D[T, Src, Dst], t T) Rotation3D[T, Src, Dst] {
	dot := r.I*other.I + r.J*other.J + r.K*other.K + r.R*other.R

	// q and -q describe the same rotation, take the closer one
	if dot < 0 {
		other = Rotation3D[T, Src, Dst]{I: -other.I, J: -other.J, K: -other.K, R: -other.R}
		dot = -dot
	}

	// nearly identical, a linear blend is precise enough
	if dot > 1-Epsilon[T]() {
		return Rotation3D[T, Src, Dst]{
			I: Lerp(r.I, other.I, t),
			J: Lerp(r.J, other.J, t),
			K: Lerp(r.K, other.K, t),
			R: Lerp(r.R, other.R, t),
		}.Normalized()
	}

	theta := Atan2(Sqrt(1-dot*dot), dot)
	sinTheta := Sqrt(1 - dot*dot)

	a := Radians(theta*(1-t)).Sin() / sinTheta
	b := Radians(theta*t).Sin() / sinTheta

	return Rotation3D[T, Src, Dst]{
		I: a*r.I + b*other.I,
		J: a*r.J + b*other.J,
		K: a*r.K + b*other.K,
		R: a*r.R + b*other.R,
	}
}

// ApproxEq compares the described rotations, so q and -q are equal.
func (r Rotation3D[T, Src, Dst]) ApproxEq(other Rotation3D[T, Src, Dst]) bool {
	return r.ApproxEqEps(other, Epsilon[T]())
}

func (r Rotation3D[T, Src, Dst]) ApproxEqEps(other Rotation3D[T, Src, Dst], eps T) bool {
	same := ApproxEqEps(r.I, other.I, eps) && ApproxEqEps(r.J, other.J, eps) &&
		ApproxEqEps(r.K, other.K, eps) && ApproxEqEps(r.R, other.R, eps)

	opposite := ApproxEqEps(r.I, -other.I, eps) && ApproxEqEps(r.J, -other.J, eps) &&
		ApproxEqEps(r.K, -other.K, eps) && ApproxEqEps(r.R, -other.R, eps)

	return same || opposite
}

func (r Rotation3D[T, Src, Dst]) String() string {
	return fmt.Sprintf("Rotation3D[%s -> %s](i=%v, j=%v, k=%v, r=%v)", unitName[Src](), unitName[Dst](), r.I, r.J, r.K, r.R)
}
