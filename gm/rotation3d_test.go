package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotation3D_MatchesRotate3D(t *testing.T) {
	axes := [][3]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}, {1, 2, 3}, {-2, 0.5, 1}}
	angles := []Angle[float64]{Degrees(0.0), Degrees(30.0), Degrees(90.0), Degrees(-135.0), Degrees(270.0)}

	for _, axis := range axes {
		for _, angle := range angles {
			rot := Rotation3DAroundAxis[World, Screen](axis[0], axis[1], axis[2], angle)
			mat := Rotate3D[World, Screen](axis[0], axis[1], axis[2], angle)

			require.True(t, rot.ToTransform().ApproxEq(mat), "axis=%v angle=%v", axis, angle)

			p := Pt3[World](1.0, -2.0, 0.5)
			expected, ok := mat.TransformPoint3D(p)
			require.True(t, ok)
			require.True(t, rot.TransformPoint3D(p).ApproxEq(expected), "axis=%v angle=%v", axis, angle)
		}
	}
}

func TestRotation3D_QuarterTurnAroundZ(t *testing.T) {
	rot := Rotation3DAroundAxis[World, World](0.0, 0.0, 1.0, Degrees(90.0))

	require.True(t, rot.TransformVector3D(Vec3[World](1.0, 0.0, 0.0)).ApproxEq(Vec3[World](0.0, 1.0, 0.0)))
	require.True(t, rot.TransformVector3D(Vec3[World](0.0, 0.0, 2.0)).ApproxEq(Vec3[World](0.0, 0.0, 2.0)))
}

func TestRotation3D_ZeroAxis(t *testing.T) {
	rot := Rotation3DAroundAxis[World, World](0.0, 0.0, 0.0, Degrees(45.0))
	require.Equal(t, IdentityRotation3D[World, World, float64](), rot)
}

func TestRotation3D_FromQuaternionNormalizes(t *testing.T) {
	rot := Rotation3DFromQuaternion[World, World](0.0, 0.0, 2.0, 2.0)

	require.InDelta(t, math.Sqrt(0.5), rot.K, 1e-12)
	require.InDelta(t, math.Sqrt(0.5), rot.R, 1e-12)
	require.True(t, rot.ApproxEq(Rotation3DAroundAxis[World, World](0.0, 0.0, 1.0, Degrees(90.0))))
}

func TestRotation3D_Inverse(t *testing.T) {
	rot := Rotation3DAroundAxis[World, Screen](1.0, 2.0, 3.0, Degrees(40.0))
	inv := rot.Inverse()

	p := Pt3[World](3.0, -1.0, 2.0)
	require.True(t, inv.TransformPoint3D(rot.TransformPoint3D(p)).ApproxEq(p))

	matInv, ok := rot.ToTransform().Inverse()
	require.True(t, ok)
	require.True(t, inv.ToTransform().ApproxEq(matInv))

	require.True(t, ThenRotation3D(rot, inv).ApproxEq(IdentityRotation3D[World, World, float64]()))
}

func TestRotation3D_ThenMatchesMatrices(t *testing.T) {
	a := Rotation3DAroundAxis[World, Local](1.0, 0.0, 0.0, Degrees(30.0))
	b := Rotation3DAroundAxis[Local, Screen](0.0, 1.0, 1.0, Degrees(-70.0))

	combined := ThenRotation3D(a, b)
	require.True(t, combined.ToTransform().ApproxEq(Then3D(a.ToTransform(), b.ToTransform())))

	p := Pt3[World](0.5, 1.5, -2.0)
	require.True(t, combined.TransformPoint3D(p).ApproxEq(b.TransformPoint3D(a.TransformPoint3D(p))))

	// rotations around a common axis add up
	c := Rotation3DAroundAxis[World, World](0.0, 0.0, 1.0, Degrees(30.0))
	d := Rotation3DAroundAxis[World, World](0.0, 0.0, 1.0, Degrees(60.0))
	require.True(t, c.Then(d).ApproxEq(Rotation3DAroundAxis[World, World](0.0, 0.0, 1.0, Degrees(90.0))))
}

func TestRotation3D_ApproxEqOppositeSign(t *testing.T) {
	rot := Rotation3DAroundAxis[World, World](1.0, 1.0, 0.0, Degrees(50.0))
	neg := Rotation3D[float64, World, World]{I: -rot.I, J: -rot.J, K: -rot.K, R: -rot.R}

	require.True(t, rot.ApproxEq(neg))
	require.False(t, rot.ApproxEq(rot.Inverse()))
}

func TestRotation3D_Slerp(t *testing.T) {
	from := IdentityRotation3D[World, World, float64]()
	to := Rotation3DAroundAxis[World, World](0.0, 0.0, 1.0, Degrees(90.0))

	require.True(t, from.Slerp(to, 0).ApproxEq(from))
	require.True(t, from.Slerp(to, 1).ApproxEq(to))
	require.True(t, from.Slerp(to, 0.5).ApproxEq(Rotation3DAroundAxis[World, World](0.0, 0.0, 1.0, Degrees(45.0))))

	// takes the short way even if the quaternion points the other way
	negTo := Rotation3D[float64, World, World]{I: -to.I, J: -to.J, K: -to.K, R: -to.R}
	require.True(t, from.Slerp(negTo, 0.5).ApproxEq(Rotation3DAroundAxis[World, World](0.0, 0.0, 1.0, Degrees(45.0))))

	// nearly identical rotations
	near := Rotation3DAroundAxis[World, World](0.0, 0.0, 1.0, Radians(1e-9))
	require.True(t, from.Slerp(near, 0.5).ApproxEq(from))
}
