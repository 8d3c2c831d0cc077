package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRigidTransform3D_RotatesBeforeTranslating(t *testing.T) {
	rigid := NewRigidTransform3D(
		Rotation3DAroundAxis[World, Screen](0.0, 0.0, 1.0, Degrees(90.0)),
		Vec3[Screen](10.0, 0.0, 0.0),
	)

	res := rigid.TransformPoint(Pt3[World](1.0, 0.0, 0.0))
	require.True(t, res.ApproxEq(Pt3[Screen](10.0, 1.0, 0.0)))

	// vectors are not translated
	require.True(t, rigid.TransformVector(Vec3[World](1.0, 0.0, 0.0)).ApproxEq(Vec3[Screen](0.0, 1.0, 0.0)))
}

func TestRigidTransform3D_ToTransform(t *testing.T) {
	rigid := NewRigidTransform3D(
		Rotation3DAroundAxis[World, Screen](1.0, -1.0, 2.0, Degrees(70.0)),
		Vec3[Screen](3.0, 4.0, -5.0),
	)

	mat := rigid.ToTransform()

	expected := Rotate3D[World, Screen](1.0, -1.0, 2.0, Degrees(70.0)).ThenTranslate(Vec3[Screen](3.0, 4.0, -5.0))
	require.True(t, mat.ApproxEq(expected))

	for _, p := range []Point3D[float64, World]{Pt3[World](0.0, 0.0, 0.0), Pt3[World](1.0, 2.0, 3.0), Pt3[World](-4.0, 0.5, 2.0)} {
		res, ok := mat.TransformPoint3D(p)
		require.True(t, ok)
		require.True(t, rigid.TransformPoint(p).ApproxEq(res))
	}
}

func TestRigidTransform3D_Inverse(t *testing.T) {
	rigid := NewRigidTransform3D(
		Rotation3DAroundAxis[World, Screen](2.0, 1.0, 0.0, Degrees(-120.0)),
		Vec3[Screen](1.0, -2.0, 7.0),
	)

	inv := rigid.Inverse()

	p := Pt3[World](4.0, 5.0, 6.0)
	require.True(t, inv.TransformPoint(rigid.TransformPoint(p)).ApproxEq(p))

	matInv, ok := rigid.ToTransform().Inverse()
	require.True(t, ok)
	require.True(t, inv.ToTransform().ApproxEq(matInv))
}

func TestRigidTransform3D_Then(t *testing.T) {
	a := NewRigidTransform3D(
		Rotation3DAroundAxis[World, Local](1.0, 0.0, 0.0, Degrees(45.0)),
		Vec3[Local](0.0, 1.0, 2.0),
	)

	b := NewRigidTransform3D(
		Rotation3DAroundAxis[Local, Screen](0.0, 0.0, 1.0, Degrees(-30.0)),
		Vec3[Screen](-3.0, 0.0, 1.0),
	)

	combined := ThenRigid3D(a, b)
	require.True(t, combined.ToTransform().ApproxEq(Then3D(a.ToTransform(), b.ToTransform())))

	p := Pt3[World](1.0, 1.0, 1.0)
	require.True(t, combined.TransformPoint(p).ApproxEq(b.TransformPoint(a.TransformPoint(p))))

	id := IdentityRigid3D[World, World, float64]()
	require.True(t, id.Then(id).ApproxEq(id))
}

func TestRigidTransform3D_Reversed(t *testing.T) {
	rotation := Rotation3DAroundAxis[World, Screen](0.0, 1.0, 0.0, Degrees(90.0))
	translation := Vec3[World](1.0, 2.0, 3.0)

	rigid := RigidTransform3DFromReversed(translation, rotation)

	p := Pt3[World](-1.0, 0.0, 4.0)
	require.True(t, rigid.TransformPoint(p).ApproxEq(rotation.TransformPoint3D(p.Add(translation))))

	gotTranslation, gotRotation := rigid.DecomposeReversed()
	require.True(t, gotTranslation.ApproxEq(translation))
	require.True(t, gotRotation.ApproxEq(rotation))
}
