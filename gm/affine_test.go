package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type World struct{}
type Screen struct{}
type Local struct{}

func TestTransform2D_Rotate(t *testing.T) {
	tr := Rotate2D[World, Screen](Degrees(90.0))

	res := tr.TransformPoint(Pt2[World](1.0, 0.0))
	require.InDelta(t, 0.0, res.X, 1e-6)
	require.InDelta(t, 1.0, res.Y, 1e-6)

	require.Equal(t, [6]float64{tr.M11, tr.M12, tr.M21, tr.M22, 0, 0}, tr.ToArray())
	require.InDelta(t, 1.0, tr.M12, 1e-12)
	require.InDelta(t, -1.0, tr.M21, 1e-12)
}

func TestTransform2D_Then(t *testing.T) {
	// translate first, then scale the translated point
	tr := Then2D(Translate2D[World, Local](3.0, 4.0), Scale2D[Local, Screen](2.0, 2.0))
	require.Equal(t, Pt2[Screen](6.0, 8.0), tr.TransformPoint(Pt2[World](0.0, 0.0)))

	// the other way around scales the origin, then moves it
	tr2 := Then2D(Scale2D[World, Local](2.0, 2.0), Translate2D[Local, Screen](3.0, 4.0))
	require.Equal(t, Pt2[Screen](3.0, 4.0), tr2.TransformPoint(Pt2[World](0.0, 0.0)))
	require.Equal(t, Pt2[Screen](5.0, 6.0), tr2.TransformPoint(Pt2[World](1.0, 1.0)))
}

func TestTransform2D_ThenMatchesSequentialApplication(t *testing.T) {
	a := Rotate2D[World, Local](Degrees(30.0)).ThenTranslate(Vec2[Local](5.0, -2.0))
	b := Scale2D[Local, Screen](2.0, 0.5).ThenRotate(Degrees(-45.0))

	p := Pt2[World](3.0, 7.0)
	require.True(t, Then2D(a, b).TransformPoint(p).ApproxEq(b.TransformPoint(a.TransformPoint(p))))
}

func TestTransform2D_ChainedMethods(t *testing.T) {
	// translate by (10, 0) first, then rotate by 90°
	tr := Identity2D[World, World, float64]().ThenTranslate(Vec2[World](10.0, 0.0)).ThenRotate(Degrees(90.0))
	res := tr.TransformPoint(Pt2[World](1.0, 0.0))
	require.InDelta(t, 0.0, res.X, 1e-9)
	require.InDelta(t, 11.0, res.Y, 1e-9)

	// rotate by 90° first, then move by (10, 0)
	tr = Identity2D[World, World, float64]().PreTranslate(Vec2[World](10.0, 0.0)).PreRotate(Degrees(90.0))
	res = tr.TransformPoint(Pt2[World](1.0, 0.0))
	require.InDelta(t, 10.0, res.X, 1e-9)
	require.InDelta(t, 1.0, res.Y, 1e-9)

	// scale by 2 first, then move by 5
	tr = Identity2D[World, World, float64]().ThenScale(2.0, 2.0).ThenTranslate(Vec2[World](5.0, 0.0))
	require.InDelta(t, 25.0, tr.TransformPoint(Pt2[World](10.0, 0.0)).X, 1e-9)

	tr = Identity2D[World, World, float64]().ThenTranslate(Vec2[World](5.0, 0.0)).PreScale(2.0, 2.0)
	require.InDelta(t, 25.0, tr.TransformPoint(Pt2[World](10.0, 0.0)).X, 1e-9)
}

func TestTransform2D_VectorIgnoresTranslation(t *testing.T) {
	tr := Translate2D[World, Screen](100.0, 200.0).ThenScale(2.0, 3.0)

	require.Equal(t, Vec2[Screen](2.0, 3.0), tr.TransformVector(Vec2[World](1.0, 1.0)))
	require.Equal(t, Pt2[Screen](202.0, 603.0), tr.TransformPoint(Pt2[World](1.0, 1.0)))
}

func TestTransform2D_Identity(t *testing.T) {
	id := Identity2D[World, World, float64]()
	require.True(t, id.IsIdentity())
	require.False(t, Translate2D[World, World](1.0, 0.0).IsIdentity())

	for _, p := range []Point2D[float64, World]{{1, 2}, {-3.5, 1e9}, {math.MaxFloat64, -math.SmallestNonzeroFloat64}} {
		require.Equal(t, p, id.TransformPoint(p))
	}
}

func TestTransform2D_Inverse(t *testing.T) {
	tr := Rotate2D[World, Screen](Degrees(33.0)).ThenTranslate(Vec2[Screen](4.0, -7.0)).ThenScale(3.0, 0.5)

	inv, ok := tr.Inverse()
	require.True(t, ok)

	p := Pt2[World](12.0, -4.5)
	require.True(t, inv.TransformPoint(tr.TransformPoint(p)).ApproxEq(p))
	require.True(t, Then2D(tr, inv).ApproxEq(Identity2D[World, World, float64]()))

	// translation only must invert the translation term
	inv, ok = Translate2D[World, Screen](3.0, 4.0).Inverse()
	require.True(t, ok)
	require.Equal(t, Translate2D[Screen, World](-3.0, -4.0), inv)
}

func TestTransform2D_InverseSingular(t *testing.T) {
	_, ok := Scale2D[World, Screen](0.0, 1.0).Inverse()
	require.False(t, ok)

	// rows are linearly dependent
	_, ok = NewTransform2D[World, Screen](1.0, 2.0, 2.0, 4.0, 5.0, 6.0).Inverse()
	require.False(t, ok)

	// nearly parallel rows, with a determinant far above machine epsilon
	big := 1e10
	nearlyParallel := NewTransform2D[World, Screen](big, big, big, math.Nextafter(big, 2*big), 0.0, 0.0)
	require.Greater(t, nearlyParallel.Determinant(), 1.0)
	require.False(t, nearlyParallel.IsInvertible())
}

func TestTransform2D_InverseTinyScale(t *testing.T) {
	// the threshold is relative to the magnitude of the matrix
	inv, ok := Scale2D[World, Screen](1e-9, 1e-9).Inverse()
	require.True(t, ok)
	require.True(t, inv.ApproxEqEps(Scale2D[Screen, World](1e9, 1e9), 1e-3))

	require.True(t, Scale2D[World, Screen](1e-20, 1e-20).IsInvertible())
	require.True(t, Scale2D[World, Screen](float32(1e-4), 1e-4).IsInvertible())

	inv32, ok := Scale2D[World, Screen](float32(1e-4), 1e-4).Inverse()
	require.True(t, ok)
	require.InDelta(t, 1e4, inv32.M11, 1e-2)
}

func TestTransform2D_ArrayOrder(t *testing.T) {
	a := [6]float64{1, 2, 3, 4, 5, 6}
	tr := Transform2DFromArray[World, Screen](a)

	require.Equal(t, 1.0, tr.M11)
	require.Equal(t, 2.0, tr.M12)
	require.Equal(t, 3.0, tr.M21)
	require.Equal(t, 4.0, tr.M22)
	require.Equal(t, 5.0, tr.M31)
	require.Equal(t, 6.0, tr.M32)
	require.Equal(t, a, tr.ToArray())
}

func TestTransform2D_OuterTransformedBox(t *testing.T) {
	box := Box2DWithPoints(Pt2[World](0.0, 0.0), Pt2[World](2.0, 1.0))

	res := Rotate2D[World, Screen](Degrees(90.0)).OuterTransformedBox(box)
	require.True(t, res.ApproxEq(Box2DWithPoints(Pt2[Screen](-1.0, 0.0), Pt2[Screen](0.0, 2.0))))

	rect := Translate2D[World, Screen](1.0, 1.0).OuterTransformedRect(box.ToRect())
	require.Equal(t, RectFromArray[Screen]([4]float64{1, 1, 2, 1}), rect)
}

func TestTransform2D_To3D(t *testing.T) {
	tr := Rotate2D[World, Screen](Degrees(20.0)).ThenTranslate(Vec2[Screen](3.0, 1.0))
	tr3 := tr.To3D()

	require.True(t, tr3.Is2D())

	p := Pt2[World](1.5, -2.0)
	res, ok := tr3.TransformPoint2D(p)
	require.True(t, ok)
	require.True(t, res.ApproxEq(tr.TransformPoint(p)))

	back, ok := tr3.To2D()
	require.True(t, ok)
	require.Equal(t, tr, back)
}

func TestTransform2D_Float32(t *testing.T) {
	tr := Then2D(Translate2D[World, Local](float32(3), 4), Scale2D[Local, Screen](float32(2), 2))
	require.Equal(t, Pt2[Screen, float32](6, 8), tr.TransformPoint(Pt2[World, float32](0, 0)))

	_, ok := Scale2D[World, Screen](float32(0), 1).Inverse()
	require.False(t, ok)
}

func TestTransform2D_String(t *testing.T) {
	tr := Translate2D[World, Screen](1.0, 2.0)
	require.Equal(t, "Transform2D[World -> Screen](1, 0, 0, 1, 1, 2)", tr.String())
}
