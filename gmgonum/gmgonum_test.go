package gmgonum

import (
	"testing"

	"github.com/oliverbestmann/unitgm/gm"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

type World struct{}
type Image struct{}

func TestDense2D(t *testing.T) {
	tr := gm.Rotate2D[World, Image](gm.Degrees(25.0)).
		ThenScale(2.0, 3.0).
		ThenTranslate(gm.Vec2[Image](4.0, -1.0))

	m := Dense2D(tr)

	// multiply the point as a row vector from the left
	row := mat.NewDense(1, 3, []float64{1.5, -2, 1})

	var res mat.Dense
	res.Mul(row, m)

	expected := tr.TransformPoint(gm.Pt2[World](1.5, -2.0))
	require.InDelta(t, expected.X, res.At(0, 0), 1e-9)
	require.InDelta(t, expected.Y, res.At(0, 1), 1e-9)
	require.InDelta(t, 1.0, res.At(0, 2), 1e-9)

	back, err := FromDense2D[World, Image](m)
	require.NoError(t, err)
	require.Equal(t, tr, back)
}

func TestDense2D_Inverse(t *testing.T) {
	tr := gm.Rotate2D[World, Image](gm.Degrees(-70.0)).
		ThenScale(0.25, 5.0).
		ThenTranslate(gm.Vec2[Image](10.0, 3.0))

	var inv mat.Dense
	require.NoError(t, inv.Inverse(Dense2D(tr)))

	fromGonum, err := FromDense2D[Image, World](roundLastColumn(&inv))
	require.NoError(t, err)

	expected, ok := tr.Inverse()
	require.True(t, ok)
	require.True(t, expected.ApproxEq(fromGonum))
}

func TestFromDense2D_Errors(t *testing.T) {
	_, err := FromDense2D[World, Image](mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, ErrDimension)

	_, err = FromDense2D[World, Image](mat.NewDense(3, 3, []float64{
		1, 0, 0.5,
		0, 1, 0,
		0, 0, 1,
	}))
	require.ErrorIs(t, err, ErrNotAffine)

	_, err = FromDense3D[World, Image](mat.NewDense(3, 3, nil))
	require.ErrorIs(t, err, ErrDimension)
}

func TestDense3D(t *testing.T) {
	tr := gm.Then3D(
		gm.Rotate3D[World, World](0.0, 1.0, 1.0, gm.Degrees(40.0)),
		gm.Perspective3D[World, Image](5.0),
	)

	m := Dense3D(tr)
	require.Equal(t, tr.ToArray()[1], m.At(0, 1))
	require.Equal(t, tr.ToArray()[11], m.At(2, 3))

	back, err := FromDense3D[World, Image](m)
	require.NoError(t, err)
	require.Equal(t, tr, back)

	require.InDelta(t, tr.Determinant(), mat.Det(m), 1e-9)

	var inv mat.Dense
	require.NoError(t, inv.Inverse(m))

	fromGonum, err := FromDense3D[Image, World](&inv)
	require.NoError(t, err)

	expected, ok := tr.Inverse()
	require.True(t, ok)
	require.True(t, expected.ApproxEq(fromGonum))
}

func TestVectors(t *testing.T) {
	v := gm.Vec2[World](1.0, 2.0)
	require.Equal(t, r2.Vec{X: 1, Y: 2}, R2Vec(v))
	require.Equal(t, v, FromR2Vec[World](R2Vec(v)))

	p := gm.Pt2[World](3.0, 4.0)
	require.Equal(t, p, FromR2Point[World](R2Point(p)))

	v3 := gm.Vec3[World](1.0, 2.0, 3.0)
	require.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, R3Vec(v3))
	require.Equal(t, v3, FromR3Vec[World](R3Vec(v3)))

	p3 := gm.Pt3[World](1.0, 2.0, 3.0)
	require.Equal(t, p3, FromR3Point[World](R3Point(p3)))

	// cross products agree between both libraries
	w3 := gm.Vec3[World](-2.0, 0.5, 4.0)
	require.True(t, v3.Cross(w3).ApproxEq(FromR3Vec[World](r3.Cross(R3Vec(v3), R3Vec(w3)))))

	box := gm.Box2DFromArray[World]([4]float64{1, 2, 3, 4})
	require.Equal(t, box, FromR2Box[World](R2Box(box)))
}

func TestFitAffine2D(t *testing.T) {
	tr := gm.Rotate2D[World, Image](gm.Degrees(15.0)).
		ThenScale(3.0, 2.0).
		ThenTranslate(gm.Vec2[Image](-5.0, 12.0))

	src := []gm.Point2D[float64, World]{{0, 0}, {1, 0}, {0, 1}, {4, 7}, {-3, 2}}

	var dst []gm.Point2D[float64, Image]
	for _, p := range src {
		dst = append(dst, tr.TransformPoint(p))
	}

	fitted, err := FitAffine2D(src, dst)
	require.NoError(t, err)
	require.True(t, tr.ApproxEq(fitted), "%s != %s", tr, fitted)
}

func TestFitAffine2D_Errors(t *testing.T) {
	src := []gm.Point2D[float64, World]{{0, 0}, {1, 0}}
	dst := []gm.Point2D[float64, Image]{{0, 0}, {1, 0}}

	_, err := FitAffine2D(src, dst)
	require.ErrorIs(t, err, ErrTooFewPoints)

	_, err = FitAffine2D(src, dst[:1])
	require.ErrorIs(t, err, ErrDimension)
}

func TestFitRigid2D(t *testing.T) {
	tr := gm.Rotate2D[World, Image](gm.Degrees(-120.0)).
		ThenTranslate(gm.Vec2[Image](7.0, 3.0))

	src := []gm.Point2D[float64, World]{{0, 0}, {2, 0}, {1, 5}, {-3, -1}}

	var dst []gm.Point2D[float64, Image]
	for _, p := range src {
		dst = append(dst, tr.TransformPoint(p))
	}

	fitted, err := FitRigid2D(src, dst)
	require.NoError(t, err)
	require.True(t, tr.ApproxEq(fitted), "%s != %s", tr, fitted)

	_, err = FitRigid2D(src[:1], dst[:1])
	require.ErrorIs(t, err, ErrTooFewPoints)
}

// roundLastColumn snaps the affine column of an inverted matrix back to exact
// values, which the numeric inverse only reproduces approximately.
func roundLastColumn(m *mat.Dense) *mat.Dense {
	m.Set(0, 2, 0)
	m.Set(1, 2, 0)
	m.Set(2, 2, 1)
	return m
}
