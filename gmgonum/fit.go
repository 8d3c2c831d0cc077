package gmgonum

import (
	"fmt"

	"github.com/oliverbestmann/unitgm/gm"
	"gonum.org/v1/gonum/mat"
)

// FitAffine2D returns the affine transformation that maps src onto dst with
// the smallest squared error. At least three non collinear correspondences
// are needed.
func FitAffine2D[Src, Dst any](src []gm.Point2D[float64, Src], dst []gm.Point2D[float64, Dst]) (gm.Transform2D[float64, Src, Dst], error) {
	if len(src) != len(dst) {
		return gm.Transform2D[float64, Src, Dst]{}, fmt.Errorf("point count mismatch: %d vs %d: %w", len(src), len(dst), ErrDimension)
	}

	n := len(src)
	if n < 3 {
		return gm.Transform2D[float64, Src, Dst]{}, fmt.Errorf("need at least 3 points, got %d: %w", n, ErrTooFewPoints)
	}

	// two equations per point, one for each coordinate
	a := mat.NewDense(n*2, 6, nil)
	b := mat.NewVecDense(n*2, nil)

	for i := range n {
		x, y := src[i].X, src[i].Y

		a.Set(i*2, 0, x)
		a.Set(i*2, 2, y)
		a.Set(i*2, 4, 1)
		b.SetVec(i*2, dst[i].X)

		a.Set(i*2+1, 1, x)
		a.Set(i*2+1, 3, y)
		a.Set(i*2+1, 5, 1)
		b.SetVec(i*2+1, dst[i].Y)
	}

	var qr mat.QR
	qr.Factorize(a)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, b); err != nil {
		return gm.Transform2D[float64, Src, Dst]{}, fmt.Errorf("solve least squares: %w", err)
	}

	var values [6]float64
	for idx := range values {
		values[idx] = params.AtVec(idx)
	}

	return gm.Transform2DFromArray[Src, Dst](values), nil
}

// FitRigid2D returns the rotation followed by a translation that maps src
// onto dst with the smallest squared error.
func FitRigid2D[Src, Dst any](src []gm.Point2D[float64, Src], dst []gm.Point2D[float64, Dst]) (gm.Transform2D[float64, Src, Dst], error) {
	if len(src) != len(dst) {
		return gm.Transform2D[float64, Src, Dst]{}, fmt.Errorf("point count mismatch: %d vs %d: %w", len(src), len(dst), ErrDimension)
	}

	if len(src) < 2 {
		return gm.Transform2D[float64, Src, Dst]{}, fmt.Errorf("need at least 2 points, got %d: %w", len(src), ErrTooFewPoints)
	}

	srcCenter := centroid(src)
	dstCenter := centroid(dst)

	// accumulate the dot and cross products of the centered point pairs
	var dot, cross float64
	for idx := range src {
		s := src[idx].Sub(srcCenter)
		d := gm.CastVector2D[Src](dst[idx].Sub(dstCenter))

		dot += s.Dot(d)
		cross += s.Cross(d)
	}

	rotation := gm.Radians(gm.Atan2(cross, dot))

	// rotate around the source center, then move it onto the destination center
	return gm.Translate2D[Src, Dst](-srcCenter.X, -srcCenter.Y).
		ThenRotate(rotation).
		ThenTranslate(dstCenter.ToVector()), nil
}

func centroid[U any](points []gm.Point2D[float64, U]) gm.Point2D[float64, U] {
	var sum gm.Vector2D[float64, U]
	for _, p := range points {
		sum = sum.Add(p.ToVector())
	}

	return sum.Div(float64(len(points))).ToPoint()
}
