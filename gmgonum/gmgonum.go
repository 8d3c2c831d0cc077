// Package gmgonum converts gm transformations and vectors to and from the
// types of gonum.org/v1/gonum, and estimates transformations from point
// correspondences using gonum's linear algebra.
package gmgonum

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/unitgm/gm"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

var ErrDimension = errors.New("matrix has wrong dimensions")
var ErrNotAffine = errors.New("matrix is not affine")
var ErrTooFewPoints = errors.New("not enough point correspondences")

// Dense2D returns the 3x3 homogeneous matrix of the transformation. Like gm,
// the matrix is meant to be multiplied with row vectors from the left.
func Dense2D[Src, Dst any](t gm.Transform2D[float64, Src, Dst]) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		t.M11, t.M12, 0,
		t.M21, t.M22, 0,
		t.M31, t.M32, 1,
	})
}

// FromDense2D reads a 3x3 homogeneous matrix in the layout of Dense2D. The
// last column must be (0, 0, 1).
func FromDense2D[Src, Dst any](m mat.Matrix) (gm.Transform2D[float64, Src, Dst], error) {
	if r, c := m.Dims(); r != 3 || c != 3 {
		return gm.Transform2D[float64, Src, Dst]{}, fmt.Errorf("expected 3x3, got %dx%d: %w", r, c, ErrDimension)
	}

	if m.At(0, 2) != 0 || m.At(1, 2) != 0 || m.At(2, 2) != 1 {
		return gm.Transform2D[float64, Src, Dst]{}, fmt.Errorf("last column is (%v, %v, %v): %w",
			m.At(0, 2), m.At(1, 2), m.At(2, 2), ErrNotAffine)
	}

	return gm.NewTransform2D[Src, Dst](
		m.At(0, 0), m.At(0, 1),
		m.At(1, 0), m.At(1, 1),
		m.At(2, 0), m.At(2, 1),
	), nil
}

// Dense3D returns the 4x4 matrix of the transformation with the same row
// major layout as Transform3D.ToArray.
func Dense3D[Src, Dst any](t gm.Transform3D[float64, Src, Dst]) *mat.Dense {
	values := t.ToArray()
	return mat.NewDense(4, 4, values[:])
}

func FromDense3D[Src, Dst any](m mat.Matrix) (gm.Transform3D[float64, Src, Dst], error) {
	if r, c := m.Dims(); r != 4 || c != 4 {
		return gm.Transform3D[float64, Src, Dst]{}, fmt.Errorf("expected 4x4, got %dx%d: %w", r, c, ErrDimension)
	}

	var values [16]float64
	for idx := range values {
		values[idx] = m.At(idx/4, idx%4)
	}

	return gm.Transform3DFromArray[Src, Dst](values), nil
}

func R2Vec[U any](v gm.Vector2D[float64, U]) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

func FromR2Vec[U any](v r2.Vec) gm.Vector2D[float64, U] {
	return gm.Vector2D[float64, U]{X: v.X, Y: v.Y}
}

// R2Point converts a point into its position vector.
func R2Point[U any](p gm.Point2D[float64, U]) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func FromR2Point[U any](v r2.Vec) gm.Point2D[float64, U] {
	return gm.Point2D[float64, U]{X: v.X, Y: v.Y}
}

func R3Vec[U any](v gm.Vector3D[float64, U]) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func FromR3Vec[U any](v r3.Vec) gm.Vector3D[float64, U] {
	return gm.Vector3D[float64, U]{X: v.X, Y: v.Y, Z: v.Z}
}

func R3Point[U any](p gm.Point3D[float64, U]) r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

func FromR3Point[U any](v r3.Vec) gm.Point3D[float64, U] {
	return gm.Point3D[float64, U]{X: v.X, Y: v.Y, Z: v.Z}
}

// R2Box converts a box into gonum's box type.
func R2Box[U any](b gm.Box2D[float64, U]) r2.Box {
	return r2.Box{Min: R2Point(b.Min), Max: R2Point(b.Max)}
}

func FromR2Box[U any](b r2.Box) gm.Box2D[float64, U] {
	return gm.Box2D[float64, U]{Min: FromR2Point[U](b.Min), Max: FromR2Point[U](b.Max)}
}
