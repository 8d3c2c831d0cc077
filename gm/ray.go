package gm

import (
	"fmt"
	"math"
)

// Ray3D is a half line starting at Origin, pointing along Direction.
type Ray3D[T Scalar, U any] struct {
	Origin    Point3D[T, U]
	Direction Vector3D[T, U]
}

func NewRay3D[T Scalar, U any](origin Point3D[T, U], direction Vector3D[T, U]) Ray3D[T, U] {
	return Ray3D[T, U]{Origin: origin, Direction: direction}
}

// Ray3DFromPoints returns the ray starting at origin and passing through end.
func Ray3DFromPoints[T Scalar, U any](origin, end Point3D[T, U]) Ray3D[T, U] {
	return Ray3D[T, U]{Origin: origin, Direction: end.Sub(origin)}
}

func (r Ray3D[T, U]) PointAt(t T) Point3D[T, U] {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Intersects reports whether the ray hits the box, which is placed in the
// plane z=0. The edges of the box count as hits, points behind the origin
// do not.
func (r Ray3D[T, U]) Intersects(box Box2D[T, U]) bool {
	if box.IsEmpty() {
		return false
	}

	if r.Direction.Z != 0 {
		t := -r.Origin.Z / r.Direction.Z
		if t < 0 {
			return false
		}

		return box.ContainsInclusive(r.PointAt(t).Xy())
	}

	// parallel to the plane, only a ray lying inside it can hit the box
	if r.Origin.Z != 0 {
		return false
	}

	lo, hi, ok := clipSlab(r.Origin.X, r.Direction.X, box.Min.X, box.Max.X, 0, T(math.Inf(1)))
	if !ok {
		return false
	}

	_, _, ok = clipSlab(r.Origin.Y, r.Direction.Y, box.Min.Y, box.Max.Y, lo, hi)
	return ok
}

// clipSlab narrows the parameter range [lo, hi] to the part where
// origin + t*dir lies within [from, to].
func clipSlab[T Scalar](origin, dir, from, to, lo, hi T) (T, T, bool) {
	if dir == 0 {
		return lo, hi, from <= origin && origin <= to
	}

	t0 := (from - origin) / dir
	t1 := (to - origin) / dir
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	lo = max(lo, t0)
	hi = min(hi, t1)

	return lo, hi, lo <= hi
}

func (r Ray3D[T, U]) String() string {
	return fmt.Sprintf("Ray3D[%s](%v, %v, %v -> %v, %v, %v)", unitName[U](), r.Origin.X, r.Origin.Y, r.Origin.Z, r.Direction.X, r.Direction.Y, r.Direction.Z)
}
