package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[T Scalar](r *rand.Rand, min, max T) T {
	return T(r.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle[T Scalar](r *rand.Rand) Angle[T] {
	return Radians(RandomIn(r, T(0), T(2*math.Pi)))
}

// RandomVector2D returns a vector uniformly sampled from within the unit circle.
func RandomVector2D[U any, T Scalar](r *rand.Rand) Vector2D[T, U] {
	for {
		v := Vector2D[T, U]{
			X: RandomIn(r, T(-1), T(1)),
			Y: RandomIn(r, T(-1), T(1)),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomPoint2DIn samples a point from within the box. The box must not be empty.
func RandomPoint2DIn[T Scalar, U any](r *rand.Rand, b Box2D[T, U]) Point2D[T, U] {
	return Point2D[T, U]{
		X: RandomIn(r, b.Min.X, b.Max.X),
		Y: RandomIn(r, b.Min.Y, b.Max.Y),
	}
}

func RandomPoint3DIn[T Scalar, U any](r *rand.Rand, b Box3D[T, U]) Point3D[T, U] {
	return Point3D[T, U]{
		X: RandomIn(r, b.Min.X, b.Max.X),
		Y: RandomIn(r, b.Min.Y, b.Max.Y),
		Z: RandomIn(r, b.Min.Z, b.Max.Z),
	}
}

// RandomTransform2D returns a random invertible similarity transform made of a
// rotation, a uniform scale in [0.5, 2) and a translation in [-100, 100).
func RandomTransform2D[Src, Dst any, T Scalar](r *rand.Rand) Transform2D[T, Src, Dst] {
	scale := RandomIn(r, T(0.5), T(2))
	return Scale2D[Src, Dst](scale, scale).
		ThenRotate(RandomAngle[T](r)).
		ThenTranslate(Vector2D[T, Dst]{
			X: RandomIn(r, T(-100), T(100)),
			Y: RandomIn(r, T(-100), T(100)),
		})
}

// RandomTransform3D returns a random rigid transform scaled uniformly in [0.5, 2).
func RandomTransform3D[Src, Dst any, T Scalar](r *rand.Rand) Transform3D[T, Src, Dst] {
	axis := Vector3D[T, Src]{
		X: RandomIn(r, T(-1), T(1)),
		Y: RandomIn(r, T(-1), T(1)),
		Z: RandomIn(r, T(-1), T(1)),
	}

	scale := RandomIn(r, T(0.5), T(2))

	return Scale3D[Src, Dst](scale, scale, scale).
		ThenRotate(axis.X, axis.Y, axis.Z, RandomAngle[T](r)).
		ThenTranslate(Vector3D[T, Dst]{
			X: RandomIn(r, T(-100), T(100)),
			Y: RandomIn(r, T(-100), T(100)),
			Z: RandomIn(r, T(-100), T(100)),
		})
}
