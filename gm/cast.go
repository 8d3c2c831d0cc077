package gm

// Unit casts reinterpret a value in another coordinate space without touching
// its components. They are the explicit escape hatch when two spaces are
// known to coincide.

func CastPoint2D[V any, T Scalar, U any](p Point2D[T, U]) Point2D[T, V] {
	return Point2D[T, V]{X: p.X, Y: p.Y}
}

func CastPoint3D[V any, T Scalar, U any](p Point3D[T, U]) Point3D[T, V] {
	return Point3D[T, V]{X: p.X, Y: p.Y, Z: p.Z}
}

func CastVector2D[V any, T Scalar, U any](v Vector2D[T, U]) Vector2D[T, V] {
	return Vector2D[T, V]{X: v.X, Y: v.Y}
}

func CastVector3D[V any, T Scalar, U any](v Vector3D[T, U]) Vector3D[T, V] {
	return Vector3D[T, V]{X: v.X, Y: v.Y, Z: v.Z}
}

func CastSize2D[V any, T Scalar, U any](s Size2D[T, U]) Size2D[T, V] {
	return Size2D[T, V]{Width: s.Width, Height: s.Height}
}

func CastSize3D[V any, T Scalar, U any](s Size3D[T, U]) Size3D[T, V] {
	return Size3D[T, V]{Width: s.Width, Height: s.Height, Depth: s.Depth}
}

func CastRect[V any, T Scalar, U any](r Rect[T, U]) Rect[T, V] {
	return Rect[T, V]{Origin: CastPoint2D[V](r.Origin), Size: CastSize2D[V](r.Size)}
}

func CastBox2D[V any, T Scalar, U any](b Box2D[T, U]) Box2D[T, V] {
	return Box2D[T, V]{Min: CastPoint2D[V](b.Min), Max: CastPoint2D[V](b.Max)}
}

func CastBox3D[V any, T Scalar, U any](b Box3D[T, U]) Box3D[T, V] {
	return Box3D[T, V]{Min: CastPoint3D[V](b.Min), Max: CastPoint3D[V](b.Max)}
}

func CastLength[V any, T Scalar, U any](l Length[T, U]) Length[T, V] {
	return Length[T, V]{Value: l.Value}
}

// WithSource2D retags the source space of a transformation.
func WithSource2D[NewSrc any, T Scalar, Src, Dst any](t Transform2D[T, Src, Dst]) Transform2D[T, NewSrc, Dst] {
	return Transform2DFromArray[NewSrc, Dst](t.ToArray())
}

// WithDestination2D retags the destination space of a transformation.
func WithDestination2D[NewDst any, T Scalar, Src, Dst any](t Transform2D[T, Src, Dst]) Transform2D[T, Src, NewDst] {
	return Transform2DFromArray[Src, NewDst](t.ToArray())
}

func WithSource3D[NewSrc any, T Scalar, Src, Dst any](t Transform3D[T, Src, Dst]) Transform3D[T, NewSrc, Dst] {
	return Transform3DFromArray[NewSrc, Dst](t.ToArray())
}

func WithDestination3D[NewDst any, T Scalar, Src, Dst any](t Transform3D[T, Src, Dst]) Transform3D[T, Src, NewDst] {
	return Transform3DFromArray[Src, NewDst](t.ToArray())
}

// ConvertPoint2D changes the scalar type of a point, e.g. from float64 to float32.
func ConvertPoint2D[T2, T Scalar, U any](p Point2D[T, U]) Point2D[T2, U] {
	return Point2D[T2, U]{X: T2(p.X), Y: T2(p.Y)}
}

func ConvertPoint3D[T2, T Scalar, U any](p Point3D[T, U]) Point3D[T2, U] {
	return Point3D[T2, U]{X: T2(p.X), Y: T2(p.Y), Z: T2(p.Z)}
}

func ConvertVector2D[T2, T Scalar, U any](v Vector2D[T, U]) Vector2D[T2, U] {
	return Vector2D[T2, U]{X: T2(v.X), Y: T2(v.Y)}
}

func ConvertVector3D[T2, T Scalar, U any](v Vector3D[T, U]) Vector3D[T2, U] {
	return Vector3D[T2, U]{X: T2(v.X), Y: T2(v.Y), Z: T2(v.Z)}
}

func ConvertBox2D[T2, T Scalar, U any](b Box2D[T, U]) Box2D[T2, U] {
	return Box2D[T2, U]{Min: ConvertPoint2D[T2](b.Min), Max: ConvertPoint2D[T2](b.Max)}
}

func ConvertTransform2D[T2, T Scalar, Src, Dst any](t Transform2D[T, Src, Dst]) Transform2D[T2, Src, Dst] {
	var result [6]T2
	for idx, value := range t.ToArray() {
		result[idx] = T2(value)
	}

	return Transform2DFromArray[Src, Dst](result)
}

func ConvertTransform3D[T2, T Scalar, Src, Dst any](t Transform3D[T, Src, Dst]) Transform3D[T2, Src, Dst] {
	var result [16]T2
	for idx, value := range t.ToArray() {
		result[idx] = T2(value)
	}

	return Transform3DFromArray[Src, Dst](result)
}
