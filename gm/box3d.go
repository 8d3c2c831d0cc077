package gm

import "fmt"

// Box3D is an axis aligned box described by its minimum and maximum corner.
// It follows the same emptiness rules as Box2D.
type Box3D[T Scalar, U any] struct {
	Min, Max Point3D[T, U]
}

func Box3DWithPoints[T Scalar, U any](a, b Point3D[T, U]) Box3D[T, U] {
	return Box3D[T, U]{Min: a.Min(b), Max: a.Max(b)}
}

func Box3DWithSize[T Scalar, U any](size Size3D[T, U]) Box3D[T, U] {
	return Box3D[T, U]{Max: size.ToVector().ToPoint()}
}

func Box3DWithOriginAndSize[T Scalar, U any](origin Point3D[T, U], size Size3D[T, U]) Box3D[T, U] {
	return Box3D[T, U]{Min: origin, Max: origin.AddSize(size)}
}

// Box3DFromPoints returns the bounding box of the given points, or the zero
// box if there are none.
func Box3DFromPoints[T Scalar, U any](points ...Point3D[T, U]) Box3D[T, U] {
	if len(points) == 0 {
		return Box3D[T, U]{}
	}

	box := Box3D[T, U]{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}

	return box
}

// Box3DFromArray builds a box from [minX, minY, minZ, maxX, maxY, maxZ].
func Box3DFromArray[U any, T Scalar](a [6]T) Box3D[T, U] {
	return Box3D[T, U]{
		Min: Point3D[T, U]{X: a[0], Y: a[1], Z: a[2]},
		Max: Point3D[T, U]{X: a[3], Y: a[4], Z: a[5]},
	}
}

func (b Box3D[T, U]) Center() Point3D[T, U] {
	return b.Min.Lerp(b.Max, 0.5)
}

func (b Box3D[T, U]) Size() Size3D[T, U] {
	return b.Max.Sub(b.Min).ToSize()
}

func (b Box3D[T, U]) Width() T  { return b.Max.X - b.Min.X }
func (b Box3D[T, U]) Height() T { return b.Max.Y - b.Min.Y }
func (b Box3D[T, U]) Depth() T  { return b.Max.Z - b.Min.Z }

func (b Box3D[T, U]) Volume() T {
	if b.IsEmpty() {
		return 0
	}

	return b.Width() * b.Height() * b.Depth()
}

func (b Box3D[T, U]) IsEmpty() bool {
	return !(b.Max.X > b.Min.X && b.Max.Y > b.Min.Y && b.Max.Z > b.Min.Z)
}

func (b Box3D[T, U]) Translate(offset Vector3D[T, U]) Box3D[T, U] {
	return Box3D[T, U]{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Contains reports whether p lies in the box, min faces inclusive and max
// faces exclusive.
func (b Box3D[T, U]) Contains(p Point3D[T, U]) bool {
	return b.Min.X <= p.X && p.X < b.Max.X &&
		b.Min.Y <= p.Y && p.Y < b.Max.Y &&
		b.Min.Z <= p.Z && p.Z < b.Max.Z
}

func (b Box3D[T, U]) ContainsInclusive(p Point3D[T, U]) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

func (b Box3D[T, U]) ContainsBox(other Box3D[T, U]) bool {
	if other.IsEmpty() {
		return true
	}

	return b.Min.X <= other.Min.X && other.Max.X <= b.Max.X &&
		b.Min.Y <= other.Min.Y && other.Max.Y <= b.Max.Y &&
		b.Min.Z <= other.Min.Z && other.Max.Z <= b.Max.Z
}

func (b Box3D[T, U]) Intersects(other Box3D[T, U]) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}

	return b.Min.X < other.Max.X && b.Max.X > other.Min.X &&
		b.Min.Y < other.Max.Y && b.Max.Y > other.Min.Y &&
		b.Min.Z < other.Max.Z && b.Max.Z > other.Min.Z
}

func (b Box3D[T, U]) IntersectionUnchecked(other Box3D[T, U]) Box3D[T, U] {
	return Box3D[T, U]{Min: b.Min.Max(other.Min), Max: b.Max.Min(other.Max)}
}

func (b Box3D[T, U]) Intersection(other Box3D[T, U]) (Box3D[T, U], bool) {
	if !b.Intersects(other) {
		return Box3D[T, U]{}, false
	}

	return b.IntersectionUnchecked(other), true
}

func (b Box3D[T, U]) Union(other Box3D[T, U]) Box3D[T, U] {
	if other.IsEmpty() {
		return b
	}

	if b.IsEmpty() {
		return other
	}

	return Box3D[T, U]{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

func (b Box3D[T, U]) Inflate(width, height, depth T) Box3D[T, U] {
	margin := Vector3D[T, U]{X: width, Y: height, Z: depth}
	return Box3D[T, U]{Min: b.Min.SubVector(margin), Max: b.Max.Add(margin)}
}

func (b Box3D[T, U]) Scale(x, y, z T) Box3D[T, U] {
	factor := Vector3D[T, U]{X: x, Y: y, Z: z}
	return Box3D[T, U]{
		Min: b.Min.ToVector().MulEach(factor).ToPoint(),
		Max: b.Max.ToVector().MulEach(factor).ToPoint(),
	}
}

func (b Box3D[T, U]) Round() Box3D[T, U] {
	return Box3D[T, U]{Min: b.Min.Round(), Max: b.Max.Round()}
}

func (b Box3D[T, U]) Lerp(other Box3D[T, U], t T) Box3D[T, U] {
	return Box3D[T, U]{Min: b.Min.Lerp(other.Min, t), Max: b.Max.Lerp(other.Max, t)}
}

// Xy projects the box onto the xy plane.
func (b Box3D[T, U]) Xy() Box2D[T, U] {
	return Box2D[T, U]{Min: b.Min.Xy(), Max: b.Max.Xy()}
}

// ToArray returns [minX, minY, minZ, maxX, maxY, maxZ].
func (b Box3D[T, U]) ToArray() [6]T {
	return [6]T{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z}
}

func (b Box3D[T, U]) ApproxEq(other Box3D[T, U]) bool {
	return b.Min.ApproxEq(other.Min) && b.Max.ApproxEq(other.Max)
}

func (b Box3D[T, U]) String() string {
	return fmt.Sprintf("Box3D(min=%s, max=%s)", b.Min, b.Max)
}
