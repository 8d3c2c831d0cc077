package gm

import (
	"fmt"
	"image"
)

// Box2D is an axis aligned rectangle described by its minimum and maximum
// corner. A box with Min >= Max on any axis is empty. Such a box is
// representable and treated as covering nothing.
type Box2D[T Scalar, U any] struct {
	Min, Max Point2D[T, U]
}

// Box2DWithPoints returns the smallest box having both points as corners.
func Box2DWithPoints[T Scalar, U any](a, b Point2D[T, U]) Box2D[T, U] {
	return Box2D[T, U]{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

func Box2DWithSize[T Scalar, U any](size Size2D[T, U]) Box2D[T, U] {
	return Box2D[T, U]{
		Max: Point2D[T, U]{X: size.Width, Y: size.Height},
	}
}

func Box2DWithOriginAndSize[T Scalar, U any](origin Point2D[T, U], size Size2D[T, U]) Box2D[T, U] {
	return Box2D[T, U]{
		Min: origin,
		Max: origin.AddSize(size),
	}
}

func Box2DWithCenterAndSize[T Scalar, U any](center Point2D[T, U], size Size2D[T, U]) Box2D[T, U] {
	half := size.ToVector().Mul(0.5)
	return Box2D[T, U]{
		Min: center.SubVector(half),
		Max: center.Add(half),
	}
}

// Box2DFromPoints returns the bounding box of the given points, or the zero
// box if there are none.
func Box2DFromPoints[T Scalar, U any](points ...Point2D[T, U]) Box2D[T, U] {
	if len(points) == 0 {
		return Box2D[T, U]{}
	}

	box := Box2D[T, U]{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}

	return box
}

// Box2DFromArray builds a box from [minX, minY, maxX, maxY].
func Box2DFromArray[U any, T Scalar](a [4]T) Box2D[T, U] {
	return Box2D[T, U]{
		Min: Point2D[T, U]{X: a[0], Y: a[1]},
		Max: Point2D[T, U]{X: a[2], Y: a[3]},
	}
}

func (b Box2D[T, U]) Center() Point2D[T, U] {
	return b.Min.Lerp(b.Max, 0.5)
}

func (b Box2D[T, U]) Size() Size2D[T, U] {
	return b.Max.Sub(b.Min).ToSize()
}

func (b Box2D[T, U]) Width() T {
	return b.Max.X - b.Min.X
}

func (b Box2D[T, U]) Height() T {
	return b.Max.Y - b.Min.Y
}

// Area returns the area of the box, zero for empty boxes.
func (b Box2D[T, U]) Area() T {
	if b.IsEmpty() {
		return 0
	}

	return b.Width() * b.Height()
}

func (b Box2D[T, U]) TopLeft() Point2D[T, U] {
	return b.Min
}

func (b Box2D[T, U]) TopRight() Point2D[T, U] {
	return Point2D[T, U]{X: b.Max.X, Y: b.Min.Y}
}

func (b Box2D[T, U]) BottomLeft() Point2D[T, U] {
	return Point2D[T, U]{X: b.Min.X, Y: b.Max.Y}
}

func (b Box2D[T, U]) BottomRight() Point2D[T, U] {
	return b.Max
}

// IsEmpty reports whether the box has no positive area. Inverted boxes and
// boxes with NaN coordinates are empty.
func (b Box2D[T, U]) IsEmpty() bool {
	return !(b.Max.X > b.Min.X && b.Max.Y > b.Min.Y)
}

func (b Box2D[T, U]) Translate(offset Vector2D[T, U]) Box2D[T, U] {
	return Box2D[T, U]{
		Min: b.Min.Add(offset),
		Max: b.Max.Add(offset),
	}
}

// Contains reports whether p lies in the box. The minimum edges are
// inclusive and the maximum edges exclusive, so adjacent boxes never share
// a point.
func (b Box2D[T, U]) Contains(p Point2D[T, U]) bool {
	return b.Min.X <= p.X && p.X < b.Max.X &&
		b.Min.Y <= p.Y && p.Y < b.Max.Y
}

// ContainsInclusive is like Contains but also accepts points on the maximum edges.
func (b Box2D[T, U]) ContainsInclusive(p Point2D[T, U]) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// ContainsBox reports whether other lies completely inside b. An empty box
// is contained in every box, a non empty box is never contained in an empty one.
func (b Box2D[T, U]) ContainsBox(other Box2D[T, U]) bool {
	if other.IsEmpty() {
		return true
	}

	return b.Min.X <= other.Min.X && other.Max.X <= b.Max.X &&
		b.Min.Y <= other.Min.Y && other.Max.Y <= b.Max.Y
}

// Intersects reports whether both boxes share an area. Touching edges do not count.
func (b Box2D[T, U]) Intersects(other Box2D[T, U]) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}

	return b.Min.X < other.Max.X && b.Max.X > other.Min.X &&
		b.Min.Y < other.Max.Y && b.Max.Y > other.Min.Y
}

// IntersectionUnchecked returns the overlap of both boxes without checking for
// emptiness. The result is empty (possibly inverted) when they do not overlap.
func (b Box2D[T, U]) IntersectionUnchecked(other Box2D[T, U]) Box2D[T, U] {
	return Box2D[T, U]{
		Min: b.Min.Max(other.Min),
		Max: b.Max.Min(other.Max),
	}
}

// Intersection returns the overlap of both boxes. The second result is false
// if the boxes do not overlap or one of them is empty.
func (b Box2D[T, U]) Intersection(other Box2D[T, U]) (Box2D[T, U], bool) {
	if !b.Intersects(other) {
		return Box2D[T, U]{}, false
	}

	return b.IntersectionUnchecked(other), true
}

// Union returns the smallest box containing both boxes. Empty operands are ignored.
func (b Box2D[T, U]) Union(other Box2D[T, U]) Box2D[T, U] {
	if other.IsEmpty() {
		return b
	}

	if b.IsEmpty() {
		return other
	}

	return Box2D[T, U]{
		Min: b.Min.Min(other.Min),
		Max: b.Max.Max(other.Max),
	}
}

// Inflate grows the box by width on the left and right and by height on the
// top and bottom. Negative values shrink it.
func (b Box2D[T, U]) Inflate(width, height T) Box2D[T, U] {
	margin := Vector2D[T, U]{X: width, Y: height}
	return Box2D[T, U]{
		Min: b.Min.SubVector(margin),
		Max: b.Max.Add(margin),
	}
}

// InnerBox shrinks the box by the given offsets.
func (b Box2D[T, U]) InnerBox(offsets SideOffsets2D[T, U]) Box2D[T, U] {
	return Box2D[T, U]{
		Min: Point2D[T, U]{X: b.Min.X + offsets.Left, Y: b.Min.Y + offsets.Top},
		Max: Point2D[T, U]{X: b.Max.X - offsets.Right, Y: b.Max.Y - offsets.Bottom},
	}
}

// OuterBox grows the box by the given offsets.
func (b Box2D[T, U]) OuterBox(offsets SideOffsets2D[T, U]) Box2D[T, U] {
	return Box2D[T, U]{
		Min: Point2D[T, U]{X: b.Min.X - offsets.Left, Y: b.Min.Y - offsets.Top},
		Max: Point2D[T, U]{X: b.Max.X + offsets.Right, Y: b.Max.Y + offsets.Bottom},
	}
}

// Scale multiplies all coordinates, scaling the box relative to the origin.
func (b Box2D[T, U]) Scale(x, y T) Box2D[T, U] {
	factor := Vector2D[T, U]{X: x, Y: y}
	return Box2D[T, U]{
		Min: b.Min.ToVector().MulEach(factor).ToPoint(),
		Max: b.Max.ToVector().MulEach(factor).ToPoint(),
	}
}

// Round rounds both corners to the nearest integer coordinates.
func (b Box2D[T, U]) Round() Box2D[T, U] {
	return Box2D[T, U]{Min: b.Min.Round(), Max: b.Max.Round()}
}

// RoundIn returns the largest box with integer coordinates inside b.
func (b Box2D[T, U]) RoundIn() Box2D[T, U] {
	return Box2D[T, U]{Min: b.Min.Ceil(), Max: b.Max.Floor()}
}

// RoundOut returns the smallest box with integer coordinates containing b.
func (b Box2D[T, U]) RoundOut() Box2D[T, U] {
	return Box2D[T, U]{Min: b.Min.Floor(), Max: b.Max.Ceil()}
}

func (b Box2D[T, U]) Lerp(other Box2D[T, U], t T) Box2D[T, U] {
	return Box2D[T, U]{
		Min: b.Min.Lerp(other.Min, t),
		Max: b.Max.Lerp(other.Max, t),
	}
}

// ToRect converts to the origin and size representation.
func (b Box2D[T, U]) ToRect() Rect[T, U] {
	return Rect[T, U]{Origin: b.Min, Size: b.Size()}
}

// ToArray returns [minX, minY, maxX, maxY].
func (b Box2D[T, U]) ToArray() [4]T {
	return [4]T{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y}
}

func (b Box2D[T, U]) ToImageRectangle() image.Rectangle {
	return image.Rectangle{
		Min: b.Min.ToImagePoint(),
		Max: b.Max.ToImagePoint(),
	}
}

func (b Box2D[T, U]) ApproxEq(other Box2D[T, U]) bool {
	return b.Min.ApproxEq(other.Min) && b.Max.ApproxEq(other.Max)
}

func (b Box2D[T, U]) String() string {
	return fmt.Sprintf("Box2D(min=%s, max=%s)", b.Min, b.Max)
}
