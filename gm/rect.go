package gm

import "fmt"

// Rect is an axis aligned rectangle described by its origin (the minimum
// corner) and its size. Most operations go through the equivalent Box2D.
type Rect[T Scalar, U any] struct {
	Origin Point2D[T, U]
	Size   Size2D[T, U]
}

func NewRect[T Scalar, U any](origin Point2D[T, U], size Size2D[T, U]) Rect[T, U] {
	return Rect[T, U]{Origin: origin, Size: size}
}

// RectFromArray builds a rect from [x, y, width, height].
func RectFromArray[U any, T Scalar](a [4]T) Rect[T, U] {
	return Rect[T, U]{
		Origin: Point2D[T, U]{X: a[0], Y: a[1]},
		Size:   Size2D[T, U]{Width: a[2], Height: a[3]},
	}
}

func (r Rect[T, U]) MinX() T { return r.Origin.X }
func (r Rect[T, U]) MinY() T { return r.Origin.Y }
func (r Rect[T, U]) MaxX() T { return r.Origin.X + r.Size.Width }
func (r Rect[T, U]) MaxY() T { return r.Origin.Y + r.Size.Height }

func (r Rect[T, U]) Min() Point2D[T, U] {
	return r.Origin
}

func (r Rect[T, U]) Max() Point2D[T, U] {
	return r.Origin.AddSize(r.Size)
}

func (r Rect[T, U]) TopRight() Point2D[T, U] {
	return Point2D[T, U]{X: r.MaxX(), Y: r.MinY()}
}

func (r Rect[T, U]) BottomLeft() Point2D[T, U] {
	return Point2D[T, U]{X: r.MinX(), Y: r.MaxY()}
}

func (r Rect[T, U]) BottomRight() Point2D[T, U] {
	return r.Max()
}

func (r Rect[T, U]) Center() Point2D[T, U] {
	return r.Origin.Add(r.Size.ToVector().Mul(0.5))
}

func (r Rect[T, U]) Area() T {
	return r.ToBox().Area()
}

// IsEmpty reports whether the rect has no positive area. Rects with a
// negative size are empty.
func (r Rect[T, U]) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// ToBox converts to the min and max representation.
func (r Rect[T, U]) ToBox() Box2D[T, U] {
	return Box2D[T, U]{Min: r.Min(), Max: r.Max()}
}

// Contains reports whether p lies in the rect, using the same half open
// rules as Box2D.Contains.
func (r Rect[T, U]) Contains(p Point2D[T, U]) bool {
	return r.ToBox().Contains(p)
}

func (r Rect[T, U]) ContainsRect(other Rect[T, U]) bool {
	return r.ToBox().ContainsBox(other.ToBox())
}

func (r Rect[T, U]) Intersects(other Rect[T, U]) bool {
	return r.ToBox().Intersects(other.ToBox())
}

// Intersection returns the overlap of both rects, or false if there is none.
func (r Rect[T, U]) Intersection(other Rect[T, U]) (Rect[T, U], bool) {
	box, ok := r.ToBox().Intersection(other.ToBox())
	if !ok {
		return Rect[T, U]{}, false
	}

	return box.ToRect(), true
}

// Union returns the smallest rect containing both. Empty operands are ignored.
func (r Rect[T, U]) Union(other Rect[T, U]) Rect[T, U] {
	if other.IsEmpty() {
		return r
	}

	if r.IsEmpty() {
		return other
	}

	return r.ToBox().Union(other.ToBox()).ToRect()
}

func (r Rect[T, U]) Translate(offset Vector2D[T, U]) Rect[T, U] {
	r.Origin = r.Origin.Add(offset)
	return r
}

func (r Rect[T, U]) TranslateBySize(size Size2D[T, U]) Rect[T, U] {
	r.Origin = r.Origin.AddSize(size)
	return r
}

// Inflate grows the rect by width on the left and right and by height on
// the top and bottom.
func (r Rect[T, U]) Inflate(width, height T) Rect[T, U] {
	return Rect[T, U]{
		Origin: Point2D[T, U]{X: r.Origin.X - width, Y: r.Origin.Y - height},
		Size:   Size2D[T, U]{Width: r.Size.Width + 2*width, Height: r.Size.Height + 2*height},
	}
}

func (r Rect[T, U]) InnerRect(offsets SideOffsets2D[T, U]) Rect[T, U] {
	return r.ToBox().InnerBox(offsets).ToRect()
}

func (r Rect[T, U]) OuterRect(offsets SideOffsets2D[T, U]) Rect[T, U] {
	return r.ToBox().OuterBox(offsets).ToRect()
}

// Scale multiplies origin and size, scaling the rect relative to the origin
// of the coordinate space.
func (r Rect[T, U]) Scale(x, y T) Rect[T, U] {
	return Rect[T, U]{
		Origin: Point2D[T, U]{X: r.Origin.X * x, Y: r.Origin.Y * y},
		Size:   Size2D[T, U]{Width: r.Size.Width * x, Height: r.Size.Height * y},
	}
}

// Round snaps the corners of the rect to the nearest integer coordinates.
func (r Rect[T, U]) Round() Rect[T, U] {
	return r.ToBox().Round().ToRect()
}

func (r Rect[T, U]) RoundIn() Rect[T, U] {
	return r.ToBox().RoundIn().ToRect()
}

func (r Rect[T, U]) RoundOut() Rect[T, U] {
	return r.ToBox().RoundOut().ToRect()
}

func (r Rect[T, U]) Lerp(other Rect[T, U], t T) Rect[T, U] {
	return Rect[T, U]{
		Origin: r.Origin.Lerp(other.Origin, t),
		Size:   r.Size.Lerp(other.Size, t),
	}
}

// ToArray returns [x, y, width, height].
func (r Rect[T, U]) ToArray() [4]T {
	return [4]T{r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height}
}

func (r Rect[T, U]) ApproxEq(other Rect[T, U]) bool {
	return r.Origin.ApproxEq(other.Origin) && r.Size.ApproxEq(other.Size)
}

func (r Rect[T, U]) String() string {
	return fmt.Sprintf("Rect(origin=%s, size=%s)", r.Origin, r.Size)
}
