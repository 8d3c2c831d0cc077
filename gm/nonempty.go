package gm

// NonEmptyBox2D is a Box2D known to have a positive area. Values are only
// created through Box2D.NonEmpty and the methods below, which keep that
// guarantee.
type NonEmptyBox2D[T Scalar, U any] struct {
	box Box2D[T, U]
}

// NonEmpty returns b wrapped as a NonEmptyBox2D. The second result is false
// if b is empty.
func (b Box2D[T, U]) NonEmpty() (NonEmptyBox2D[T, U], bool) {
	if b.IsEmpty() {
		return NonEmptyBox2D[T, U]{}, false
	}

	return NonEmptyBox2D[T, U]{box: b}, true
}

func (n NonEmptyBox2D[T, U]) Box() Box2D[T, U] {
	return n.box
}

// Union skips the emptiness checks of Box2D.Union, both operands have an area.
func (n NonEmptyBox2D[T, U]) Union(other NonEmptyBox2D[T, U]) NonEmptyBox2D[T, U] {
	return NonEmptyBox2D[T, U]{
		box: Box2D[T, U]{
			Min: n.box.Min.Min(other.box.Min),
			Max: n.box.Max.Max(other.box.Max),
		},
	}
}

func (n NonEmptyBox2D[T, U]) ContainsBox(other NonEmptyBox2D[T, U]) bool {
	return n.box.Min.X <= other.box.Min.X && other.box.Max.X <= n.box.Max.X &&
		n.box.Min.Y <= other.box.Min.Y && other.box.Max.Y <= n.box.Max.Y
}

func (n NonEmptyBox2D[T, U]) Intersection(other NonEmptyBox2D[T, U]) (NonEmptyBox2D[T, U], bool) {
	return n.box.IntersectionUnchecked(other.box).NonEmpty()
}

func (n NonEmptyBox2D[T, U]) String() string {
	return n.box.String()
}

// NonEmptyBox3D is a Box3D known to have a positive volume.
type NonEmptyBox3D[T Scalar, U any] struct {
	box Box3D[T, U]
}

func (b Box3D[T, U]) NonEmpty() (NonEmptyBox3D[T, U], bool) {
	if b.IsEmpty() {
		return NonEmptyBox3D[T, U]{}, false
	}

	return NonEmptyBox3D[T, U]{box: b}, true
}

func (n NonEmptyBox3D[T, U]) Box() Box3D[T, U] {
	return n.box
}

func (n NonEmptyBox3D[T, U]) Union(other NonEmptyBox3D[T, U]) NonEmptyBox3D[T, U] {
	return NonEmptyBox3D[T, U]{
		box: Box3D[T, U]{
			Min: n.box.Min.Min(other.box.Min),
			Max: n.box.Max.Max(other.box.Max),
		},
	}
}

func (n NonEmptyBox3D[T, U]) ContainsBox(other NonEmptyBox3D[T, U]) bool {
	return n.box.Min.X <= other.box.Min.X && other.box.Max.X <= n.box.Max.X &&
		n.box.Min.Y <= other.box.Min.Y && other.box.Max.Y <= n.box.Max.Y &&
		n.box.Min.Z <= other.box.Min.Z && other.box.Max.Z <= n.box.Max.Z
}

func (n NonEmptyBox3D[T, U]) Intersection(other NonEmptyBox3D[T, U]) (NonEmptyBox3D[T, U], bool) {
	return n.box.IntersectionUnchecked(other.box).NonEmpty()
}

func (n NonEmptyBox3D[T, U]) String() string {
	return n.box.String()
}
