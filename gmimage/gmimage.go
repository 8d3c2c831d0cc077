// Package gmimage connects gm with the image packages of the standard library
// and golang.org/x/image.
package gmimage

import (
	"image"

	"github.com/oliverbestmann/unitgm/gm"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Aff3 converts the transformation into the column vector layout used by
// golang.org/x/image, where a point maps to (m0*x + m1*y + m2, m3*x + m4*y + m5).
func Aff3[T gm.Scalar, Src, Dst any](t gm.Transform2D[T, Src, Dst]) f64.Aff3 {
	return f64.Aff3{
		float64(t.M11), float64(t.M21), float64(t.M31),
		float64(t.M12), float64(t.M22), float64(t.M32),
	}
}

func FromAff3[Src, Dst any](m f64.Aff3) gm.Transform2D[float64, Src, Dst] {
	return gm.NewTransform2D[Src, Dst](
		m[0], m[3],
		m[1], m[4],
		m[2], m[5],
	)
}

func Aff3F32[T gm.Scalar, Src, Dst any](t gm.Transform2D[T, Src, Dst]) f32.Aff3 {
	return f32.Aff3{
		float32(t.M11), float32(t.M21), float32(t.M31),
		float32(t.M12), float32(t.M22), float32(t.M32),
	}
}

func FromAff3F32[Src, Dst any](m f32.Aff3) gm.Transform2D[float32, Src, Dst] {
	return gm.NewTransform2D[Src, Dst](
		m[0], m[3],
		m[1], m[4],
		m[2], m[5],
	)
}

// Mat4 converts the transformation into a row major matrix for column vectors,
// which is the transpose of Transform3D.ToArray.
func Mat4[T gm.Scalar, Src, Dst any](t gm.Transform3D[T, Src, Dst]) f64.Mat4 {
	values := t.ToArray()

	var m f64.Mat4
	for row := range 4 {
		for col := range 4 {
			m[row*4+col] = float64(values[col*4+row])
		}
	}

	return m
}

func FromMat4[Src, Dst any](m f64.Mat4) gm.Transform3D[float64, Src, Dst] {
	var values [16]float64
	for row := range 4 {
		for col := range 4 {
			values[row*4+col] = m[col*4+row]
		}
	}

	return gm.Transform3DFromArray[Src, Dst](values)
}

func Vec2[T gm.Scalar, U any](v gm.Vector2D[T, U]) f64.Vec2 {
	return f64.Vec2{float64(v.X), float64(v.Y)}
}

func FromVec2[U any](v f64.Vec2) gm.Vector2D[float64, U] {
	return gm.Vec2[U](v[0], v[1])
}

func Vec3[T gm.Scalar, U any](v gm.Vector3D[T, U]) f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func FromVec3[U any](v f64.Vec3) gm.Vector3D[float64, U] {
	return gm.Vec3[U](v[0], v[1], v[2])
}

// Box converts an image rectangle into a box. Pixel coordinates are
// half open in the same way boxes are.
func Box[U any](r image.Rectangle) gm.Box2D[float64, U] {
	return gm.Box2DFromArray[U]([4]float64{
		float64(r.Min.X), float64(r.Min.Y),
		float64(r.Max.X), float64(r.Max.Y),
	})
}

// Rectangle returns the smallest rectangle of whole pixels containing the box.
func Rectangle[U any](b gm.Box2D[float64, U]) image.Rectangle {
	b = b.RoundOut()
	return image.Rect(int(b.Min.X), int(b.Min.Y), int(b.Max.X), int(b.Max.Y))
}

func Point[U any](p image.Point) gm.Point2D[float64, U] {
	return gm.Pt2[U](float64(p.X), float64(p.Y))
}

// TransformImage draws src onto dst, mapping the pixel space of src into the
// pixel space of dst using the given transformation.
func TransformImage[Src, Dst any](dst draw.Image, src image.Image, t gm.Transform2D[float64, Src, Dst], interpolator draw.Interpolator) {
	interpolator.Transform(dst, Aff3(t), src, src.Bounds(), draw.Over, nil)
}

// TransformedBounds returns the area of dst that TransformImage would touch.
func TransformedBounds[Src, Dst any](src image.Rectangle, t gm.Transform2D[float64, Src, Dst]) image.Rectangle {
	return Rectangle(t.OuterTransformedBox(Box[Src](src)))
}

// Transformed returns a new image holding src after applying the transformation.
// The bounds of the result are the transformed bounds of src.
func Transformed[Src, Dst any](src image.Image, t gm.Transform2D[float64, Src, Dst], interpolator draw.Interpolator) *image.RGBA {
	bounds := TransformedBounds(src.Bounds(), t)

	dst := image.NewRGBA(bounds)
	TransformImage(dst, src, t, interpolator)

	return dst
}
