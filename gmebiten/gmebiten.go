// Package gmebiten connects gm transformations to the ebiten game engine.
package gmebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/unitgm/gm"
)

// GeoM converts the transformation into an ebiten.GeoM. ebiten multiplies
// column vectors, so the GeoM holds the transpose of the 3x2 matrix.
func GeoM[T gm.Scalar, Src, Dst any](t gm.Transform2D[T, Src, Dst]) ebiten.GeoM {
	m := gm.ConvertTransform2D[float64](t)

	var g ebiten.GeoM
	g.SetElement(0, 0, m.M11)
	g.SetElement(0, 1, m.M21)
	g.SetElement(0, 2, m.M31)
	g.SetElement(1, 0, m.M12)
	g.SetElement(1, 1, m.M22)
	g.SetElement(1, 2, m.M32)
	return g
}

// FromGeoM reads back a GeoM as a typed transformation.
func FromGeoM[Src, Dst any](g ebiten.GeoM) gm.Transform2D[float64, Src, Dst] {
	return gm.NewTransform2D[Src, Dst](
		g.Element(0, 0), g.Element(1, 0),
		g.Element(0, 1), g.Element(1, 1),
		g.Element(0, 2), g.Element(1, 2),
	)
}

// Apply transforms a point using a GeoM that is known to map from Src to Dst.
func Apply[Src, Dst any](g ebiten.GeoM, p gm.Point2D[float64, Src]) gm.Point2D[float64, Dst] {
	x, y := g.Apply(p.X, p.Y)
	return gm.Point2D[float64, Dst]{X: x, Y: y}
}

// DrawImageOptions returns options that draw an image, whose pixels live in
// Src, into the Dst space of the target image.
func DrawImageOptions[T gm.Scalar, Src, Dst any](t gm.Transform2D[T, Src, Dst]) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(t)
	return op
}

// DrawImage draws source onto target using the transformation.
func DrawImage[T gm.Scalar, Src, Dst any](target, source *ebiten.Image, t gm.Transform2D[T, Src, Dst]) {
	target.DrawImage(source, DrawImageOptions(t))
}

// ImageBounds returns the bounds of the image in its own pixel space.
func ImageBounds[U any](image *ebiten.Image) gm.Box2D[float64, U] {
	b := image.Bounds()

	return gm.Box2DFromArray[U]([4]float64{
		float64(b.Min.X), float64(b.Min.Y),
		float64(b.Max.X), float64(b.Max.Y),
	})
}

// ImageSize returns the size of the image in its own pixel space.
func ImageSize[U any](image *ebiten.Image) gm.Size2D[float64, U] {
	return ImageBounds[U](image).Size()
}

// SubImage returns the part of the image covered by the box. The box is
// rounded outwards to whole pixels.
func SubImage[U any](image *ebiten.Image, box gm.Box2D[float64, U]) *ebiten.Image {
	return image.SubImage(box.RoundOut().ToImageRectangle()).(*ebiten.Image)
}
