package gmcp

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/unitgm/gm"
)

// DrawSpace renders the shapes and constraints of a space onto the image.
// The transform maps from the simulation space into the pixel space of the image.
func DrawSpace[World, Screen any](space *cp.Space, image *ebiten.Image, toScreen gm.Transform2D[float64, World, Screen]) {
	cp.DrawSpace(space, debugImage[World, Screen]{Image: image, Transform: toScreen})
}

type debugImage[World, Screen any] struct {
	Image     *ebiten.Image
	Transform gm.Transform2D[float64, World, Screen]
}

func (d debugImage[World, Screen]) toScreen(p gm.Point2D[float64, World]) gm.Point2D[float64, Screen] {
	return d.Transform.TransformPoint(p)
}

// screenRadius returns the length of radius after transforming it into
// screen space.
func (d debugImage[World, Screen]) screenRadius(radius float64) float64 {
	return d.Transform.TransformVector(gm.Vector2D[float64, World]{X: radius}).Length()
}

func (d debugImage[World, Screen]) draw(p vector.Path, outline cp.FColor, fill cp.FColor) {
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
	vector.FillPath(d.Image, &p, &vector.FillOptions{}, dpo)

	d.stroke(p, outline, &vector.StrokeOptions{Width: 1})
}

func (d debugImage[World, Screen]) stroke(p vector.Path, color cp.FColor, opts *vector.StrokeOptions) {
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(color.R*color.A, color.G*color.A, color.B*color.A, color.A)
	vector.StrokePath(d.Image, &p, opts, dpo)
}

// fatSegmentStroke strokes a segment with rounded caps, as wide as a
// segment shape of the given radius in screen space.
func fatSegmentStroke(screenRadius float64) *vector.StrokeOptions {
	return &vector.StrokeOptions{
		Width:   float32(2 * screenRadius),
		LineCap: vector.LineCapRound,
	}
}

func (d debugImage[World, Screen]) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	center := d.toScreen(FromPoint[World](pos))

	// a marker from the center along the rotation of the body
	marker := d.toScreen(FromPoint[World](pos).Add(gm.Vector2DFromAngleAndLength[World](gm.Radians(angle), radius)))
	screenRadius := d.screenRadius(radius)

	var p vector.Path
	p.Arc(float32(center.X), float32(center.Y), float32(screenRadius), 0, math.Pi*2, vector.Clockwise)
	p.MoveTo(float32(center.X), float32(center.Y))
	p.LineTo(float32(marker.X), float32(marker.Y))

	d.draw(p, outline, fill)
}

func (d debugImage[World, Screen]) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	ta := d.toScreen(FromPoint[World](a))
	tb := d.toScreen(FromPoint[World](b))

	var p vector.Path
	p.MoveTo(float32(ta.X), float32(ta.Y))
	p.LineTo(float32(tb.X), float32(tb.Y))
	d.draw(p, fill, cp.FColor{})
}

func (d debugImage[World, Screen]) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	ta := d.toScreen(FromPoint[World](a))
	tb := d.toScreen(FromPoint[World](b))

	var p vector.Path
	p.MoveTo(float32(ta.X), float32(ta.Y))
	p.LineTo(float32(tb.X), float32(tb.Y))

	screenRadius := d.screenRadius(radius)
	if screenRadius <= 0.5 {
		d.stroke(p, fill, &vector.StrokeOptions{Width: 1})
		return
	}

	// the outline is a slightly wider stroke below the filled one
	d.stroke(p, outline, fatSegmentStroke(screenRadius+0.5))
	d.stroke(p, fill, fatSegmentStroke(screenRadius-0.5))
}

func (d debugImage[World, Screen]) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}

	var p vector.Path

	first := d.toScreen(FromPoint[World](verts[0]))
	p.MoveTo(float32(first.X), float32(first.Y))

	for _, vert := range verts[1:count] {
		tv := d.toScreen(FromPoint[World](vert))
		p.LineTo(float32(tv.X), float32(tv.Y))
	}

	p.Close()

	d.draw(p, outline, fill)
}

func (d debugImage[World, Screen]) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.DrawCircle(pos, 0, size/2, fill, fill, data)
}

func (d debugImage[World, Screen]) Flags() uint {
	return 0
}

func (d debugImage[World, Screen]) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d debugImage[World, Screen]) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{G: 1, A: 1}
}

func (d debugImage[World, Screen]) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d debugImage[World, Screen]) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, A: 1}
}

func (d debugImage[World, Screen]) Data() interface{} {
	return nil
}
