// Package gmcp converts between gm values and the types of the chipmunk
// physics engine (github.com/jakecoffman/cp/v2). Chipmunk only knows
// float64, so all conversions use float64 as the scalar.
package gmcp

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/unitgm/gm"
)

func Vector[U any](v gm.Vector2D[float64, U]) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func FromVector[U any](v cp.Vector) gm.Vector2D[float64, U] {
	return gm.Vector2D[float64, U]{X: v.X, Y: v.Y}
}

// Point converts a point into a chipmunk vector. Chipmunk does not
// distinguish points from vectors.
func Point[U any](p gm.Point2D[float64, U]) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

func FromPoint[U any](v cp.Vector) gm.Point2D[float64, U] {
	return gm.Point2D[float64, U]{X: v.X, Y: v.Y}
}

// BB converts a box into a chipmunk bounding box. Chipmunk uses a y up
// coordinate system, so the minimum y is the bottom edge.
func BB[U any](b gm.Box2D[float64, U]) cp.BB {
	return cp.BB{L: b.Min.X, B: b.Min.Y, R: b.Max.X, T: b.Max.Y}
}

func FromBB[U any](bb cp.BB) gm.Box2D[float64, U] {
	return gm.Box2DFromArray[U]([4]float64{bb.L, bb.B, bb.R, bb.T})
}

// Transform converts into a chipmunk transform, which stores the matrix in
// column major order.
func Transform[Src, Dst any](t gm.Transform2D[float64, Src, Dst]) cp.Transform {
	m := t.ToArray()
	return cp.NewTransformTranspose(
		m[0], m[2], m[4],
		m[1], m[3], m[5],
	)
}

// FromTransform reads back a chipmunk transform by applying it to the origin
// and the unit axes, since chipmunk does not expose the matrix entries.
func FromTransform[Src, Dst any](t cp.Transform) gm.Transform2D[float64, Src, Dst] {
	origin := t.Point(cp.Vector{})
	xAxis := t.Point(cp.Vector{X: 1}).Sub(origin)
	yAxis := t.Point(cp.Vector{Y: 1}).Sub(origin)

	return gm.NewTransform2D[Src, Dst](
		xAxis.X, xAxis.Y,
		yAxis.X, yAxis.Y,
		origin.X, origin.Y,
	)
}

// BodyTransform returns the transformation from the local space of the body
// into the space the body is simulated in.
func BodyTransform[Local, World any](body *cp.Body) gm.Transform2D[float64, Local, World] {
	position := body.Position()

	return gm.Rotate2D[Local, World](gm.Radians(body.Angle())).
		ThenTranslate(gm.Vector2D[float64, World]{X: position.X, Y: position.Y})
}

// SetBodyTransform moves the body to the position and rotation described by
// the given point and angle.
func SetBodyTransform[World any](body *cp.Body, position gm.Point2D[float64, World], angle gm.Angle[float64]) {
	body.SetPosition(Point(position))
	body.SetAngle(angle.Radians())
}

// ShapeBox returns the cached bounding box of a shape.
func ShapeBox[World any](shape *cp.Shape) gm.Box2D[float64, World] {
	return FromBB[World](shape.BB())
}
