package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oliverbestmann/unitgm/gm"
	"github.com/oliverbestmann/unitgm/gmgl"
	"github.com/oliverbestmann/unitgm/gmgonum"
	"github.com/oliverbestmann/unitgm/internal/typedpool"
	"gonum.org/v1/gonum/mat"
)

type World struct{}
type Local struct{}
type Screen struct{}

// samplePoints is shared by all workers.
var samplePoints = typedpool.New(typedpool.Clear[gm.Point2D[float64, World]])

// A check draws one random sample and returns the observed error. A non
// empty detail describes the sample for the violation report.
type check struct {
	Name string
	Run  func(r *rand.Rand) (float64, string)
}

var checks = []check{
	{Name: "inverse-2d", Run: checkInverse2D},
	{Name: "inverse-3d", Run: checkInverse3D},
	{Name: "then-2d", Run: checkThen2D},
	{Name: "then-3d-matches-2d", Run: checkThen3DMatches2D},
	{Name: "identity", Run: checkIdentity},
	{Name: "outer-box", Run: checkOuterBox},
	{Name: "box-algebra", Run: checkBoxAlgebra},
	{Name: "angle-normalization", Run: checkAngleNormalization},
	{Name: "gonum-inverse", Run: checkGonumInverse},
	{Name: "mathgl-then", Run: checkMathglThen},
}

func checkByName(name string) (check, bool) {
	for _, c := range checks {
		if c.Name == name {
			return c, true
		}
	}

	return check{}, false
}

var bounds2D = gm.Box2DFromArray[World]([4]float64{-1000, -1000, 1000, 1000})
var bounds3D = gm.Box3DFromArray[World]([6]float64{-100, -100, -100, 100, 100, 100})

func checkInverse2D(r *rand.Rand) (float64, string) {
	tr := gm.RandomTransform2D[World, Screen, float64](r)
	p := gm.RandomPoint2DIn(r, bounds2D)

	inv, ok := tr.Inverse()
	if !ok {
		return math.Inf(1), fmt.Sprintf("%s is not invertible", tr)
	}

	return inv.TransformPoint(tr.TransformPoint(p)).DistanceTo(p), fmt.Sprintf("%s on %s", tr, p)
}

func checkInverse3D(r *rand.Rand) (float64, string) {
	tr := gm.RandomTransform3D[World, Screen, float64](r)
	p := gm.RandomPoint3DIn(r, bounds3D)

	inv, ok := tr.Inverse()
	if !ok {
		return math.Inf(1), fmt.Sprintf("%s is not invertible", tr)
	}

	projected, ok := tr.TransformPoint3D(p)
	if !ok {
		return math.Inf(1), fmt.Sprintf("%s does not project %s", tr, p)
	}

	back, ok := inv.TransformPoint3D(projected)
	if !ok {
		return math.Inf(1), fmt.Sprintf("inverse of %s does not project %s", tr, projected)
	}

	return back.DistanceTo(p), fmt.Sprintf("%s on %s", tr, p)
}

func checkThen2D(r *rand.Rand) (float64, string) {
	a := gm.RandomTransform2D[World, Local, float64](r)
	b := gm.RandomTransform2D[Local, Screen, float64](r)
	p := gm.RandomPoint2DIn(r, bounds2D)

	combined := gm.Then2D(a, b).TransformPoint(p)
	sequential := b.TransformPoint(a.TransformPoint(p))

	return combined.DistanceTo(sequential), fmt.Sprintf("%s then %s on %s", a, b, p)
}

func checkThen3DMatches2D(r *rand.Rand) (float64, string) {
	a := gm.RandomTransform2D[World, Local, float64](r)
	b := gm.RandomTransform2D[Local, Screen, float64](r)
	p := gm.RandomPoint2DIn(r, bounds2D)

	res, ok := gm.Then3D(a.To3D(), b.To3D()).TransformPoint2D(p)
	if !ok {
		return math.Inf(1), fmt.Sprintf("promoted %s then %s does not project %s", a, b, p)
	}

	return res.DistanceTo(gm.Then2D(a, b).TransformPoint(p)), fmt.Sprintf("%s then %s on %s", a, b, p)
}

func checkIdentity(r *rand.Rand) (float64, string) {
	p := gm.RandomPoint2DIn(r, bounds2D)

	if res := gm.Identity2D[World, World, float64]().TransformPoint(p); res != p {
		return res.DistanceTo(p), fmt.Sprintf("identity moved %s to %s", p, res)
	}

	p3 := gm.RandomPoint3DIn(r, bounds3D)

	res, ok := gm.Identity3D[World, World, float64]().TransformPoint3D(p3)
	if !ok || res != p3 {
		return math.Inf(1), fmt.Sprintf("identity moved %s to %s", p3, res)
	}

	return 0, ""
}

func checkOuterBox(r *rand.Rand) (float64, string) {
	tr := gm.RandomTransform2D[World, Screen, float64](r)
	box := gm.Box2DWithPoints(gm.RandomPoint2DIn(r, bounds2D), gm.RandomPoint2DIn(r, bounds2D))

	buf := samplePoints.Get()
	defer samplePoints.Put(buf)

	points := append(*buf, box.TopLeft(), box.TopRight(), box.BottomLeft(), box.BottomRight())
	for range 16 {
		points = append(points, gm.RandomPoint2DIn(r, box))
	}

	*buf = points

	outer := tr.OuterTransformedBox(box)

	// distance of the farthest point outside of the outer box
	var worst float64
	for _, p := range points {
		q := tr.TransformPoint(p)
		worst = max(worst, q.DistanceTo(q.Clamp(outer.Min, outer.Max)))
	}

	return worst, fmt.Sprintf("%s on %s", tr, box)
}

func checkBoxAlgebra(r *rand.Rand) (float64, string) {
	random := func() gm.Box2D[float64, World] {
		return gm.Box2DWithPoints(gm.RandomPoint2DIn(r, bounds2D), gm.RandomPoint2DIn(r, bounds2D))
	}

	a, b := random(), random()
	detail := fmt.Sprintf("%s and %s", a, b)

	ab, okAB := a.Intersection(b)
	ba, okBA := b.Intersection(a)
	if okAB != okBA || ab != ba {
		return math.Inf(1), "intersection is not commutative for " + detail
	}

	if okAB && (!a.ContainsBox(ab) || !b.ContainsBox(ab)) {
		return math.Inf(1), "intersection not contained in operands for " + detail
	}

	union := a.Union(b)
	if union != b.Union(a) || !union.ContainsBox(a) || !union.ContainsBox(b) {
		return math.Inf(1), "union does not contain operands for " + detail
	}

	return 0, ""
}

func checkAngleNormalization(r *rand.Rand) (float64, string) {
	a := gm.Radians(gm.RandomIn(r, -100.0, 100.0))

	pos := a.Positive()
	if pos.Radians() < 0 || pos.Radians() >= 2*math.Pi {
		return math.Inf(1), fmt.Sprintf("positive %s is out of range", pos)
	}

	signed := a.Signed()
	if signed.Radians() <= -math.Pi || signed.Radians() > math.Pi {
		return math.Inf(1), fmt.Sprintf("signed %s is out of range", signed)
	}

	// all three must describe the same direction
	err := max(
		math.Abs(a.Sin()-pos.Sin()), math.Abs(a.Cos()-pos.Cos()),
		math.Abs(a.Sin()-signed.Sin()), math.Abs(a.Cos()-signed.Cos()),
	)

	return err, fmt.Sprintf("angle %s", a)
}

func checkGonumInverse(r *rand.Rand) (float64, string) {
	tr := gm.RandomTransform3D[World, Screen, float64](r)

	inv, ok := tr.Inverse()
	if !ok {
		return math.Inf(1), fmt.Sprintf("%s is not invertible", tr)
	}

	var dense mat.Dense
	if err := dense.Inverse(gmgonum.Dense3D(tr)); err != nil {
		return math.Inf(1), fmt.Sprintf("gonum failed to invert %s: %s", tr, err)
	}

	reference, err := gmgonum.FromDense3D[Screen, World](&dense)
	if err != nil {
		return math.Inf(1), err.Error()
	}

	return maxElementDifference(inv.ToArray(), reference.ToArray()), fmt.Sprintf("%s", tr)
}

func checkMathglThen(r *rand.Rand) (float64, string) {
	a := gm.RandomTransform3D[World, Local, float64](r)
	b := gm.RandomTransform3D[Local, Screen, float64](r)

	// mathgl applies the right hand side first
	var reference mgl64.Mat4 = gmgl.Mat4(b).Mul4(gmgl.Mat4(a))

	combined := gm.Then3D(a, b)

	return maxElementDifference(combined.ToArray(), reference), fmt.Sprintf("%s then %s", a, b)
}

func maxElementDifference(a, b [16]float64) float64 {
	var diff float64
	for idx := range a {
		diff = max(diff, math.Abs(a[idx]-b[idx]))
	}

	return diff
}
