// Package gm (stands for geometry math) provides unit tagged geometry primitives.
//
// Every type is generic over a floating point Scalar and over one or two unit
// tags. A unit tag is any Go type, usually an empty struct, naming a coordinate
// space:
//
//	type World struct{}
//	type Screen struct{}
//
// A Point2D[float64, World] and a Point2D[float64, Screen] are different types,
// so mixing them does not compile. The tags never appear in a field and cost
// nothing at runtime.
//
// Transforms are tagged with a source and a destination space. Transform2D is a
// 3x2 affine matrix and Transform3D a 4x4 homogeneous matrix. Both use the row
// vector convention:
//
//	[x y 1] * M = [x' y']
//	[x y z 1] * M = [x' y' z' w']
//
// Composition follows the same order. Then2D(a, b) returns the transform that
// applies a first and b second, which is the matrix product a*b. Translation
// terms live in the last row (M31, M32 for 2d, M41..M43 for 3d).
//
// Operations that can fail return a second boolean result: inverting a
// singular matrix, projecting a point with w == 0 and intersecting disjoint
// boxes. Everything else is total, NaN and Inf propagate as usual.
//
// A matrix counts as singular if its determinant is not finite or
//
//	|det| <= MachineEpsilon * product of the row lengths
//
// The product of the row lengths bounds |det|, the ratio of both is one for
// a rotation and does not change when scaling uniformly. Tiny but well
// conditioned transforms like Scale2D(1e-9) therefore stay invertible, while
// rows that are nearly parallel are rejected no matter their magnitude.
// Transform2D only looks at the linear part, Transform3D at all four rows.
package gm
