// Package gmgl converts between gm and the OpenGL oriented math types of
// github.com/go-gl/mathgl. mathgl multiplies column vectors from the right
// and stores matrices column major. Both conventions cancel out, so the
// memory layout of a mathgl matrix equals the row major layout of the
// corresponding gm transformation.
package gmgl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oliverbestmann/unitgm/gm"
)

func Mat4[Src, Dst any](t gm.Transform3D[float64, Src, Dst]) mgl64.Mat4 {
	return t.ToArray()
}

func FromMat4[Src, Dst any](m mgl64.Mat4) gm.Transform3D[float64, Src, Dst] {
	return gm.Transform3DFromArray[Src, Dst]([16]float64(m))
}

func Mat4F32[Src, Dst any](t gm.Transform3D[float32, Src, Dst]) mgl32.Mat4 {
	return t.ToArray()
}

func FromMat4F32[Src, Dst any](m mgl32.Mat4) gm.Transform3D[float32, Src, Dst] {
	return gm.Transform3DFromArray[Src, Dst]([16]float32(m))
}

// Mat3 returns the homogeneous 3x3 matrix of a 2D transformation.
func Mat3[Src, Dst any](t gm.Transform2D[float64, Src, Dst]) mgl64.Mat3 {
	return mgl64.Mat3{
		t.M11, t.M12, 0,
		t.M21, t.M22, 0,
		t.M31, t.M32, 1,
	}
}

// FromMat3 reads the affine part of a homogeneous 3x3 matrix. The
// projective row is ignored.
func FromMat3[Src, Dst any](m mgl64.Mat3) gm.Transform2D[float64, Src, Dst] {
	return gm.NewTransform2D[Src, Dst](
		m[0], m[1],
		m[3], m[4],
		m[6], m[7],
	)
}

func Vec2[U any](v gm.Vector2D[float64, U]) mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func FromVec2[U any](v mgl64.Vec2) gm.Vector2D[float64, U] {
	return gm.Vec2[U](v[0], v[1])
}

func Vec3[U any](v gm.Vector3D[float64, U]) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func FromVec3[U any](v mgl64.Vec3) gm.Vector3D[float64, U] {
	return gm.Vec3[U](v[0], v[1], v[2])
}

func Point3[U any](p gm.Point3D[float64, U]) mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

func FromPoint3[U any](v mgl64.Vec3) gm.Point3D[float64, U] {
	return gm.Pt3[U](v[0], v[1], v[2])
}

func Vec4[U any](h gm.HomogeneousVector[float64, U]) mgl64.Vec4 {
	return mgl64.Vec4{h.X, h.Y, h.Z, h.W}
}

func FromVec4[U any](v mgl64.Vec4) gm.HomogeneousVector[float64, U] {
	return gm.HomogeneousVector[float64, U]{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// FromQuat returns the rotation described by a unit quaternion.
func FromQuat[Src, Dst any](q mgl64.Quat) gm.Transform3D[float64, Src, Dst] {
	return FromMat4[Src, Dst](q.Normalize().Mat4())
}

// Quat converts a rotation into an mgl64 quaternion.
func Quat[Src, Dst any](r gm.Rotation3D[float64, Src, Dst]) mgl64.Quat {
	return mgl64.Quat{W: r.R, V: mgl64.Vec3{r.I, r.J, r.K}}
}

func FromQuatRotation[Src, Dst any](q mgl64.Quat) gm.Rotation3D[float64, Src, Dst] {
	return gm.Rotation3DFromQuaternion[Src, Dst](q.V[0], q.V[1], q.V[2], q.W)
}

// LookAt returns the view transformation of a camera placed at eye and
// looking at center.
func LookAt[World, View any](eye, center gm.Point3D[float64, World], up gm.Vector3D[float64, World]) gm.Transform3D[float64, World, View] {
	return FromMat4[World, View](mgl64.LookAtV(Point3(eye), Point3(center), Vec3(up)))
}

// PerspectiveFov returns an OpenGL style projection into clip space.
func PerspectiveFov[View, Clip any](fovy gm.Angle[float64], aspect, near, far float64) gm.Transform3D[float64, View, Clip] {
	return FromMat4[View, Clip](mgl64.Perspective(fovy.Radians(), aspect, near, far))
}

// OrthoProjection returns an OpenGL style orthographic projection into clip space.
func OrthoProjection[View, Clip any](box gm.Box3D[float64, View]) gm.Transform3D[float64, View, Clip] {
	return FromMat4[View, Clip](mgl64.Ortho(box.Min.X, box.Max.X, box.Min.Y, box.Max.Y, box.Min.Z, box.Max.Z))
}
