package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRay3D_Intersects(t *testing.T) {
	target := box(-1, -1, 1, 1)

	// straight down onto the box
	require.True(t, Ray3DFromPoints(Pt3[World](0.0, 0.0, 5.0), Pt3[World](0.0, 0.0, 4.0)).Intersects(target))

	// pointing away from the plane
	require.False(t, Ray3DFromPoints(Pt3[World](0.0, 0.0, 5.0), Pt3[World](0.0, 0.0, 6.0)).Intersects(target))

	// hits the plane outside of the box
	require.False(t, NewRay3D(Pt3[World](3.0, 0.0, 1.0), Vec3[World](0.0, 0.0, -1.0)).Intersects(target))

	// oblique, lands on (0.5, 0.5)
	require.True(t, NewRay3D(Pt3[World](2.5, 2.5, 2.0), Vec3[World](-1.0, -1.0, -1.0)).Intersects(target))

	// edges count
	require.True(t, NewRay3D(Pt3[World](1.0, 1.0, 1.0), Vec3[World](0.0, 0.0, -1.0)).Intersects(target))

	// from below
	require.True(t, NewRay3D(Pt3[World](0.0, 0.0, -1.0), Vec3[World](0.0, 0.0, 1.0)).Intersects(target))

	// starting on the plane inside the box
	require.True(t, NewRay3D(Pt3[World](0.0, 0.0, 0.0), Vec3[World](0.0, 0.0, 1.0)).Intersects(target))
}

func TestRay3D_IntersectsParallel(t *testing.T) {
	target := box(-1, -1, 1, 1)

	// above the plane, never reaches it
	require.False(t, NewRay3D(Pt3[World](0.0, 0.0, 1.0), Vec3[World](1.0, 0.0, 0.0)).Intersects(target))

	// within the plane, moving towards the box
	require.True(t, NewRay3D(Pt3[World](-5.0, 0.0, 0.0), Vec3[World](1.0, 0.0, 0.0)).Intersects(target))

	// within the plane, moving away from the box
	require.False(t, NewRay3D(Pt3[World](-5.0, 0.0, 0.0), Vec3[World](-1.0, 0.0, 0.0)).Intersects(target))

	// within the plane, passing beside the box
	require.False(t, NewRay3D(Pt3[World](-5.0, 2.0, 0.0), Vec3[World](1.0, 0.0, 0.0)).Intersects(target))

	// within the plane, diagonal through the corner region
	require.True(t, NewRay3D(Pt3[World](-3.0, -2.0, 0.0), Vec3[World](1.0, 1.0, 0.0)).Intersects(target))
	require.False(t, NewRay3D(Pt3[World](-3.0, 0.0, 0.0), Vec3[World](1.0, 2.0, 0.0)).Intersects(target))
}

func TestRay3D_IntersectsEmptyBox(t *testing.T) {
	ray := NewRay3D(Pt3[World](0.0, 0.0, 1.0), Vec3[World](0.0, 0.0, -1.0))

	require.False(t, ray.Intersects(box(0, 0, 0, 0)))
	require.False(t, ray.Intersects(box(1, 1, -1, -1)))
}

func TestRay3D_PointAt(t *testing.T) {
	ray := Ray3DFromPoints(Pt3[World](1.0, 2.0, 3.0), Pt3[World](2.0, 2.0, 1.0))

	require.Equal(t, Pt3[World](1.0, 2.0, 3.0), ray.PointAt(0))
	require.Equal(t, Pt3[World](2.0, 2.0, 1.0), ray.PointAt(1))
	require.Equal(t, Pt3[World](3.0, 2.0, -1.0), ray.PointAt(2))
}
