package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rect(x, y, w, h float64) Rect[float64, World] {
	return RectFromArray[World]([4]float64{x, y, w, h})
}

func TestRect_Intersection(t *testing.T) {
	res, ok := rect(0, 0, 2, 2).Intersection(rect(1, 1, 2, 2))
	require.True(t, ok)
	require.Equal(t, rect(1, 1, 1, 1), res)

	_, ok = rect(0, 0, 1, 1).Intersection(rect(5, 5, 1, 1))
	require.False(t, ok)

	// negative sizes are empty and never intersect
	_, ok = rect(0, 0, -2, 2).Intersection(rect(-1, 0, 2, 2))
	require.False(t, ok)
}

func TestRect_Union(t *testing.T) {
	a := rect(0, 0, 2, 2)
	b := rect(1, 1, 2, 2)

	require.Equal(t, rect(0, 0, 3, 3), a.Union(b))
	require.Equal(t, a.Union(b), b.Union(a))
	require.Equal(t, a, a.Union(a))
	require.Equal(t, a, a.Union(rect(10, 10, 0, 0)))
}

func TestRect_Accessors(t *testing.T) {
	r := rect(1, 2, 3, 4)

	require.Equal(t, 1.0, r.MinX())
	require.Equal(t, 4.0, r.MaxX())
	require.Equal(t, 6.0, r.MaxY())
	require.Equal(t, Pt2[World](4.0, 2.0), r.TopRight())
	require.Equal(t, Pt2[World](1.0, 6.0), r.BottomLeft())
	require.Equal(t, Pt2[World](2.5, 4.0), r.Center())
	require.Equal(t, 12.0, r.Area())
	require.Equal(t, [4]float64{1, 2, 3, 4}, r.ToArray())
}

func TestRect_Contains(t *testing.T) {
	r := rect(0, 0, 2, 2)

	require.True(t, r.Contains(Pt2[World](0.0, 0.0)))
	require.False(t, r.Contains(Pt2[World](2.0, 0.0)))
	require.True(t, r.ContainsRect(rect(0.5, 0.5, 1, 1)))
	require.False(t, r.ContainsRect(rect(0.5, 0.5, 2, 1)))
	require.True(t, r.Intersects(rect(1, 1, 5, 5)))
}

func TestRect_Transformations(t *testing.T) {
	r := rect(1, 1, 2, 2)

	require.Equal(t, rect(2, 0, 2, 2), r.Translate(Vec2[World](1.0, -1.0)))
	require.Equal(t, rect(3, 4, 2, 2), r.TranslateBySize(Sz2[World](2.0, 3.0)))
	require.Equal(t, rect(0, 0.5, 4, 3), r.Inflate(1, 0.5))
	require.Equal(t, rect(2, 3, 4, 6), r.Scale(2, 3))
	require.Equal(t, rect(1.5, 1, 1.5, 2), r.InnerRect(NewSideOffsets2D[World](0.0, 0.0, 0.0, 0.5)))
	require.Equal(t, rect(0, 0, 4, 4), r.OuterRect(SideOffsets2DAllSame[World](1.0)))
	require.Equal(t, rect(1, 1, 3, 3), rect(1.2, 1.4, 2.5, 2.3).RoundOut())
	require.Equal(t, rect(2, 2, 1, 1), rect(1.2, 1.4, 2.5, 2.3).RoundIn())
}
