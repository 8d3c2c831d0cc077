package gmcp

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/unitgm/gm"
	"github.com/stretchr/testify/require"
)

var _ cp.Drawer = debugImage[World, Screen]{}

func TestDebugImage_ScreenRadius(t *testing.T) {
	d := debugImage[World, Screen]{
		Transform: gm.Rotate2D[World, Screen](gm.Degrees(30.0)).
			ThenScale(4.0, 4.0).
			ThenTranslate(gm.Vec2[Screen](100.0, 50.0)),
	}

	// translation does not change the radius, rotation neither
	require.InDelta(t, 12.0, d.screenRadius(3), 1e-9)
	require.InDelta(t, 0.0, d.screenRadius(0), 1e-9)
}

func TestFatSegmentStroke(t *testing.T) {
	opts := fatSegmentStroke(5)
	require.Equal(t, float32(10), opts.Width)
	require.Equal(t, vector.LineCapRound, opts.LineCap)
}

func TestDebugImage_Settings(t *testing.T) {
	d := debugImage[World, Screen]{Transform: gm.Identity2D[World, Screen, float64]()}

	require.Equal(t, uint(0), d.Flags())
	require.Nil(t, d.Data())

	require.Equal(t, cp.FColor{R: 1, G: 1, B: 1, A: 1}, d.OutlineColor())
	require.Equal(t, cp.FColor{G: 1, A: 1}, d.ShapeColor(nil, nil))
	require.Equal(t, cp.FColor{R: 1, G: 0.75, A: 1}, d.ConstraintColor())
	require.Equal(t, cp.FColor{R: 1, A: 1}, d.CollisionPointColor())

	// all colors are opaque, the draw helpers premultiply by alpha
	for _, color := range []cp.FColor{d.OutlineColor(), d.ShapeColor(nil, nil), d.ConstraintColor(), d.CollisionPointColor()} {
		require.Equal(t, float32(1), color.A)
	}
}
