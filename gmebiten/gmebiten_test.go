package gmebiten

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/unitgm/gm"
	"github.com/stretchr/testify/require"
)

type World struct{}
type Screen struct{}

func TestGeoM(t *testing.T) {
	tr := gm.Rotate2D[World, Screen](gm.Degrees(30.0)).
		ThenScale(2.0, 3.0).
		ThenTranslate(gm.Vec2[Screen](5.0, -1.0))

	g := GeoM(tr)

	for _, p := range []gm.Point2D[float64, World]{{0, 0}, {1, 0}, {0, 1}, {-4, 2.5}} {
		require.True(t, tr.TransformPoint(p).ApproxEq(Apply[World, Screen](g, p)))
	}

	// ebiten stores the diagonal with an offset of one, so the round trip is not exact
	require.True(t, tr.ApproxEq(FromGeoM[World, Screen](g)))
}

func TestGeoM_CompositionOrder(t *testing.T) {
	// ebiten applies the operations in the order they are called
	var g ebiten.GeoM
	g.Translate(3, 4)
	g.Scale(2, 2)
	g.Rotate(math.Pi / 2)

	tr := gm.Translate2D[World, Screen](3.0, 4.0).
		ThenScale(2.0, 2.0).
		ThenRotate(gm.Radians(math.Pi / 2))

	require.True(t, tr.ApproxEq(FromGeoM[World, Screen](g)))

	// Concat appends the other matrix like Then2D does
	var other ebiten.GeoM
	other.Translate(-1, 7)

	combined := g
	combined.Concat(other)

	expected := gm.Then2D(tr, gm.Translate2D[Screen, Screen](-1.0, 7.0))
	require.True(t, expected.ApproxEq(FromGeoM[World, Screen](combined)))
}

func TestGeoM_Inverse(t *testing.T) {
	tr := gm.Rotate2D[World, Screen](gm.Degrees(-60.0)).ThenScale(0.5, 4.0).ThenTranslate(gm.Vec2[Screen](10.0, 20.0))

	g := GeoM(tr)
	require.True(t, g.IsInvertible())
	g.Invert()

	inv, ok := tr.Inverse()
	require.True(t, ok)
	require.True(t, inv.ApproxEq(FromGeoM[Screen, World](g)))

	singular := GeoM(gm.Scale2D[World, Screen](0.0, 1.0))
	require.False(t, singular.IsInvertible())
}

func TestGeoM_Float32(t *testing.T) {
	tr := gm.Translate2D[World, Screen](float32(1.5), 2.5)
	require.Equal(t, gm.ConvertTransform2D[float64](tr), FromGeoM[World, Screen](GeoM(tr)))
}

func TestCamera_WorldToScreen(t *testing.T) {
	screen := gm.Sz2[Screen](800.0, 600.0)

	camera := NewCamera[World, Screen]()
	camera.Position = gm.Pt2[World](100.0, 50.0)

	toScreen := camera.WorldToScreen(screen)

	// the camera position is in the center of the screen
	require.True(t, toScreen.TransformPoint(camera.Position).ApproxEq(gm.Pt2[Screen](400.0, 300.0)))
	require.True(t, toScreen.TransformPoint(gm.Pt2[World](101.0, 50.0)).ApproxEq(gm.Pt2[Screen](401.0, 300.0)))

	// zooming out shows twice the world
	camera.Scale = 2
	toScreen = camera.WorldToScreen(screen)
	require.True(t, toScreen.TransformPoint(gm.Pt2[World](102.0, 50.0)).ApproxEq(gm.Pt2[Screen](401.0, 300.0)))

	visible, ok := camera.VisibleBox(screen)
	require.True(t, ok)
	require.True(t, visible.ApproxEq(gm.Box2DFromArray[World]([4]float64{-700, -550, 900, 650})))
}

func TestCamera_Rotation(t *testing.T) {
	screen := gm.Sz2[Screen](100.0, 100.0)

	camera := NewCamera[World, Screen]()
	camera.Rotation = gm.Degrees(90.0)

	// rotating the camera rotates the world the other way
	res := camera.WorldToScreen(screen).TransformPoint(gm.Pt2[World](0.0, 10.0))
	require.True(t, res.ApproxEq(gm.Pt2[Screen](60.0, 50.0)))

	toWorld, ok := camera.ScreenToWorld(screen)
	require.True(t, ok)
	require.True(t, toWorld.TransformPoint(res).ApproxEq(gm.Pt2[World](0.0, 10.0)))
}

func TestCamera_WorldToScreenStepByStep(t *testing.T) {
	screen := gm.Sz2[Screen](800.0, 600.0)

	camera := NewCamera[World, Screen]()
	camera.Position = gm.Pt2[World](10.0, 20.0)
	camera.Rotation = gm.Degrees(30.0)
	camera.ViewportOrigin = gm.Vec2[gm.UnknownUnit](0.25, 0.75)
	camera.ScalingMode = ScalingModeFixed{Width: 400, Height: 200}

	toScreen := camera.WorldToScreen(screen)

	sin, cos := camera.Rotation.Sincos()

	for _, p := range []gm.Point2D[float64, World]{{X: 10, Y: 20}, {X: 0, Y: 0}, {X: -35, Y: 12.5}, {X: 400, Y: -80}} {
		d := p.Sub(camera.Position)

		// rotate against the camera, offset into the viewport, then to pixels
		x := d.X*cos + d.Y*sin + 0.25*400
		y := -d.X*sin + d.Y*cos + 0.75*200

		expected := gm.Pt2[Screen](x*800/400, y*600/200)
		require.True(t, toScreen.TransformPoint(p).ApproxEq(expected), "%s", p)
	}

	// the camera position ends up at the viewport origin
	require.True(t, toScreen.TransformPoint(camera.Position).ApproxEq(gm.Pt2[Screen](200.0, 450.0)))
}

func TestScalingModes(t *testing.T) {
	cases := []struct {
		Mode          ScalingMode
		Width, Height float64
	}{
		{ScalingModeWindowSize{}, 800, 600},
		{ScalingModeFixed{Width: 16, Height: 9}, 16, 9},
		{ScalingModeFixedVertical{ViewportHeight: 300}, 400, 300},
		{ScalingModeFixedHorizontal{ViewportWidth: 400}, 400, 300},
		{ScalingModeAutoMin{MinWidth: 400, MinHeight: 400}, 533.3333333333334, 400},
		{ScalingModeAutoMax{MaxWidth: 400, MaxHeight: 400}, 400, 300},
	}

	for _, c := range cases {
		width, height := c.Mode.ViewportSize(800, 600)
		require.InDelta(t, c.Width, width, 1e-9, "%T", c.Mode)
		require.InDelta(t, c.Height, height, 1e-9, "%T", c.Mode)
	}
}
