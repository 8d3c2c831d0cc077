package gmebiten

import (
	"github.com/oliverbestmann/unitgm/gm"
)

// Camera is an orthographic 2d camera looking at the World space and
// projecting it onto the pixels of a Screen.
type Camera[World, Screen any] struct {
	// Position of the camera in world space.
	Position gm.Point2D[float64, World]

	// Rotation of the camera. Rotating the camera rotates the world the other way.
	Rotation gm.Angle[float64]

	// Origin of the camera relative to the viewport. Set this to (0.5, 0.5)
	// to center the camera.
	ViewportOrigin gm.Vector2D[float64, gm.UnknownUnit]

	ScalingMode ScalingMode

	// Extra scale to multiply on top of the ScalingMode. Can be used for zooming.
	Scale float64
}

// NewCamera returns a centered camera showing one world unit per pixel.
func NewCamera[World, Screen any]() Camera[World, Screen] {
	return Camera[World, Screen]{
		ViewportOrigin: gm.Vec2[gm.UnknownUnit](0.5, 0.5),
		ScalingMode:    ScalingModeWindowSize{},
		Scale:          1,
	}
}

// ViewportSize returns the size of the visible area in world units.
func (c Camera[World, Screen]) ViewportSize(screenSize gm.Size2D[float64, Screen]) gm.Size2D[float64, World] {
	scalingMode := c.ScalingMode
	if scalingMode == nil {
		scalingMode = ScalingModeWindowSize{}
	}

	width, height := scalingMode.ViewportSize(screenSize.Width, screenSize.Height)
	return gm.Sz2[World](width, height).Mul(c.Scale)
}

// WorldToScreen calculates the transformation from world space into the pixel
// space of a screen with the given size.
func (c Camera[World, Screen]) WorldToScreen(screenSize gm.Size2D[float64, Screen]) gm.Transform2D[float64, World, Screen] {
	viewportSize := c.ViewportSize(screenSize)

	// the offset of the camera from the top left corner of the viewport in world units
	viewportOffset := gm.Vec2[World](
		c.ViewportOrigin.X*viewportSize.Width,
		c.ViewportOrigin.Y*viewportSize.Height,
	)

	// move the camera to the origin, rotate around it and move it
	// to the viewport origin, still in world units
	toViewport := gm.Translate2D[World, World](-c.Position.X, -c.Position.Y).
		ThenRotate(c.Rotation.Neg()).
		ThenTranslate(viewportOffset)

	// scale world units to pixels
	toPixels := gm.Scale2D[World, Screen](screenSize.Width/viewportSize.Width, screenSize.Height/viewportSize.Height)

	return gm.Then2D(toViewport, toPixels)
}

// ScreenToWorld returns the inverse of WorldToScreen. The second result is
// false for degenerate viewports.
func (c Camera[World, Screen]) ScreenToWorld(screenSize gm.Size2D[float64, Screen]) (gm.Transform2D[float64, Screen, World], bool) {
	return c.WorldToScreen(screenSize).Inverse()
}

// VisibleBox returns the area of the world visible on the screen.
func (c Camera[World, Screen]) VisibleBox(screenSize gm.Size2D[float64, Screen]) (gm.Box2D[float64, World], bool) {
	toWorld, ok := c.ScreenToWorld(screenSize)
	if !ok {
		return gm.Box2D[float64, World]{}, false
	}

	return toWorld.OuterTransformedBox(gm.Box2DWithSize(screenSize)), true
}

// ScalingMode decides how many world units are visible for a given screen size.
type ScalingMode interface {
	ViewportSize(width, height float64) (float64, float64)
}

type ScalingModeWindowSize struct{}

func (s ScalingModeWindowSize) ViewportSize(width, height float64) (float64, float64) {
	return width, height
}

type ScalingModeFixed struct {
	Width, Height float64
}

func (s ScalingModeFixed) ViewportSize(width, height float64) (float64, float64) {
	return s.Width, s.Height
}

// ScalingModeAutoMin keeps the aspect ratio while the axes can’t be smaller than given minimum.
type ScalingModeAutoMin struct {
	MinWidth, MinHeight float64
}

func (s ScalingModeAutoMin) ViewportSize(width, height float64) (float64, float64) {
	if width*s.MinHeight > s.MinWidth*height {
		return width * s.MinHeight / height, s.MinHeight
	}

	return s.MinWidth, height * s.MinWidth / width
}

// ScalingModeAutoMax keeps the aspect ratio while the axes can’t be bigger than given maximum.
type ScalingModeAutoMax struct {
	MaxWidth, MaxHeight float64
}

func (s ScalingModeAutoMax) ViewportSize(width, height float64) (float64, float64) {
	if width*s.MaxHeight < s.MaxWidth*height {
		return width * s.MaxHeight / height, s.MaxHeight
	}

	return s.MaxWidth, height * s.MaxWidth / width
}

type ScalingModeFixedVertical struct {
	ViewportHeight float64
}

func (s ScalingModeFixedVertical) ViewportSize(width, height float64) (float64, float64) {
	return width * s.ViewportHeight / height, s.ViewportHeight
}

type ScalingModeFixedHorizontal struct {
	ViewportWidth float64
}

func (s ScalingModeFixedHorizontal) ViewportSize(width, height float64) (float64, float64) {
	return s.ViewportWidth, height * s.ViewportWidth / width
}
