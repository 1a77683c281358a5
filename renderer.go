package lantern

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer is the drawing backend a Viewer drives once per frame. Calls
// arrive in the order StartDraw, geometry, LightingPass, lights, StopDraw.
type Renderer interface {
	// StartDraw begins a frame and rebuilds the swapchain if it was
	// invalidated.
	StartDraw()
	StopDraw()
	// LightingPass switches from geometry to light accumulation.
	LightingPass()
	AmbientLight(c Color)
	DirectionalLight(direction mgl32.Vec3, c Color)
	// PointLight adds a light at a world position. screenToWorld is the
	// inverse view-projection of the camera the frame is drawn with.
	PointLight(screenToWorld mgl32.Mat4, position mgl32.Vec3, c Color, radius float32)
	// Dimensions returns the size of the render target in pixels.
	Dimensions() image.Point
	// InvalidateSwapchain marks the render target stale, for example after
	// the window was resized.
	InvalidateSwapchain()
	// Valid reports whether the current frame can be drawn.
	Valid() bool
}

// ShadowRenderer is implemented by renderers that draw shadow maps. It is
// called once per cube face of every point light, with the camera already
// pointed at the face.
type ShadowRenderer interface {
	PointShadowFace(face int, camera *PointShadowCamera)
}

// ModelRenderer is implemented by renderers that draw the viewed model.
type ModelRenderer interface {
	RenderModel(camera Camera, transform Transform)
}

// DirectionalLight is a light infinitely far away, like the sun.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Color     Color
}

// screenRect converts a position and size in [0,2] screen space to a pixel
// rectangle in a target of the given size. Screen space grows upwards, so the
// returned rectangle is flipped to grow downwards.
func screenRect(position, size mgl32.Vec2, target image.Point) (x, y, w, h float32) {
	tw, th := float32(target.X), float32(target.Y)
	x = position[0] / 2 * tw
	y = (2 - position[1]) / 2 * th
	w = size[0] / 2 * tw
	h = -size[1] / 2 * th
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h
}

// projectToPixels maps a world position through worldToScreen into pixel
// coordinates. ok is false for points behind the camera.
func projectToPixels(worldToScreen mgl32.Mat4, position mgl32.Vec3, target image.Point) (x, y float32, ok bool) {
	clip := worldToScreen.Mul4x1(position.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, false
	}
	s := clipToScreenSpace(clip)
	return s[0] / 2 * float32(target.X), (2 - s[1]) / 2 * float32(target.Y), true
}

// markerBounds returns the pixel rectangle of an editor marker drawn at
// position by camera.
func markerBounds(camera Camera, position mgl32.Vec3, target image.Point) (x, y, w, h float32, ok bool) {
	topLeft, bottomRight := camera.BillboardCoordinates(position, markerSize)
	if topLeft[3] <= 0 || bottomRight[3] <= 0 {
		return 0, 0, 0, 0, false
	}
	pos, size := camera.ScreenPositionSize(topLeft, bottomRight)
	x, y, w, h = screenRect(pos, size, target)
	return x, y, w, h, true
}

// markerSize is the half-extent of editor markers in world units.
const markerSize = 0.5
