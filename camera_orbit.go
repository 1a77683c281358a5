package lantern

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	orbitNearPlane = 0.5
	orbitFarPlane  = 1000.0
	orbitFOV       = 45.0

	orbitMinZoom     = 5.0
	orbitMaxZoom     = 300.0
	orbitDefaultZoom = 40.0

	// orbitTweenDuration is how long soft zoom and rotation take, in seconds.
	orbitTweenDuration = 0.25
)

// OrbitCamera circles a focus point. Zoom and rotation changes made through
// SoftZoom and SoftRotate are eased in over a short tween advanced by Update.
type OrbitCamera struct {
	// ViewAngle is the pitch above the horizon in radians.
	ViewAngle float32

	focusPoint mgl32.Vec3
	zoom       float32
	rotation   float32

	zoomTarget     float32
	rotationTarget float32
	zoomTween      *gween.Tween
	rotationTween  *gween.Tween

	cameraPosition      mgl32.Vec3
	viewDirection       mgl32.Vec3
	viewMatrix          mgl32.Mat4
	projectionMatrix    mgl32.Mat4
	worldToScreenMatrix mgl32.Mat4
	screenToWorldMatrix mgl32.Mat4
}

// NewOrbitCamera creates a camera looking at the origin from the default
// distance.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		ViewAngle:  mgl32.DegToRad(45),
		zoom:       orbitDefaultZoom,
		zoomTarget: orbitDefaultZoom,
	}
}

// SetFocusPoint sets the point the camera orbits.
func (c *OrbitCamera) SetFocusPoint(p mgl32.Vec3) {
	c.focusPoint = p
}

// FocusPoint returns the point the camera orbits.
func (c *OrbitCamera) FocusPoint() mgl32.Vec3 {
	return c.focusPoint
}

// Zoom returns the current distance to the focus point.
func (c *OrbitCamera) Zoom() float32 {
	return c.zoom
}

// Rotation returns the current yaw in radians.
func (c *OrbitCamera) Rotation() float32 {
	return c.rotation
}

// SoftZoom eases the distance to the focus point by delta, clamped to the
// allowed zoom range.
func (c *OrbitCamera) SoftZoom(delta float32) {
	c.zoomTarget = clampf(c.zoomTarget+delta, orbitMinZoom, orbitMaxZoom)
	c.zoomTween = gween.New(c.zoom, c.zoomTarget, orbitTweenDuration, ease.OutQuad)
}

// SoftRotate eases the yaw by delta radians.
func (c *OrbitCamera) SoftRotate(delta float32) {
	c.rotationTarget += delta
	c.rotationTween = gween.New(c.rotation, c.rotationTarget, orbitTweenDuration, ease.OutQuad)
}

// Update advances the zoom and rotation tweens by dt seconds.
func (c *OrbitCamera) Update(dt float64) {
	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(float32(dt))
		c.zoom = val
		if done {
			c.zoomTween = nil
		}
	}
	if c.rotationTween != nil {
		val, done := c.rotationTween.Update(float32(dt))
		c.rotation = val
		if done {
			c.rotationTween = nil
		}
	}
}

// GenerateViewProjection rebuilds the matrices for a window of the given
// size. A zero-height window is treated as square.
func (c *OrbitCamera) GenerateViewProjection(windowSize image.Point) {
	aspect := float32(1)
	if windowSize.X > 0 && windowSize.Y > 0 {
		aspect = float32(windowSize.X) / float32(windowSize.Y)
	}

	sinYaw, cosYaw := math.Sincos(float64(c.rotation))
	sinPitch, cosPitch := math.Sincos(float64(c.ViewAngle))
	offset := mgl32.Vec3{
		float32(sinYaw * cosPitch),
		float32(sinPitch),
		float32(cosYaw * cosPitch),
	}
	c.cameraPosition = c.focusPoint.Add(offset.Mul(c.zoom))
	c.viewDirection = offset.Mul(-1)

	c.projectionMatrix = mgl32.Perspective(mgl32.DegToRad(orbitFOV), aspect, orbitNearPlane, orbitFarPlane)
	c.viewMatrix = mgl32.LookAtV(c.cameraPosition, c.focusPoint, mgl32.Vec3{0, 1, 0})
	c.worldToScreenMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
	c.screenToWorldMatrix = invertViewProjection(c.worldToScreenMatrix)
}

// CameraPosition returns the position computed by the last generation.
func (c *OrbitCamera) CameraPosition() mgl32.Vec3 {
	return c.cameraPosition
}

// ViewProjectionMatrices returns the view and projection of the last
// generation.
func (c *OrbitCamera) ViewProjectionMatrices() (mgl32.Mat4, mgl32.Mat4) {
	return c.viewMatrix, c.projectionMatrix
}

// WorldToScreenMatrix returns projection * view.
func (c *OrbitCamera) WorldToScreenMatrix() mgl32.Mat4 {
	return c.worldToScreenMatrix
}

// TransformMatrix returns the model matrix of t.
func (c *OrbitCamera) TransformMatrix(t Transform) mgl32.Mat4 {
	return modelMatrix(t)
}

// BillboardMatrix orients a quad so it faces along the view direction.
func (c *OrbitCamera) BillboardMatrix(position, origin mgl32.Vec3, size mgl32.Vec2) mgl32.Mat4 {
	return billboardMatrix(position, origin, size, c.viewDirection, mgl32.Vec3{0, 1, 0})
}

// BillboardCoordinates returns the clip-space corners of a camera-facing
// square of half-extent size around position.
func (c *OrbitCamera) BillboardCoordinates(position mgl32.Vec3, size float32) (mgl32.Vec4, mgl32.Vec4) {
	return billboardCorners(c.worldToScreenMatrix, position, size, c.viewDirection, mgl32.Vec3{0, 1, 0})
}

// ScreenPositionSize converts clip-space corners to screen space.
func (c *OrbitCamera) ScreenPositionSize(topLeft, bottomRight mgl32.Vec4) (mgl32.Vec2, mgl32.Vec2) {
	return screenPositionSize(topLeft, bottomRight)
}

// DistanceTo returns the distance from the camera to position.
func (c *OrbitCamera) DistanceTo(position mgl32.Vec3) float32 {
	return c.cameraPosition.Sub(position).Len()
}

// ScreenToWorldMatrix returns the inverse of projection * view.
func (c *OrbitCamera) ScreenToWorldMatrix() mgl32.Mat4 {
	return c.screenToWorldMatrix
}

// CameraDirection buckets the horizontal view direction.
func (c *OrbitCamera) CameraDirection() int {
	return compassDirection(mgl32.Vec2{c.viewDirection[0], c.viewDirection[2]})
}

// DepthOffsetAndCurvature returns the depth correction for world. The orbit
// camera renders a flat world, so curvature is always zero.
func (c *OrbitCamera) DepthOffsetAndCurvature(world mgl32.Mat4) (float32, float32) {
	return depthOffset(c.worldToScreenMatrix, world), 0
}

func clampf(v, lo, hi float32) float32 {
	return float32(math.Max(float64(lo), math.Min(float64(v), float64(hi))))
}

var _ Camera = (*OrbitCamera)(nil)
