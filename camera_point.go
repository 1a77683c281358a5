package lantern

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	shadowNearPlane = 0.1
	shadowFarPlane  = 256.0
	shadowFOV       = 90.0

	// ShadowCurvature is the world curvature reported for shadow maps. It is
	// an empirical value; it has not been derived from the near and far
	// planes, so it only holds for the current projection.
	ShadowCurvature = 0.003

	// ShadowFaces is the number of cube faces a point light renders.
	ShadowFaces = 6
)

// shadowFaceTable holds the view direction and up vector of each cube face.
// Faces looking along Y use Z as up so the look-at basis never degenerates.
var shadowFaceTable = [ShadowFaces]struct {
	direction mgl32.Vec3
	up        mgl32.Vec3
}{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, -1, 0}},
}

// lookingDown is the up vector of the face that looks straight down (-Y).
var lookingDown = mgl32.Vec3{0, 0, -1}

// PointShadowCamera renders the six cube faces of an omnidirectional point
// light shadow map. Its matrices are all zero until the first call to
// GenerateViewProjection; screen-space queries before that return garbage.
type PointShadowCamera struct {
	cameraPosition mgl32.Vec3
	viewDirection  mgl32.Vec3
	lookUpVector   mgl32.Vec3

	viewMatrix          mgl32.Mat4
	projectionMatrix    mgl32.Mat4
	worldToScreenMatrix mgl32.Mat4
	screenToWorldMatrix mgl32.Mat4

	projected bool
}

// NewPointShadowCamera creates a camera at the origin facing +X.
func NewPointShadowCamera() *PointShadowCamera {
	return &PointShadowCamera{
		viewDirection: shadowFaceTable[0].direction,
		lookUpVector:  shadowFaceTable[0].up,
	}
}

// SetCameraPosition moves the camera to the light's position. Matrices are
// not updated until the next ChangeDirection or GenerateViewProjection.
func (c *PointShadowCamera) SetCameraPosition(position mgl32.Vec3) {
	c.cameraPosition = position
}

// CameraPosition returns the camera's world position.
func (c *PointShadowCamera) CameraPosition() mgl32.Vec3 {
	return c.cameraPosition
}

// ChangeDirection selects one of the six cube faces and immediately rebuilds
// the view and combined matrices. It panics if face is not in [0, 5].
func (c *PointShadowCamera) ChangeDirection(face int) {
	if face < 0 || face >= ShadowFaces {
		panic(fmt.Sprintf("lantern: invalid shadow face %d", face))
	}
	c.viewDirection = shadowFaceTable[face].direction
	c.lookUpVector = shadowFaceTable[face].up
	c.viewMatrix = c.lookAt()
	c.updateCombined()
}

// GenerateViewProjection builds the 90 degree, square projection of a cube
// face. windowSize is ignored: shadow faces are always square.
func (c *PointShadowCamera) GenerateViewProjection(_ image.Point) {
	c.projectionMatrix = mgl32.Perspective(mgl32.DegToRad(shadowFOV), 1, shadowNearPlane, shadowFarPlane)
	c.viewMatrix = c.lookAt()
	c.projected = true
	c.updateCombined()
}

func (c *PointShadowCamera) lookAt() mgl32.Mat4 {
	return mgl32.LookAtV(c.cameraPosition, c.cameraPosition.Add(c.viewDirection), c.lookUpVector)
}

// updateCombined recomputes world-to-screen and, once a projection exists,
// its inverse. Before the first projection the combined matrix is zero and
// the inverse is left untouched.
func (c *PointShadowCamera) updateCombined() {
	c.worldToScreenMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
	if c.projected {
		c.screenToWorldMatrix = invertViewProjection(c.worldToScreenMatrix)
	}
}

// ViewProjectionMatrices returns the view and projection of the last
// generation.
func (c *PointShadowCamera) ViewProjectionMatrices() (mgl32.Mat4, mgl32.Mat4) {
	return c.viewMatrix, c.projectionMatrix
}

// WorldToScreenMatrix returns projection * view.
func (c *PointShadowCamera) WorldToScreenMatrix() mgl32.Mat4 {
	return c.worldToScreenMatrix
}

// TransformMatrix returns the model matrix of t.
func (c *PointShadowCamera) TransformMatrix(t Transform) mgl32.Mat4 {
	return modelMatrix(t)
}

// BillboardMatrix orients a quad towards the camera. While the light looks
// straight down, the quad faces the horizontal direction from the light to
// the quad instead, so it is not flattened into the ground plane.
func (c *PointShadowCamera) BillboardMatrix(position, origin mgl32.Vec3, size mgl32.Vec2) mgl32.Mat4 {
	direction, up := c.billboardFacing(position)
	return billboardMatrix(position, origin, size, direction, up)
}

// billboardFacing returns the direction and up hint a billboard at position
// is built from.
func (c *PointShadowCamera) billboardFacing(position mgl32.Vec3) (direction, up mgl32.Vec3) {
	if c.lookUpVector != lookingDown {
		return c.viewDirection, c.lookUpVector
	}
	direction = position.Sub(c.cameraPosition)
	direction[1] = 0
	return direction.Normalize(), mgl32.Vec3{0, -1, 0}
}

// BillboardCoordinates returns the clip-space corners of a square of
// half-extent size around position, facing the camera.
func (c *PointShadowCamera) BillboardCoordinates(position mgl32.Vec3, size float32) (mgl32.Vec4, mgl32.Vec4) {
	return billboardCorners(c.worldToScreenMatrix, position, size, c.viewDirection, c.lookUpVector)
}

// ScreenPositionSize converts clip-space corners to screen space.
func (c *PointShadowCamera) ScreenPositionSize(topLeft, bottomRight mgl32.Vec4) (mgl32.Vec2, mgl32.Vec2) {
	return screenPositionSize(topLeft, bottomRight)
}

// DistanceTo returns the Euclidean distance from the camera to position.
func (c *PointShadowCamera) DistanceTo(position mgl32.Vec3) float32 {
	return c.cameraPosition.Sub(position).Len()
}

// ScreenToWorldMatrix returns the inverse of projection * view.
func (c *PointShadowCamera) ScreenToWorldMatrix() mgl32.Mat4 {
	return c.screenToWorldMatrix
}

// CameraDirection buckets the XZ part of the view direction.
func (c *PointShadowCamera) CameraDirection() int {
	return compassDirection(mgl32.Vec2{c.viewDirection[0], c.viewDirection[2]})
}

// DepthOffsetAndCurvature returns the depth correction for world and the
// fixed ShadowCurvature.
func (c *PointShadowCamera) DepthOffsetAndCurvature(world mgl32.Mat4) (float32, float32) {
	return depthOffset(c.worldToScreenMatrix, world), ShadowCurvature
}

var _ Camera = (*PointShadowCamera)(nil)
