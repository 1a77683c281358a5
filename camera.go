package lantern

import (
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera derives view and projection matrices from its own state and converts
// between world, clip and screen space. The renderer works against this
// interface without knowing which variant it holds.
type Camera interface {
	// GenerateViewProjection rebuilds all matrices for the coming frame.
	GenerateViewProjection(windowSize image.Point)
	// ViewProjectionMatrices returns the matrices of the last generation.
	ViewProjectionMatrices() (view, projection mgl32.Mat4)
	TransformMatrix(t Transform) mgl32.Mat4
	// BillboardMatrix orients a quad at position so it faces the camera.
	BillboardMatrix(position, origin mgl32.Vec3, size mgl32.Vec2) mgl32.Mat4
	// BillboardCoordinates returns the clip-space top-left and bottom-right
	// corners of a camera-facing square of half-extent size.
	BillboardCoordinates(position mgl32.Vec3, size float32) (topLeft, bottomRight mgl32.Vec4)
	// ScreenPositionSize converts clip-space corners to a screen position and
	// size. Screen space spans [0,2] on both axes.
	ScreenPositionSize(topLeft, bottomRight mgl32.Vec4) (position, size mgl32.Vec2)
	DistanceTo(position mgl32.Vec3) float32
	ScreenToWorldMatrix() mgl32.Mat4
	// CameraDirection returns the compass index (0-7) the camera faces.
	CameraDirection() int
	// DepthOffsetAndCurvature returns the depth correction for height
	// displaced geometry drawn with the given world matrix, and the world
	// curvature to apply.
	DepthOffsetAndCurvature(world mgl32.Mat4) (depthOffset, curvature float32)
}

// compassDirection buckets a direction on the XZ plane into one of eight
// compass indices. +Z maps to 0, -X to 2, -Z to 4 and +X to 6.
func compassDirection(v mgl32.Vec2) int {
	angle := math.Atan2(float64(v[0]), float64(v[1])) * (180 / math.Pi)
	k := int((angle + 360 - 22.5) / 45)
	return ^k & 7
}

// invertViewProjection inverts a combined view-projection matrix. A singular
// matrix means the camera state is corrupt, which is a programming error.
func invertViewProjection(m mgl32.Mat4) mgl32.Mat4 {
	det := m.Det()
	if det == 0 || math.IsNaN(float64(det)) || math.IsInf(float64(det), 0) {
		panic(fmt.Sprintf("lantern: world-to-screen matrix is not invertible (det=%v)", det))
	}
	return m.Inv()
}

// clipToScreenSpace divides by w and shifts by one on each axis, mapping the
// visible range to [0,2].
func clipToScreenSpace(clip mgl32.Vec4) mgl32.Vec2 {
	return mgl32.Vec2{
		clip[0]/clip[3] + 1,
		clip[1]/clip[3] + 1,
	}
}

// screenPositionSize is shared by all cameras.
func screenPositionSize(topLeft, bottomRight mgl32.Vec4) (mgl32.Vec2, mgl32.Vec2) {
	tl := clipToScreenSpace(topLeft)
	br := clipToScreenSpace(bottomRight)
	return tl, br.Sub(tl)
}

// billboardBasis builds the orthonormal basis of a quad facing along
// direction with the given up hint.
func billboardBasis(direction, up mgl32.Vec3) (right, trueUp mgl32.Vec3) {
	right = up.Cross(direction).Normalize()
	trueUp = direction.Cross(right).Normalize()
	return right, trueUp
}

// billboardMatrix composes
//
//	Translate(position) * (Basis * Translate(origin)) * Scale(size.x, size.y, 1)
func billboardMatrix(position, origin mgl32.Vec3, size mgl32.Vec2, direction, up mgl32.Vec3) mgl32.Mat4 {
	right, trueUp := billboardBasis(direction, up)
	rotation := mgl32.Mat4FromCols(
		right.Vec4(0),
		trueUp.Vec4(0),
		direction.Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	)
	translation := mgl32.Translate3D(position[0], position[1], position[2])
	originOffset := mgl32.Translate3D(origin[0], origin[1], origin[2])
	scale := mgl32.Scale3D(size[0], size[1], 1)
	return translation.Mul4(rotation.Mul4(originOffset)).Mul4(scale)
}

// billboardCorners returns the clip-space top-left and bottom-right corners
// of a square around position in the plane spanned by the camera basis.
func billboardCorners(worldToScreen mgl32.Mat4, position mgl32.Vec3, size float32, direction, up mgl32.Vec3) (mgl32.Vec4, mgl32.Vec4) {
	right, trueUp := billboardBasis(direction, up)
	topLeft := position.Add(trueUp.Sub(right).Mul(size))
	bottomRight := position.Add(right.Sub(trueUp).Mul(size))
	return worldToScreen.Mul4x1(topLeft.Vec4(1)), worldToScreen.Mul4x1(bottomRight.Vec4(1))
}

// depthOffset samples a foot point and a point two units up in local space,
// rebuilds the top point at the undistorted length straight along +Y from the
// foot and returns the clip depth difference between the two tops.
func depthOffset(worldToScreen, world mgl32.Mat4) float32 {
	foot := world.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	top := world.Mul4x1(mgl32.Vec4{0, -2, 0, 1})
	visualLength := foot.Sub(top).Len()
	visualTop := foot.Add(mgl32.Vec4{0, visualLength, 0, 0})

	topDepth := worldToScreen.Mul4x1(top)[2]
	visualTopDepth := worldToScreen.Mul4x1(visualTop)[2]
	return visualTopDepth - topDepth
}
