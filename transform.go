package lantern

import "github.com/go-gl/mathgl/mgl32"

// Transform is the position, rotation and scale of an object in world space.
// Rotation holds one angle per axis in radians.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// TransformPosition returns an unrotated, unscaled transform at position.
func TransformPosition(position mgl32.Vec3) Transform {
	t := NewTransform()
	t.Position = position
	return t
}

// TransformRotation returns a transform at the origin with the given
// per-axis rotation.
func TransformRotation(rotation mgl32.Vec3) Transform {
	t := NewTransform()
	t.Rotation = rotation
	return t
}

// Offset returns a copy of t moved by delta.
func (t Transform) Offset(delta mgl32.Vec3) Transform {
	t.Position = t.Position.Add(delta)
	return t
}

// modelMatrix composes the model matrix for a transform.
//
//	Translate(Position) * RotateX * RotateY * RotateZ * Scale
//
// Applied right to left, so Z rotation acts on object space first.
func modelMatrix(t Transform) mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	rotation := mgl32.HomogRotate3DX(t.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(t.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation[2]))
	scale := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return translation.Mul4(rotation).Mul4(scale)
}
