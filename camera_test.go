package lantern

import (
	"fmt"
	"image"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-3

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertIdentity(t *testing.T, name string, m mgl32.Mat4) {
	t.Helper()
	ident := mgl32.Ident4()
	for i := range m {
		if !approxEqual(float64(m[i]), float64(ident[i]), epsilon) {
			t.Errorf("%s: element %d = %f, want %f", name, i, m[i], ident[i])
		}
	}
}

func newShadowCamera(position mgl32.Vec3) *PointShadowCamera {
	c := NewPointShadowCamera()
	c.SetCameraPosition(position)
	c.GenerateViewProjection(image.Point{})
	return c
}

func TestPointShadowInverseIsIdentity(t *testing.T) {
	c := newShadowCamera(mgl32.Vec3{1, 2, 3})
	for face := 0; face < ShadowFaces; face++ {
		c.ChangeDirection(face)
		m := c.WorldToScreenMatrix().Mul4(c.ScreenToWorldMatrix())
		assertIdentity(t, fmt.Sprintf("face %d", face), m)
	}
}

func TestPointShadowTransformMatrix(t *testing.T) {
	c := newShadowCamera(mgl32.Vec3{})
	got := c.TransformMatrix(TransformPosition(mgl32.Vec3{1, 2, 3})).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	want := mgl32.Vec4{1, 2, 3, 1}
	for i := range want {
		if !approxEqual(float64(got[i]), float64(want[i]), epsilon) {
			t.Fatalf("origin maps to %v, want %v", got, want)
		}
	}
}

func TestPointShadowBillboardBasisOrthonormal(t *testing.T) {
	c := newShadowCamera(mgl32.Vec3{})
	position := mgl32.Vec3{5, 0, 3}
	for face := 0; face < ShadowFaces; face++ {
		c.ChangeDirection(face)
		direction, up := c.billboardFacing(position)
		right, trueUp := billboardBasis(direction, up)

		if !approxEqual(float64(right.Len()), 1, epsilon) || !approxEqual(float64(trueUp.Len()), 1, epsilon) {
			t.Errorf("face %d: |right| = %f, |up| = %f, want 1", face, right.Len(), trueUp.Len())
		}
		if !approxEqual(float64(right.Dot(trueUp)), 0, epsilon) {
			t.Errorf("face %d: right.up = %f, want 0", face, right.Dot(trueUp))
		}
		if !approxEqual(float64(right.Dot(direction)), 0, epsilon) {
			t.Errorf("face %d: right.direction = %f, want 0", face, right.Dot(direction))
		}
	}
}

func TestPointShadowBillboardLookingDown(t *testing.T) {
	c := newShadowCamera(mgl32.Vec3{0, 10, 0})
	c.ChangeDirection(3)
	direction, up := c.billboardFacing(mgl32.Vec3{4, 0, 0})
	if direction != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("direction = %v, want horizontal towards the quad", direction)
	}
	if up != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("up = %v, want (0,-1,0)", up)
	}

	m := c.BillboardMatrix(mgl32.Vec3{4, 0, 0}, mgl32.Vec3{}, mgl32.Vec2{1, 1})
	center := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !approxEqual(float64(center[0]), 4, epsilon) || !approxEqual(float64(center[1]), 0, epsilon) {
		t.Errorf("billboard center = %v, want (4,0,0)", center)
	}
}

func TestPointShadowDistanceTo(t *testing.T) {
	c := newShadowCamera(mgl32.Vec3{})
	if d := c.DistanceTo(mgl32.Vec3{3, 4, 0}); !approxEqual(float64(d), 5, epsilon) {
		t.Errorf("DistanceTo = %f, want 5", d)
	}
}

func TestClipToScreenSpace(t *testing.T) {
	got := clipToScreenSpace(mgl32.Vec4{2, 4, 0, 2})
	if got != (mgl32.Vec2{2, 3}) {
		t.Errorf("clipToScreenSpace = %v, want (2,3)", got)
	}
}

func TestPointShadowScreenPositionSize(t *testing.T) {
	c := NewPointShadowCamera()
	pos, size := c.ScreenPositionSize(mgl32.Vec4{-1, 1, 0, 1}, mgl32.Vec4{1, -1, 0, 1})
	if pos != (mgl32.Vec2{0, 2}) {
		t.Errorf("position = %v, want (0,2)", pos)
	}
	if size != (mgl32.Vec2{2, -2}) {
		t.Errorf("size = %v, want (2,-2)", size)
	}
}

func TestPointShadowInvalidFacePanics(t *testing.T) {
	for _, face := range []int{-1, 6, 7} {
		t.Run(fmt.Sprint(face), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("ChangeDirection(%d) did not panic", face)
				}
			}()
			NewPointShadowCamera().ChangeDirection(face)
		})
	}
}

func TestPointShadowChangeDirectionBeforeProjection(t *testing.T) {
	c := NewPointShadowCamera()
	c.ChangeDirection(2)
	if c.ScreenToWorldMatrix() != (mgl32.Mat4{}) {
		t.Error("inverse computed before the first projection")
	}
}

func TestPointShadowDepthOffset(t *testing.T) {
	c := newShadowCamera(mgl32.Vec3{})

	c.ChangeDirection(0)
	offset, curvature := c.DepthOffsetAndCurvature(mgl32.Ident4())
	if !approxEqual(float64(offset), 0, epsilon) {
		t.Errorf("face 0 offset = %f, want 0", offset)
	}
	if curvature != ShadowCurvature {
		t.Errorf("curvature = %f, want %f", curvature, ShadowCurvature)
	}

	// Looking up, the sampled top lies two units behind the camera and the
	// rebuilt top two units in front.
	c.ChangeDirection(2)
	offset, _ = c.DepthOffsetAndCurvature(mgl32.Ident4())
	p22 := (shadowFarPlane + shadowNearPlane) / (shadowNearPlane - shadowFarPlane)
	want := -4 * p22
	if !approxEqual(float64(offset), want, epsilon) {
		t.Errorf("face 2 offset = %f, want %f", offset, want)
	}
}

func TestCompassDirection(t *testing.T) {
	tests := []struct {
		name string
		v    mgl32.Vec2
		want int
	}{
		{"+Z", mgl32.Vec2{0, 1}, 0},
		{"-X", mgl32.Vec2{-1, 0}, 2},
		{"-Z", mgl32.Vec2{0, -1}, 4},
		{"+X", mgl32.Vec2{1, 0}, 6},
		{"zero", mgl32.Vec2{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compassDirection(tt.v); got != tt.want {
				t.Errorf("compassDirection(%v) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestPointShadowCameraDirection(t *testing.T) {
	c := newShadowCamera(mgl32.Vec3{})
	c.ChangeDirection(0)
	if got := c.CameraDirection(); got != 6 {
		t.Errorf("+X face direction = %d, want 6", got)
	}
	c.ChangeDirection(5)
	if got := c.CameraDirection(); got != 4 {
		t.Errorf("-Z face direction = %d, want 4", got)
	}
}

func TestInvertSingularPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("invertViewProjection of zero matrix did not panic")
		}
	}()
	invertViewProjection(mgl32.Mat4{})
}
