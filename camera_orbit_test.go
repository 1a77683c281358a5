package lantern

import (
	"image"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOrbitSoftZoom(t *testing.T) {
	tests := []struct {
		name  string
		delta float32
		want  float32
	}{
		{"closer", -10, 30},
		{"further", 10, 50},
		{"clamped near", -1000, orbitMinZoom},
		{"clamped far", 1000, orbitMaxZoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.SoftZoom(tt.delta)
			c.Update(1)
			if !approxEqual(float64(c.Zoom()), float64(tt.want), epsilon) {
				t.Errorf("zoom = %f, want %f", c.Zoom(), tt.want)
			}
		})
	}
}

func TestOrbitSoftZoomEases(t *testing.T) {
	c := NewOrbitCamera()
	c.SoftZoom(20)
	c.Update(orbitTweenDuration / 2)
	if z := c.Zoom(); z <= orbitDefaultZoom || z >= orbitDefaultZoom+20 {
		t.Errorf("zoom halfway = %f, want strictly between %v and %v", z, orbitDefaultZoom, orbitDefaultZoom+20)
	}
}

func TestOrbitSoftRotate(t *testing.T) {
	c := NewOrbitCamera()
	c.SoftRotate(1)
	c.SoftRotate(0.5)
	c.Update(1)
	if !approxEqual(float64(c.Rotation()), 1.5, epsilon) {
		t.Errorf("rotation = %f, want 1.5", c.Rotation())
	}
}

func TestOrbitGenerateViewProjection(t *testing.T) {
	c := NewOrbitCamera()
	c.SetFocusPoint(mgl32.Vec3{1, 0, -2})
	c.GenerateViewProjection(image.Pt(800, 600))

	if d := c.DistanceTo(c.FocusPoint()); !approxEqual(float64(d), orbitDefaultZoom, epsilon) {
		t.Errorf("distance to focus = %f, want %v", d, orbitDefaultZoom)
	}

	assertIdentity(t, "orbit inverse", c.WorldToScreenMatrix().Mul4(c.ScreenToWorldMatrix()))

	clip := c.WorldToScreenMatrix().Mul4x1(c.FocusPoint().Vec4(1))
	center := clipToScreenSpace(clip)
	if !approxEqual(float64(center[0]), 1, epsilon) || !approxEqual(float64(center[1]), 1, epsilon) {
		t.Errorf("focus point at %v, want screen center (1,1)", center)
	}

	_, projection := c.ViewProjectionMatrices()
	focal := 1 / math.Tan(float64(mgl32.DegToRad(orbitFOV))/2)
	if !approxEqual(float64(projection[0]), focal*600/800, epsilon) {
		t.Errorf("projection x scale = %f, want %f", projection[0], focal*600/800)
	}
}

func TestOrbitCameraDirection(t *testing.T) {
	c := NewOrbitCamera()
	c.GenerateViewProjection(image.Pt(100, 100))
	if got := c.CameraDirection(); got != 4 {
		t.Errorf("direction = %d, want 4", got)
	}

	c.SoftRotate(math.Pi / 2)
	c.Update(1)
	c.GenerateViewProjection(image.Pt(100, 100))
	if got := c.CameraDirection(); got != 2 {
		t.Errorf("rotated direction = %d, want 2", got)
	}
}

func TestOrbitZeroSizeWindow(t *testing.T) {
	c := NewOrbitCamera()
	c.GenerateViewProjection(image.Point{})
	_, projection := c.ViewProjectionMatrices()
	if !approxEqual(float64(projection[0]), float64(projection[5]), epsilon) {
		t.Errorf("projection not square: %f vs %f", projection[0], projection[5])
	}
}

func TestOrbitCurvatureIsZero(t *testing.T) {
	c := NewOrbitCamera()
	c.GenerateViewProjection(image.Pt(640, 480))
	if _, curvature := c.DepthOffsetAndCurvature(mgl32.Ident4()); curvature != 0 {
		t.Errorf("curvature = %f, want 0", curvature)
	}
}

func TestOrbitBillboardCentered(t *testing.T) {
	c := NewOrbitCamera()
	c.GenerateViewProjection(image.Pt(800, 600))
	tl, br := c.BillboardCoordinates(mgl32.Vec3{}, 1)
	pos, size := c.ScreenPositionSize(tl, br)
	mid := pos.Add(size.Mul(0.5))
	if !approxEqual(float64(mid[0]), 1, epsilon) || !approxEqual(float64(mid[1]), 1, epsilon) {
		t.Errorf("billboard center = %v, want (1,1)", mid)
	}
	if size[0] == 0 || size[1] == 0 {
		t.Errorf("size = %v, want a non-empty square", size)
	}
}
