package lantern

import "testing"

// drain feeds queued events one frame at a time.
func drain(v *Viewer) {
	for v.processInjectedInput() {
		v.step(1.0 / 60)
	}
}

func TestInjectDragRotatesModel(t *testing.T) {
	v, _ := newTestViewer(&StaticWorld{})
	v.InjectDrag(100, 100, 200, 100, 5, MouseButtonLeft)
	if v.Pending() != 6 {
		t.Errorf("pending = %d, want 6", v.Pending())
	}
	drain(v)

	if !approxEqual(float64(v.Model().Rotation[1]), 2, epsilon) {
		t.Errorf("model yaw = %f, want 2", v.Model().Rotation[1])
	}
}

func TestInjectRightDragRotatesCamera(t *testing.T) {
	v, _ := newTestViewer(&StaticWorld{})
	v.InjectDrag(100, 100, 150, 100, 2, MouseButtonRight)
	drain(v)
	v.step(1)

	if !approxEqual(float64(v.Camera().Rotation()), -1, epsilon) {
		t.Errorf("camera yaw = %f, want -1", v.Camera().Rotation())
	}
}

func TestInjectScroll(t *testing.T) {
	v, _ := newTestViewer(&StaticWorld{})
	v.InjectScroll(10, 10, -2)
	drain(v)
	v.step(1)

	if !approxEqual(float64(v.Camera().Zoom()), orbitDefaultZoom+10, epsilon) {
		t.Errorf("zoom = %f, want %v", v.Camera().Zoom(), orbitDefaultZoom+10)
	}
}

func TestInjectClickOpensEditor(t *testing.T) {
	v, _ := newTestViewer(testWorld())
	v.RenderFrame()
	v.InjectClick(400, 300)
	drain(v)

	if v.Interface().Len() != 1 {
		t.Errorf("windows = %d, want 1", v.Interface().Len())
	}
}
