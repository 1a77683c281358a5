package lantern

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/phanxgames/lantern/layout"
	"github.com/phanxgames/lantern/ui"
)

func dragTo(t *testing.T, w ui.Window, index int, fraction float32) ui.ChangeEvent {
	t.Helper()
	element, area := w.Element(index)
	d, ok := element.(ui.Draggable)
	if !ok {
		t.Fatalf("element %d is %T, want a slider", index, element)
	}
	return d.Drag(area, area.Position.X+fraction*area.Size.Width, area.Position.Y)
}

func TestEffectSourceWindowEditsInPlace(t *testing.T) {
	e := &EffectSource{Name: "smoke", Position: mgl32.Vec3{1, 2, 3}}
	w := e.ToWindow(ui.NewWindowCache(), ui.DefaultInterfaceSettings(), layout.Size{Width: 800, Height: 600})

	if got := dragTo(t, w, 2, 1); got != ui.ChangeRerenderWindow {
		t.Errorf("event = %v, want %v", got, ui.ChangeRerenderWindow)
	}
	if e.Position != (mgl32.Vec3{effectEditRange, 2, 3}) {
		t.Errorf("position = %v, want x at the upper bound", e.Position)
	}

	dragTo(t, w, 8, 0.5)
	if e.EffectType != 31 {
		t.Errorf("effect type = %d, want 31", e.EffectType)
	}

	dragTo(t, w, 10, 0.25)
	if !approxEqual(float64(e.EmitSpeed), 25, epsilon) {
		t.Errorf("emit speed = %f, want 25", e.EmitSpeed)
	}
}

func TestEffectSourceWindowClass(t *testing.T) {
	e := &EffectSource{Name: "fire"}
	class, ok := e.WindowClass()
	if !ok || class != EffectSourceClass {
		t.Errorf("WindowClass = (%q, %v)", class, ok)
	}

	in := ui.NewInterface(nil, nil, nil, layout.Size{Width: 800, Height: 600})
	first := in.Open(e)
	if first.Title() != "Effect Source" {
		t.Errorf("title = %q", first.Title())
	}
	if in.Open(e) != first || in.Len() != 1 {
		t.Error("second editor opened for the same class")
	}
}

func TestEffectSourceOffset(t *testing.T) {
	e := EffectSource{Position: mgl32.Vec3{1, 1, 1}}
	e.Offset(mgl32.Vec3{0, 0, -1})
	if e.Position != (mgl32.Vec3{1, 1, 0}) {
		t.Errorf("position = %v", e.Position)
	}
}

func TestEffectSourceRenderMarker(t *testing.T) {
	r := NewRecordingRenderer(10, 10)
	e := EffectSource{Position: mgl32.Vec3{4, 5, 6}}
	e.RenderMarker(r, NewOrbitCamera(), true)
	if len(r.Calls) != 1 || r.Calls[0].Position != e.Position || !r.Calls[0].Hovered {
		t.Errorf("calls = %+v", r.Calls)
	}
}
