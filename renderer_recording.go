package lantern

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// RecordedCall is one call received by a RecordingRenderer. Only the fields
// relevant to Op are set.
type RecordedCall struct {
	Op        string
	Face      int
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Color     Color
	Radius    float32
	Hovered   bool
}

// RecordingRenderer records every call instead of drawing. It backs headless
// runs and tests.
type RecordingRenderer struct {
	Size  image.Point
	Calls []RecordedCall

	stale bool
	// rebuilds counts how many times the swapchain was recreated.
	rebuilds int
}

// NewRecordingRenderer creates a renderer reporting the given size.
func NewRecordingRenderer(width, height int) *RecordingRenderer {
	return &RecordingRenderer{Size: image.Pt(width, height)}
}

func (r *RecordingRenderer) record(c RecordedCall) {
	r.Calls = append(r.Calls, c)
}

// Reset forgets all recorded calls.
func (r *RecordingRenderer) Reset() {
	r.Calls = r.Calls[:0]
}

// Ops returns the recorded operation names in order.
func (r *RecordingRenderer) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many calls of op were recorded.
func (r *RecordingRenderer) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Rebuilds returns how many times StartDraw recreated the swapchain.
func (r *RecordingRenderer) Rebuilds() int {
	return r.rebuilds
}

// Resize changes the reported size.
func (r *RecordingRenderer) Resize(width, height int) {
	r.Size = image.Pt(width, height)
}

func (r *RecordingRenderer) StartDraw() {
	if r.stale && r.Size.X > 0 && r.Size.Y > 0 {
		r.stale = false
		r.rebuilds++
	}
	r.record(RecordedCall{Op: "StartDraw"})
}

func (r *RecordingRenderer) StopDraw() {
	r.record(RecordedCall{Op: "StopDraw"})
}

func (r *RecordingRenderer) LightingPass() {
	r.record(RecordedCall{Op: "LightingPass"})
}

func (r *RecordingRenderer) AmbientLight(c Color) {
	r.record(RecordedCall{Op: "AmbientLight", Color: c})
}

func (r *RecordingRenderer) DirectionalLight(direction mgl32.Vec3, c Color) {
	r.record(RecordedCall{Op: "DirectionalLight", Direction: direction, Color: c})
}

func (r *RecordingRenderer) PointLight(_ mgl32.Mat4, position mgl32.Vec3, c Color, radius float32) {
	r.record(RecordedCall{Op: "PointLight", Position: position, Color: c, Radius: radius})
}

func (r *RecordingRenderer) Dimensions() image.Point {
	return r.Size
}

func (r *RecordingRenderer) InvalidateSwapchain() {
	r.stale = true
}

// Valid reports false while the swapchain is stale or the size is empty.
func (r *RecordingRenderer) Valid() bool {
	return !r.stale && r.Size.X > 0 && r.Size.Y > 0
}

func (r *RecordingRenderer) PointShadowFace(face int, camera *PointShadowCamera) {
	r.record(RecordedCall{Op: "PointShadowFace", Face: face, Position: camera.CameraPosition()})
}

func (r *RecordingRenderer) RenderModel(_ Camera, transform Transform) {
	r.record(RecordedCall{Op: "RenderModel", Direction: transform.Rotation})
}

func (r *RecordingRenderer) RenderMarker(_ Camera, position mgl32.Vec3, hovered bool) {
	r.record(RecordedCall{Op: "RenderMarker", Position: position, Hovered: hovered})
}

var (
	_ Renderer       = (*RecordingRenderer)(nil)
	_ ShadowRenderer = (*RecordingRenderer)(nil)
	_ ModelRenderer  = (*RecordingRenderer)(nil)
	_ MarkerRenderer = (*RecordingRenderer)(nil)
)
