package lantern

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// modelRotationRate is how many pixels of left drag turn the model by
	// one radian.
	modelRotationRate = 50
	// cameraRotationRate is how many pixels of right drag turn the camera by
	// one radian, in the opposite direction.
	cameraRotationRate = -50
	// zoomRate is the zoom change per wheel notch, inverted so scrolling up
	// moves closer.
	zoomRate = -5
)

// pointerState is the mouse as seen during one Update.
type pointerState struct {
	x, y   float32
	left   bool
	right  bool
	wheelY float32
}

// readPointer samples the mouse from ebiten.
func readPointer() pointerState {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return pointerState{
		x:      float32(mx),
		y:      float32(my),
		left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		wheelY: float32(wy),
	}
}

// handlePointer routes one frame of mouse input. Windows get the pointer
// first; whatever they do not consume drives the model and the camera.
func (v *Viewer) handlePointer(p pointerState) {
	last := v.pointer
	v.pointer = p
	dx := p.x - last.x

	consumed := v.ui.HandlePointer(p.x, p.y, p.left)
	v.hovered = -1
	if !consumed {
		v.hovered = v.effectAt(p.x, p.y)
	}

	if p.left && !last.left && !consumed && v.hovered >= 0 {
		if editor, ok := v.world.EffectSourceEditor(v.hovered); ok {
			v.ui.Open(editor)
			v.leftOnMarker = true
		}
	}
	if !p.left {
		v.leftOnMarker = false
	}

	if !consumed && !v.leftOnMarker && p.left && last.left && dx != 0 {
		v.model.Rotation = v.model.Rotation.Add(mgl32.Vec3{0, dx / modelRotationRate, 0})
	}
	if consumed {
		return
	}
	if p.right && last.right && dx != 0 {
		v.camera.SoftRotate(dx / cameraRotationRate)
	}
	if p.wheelY != 0 {
		v.camera.SoftZoom(p.wheelY * zoomRate)
	}
}

// handleKeys closes the top window on Escape and toggles the FPS overlay on
// F3.
func (v *Viewer) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		v.ui.CloseTop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		v.showFPS = !v.showFPS
	}
}
