package lantern

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/lantern/layout"
	"github.com/phanxgames/lantern/ui"
)

// DefaultShadowSize is the edge length of a shadow map face in pixels.
const DefaultShadowSize = 512

// Viewer drives a Renderer once per frame: it handles input, animates the
// orbit camera, renders shadow faces for every point light, accumulates
// lights and draws the editor windows on top. It implements ebiten.Game.
type Viewer struct {
	// OnUpdate, if set, runs at the end of every Update with the frame time
	// in seconds.
	OnUpdate func(dt float64)

	renderer     Renderer
	world        World
	camera       *OrbitCamera
	shadowCamera *PointShadowCamera
	ui           *ui.Interface

	model      Transform
	ambient    Color
	sun        DirectionalLight
	shadowSize image.Point

	pointer      pointerState
	injectQueue  []pointerState
	testRunner   *TestRunner
	hovered      int
	leftOnMarker bool

	fps     frameCounter
	fpsLast int
	showFPS bool
	size    image.Point
}

// NewViewer creates a viewer drawing world with renderer. in may be nil, in
// which case an interface with default settings is created.
func NewViewer(renderer Renderer, world World, in *ui.Interface) *Viewer {
	size := renderer.Dimensions()
	if in == nil {
		in = ui.NewInterface(nil, nil, nil, layout.Size{Width: float32(size.X), Height: float32(size.Y)})
	}
	return &Viewer{
		renderer:     renderer,
		world:        world,
		camera:       NewOrbitCamera(),
		shadowCamera: NewPointShadowCamera(),
		ui:           in,
		model:        NewTransform(),
		ambient:      RGB8(5, 5, 5),
		sun: DirectionalLight{
			Direction: mgl32.Vec3{0, -1, -0.7},
			Color:     ColorWhite,
		},
		shadowSize: image.Pt(DefaultShadowSize, DefaultShadowSize),
		hovered:    -1,
		size:       size,
	}
}

// Camera returns the orbit camera the frame is drawn with.
func (v *Viewer) Camera() *OrbitCamera {
	return v.camera
}

// Interface returns the window manager.
func (v *Viewer) Interface() *ui.Interface {
	return v.ui
}

// Model returns the transform of the viewed model.
func (v *Viewer) Model() Transform {
	return v.model
}

// SetModel replaces the transform of the viewed model.
func (v *Viewer) SetModel(t Transform) {
	v.model = t
}

// SetAmbient sets the ambient light color.
func (v *Viewer) SetAmbient(c Color) {
	v.ambient = c
}

// SetSun sets the directional light.
func (v *Viewer) SetSun(l DirectionalLight) {
	v.sun = l
}

// SetShadowSize sets the shadow map face size passed to the shadow camera.
func (v *Viewer) SetShadowSize(size int) {
	if size <= 0 {
		size = DefaultShadowSize
	}
	v.shadowSize = image.Pt(size, size)
}

// SetShowFPS toggles the FPS overlay.
func (v *Viewer) SetShowFPS(show bool) {
	v.showFPS = show
}

// Hovered returns the index of the effect source under the pointer, or -1.
func (v *Viewer) Hovered() int {
	return v.hovered
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	if v.testRunner != nil {
		v.testRunner.step(v)
	}
	if !v.processInjectedInput() {
		v.handlePointer(readPointer())
	}
	v.handleKeys()
	v.step(1 / float64(ebiten.TPS()))
	return nil
}

// step advances animations by dt seconds.
func (v *Viewer) step(dt float64) {
	v.camera.Update(dt)
	if fps, ok := v.fps.tick(dt); ok {
		v.fpsLast = fps
		debugf("FPS: %d", fps)
	}
	if v.OnUpdate != nil {
		v.OnUpdate(dt)
	}
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if !v.RenderFrame() {
		return
	}
	if er, ok := v.renderer.(*EbitenRenderer); ok {
		er.Present(screen)
	}
	v.ui.Render(NewEbitenPainter(screen))
	if v.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %d", v.fpsLast))
	}
}

// Layout implements ebiten.Game. A changed outside size resizes the
// renderer and the interface.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.size.X || outsideHeight != v.size.Y {
		v.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Resize invalidates the renderer's swapchain and moves windows back inside
// the new size.
func (v *Viewer) Resize(width, height int) {
	v.size = image.Pt(width, height)
	if rs, ok := v.renderer.(interface{ Resize(width, height int) }); ok {
		rs.Resize(width, height)
	}
	v.renderer.InvalidateSwapchain()
	v.ui.Resize(layout.Size{Width: float32(width), Height: float32(height)})
	debugf("resized to %dx%d", width, height)
}

// RenderFrame drives the renderer through one frame. It reports false when
// the renderer could not draw, in which case the camera matrices were left
// untouched.
func (v *Viewer) RenderFrame() bool {
	r := v.renderer
	r.StartDraw()
	if !r.Valid() {
		return false
	}

	v.camera.GenerateViewProjection(r.Dimensions())
	lights := v.world.PointLights()

	if sr, ok := r.(ShadowRenderer); ok {
		for _, l := range lights {
			v.shadowCamera.SetCameraPosition(l.Position)
			for face := 0; face < ShadowFaces; face++ {
				v.shadowCamera.ChangeDirection(face)
				v.shadowCamera.GenerateViewProjection(v.shadowSize)
				sr.PointShadowFace(face, v.shadowCamera)
			}
		}
	}

	if mr, ok := r.(ModelRenderer); ok {
		mr.RenderModel(v.camera, v.model)
	}

	r.LightingPass()
	r.AmbientLight(v.ambient)
	r.DirectionalLight(v.sun.Direction, v.sun.Color)
	screenToWorld := v.camera.ScreenToWorldMatrix()
	for _, l := range lights {
		r.PointLight(screenToWorld, l.Position, l.Color, l.Radius)
	}

	if mr, ok := r.(MarkerRenderer); ok {
		effects := v.world.EffectSources()
		for i := range effects {
			effects[i].RenderMarker(mr, v.camera, i == v.hovered)
		}
	}

	r.StopDraw()
	return true
}

// effectAt returns the index of the topmost effect source marker at pixel
// (x, y), or -1.
func (v *Viewer) effectAt(x, y float32) int {
	effects := v.world.EffectSources()
	size := v.renderer.Dimensions()
	for i := len(effects) - 1; i >= 0; i-- {
		mx, my, mw, mh, ok := markerBounds(v.camera, effects[i].Position, size)
		if !ok {
			continue
		}
		if x >= mx && x <= mx+mw && y >= my && y <= my+mh {
			return i
		}
	}
	return -1
}

var _ ebiten.Game = (*Viewer)(nil)
