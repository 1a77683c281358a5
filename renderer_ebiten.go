package lantern

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// maxCircleRadius caps the size of generated light textures; larger
	// lights scale the capped texture up.
	maxCircleRadius = 256
	// probeStep is the NDC distance used to measure how many world units a
	// pixel covers at a light's depth.
	probeStep = 0.01
	// sunStrength scales the directional light's contribution.
	sunStrength = 0.25
)

var (
	modelColor       = color.RGBA{R: 200, G: 200, B: 190, A: 255}
	markerColor      = color.RGBA{R: 255, G: 180, B: 60, A: 255}
	markerHoverColor = color.RGBA{R: 255, G: 240, B: 120, A: 255}
	cubeCorners      = [8]mgl32.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1}, {-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}
	cubeEdges        = [12][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
)

// EbitenRenderer draws frames into an offscreen ebiten image. The model is
// drawn as a wireframe, lights accumulate additively as feathered circles and
// shadow faces are only counted.
type EbitenRenderer struct {
	size   image.Point
	target *ebiten.Image
	pixel  *ebiten.Image
	stale  bool

	lighting    bool
	shadowFaces int
	pointLights int
	frames      int

	circleCache map[int]*ebiten.Image
	imgOp       ebiten.DrawImageOptions
}

// NewEbitenRenderer creates a renderer for a width x height target. The
// target itself is allocated on the first StartDraw.
func NewEbitenRenderer(width, height int) *EbitenRenderer {
	return &EbitenRenderer{size: image.Pt(width, height), stale: true}
}

// Resize changes the target size. The target is recreated on the next
// StartDraw.
func (r *EbitenRenderer) Resize(width, height int) {
	if r.size.X == width && r.size.Y == height {
		return
	}
	r.size = image.Pt(width, height)
	r.InvalidateSwapchain()
}

func (r *EbitenRenderer) InvalidateSwapchain() {
	r.stale = true
}

func (r *EbitenRenderer) Valid() bool {
	return !r.stale && r.target != nil
}

func (r *EbitenRenderer) Dimensions() image.Point {
	return r.size
}

// Target returns the image the last frame was drawn into.
func (r *EbitenRenderer) Target() *ebiten.Image {
	return r.target
}

func (r *EbitenRenderer) StartDraw() {
	if r.stale && r.size.X > 0 && r.size.Y > 0 {
		if r.target != nil {
			r.target.Deallocate()
		}
		r.target = ebiten.NewImage(r.size.X, r.size.Y)
		r.stale = false
	}
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}
	if r.target != nil {
		r.target.Clear()
	}
	r.lighting = false
	r.shadowFaces = 0
	r.pointLights = 0
}

func (r *EbitenRenderer) StopDraw() {
	r.frames++
	debugf("frame %d: %d shadow faces | %d point lights", r.frames, r.shadowFaces, r.pointLights)
}

// PointShadowFace counts the face; shadow maps are not drawn by this
// backend.
func (r *EbitenRenderer) PointShadowFace(_ int, _ *PointShadowCamera) {
	r.shadowFaces++
}

func (r *EbitenRenderer) RenderModel(camera Camera, transform Transform) {
	if r.target == nil {
		return
	}
	view, projection := camera.ViewProjectionMatrices()
	m := projection.Mul4(view).Mul4(camera.TransformMatrix(transform))
	var points [8][2]float32
	for i, corner := range cubeCorners {
		x, y, ok := projectToPixels(m, corner, r.size)
		if !ok {
			return
		}
		points[i] = [2]float32{x, y}
	}
	for _, e := range cubeEdges {
		a, b := points[e[0]], points[e[1]]
		vector.StrokeLine(r.target, a[0], a[1], b[0], b[1], 1, modelColor, true)
	}
}

func (r *EbitenRenderer) RenderMarker(camera Camera, position mgl32.Vec3, hovered bool) {
	if r.target == nil {
		return
	}
	x, y, w, h, ok := markerBounds(camera, position, r.size)
	if !ok {
		return
	}
	c := markerColor
	if hovered {
		c = markerHoverColor
	}
	vector.DrawFilledRect(r.target, x, y, w, h, c, false)
}

// LightingPass keeps the geometry at a quarter of its brightness; lights add
// on top of it.
func (r *EbitenRenderer) LightingPass() {
	r.lighting = true
	if r.target == nil {
		return
	}
	op := &r.imgOp
	op.GeoM.Reset()
	op.GeoM.Scale(float64(r.size.X), float64(r.size.Y))
	op.ColorScale.Reset()
	op.ColorScale.Scale(0, 0, 0, 0.75)
	op.Blend = ebiten.BlendSourceOver
	r.target.DrawImage(r.pixel, op)
}

func (r *EbitenRenderer) AmbientLight(c Color) {
	r.fill(c)
}

func (r *EbitenRenderer) DirectionalLight(direction mgl32.Vec3, c Color) {
	if direction.Len() == 0 {
		return
	}
	// Light pointing straight down contributes the most.
	facing := -direction.Normalize()[1]
	if facing <= 0 {
		return
	}
	r.fill(c.Scale(float64(facing) * sunStrength))
}

// fill adds c over the whole target.
func (r *EbitenRenderer) fill(c Color) {
	if r.target == nil {
		return
	}
	op := &r.imgOp
	op.GeoM.Reset()
	op.GeoM.Scale(float64(r.size.X), float64(r.size.Y))
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.Blend = ebiten.BlendLighter
	r.target.DrawImage(r.pixel, op)
}

func (r *EbitenRenderer) PointLight(screenToWorld mgl32.Mat4, position mgl32.Vec3, c Color, radius float32) {
	if r.target == nil || radius <= 0 {
		return
	}
	worldToScreen := screenToWorld.Inv()
	clip := worldToScreen.Mul4x1(position.Vec4(1))
	if clip[3] <= 0 {
		return
	}

	// Step a little in NDC and unproject to find the world size of a pixel
	// at the light's depth.
	ndc := clip.Vec3().Mul(1 / clip[3])
	probe := screenToWorld.Mul4x1(mgl32.Vec4{ndc[0], ndc[1] + probeStep, ndc[2], 1})
	if probe[3] == 0 {
		return
	}
	worldPerStep := probe.Vec3().Mul(1 / probe[3]).Sub(position).Len()
	if worldPerStep == 0 {
		return
	}
	pixelRadius := float64(radius / worldPerStep * probeStep * float32(r.size.Y) / 2)
	if pixelRadius < 1 {
		return
	}

	s := clipToScreenSpace(clip)
	cx := float64(s[0]) / 2 * float64(r.size.X)
	cy := float64(2-s[1]) / 2 * float64(r.size.Y)

	circle := r.circle(math.Min(pixelRadius, maxCircleRadius))
	src := float64(circle.Bounds().Dx())
	op := &r.imgOp
	op.GeoM.Reset()
	op.GeoM.Scale(2*pixelRadius/src, 2*pixelRadius/src)
	op.GeoM.Translate(cx-pixelRadius, cy-pixelRadius)
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.Blend = ebiten.BlendLighter
	r.target.DrawImage(circle, op)
	r.pointLights++
}

// Present draws the finished frame onto screen.
func (r *EbitenRenderer) Present(screen *ebiten.Image) {
	if r.target == nil {
		return
	}
	screen.DrawImage(r.target, nil)
}

// Dispose releases the target and all cached light textures.
func (r *EbitenRenderer) Dispose() {
	if r.target != nil {
		r.target.Deallocate()
		r.target = nil
	}
	if r.pixel != nil {
		r.pixel.Deallocate()
		r.pixel = nil
	}
	for _, img := range r.circleCache {
		img.Deallocate()
	}
	r.circleCache = nil
	r.stale = true
}

// circle returns a cached light texture for the given radius, quantized to
// whole pixels.
func (r *EbitenRenderer) circle(radius float64) *ebiten.Image {
	key := int(math.Ceil(radius))
	if key < 1 {
		key = 1
	}
	if r.circleCache == nil {
		r.circleCache = make(map[int]*ebiten.Image)
	}
	if img, ok := r.circleCache[key]; ok {
		return img
	}
	img := ebiten.NewImage(2*key, 2*key)
	img.WritePixels(circlePixels(key))
	r.circleCache[key] = img
	return img
}

// circlePixels returns premultiplied RGBA pixels of a white circle of the
// given radius with smoothstep falloff from the center.
func circlePixels(radius int) []byte {
	size := 2 * radius
	pix := make([]byte, size*size*4)
	rf := float64(radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - rf
			dy := float64(y) + 0.5 - rf
			dist := math.Sqrt(dx*dx+dy*dy) / rf

			var alpha float64
			if dist < 1 {
				t := 1 - dist
				alpha = t * t * (3 - 2*t)
			}

			a := uint8(alpha * 255)
			off := (y*size + x) * 4
			pix[off+0] = a
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	return pix
}

var (
	_ Renderer       = (*EbitenRenderer)(nil)
	_ ShadowRenderer = (*EbitenRenderer)(nil)
	_ ModelRenderer  = (*EbitenRenderer)(nil)
	_ MarkerRenderer = (*EbitenRenderer)(nil)
)
