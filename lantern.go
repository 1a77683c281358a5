package lantern

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/phanxgames/lantern/ui"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is full-intensity white light.
var ColorWhite = Color{1, 1, 1, 1}

// RGB8 builds an opaque Color from 8-bit channels.
func RGB8(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// Scale returns c with the color channels multiplied by f. Alpha is kept.
func (c Color) Scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

// RGBA returns the premultiplied 8-bit form of c.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PointLight is an omnidirectional light that casts cube-map shadows.
type PointLight struct {
	Position mgl32.Vec3
	Color    Color
	Radius   float32
}

// World provides the lights and effect sources drawn each frame.
type World interface {
	PointLights() []PointLight
	EffectSources() []EffectSource
	// EffectSourceEditor returns an editor for the effect source at index in
	// the last EffectSources result.
	EffectSourceEditor(index int) (ui.PrototypeWindow, bool)
}

// StaticWorld is a fixed World, useful for demos and tests. Its effect
// sources are edited in place.
type StaticWorld struct {
	Lights  []PointLight
	Effects []EffectSource
}

// PointLights returns the world's lights.
func (w *StaticWorld) PointLights() []PointLight {
	return w.Lights
}

// EffectSources returns the world's effect sources.
func (w *StaticWorld) EffectSources() []EffectSource {
	return w.Effects
}

// EffectSourceEditor returns the effect source itself, which edits its own
// fields.
func (w *StaticWorld) EffectSourceEditor(index int) (ui.PrototypeWindow, bool) {
	if index < 0 || index >= len(w.Effects) {
		return nil, false
	}
	return &w.Effects[index], true
}

var _ World = (*StaticWorld)(nil)
