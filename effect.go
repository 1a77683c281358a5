package lantern

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/phanxgames/lantern/layout"
	"github.com/phanxgames/lantern/ui"
)

// EffectSource is a point in the world that spawns a particle effect.
type EffectSource struct {
	Name       string
	Position   mgl32.Vec3
	EffectType int
	EmitSpeed  float32
}

// EffectSourceClass is the window class of effect source editors.
const EffectSourceClass = "effect_source"

const (
	effectTypeCount = 64
	maxEmitSpeed    = 100
	// effectEditRange is how far the position sliders reach from the origin.
	effectEditRange = 500
)

// Offset moves the source by delta.
func (e *EffectSource) Offset(delta mgl32.Vec3) {
	e.Position = e.Position.Add(delta)
}

// MarkerRenderer draws editor markers for world objects.
type MarkerRenderer interface {
	RenderMarker(camera Camera, position mgl32.Vec3, hovered bool)
}

// RenderMarker draws the source's marker.
func (e *EffectSource) RenderMarker(r MarkerRenderer, camera Camera, hovered bool) {
	r.RenderMarker(camera, e.Position, hovered)
}

// WindowClass identifies effect source windows so only one is open at a time.
func (e *EffectSource) WindowClass() (string, bool) {
	return EffectSourceClass, true
}

// ToWindow builds an editor for the source. Edits are written back to e as
// soon as a slider moves.
func (e *EffectSource) ToWindow(cache *ui.WindowCache, settings *ui.InterfaceSettings, available layout.Size) ui.Window {
	return EffectSourceWindow(cache, settings, available, e.Name,
		ui.ComponentBindings[float32](3,
			func(i int) float32 { return e.Position[i] },
			func(i int, v float32) { e.Position[i] = v },
		),
		ui.Binding[int]{
			Get: func() int { return e.EffectType },
			Set: func(v int) { e.EffectType = v },
		},
		ui.Binding[float32]{
			Get: func() float32 { return e.EmitSpeed },
			Set: func(v float32) { e.EmitSpeed = v },
		},
	)
}

// EffectSourceWindow builds the effect source editor from bindings, so
// sources stored elsewhere can be edited without handing out pointers.
// position must hold three bindings.
func EffectSourceWindow(cache *ui.WindowCache, settings *ui.InterfaceSettings, available layout.Size, name string, position []ui.Binding[float32], effectType ui.Binding[int], emitSpeed ui.Binding[float32]) ui.Window {
	elements := []ui.Element{
		ui.NewHeadline(name, ui.HeadlineDefaultSize),
	}
	elements = append(elements, ui.VectorElements(
		[]string{"x", "y", "z"},
		position,
		[]float32{-effectEditRange, -effectEditRange, -effectEditRange},
		[]float32{effectEditRange, effectEditRange, effectEditRange},
		ui.ChangeRerenderWindow,
	)...)
	elements = append(elements,
		ui.NewHeadline("effect type", ui.HeadlineDefaultSize),
		ui.NewSlider(effectType, 0, effectTypeCount-1, ui.ChangeRerenderWindow),
		ui.NewHeadline("emit speed", ui.HeadlineDefaultSize),
		ui.NewSlider(emitSpeed, 0, maxEmitSpeed, ui.ChangeRerenderWindow),
	)
	return ui.NewFramedWindow(cache, settings, available, "Effect Source", EffectSourceClass, elements, ui.DefaultWindowConstraint)
}

var _ ui.PrototypeWindow = (*EffectSource)(nil)
