package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/lantern"
	"github.com/phanxgames/lantern/layout"
	"github.com/phanxgames/lantern/ui"
)

var (
	// PointLightComponent marks an entity as a point light.
	PointLightComponent = donburi.NewComponentType[lantern.PointLight]()
	// EffectSourceComponent marks an entity as an effect source.
	EffectSourceComponent = donburi.NewComponentType[lantern.EffectSource]()

	// ChangeEventType carries interface change events. Subscribe to it in
	// your systems and call ProcessEvents once per frame.
	ChangeEventType = events.NewEventType[ui.ChangeEvent]()
)

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink that publishes change events to
// ChangeEventType in world.
func NewDonburiSink(world donburi.World) ui.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitChange(event ui.ChangeEvent) {
	ChangeEventType.Publish(s.world, event)
}

// SpawnPointLight creates an entity holding l.
func SpawnPointLight(world donburi.World, l lantern.PointLight) donburi.Entity {
	e := world.Create(PointLightComponent)
	PointLightComponent.SetValue(world.Entry(e), l)
	return e
}

// SpawnEffectSource creates an entity holding s.
func SpawnEffectSource(world donburi.World, s lantern.EffectSource) donburi.Entity {
	e := world.Create(EffectSourceComponent)
	EffectSourceComponent.SetValue(world.Entry(e), s)
	return e
}

// World adapts a donburi world to lantern.World.
type World struct {
	world   donburi.World
	lights  *donburi.Query
	sources *donburi.Query
	// effects holds the entities behind the last EffectSources result.
	effects []donburi.Entity
}

// NewWorld wraps world.
func NewWorld(world donburi.World) *World {
	return &World{
		world:   world,
		lights:  donburi.NewQuery(filter.Contains(PointLightComponent)),
		sources: donburi.NewQuery(filter.Contains(EffectSourceComponent)),
	}
}

// PointLights returns a copy of every light component.
func (w *World) PointLights() []lantern.PointLight {
	var out []lantern.PointLight
	w.lights.Each(w.world, func(entry *donburi.Entry) {
		out = append(out, *PointLightComponent.Get(entry))
	})
	return out
}

// EffectSources returns a copy of every effect source component and
// remembers their entities for EffectSourceEditor.
func (w *World) EffectSources() []lantern.EffectSource {
	var out []lantern.EffectSource
	w.effects = w.effects[:0]
	w.sources.Each(w.world, func(entry *donburi.Entry) {
		out = append(out, *EffectSourceComponent.Get(entry))
		w.effects = append(w.effects, entry.Entity())
	})
	return out
}

// EffectSourceEditor returns an editor bound to the entity behind index.
func (w *World) EffectSourceEditor(index int) (ui.PrototypeWindow, bool) {
	if index < 0 || index >= len(w.effects) {
		return nil, false
	}
	return NewEffectSourceEditor(w.world, w.effects[index]), true
}

// EffectSourceEditor edits the effect source component of one entity. Every
// read and write looks the entity up again; once it is removed, sliders read
// zero and writes are dropped.
type EffectSourceEditor struct {
	world  donburi.World
	entity donburi.Entity
}

// NewEffectSourceEditor creates an editor for entity.
func NewEffectSourceEditor(world donburi.World, entity donburi.Entity) *EffectSourceEditor {
	return &EffectSourceEditor{world: world, entity: entity}
}

// Entity returns the edited entity.
func (ed *EffectSourceEditor) Entity() donburi.Entity {
	return ed.entity
}

func (ed *EffectSourceEditor) source() *lantern.EffectSource {
	if !ed.world.Valid(ed.entity) {
		return nil
	}
	entry := ed.world.Entry(ed.entity)
	if !entry.HasComponent(EffectSourceComponent) {
		return nil
	}
	return EffectSourceComponent.Get(entry)
}

func (ed *EffectSourceEditor) WindowClass() (string, bool) {
	return lantern.EffectSourceClass, true
}

func (ed *EffectSourceEditor) ToWindow(cache *ui.WindowCache, settings *ui.InterfaceSettings, available layout.Size) ui.Window {
	var name string
	if s := ed.source(); s != nil {
		name = s.Name
	}
	position := ui.ComponentBindings[float32](3,
		func(i int) float32 {
			if s := ed.source(); s != nil {
				return s.Position[i]
			}
			return 0
		},
		func(i int, v float32) {
			if s := ed.source(); s != nil {
				s.Position[i] = v
			}
		},
	)
	effectType := ui.Binding[int]{
		Get: func() int {
			if s := ed.source(); s != nil {
				return s.EffectType
			}
			return 0
		},
		Set: func(v int) {
			if s := ed.source(); s != nil {
				s.EffectType = v
			}
		},
	}
	emitSpeed := ui.Binding[float32]{
		Get: func() float32 {
			if s := ed.source(); s != nil {
				return s.EmitSpeed
			}
			return 0
		},
		Set: func(v float32) {
			if s := ed.source(); s != nil {
				s.EmitSpeed = v
			}
		},
	}
	return lantern.EffectSourceWindow(cache, settings, available, name, position, effectType, emitSpeed)
}

var (
	_ lantern.World      = (*World)(nil)
	_ ui.PrototypeWindow = (*EffectSourceEditor)(nil)
)
