// Package ecs stores lantern's lights and effect sources in a [Donburi]
// world.
//
// [NewWorld] adapts a donburi world to [lantern.World], so a viewer draws
// whatever entities carry [PointLightComponent] or [EffectSourceComponent].
// Editor windows reach their source through the entity handle instead of a
// pointer, so removing the entity while its window is open is safe.
//
// Interface change events can be routed into the same world with
// [NewDonburiSink] and consumed by subscribing to [ChangeEventType]:
//
//	world := donburi.NewWorld()
//	ecs.SpawnPointLight(world, lantern.PointLight{Radius: 40})
//	in := ui.NewInterface(nil, nil, ecs.NewDonburiSink(world), size)
//	viewer := lantern.NewViewer(renderer, ecs.NewWorld(world), in)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
