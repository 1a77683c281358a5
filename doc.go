// Package lantern is a small 3D scene viewer built on [Ebitengine]: an
// orbit camera, omnidirectional point light shadows and in-scene editor
// windows.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	world := &lantern.StaticWorld{
//		Lights: []lantern.PointLight{{Position: mgl32.Vec3{0, 4, -1}, Color: lantern.ColorWhite, Radius: 40}},
//	}
//	viewer := lantern.NewViewer(lantern.NewEbitenRenderer(1280, 720), world, nil)
//	lantern.Run(viewer, lantern.RunConfig{Title: "Scene", Width: 1280, Height: 720})
//
// [Viewer] implements [ebiten.Game], so it can also be handed to
// [ebiten.RunGame] directly.
//
// # Cameras
//
// Both cameras implement [Camera]. [OrbitCamera] circles a focus point and
// eases zoom and rotation in with tweens (via [gween]). [PointShadowCamera]
// renders the six 90° faces of a point light's cube shadow map; select a face
// with [PointShadowCamera.ChangeDirection]. All matrix math uses
// [mgl32].
//
// Screen space spans [0,2] on both axes: clip coordinates are divided by w
// and shifted by one.
//
// # Rendering
//
// A [Viewer] drives a [Renderer] through one frame: StartDraw, shadow faces
// (if the renderer implements [ShadowRenderer]), the model, LightingPass,
// ambient, directional and point lights, effect source markers and StopDraw.
// [EbitenRenderer] draws with ebiten; [RecordingRenderer] only records the
// calls, for tests and headless runs. After a resize the renderer's swapchain
// is invalidated and frames are skipped until it reports [Renderer.Valid].
//
// # Editor windows
//
// Windows live in the ui package and are laid out by the layout package.
// [EffectSource] is a ui.PrototypeWindow: clicking its marker opens an editor
// whose sliders write straight back to it. Store lights and sources in a
// donburi world with the ecs package instead of a [StaticWorld] to edit them
// through entity handles.
//
// # Debugging
//
// [SetDebugMode] prints per-frame stats and the frame rate to stderr with a
// "[lantern]" prefix; [SetDebugOutput] redirects them.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [mgl32]: https://pkg.go.dev/github.com/go-gl/mathgl/mgl32
package lantern
