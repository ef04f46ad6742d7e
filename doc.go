// Package faros is "Faros de Sofía", a small interactive scene for
// [Ebitengine]: a girl in a boat moves around a sea with three lighthouses,
// one per family member, and each lighthouse shows a message when touched,
// hovered or bumped into.
//
// # Quick start
//
// The simplest way to run it is [Run], which creates a window and game loop
// for the current device:
//
//	cfg, err := faros.LoadConfig("faros.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := faros.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, build an [App] with [NewApp] and pass it to
// [ebiten.RunGame] yourself. Headless code and tests drive the same App with
// [App.Step] and the Inject* methods of [Input].
//
// # Device profile
//
// [ResolveProfile] turns raw [Signals] (user agent, touch points, screen
// size, pixel ratio, cores, memory) into a [DeviceProfile] with a
// performance [Tier], a recommended frame rate and a particle budget. The
// profile is computed once and shared through the App.
//
// # Responsive layout
//
// [Scaler] maps named sizes ([SizeXS] through [SizeXXL]) to pixels for the
// current [Breakpoint]. [ViewportWatcher] debounces resizes and reports the
// settled size to the scenes.
//
// # Input
//
// [Input] merges touch, mouse and keyboard into gestures: single and double
// taps, swipes and pinches, delivered to a [GestureHandler]. A virtual
// [Joystick] can capture one pointer. Held keys are tracked by both name and
// code in a [KeySet].
//
// # Scenes
//
// [SceneManager] owns the registered scenes and cross-fades between them.
// While a transition runs, further changes are refused. Each [Scene] holds
// world entities drawn under its [Camera] and HUD entities drawn in screen
// space; per-scene behavior is supplied through [SceneBehavior].
//
// The main scene is a [LighthouseScene], parameterized by [Features] so the
// same code serves the minimal and the complete experience. [MenuScene] is a
// small keyboard and tap driven menu.
//
// # Keyboard shortcuts
//
//	Space   pause / resume
//	R       reset the current scene
//	F       toggle fullscreen
//	M       toggle the menu
//	I       toggle the device info panel
//	D       toggle collision debug
//	C       copy the visible message to the clipboard
//	P       save a screenshot
//
// [Ebitengine]: https://ebitengine.org
package faros
