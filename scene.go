package faros

// Entity is anything a scene draws. Entities that also implement Updater
// or Resetter are updated and reset with their scene.
type Entity interface {
	Draw(s Surface)
}

// Updater is implemented by entities that change over time. dt is in seconds.
type Updater interface {
	Update(dt float64)
}

// Resetter is implemented by entities that can return to their initial state.
type Resetter interface {
	Reset()
}

// SceneBehavior holds the per-scene hooks. Embed NopBehavior to implement
// only some of them. A behavior that also implements GestureHandler
// receives input while its scene is current.
type SceneBehavior interface {
	OnEnter(data any)
	OnExit()
	OnUpdate(dt float64)
	OnDraw(s Surface)
	OnReset()
	OnResize(w, h float64)
}

// NopBehavior implements SceneBehavior with no-ops.
type NopBehavior struct{}

func (NopBehavior) OnEnter(any) {}
func (NopBehavior) OnExit() {}
func (NopBehavior) OnUpdate(float64) {}
func (NopBehavior) OnDraw(Surface) {}
func (NopBehavior) OnReset() {}
func (NopBehavior) OnResize(float64, float64) {}

var _ SceneBehavior = NopBehavior{}

// Scene is a named set of entities with its own hooks and optional cameras.
// It only updates and draws while active, i.e. between enter and exit.
type Scene struct {
	name     string
	behavior SceneBehavior
	entities []Entity
	hud      []Entity
	active   bool

	cameras       []*Camera
	currentCamera int

	manager *SceneManager
}

// NewScene creates an inactive scene. A nil behavior gets NopBehavior.
func NewScene(name string, b SceneBehavior) *Scene {
	if b == nil {
		b = NopBehavior{}
	}
	return &Scene{name: name, behavior: b}
}

// Name returns the name the scene is registered under.
func (s *Scene) Name() string { return s.name }

// Behavior returns the scene's hooks.
func (s *Scene) Behavior() SceneBehavior { return s.behavior }

// Active reports whether the scene has been entered and not yet exited.
func (s *Scene) Active() bool { return s.active }

// Manager returns the manager the scene is registered with, or nil.
func (s *Scene) Manager() *SceneManager { return s.manager }

// Add appends an entity. Entities draw in insertion order.
func (s *Scene) Add(e Entity) {
	s.entities = append(s.entities, e)
}

// Remove deletes the first occurrence of e. It reports whether e was found.
func (s *Scene) Remove(e Entity) bool {
	for i, o := range s.entities {
		if o == e {
			copy(s.entities[i:], s.entities[i+1:])
			s.entities[len(s.entities)-1] = nil
			s.entities = s.entities[:len(s.entities)-1]
			return true
		}
	}
	return false
}

// Entities returns the scene's entity list. The slice must not be modified.
func (s *Scene) Entities() []Entity { return s.entities }

// AddHUD appends an entity drawn in screen space, above the world and
// unaffected by the camera.
func (s *Scene) AddHUD(e Entity) {
	s.hud = append(s.hud, e)
}

// AddCamera appends a camera. The first camera added becomes current.
func (s *Scene) AddCamera(c *Camera) {
	s.cameras = append(s.cameras, c)
}

// SetCurrentCamera selects which camera Draw applies.
func (s *Scene) SetCurrentCamera(i int) {
	s.currentCamera = i
}

// Camera returns the current camera, or nil if none is assigned.
func (s *Scene) Camera() *Camera {
	if s.currentCamera < 0 || s.currentCamera >= len(s.cameras) {
		return nil
	}
	return s.cameras[s.currentCamera]
}

// ScreenToWorld converts a screen point through the current camera.
func (s *Scene) ScreenToWorld(x, y float64) (float64, float64) {
	if cam := s.Camera(); cam != nil {
		return cam.ScreenToWorld(x, y)
	}
	return x, y
}

func (s *Scene) enter(data any) {
	s.active = true
	s.behavior.OnEnter(data)
}

func (s *Scene) exit() {
	s.active = false
	s.behavior.OnExit()
}

// Update advances every updatable entity, the cameras and then the scene's
// own hook. Inactive scenes do nothing.
func (s *Scene) Update(dt float64) {
	if !s.active {
		return
	}
	for _, list := range [2][]Entity{s.entities, s.hud} {
		for _, e := range list {
			if u, ok := e.(Updater); ok {
				u.Update(dt)
			}
		}
	}
	for _, c := range s.cameras {
		c.Update(float32(dt))
	}
	s.behavior.OnUpdate(dt)
}

// Draw applies the current camera, draws every entity and then the scene's
// own hook, and restores the transform. HUD entities draw last, in screen
// space. Inactive scenes draw nothing.
func (s *Scene) Draw(surf Surface) {
	if !s.active {
		return
	}
	cam := s.Camera()
	if cam != nil {
		surf.PushTransform(cam.Transform())
	}
	for _, e := range s.entities {
		e.Draw(surf)
	}
	s.behavior.OnDraw(surf)
	if cam != nil {
		surf.PopTransform()
	}
	for _, e := range s.hud {
		e.Draw(surf)
	}
}

// Reset resets every resettable entity and then the scene's own hook.
func (s *Scene) Reset() {
	for _, list := range [2][]Entity{s.entities, s.hud} {
		for _, e := range list {
			if r, ok := e.(Resetter); ok {
				r.Reset()
			}
		}
	}
	s.behavior.OnReset()
}

// Resize forwards a viewport change to the scene's cameras and hook.
func (s *Scene) Resize(w, h float64) {
	for _, c := range s.cameras {
		c.SetViewport(Rect{Width: w, Height: h})
	}
	s.behavior.OnResize(w, h)
}
