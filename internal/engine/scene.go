package engine

// slot is one arena cell. generation only ever increments and
// starts at 1 so the zero Handle never resolves.
type slot struct {
	object     *GameObject
	generation uint32
}

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess

	slots []slot
	free  []uint32
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		slots:       make([]slot, 0),
	}
}

// AddGameObject places g in the scene and assigns it a fresh handle.
// Adding an object that already belongs to this scene is a no-op.
func (s *Scene) AddGameObject(g *GameObject) {
	if g == nil || (g.Scene == s && s.Resolve(g.handle) == g) {
		return
	}
	if g.Scene != nil && g.Scene != s {
		g.Scene.RemoveGameObject(g)
	}

	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.slots))
		s.slots = append(s.slots, slot{generation: 1})
	}
	s.slots[index].object = g

	g.handle = Handle{Index: index, Generation: s.slots[index].generation}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject takes g and all of its children out of the scene.
// Every handle that referred to them becomes stale.
func (s *Scene) RemoveGameObject(g *GameObject) {
	if g == nil || s.Resolve(g.handle) != g {
		return
	}
	for _, child := range append([]*GameObject(nil), g.Children...) {
		s.RemoveGameObject(child)
	}

	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}

	sl := &s.slots[g.handle.Index]
	sl.object = nil
	sl.generation++
	s.free = append(s.free, g.handle.Index)

	g.Scene = nil
}

// Resolve returns the live object for h, or nil if h is nil or stale.
func (s *Scene) Resolve(h Handle) *GameObject {
	if s == nil || h.IsNil() || int(h.Index) >= len(s.slots) {
		return nil
	}
	sl := s.slots[h.Index]
	if sl.generation != h.Generation {
		return nil
	}
	return sl.object
}

// IsValid reports whether h still refers to a live object.
func (s *Scene) IsValid(h Handle) bool {
	return s.Resolve(h) != nil
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.snapshot() {
		g.Start()
	}
}

// Update runs every live object. Objects destroyed mid-update are skipped.
func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.snapshot() {
		if g.Scene != s {
			continue
		}
		g.Update(deltaTime)
	}
}

func (s *Scene) snapshot() []*GameObject {
	return append([]*GameObject(nil), s.GameObjects...)
}
