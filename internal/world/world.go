package world

import (
	"interactq/internal/components"
	"interactq/internal/engine"
	"interactq/internal/logging"
	"interactq/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// World ties a scene to its physics and serves as the scene's WorldAccess.
type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.PhysicsWorld
	Log          *zap.Logger

	started bool
}

func New(log *zap.Logger) *World {
	w := &World{
		Scene:        engine.NewScene("Main"),
		PhysicsWorld: physics.NewPhysicsWorld(),
		Log:          logging.OrNop(log),
	}
	w.Scene.World = w
	return w
}

// Spawn adds g and its children to the scene. Objects with colliders are
// registered with physics. Objects spawned after Start are started immediately.
func (w *World) Spawn(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	if hasCollider(g) {
		w.PhysicsWorld.AddObject(g)
	}
	for _, child := range g.Children {
		w.Spawn(child)
	}
	if w.started {
		g.Start()
	}
}

func hasCollider(g *engine.GameObject) bool {
	return engine.GetComponent[*components.BoxCollider](g) != nil ||
		engine.GetComponent[*components.SphereCollider](g) != nil
}

// Destroy removes g from the scene and physics. Handles to it go stale at once.
func (w *World) Destroy(g *engine.GameObject) {
	if !engine.IsValid(g) || g.Scene != w.Scene {
		return
	}
	w.Log.Debug("destroy", zap.String("name", g.Name), zap.Stringer("handle", g.Handle()))
	w.unregister(g)
	w.Scene.RemoveGameObject(g)
}

// unregister drops g and its children from physics. Overlaps they were part
// of still report an exit on the next physics step.
func (w *World) unregister(g *engine.GameObject) {
	w.PhysicsWorld.RemoveObject(g)
	for _, child := range g.Children {
		w.unregister(child)
	}
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return w.PhysicsWorld.Raycast(origin, direction, maxDistance)
}

func (w *World) SphereCast(origin, direction rl.Vector3, maxDistance, radius float32, exclude ...*engine.GameObject) (engine.RaycastResult, bool) {
	return w.PhysicsWorld.SphereCast(origin, direction, maxDistance, radius, exclude...)
}

func (w *World) Start() {
	w.started = true
	w.Scene.Start()
}

// Update runs components first, then overlap detection, so triggers see
// positions from this step.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.PhysicsWorld.Update(deltaTime)
}
