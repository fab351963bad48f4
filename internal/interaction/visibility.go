package interaction

import (
	"interactq/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ViewpointSource supplies the origin and direction sight is cast from.
// components.Camera satisfies it.
type ViewpointSource interface {
	Viewpoint() (origin, direction rl.Vector3, ok bool)
}

// Sight is the first entity a visibility cast touched.
type Sight struct {
	Entity engine.Handle
	Point  rl.Vector3
}

// VisibilityProbe performs a shaped cast and reports the first blocking entity.
type VisibilityProbe interface {
	SphereCast(origin, direction rl.Vector3, maxDistance, radius float32, exclude []engine.Handle) (Sight, bool)
}

// SceneProbe casts through the scene's WorldAccess.
type SceneProbe struct {
	Scene *engine.Scene
}

func (p SceneProbe) SphereCast(origin, direction rl.Vector3, maxDistance, radius float32, exclude []engine.Handle) (Sight, bool) {
	if p.Scene == nil || p.Scene.World == nil {
		return Sight{}, false
	}
	skip := make([]*engine.GameObject, 0, len(exclude))
	for _, h := range exclude {
		if g := p.Scene.Resolve(h); g != nil {
			skip = append(skip, g)
		}
	}
	hit, ok := p.Scene.World.SphereCast(origin, direction, maxDistance, radius, skip...)
	if !ok || hit.GameObject == nil {
		return Sight{}, false
	}
	return Sight{Entity: hit.GameObject.Handle(), Point: hit.Point}, true
}

// isBehind reports whether point lies behind origin along direction.
func isBehind(origin, direction, point rl.Vector3) bool {
	return rl.Vector3DotProduct(rl.Vector3Subtract(point, origin), direction) < 0
}
