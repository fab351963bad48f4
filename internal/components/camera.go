package components

import (
	"math"

	"interactq/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is the viewpoint interaction sight is cast from.
type Camera struct {
	engine.BaseComponent
	FOV    float32
	Near   float32
	Far    float32
	IsMain bool
}

func NewCamera() *Camera {
	return &Camera{
		FOV:  45.0,
		Near: 0.1,
		Far:  1000.0,
	}
}

// Viewpoint returns the eye position and normalized look direction.
// ok is false when the camera is not attached to an object.
func (c *Camera) Viewpoint() (origin, direction rl.Vector3, ok bool) {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}, rl.Vector3{}, false
	}

	eyePos := g.WorldPosition()

	// Look for any LookProvider component on this object or parents
	var lookProvider engine.LookProvider
	for obj := g; obj != nil; obj = obj.Parent {
		if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
			lookProvider = lp
			break
		}
	}

	if lookProvider != nil {
		// A child camera already sits at its own offset; only a camera on the
		// controller's object needs the eye height added.
		if g.Parent == nil {
			eyePos.Y += lookProvider.GetEyeHeight()
		}
		dir := lookProvider.GetLookDirection()
		if rl.Vector3Length(dir) < 1e-6 {
			return rl.Vector3{}, rl.Vector3{}, false
		}
		return eyePos, rl.Vector3Normalize(dir), true
	}

	// Default: look forward based on object's yaw
	rot := g.WorldRotation()
	yawRad := float64(rot.Y) * math.Pi / 180.0
	forward := rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return eyePos, forward, true
}
