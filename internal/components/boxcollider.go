package components

import (
	"interactq/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an axis-aligned box around the object's world position.
// Trigger colliders report overlaps but are ignored by casts.
type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	IsTrigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// NewBoxTrigger creates a trigger volume of the given size.
func NewBoxTrigger(size rl.Vector3) *BoxCollider {
	b := NewBoxCollider(size)
	b.IsTrigger = true
	return b
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns the size scaled by the object's world scale, with
// negative scales folded to positive extents.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	s := g.WorldScale()
	return rl.Vector3{
		X: abs(b.Size.X * s.X),
		Y: abs(b.Size.Y * s.Y),
		Z: abs(b.Size.Z * s.Z),
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
