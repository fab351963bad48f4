package components

import (
	"interactq/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius    float32
	Offset    rl.Vector3
	IsTrigger bool
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	if g == nil {
		return s.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// GetWorldRadius scales the radius by the largest axis of the world scale.
func (s *SphereCollider) GetWorldRadius() float32 {
	g := s.GetGameObject()
	if g == nil {
		return s.Radius
	}
	scale := g.WorldScale()
	m := abs(scale.X)
	if v := abs(scale.Y); v > m {
		m = v
	}
	if v := abs(scale.Z); v > m {
		m = v
	}
	return s.Radius * m
}
