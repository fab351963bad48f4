package physics

import (
	"interactq/internal/components"
	"interactq/internal/engine"
)

// CollisionPair represents two objects whose colliders overlap
type CollisionPair struct {
	A, B *engine.GameObject
}

// makePair creates a consistent pair (lower handle first)
func makePair(a, b *engine.GameObject) CollisionPair {
	ha, hb := a.Handle(), b.Handle()
	if ha.Index > hb.Index || (ha.Index == hb.Index && ha.Generation > hb.Generation) {
		return CollisionPair{A: b, B: a}
	}
	return CollisionPair{A: a, B: b}
}

// PhysicsWorld tracks collider-carrying objects for casts and trigger overlaps.
// It does not integrate motion; objects move by their own components.
type PhysicsWorld struct {
	Objects []*engine.GameObject

	// Overlap tracking for callbacks
	activeOverlaps  map[CollisionPair]bool // overlaps from last step
	currentOverlaps map[CollisionPair]bool // overlaps this step
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Objects:         make([]*engine.GameObject, 0),
		activeOverlaps:  make(map[CollisionPair]bool),
		currentOverlaps: make(map[CollisionPair]bool),
	}
}

func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	for _, obj := range p.Objects {
		if obj == g {
			return
		}
	}
	p.Objects = append(p.Objects, g)
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for i, obj := range p.Objects {
		if obj == g {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			return
		}
	}
}

// Update detects trigger overlaps and dispatches enter/exit callbacks.
// Objects that have left their scene are dropped first, which produces exit
// callbacks for anything they were overlapping.
func (p *PhysicsWorld) Update(deltaTime float32) {
	p.pruneInvalid()

	p.currentOverlaps = make(map[CollisionPair]bool)

	for _, a := range p.Objects {
		if !a.Active {
			continue
		}
		for _, b := range p.Objects {
			if a == b || !b.Active {
				continue
			}
			if p.triggerOverlaps(a, b) {
				p.currentOverlaps[makePair(a, b)] = true
			}
		}
	}

	p.dispatchCollisionCallbacks()
}

func (p *PhysicsWorld) pruneInvalid() {
	kept := p.Objects[:0]
	for _, obj := range p.Objects {
		if engine.IsValid(obj) {
			kept = append(kept, obj)
		}
	}
	for i := len(kept); i < len(p.Objects); i++ {
		p.Objects[i] = nil
	}
	p.Objects = kept
}

// triggerOverlaps reports whether any trigger collider on a overlaps any solid collider on b.
func (p *PhysicsWorld) triggerOverlaps(a, b *engine.GameObject) bool {
	for _, trig := range engine.GetComponents[*components.BoxCollider](a) {
		if !trig.IsTrigger {
			continue
		}
		volume := NewAABBFromCenter(trig.GetCenter(), trig.GetWorldSize())
		for _, box := range p.solidBoxes(b) {
			if volume.Intersects(box) {
				return true
			}
		}
		for _, sphere := range p.solidSpheres(b) {
			if volume.IntersectsSphere(sphere.GetCenter(), sphere.GetWorldRadius()) {
				return true
			}
		}
	}
	for _, trig := range engine.GetComponents[*components.SphereCollider](a) {
		if !trig.IsTrigger {
			continue
		}
		center, radius := trig.GetCenter(), trig.GetWorldRadius()
		for _, box := range p.solidBoxes(b) {
			if box.IntersectsSphere(center, radius) {
				return true
			}
		}
		for _, sphere := range p.solidSpheres(b) {
			r := radius + sphere.GetWorldRadius()
			d := sphere.GetCenter()
			dx, dy, dz := d.X-center.X, d.Y-center.Y, d.Z-center.Z
			if dx*dx+dy*dy+dz*dz <= r*r {
				return true
			}
		}
	}
	return false
}

func (p *PhysicsWorld) solidBoxes(g *engine.GameObject) []AABB {
	var boxes []AABB
	for _, box := range engine.GetComponents[*components.BoxCollider](g) {
		if box.IsTrigger {
			continue
		}
		boxes = append(boxes, NewAABBFromCenter(box.GetCenter(), box.GetWorldSize()))
	}
	return boxes
}

func (p *PhysicsWorld) solidSpheres(g *engine.GameObject) []*components.SphereCollider {
	var spheres []*components.SphereCollider
	for _, sphere := range engine.GetComponents[*components.SphereCollider](g) {
		if !sphere.IsTrigger {
			spheres = append(spheres, sphere)
		}
	}
	return spheres
}

// dispatchCollisionCallbacks sends OnCollisionEnter/Exit to handlers
func (p *PhysicsWorld) dispatchCollisionCallbacks() {
	for pair := range p.currentOverlaps {
		if !p.activeOverlaps[pair] {
			notifyCollisionEnter(pair.A, pair.B)
			notifyCollisionEnter(pair.B, pair.A)
		}
	}

	for pair := range p.activeOverlaps {
		if !p.currentOverlaps[pair] {
			notifyCollisionExit(pair.A, pair.B)
			notifyCollisionExit(pair.B, pair.A)
		}
	}

	// Swap buffers
	p.activeOverlaps = p.currentOverlaps
}

// IsOverlapping reports whether a and b overlapped during the last Update.
func (p *PhysicsWorld) IsOverlapping(a, b *engine.GameObject) bool {
	return p.activeOverlaps[makePair(a, b)]
}

// notifyCollisionEnter calls OnCollisionEnter on all handlers in obj
func notifyCollisionEnter(obj, other *engine.GameObject) {
	if !engine.IsValid(obj) {
		return
	}
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionEnter(other)
		}
	}
}

// notifyCollisionExit calls OnCollisionExit on all handlers in obj
func notifyCollisionExit(obj, other *engine.GameObject) {
	if !engine.IsValid(obj) {
		return
	}
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionExit(other)
		}
	}
}
