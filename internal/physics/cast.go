package physics

import (
	"math"

	"interactq/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit = engine.RaycastResult

// Raycast returns the closest solid collider hit along the ray.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	return p.SphereCast(origin, direction, maxDistance, 0)
}

// SphereCast sweeps a sphere of the given radius along the ray and returns the
// first solid collider it touches. Trigger colliders and excluded objects are
// skipped. Point is the contact point on the collider surface; when the probe
// starts out overlapping a collider the hit is reported at distance 0 with
// the contact point nearest the origin, which may lie behind the cast.
func (p *PhysicsWorld) SphereCast(origin, direction rl.Vector3, maxDistance, radius float32, exclude ...*engine.GameObject) (RaycastHit, bool) {
	if rl.Vector3Length(direction) < 1e-6 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)
	if radius < 0 {
		radius = 0
	}

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range p.Objects {
		if !obj.Active || excluded(obj, exclude) || !engine.IsValid(obj) {
			continue
		}
		for _, box := range p.solidBoxes(obj) {
			if hitInfo, ok := sweepBox(origin, direction, box, radius, maxDistance); ok {
				if !hit || hitInfo.Distance < closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
		for _, sphere := range p.solidSpheres(obj) {
			if hitInfo, ok := sweepSphere(origin, direction, sphere.GetCenter(), sphere.GetWorldRadius(), radius, maxDistance); ok {
				if !hit || hitInfo.Distance < closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
	}

	return closestHit, hit
}

func excluded(obj *engine.GameObject, exclude []*engine.GameObject) bool {
	for _, e := range exclude {
		if e == obj {
			return true
		}
	}
	return false
}

// sweepBox casts against the box inflated by the probe radius. This rounds
// corners out to square edges, which over-reports hits near box corners by at
// most the probe radius.
func sweepBox(origin, direction rl.Vector3, box AABB, radius, maxDistance float32) (RaycastHit, bool) {
	inflated := box.Expand(radius)

	if inflated.Contains(origin) {
		point := box.ClosestPoint(origin)
		return RaycastHit{Point: point, Normal: boxNormal(box, point, origin), Distance: 0}, true
	}

	tmin, tmax := float32(-1e30), float32(1e30)
	axes := [3][4]float32{
		{origin.X, direction.X, inflated.Min.X, inflated.Max.X},
		{origin.Y, direction.Y, inflated.Min.Y, inflated.Max.Y},
		{origin.Z, direction.Z, inflated.Min.Z, inflated.Max.Z},
	}
	for _, a := range axes {
		o, d, lo, hi := a[0], a[1], a[2], a[3]
		if d == 0 {
			if o < lo || o > hi {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	center := rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin))
	point := box.ClosestPoint(center)
	return RaycastHit{Point: point, Normal: boxNormal(box, point, center), Distance: tmin}, true
}

// boxNormal picks the face normal of the box at point, preferring the face
// that faces from.
func boxNormal(box AABB, point, from rl.Vector3) rl.Vector3 {
	epsilon := float32(0.001)
	switch {
	case abs(point.X-box.Min.X) < epsilon && from.X <= box.Min.X:
		return rl.Vector3{X: -1}
	case abs(point.X-box.Max.X) < epsilon && from.X >= box.Max.X:
		return rl.Vector3{X: 1}
	case abs(point.Y-box.Min.Y) < epsilon && from.Y <= box.Min.Y:
		return rl.Vector3{Y: -1}
	case abs(point.Y-box.Max.Y) < epsilon && from.Y >= box.Max.Y:
		return rl.Vector3{Y: 1}
	case abs(point.Z-box.Min.Z) < epsilon && from.Z <= box.Min.Z:
		return rl.Vector3{Z: -1}
	case abs(point.Z-box.Max.Z) < epsilon && from.Z >= box.Max.Z:
		return rl.Vector3{Z: 1}
	}
	// from is inside the box
	return rl.Vector3Negate(rl.Vector3Normalize(rl.Vector3Subtract(from, point)))
}

func sweepSphere(origin, direction, center rl.Vector3, sphereRadius, radius, maxDistance float32) (RaycastHit, bool) {
	combined := sphereRadius + radius
	oc := rl.Vector3Subtract(origin, center)

	if rl.Vector3DotProduct(oc, oc) <= combined*combined {
		normal := safeNormalize(oc, direction)
		point := rl.Vector3Add(center, rl.Vector3Scale(normal, sphereRadius))
		return RaycastHit{Point: point, Normal: normal, Distance: 0}, true
	}

	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - combined*combined
	discriminant := b*b - 4*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / 2
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	probe := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := safeNormalize(rl.Vector3Subtract(probe, center), direction)
	point := rl.Vector3Add(center, rl.Vector3Scale(normal, sphereRadius))
	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func safeNormalize(v, fallback rl.Vector3) rl.Vector3 {
	if rl.Vector3Length(v) < 1e-6 {
		return rl.Vector3Negate(fallback)
	}
	return rl.Vector3Normalize(v)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
