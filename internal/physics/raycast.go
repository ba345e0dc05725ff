package physics

import (
	"math"

	"tpshooter/internal/components"
	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastFirst implements engine.PhysicsQuery: the closest collider hit
// along the ray within maxDistance. Colliders that contain the origin are
// not reported.
func (w *World) RaycastFirst(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask, ignoreTriggers bool) (engine.RaycastHit, bool) {
	if rl.Vector3Length(direction) == 0 {
		return engine.RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)
	var closestHit engine.RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range w.objects {
		if !queryable(obj, mask) {
			continue
		}
		// Check box collider
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil && !(ignoreTriggers && box.IsTrigger) {
			min, max := box.Bounds()
			if hitInfo, ok := raycastBox(origin, direction, AABB{Min: min, Max: max}, maxDistance); ok {
				if hitInfo.Distance <= closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
		// Check sphere collider
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil && !(ignoreTriggers && sphere.IsTrigger) {
			if hitInfo, ok := raycastSphere(origin, direction, sphere.GetCenter(), sphere.Radius, maxDistance); ok {
				if hitInfo.Distance <= closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
	}

	return closestHit, hit
}

// raycastBox is a slab test. direction must be normalized.
func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (engine.RaycastHit, bool) {
	if box.Contains(origin) {
		return engine.RaycastHit{}, false
	}
	min, max := box.Min, box.Max

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return engine.RaycastHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = float32(math.Max(float64(tmin), float64(t1)))
		tmax = float32(math.Min(float64(tmax), float64(t2)))
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return engine.RaycastHit{}, false
	}

	if tmin > tmax {
		return engine.RaycastHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = float32(math.Max(float64(tmin), float64(t1)))
		tmax = float32(math.Min(float64(tmax), float64(t2)))
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return engine.RaycastHit{}, false
	}

	if tmin > tmax || tmin < 0 || tmin > maxDistance {
		return engine.RaycastHit{}, false
	}

	t := tmin
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if absf(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1, Y: 0, Z: 0}
	} else if absf(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1, Y: 0, Z: 0}
	} else if absf(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: -1, Z: 0}
	} else if absf(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: 1, Z: 0}
	} else if absf(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{X: 0, Y: 0, Z: -1}
	} else {
		normal = rl.Vector3{X: 0, Y: 0, Z: 1}
	}

	return engine.RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// raycastSphere solves the ray/sphere quadratic. direction must be
// normalized.
func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (engine.RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	if c <= 0 {
		// origin inside
		return engine.RaycastHit{}, false
	}

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return engine.RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / 2
	if t < 0 || t > maxDistance {
		return engine.RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return engine.RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
