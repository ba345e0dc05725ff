package physics

import (
	"slices"

	"tpshooter/internal/components"
	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	_ engine.PhysicsQuery   = (*World)(nil)
	_ engine.ColliderSource = (*World)(nil)
)

// World answers ray and overlap queries against the box and sphere
// colliders registered with it. It does not simulate anything: bodies move
// through their own components and the character controller.
type World struct {
	objects []*engine.GameObject
}

func NewWorld() *World {
	return &World{objects: make([]*engine.GameObject, 0)}
}

// AddObject registers g and every descendant that carries a collider.
func (w *World) AddObject(g *engine.GameObject) {
	g.Walk(func(obj *engine.GameObject) {
		if !hasCollider(obj) || slices.Contains(w.objects, obj) {
			return
		}
		w.objects = append(w.objects, obj)
	})
}

// RemoveObject unregisters g and its descendants.
func (w *World) RemoveObject(g *engine.GameObject) {
	g.Walk(func(obj *engine.GameObject) {
		w.objects = slices.DeleteFunc(w.objects, func(o *engine.GameObject) bool {
			return o == obj
		})
	})
}

// GetCollidableObjects implements engine.ColliderSource.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.objects
}

func (w *World) Len() int {
	return len(w.objects)
}

// OverlapSphere implements engine.PhysicsQuery.
func (w *World) OverlapSphere(center rl.Vector3, radius float32, mask engine.LayerMask, ignoreTriggers bool) bool {
	bounds := NewAABBFromCenter(center, rl.Vector3{X: radius * 2, Y: radius * 2, Z: radius * 2})

	for _, obj := range w.objects {
		if !queryable(obj, mask) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil && !(ignoreTriggers && box.IsTrigger) {
			min, max := box.Bounds()
			aabb := AABB{Min: min, Max: max}
			if aabb.Intersects(bounds) && aabb.IntersectsSphere(center, radius) {
				return true
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil && !(ignoreTriggers && sphere.IsTrigger) {
			reach := sphere.Radius + radius
			d := rl.Vector3Subtract(sphere.GetCenter(), center)
			if rl.Vector3DotProduct(d, d) <= reach*reach {
				return true
			}
		}
	}
	return false
}

func queryable(obj *engine.GameObject, mask engine.LayerMask) bool {
	return obj.Active && mask.Contains(obj.Layer)
}

func hasCollider(obj *engine.GameObject) bool {
	return engine.GetComponent[*components.BoxCollider](obj) != nil ||
		engine.GetComponent[*components.SphereCollider](obj) != nil
}
