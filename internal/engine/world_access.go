package engine

//go:generate go tool mockgen -destination=./mocks/physics_mock.go -package=mocks . PhysicsQuery

import rl "github.com/gen2brain/raylib-go/raylib"

// LayerMask selects collision layers, one bit per layer index.
type LayerMask uint32

const AllLayers LayerMask = ^LayerMask(0)

// MaskOf builds a mask from layer indices.
func MaskOf(layers ...int) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l >= 0 && l < 32 {
			m |= 1 << uint(l)
		}
	}
	return m
}

// Contains reports whether the layer index is selected by the mask.
func (m LayerMask) Contains(layer int) bool {
	if layer < 0 || layer >= 32 {
		return false
	}
	return m&(1<<uint(layer)) != 0
}

// RaycastHit holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastHit struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// PhysicsQuery is the synchronous query surface gameplay code needs from
// the physics world. A miss is reported with ok == false, never an error.
type PhysicsQuery interface {
	RaycastFirst(origin, direction rl.Vector3, maxDistance float32, mask LayerMask, ignoreTriggers bool) (RaycastHit, bool)
	OverlapSphere(center rl.Vector3, radius float32, mask LayerMask, ignoreTriggers bool) bool
}

// ColliderSource lists objects a character controller resolves against.
type ColliderSource interface {
	GetCollidableObjects() []*GameObject
}
