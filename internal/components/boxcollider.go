package components

import (
	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func() engine.Serializable {
		return NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

// BoxCollider is an axis-aligned box. Rotation of the owner is ignored.
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

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns Size scaled by the owner's world scale, always positive.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: absf(b.Size.X * s.X),
		Y: absf(b.Size.Y * s.Y),
		Z: absf(b.Size.Z * s.Z),
	}
}

// Bounds returns the world-space min and max corners.
func (b *BoxCollider) Bounds() (min, max rl.Vector3) {
	center := b.GetCenter()
	half := rl.Vector3Scale(b.GetWorldSize(), 0.5)
	return rl.Vector3Subtract(center, half), rl.Vector3Add(center, half)
}

// TypeName implements engine.Serializable
func (b *BoxCollider) TypeName() string {
	return "BoxCollider"
}

// Serialize implements engine.Serializable
func (b *BoxCollider) Serialize() map[string]any {
	return map[string]any{
		"type":      "BoxCollider",
		"size":      []float32{b.Size.X, b.Size.Y, b.Size.Z},
		"offset":    []float32{b.Offset.X, b.Offset.Y, b.Offset.Z},
		"isTrigger": b.IsTrigger,
	}
}

// Deserialize implements engine.Serializable
func (b *BoxCollider) Deserialize(data map[string]any) {
	if v, ok := engine.PropVector3(data, "size"); ok {
		b.Size = rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
	}
	if v, ok := engine.PropVector3(data, "offset"); ok {
		b.Offset = rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
	}
	if v, ok := data["isTrigger"].(bool); ok {
		b.IsTrigger = v
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
