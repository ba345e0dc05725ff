package components

import (
	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("SphereCollider", func() engine.Serializable {
		return NewSphereCollider(0.5)
	})
}

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
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// TypeName implements engine.Serializable
func (s *SphereCollider) TypeName() string {
	return "SphereCollider"
}

// Serialize implements engine.Serializable
func (s *SphereCollider) Serialize() map[string]any {
	return map[string]any{
		"type":      "SphereCollider",
		"radius":    s.Radius,
		"offset":    []float32{s.Offset.X, s.Offset.Y, s.Offset.Z},
		"isTrigger": s.IsTrigger,
	}
}

// Deserialize implements engine.Serializable
func (s *SphereCollider) Deserialize(data map[string]any) {
	if v, ok := engine.PropFloat(data, "radius"); ok {
		s.Radius = v
	}
	if v, ok := engine.PropVector3(data, "offset"); ok {
		s.Offset = rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
	}
	if v, ok := data["isTrigger"].(bool); ok {
		s.IsTrigger = v
	}
}
