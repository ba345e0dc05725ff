package scripts

import (
	"math"

	"tpshooter/internal/components"
	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Patrol", func() engine.Serializable {
		return &Patrol{Axis: rl.Vector3{X: 1}, Distance: 2, Speed: 1}
	})
}

// Patrol sweeps a range target back and forth along Axis around the
// position it started from. Dead targets hold still.
type Patrol struct {
	engine.BaseComponent
	Axis     rl.Vector3
	Distance float32 // half the sweep length
	Speed    float32 // radians of phase per second
	Phase    float32

	start  rl.Vector3
	time   float32
	health *components.Health
}

func (p *Patrol) Init() error {
	g := p.GetGameObject()
	if g == nil {
		return nil
	}
	p.start = g.Transform.Position
	p.health = engine.GetComponentInChildren[*components.Health](g)
	return nil
}

func (p *Patrol) Tick(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	if p.health != nil && p.health.Dead() {
		return
	}

	p.time += deltaTime
	t := p.time*p.Speed + p.Phase
	axis := rl.Vector3Normalize(p.Axis)
	offset := rl.Vector3Scale(axis, float32(math.Sin(float64(t)))*p.Distance)
	g.Transform.Position = rl.Vector3Add(p.start, offset)
}

// TypeName implements engine.Serializable
func (p *Patrol) TypeName() string {
	return "Patrol"
}

// Serialize implements engine.Serializable
func (p *Patrol) Serialize() map[string]any {
	return map[string]any{
		"type":     "Patrol",
		"axis":     []float32{p.Axis.X, p.Axis.Y, p.Axis.Z},
		"distance": p.Distance,
		"speed":    p.Speed,
		"phase":    p.Phase,
	}
}

// Deserialize implements engine.Serializable
func (p *Patrol) Deserialize(data map[string]any) {
	if v, ok := engine.PropVector3(data, "axis"); ok {
		p.Axis = rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
	}
	if v, ok := engine.PropFloat(data, "distance"); ok {
		p.Distance = v
	}
	if v, ok := engine.PropFloat(data, "speed"); ok {
		p.Speed = v
	}
	if v, ok := engine.PropFloat(data, "phase"); ok {
		p.Phase = v
	}
}
