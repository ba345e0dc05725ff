package components

import (
	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rigidbody", func() engine.Serializable {
		return NewRigidbody()
	})
}

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.3 // units/sec - below this, object might sleep
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

// Rigidbody carries the velocity that hit impulses act on. It integrates
// position with linear drag only; collision response belongs to the host
// engine.
type Rigidbody struct {
	engine.BaseComponent
	Velocity    rl.Vector3
	Mass        float32
	Drag        float32 // fraction of velocity lost per second
	IsKinematic bool    // moves but doesn't get pushed by impulses

	IsSleeping bool
	sleepTimer float32
	CanSleep   bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:     1.0,
		Drag:     2.0,
		CanSleep: true,
	}
}

// AddForce applies an instantaneous impulse: Velocity += force / Mass.
func (r *Rigidbody) AddForce(force rl.Vector3) {
	if r.IsKinematic {
		return
	}
	mass := r.Mass
	if mass <= 0 {
		mass = 1
	}
	r.Velocity = rl.Vector3Add(r.Velocity, rl.Vector3Scale(force, 1/mass))
	r.Wake()
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

func (r *Rigidbody) Tick(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil || r.IsKinematic || r.IsSleeping {
		return
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(r.Velocity, deltaTime))

	damp := 1 - r.Drag*deltaTime
	if damp < 0 {
		damp = 0
	}
	r.Velocity = rl.Vector3Scale(r.Velocity, damp)
	r.trySleep(deltaTime)
}

func (r *Rigidbody) trySleep(deltaTime float32) {
	if !r.CanSleep {
		return
	}
	if rl.Vector3Length(r.Velocity) < SleepVelocityThreshold {
		r.sleepTimer += deltaTime
		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}

// TypeName implements engine.Serializable
func (r *Rigidbody) TypeName() string {
	return "Rigidbody"
}

// Serialize implements engine.Serializable
func (r *Rigidbody) Serialize() map[string]any {
	return map[string]any{
		"type":        "Rigidbody",
		"mass":        r.Mass,
		"drag":        r.Drag,
		"isKinematic": r.IsKinematic,
	}
}

// Deserialize implements engine.Serializable
func (r *Rigidbody) Deserialize(data map[string]any) {
	if m, ok := engine.PropFloat(data, "mass"); ok {
		r.Mass = m
	}
	if d, ok := engine.PropFloat(data, "drag"); ok {
		r.Drag = d
	}
	if k, ok := data["isKinematic"].(bool); ok {
		r.IsKinematic = k
	}
}
