package scripts

import (
	"fmt"

	"tpshooter/internal/components"
	"tpshooter/internal/engine"
	"tpshooter/internal/weapon"
)

func init() {
	engine.RegisterComponent("Respawner", func() engine.Serializable {
		return &Respawner{Delay: 3}
	})
}

// Respawner revives its object's Health Delay seconds after it is killed.
type Respawner struct {
	engine.BaseComponent
	Delay     float32
	Scheduler weapon.Scheduler

	OnRespawned engine.Event

	health  *components.Health
	pending *engine.Task
}

func (r *Respawner) Init() error {
	r.health = engine.GetComponentInChildren[*components.Health](r.GetGameObject())
	if r.health == nil {
		return fmt.Errorf("respawner: health: %w", components.ErrMissingDependency)
	}
	if r.Scheduler == nil {
		return fmt.Errorf("respawner: scheduler: %w", components.ErrMissingDependency)
	}
	r.health.OnKilled.AddListener(func(components.HealthEvent) {
		r.pending.Cancel()
		r.pending = r.Scheduler.Schedule(r.Delay, r.respawn)
	})
	return nil
}

func (r *Respawner) respawn() {
	r.pending = nil
	r.health.Revive(r.health.Max())
	r.OnRespawned.Invoke()
}

// Pending reports whether a revive is scheduled.
func (r *Respawner) Pending() bool {
	return r.pending.Active()
}

func (r *Respawner) Shutdown() {
	r.pending.Cancel()
	r.pending = nil
}

// TypeName implements engine.Serializable
func (r *Respawner) TypeName() string {
	return "Respawner"
}

// Serialize implements engine.Serializable
func (r *Respawner) Serialize() map[string]any {
	return map[string]any{
		"type":  "Respawner",
		"delay": r.Delay,
	}
}

// Deserialize implements engine.Serializable
func (r *Respawner) Deserialize(data map[string]any) {
	if v, ok := engine.PropFloat(data, "delay"); ok {
		r.Delay = v
	}
}
