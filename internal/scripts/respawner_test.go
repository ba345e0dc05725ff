package scripts

import (
	"errors"
	"math"
	"testing"

	"tpshooter/internal/components"
	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRespawnerRevivesAfterDelay(t *testing.T) {
	sched := engine.NewScheduler()
	target := engine.NewGameObject("Target")
	health := components.NewHealth(60)
	target.AddComponent(health)
	r := &Respawner{Delay: 3, Scheduler: sched}
	target.AddComponent(r)
	if err := target.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	respawned := 0
	r.OnRespawned.AddListener(func() { respawned++ })

	health.Kill()
	if !r.Pending() {
		t.Fatal("Expected a revive scheduled after the kill")
	}

	sched.Advance(2.9)
	if !health.Dead() {
		t.Error("Expected target still dead before the delay")
	}

	sched.Advance(0.1)
	if health.Dead() || health.Current() != 60 {
		t.Errorf("Expected full health after respawn, got %d dead=%v", health.Current(), health.Dead())
	}
	if respawned != 1 {
		t.Errorf("Expected 1 respawn event, got %d", respawned)
	}
}

func TestRespawnerRequiresHealth(t *testing.T) {
	obj := engine.NewGameObject("Crate")
	r := &Respawner{Delay: 1, Scheduler: engine.NewScheduler()}
	obj.AddComponent(r)

	if err := r.Init(); !errors.Is(err, components.ErrMissingDependency) {
		t.Errorf("Expected ErrMissingDependency, got %v", err)
	}
}

func TestPatrolSweepsAlongAxis(t *testing.T) {
	target := engine.NewGameObject("Target")
	target.Transform.Position = rl.Vector3{X: 5, Z: 20}
	p := &Patrol{Axis: rl.Vector3{X: 2}, Distance: 3, Speed: 1}
	target.AddComponent(p)
	_ = target.Init()

	p.Tick(math.Pi / 2)

	pos := target.Transform.Position
	if math.Abs(float64(pos.X-8)) > 1e-4 || pos.Z != 20 {
		t.Errorf("Expected peak at X 8, got %+v", pos)
	}
}

func TestPatrolHoldsWhenDead(t *testing.T) {
	target := engine.NewGameObject("Target")
	health := components.NewHealth(10)
	target.AddComponent(health)
	p := &Patrol{Axis: rl.Vector3{X: 1}, Distance: 3, Speed: 1}
	target.AddComponent(p)
	_ = target.Init()

	health.Kill()
	p.Tick(1)

	if target.Transform.Position != (rl.Vector3{}) {
		t.Errorf("Expected dead target to stay put, got %+v", target.Transform.Position)
	}
}

func TestPatrolDeserialize(t *testing.T) {
	c, err := engine.CreateComponent("Patrol", map[string]any{
		"axis":     []any{0.0, 0.0, 1.0},
		"distance": 4.0,
		"speed":    0.5,
	})
	if err != nil {
		t.Fatalf("CreateComponent failed: %v", err)
	}
	p := c.(*Patrol)
	if p.Axis != (rl.Vector3{Z: 1}) || p.Distance != 4 || p.Speed != 0.5 {
		t.Errorf("Unexpected patrol %+v", p)
	}
}
