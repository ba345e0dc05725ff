package world

import (
	"fmt"
	"log/slog"

	"tpshooter/internal/components"
	"tpshooter/internal/engine"
	"tpshooter/internal/physics"
	"tpshooter/internal/scripts"
	"tpshooter/internal/weapon"

	"github.com/google/uuid"
)

// TargetTag marks scene objects the range reports on.
const TargetTag = "target"

// World owns a scene together with the physics queries and the scheduler
// its components run against. Drivers call Tick once per simulation step.
type World struct {
	Scene     *engine.Scene
	Physics   *physics.World
	Scheduler *engine.Scheduler
	Logger    *slog.Logger

	Player *Player

	started bool
}

func New(logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	return &World{
		Scene:     engine.NewScene("Main"),
		Physics:   physics.NewWorld(),
		Scheduler: engine.NewScheduler(),
		Logger:    logger,
	}
}

// Add puts g in the scene and registers its colliders. Objects added after
// Init are wired and initialized immediately.
func (w *World) Add(g *engine.GameObject) error {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	if !w.started {
		return nil
	}
	w.wire(g)
	return g.Init()
}

// Remove shuts g down and takes it out of the scene and the physics world.
func (w *World) Remove(g *engine.GameObject) {
	g.Shutdown()
	w.Physics.RemoveObject(g)
	w.Scene.RemoveGameObject(g)
}

// Init hands every component the collaborators it needs, then initializes
// the scene. All failures are reported together.
func (w *World) Init() error {
	if w.started {
		return nil
	}
	for _, g := range w.Scene.GameObjects {
		w.wire(g)
	}
	if err := w.Scene.Init(); err != nil {
		return fmt.Errorf("init scene %s: %w", w.Scene.Name, err)
	}
	w.started = true
	w.Logger.Info("world ready",
		"objects", len(w.Scene.GameObjects),
		"colliders", w.Physics.Len(),
		"targets", len(w.Targets()))
	return nil
}

// wire fills in dependencies that were left unset.
func (w *World) wire(root *engine.GameObject) {
	root.Walk(func(g *engine.GameObject) {
		for _, c := range g.Components() {
			switch c := c.(type) {
			case *components.Locomotion:
				if c.Physics == nil {
					c.Physics = w.Physics
				}
				if c.Logger == nil {
					c.Logger = w.Logger
				}
			case *components.CharacterController:
				if c.World == nil {
					c.World = w.Physics
				}
			case *weapon.HitscanWeapon:
				if c.Physics == nil {
					c.Physics = w.Physics
				}
				if c.Scheduler == nil {
					c.Scheduler = w.Scheduler
				}
				if c.Logger == nil {
					c.Logger = w.Logger
				}
			case *scripts.ShooterController:
				if c.Scheduler == nil {
					c.Scheduler = w.Scheduler
				}
				if c.Logger == nil {
					c.Logger = w.Logger
				}
			case *scripts.Respawner:
				if c.Scheduler == nil {
					c.Scheduler = w.Scheduler
				}
			}
		}
	})
}

// Tick advances components first, then timers due within the step.
func (w *World) Tick(deltaTime float32) {
	if !w.started {
		return
	}
	w.Scene.Tick(deltaTime)
	w.Scheduler.Advance(deltaTime)
}

func (w *World) Shutdown() {
	if !w.started {
		return
	}
	w.Scene.Shutdown()
	w.started = false
}

// Targets returns every object tagged as a target.
func (w *World) Targets() []*engine.GameObject {
	return w.Scene.FindByTag(TargetTag)
}

// TargetHealth returns the Health of every target that has one, keyed by
// object ID since scene names need not be unique.
func (w *World) TargetHealth() map[uuid.UUID]*components.Health {
	out := make(map[uuid.UUID]*components.Health)
	for _, t := range w.Targets() {
		if h := engine.GetComponentInChildren[*components.Health](t); h != nil {
			out[t.ID] = h
		}
	}
	return out
}
