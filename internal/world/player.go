package world

import (
	"errors"
	"fmt"

	"tpshooter/internal/components"
	"tpshooter/internal/config"
	"tpshooter/internal/engine"
	"tpshooter/internal/scripts"
	"tpshooter/internal/weapon"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrPlayerExists = errors.New("player already spawned")

// Gun placement relative to the player's feet.
var (
	gunOffset    = rl.Vector3{X: 0.35, Y: 1.35, Z: 0.3}
	muzzleOffset = rl.Vector3{Z: 0.6}
)

// Player groups the components of the spawned player prefab so drivers can
// feed input without searching the hierarchy.
type Player struct {
	Object     *engine.GameObject
	Pivot      *engine.GameObject
	Gun        *engine.GameObject
	Muzzle     *engine.GameObject
	Camera     *components.Camera
	Health     *components.Health
	Controller *components.CharacterController
	Look       *components.Look
	Locomotion *components.Locomotion
	Shooter    *scripts.ShooterController
	Weapon     *weapon.HitscanWeapon
}

// SpawnPlayer builds the player prefab from cfg and adds it to the world.
// Component order matters: look runs before locomotion so movement uses
// this tick's camera yaw.
func (w *World) SpawnPlayer(cfg *config.Config) (*Player, error) {
	if w.Player != nil {
		return nil, ErrPlayerExists
	}
	loadout, err := cfg.PlayerLoadout()
	if err != nil {
		return nil, err
	}
	mode, err := scripts.ParseFireMode(cfg.Player.FireMode)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	p := &Player{
		Object: engine.NewGameObject("Player"),
		Pivot:  engine.NewGameObject("CameraPivot"),
		Gun:    engine.NewGameObject("Gun"),
		Muzzle: engine.NewGameObject("Muzzle"),
	}
	p.Object.Tags = []string{"player"}
	p.Object.Layer = cfg.Layers.Player
	p.Object.Transform.Position = rl.Vector3{X: cfg.Player.Spawn[0], Y: cfg.Player.Spawn[1], Z: cfg.Player.Spawn[2]}
	p.Pivot.Transform.Position = rl.Vector3{Y: cfg.Look.PivotHeight}
	p.Gun.Transform.Position = gunOffset
	p.Muzzle.Transform.Position = muzzleOffset

	p.Health = components.NewHealth(cfg.Player.Health)

	p.Controller = components.NewCharacterController()
	p.Controller.CollisionMask = cfg.CollisionMask()

	p.Camera = components.NewCamera()
	p.Camera.IsMain = true
	p.Pivot.AddComponent(p.Camera)

	p.Look = components.NewLook(cfg.Look)
	p.Look.Target = p.Pivot

	p.Locomotion = components.NewLocomotion(cfg.Locomotion)
	p.Locomotion.Camera = p.Look
	p.Locomotion.Mover = p.Controller

	p.Weapon = weapon.NewHitscanWeapon(loadout)
	p.Weapon.HitMask = cfg.HitMask()
	p.Weapon.Aim = p.Look
	p.Weapon.Muzzle = p.Muzzle

	p.Shooter = scripts.NewShooterController(mode)
	p.Shooter.Weapon = p.Weapon

	p.Object.AddComponent(p.Health)
	p.Object.AddComponent(p.Controller)
	p.Object.AddComponent(p.Look)
	p.Object.AddComponent(p.Locomotion)
	p.Object.AddComponent(p.Shooter)
	p.Gun.AddComponent(p.Weapon)

	p.Gun.AddChild(p.Muzzle)
	p.Object.AddChild(p.Pivot)
	p.Object.AddChild(p.Gun)

	if err := w.Add(p.Object); err != nil {
		w.Scene.RemoveGameObject(p.Object)
		w.Physics.RemoveObject(p.Object)
		return nil, fmt.Errorf("spawn player: %w", err)
	}
	w.Player = p
	w.Logger.Debug("player spawned", "id", p.Object.ID, "loadout", loadout.Name, "mode", mode.String())
	return p, nil
}
