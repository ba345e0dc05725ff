package scripts

import (
	"fmt"
	"log/slog"

	"tpshooter/internal/components"
	"tpshooter/internal/engine"
	"tpshooter/internal/weapon"
)

func init() {
	engine.RegisterComponent("ShooterController", func() engine.Serializable {
		return NewShooterController(FireModeAuto)
	})
}

type FireMode int

const (
	// FireModeSingle fires once per trigger press.
	FireModeSingle FireMode = iota
	// FireModeAuto keeps firing at the loadout's fire rate while held.
	FireModeAuto
)

func (m FireMode) String() string {
	if m == FireModeAuto {
		return "auto"
	}
	return "single"
}

// ParseFireMode accepts "auto" and "single".
func ParseFireMode(s string) (FireMode, error) {
	switch s {
	case "auto":
		return FireModeAuto, nil
	case "single", "semi":
		return FireModeSingle, nil
	}
	return FireModeSingle, fmt.Errorf("unknown fire mode %q", s)
}

// ShooterController turns trigger, reload and aim input into weapon calls.
// It owns the fire-rate cooldown and the timed reload; the weapon itself
// fires whenever asked.
type ShooterController struct {
	engine.BaseComponent
	Mode FireMode

	// Weapon defaults to the first weapon.Weapon on the owner or its
	// children.
	Weapon    weapon.Weapon
	Scheduler weapon.Scheduler
	Logger    *slog.Logger

	OnReloadStarted engine.Event

	held       bool
	pressed    bool
	autoHalted bool
	cooldown   float32
	reload     *engine.Task
}

func NewShooterController(mode FireMode) *ShooterController {
	return &ShooterController{Mode: mode}
}

func (s *ShooterController) Init() error {
	if s.Weapon == nil {
		s.Weapon = engine.GetComponentInChildren[weapon.Weapon](s.GetGameObject())
	}
	if s.Weapon == nil {
		return fmt.Errorf("shooter: weapon: %w", components.ErrMissingDependency)
	}
	if s.Scheduler == nil {
		return fmt.Errorf("shooter: scheduler: %w", components.ErrMissingDependency)
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	s.Logger = s.Logger.With("component", "shooter", "mode", s.Mode.String())
	return nil
}

// SetTrigger reports the trigger state for this frame.
func (s *ShooterController) SetTrigger(held bool) {
	if held && !s.held {
		s.pressed = true
		s.autoHalted = false
	}
	s.held = held
}

// SetAiming narrows the weapon's spread cone while held.
func (s *ShooterController) SetAiming(aiming bool) {
	s.Weapon.SetAiming(aiming)
}

// RequestReload starts a timed reload. It is refused while one is running,
// when the clip is full, or when there is no reserve.
func (s *ShooterController) RequestReload() bool {
	if s.Reloading() {
		return false
	}
	if s.Weapon.AmmoInClip() >= s.Weapon.Loadout().AmmoPerClip || s.Weapon.ReserveAmmo() <= 0 {
		return false
	}
	s.reload = s.Scheduler.Schedule(s.Weapon.Loadout().ReloadTime, func() {
		s.reload = nil
		s.Weapon.Reload()
	})
	s.Logger.Debug("reload started", "seconds", s.Weapon.Loadout().ReloadTime)
	s.OnReloadStarted.Invoke()
	return true
}

func (s *ShooterController) Reloading() bool {
	return s.reload.Active()
}

func (s *ShooterController) Tick(deltaTime float32) {
	if s.cooldown > 0 {
		s.cooldown -= deltaTime
	}
	pressed := s.pressed
	s.pressed = false

	if s.Reloading() {
		return
	}

	fire := pressed || (s.Mode == FireModeAuto && s.held && !s.autoHalted)
	if !fire || s.cooldown > 0 {
		return
	}

	if _, ok := s.Weapon.FireWeapon(); ok {
		s.cooldown = s.Weapon.Loadout().FireRate
		return
	}
	// An empty clip stops auto fire until the trigger is pressed again.
	s.autoHalted = true
}

func (s *ShooterController) Shutdown() {
	s.reload.Cancel()
	s.reload = nil
}

// TypeName implements engine.Serializable
func (s *ShooterController) TypeName() string {
	return "ShooterController"
}

// Serialize implements engine.Serializable
func (s *ShooterController) Serialize() map[string]any {
	return map[string]any{
		"type": "ShooterController",
		"mode": s.Mode.String(),
	}
}

// Deserialize implements engine.Serializable
func (s *ShooterController) Deserialize(data map[string]any) {
	if v, ok := data["mode"].(string); ok {
		if mode, err := ParseFireMode(v); err == nil {
			s.Mode = mode
		}
	}
}
