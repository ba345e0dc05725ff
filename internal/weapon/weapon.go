package weapon

//go:generate go tool mockgen -destination=./mocks/weapon_mock.go -package=mocks . Weapon

import (
	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Weapon is what the trigger glue drives. HitscanWeapon is the only
// variant so far; burst or projectile weapons would implement the same
// surface.
type Weapon interface {
	FireWeapon() (Shot, bool)
	Reload() int
	GiveAmmo(amount int)
	AmmoInClip() int
	ReserveAmmo() int
	Loadout() *Loadout
	SetAiming(aiming bool)
	Notifications() *Events
}

// Events are the notifications every weapon raises.
type Events struct {
	OnFired     engine.EventWithArg[Shot]
	OnReloaded  engine.EventWithArg[int] // rounds moved into the clip
	OnOutOfAmmo engine.Event
}

// Shot describes one trigger pull that consumed a round.
type Shot struct {
	Origin    rl.Vector3
	Direction rl.Vector3
	Spread    float32 // cone size the shot was drawn from

	// Hit is set only when the muzzle ray confirmed the aim ray's hit.
	Hit      bool
	Point    rl.Vector3
	Target   *engine.GameObject
	TargetID uuid.UUID
	Damaged  bool
	Killed   bool
}
