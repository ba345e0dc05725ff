package weapon

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"tpshooter/internal/components"
	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var _ Weapon = (*HitscanWeapon)(nil)

// HitscanWeapon resolves each shot instantly with two rays: one from the
// aim origin along the spread direction, and a confirming one from the
// muzzle to the first ray's hit point. Only the muzzle ray deals damage.
type HitscanWeapon struct {
	engine.BaseComponent
	Events

	Data      *Loadout
	Physics   engine.PhysicsQuery
	Scheduler Scheduler
	HitMask   engine.LayerMask

	// Aim defaults to the nearest AimProvider on the owner or its
	// ancestors. Muzzle defaults to the owner.
	Aim    engine.AimProvider
	Muzzle *engine.GameObject
	Rand   *rand.Rand
	Logger *slog.Logger

	ammoInClip  int
	reserveAmmo int
	spread      *SpreadModel
}

func NewHitscanWeapon(data *Loadout) *HitscanWeapon {
	return &HitscanWeapon{
		Data:    data,
		HitMask: engine.AllLayers,
	}
}

// Init checks the loadout and collaborators, then equips the weapon. A
// weapon that fails here must not be used.
func (w *HitscanWeapon) Init() error {
	name := "weapon"
	if g := w.GetGameObject(); g != nil {
		name = g.Name
	}
	if w.Data == nil {
		return fmt.Errorf("%s: %w", name, ErrMissingLoadout)
	}
	if err := w.Data.Validate(); err != nil {
		return fmt.Errorf("%s: loadout %q: %w", name, w.Data.Name, err)
	}
	if w.Physics == nil {
		return fmt.Errorf("%s: physics query: %w", name, components.ErrMissingDependency)
	}
	if w.Scheduler == nil {
		return fmt.Errorf("%s: scheduler: %w", name, components.ErrMissingDependency)
	}
	if w.Aim == nil {
		w.Aim = findAim(w.GetGameObject())
	}
	if w.Aim == nil {
		return fmt.Errorf("%s: aim provider: %w", name, components.ErrMissingDependency)
	}
	if w.Rand == nil {
		w.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if w.Logger == nil {
		w.Logger = slog.Default()
	}
	w.Logger = w.Logger.With("component", "weapon", "loadout", w.Data.Name)

	w.spread = NewSpreadModel(w.Data, w.Scheduler, w.Rand)
	w.Equip()
	return nil
}

func findAim(g *engine.GameObject) engine.AimProvider {
	for obj := g; obj != nil; obj = obj.Parent {
		if aim := engine.GetComponent[engine.AimProvider](obj); aim != nil {
			return aim
		}
	}
	return nil
}

// Equip resets the runtime state: a full clip, InitialClips clips in
// reserve and a settled spread cone. The reserve never starts above
// MaxAmmo, even when AmmoPerClip*InitialClips is larger; GiveAmmo applies
// the same ceiling.
func (w *HitscanWeapon) Equip() {
	w.ammoInClip = w.Data.AmmoPerClip
	w.reserveAmmo = min(w.Data.AmmoPerClip*w.Data.InitialClips, w.Data.MaxAmmo)
	w.spread.Reset()
}

func (w *HitscanWeapon) Shutdown() {
	if w.spread != nil {
		w.spread.CancelDecay()
	}
}

// FireWeapon consumes a round and resolves the shot. With an empty clip
// nothing is consumed, OnOutOfAmmo fires and ok is false.
func (w *HitscanWeapon) FireWeapon() (shot Shot, ok bool) {
	if w.ammoInClip <= 0 {
		w.Logger.Debug("out of ammo", "reserve", w.reserveAmmo)
		w.OnOutOfAmmo.Invoke()
		return Shot{}, false
	}

	w.spread.CancelDecay()
	w.ammoInClip--

	forward := w.Aim.AimDirection()
	shot.Origin = w.Aim.AimOrigin()
	shot.Spread = w.spread.Effective()
	shot.Direction = w.spread.SampleDirection(forward, w.Data.Range)

	if aimHit, hit := w.Physics.RaycastFirst(shot.Origin, shot.Direction, w.Data.Range, w.HitMask, true); hit {
		muzzle := w.muzzlePosition()
		toTarget := rl.Vector3Subtract(aimHit.Point, muzzle)
		if rl.Vector3Length(toTarget) > 0 {
			if muzzleHit, hit := w.Physics.RaycastFirst(muzzle, toTarget, w.Data.Range, w.HitMask, true); hit {
				w.applyHit(&shot, muzzleHit, forward)
			}
		}
	}

	w.spread.RestartDecay()
	w.OnFired.Invoke(shot)
	return shot, true
}

func (w *HitscanWeapon) applyHit(shot *Shot, hit engine.RaycastHit, forward rl.Vector3) {
	shot.Hit = true
	shot.Point = hit.Point
	shot.Target = hit.GameObject
	if hit.GameObject == nil {
		return
	}
	shot.TargetID = hit.GameObject.ID

	health := engine.GetComponentInChildren[*components.Health](hit.GameObject)
	if health == nil {
		return
	}
	wasDead := health.Dead()
	health.Damage(w.Data.Damage)
	shot.Damaged = !wasDead
	shot.Killed = !wasDead && health.Dead()

	if rb := engine.GetComponent[*components.Rigidbody](hit.GameObject); rb != nil {
		rb.AddForce(rl.Vector3Scale(forward, w.Data.ImpactForce))
	}

	w.Logger.Debug("hit",
		"target", hit.GameObject.Name,
		"id", hit.GameObject.ID,
		"health", health.Current(),
		"killed", shot.Killed)
}

func (w *HitscanWeapon) muzzlePosition() rl.Vector3 {
	if w.Muzzle != nil {
		return w.Muzzle.WorldPosition()
	}
	if g := w.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return w.Aim.AimOrigin()
}

// Reload moves min(AmmoPerClip-clip, reserve-clip) rounds from the reserve
// into the clip and returns how many moved. Nothing happens when that is
// not positive.
func (w *HitscanWeapon) Reload() int {
	delta := min(w.Data.AmmoPerClip-w.ammoInClip, w.reserveAmmo-w.ammoInClip)
	if delta <= 0 {
		return 0
	}
	w.ammoInClip += delta
	w.reserveAmmo -= delta
	w.Logger.Debug("reloaded", "rounds", delta, "clip", w.ammoInClip, "reserve", w.reserveAmmo)
	w.OnReloaded.Invoke(delta)
	return delta
}

// GiveAmmo adds to the reserve, clamped to [0, MaxAmmo].
func (w *HitscanWeapon) GiveAmmo(amount int) {
	w.reserveAmmo = max(0, min(w.reserveAmmo+amount, w.Data.MaxAmmo))
}

func (w *HitscanWeapon) AmmoInClip() int { return w.ammoInClip }

func (w *HitscanWeapon) ReserveAmmo() int { return w.reserveAmmo }

func (w *HitscanWeapon) Loadout() *Loadout { return w.Data }

func (w *HitscanWeapon) SetAiming(aiming bool) { w.spread.SetAiming(aiming) }

func (w *HitscanWeapon) Spread() *SpreadModel { return w.spread }

func (w *HitscanWeapon) Notifications() *Events { return &w.Events }
