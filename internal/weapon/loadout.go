package weapon

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingLoadout means a weapon was initialized without a loadout.
	ErrMissingLoadout = errors.New("weapon has no loadout")
	// ErrInvalidLoadout wraps every loadout validation failure.
	ErrInvalidLoadout = errors.New("invalid loadout")
)

// Loadout is the static description of a weapon type. Weapons share it by
// pointer and never modify it.
type Loadout struct {
	Name              string  `yaml:"name"`
	Damage            int     `yaml:"damage"`
	MaxAmmo           int     `yaml:"max_ammo"`
	AmmoPerClip       int     `yaml:"ammo_per_clip"`
	InitialClips      int     `yaml:"initial_clips"`
	FireRate          float32 `yaml:"fire_rate"`   // seconds between automatic shots
	ReloadTime        float32 `yaml:"reload_time"` // seconds
	BaseSpread        float32 `yaml:"base_spread"`
	SpreadIncrement   float32 `yaml:"spread_increment"`
	MaxSpread         float32 `yaml:"max_spread"`
	AimSpreadModifier float32 `yaml:"aim_spread_modifier"`
	Range             float32 `yaml:"range"`
	ImpactForce       float32 `yaml:"impact_force"`
}

// DefaultLoadout is the stock rifle.
func DefaultLoadout() Loadout {
	return Loadout{
		Name:              "rifle",
		Damage:            20,
		MaxAmmo:           150,
		AmmoPerClip:       30,
		InitialClips:      3,
		FireRate:          0.1,
		ReloadTime:        1.0,
		BaseSpread:        1.0,
		SpreadIncrement:   0.25,
		MaxSpread:         5.0,
		AimSpreadModifier: 0.25,
		Range:             100,
		ImpactForce:       2,
	}
}

// Validate reports every problem with the loadout at once. Each error
// matches ErrInvalidLoadout.
func (l *Loadout) Validate() error {
	if l == nil {
		return ErrMissingLoadout
	}
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidLoadout}, args...)...))
		}
	}

	check(l.Damage >= 0, "damage %d is negative", l.Damage)
	check(l.AmmoPerClip > 0, "ammo per clip %d must be positive", l.AmmoPerClip)
	check(l.MaxAmmo >= 0, "max ammo %d is negative", l.MaxAmmo)
	check(l.InitialClips >= 0, "initial clips %d is negative", l.InitialClips)
	check(l.FireRate >= 0, "fire rate %v is negative", l.FireRate)
	check(l.ReloadTime >= 0, "reload time %v is negative", l.ReloadTime)
	check(l.BaseSpread >= 0, "base spread %v is negative", l.BaseSpread)
	check(l.SpreadIncrement >= 0, "spread increment %v is negative", l.SpreadIncrement)
	check(l.MaxSpread >= l.BaseSpread, "max spread %v below base spread %v", l.MaxSpread, l.BaseSpread)
	check(l.AimSpreadModifier > 0, "aim spread modifier %v must be positive", l.AimSpreadModifier)
	check(l.Range > 0, "range %v must be positive", l.Range)

	return errors.Join(errs...)
}
