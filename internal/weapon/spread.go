package weapon

import (
	"math"
	"math/rand/v2"

	"tpshooter/internal/engine"
	"tpshooter/internal/mathutil"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// DefaultDecayDelay is how long after the last shot the cone starts to
	// shrink, in seconds.
	DefaultDecayDelay = 2.0
	// DefaultDecayInterval is the time between decay steps.
	DefaultDecayInterval = 0.1
)

// Scheduler is the slice of engine.Scheduler the spread model needs.
type Scheduler interface {
	Schedule(delay float32, fn func()) *engine.Task
	Repeat(interval float32, fn func()) *engine.Task
}

// SpreadModel is a weapon's accuracy cone. Every shot widens it by the
// loadout's increment up to MaxSpread; after DecayDelay without shots it
// narrows by one increment every DecayInterval until it is back at
// BaseSpread. The cone size is kept within [BaseSpread, MaxSpread].
type SpreadModel struct {
	Base        float32
	Increment   float32
	Max         float32
	AimModifier float32

	DecayDelay    float32
	DecayInterval float32

	scheduler Scheduler
	rng       *rand.Rand
	current   float32
	aiming    bool
	decay     *engine.Task
}

func NewSpreadModel(l *Loadout, scheduler Scheduler, rng *rand.Rand) *SpreadModel {
	s := &SpreadModel{
		Base:          l.BaseSpread,
		Increment:     l.SpreadIncrement,
		Max:           l.MaxSpread,
		AimModifier:   l.AimSpreadModifier,
		DecayDelay:    DefaultDecayDelay,
		DecayInterval: DefaultDecayInterval,
		scheduler:     scheduler,
		rng:           rng,
	}
	s.current = s.Base
	return s
}

// Current is the cone size the next shot will be drawn from, before the
// aiming modifier.
func (s *SpreadModel) Current() float32 {
	return s.current
}

// Effective is Current with the aiming modifier applied.
func (s *SpreadModel) Effective() float32 {
	if s.aiming {
		return s.current * s.AimModifier
	}
	return s.current
}

func (s *SpreadModel) SetAiming(aiming bool) {
	s.aiming = aiming
}

func (s *SpreadModel) Aiming() bool {
	return s.aiming
}

// SampleDirection returns a unit direction inside the cone around forward:
// a uniform point in a disk of radius Effective(), placed rangeDist units
// down forward. The cone then grows by one increment.
func (s *SpreadModel) SampleDirection(forward rl.Vector3, rangeDist float32) rl.Vector3 {
	forward = rl.Vector3Normalize(forward)
	right, up := aimBasis(forward)

	dx, dy := s.unitDisk()
	radius := s.Effective()
	offset := rl.Vector3Add(rl.Vector3Scale(right, dx*radius), rl.Vector3Scale(up, dy*radius))
	dir := rl.Vector3Normalize(rl.Vector3Add(rl.Vector3Scale(forward, rangeDist), offset))

	s.current = mathutil.Clamp(s.current+s.Increment, s.Base, s.Max)
	return dir
}

func (s *SpreadModel) unitDisk() (float32, float32) {
	if s.rng == nil {
		return 0, 0
	}
	r := math.Sqrt(s.rng.Float64())
	theta := 2 * math.Pi * s.rng.Float64()
	return float32(r * math.Cos(theta)), float32(r * math.Sin(theta))
}

// aimBasis returns the right and up axes of an aim frame looking down
// forward with world +Y up.
func aimBasis(forward rl.Vector3) (right, up rl.Vector3) {
	worldUp := rl.Vector3{Y: 1}
	right = rl.Vector3CrossProduct(forward, worldUp)
	if rl.Vector3Length(right) < 1e-5 {
		right = rl.Vector3{X: 1}
	}
	right = rl.Vector3Normalize(right)
	up = rl.Vector3CrossProduct(right, forward)
	return right, up
}

// RestartDecay cancels any pending decay and starts a new one from the
// full delay.
func (s *SpreadModel) RestartDecay() {
	s.CancelDecay()
	if s.scheduler == nil {
		return
	}
	s.decay = s.scheduler.Schedule(s.DecayDelay, func() {
		if s.current <= s.Base {
			s.decay = nil
			return
		}
		s.decay = s.scheduler.Repeat(s.DecayInterval, s.decayStep)
	})
}

func (s *SpreadModel) decayStep() {
	s.current = mathutil.Clamp(s.current-s.Increment, s.Base, s.Max)
	if s.current <= s.Base {
		s.CancelDecay()
	}
}

// CancelDecay stops a pending decay, leaving the cone where it is.
func (s *SpreadModel) CancelDecay() {
	s.decay.Cancel()
	s.decay = nil
}

func (s *SpreadModel) DecayPending() bool {
	return s.decay.Active()
}

// Reset puts the cone back to BaseSpread with no decay pending.
func (s *SpreadModel) Reset() {
	s.CancelDecay()
	s.current = s.Base
}
