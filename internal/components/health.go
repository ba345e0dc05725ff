package components

import (
	"math"

	"tpshooter/internal/engine"
)

func init() {
	engine.RegisterComponent("Health", func() engine.Serializable {
		return NewHealth(100)
	})
}

// HealthEvent is the payload of every Health notification. Amount is the
// absolute heal or damage requested; zero for max changes.
type HealthEvent struct {
	Current int
	Max     int
	Amount  int
}

// Health is a clamped hit-point counter. Once damage drives the ratio to
// zero it is dead: Heal and Damage are ignored until Revive.
type Health struct {
	engine.BaseComponent

	current int
	max     int
	dead    bool

	OnUpdated engine.EventWithArg[HealthEvent]
	OnHealed  engine.EventWithArg[HealthEvent]
	OnDamaged engine.EventWithArg[HealthEvent]
	OnKilled  engine.EventWithArg[HealthEvent]
}

// NewHealth returns a full Health with the given max (coerced to >= 1).
func NewHealth(max int) *Health {
	if max < 1 {
		max = 1
	}
	return &Health{current: max, max: max}
}

func (h *Health) Current() int { return h.current }

func (h *Health) Max() int { return h.max }

func (h *Health) Dead() bool { return h.dead }

// Ratio returns current/max, or 0 when max is unset.
func (h *Health) Ratio() float32 {
	if h.max == 0 {
		return 0
	}
	return float32(h.current) / float32(h.max)
}

// SetCurrent clamps v into [0, max] without raising events.
func (h *Health) SetCurrent(v int) {
	h.current = clampInt(v, 0, h.max)
}

func (h *Health) Heal(amount int) {
	if h.dead {
		return
	}
	amount = absInt(amount)
	h.SetCurrent(h.current + amount)

	ev := h.event(amount)
	h.OnHealed.Invoke(ev)
	h.OnUpdated.Invoke(ev)
}

func (h *Health) Damage(amount int) {
	if h.dead {
		return
	}
	amount = absInt(amount)
	h.SetCurrent(h.current - amount)

	ev := h.event(amount)
	if h.Ratio() <= 0 {
		h.dead = true
		h.OnKilled.Invoke(ev)
	} else {
		h.OnDamaged.Invoke(ev)
	}
	h.OnUpdated.Invoke(ev)
}

// Kill deals damage equal to max.
func (h *Health) Kill() {
	h.Damage(h.max)
}

// SetMax changes max (coerced to >= 1) and rescales current by the old
// ratio. Current never drops below its previous absolute value unless the
// new max forces it.
func (h *Health) SetMax(newMax int) {
	if newMax < 1 {
		newMax = 1
	}
	previous := h.current
	adjusted := float64(newMax) * float64(h.Ratio())

	h.max = newMax
	v := math.Max(float64(previous), adjusted)
	v = math.Min(math.Max(v, 0), float64(newMax))
	h.current = int(math.RoundToEven(v))

	h.OnUpdated.Invoke(h.event(0))
}

// Revive leaves the dead state with the given hit points (at least 1).
// No-op while alive.
func (h *Health) Revive(amount int) {
	if !h.dead {
		return
	}
	h.dead = false
	h.SetCurrent(max(absInt(amount), 1))
	h.OnUpdated.Invoke(h.event(amount))
}

func (h *Health) event(amount int) HealthEvent {
	return HealthEvent{Current: h.current, Max: h.max, Amount: amount}
}

// TypeName implements engine.Serializable
func (h *Health) TypeName() string {
	return "Health"
}

// Serialize implements engine.Serializable
func (h *Health) Serialize() map[string]any {
	return map[string]any{
		"type":    "Health",
		"max":     h.max,
		"current": h.current,
	}
}

// Deserialize implements engine.Serializable. A missing current means full.
func (h *Health) Deserialize(data map[string]any) {
	if v, ok := engine.PropFloat(data, "max"); ok {
		h.max = max(int(v), 1)
		h.current = h.max
	}
	if v, ok := engine.PropFloat(data, "current"); ok {
		h.SetCurrent(int(v))
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
