package weapon

import (
	"math"
	"math/rand/v2"
	"testing"

	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"pgregory.net/rapid"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func newTestSpread(sched *engine.Scheduler) *SpreadModel {
	l := DefaultLoadout()
	return NewSpreadModel(&l, sched, rand.New(rand.NewPCG(1, 2)))
}

func fireSpread(s *SpreadModel) rl.Vector3 {
	s.CancelDecay()
	dir := s.SampleDirection(rl.Vector3{Z: 1}, 100)
	s.RestartDecay()
	return dir
}

func TestSpreadStartsAtBase(t *testing.T) {
	s := newTestSpread(engine.NewScheduler())
	if s.Current() != 1.0 {
		t.Errorf("Expected base spread 1.0, got %v", s.Current())
	}
	if s.DecayPending() {
		t.Error("Expected no decay pending before firing")
	}
}

func TestSpreadGrowsPerShot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newTestSpread(engine.NewScheduler())
		n := rapid.IntRange(0, 40).Draw(t, "shots")
		for i := 0; i < n; i++ {
			fireSpread(s)
		}
		expected := min(s.Base+float32(n)*s.Increment, s.Max)
		if !approx(s.Current(), expected) {
			t.Fatalf("after %d shots expected %v, got %v", n, expected, s.Current())
		}
	})
}

func TestSpreadDecaysAfterDelay(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sched := engine.NewScheduler()
		s := newTestSpread(sched)
		shots := rapid.IntRange(1, 20).Draw(t, "shots")
		for i := 0; i < shots; i++ {
			fireSpread(s)
		}
		postFire := s.Current()

		k := rapid.IntRange(0, 25).Draw(t, "steps")
		sched.Advance(s.DecayDelay)
		for i := 0; i < k; i++ {
			sched.Advance(s.DecayInterval)
		}

		expected := max(s.Base, postFire-float32(k)*s.Increment)
		if !approx(s.Current(), expected) {
			t.Fatalf("after %d decay steps expected %v, got %v", k, expected, s.Current())
		}
		if s.Current() < s.Base || s.Current() > s.Max {
			t.Fatalf("spread %v outside [%v, %v]", s.Current(), s.Base, s.Max)
		}
	})
}

func TestSpreadDecayStopsAtBase(t *testing.T) {
	sched := engine.NewScheduler()
	s := newTestSpread(sched)
	fireSpread(s)
	fireSpread(s)

	sched.Advance(s.DecayDelay)
	if !s.DecayPending() {
		t.Fatal("Expected decay still pending while above base")
	}
	sched.Advance(s.DecayInterval * 2)

	if s.Current() != s.Base {
		t.Errorf("Expected spread back at base, got %v", s.Current())
	}
	if s.DecayPending() || sched.Pending() != 0 {
		t.Errorf("Expected decay finished, pending=%d", sched.Pending())
	}
}

func TestSpreadFiringRestartsDecay(t *testing.T) {
	sched := engine.NewScheduler()
	s := newTestSpread(sched)
	fireSpread(s)

	sched.Advance(1.5)
	fireSpread(s)
	sched.Advance(1.5)

	if s.Current() != s.Base+2*s.Increment {
		t.Errorf("Expected no decay 1.5s after the second shot, got %v", s.Current())
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected exactly one pending decay task, got %d", sched.Pending())
	}

	sched.Advance(0.6)
	if !approx(s.Current(), s.Base+s.Increment) {
		t.Errorf("Expected one decay step, got %v", s.Current())
	}
}

func TestSpreadDirectionWithinCone(t *testing.T) {
	s := newTestSpread(engine.NewScheduler())
	forward := rl.Vector3{X: 1}
	const rangeDist = 100

	for i := 0; i < 200; i++ {
		radius := s.Effective()
		dir := s.SampleDirection(forward, rangeDist)

		if !approx(rl.Vector3Length(dir), 1) {
			t.Fatalf("Expected unit direction, got length %v", rl.Vector3Length(dir))
		}
		limit := math.Atan(float64(radius)/rangeDist) + 1e-4
		angle := math.Acos(math.Min(1, float64(rl.Vector3DotProduct(dir, forward))))
		if angle > limit {
			t.Fatalf("Shot %d outside cone: angle %v > %v", i, angle, limit)
		}
	}
}

func TestSpreadAimingNarrowsCone(t *testing.T) {
	s := newTestSpread(engine.NewScheduler())
	s.SetAiming(true)
	if !approx(s.Effective(), s.Base*s.AimModifier) {
		t.Errorf("Expected aimed spread %v, got %v", s.Base*s.AimModifier, s.Effective())
	}
	s.SetAiming(false)
	if s.Effective() != s.Base {
		t.Errorf("Expected hip spread %v, got %v", s.Base, s.Effective())
	}
}

func TestSpreadWithoutRandomnessIsExact(t *testing.T) {
	l := DefaultLoadout()
	s := NewSpreadModel(&l, nil, nil)
	dir := s.SampleDirection(rl.Vector3{Y: 1}, 100)
	if !approx(dir.Y, 1) {
		t.Errorf("Expected straight up, got %+v", dir)
	}
}

func TestSpreadReset(t *testing.T) {
	sched := engine.NewScheduler()
	s := newTestSpread(sched)
	fireSpread(s)
	s.Reset()

	if s.Current() != s.Base || s.DecayPending() {
		t.Errorf("Expected reset to base with no decay, got %v pending=%v", s.Current(), s.DecayPending())
	}
}
