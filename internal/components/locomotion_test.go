package components

import (
	"errors"
	"math"
	"testing"

	"tpshooter/internal/engine"
	"tpshooter/internal/engine/mocks"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/mock/gomock"
)

type fixedYaw float32

func (y fixedYaw) OrientationYaw() float32 { return float32(y) }

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func newTestLocomotion(t *testing.T, grounded bool) (*Locomotion, *engine.GameObject) {
	t.Helper()
	ctrl := gomock.NewController(t)
	physics := mocks.NewMockPhysicsQuery(ctrl)
	physics.EXPECT().
		OverlapSphere(gomock.Any(), gomock.Any(), gomock.Any(), true).
		Return(grounded).
		AnyTimes()

	player := engine.NewGameObject("Player")
	player.AddComponent(NewCharacterController())
	loco := NewLocomotion(DefaultLocomotionSettings())
	loco.Physics = physics
	player.AddComponent(loco)

	if err := player.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return loco, player
}

func TestLocomotionDerivesJumpPhysics(t *testing.T) {
	loco, _ := newTestLocomotion(t, true)

	if !near(loco.Gravity(), -7.8125) {
		t.Errorf("Expected gravity -7.8125, got %v", loco.Gravity())
	}
	if !near(loco.JumpForce(), 6.25) {
		t.Errorf("Expected jump force 6.25, got %v", loco.JumpForce())
	}
}

func TestLocomotionInitErrors(t *testing.T) {
	t.Run("no physics", func(t *testing.T) {
		loco := NewLocomotion(DefaultLocomotionSettings())
		loco.Mover = NewCharacterController()
		err := loco.Init()
		if !errors.Is(err, ErrMissingDependency) {
			t.Errorf("Expected ErrMissingDependency, got %v", err)
		}
	})

	t.Run("no mover", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		obj := engine.NewGameObject("Bare")
		loco := NewLocomotion(DefaultLocomotionSettings())
		loco.Physics = mocks.NewMockPhysicsQuery(ctrl)
		obj.AddComponent(loco)
		if err := obj.Init(); !errors.Is(err, ErrMissingDependency) {
			t.Errorf("Expected ErrMissingDependency, got %v", err)
		}
	})

	t.Run("zero time to apex", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		settings := DefaultLocomotionSettings()
		settings.TimeToApex = 0
		loco := NewLocomotion(settings)
		loco.Physics = mocks.NewMockPhysicsQuery(ctrl)
		loco.Mover = NewCharacterController()
		if err := loco.Init(); err == nil {
			t.Error("Expected error for zero time to apex")
		}
	})
}

func TestLocomotionGroundedZeroesFall(t *testing.T) {
	loco, player := newTestLocomotion(t, true)
	start := player.Transform.Position

	loco.Tick(1.0 / 60)

	if !loco.Grounded() {
		t.Error("Expected grounded")
	}
	if loco.VerticalVelocity() != 0 {
		t.Errorf("Expected vertical velocity 0 after landing, got %v", loco.VerticalVelocity())
	}
	if player.Transform.Position != start {
		t.Errorf("Expected no motion with zero input, got %+v", player.Transform.Position)
	}
}

func TestLocomotionFalls(t *testing.T) {
	loco, player := newTestLocomotion(t, false)
	dt := float32(0.1)

	loco.Tick(dt)

	expected := loco.Gravity() * dt
	if !near(loco.VerticalVelocity(), expected) {
		t.Errorf("Expected vertical velocity %v, got %v", expected, loco.VerticalVelocity())
	}
	if !near(player.Transform.Position.Y, expected*dt) {
		t.Errorf("Expected Y %v, got %v", expected*dt, player.Transform.Position.Y)
	}
}

func TestLocomotionTerminalVelocity(t *testing.T) {
	loco, _ := newTestLocomotion(t, false)
	for i := 0; i < 1000; i++ {
		loco.Tick(0.05)
	}
	limit := loco.Settings.TerminalVelocity + loco.Gravity()*0.05
	if loco.VerticalVelocity() < limit {
		t.Errorf("Expected fall speed capped near %v, got %v", limit, loco.VerticalVelocity())
	}
}

func TestLocomotionJump(t *testing.T) {
	loco, _ := newTestLocomotion(t, true)
	jumps := 0
	loco.OnJumped.AddListener(func() { jumps++ })

	if loco.Jump() {
		t.Error("Expected jump to fail before the first ground check")
	}

	loco.Tick(1.0 / 60)
	if !loco.Jump() {
		t.Fatal("Expected jump to succeed when grounded")
	}
	if loco.Grounded() {
		t.Error("Expected grounded cleared by jump")
	}
	if loco.VerticalVelocity() != loco.JumpForce() {
		t.Errorf("Expected vertical velocity %v, got %v", loco.JumpForce(), loco.VerticalVelocity())
	}
	if loco.Jump() {
		t.Error("Expected second jump in the air to fail")
	}
	if jumps != 1 {
		t.Errorf("Expected 1 jump event, got %d", jumps)
	}
}

func TestLocomotionGroundedChangedEvent(t *testing.T) {
	loco, _ := newTestLocomotion(t, true)
	var changes []bool
	loco.OnGroundedChanged.AddListener(func(g bool) { changes = append(changes, g) })

	loco.Tick(1.0 / 60)
	loco.Tick(1.0 / 60)
	loco.Jump()

	if len(changes) != 2 || !changes[0] || changes[1] {
		t.Errorf("Expected [true false], got %v", changes)
	}
}

func TestLocomotionMovesRelativeToCamera(t *testing.T) {
	loco, player := newTestLocomotion(t, true)
	loco.Camera = fixedYaw(90)
	loco.SetMoveInput(rl.Vector2{X: 0, Y: 1})

	dt := float32(0.5)
	loco.Tick(dt)

	pos := player.Transform.Position
	if !near(pos.X, loco.Settings.WalkSpeed*dt) || !near(pos.Z, 0) {
		t.Errorf("Expected to walk along +X, got %+v", pos)
	}
	if !near(loco.TargetYaw(), 90) {
		t.Errorf("Expected target yaw 90, got %v", loco.TargetYaw())
	}
	if player.Transform.Rotation.Y <= 0 || player.Transform.Rotation.Y > 90 {
		t.Errorf("Expected facing to turn toward 90, got %v", player.Transform.Rotation.Y)
	}
}

func TestLocomotionSprintSpeedReadback(t *testing.T) {
	loco, _ := newTestLocomotion(t, true)
	loco.SetMoveInput(rl.Vector2{X: 0.6, Y: 0.8})
	loco.SetSprinting(true)

	loco.Tick(1.0 / 60)
	loco.Tick(1.0 / 60)

	if !near(loco.Speed(), loco.Settings.RunSpeed) {
		t.Errorf("Expected speed %v, got %v", loco.Settings.RunSpeed, loco.Speed())
	}

	loco.SetMoveInput(rl.Vector2{})
	loco.Tick(1.0 / 60)
	if loco.Speed() != 0 {
		t.Errorf("Expected speed 0 without input, got %v", loco.Speed())
	}
}

func TestLocomotionGroundCheckQuery(t *testing.T) {
	tests := []struct {
		name     string
		override float32
		want     float32
	}{
		{"controller footprint", 0, 0.4},
		{"explicit override", 0.25, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			physics := mocks.NewMockPhysicsQuery(ctrl)

			settings := DefaultLocomotionSettings()
			settings.GroundMask = engine.LayerMask(1 << 1)
			settings.GroundRadius = tt.override

			player := engine.NewGameObject("Player")
			player.Transform.Position = rl.Vector3{X: 2, Y: 5, Z: -3}
			cc := NewCharacterController()
			player.AddComponent(cc)
			loco := NewLocomotion(settings)
			loco.Physics = physics
			player.AddComponent(loco)
			if err := player.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}

			center := rl.Vector3{X: 2, Y: 5 - settings.GroundOffset, Z: -3}
			physics.EXPECT().
				OverlapSphere(center, tt.want, settings.GroundMask, true).
				Return(true).
				Times(1)

			loco.groundCheck()

			if !loco.Grounded() {
				t.Error("Expected grounded from the overlap result")
			}
		})
	}
}

func TestLocomotionGroundRadiusFollowsController(t *testing.T) {
	ctrl := gomock.NewController(t)
	physics := mocks.NewMockPhysicsQuery(ctrl)

	player := engine.NewGameObject("Player")
	cc := NewCharacterController()
	cc.Radius = 0.6
	player.AddComponent(cc)
	loco := NewLocomotion(DefaultLocomotionSettings())
	loco.Physics = physics
	player.AddComponent(loco)
	if err := player.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	var radius float32
	physics.EXPECT().
		OverlapSphere(gomock.Any(), gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(_ rl.Vector3, r float32, _ engine.LayerMask, _ bool) bool {
			radius = r
			return false
		})

	loco.Tick(1.0 / 60)

	if radius != cc.Radius {
		t.Errorf("Expected ground probe radius %v, got %v", cc.Radius, radius)
	}
}

func TestLocomotionUsesRawInputMagnitude(t *testing.T) {
	loco, player := newTestLocomotion(t, true)
	loco.SetMoveInput(rl.Vector2{Y: 0.5})

	dt := float32(0.5)
	loco.Tick(dt)

	want := loco.Settings.WalkSpeed * 0.5 * dt
	if !near(player.Transform.Position.Z, want) {
		t.Errorf("Expected half-stick walk of %v, got %v", want, player.Transform.Position.Z)
	}
}
