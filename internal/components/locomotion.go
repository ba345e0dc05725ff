package components

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"tpshooter/internal/engine"
	"tpshooter/internal/mathutil"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrMissingDependency is returned from Init when a component was not given
// a collaborator it cannot run without.
var ErrMissingDependency = errors.New("missing dependency")

// LocomotionSettings are the tunables of a Locomotion, loaded from the
// game config.
type LocomotionSettings struct {
	WalkSpeed          float32 `yaml:"walk_speed"`
	RunSpeed           float32 `yaml:"run_speed"`
	RotationSmoothTime float32 `yaml:"rotation_smooth_time"`
	JumpHeight         float32 `yaml:"jump_height"`
	TimeToApex         float32 `yaml:"time_to_apex"`
	GroundOffset       float32 `yaml:"ground_offset"`
	TerminalVelocity   float32 `yaml:"terminal_velocity"`

	// GroundRadius overrides the ground probe radius. Zero uses the
	// mover's footprint.
	GroundRadius float32 `yaml:"ground_radius,omitempty"`

	GroundMask engine.LayerMask `yaml:"-"`
}

func DefaultLocomotionSettings() LocomotionSettings {
	return LocomotionSettings{
		WalkSpeed:          3,
		RunSpeed:           8,
		RotationSmoothTime: 0.12,
		JumpHeight:         2.5,
		TimeToApex:         0.8,
		GroundOffset:       -0.14,
		TerminalVelocity:   -55,
		GroundMask:         engine.AllLayers,
	}
}

// Locomotion drives a character through a Mover: gravity and jumping on the
// vertical axis, camera-relative walking and running on the horizontal
// plane. Each tick runs gravity, then the ground check, then the move.
type Locomotion struct {
	engine.BaseComponent
	Settings LocomotionSettings

	Physics engine.PhysicsQuery
	Mover   Mover
	Camera  engine.YawProvider // nil means world-relative input
	Logger  *slog.Logger

	OnJumped          engine.Event
	OnGroundedChanged engine.EventWithArg[bool]

	gravity          float32
	jumpForce        float32
	verticalVelocity float32
	grounded         bool
	targetYaw        float32
	rotationVelocity float32
	currentSpeed     float32

	moveInput rl.Vector2
	sprinting bool
}

func NewLocomotion(settings LocomotionSettings) *Locomotion {
	return &Locomotion{Settings: settings}
}

// Init derives gravity and jump force from the jump height and time to
// apex. A Mover on the owner is picked up when none was set.
func (l *Locomotion) Init() error {
	if l.Logger == nil {
		l.Logger = slog.Default()
	}
	l.Logger = l.Logger.With("component", "locomotion")

	s := l.Settings
	if s.TimeToApex <= 0 {
		return fmt.Errorf("locomotion: time to apex must be positive, got %v", s.TimeToApex)
	}
	if l.Physics == nil {
		return fmt.Errorf("locomotion: physics query: %w", ErrMissingDependency)
	}
	if l.Mover == nil {
		l.Mover = engine.GetComponent[Mover](l.GetGameObject())
	}
	if l.Mover == nil {
		return fmt.Errorf("locomotion: mover: %w", ErrMissingDependency)
	}

	l.gravity = -2 * s.JumpHeight / (s.TimeToApex * s.TimeToApex)
	l.jumpForce = float32(math.Abs(float64(l.gravity))) * s.TimeToApex
	if g := l.GetGameObject(); g != nil {
		l.targetYaw = g.Transform.Rotation.Y
	}
	l.Logger.Debug("locomotion ready", "gravity", l.gravity, "jumpForce", l.jumpForce)
	return nil
}

// SetMoveInput sets the move stick: X strafes, Y goes forward. The length
// scales the target speed as given.
func (l *Locomotion) SetMoveInput(input rl.Vector2) {
	l.moveInput = input
}

func (l *Locomotion) SetSprinting(sprinting bool) {
	l.sprinting = sprinting
}

// Jump launches the character when grounded and reports whether it did.
func (l *Locomotion) Jump() bool {
	if !l.grounded {
		return false
	}
	l.verticalVelocity = l.jumpForce
	l.setGrounded(false)
	l.OnJumped.Invoke()
	return true
}

func (l *Locomotion) Tick(deltaTime float32) {
	if l.GetGameObject() == nil || l.Mover == nil {
		return
	}
	l.applyGravity(deltaTime)
	l.groundCheck()
	l.move(deltaTime)
}

func (l *Locomotion) applyGravity(deltaTime float32) {
	if l.verticalVelocity > l.Settings.TerminalVelocity {
		l.verticalVelocity += l.gravity * deltaTime
	}
}

func (l *Locomotion) groundCheck() {
	pos := l.GetGameObject().WorldPosition()
	center := rl.Vector3{X: pos.X, Y: pos.Y - l.Settings.GroundOffset, Z: pos.Z}
	grounded := l.Physics.OverlapSphere(center, l.groundRadius(), l.Settings.GroundMask, true)
	l.setGrounded(grounded)

	if l.grounded && l.verticalVelocity < 0 {
		l.verticalVelocity = 0
	}
}

func (l *Locomotion) groundRadius() float32 {
	if l.Settings.GroundRadius > 0 {
		return l.Settings.GroundRadius
	}
	return l.Mover.FootprintRadius()
}

func (l *Locomotion) setGrounded(grounded bool) {
	if grounded == l.grounded {
		return
	}
	l.grounded = grounded
	l.OnGroundedChanged.Invoke(grounded)
}

func (l *Locomotion) move(deltaTime float32) {
	g := l.GetGameObject()
	s := l.Settings

	magnitude := rl.Vector2Length(l.moveInput)

	targetSpeed := s.WalkSpeed
	if l.sprinting {
		targetSpeed = s.RunSpeed
	}
	targetSpeed *= magnitude

	if magnitude == 0 {
		l.currentSpeed = 0
	} else {
		v := l.Mover.Velocity()
		l.currentSpeed = float32(math.Hypot(float64(v.X), float64(v.Z)))

		dir := rl.Vector2Normalize(l.moveInput)
		var cameraYaw float32
		if l.Camera != nil {
			cameraYaw = l.Camera.OrientationYaw()
		}
		l.targetYaw = float32(math.Atan2(float64(dir.X), float64(dir.Y)))*rl.Rad2deg + cameraYaw

		facing := mathutil.SmoothDampAngle(g.Transform.Rotation.Y, l.targetYaw, &l.rotationVelocity, s.RotationSmoothTime, deltaTime)
		g.Transform.Rotation.Y = facing
	}

	forward := engine.DirectionFromAngles(l.targetYaw, 0)
	motion := rl.Vector3Scale(forward, targetSpeed)
	motion.Y += l.verticalVelocity
	l.Mover.Move(rl.Vector3Scale(motion, deltaTime), deltaTime)
}

func (l *Locomotion) Grounded() bool { return l.grounded }

func (l *Locomotion) VerticalVelocity() float32 { return l.verticalVelocity }

func (l *Locomotion) Gravity() float32 { return l.gravity }

func (l *Locomotion) JumpForce() float32 { return l.jumpForce }

// Speed is the horizontal speed the mover achieved on the last tick with
// input held, 0 otherwise.
func (l *Locomotion) Speed() float32 { return l.currentSpeed }

// TargetYaw is the yaw, in degrees, the character is walking toward.
func (l *Locomotion) TargetYaw() float32 { return l.targetYaw }
