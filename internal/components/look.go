package components

import (
	"math"

	"tpshooter/internal/engine"
	"tpshooter/internal/mathutil"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Device tells Look how a look delta was produced.
type Device int

const (
	// DevicePointer deltas are already per-frame (mouse, touch).
	DevicePointer Device = iota
	// DeviceAnalog values are stick deflections, scaled by elapsed time.
	DeviceAnalog
)

type LookSettings struct {
	Sensitivity   float32 `yaml:"sensitivity"`
	TurnSpeed     float32 `yaml:"turn_speed"`
	MinPitch      float32 `yaml:"min_pitch"`
	MaxPitch      float32 `yaml:"max_pitch"`
	LookThreshold float32 `yaml:"look_threshold"`
	AnalogRate    float32 `yaml:"analog_rate"` // degrees per second at full deflection
	PivotHeight   float32 `yaml:"pivot_height"`
	Distance      float32 `yaml:"distance"`
}

func DefaultLookSettings() LookSettings {
	return LookSettings{
		Sensitivity:   1,
		TurnSpeed:     1,
		MinPitch:      -35,
		MaxPitch:      70,
		LookThreshold: 0.01,
		AnalogRate:    120,
		PivotHeight:   1.6,
		Distance:      4,
	}
}

// Look accumulates look input into a yaw/pitch orbit around the owner. The
// resulting orientation is pushed to the follow Target every tick and, with
// AlignOwner, to the owner's own yaw.
type Look struct {
	engine.BaseComponent
	Settings LookSettings

	Target     *engine.GameObject // camera pivot; optional
	AlignOwner bool
	Locked     bool

	yaw   float32
	pitch float32

	input  rl.Vector2
	device Device
}

func NewLook(settings LookSettings) *Look {
	return &Look{Settings: settings}
}

func (l *Look) Init() error {
	if g := l.GetGameObject(); g != nil {
		l.yaw = g.Transform.Rotation.Y
	}
	return nil
}

// SetLookInput queues a look delta for the next tick. X turns, Y raises
// the pitch.
func (l *Look) SetLookInput(delta rl.Vector2, device Device) {
	l.input = delta
	l.device = device
}

func (l *Look) Tick(deltaTime float32) {
	input := l.input
	l.input = rl.Vector2{}

	sqr := input.X*input.X + input.Y*input.Y
	if sqr >= l.Settings.LookThreshold && !l.Locked {
		compensation := float32(1)
		if l.device == DeviceAnalog {
			compensation = deltaTime * l.Settings.AnalogRate
		}
		l.yaw += input.X * compensation
		l.pitch += input.Y * compensation
	}

	l.yaw = mathutil.ClampAngle(l.yaw, -math.MaxFloat32, math.MaxFloat32)
	l.pitch = mathutil.ClampAngle(l.pitch, l.Settings.MinPitch, l.Settings.MaxPitch)

	yaw := l.OrientationYaw()
	if l.Target != nil {
		l.Target.Transform.Rotation = rl.Vector3{X: l.pitch, Y: yaw, Z: 0}
	}
	if l.AlignOwner {
		if g := l.GetGameObject(); g != nil {
			g.Transform.Rotation.Y = yaw
		}
	}
}

func (l *Look) Yaw() float32 { return l.yaw }

func (l *Look) Pitch() float32 { return l.pitch }

// SetOrientation overrides the accumulated angles, clamping as Tick does.
func (l *Look) SetOrientation(yaw, pitch float32) {
	l.yaw = mathutil.ClampAngle(yaw, -math.MaxFloat32, math.MaxFloat32)
	l.pitch = mathutil.ClampAngle(pitch, l.Settings.MinPitch, l.Settings.MaxPitch)
}

// OrientationYaw implements engine.YawProvider.
func (l *Look) OrientationYaw() float32 {
	return l.yaw * l.Settings.Sensitivity * l.Settings.TurnSpeed
}

// Pivot is the point the camera orbits: above the owner's feet.
func (l *Look) Pivot() rl.Vector3 {
	var pos rl.Vector3
	if g := l.GetGameObject(); g != nil {
		pos = g.WorldPosition()
	}
	pos.Y += l.Settings.PivotHeight
	return pos
}

// AimDirection implements engine.AimProvider.
func (l *Look) AimDirection() rl.Vector3 {
	return engine.DirectionFromAngles(l.OrientationYaw(), l.pitch)
}

// AimOrigin implements engine.AimProvider: the camera eye, Distance behind
// the pivot along the aim direction.
func (l *Look) AimOrigin() rl.Vector3 {
	return rl.Vector3Subtract(l.Pivot(), rl.Vector3Scale(l.AimDirection(), l.Settings.Distance))
}
