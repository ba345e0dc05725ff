package game

import (
	"tpshooter/internal/components"
	"tpshooter/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is one frame of player intent in screen terms: +X is right, +Y is
// forward for Move and up for Look.
type Input struct {
	Move    rl.Vector2
	Look    rl.Vector2
	Device  components.Device
	Sprint  bool
	Jump    bool
	Trigger bool
	Aim     bool
	Reload  bool
}

// MouseScale converts mouse pixels to degrees.
const MouseScale = 0.15

// unitMove keeps diagonal key presses at the same speed as straight ones.
func unitMove(v rl.Vector2) rl.Vector2 {
	if rl.Vector2Length(v) > 1 {
		return rl.Vector2Normalize(v)
	}
	return v
}

// ReadInput samples keyboard and mouse. Gamepad sticks take over look when
// they are deflected.
func ReadInput() Input {
	var in Input
	if rl.IsKeyDown(rl.KeyW) {
		in.Move.Y++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Move.Y--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Move.X++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Move.X--
	}
	in.Move = unitMove(in.Move)

	mouse := rl.GetMouseDelta()
	in.Look = rl.Vector2{X: mouse.X * MouseScale, Y: -mouse.Y * MouseScale}
	in.Device = components.DevicePointer

	if rl.IsGamepadAvailable(0) {
		stick := rl.Vector2{
			X: rl.GetGamepadAxisMovement(0, rl.GamepadAxisRightX),
			Y: -rl.GetGamepadAxisMovement(0, rl.GamepadAxisRightY),
		}
		if rl.Vector2Length(stick) > 0.15 {
			in.Look = stick
			in.Device = components.DeviceAnalog
		}
	}

	in.Sprint = rl.IsKeyDown(rl.KeyLeftShift)
	in.Jump = rl.IsKeyPressed(rl.KeySpace)
	in.Trigger = rl.IsMouseButtonDown(rl.MouseLeftButton)
	in.Aim = rl.IsMouseButtonDown(rl.MouseRightButton)
	in.Reload = rl.IsKeyPressed(rl.KeyR)
	return in
}

// Apply feeds in to the player's components. Yaw grows counter-clockwise
// seen from above, so screen-right maps to negative X for both moving and
// turning.
func (in Input) Apply(p *world.Player) {
	p.Locomotion.SetMoveInput(rl.Vector2{X: -in.Move.X, Y: in.Move.Y})
	p.Locomotion.SetSprinting(in.Sprint)
	if in.Jump {
		p.Locomotion.Jump()
	}
	p.Look.SetLookInput(rl.Vector2{X: -in.Look.X, Y: in.Look.Y}, in.Device)
	p.Shooter.SetTrigger(in.Trigger)
	p.Shooter.SetAiming(in.Aim)
	if in.Reload {
		p.Shooter.RequestReload()
	}
}
