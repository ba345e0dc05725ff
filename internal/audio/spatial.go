package audio

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Spatialize returns the volume and pan (0 left, 0.5 center, 1 right) of a
// sound at pos heard by l. Volume falls off linearly to zero at
// maxDistance; sounds behind the listener are slightly quieter.
func Spatialize(l Listener, pos rl.Vector3, maxDistance float32) (volume, pan float32) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)

	// Distance attenuation
	if distance < maxDistance {
		volume = 1.0 - distance/maxDistance
	}

	pan = 0.5
	if distance > 0.001 {
		direction := rl.Vector3Scale(toSource, 1.0/distance)
		rightDot := rl.Vector3DotProduct(direction, l.Right)
		// rightDot: -1 = full left, +1 = full right
		pan = 0.5 + rightDot*0.5
		if pan < 0.0 {
			pan = 0.0
		} else if pan > 1.0 {
			pan = 1.0
		}

		frontDot := rl.Vector3DotProduct(direction, l.Forward)
		if frontDot < 0 {
			volume *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
		}
	}
	return volume, pan
}
