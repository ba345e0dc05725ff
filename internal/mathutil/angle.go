package mathutil

import "math"

// Repeat wraps t into [0, length).
func Repeat(t, length float32) float32 {
	v := t - float32(math.Floor(float64(t/length)))*length
	return Clamp(v, 0, length)
}

// DeltaAngle returns the shortest signed difference from current to target,
// in degrees, within [-180, 180].
func DeltaAngle(current, target float32) float32 {
	delta := Repeat(target-current, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// ClampAngle lifts angle by one turn when it is below -360, drops it by one
// turn when above 360, then clamps it into [lo, hi].
func ClampAngle(angle, lo, hi float32) float32 {
	if angle < -360 {
		angle += 360
	}
	if angle > 360 {
		angle -= 360
	}
	return Clamp(angle, lo, hi)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SmoothDamp moves current toward target like a critically damped spring
// that settles in roughly smoothTime seconds. velocity carries the spring
// state between calls.
func SmoothDamp(current, target float32, velocity *float32, smoothTime, deltaTime float32) float32 {
	if deltaTime <= 0 {
		return current
	}
	smoothTime = max(smoothTime, 1e-4)
	omega := 2 / smoothTime
	x := omega * deltaTime
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTarget := target
	target = current - change

	temp := (*velocity + omega*change) * deltaTime
	*velocity = (*velocity - omega*temp) * decay
	out := target + (change+temp)*decay

	// no overshoot
	if (originalTarget-current > 0) == (out > originalTarget) {
		out = originalTarget
		*velocity = (out - originalTarget) / deltaTime
	}
	return out
}

// SmoothDampAngle is SmoothDamp for degrees, taking the short way around.
func SmoothDampAngle(current, target float32, velocity *float32, smoothTime, deltaTime float32) float32 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, deltaTime)
}
