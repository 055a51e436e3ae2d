package controller

import (
	"math"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
)

// eulerYX extracts yaw (about Y) and pitch (about X) from q, taking the rotation
// order as yaw, then pitch, then roll. Roll is discarded.
func eulerYX(q mgl32.Quat) (yaw, pitch float32) {
	m := q.Normalize().Mat4()
	m12 := common.Clamp(m.At(1, 2), -1, 1)
	pitch = float32(math.Asin(float64(-m12)))
	if math.Abs(float64(m12)) < 0.9999999 {
		yaw = float32(math.Atan2(float64(m.At(0, 2)), float64(m.At(2, 2))))
	} else {
		yaw = float32(math.Atan2(float64(-m.At(2, 0)), float64(m.At(0, 0))))
	}
	return yaw, pitch
}

// quatYX builds the orientation for a yaw then pitch rotation.
func quatYX(yaw, pitch float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0}))
}

// applyLook turns the camera orientation by the frame's look delta and clamps pitch.
// Positive dx turns right, positive dy looks down.
func (c *controller) applyLook(q mgl32.Quat, dx, dy float32) mgl32.Quat {
	yaw, pitch := eulerYX(q)
	yaw -= dx * c.tuning.LookSensitivity
	pitch -= dy * c.tuning.LookSensitivity
	pitch = common.Clamp(pitch, -c.tuning.MaxPitch, c.tuning.MaxPitch)
	c.state.Yaw, c.state.Pitch = yaw, pitch
	return quatYX(yaw, pitch)
}

// advanceBob steps the head-bob phase. While stopped the phase only advances until
// the offset settles under BobSettleThreshold.
func (c *controller) advanceBob(moved bool, dt float32) {
	s := &c.state
	t := c.tuning
	switch {
	case moved:
		rate := t.BobFrequency
		if s.Sprinting {
			rate *= 1 + t.SprintBobBonus
		}
		s.BobPhase += dt * rate
	case s.BobOffset > t.BobSettleThreshold:
		next := s.BobPhase + dt*t.BobFrequency
		// stop on the zero crossing rather than stepping over it
		if crossing := float32(math.Ceil(float64(s.BobPhase)/math.Pi) * math.Pi); next >= crossing {
			next = crossing
		}
		s.BobPhase = next
	default:
		return
	}
	s.BobPhase = float32(math.Mod(float64(s.BobPhase), 2*math.Pi))
	s.BobOffset = float32(math.Abs(math.Sin(float64(s.BobPhase)))) * t.BobAmplitude
}
