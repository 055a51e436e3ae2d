package controller

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// PlayerState is the controller's physical and bookkeeping state.
// It is mutated once per frame and copied out by Controller.State.
type PlayerState struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	VerticalVelocity float32
	LaunchVelocity   float32
	// FallTime is seconds since leaving the ground, reset on landing.
	FallTime float32

	Sprinting   bool
	JumpLatched bool
	// SlipCooldownUntil is a frame timestamp in milliseconds.
	SlipCooldownUntil float64

	BobPhase  float32
	BobOffset float32

	Grounded bool
	Slipping bool
}

// SlipCooldownActive reports whether voluntary movement is overridden at nowMillis.
func (s PlayerState) SlipCooldownActive(nowMillis float64) bool {
	return nowMillis < s.SlipCooldownUntil
}

// latchJump updates the jump latch and reports a rising edge.
// The latch resets only once the control is observed released.
func (s *PlayerState) latchJump(held bool) bool {
	edge := held && !s.JumpLatched
	s.JumpLatched = held
	return edge
}

// updateSprint turns sprint on while held (grounded unless canSprintInAir) and off
// only once sprint and every movement control are released.
func (s *PlayerState) updateSprint(av input.ActionVector, grounded, canSprintInAir bool) {
	switch {
	case av.SprintHeld && (grounded || canSprintInAir):
		s.Sprinting = true
	case !av.SprintHeld && !av.AnyMoveHeld:
		s.Sprinting = false
	}
}
