package input

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ActionVector is the normalized per-frame intent derived from a Snapshot.
type ActionVector struct {
	// MoveForward and MoveRight are in [-1, 1].
	MoveForward float32
	MoveRight   float32
	// LookDeltaX and LookDeltaY are pointer pixels or scaled stick units for this frame.
	LookDeltaX float32
	LookDeltaY float32
	JumpHeld   bool
	SprintHeld bool
	// AnyMoveHeld is true while any movement control is engaged, even if opposing keys cancel out.
	AnyMoveHeld bool
}

// AggregateConfig controls how a Snapshot is folded into an ActionVector.
type AggregateConfig struct {
	Bindings Bindings `mapstructure:"bindings" yaml:"bindings"`
	// GamepadDeadzone is the radial stick deadzone in [0, 1).
	GamepadDeadzone float32 `mapstructure:"gamepad_deadzone" yaml:"gamepad_deadzone"`
	// GamepadLookScale converts right stick deflection into look units per frame.
	GamepadLookScale float32 `mapstructure:"gamepad_look_scale" yaml:"gamepad_look_scale"`
}

// DefaultAggregateConfig returns the default bindings with a 0.15 deadzone and a look scale of 12.
func DefaultAggregateConfig() AggregateConfig {
	return AggregateConfig{
		Bindings:         DefaultBindings(),
		GamepadDeadzone:  0.15,
		GamepadLookScale: 12,
	}
}

// Aggregate folds keyboard, pointer and gamepad state into one ActionVector.
// Keyboard and stick movement add and are clamped to [-1, 1] per axis.
//
// Parameters:
//   - s: the frame's device snapshot
//   - cfg: bindings and gamepad tuning
//
// Returns:
//   - ActionVector: the frame's action vector
func Aggregate(s Snapshot, cfg AggregateConfig) ActionVector {
	b := cfg.Bindings
	fwd, back := s.IsHeld(b.Forward...), s.IsHeld(b.Backward...)
	left, right := s.IsHeld(b.Left...), s.IsHeld(b.Right...)

	av := ActionVector{
		MoveForward: axis(fwd, back),
		MoveRight:   axis(right, left),
		LookDeltaX:  s.LookDX,
		LookDeltaY:  s.LookDY,
		JumpHeld:    s.IsHeld(b.Jump...),
		SprintHeld:  s.IsHeld(b.Sprint...),
		AnyMoveHeld: fwd || back || left || right,
	}

	if pad := s.Gamepad; pad != nil {
		move := deadzone(pad.Move, cfg.GamepadDeadzone)
		look := deadzone(pad.Look, cfg.GamepadDeadzone)
		// GLFW reports stick y positive toward the player.
		av.MoveRight += move[0]
		av.MoveForward -= move[1]
		av.LookDeltaX += look[0] * cfg.GamepadLookScale
		av.LookDeltaY += look[1] * cfg.GamepadLookScale
		av.JumpHeld = av.JumpHeld || pad.Jump
		av.SprintHeld = av.SprintHeld || pad.Sprint
		av.AnyMoveHeld = av.AnyMoveHeld || move != [2]float32{}
	}

	av.MoveForward = common.Clamp(av.MoveForward, -1, 1)
	av.MoveRight = common.Clamp(av.MoveRight, -1, 1)
	return av
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// deadzone applies a radial deadzone and rescales the remaining range to [0, 1].
func deadzone(stick [2]float32, dz float32) [2]float32 {
	v := mgl32.Vec2{stick[0], stick[1]}
	l := v.Len()
	if l <= dz || dz >= 1 {
		return [2]float32{}
	}
	scaled := v.Mul(min((l-dz)/(1-dz), 1) / l)
	return [2]float32{scaled[0], scaled[1]}
}
