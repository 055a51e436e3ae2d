package controller

import (
	"errors"
	"fmt"
	"math"
)

// Tuning holds every named constant of the character controller.
// Distances are in world units, times in seconds unless the name says otherwise.
type Tuning struct {
	// PlayerHeight is the eye height above the floor.
	PlayerHeight float32 `mapstructure:"player_height" yaml:"player_height"`
	// StandEpsilon is the slack above PlayerHeight within which the player still counts as standing.
	StandEpsilon float32 `mapstructure:"stand_epsilon" yaml:"stand_epsilon"`
	// SlopeDotThreshold is the minimum normal·up of a walkable surface; steeper surfaces slip.
	SlopeDotThreshold float32 `mapstructure:"slope_dot_threshold" yaml:"slope_dot_threshold"`

	Gravity              float32 `mapstructure:"gravity" yaml:"gravity"`
	JumpSpeed            float32 `mapstructure:"jump_speed" yaml:"jump_speed"`
	SprintJumpMultiplier float32 `mapstructure:"sprint_jump_multiplier" yaml:"sprint_jump_multiplier"`

	WalkSpeed        float32 `mapstructure:"walk_speed" yaml:"walk_speed"`
	SprintMultiplier float32 `mapstructure:"sprint_multiplier" yaml:"sprint_multiplier"`
	CanSprintInAir   bool    `mapstructure:"can_sprint_in_air" yaml:"can_sprint_in_air"`

	// CollisionClearance is added to the move length when probing for obstacles.
	CollisionClearance float32 `mapstructure:"collision_clearance" yaml:"collision_clearance"`
	// ProbeOffsets are extra probe heights relative to the eye, e.g. -1.2 for a knee probe.
	ProbeOffsets []float32 `mapstructure:"probe_offsets" yaml:"probe_offsets"`

	// SlipSpeed scales the slide vector into a displacement per second.
	SlipSpeed float32 `mapstructure:"slip_speed" yaml:"slip_speed"`
	// SlipCooldownMillis is how long voluntary movement stays overridden after a slip starts.
	SlipCooldownMillis float64 `mapstructure:"slip_cooldown_ms" yaml:"slip_cooldown_ms"`
	// SlipMoveMultiplier scales voluntary speed during the slip cooldown. Zero suppresses it.
	SlipMoveMultiplier float32 `mapstructure:"slip_move_multiplier" yaml:"slip_move_multiplier"`
	// SlipTestVertical adds ±Y to the slide test directions.
	SlipTestVertical bool `mapstructure:"slip_test_vertical" yaml:"slip_test_vertical"`

	// LookSensitivity is radians per look unit.
	LookSensitivity float32 `mapstructure:"look_sensitivity" yaml:"look_sensitivity"`
	// MaxPitch bounds pitch symmetrically, in radians.
	MaxPitch float32 `mapstructure:"max_pitch" yaml:"max_pitch"`

	BobFrequency       float32 `mapstructure:"bob_frequency" yaml:"bob_frequency"`
	BobAmplitude       float32 `mapstructure:"bob_amplitude" yaml:"bob_amplitude"`
	SprintBobBonus     float32 `mapstructure:"sprint_bob_bonus" yaml:"sprint_bob_bonus"`
	BobSettleThreshold float32 `mapstructure:"bob_settle_threshold" yaml:"bob_settle_threshold"`

	// MaxFrameDelta caps the frame time after a stall.
	MaxFrameDelta float32 `mapstructure:"max_frame_delta" yaml:"max_frame_delta"`
	// DebugSegmentCap is the size of the rolling probe segment window.
	DebugSegmentCap int `mapstructure:"debug_segment_cap" yaml:"debug_segment_cap"`
}

// DefaultTuning returns the stock tuning: a 1.7 unit tall player walking at 4.5 u/s.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerHeight:      1.7,
		StandEpsilon:      0.1,
		SlopeDotThreshold: 0.9,

		Gravity:              18,
		JumpSpeed:            6.5,
		SprintJumpMultiplier: 1.2,

		WalkSpeed:        4.5,
		SprintMultiplier: 1.8,

		CollisionClearance: 0.4,

		SlipSpeed:          6,
		SlipCooldownMillis: 500,

		LookSensitivity: 0.0025,
		MaxPitch:        float32(85 * math.Pi / 180),

		BobFrequency:       10,
		BobAmplitude:       0.05,
		SprintBobBonus:     0.4,
		BobSettleThreshold: 0.004,

		MaxFrameDelta:   0.1,
		DebugSegmentCap: 10,
	}
}

// ErrInvalidTuning is wrapped by every Tuning validation failure.
var ErrInvalidTuning = errors.New("controller: invalid tuning")

// Validate checks the ranges the controller relies on.
//
// Returns:
//   - error: an error wrapping ErrInvalidTuning naming the first bad field
func (t Tuning) Validate() error {
	switch {
	case t.PlayerHeight <= 0:
		return fmt.Errorf("%w: player_height must be positive", ErrInvalidTuning)
	case t.StandEpsilon < 0:
		return fmt.Errorf("%w: stand_epsilon must not be negative", ErrInvalidTuning)
	case t.SlopeDotThreshold < 0 || t.SlopeDotThreshold > 1:
		return fmt.Errorf("%w: slope_dot_threshold must be in [0, 1]", ErrInvalidTuning)
	case t.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidTuning)
	case t.JumpSpeed < 0 || t.SprintJumpMultiplier < 0:
		return fmt.Errorf("%w: jump_speed and sprint_jump_multiplier must not be negative", ErrInvalidTuning)
	case t.WalkSpeed < 0 || t.SprintMultiplier < 0 || t.SlipMoveMultiplier < 0:
		return fmt.Errorf("%w: speeds and multipliers must not be negative", ErrInvalidTuning)
	case t.CollisionClearance < 0:
		return fmt.Errorf("%w: collision_clearance must not be negative", ErrInvalidTuning)
	case t.SlipCooldownMillis < 0:
		return fmt.Errorf("%w: slip_cooldown_ms must not be negative", ErrInvalidTuning)
	case t.MaxPitch <= 0 || t.MaxPitch >= math.Pi/2:
		return fmt.Errorf("%w: max_pitch must be in (0, pi/2)", ErrInvalidTuning)
	case t.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: max_frame_delta must be positive", ErrInvalidTuning)
	case t.DebugSegmentCap < 0:
		return fmt.Errorf("%w: debug_segment_cap must not be negative", ErrInvalidTuning)
	}
	return nil
}
