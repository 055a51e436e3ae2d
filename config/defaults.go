package config

import (
	"github.com/spf13/viper"
)

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d *Config) {
	t := d.Controller
	v.SetDefault("controller.player_height", t.PlayerHeight)
	v.SetDefault("controller.stand_epsilon", t.StandEpsilon)
	v.SetDefault("controller.slope_dot_threshold", t.SlopeDotThreshold)
	v.SetDefault("controller.gravity", t.Gravity)
	v.SetDefault("controller.jump_speed", t.JumpSpeed)
	v.SetDefault("controller.sprint_jump_multiplier", t.SprintJumpMultiplier)
	v.SetDefault("controller.walk_speed", t.WalkSpeed)
	v.SetDefault("controller.sprint_multiplier", t.SprintMultiplier)
	v.SetDefault("controller.can_sprint_in_air", t.CanSprintInAir)
	v.SetDefault("controller.collision_clearance", t.CollisionClearance)
	v.SetDefault("controller.probe_offsets", t.ProbeOffsets)
	v.SetDefault("controller.slip_speed", t.SlipSpeed)
	v.SetDefault("controller.slip_cooldown_ms", t.SlipCooldownMillis)
	v.SetDefault("controller.slip_move_multiplier", t.SlipMoveMultiplier)
	v.SetDefault("controller.slip_test_vertical", t.SlipTestVertical)
	v.SetDefault("controller.look_sensitivity", t.LookSensitivity)
	v.SetDefault("controller.max_pitch", t.MaxPitch)
	v.SetDefault("controller.bob_frequency", t.BobFrequency)
	v.SetDefault("controller.bob_amplitude", t.BobAmplitude)
	v.SetDefault("controller.sprint_bob_bonus", t.SprintBobBonus)
	v.SetDefault("controller.bob_settle_threshold", t.BobSettleThreshold)
	v.SetDefault("controller.max_frame_delta", t.MaxFrameDelta)
	v.SetDefault("controller.debug_segment_cap", t.DebugSegmentCap)

	in := d.Input
	v.SetDefault("input.bindings.forward", in.Bindings.Forward)
	v.SetDefault("input.bindings.backward", in.Bindings.Backward)
	v.SetDefault("input.bindings.left", in.Bindings.Left)
	v.SetDefault("input.bindings.right", in.Bindings.Right)
	v.SetDefault("input.bindings.jump", in.Bindings.Jump)
	v.SetDefault("input.bindings.sprint", in.Bindings.Sprint)
	v.SetDefault("input.gamepad_deadzone", in.GamepadDeadzone)
	v.SetDefault("input.gamepad_look_scale", in.GamepadLookScale)
	v.SetDefault("input.mouse_scale", in.MouseScale)
	v.SetDefault("input.invert_y", in.InvertY)
	v.SetDefault("input.gamepad_wait_ms", in.GamepadWaitMillis)

	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.capture_cursor", d.Window.CaptureCursor)

	v.SetDefault("engine.tick_rate", d.Engine.TickRate)
	v.SetDefault("engine.render_frame_limit", d.Engine.RenderFrameLimit)
	v.SetDefault("engine.profiler", d.Engine.Profiler)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.pretty", d.Log.Pretty)
}
