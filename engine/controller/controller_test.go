package controller

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsMissingCollaborators(t *testing.T) {
	cam := camera.NewCamera()
	world := flatWorld()
	src := newKeys()

	_, err := New(nil, world, src)
	assert.ErrorIs(t, err, ErrNilCamera)
	_, err = New(cam, nil, src)
	assert.ErrorIs(t, err, ErrNilProvider)
	_, err = New(cam, world, nil)
	assert.ErrorIs(t, err, ErrNilSource)

	bad := DefaultTuning()
	bad.Gravity = 0
	_, err = New(cam, world, src, WithTuning(bad))
	assert.ErrorIs(t, err, ErrInvalidTuning)
}

func TestNewStartsAtCameraAndPushesTransform(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(1, 1.7, 2))
	ctrl, err := New(cam, flatWorld(), newKeys(), WithLook(0.5, 3))
	require.NoError(t, err)

	st := ctrl.State()
	assert.Equal(t, mgl32.Vec3{1, 1.7, 2}, st.Position)
	assert.InDelta(t, 0.5, st.Yaw, 1e-6)
	assert.InDelta(t, DefaultTuning().MaxPitch, st.Pitch, 1e-6)
	assert.Equal(t, ctrl.Tuning(), DefaultTuning())
}

func TestGroundedVerticalVelocityIsExactlyZero(t *testing.T) {
	r := newRig(flatWorld(), DefaultTuning(), mgl32.Vec3{0, 1.7, 0})

	for i := 0; i < 30; i++ {
		r.step(1)
		assert.Zero(t, r.ctrl.State().VerticalVelocity)
	}
	r.keys.press(keyForward, keySprint)
	for i := 0; i < 30; i++ {
		r.step(1)
		st := r.ctrl.State()
		require.True(t, st.Grounded)
		assert.Zero(t, st.VerticalVelocity)
		assert.InDelta(t, 1.7, st.Position.Y(), 1e-5)
	}
}

func TestJumpFiresOncePerPress(t *testing.T) {
	r := newRig(flatWorld(), DefaultTuning(), mgl32.Vec3{0, 1.7, 0})

	r.keys.press(keyJump)
	r.step(150)
	assert.Equal(t, 1, r.counts.Jumps, "holding jump through a landing must not re-fire")
	assert.Equal(t, 1, r.counts.Landings)
	assert.True(t, r.ctrl.State().Grounded)

	r.keys.release(keyJump)
	r.step(1)
	r.keys.press(keyJump)
	r.step(1)
	assert.Equal(t, 2, r.counts.Jumps)
	assert.Greater(t, r.ctrl.State().VerticalVelocity, float32(0))
}

func TestSprintJumpLaunchesHigher(t *testing.T) {
	tuning := DefaultTuning()
	r := newRig(flatWorld(), tuning, mgl32.Vec3{0, 1.7, 0})

	r.keys.press(keySprint)
	r.step(1)
	r.keys.press(keyJump)
	r.step(1)

	assert.InDelta(t, tuning.JumpSpeed*tuning.SprintJumpMultiplier, r.ctrl.State().LaunchVelocity, 1e-5)
}

func TestFallAccelerates(t *testing.T) {
	world := &fakeWorld{}
	r := newRig(world, DefaultTuning(), mgl32.Vec3{0, 100, 0})

	prevY := r.ctrl.State().Position.Y()
	var prevDrop float32
	for i := 0; i < 40; i++ {
		r.step(1)
		y := r.ctrl.State().Position.Y()
		drop := prevY - y
		assert.Greater(t, drop, prevDrop, "frame %d", i)
		prevY, prevDrop = y, drop
	}

	// 40 frames of 16ms: y(T) = 100 - g*sum(k*dt*dt), quadratic in T
	tuning := DefaultTuning()
	dt := float32(0.016)
	var want float32
	for k := 1; k <= 40; k++ {
		want += tuning.Gravity * float32(k) * dt * dt
	}
	assert.InDelta(t, 100-want, prevY, 1e-3)
	assert.InDelta(t, 40*0.016, r.ctrl.State().FallTime, 1e-4)
}

func TestFastFallNeverTunnels(t *testing.T) {
	tuning := DefaultTuning()
	tuning.MaxFrameDelta = 1
	r := newRig(flatWorld(), tuning, mgl32.Vec3{0, 60, 0})
	r.frameMs = 1000

	for i := 0; i < 10; i++ {
		r.step(1)
		assert.GreaterOrEqual(t, r.ctrl.State().Position.Y(), tuning.PlayerHeight-1e-4)
	}
	st := r.ctrl.State()
	assert.True(t, st.Grounded)
	assert.Zero(t, st.FallTime)
	assert.Equal(t, 1, r.counts.Landings)
	assert.Greater(t, r.counts.LongestFall, float32(2))
}

func blockedMoveRig(obstacle float32) *rig {
	tuning := DefaultTuning()
	tuning.WalkSpeed = 50
	tuning.CollisionClearance = 3
	world := flatWorld()
	world.obstacle = obstacle
	r := newRig(world, tuning, mgl32.Vec3{0, 1.7, 0})
	r.frameMs = 100
	return r
}

func TestCollisionWithinClearanceDiscardsMove(t *testing.T) {
	r := blockedMoveRig(1)
	before := r.ctrl.State().Position

	r.keys.press(keyForward)
	r.step(1)

	assert.Equal(t, before, r.ctrl.State().Position)
	assert.Equal(t, 1, r.counts.Blocked)
	segs := r.ctrl.DebugSegments()
	require.Len(t, segs, 1)
	assert.InDelta(t, 8, segs[0].To.Sub(segs[0].From).Len(), 1e-4, "probe spans move plus clearance")
}

func TestCollisionBeyondClearanceAllowsFullMove(t *testing.T) {
	r := blockedMoveRig(100)
	before := r.ctrl.State().Position

	r.keys.press(keyForward)
	r.step(1)

	moved := r.ctrl.State().Position.Sub(before)
	assert.InDelta(t, 0, moved.X(), 1e-4)
	assert.InDelta(t, 0, moved.Y(), 1e-4)
	assert.InDelta(t, -5, moved.Z(), 1e-4)
	assert.Zero(t, r.counts.Blocked)
}

func TestProbeOffsetsAddProbes(t *testing.T) {
	tuning := DefaultTuning()
	tuning.ProbeOffsets = []float32{-1.2}
	r := newRig(flatWorld(), tuning, mgl32.Vec3{0, 1.7, 0})

	r.keys.press(keyForward)
	r.step(1)

	segs := r.ctrl.DebugSegments()
	require.Len(t, segs, 2)
	assert.InDelta(t, 0.5, segs[1].From.Y(), 1e-5)
}

func TestDebugSegmentsRollingWindow(t *testing.T) {
	r := newRig(flatWorld(), DefaultTuning(), mgl32.Vec3{0, 1.7, 0})
	r.keys.press(keyForward)
	r.step(25)

	segs := r.ctrl.DebugSegments()
	require.Len(t, segs, DefaultTuning().DebugSegmentCap)
	for i := 1; i < len(segs); i++ {
		assert.Less(t, segs[i].From.Z(), segs[i-1].From.Z(), "oldest first while walking toward -Z")
	}
}

func TestFloorSnapFollowsSlope(t *testing.T) {
	// walkable incline rising toward -Z
	world := &fakeWorld{
		floor:       func(_, z float32) float32 { return -0.3 * z },
		floorNormal: mgl32.Vec3{0, 1, 0.3}.Normalize(),
	}
	r := newRig(world, DefaultTuning(), mgl32.Vec3{0, 1.7, 0})

	r.keys.press(keyForward)
	for i := 0; i < 30; i++ {
		r.step(1)
		st := r.ctrl.State()
		require.True(t, st.Grounded)
		require.False(t, st.Slipping)
		assert.InDelta(t, 1.7, st.Position.Y()-world.floor(0, st.Position.Z()), 1e-4)
	}
	assert.Less(t, r.ctrl.State().Position.Z(), float32(-1))
}

func TestFloorSnapSkippedOnJumpFrame(t *testing.T) {
	world := &fakeWorld{
		floor:       func(_, z float32) float32 { return -0.3 * z },
		floorNormal: mgl32.Vec3{0, 1, 0.3}.Normalize(),
	}
	tuning := DefaultTuning()
	r := newRig(world, tuning, mgl32.Vec3{0, 1.7, 0})
	startY := r.ctrl.State().Position.Y()

	r.keys.press(keyForward, keyJump)
	r.step(1)

	dt := float32(0.016)
	wantDy := (tuning.JumpSpeed - tuning.Gravity*dt) * dt
	st := r.ctrl.State()
	assert.InDelta(t, startY+wantDy, st.Position.Y(), 1e-5, "only the jump moves y while ascending")
	assert.Less(t, st.Position.Z(), float32(0))
	assert.False(t, st.Grounded)
}

func TestNoFloorSnapWhileAirborne(t *testing.T) {
	world := &fakeWorld{
		floor:       func(_, z float32) float32 { return -0.3 * z },
		floorNormal: mgl32.Vec3{0, 1, 0.3}.Normalize(),
	}
	tuning := DefaultTuning()
	r := newRig(world, tuning, mgl32.Vec3{0, 10, 0})
	r.keys.press(keyForward)

	before := r.ctrl.State()
	r.step(1)
	after := r.ctrl.State()

	dt := float32(0.016)
	assert.InDelta(t, before.Position.Y()-tuning.Gravity*dt*dt, after.Position.Y(), 1e-5)
}

func TestSprintStaysOnWhileMoving(t *testing.T) {
	r := newRig(flatWorld(), DefaultTuning(), mgl32.Vec3{0, 1.7, 0})

	r.keys.press(keySprint, keyForward)
	r.step(1)
	assert.True(t, r.ctrl.State().Sprinting)

	r.keys.release(keySprint)
	r.step(3)
	assert.True(t, r.ctrl.State().Sprinting, "still moving keeps sprint")

	r.keys.release(keyForward)
	r.step(1)
	assert.False(t, r.ctrl.State().Sprinting)
}

func TestSprintNeedsGroundUnlessAllowed(t *testing.T) {
	tuning := DefaultTuning()
	r := newRig(&fakeWorld{}, tuning, mgl32.Vec3{0, 50, 0})
	r.keys.press(keySprint)
	r.step(1)
	assert.False(t, r.ctrl.State().Sprinting)

	tuning.CanSprintInAir = true
	r = newRig(&fakeWorld{}, tuning, mgl32.Vec3{0, 50, 0})
	r.keys.press(keySprint)
	r.step(1)
	assert.True(t, r.ctrl.State().Sprinting)
}

func TestSprintSpeed(t *testing.T) {
	tuning := DefaultTuning()
	walk := newRig(flatWorld(), tuning, mgl32.Vec3{0, 1.7, 0})
	walk.keys.press(keyForward)
	walk.step(10)

	sprint := newRig(flatWorld(), tuning, mgl32.Vec3{0, 1.7, 0})
	sprint.keys.press(keyForward, keySprint)
	sprint.step(10)

	ratio := sprint.ctrl.State().Position.Z() / walk.ctrl.State().Position.Z()
	assert.InDelta(t, tuning.SprintMultiplier, ratio, 1e-3)
}

func TestPitchSaturates(t *testing.T) {
	tuning := DefaultTuning()
	r := newRig(flatWorld(), tuning, mgl32.Vec3{0, 1.7, 0})

	for i := 0; i < 20; i++ {
		r.keys.look = [2]float32{0, -1e5}
		r.step(1)
		pitch := r.ctrl.State().Pitch
		assert.LessOrEqual(t, pitch, tuning.MaxPitch)
		assert.InDelta(t, tuning.MaxPitch, pitch, 1e-4)
	}
	for i := 0; i < 20; i++ {
		r.keys.look = [2]float32{0, 1e5}
		r.step(1)
		assert.GreaterOrEqual(t, r.ctrl.State().Pitch, -tuning.MaxPitch)
	}
	assert.InDelta(t, -tuning.MaxPitch, r.ctrl.State().Pitch, 1e-4)
}

func TestLookIsConsumedOnce(t *testing.T) {
	r := newRig(flatWorld(), DefaultTuning(), mgl32.Vec3{0, 1.7, 0})

	r.keys.look = [2]float32{100, 0}
	r.step(1)
	yaw := r.ctrl.State().Yaw
	assert.InDelta(t, -100*DefaultTuning().LookSensitivity, yaw, 1e-5)

	r.step(5)
	assert.InDelta(t, yaw, r.ctrl.State().Yaw, 1e-5)
}

func TestMovementIgnoresPitch(t *testing.T) {
	r := newRig(flatWorld(), DefaultTuning(), mgl32.Vec3{0, 1.7, 0})
	r.ctrl.SetLook(float32(math.Pi/2), 1.2)

	r.keys.press(keyForward)
	r.step(10)

	pos := r.ctrl.State().Position
	assert.Less(t, pos.X(), float32(-0.5), "yaw of +90 degrees walks toward -X")
	assert.InDelta(t, 0, pos.Z(), 1e-4)
	assert.InDelta(t, 1.7, pos.Y(), 1e-4)
}

func TestSlipSlidesDownhillAndSuppressesMovement(t *testing.T) {
	world := flatWorld()
	world.floorNormal = mgl32.Vec3{1, 1, 0}.Normalize()
	tuning := DefaultTuning()
	r := newRig(world, tuning, mgl32.Vec3{0, 1.7, 0})
	require.Equal(t, 1, r.counts.Slips, "the first frame already stands on the slope")

	r.keys.press(keyForward, keyJump)
	r.step(20) // 320ms, inside the cooldown

	st := r.ctrl.State()
	assert.True(t, st.Slipping)
	assert.Greater(t, st.Position.X(), float32(0), "slides toward +X")
	assert.InDelta(t, 0, st.Position.Z(), 1e-5, "forward input suppressed")
	assert.Equal(t, 1, r.counts.Slips)
	assert.Zero(t, r.counts.Jumps, "no jumping off a steep slope")
	assert.InDelta(t, tuning.SlipCooldownMillis, st.SlipCooldownUntil, 1e-9)

	r.step(20) // re-armed at 512ms
	assert.Equal(t, 2, r.counts.Slips)
	assert.InDelta(t, 512+tuning.SlipCooldownMillis, r.ctrl.State().SlipCooldownUntil, 1e-9)
}

func TestSlipCooldownBeatsSprint(t *testing.T) {
	world := flatWorld()
	world.floorNormal = mgl32.Vec3{1, 1, 0}.Normalize()
	tuning := DefaultTuning()
	tuning.SlipMoveMultiplier = 0.5
	r := newRig(world, tuning, mgl32.Vec3{0, 1.7, 0})

	r.keys.press(keyForward, keySprint)
	r.step(1)

	c := r.ctrl.(*controller)
	assert.True(t, c.state.Sprinting)
	assert.InDelta(t, tuning.WalkSpeed*tuning.SlipMoveMultiplier, c.speed(r.now), 1e-6)
}

func TestHeadBobRisesThenSettles(t *testing.T) {
	tuning := DefaultTuning()
	r := newRig(flatWorld(), tuning, mgl32.Vec3{0, 1.7, 0})

	r.keys.press(keyForward)
	r.step(7)
	st := r.ctrl.State()
	require.Greater(t, st.BobOffset, tuning.BobSettleThreshold)
	assert.InDelta(t, st.Position.Y()+st.BobOffset, r.cam.Position().Y(), 1e-5)
	assert.InDelta(t, 1.7, st.Position.Y(), 1e-5, "bob never feeds back into physics")

	r.keys.release(keyForward)
	r.step(60)
	settled := r.ctrl.State()
	assert.LessOrEqual(t, settled.BobOffset, tuning.BobSettleThreshold)

	r.step(10)
	assert.Equal(t, settled.BobPhase, r.ctrl.State().BobPhase, "phase holds once settled")
}

func TestFrameDeltaClamped(t *testing.T) {
	tuning := DefaultTuning()
	r := newRig(flatWorld(), tuning, mgl32.Vec3{0, 1.7, 0})
	r.keys.press(keyForward)
	r.frameMs = 5000
	r.step(1)

	assert.InDelta(t, -tuning.WalkSpeed*tuning.MaxFrameDelta, r.ctrl.State().Position.Z(), 1e-4)
}

func TestTeleportClearsVerticalMotion(t *testing.T) {
	r := newRig(&fakeWorld{}, DefaultTuning(), mgl32.Vec3{0, 50, 0})
	r.step(10)
	require.Greater(t, r.ctrl.State().FallTime, float32(0))

	r.ctrl.Teleport(mgl32.Vec3{3, 4, 5})

	st := r.ctrl.State()
	assert.Equal(t, mgl32.Vec3{3, 4, 5}, st.Position)
	assert.Zero(t, st.FallTime)
	assert.Zero(t, st.VerticalVelocity)
	assert.InDelta(t, 4, r.cam.Position().Y(), 1e-5)
}

func TestGroundQueriesArePure(t *testing.T) {
	world := flatWorld()
	r := newRig(world, DefaultTuning(), mgl32.Vec3{0, 1.7, 0})
	before := r.ctrl.State()

	g := r.ctrl.Ground()

	assert.True(t, g.Grounded)
	assert.Equal(t, before, r.ctrl.State())
}

func TestUpdateFuncDrivesController(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(0, 1.7, 0))
	src := input.NewScript(input.DefaultBindings(), input.ScriptStep{From: 0, To: 1000, Hold: []input.Action{input.ActionForward}})
	ctrl, err := New(cam, flatWorld(), src)
	require.NoError(t, err)

	update := ctrl.UpdateFunc()
	for ms := 0.0; ms <= 500; ms += 10 {
		src.Seek(ms)
		update(ms)
	}
	assert.InDelta(t, -DefaultTuning().WalkSpeed*0.5, ctrl.State().Position.Z(), 1e-3)
	assert.InDelta(t, ctrl.State().Position.Z(), cam.Position().Z(), 1e-6)
}
