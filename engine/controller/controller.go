// Package controller implements the first-person character controller: ground and slope
// classification, gravity and jumping, sprinting, slope slipping, collision-checked planar
// movement, look and head-bob. One Controller drives one camera.
package controller

import (
	"errors"
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/collision"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

var (
	// ErrNilCamera is returned by New when no camera is supplied.
	ErrNilCamera = errors.New("controller: camera is required")
	// ErrNilProvider is returned by New when no collision provider is supplied.
	ErrNilProvider = errors.New("controller: collision provider is required")
	// ErrNilSource is returned by New when no input source is supplied.
	ErrNilSource = errors.New("controller: input source is required")
)

// Controller advances a first-person player once per frame against solid scene geometry
// and writes the resulting eye transform to its camera.
type Controller interface {
	// Update runs one frame. nowMillis must not decrease; the first call only
	// establishes the time base and integrates with a zero delta.
	//
	// Parameters:
	//   - nowMillis: the frame timestamp in milliseconds
	Update(nowMillis float64)

	// UpdateFunc returns Update as a plain function for frame loops.
	//
	// Returns:
	//   - func(float64): the frame callback
	UpdateFunc() func(nowMillis float64)

	// State returns a copy of the player state.
	//
	// Returns:
	//   - PlayerState: the current state
	State() PlayerState

	// Ground classifies the surface under the player's current position.
	//
	// Returns:
	//   - GroundResult: the classification
	Ground() GroundResult

	// DebugSegments returns the most recent collision probe segments, oldest first.
	//
	// Returns:
	//   - []common.Segment: at most Tuning.DebugSegmentCap segments
	DebugSegments() []common.Segment

	// Teleport moves the player and clears vertical motion.
	//
	// Parameters:
	//   - pos: the new eye position
	Teleport(pos mgl32.Vec3)

	// SetLook sets the view direction. Pitch is clamped.
	//
	// Parameters:
	//   - yaw: radians about +Y, zero looks down -Z
	//   - pitch: radians about +X, positive looks up
	SetLook(yaw, pitch float32)

	// Tuning returns the controller's tuning.
	//
	// Returns:
	//   - Tuning: the tuning in use
	Tuning() Tuning
}

type controller struct {
	mu *sync.Mutex

	cam        camera.Camera
	solids     collision.Provider
	src        input.Source
	classifier Classifier
	tuning     Tuning
	aggregate  input.AggregateConfig
	log        zerolog.Logger
	observers  observers

	state      PlayerState
	lastMillis float64
	started    bool
	debug      segmentRing

	spawn    *mgl32.Vec3
	spawnYaw float32
	spawnPit float32
	hasLook  bool
}

var _ Controller = &controller{}

// New creates a Controller bound to a camera, the solid geometry set and an input source.
// The player starts at the camera position unless WithSpawn is given.
//
// Parameters:
//   - cam: the camera to drive
//   - solids: the collision provider for the solid geometry set
//   - src: the per-frame input source
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the controller
//   - error: a sentinel error for a missing collaborator, or an ErrInvalidTuning error
func New(cam camera.Camera, solids collision.Provider, src input.Source, options ...ControllerBuilderOption) (Controller, error) {
	if cam == nil {
		return nil, ErrNilCamera
	}
	if solids == nil {
		return nil, ErrNilProvider
	}
	if src == nil {
		return nil, ErrNilSource
	}

	c := &controller{
		mu:        &sync.Mutex{},
		cam:       cam,
		solids:    solids,
		src:       src,
		tuning:    DefaultTuning(),
		aggregate: input.DefaultAggregateConfig(),
		log:       zerolog.Nop(),
	}
	for _, option := range options {
		option(c)
	}
	if err := c.tuning.Validate(); err != nil {
		return nil, err
	}

	c.classifier = NewClassifier(solids, c.tuning)
	c.debug = newSegmentRing(c.tuning.DebugSegmentCap)

	c.state.Position = cam.Position()
	if c.spawn != nil {
		c.state.Position = *c.spawn
	}
	yaw, pitch := eulerYX(cam.Orientation())
	if c.hasLook {
		yaw, pitch = c.spawnYaw, c.spawnPit
	}
	c.state.Yaw = yaw
	c.state.Pitch = common.Clamp(pitch, -c.tuning.MaxPitch, c.tuning.MaxPitch)
	c.cam.SetTransform(c.state.Position, quatYX(c.state.Yaw, c.state.Pitch))

	c.log.Info().
		Float32("x", c.state.Position.X()).
		Float32("y", c.state.Position.Y()).
		Float32("z", c.state.Position.Z()).
		Msg("controller ready")
	return c, nil
}

func (c *controller) UpdateFunc() func(nowMillis float64) {
	return c.Update
}

func (c *controller) Update(nowMillis float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dt := c.frameDelta(nowMillis)
	av := input.Aggregate(c.src.Snapshot(), c.aggregate)
	s := &c.state

	// ground, vertical motion, sprint
	initial := c.classifier.Classify(s.Position, s.VerticalVelocity)
	startY := s.Position.Y()
	jumpEdge := s.latchJump(av.JumpHeld)
	if initial.Slipping {
		jumpEdge = false
	}
	s.Position[1] += c.integrateVertical(initial, jumpEdge, dt)
	s.updateSprint(av, initial.Grounded, c.tuning.CanSprintInAir)

	// slip overrides voluntary movement for the cooldown window
	if initial.Slipping {
		c.applySlip(initial, nowMillis, dt)
	}

	var moved mgl32.Vec3
	if speed := c.speed(nowMillis); speed > 0 {
		moved = c.resolvePlanar(av, speed, dt, initial, s.Position.Y()-startY)
	}

	q := c.applyLook(c.cam.Orientation(), av.LookDeltaX, av.LookDeltaY)
	c.advanceBob(moved[0] != 0 || moved[2] != 0, dt)

	// final height correction
	final := c.classifier.Classify(s.Position, s.VerticalVelocity)
	if floor, ok := final.FloorDistance(); ok && final.Grounded {
		s.Position[1] += c.tuning.PlayerHeight - floor
	}
	s.Grounded, s.Slipping = final.Grounded, final.Slipping

	c.cam.SetTransform(s.Position.Add(mgl32.Vec3{0, s.BobOffset, 0}), q)
}

// frameDelta converts the frame timestamp to seconds since the previous frame.
func (c *controller) frameDelta(nowMillis float64) float32 {
	if !c.started {
		c.started = true
		c.lastMillis = nowMillis
		return 0
	}
	elapsed := nowMillis - c.lastMillis
	c.lastMillis = nowMillis
	if elapsed <= 0 {
		return 0
	}
	dt := float32(elapsed / 1000)
	if dt > c.tuning.MaxFrameDelta {
		c.log.Warn().Float32("dt", dt).Float32("max", c.tuning.MaxFrameDelta).Msg("frame delta clamped")
		dt = c.tuning.MaxFrameDelta
	}
	return dt
}

// speed returns the voluntary move speed. The slip cooldown takes precedence over sprint.
func (c *controller) speed(nowMillis float64) float32 {
	t := c.tuning
	switch {
	case c.state.SlipCooldownActive(nowMillis):
		return t.WalkSpeed * t.SlipMoveMultiplier
	case c.state.Sprinting:
		return t.WalkSpeed * t.SprintMultiplier
	}
	return t.WalkSpeed
}

func (c *controller) State() PlayerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *controller) Ground() GroundResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.classifier.Classify(c.state.Position, c.state.VerticalVelocity)
}

func (c *controller) DebugSegments() []common.Segment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.debug.snapshot()
}

func (c *controller) Teleport(pos mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Position = pos
	c.state.VerticalVelocity = 0
	c.state.LaunchVelocity = 0
	c.state.FallTime = 0
	c.cam.SetTransform(pos.Add(mgl32.Vec3{0, c.state.BobOffset, 0}), c.cam.Orientation())
}

func (c *controller) SetLook(yaw, pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Yaw = yaw
	c.state.Pitch = common.Clamp(pitch, -c.tuning.MaxPitch, c.tuning.MaxPitch)
	c.cam.SetOrientation(quatYX(c.state.Yaw, c.state.Pitch))
}

func (c *controller) Tuning() Tuning {
	return c.tuning
}
