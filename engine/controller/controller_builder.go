package controller

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controller)

// WithTuning replaces the default tuning. The tuning is validated by New.
//
// Parameters:
//   - t: the tuning to use
//
// Returns:
//   - ControllerBuilderOption: functional option to set the tuning
func WithTuning(t Tuning) ControllerBuilderOption {
	return func(c *controller) {
		c.tuning = t
	}
}

// WithAggregateConfig sets the bindings and gamepad tuning used to build the action vector.
//
// Parameters:
//   - cfg: the aggregation config
//
// Returns:
//   - ControllerBuilderOption: functional option to set the aggregation config
func WithAggregateConfig(cfg input.AggregateConfig) ControllerBuilderOption {
	return func(c *controller) {
		c.aggregate = cfg
	}
}

// WithLogger sets the logger. Defaults to a disabled logger.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - ControllerBuilderOption: functional option to set the logger
func WithLogger(l zerolog.Logger) ControllerBuilderOption {
	return func(c *controller) {
		c.log = l.With().Str("component", "controller").Logger()
	}
}

// WithObserver registers an Observer. May be given more than once.
//
// Parameters:
//   - o: the observer
//
// Returns:
//   - ControllerBuilderOption: functional option to add the observer
func WithObserver(o Observer) ControllerBuilderOption {
	return func(c *controller) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithSpawn sets the starting eye position instead of the camera's.
//
// Parameters:
//   - pos: the starting eye position
//
// Returns:
//   - ControllerBuilderOption: functional option to set the spawn point
func WithSpawn(pos mgl32.Vec3) ControllerBuilderOption {
	return func(c *controller) {
		c.spawn = &pos
	}
}

// WithLook sets the starting view direction instead of the camera's.
//
// Parameters:
//   - yaw: radians about +Y
//   - pitch: radians about +X, clamped by New
//
// Returns:
//   - ControllerBuilderOption: functional option to set the initial look
func WithLook(yaw, pitch float32) ControllerBuilderOption {
	return func(c *controller) {
		c.spawnYaw, c.spawnPit, c.hasLook = yaw, pitch, true
	}
}
