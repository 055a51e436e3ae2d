// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "github.com/go-gl/mathgl/mgl32"

// GamepadState is a polled snapshot of a standard-mapping gamepad.
// Axis values are raw device values in [-1, 1]; deadzones are applied by the input aggregator, not here.
type GamepadState struct {
	// Move is the left stick (x = right, y = down as reported by GLFW).
	Move [2]float32 `yaml:"move"`
	// Look is the right stick (x = right, y = down as reported by GLFW).
	Look [2]float32 `yaml:"look"`
	// Jump is true while the south face button is held.
	Jump bool `yaml:"jump"`
	// Sprint is true while the left stick is pressed in.
	Sprint bool `yaml:"sprint"`
}

// Segment is a world-space line segment with an RGBA color.
// The controller emits these for its collision probes and the renderer draws them as a line list.
type Segment struct {
	// From is the start point in world space.
	From mgl32.Vec3
	// To is the end point in world space.
	To mgl32.Vec3
	// Color is the RGBA line color.
	Color [4]float32
}

// SegmentColorClear returns the color of a probe that found nothing in range.
func SegmentColorClear() [4]float32 { return [4]float32{0.2, 0.9, 0.3, 1} }

// SegmentColorBlocked returns the color of a probe that blocked the frame's movement.
func SegmentColorBlocked() [4]float32 { return [4]float32{0.95, 0.2, 0.2, 1} }

// SegmentColorGeometry returns the wireframe color for solid scene geometry.
func SegmentColorGeometry() [4]float32 { return [4]float32{0.8, 0.8, 0.85, 1} }
