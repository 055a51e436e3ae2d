package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Edge is a single wireframe line in model space.
type Edge struct {
	From mgl32.Vec3
	To   mgl32.Vec3
}

// --- Primitive shapes ---
// All shapes are centered on the model origin and wound counter-clockwise seen from outside.

// Box creates an axis-aligned box with the given half extents.
//
// Parameters:
//   - name: the model identifier
//   - hx, hy, hz: half extents along each axis
//
// Returns:
//   - Model: the box mesh (12 triangles)
func Box(name string, hx, hy, hz float32) Model {
	p := []mgl32.Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
	idx := []uint32{
		4, 5, 6, 4, 6, 7, // +Z
		1, 0, 3, 1, 3, 2, // -Z
		5, 1, 2, 5, 2, 6, // +X
		0, 4, 7, 0, 7, 3, // -X
		3, 7, 6, 3, 6, 2, // +Y
		0, 1, 5, 0, 5, 4, // -Y
	}
	return NewModel(WithName(name), WithPositions(p), WithIndices(idx))
}

// Plane creates a horizontal quad facing +Y.
//
// Parameters:
//   - name: the model identifier
//   - hx, hz: half extents along X and Z
//
// Returns:
//   - Model: the plane mesh (2 triangles)
func Plane(name string, hx, hz float32) Model {
	p := []mgl32.Vec3{{-hx, 0, -hz}, {-hx, 0, hz}, {hx, 0, hz}, {hx, 0, -hz}}
	return NewModel(WithName(name), WithPositions(p), WithIndices([]uint32{0, 1, 2, 0, 2, 3}))
}

// Ramp creates a wedge whose top face rises along +X from height 0 at -hx to
// height h at +hx. The rise angle is atan(h / 2hx).
//
// Parameters:
//   - name: the model identifier
//   - hx, hz: half extents of the footprint along X and Z
//   - h: height at the tall end
//
// Returns:
//   - Model: the wedge mesh (8 triangles)
func Ramp(name string, hx, hz, h float32) Model {
	p := []mgl32.Vec3{
		{-hx, 0, -hz}, {hx, 0, -hz}, {hx, 0, hz}, {-hx, 0, hz}, // footprint
		{hx, h, -hz}, {hx, h, hz}, // tall edge
	}
	idx := []uint32{
		0, 3, 5, 0, 5, 4, // slope
		1, 4, 5, 1, 5, 2, // +X
		0, 1, 2, 0, 2, 3, // -Y
		0, 4, 1, // -Z
		3, 2, 5, // +Z
	}
	return NewModel(WithName(name), WithPositions(p), WithIndices(idx))
}
