// Package collision defines the ray query contract between the character controller and the scene,
// plus the pure intersection primitives the scene uses to answer it.
package collision

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// ObjectID identifies the scene object that owns a hit surface.
type ObjectID uint64

// Hit is a single ray intersection against solid geometry.
// Normal is always a unit vector in world space.
type Hit struct {
	Distance float32
	Normal   mgl32.Vec3
	Owner    ObjectID
}

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Provider answers ray queries against the solid subset of a scene.
// Implementations must be side-effect free and safe to call from several goroutines.
type Provider interface {
	// Cast intersects a ray against every solid object.
	// An empty result means open space and is not an error.
	//
	// Parameters:
	//   - origin: world space ray origin
	//   - direction: world space ray direction, normalized by the implementation
	//
	// Returns:
	//   - []Hit: hits sorted nearest first
	Cast(origin, direction mgl32.Vec3) []Hit
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(origin, direction mgl32.Vec3) []Hit

// Cast calls f(origin, direction).
func (f ProviderFunc) Cast(origin, direction mgl32.Vec3) []Hit {
	return f(origin, direction)
}

// Nearest returns the first hit of a sorted result.
//
// Parameters:
//   - hits: hits sorted nearest first
//
// Returns:
//   - Hit: the nearest hit
//   - bool: false when hits is empty
func Nearest(hits []Hit) (Hit, bool) {
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

// SortHits orders hits nearest first. Ties keep their relative order.
func SortHits(hits []Hit) {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
}

const epsilon = 1e-7

// RayTriangle intersects a ray with a triangle using the Möller–Trumbore algorithm.
// Both faces of the triangle are hit.
//
// Parameters:
//   - ray: the ray to test, direction need not be unit length
//   - a, b, c: triangle vertices
//
// Returns:
//   - float32: the ray parameter of the hit
//   - bool: true if the ray hits the triangle at t >= 0
func RayTriangle(ray Ray, a, b, c mgl32.Vec3) (float32, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if det > -epsilon && det < epsilon {
		return 0, false
	}
	inv := 1 / det
	s := ray.Origin.Sub(a)
	u := inv * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(edge1)
	v := inv * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := inv * edge2.Dot(q)
	if t < 0 {
		return 0, false
	}
	return t, true
}

// RaySphere reports whether a ray passes within radius of center, ahead of or around its origin.
// Used as a broad phase before triangle tests.
//
// Parameters:
//   - ray: the ray to test, direction must be unit length
//   - center: sphere center
//   - radius: sphere radius
//
// Returns:
//   - bool: true if the ray touches the sphere
func RaySphere(ray Ray, center mgl32.Vec3, radius float32) bool {
	oc := center.Sub(ray.Origin)
	along := oc.Dot(ray.Direction)
	distSq := oc.Dot(oc)
	rSq := radius * radius
	if along < 0 && distSq > rSq {
		return false
	}
	perpSq := distSq - along*along
	return perpSq <= rSq
}

// TriangleNormal returns the unit face normal of a counter-clockwise triangle.
// Degenerate triangles return the zero vector.
func TriangleNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() < epsilon {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}
