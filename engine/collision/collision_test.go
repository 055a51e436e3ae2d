package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayTriangleHitsFloorBelow(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{-0.5, 5, 0.5}, Direction: mgl32.Vec3{0, -1, 0}}
	dist, ok := RayTriangle(ray, mgl32.Vec3{-1, 0, -1}, mgl32.Vec3{-1, 0, 1}, mgl32.Vec3{1, 0, 1})

	require.True(t, ok)
	assert.InDelta(t, 5, dist, 1e-5)
}

func TestRayTriangleMisses(t *testing.T) {
	a, b, c := mgl32.Vec3{-1, 0, -1}, mgl32.Vec3{-1, 0, 1}, mgl32.Vec3{1, 0, 1}

	_, ok := RayTriangle(Ray{Origin: mgl32.Vec3{5, 5, 5}, Direction: mgl32.Vec3{0, -1, 0}}, a, b, c)
	assert.False(t, ok, "outside the triangle")

	_, ok = RayTriangle(Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, 1, 0}}, a, b, c)
	assert.False(t, ok, "behind the origin")

	_, ok = RayTriangle(Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{1, 0, 0}}, a, b, c)
	assert.False(t, ok, "parallel")
}

func TestRaySphere(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, -1}}

	assert.True(t, RaySphere(ray, mgl32.Vec3{0.5, 0, -10}, 1))
	assert.False(t, RaySphere(ray, mgl32.Vec3{3, 0, -10}, 1))
	assert.False(t, RaySphere(ray, mgl32.Vec3{0, 0, 10}, 1), "behind")
	assert.True(t, RaySphere(ray, mgl32.Vec3{0, 0, 0.5}, 1), "origin inside")
}

func TestSortHitsAndNearest(t *testing.T) {
	hits := []Hit{{Distance: 3, Owner: 1}, {Distance: 1, Owner: 2}, {Distance: 2, Owner: 3}}
	SortHits(hits)

	nearest, ok := Nearest(hits)
	require.True(t, ok)
	assert.Equal(t, ObjectID(2), nearest.Owner)
	assert.Equal(t, float32(3), hits[2].Distance)

	_, ok = Nearest(nil)
	assert.False(t, ok)
}

func TestTriangleNormal(t *testing.T) {
	n := TriangleNormal(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 1, n.Y(), 1e-6)

	assert.Equal(t, mgl32.Vec3{}, TriangleNormal(mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}))
}

func TestProviderFunc(t *testing.T) {
	var p Provider = ProviderFunc(func(origin, direction mgl32.Vec3) []Hit {
		return []Hit{{Distance: origin.Y()}}
	})
	hits := p.Cast(mgl32.Vec3{0, 4, 0}, mgl32.Vec3{0, -1, 0})
	require.Len(t, hits, 1)
	assert.Equal(t, float32(4), hits[0].Distance)
}
