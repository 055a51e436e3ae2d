package common

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPerspectiveMapsNearAndFarToWebGPUDepth(t *testing.T) {
	near, far := float32(0.1), float32(100)
	proj := Perspective(float32(math.Pi/2), 1, near, far)

	nearClip := proj.Mul4x1(mgl32.Vec4{0, 0, -near, 1})
	farClip := proj.Mul4x1(mgl32.Vec4{0, 0, -far, 1})

	assert.InDelta(t, 0, nearClip.Z()/nearClip.W(), 1e-5)
	assert.InDelta(t, 1, farClip.Z()/farClip.W(), 1e-5)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(float32(3), -1, 1))
	assert.Equal(t, float32(-1), Clamp(float32(-3), -1, 1))
	assert.Equal(t, 5, Clamp(5, 0, 10))
}

func TestFlattenY(t *testing.T) {
	flat := FlattenY(mgl32.Vec3{3, 10, 4})
	assert.InDelta(t, 0.6, flat.X(), 1e-6)
	assert.InDelta(t, 0, flat.Y(), 1e-6)
	assert.InDelta(t, 0.8, flat.Z(), 1e-6)

	assert.Equal(t, mgl32.Vec3{}, FlattenY(mgl32.Vec3{0, 1, 0}))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
}

func TestMillis(t *testing.T) {
	assert.InDelta(t, 16.5, Millis(16500*time.Microsecond), 1e-9)
	assert.Equal(t, 250*time.Millisecond, MillisDuration(250))
	assert.Equal(t, 1500*time.Microsecond, MillisDuration(1.5))
}
