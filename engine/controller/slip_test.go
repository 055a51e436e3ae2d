package controller

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/engine/collision"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supportOn(normal mgl32.Vec3) GroundResult {
	return GroundResult{
		Grounded: true,
		Slipping: true,
		Supports: []collision.Hit{{Distance: 1.7, Normal: normal, Owner: 7}},
	}
}

func TestSlideVector(t *testing.T) {
	h := float32(math.Sqrt2 / 2)
	tests := []struct {
		name   string
		normal mgl32.Vec3
		want   mgl32.Vec3
	}{
		{name: "slope facing +X", normal: mgl32.Vec3{h, h, 0}, want: mgl32.Vec3{h, -h, 0}},
		{name: "slope facing +Z", normal: mgl32.Vec3{0, h, h}, want: mgl32.Vec3{0, -h, h}},
		{name: "slope facing -X", normal: mgl32.Vec3{-h, h, 0}, want: mgl32.Vec3{-h, -h, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SlideVector(supportOn(tt.normal), false)
			require.NoError(t, err)
			assert.True(t, got.ApproxEqualThreshold(tt.want, 1e-6), "got %v want %v", got, tt.want)
		})
	}
}

func TestSlideVectorVerticalDirectionsAddNoDescent(t *testing.T) {
	h := float32(math.Sqrt2 / 2)
	g := supportOn(mgl32.Vec3{h, h, 0})

	flat, err := SlideVector(g, false)
	require.NoError(t, err)
	withY, err := SlideVector(g, true)
	require.NoError(t, err)

	assert.Equal(t, flat, withY)
	assert.Len(t, slipTestDirections(true), 6)
}

func TestSlideVectorWithoutSupport(t *testing.T) {
	_, err := SlideVector(GroundResult{Grounded: true}, false)
	assert.ErrorIs(t, err, ErrNoSupportSurface)
}

func TestApplySlipWithoutSupportPanics(t *testing.T) {
	c := &controller{tuning: DefaultTuning()}

	assert.PanicsWithError(t, ErrNoSupportSurface.Error(), func() {
		c.applySlip(GroundResult{Grounded: true, Slipping: true}, 0, 0.016)
	})
}

func TestApplySlipArmsCooldownOnce(t *testing.T) {
	h := float32(math.Sqrt2 / 2)
	counts := &Counters{}
	c := &controller{tuning: DefaultTuning(), log: zerolog.Nop(), observers: observers{counts}}
	g := supportOn(mgl32.Vec3{h, h, 0})

	c.applySlip(g, 1000, 0.1)
	assert.InDelta(t, 1500, c.state.SlipCooldownUntil, 1e-9)
	assert.InDelta(t, h*6*0.1, c.state.Position.X(), 1e-5)

	c.applySlip(g, 1400, 0.1)
	assert.InDelta(t, 1500, c.state.SlipCooldownUntil, 1e-9, "not re-armed while running")
	assert.Equal(t, 1, counts.Slips)

	c.applySlip(g, 1500, 0.1)
	assert.InDelta(t, 2000, c.state.SlipCooldownUntil, 1e-9)
	assert.Equal(t, 2, counts.Slips)
}
