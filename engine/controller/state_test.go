package controller

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLatchJump(t *testing.T) {
	var s PlayerState
	held := []bool{true, true, true, false, true, false, false, true}
	want := []bool{true, false, false, false, true, false, false, true}

	for i := range held {
		assert.Equal(t, want[i], s.latchJump(held[i]), "frame %d", i)
	}
}

func TestUpdateSprint(t *testing.T) {
	tests := []struct {
		name      string
		start     bool
		av        input.ActionVector
		grounded  bool
		inAir     bool
		sprinting bool
	}{
		{name: "held on ground", av: input.ActionVector{SprintHeld: true}, grounded: true, sprinting: true},
		{name: "held in air", av: input.ActionVector{SprintHeld: true}},
		{name: "held in air when allowed", av: input.ActionVector{SprintHeld: true}, inAir: true, sprinting: true},
		{name: "released while moving", start: true, av: input.ActionVector{AnyMoveHeld: true}, grounded: true, sprinting: true},
		{name: "released and stopped", start: true, grounded: true},
		{name: "kept through a jump", start: true, av: input.ActionVector{SprintHeld: true, AnyMoveHeld: true}, sprinting: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := PlayerState{Sprinting: tt.start}
			s.updateSprint(tt.av, tt.grounded, tt.inAir)
			assert.Equal(t, tt.sprinting, s.Sprinting)
		})
	}
}

func TestSlipCooldownActive(t *testing.T) {
	s := PlayerState{SlipCooldownUntil: 500}

	assert.True(t, s.SlipCooldownActive(499.9))
	assert.False(t, s.SlipCooldownActive(500))
}

func TestSegmentRing(t *testing.T) {
	seg := func(z float32) common.Segment { return common.Segment{From: mgl32.Vec3{0, 0, z}} }

	r := newSegmentRing(3)
	assert.Empty(t, r.snapshot())
	r.push(seg(1))
	r.push(seg(2))
	assert.Equal(t, []common.Segment{seg(1), seg(2)}, r.snapshot())

	r.push(seg(3))
	r.push(seg(4))
	r.push(seg(5))
	assert.Equal(t, []common.Segment{seg(3), seg(4), seg(5)}, r.snapshot())

	empty := newSegmentRing(0)
	empty.push(seg(1))
	assert.Empty(t, empty.snapshot())
}

func TestTuningValidate(t *testing.T) {
	assert.NoError(t, DefaultTuning().Validate())

	mutations := map[string]func(*Tuning){
		"height":    func(t *Tuning) { t.PlayerHeight = 0 },
		"slope":     func(t *Tuning) { t.SlopeDotThreshold = 1.5 },
		"pitch":     func(t *Tuning) { t.MaxPitch = 2 },
		"frame":     func(t *Tuning) { t.MaxFrameDelta = 0 },
		"clearance": func(t *Tuning) { t.CollisionClearance = -1 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			tuning := DefaultTuning()
			mutate(&tuning)
			assert.ErrorIs(t, tuning.Validate(), ErrInvalidTuning)
		})
	}
}
