package scenario

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte(`name: empty`))
	require.NoError(t, err)

	assert.Equal(t, "empty", s.Name)
	assert.InDelta(t, 16, s.FrameMillis, 1e-9)
	assert.Equal(t, controller.DefaultTuning(), s.Tuning)
	assert.InDelta(t, controller.DefaultTuning().PlayerHeight, s.Spawn[1], 1e-6)
	assert.InDelta(t, 16, s.Duration(), 1e-9, "at least one frame")
}

func TestParseTuningOverridesKeepDefaults(t *testing.T) {
	s, err := Parse([]byte("tuning:\n  walk_speed: 6\n  probe_offsets: [-1.2]\n"))
	require.NoError(t, err)

	assert.InDelta(t, 6, s.Tuning.WalkSpeed, 1e-6)
	assert.Equal(t, []float32{-1.2}, s.Tuning.ProbeOffsets)
	assert.InDelta(t, controller.DefaultTuning().Gravity, s.Tuning.Gravity, 1e-6)
}

func TestParseSteps(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - {from: 0, to: 500, hold: [forward, sprint], look: [3, -1]}
  - from: 200
    to: 900
    gamepad: {move: [0.5, 0], jump: true}
`))
	require.NoError(t, err)

	require.Len(t, s.Steps, 2)
	assert.Equal(t, []input.Action{input.ActionForward, input.ActionSprint}, s.Steps[0].Hold)
	assert.Equal(t, [2]float32{3, -1}, s.Steps[0].Look)
	require.NotNil(t, s.Steps[1].Gamepad)
	assert.True(t, s.Steps[1].Gamepad.Jump)
	assert.InDelta(t, 900, s.Duration(), 1e-9)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "unknown shape", doc: "world: [{shape: sphere}]", want: ErrInvalidScenario},
		{name: "unknown action", doc: "steps: [{from: 0, to: 10, hold: [crouch]}]", want: ErrInvalidScenario},
		{name: "empty step", doc: "steps: [{from: 10, to: 10}]", want: ErrInvalidScenario},
		{name: "zero frame", doc: "frame_ms: 0", want: ErrInvalidScenario},
		{name: "bad tuning", doc: "tuning: {gravity: 0}", want: controller.ErrInvalidTuning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("nmae: typo"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestLoadNamesFromFile(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "wall.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "wall", s.Name)

	_, err = Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildWorld(t *testing.T) {
	s, err := Parse([]byte(`
world:
  - {shape: plane, size: [5, 0, 5]}
  - {shape: box, size: [1, 1, 1], solid: false}
  - {shape: ramp, size: [2, 1, 2], enabled: false}
`))
	require.NoError(t, err)

	world := s.BuildWorld()

	assert.Equal(t, 3, world.Count())
	solids := world.Solids()
	require.Len(t, solids, 1)
	assert.Equal(t, "plane-0", solids[0].Model().Name())
	assert.Equal(t, float32(1), solids[0].Scale().X())
}

func TestRunTestdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			s, err := Load(f)
			require.NoError(t, err)

			res, err := s.Run(context.Background())
			require.NoError(t, err)
			assert.Empty(t, res.Failures)
			assert.True(t, res.Passed())
		})
	}
}

func TestRunReportsFailedExpectations(t *testing.T) {
	s, err := Parse([]byte(`
spawn: [0.3, 1.7, 0.2]
world: [{shape: plane, size: [10, 0, 10]}]
expect:
  position: [5, 1.7, 5]
  grounded: false
  jumps: 2
`))
	require.NoError(t, err)

	res, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, res.Passed())
	assert.Len(t, res.Failures, 3)
	assert.Equal(t, 2, res.Frames, "frames at 0 and 16ms")
}

func TestRunHonoursCancellation(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "walk_flat.yaml"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Run(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Zero(t, res.Frames)
	assert.False(t, res.Passed())
}

func TestRunSharesObserver(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "jump.yaml"))
	require.NoError(t, err)
	shared := &controller.Counters{}

	res, err := s.Run(context.Background(), WithObserver(shared), WithObserver(nil))
	require.NoError(t, err)

	assert.Equal(t, res.Counters, *shared)
}

func TestRunAll(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	var scenarios []*Scenario
	for _, f := range files {
		s, err := Load(f)
		require.NoError(t, err)
		scenarios = append(scenarios, s)
	}

	results := RunAll(context.Background(), scenarios, 2)

	require.Len(t, results, len(scenarios))
	for i, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, scenarios[i].Name, r.Name)
		assert.True(t, r.Passed(), "%s: %v %v", r.Name, r.Err, r.Failures)
	}
	assert.Empty(t, RunAll(context.Background(), nil, 4))
}

func TestRunUsesScenarioBindings(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "jump.yaml"))
	require.NoError(t, err)
	s.Bindings.Jump = []uint32{common.KeyTab}

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Counters.Jumps)
	assert.True(t, res.Passed(), res.Failures)
}
