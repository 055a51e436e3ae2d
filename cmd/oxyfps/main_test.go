package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/config"
	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/scenario"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoLevelParses(t *testing.T) {
	level, err := loadLevel("")
	require.NoError(t, err)
	assert.Equal(t, "demo", level.Name)

	names := make(map[string]bool)
	for _, o := range level.World {
		names[o.Name] = true
	}
	for _, want := range []string{"floor", "ramp", "platform", "steep", "step", "wall-north"} {
		assert.True(t, names[want], want)
	}

	world := level.BuildWorld()
	assert.Equal(t, len(level.World), world.Count())
	assert.NotEmpty(t, world.Wireframe(nil, common.SegmentColorGeometry()))
}

func TestDemoLevelStandsAtSpawn(t *testing.T) {
	level, err := loadLevel("")
	require.NoError(t, err)
	level.DurationMillis = 480

	res, err := level.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.State.Grounded)
	assert.InDelta(t, 1.7, res.State.Position.Y(), 1e-3)
	assert.Zero(t, res.Counters.Slips)
}

func TestLoadLevelFromFile(t *testing.T) {
	level, err := loadLevel(filepath.Join("..", "..", "engine", "scenario", "testdata", "wall.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "wall", level.Name)

	_, err = loadLevel("missing.yaml")
	assert.Error(t, err)
}

func TestAppendSegments(t *testing.T) {
	segs := []common.Segment{
		{From: mgl32.Vec3{0, 1, 0}, To: mgl32.Vec3{0, 1, -1}, Color: common.SegmentColorClear()},
		{From: mgl32.Vec3{1, 1, 0}, To: mgl32.Vec3{1, 1, -1}, Color: common.SegmentColorBlocked()},
	}
	out := appendSegments(nil, segs)
	require.Len(t, out, 4)
	assert.Equal(t, [3]float32{0, 1, -1}, out[1].Position)
	assert.Equal(t, common.SegmentColorBlocked(), out[3].Color)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		state controller.PlayerState
		want  string
	}{
		{"walking", controller.PlayerState{Grounded: true}, "walking (0.0, 0.0, 0.0)"},
		{"sprinting", controller.PlayerState{Grounded: true, Sprinting: true}, "sprinting (0.0, 0.0, 0.0)"},
		{"airborne", controller.PlayerState{Position: mgl32.Vec3{1, 2.5, -3}}, "airborne (1.0, 2.5, -3.0)"},
		{"slipping wins", controller.PlayerState{Slipping: true, Sprinting: true}, "slipping (0.0, 0.0, 0.0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.state))
		})
	}
}

func TestSimCommandRunsTestdata(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "engine", "scenario", "testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	require.NoError(t, simCommand(config.Default(), paths, 2, zerolog.Nop()))
}

func TestLoadScenariosAppliesBindings(t *testing.T) {
	bindings := input.DefaultBindings()
	bindings.Jump = []uint32{common.KeyTab}

	scenarios, err := loadScenarios([]string{filepath.Join("..", "..", "engine", "scenario", "testdata", "jump.yaml")}, bindings)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, []uint32{common.KeyTab}, scenarios[0].Bindings.Jump)
}

func TestReportCountsFailures(t *testing.T) {
	results := []*scenario.Result{
		{Name: "ok"},
		{Name: "bad", Failures: []string{"position off"}},
		{Name: "cancelled", Err: context.Canceled},
	}
	assert.Equal(t, 2, report(zerolog.Nop(), results))
}
