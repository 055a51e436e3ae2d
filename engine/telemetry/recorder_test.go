package telemetry

import (
	"context"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type measurement struct {
	name  string
	value float64
	attrs attribute.Set
}

type sink struct {
	mu  sync.Mutex
	got []measurement
}

func (s *sink) add(name string, v float64, opts []metric.AddOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, measurement{name: name, value: v, attrs: metric.NewAddConfig(opts).Attributes()})
}

func (s *sink) record(name string, v float64, opts []metric.RecordOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, measurement{name: name, value: v, attrs: metric.NewRecordConfig(opts).Attributes()})
}

func (s *sink) named(name string) []measurement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []measurement
	for _, m := range s.got {
		if m.name == name {
			out = append(out, m)
		}
	}
	return out
}

type recordingMeter struct {
	noop.Meter
	sink *sink
}

func (m recordingMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	return recordingCounter{name: name, sink: m.sink}, nil
}

func (m recordingMeter) Float64Histogram(name string, _ ...metric.Float64HistogramOption) (metric.Float64Histogram, error) {
	return recordingHistogram{name: name, sink: m.sink}, nil
}

type recordingCounter struct {
	noop.Int64Counter
	name string
	sink *sink
}

func (c recordingCounter) Add(_ context.Context, v int64, opts ...metric.AddOption) {
	c.sink.add(c.name, float64(v), opts)
}

type recordingHistogram struct {
	noop.Float64Histogram
	name string
	sink *sink
}

func (h recordingHistogram) Record(_ context.Context, v float64, opts ...metric.RecordOption) {
	h.sink.record(h.name, v, opts)
}

func TestRecorderCountsEvents(t *testing.T) {
	s := &sink{}
	r, err := NewRecorder(WithMeter(recordingMeter{sink: s}), WithPlayer("p1"))
	require.NoError(t, err)

	r.OnJump(true)
	r.OnJump(false)
	r.OnLand(0.75)
	r.OnSlip(mgl32.Vec3{0.7, 0.7, 0})
	r.OnBlocked(42)

	jumps := s.named("fps.jumps")
	require.Len(t, jumps, 2)
	sprinting, ok := jumps[0].attrs.Value("sprinting")
	require.True(t, ok)
	assert.True(t, sprinting.AsBool())
	player, ok := jumps[1].attrs.Value("player")
	require.True(t, ok)
	assert.Equal(t, "p1", player.AsString())

	assert.Len(t, s.named("fps.landings"), 1)
	falls := s.named("fps.fall.duration")
	require.Len(t, falls, 1)
	assert.InDelta(t, 0.75, falls[0].value, 1e-6)

	assert.Len(t, s.named("fps.slips"), 1)
	blocked := s.named("fps.moves.blocked")
	require.Len(t, blocked, 1)
	owner, ok := blocked[0].attrs.Value("owner")
	require.True(t, ok)
	assert.Equal(t, int64(42), owner.AsInt64())
}

func TestRecorderWithGlobalMeter(t *testing.T) {
	r, err := NewRecorder(WithContext(context.Background()))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		r.OnJump(false)
		r.OnLand(1)
	})
}

func TestRecorderNoopMeter(t *testing.T) {
	r, err := NewRecorder(WithMeter(noop.NewMeterProvider().Meter("test")))
	require.NoError(t, err)
	assert.NotNil(t, r)
}
