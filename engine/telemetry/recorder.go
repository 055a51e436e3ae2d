package telemetry

import (
	"context"
	"fmt"

	"github.com/Carmen-Shannon/oxy-fps/engine/collision"
	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/go-gl/mathgl/mgl32"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Recorder is a controller.Observer that counts jumps, landings, slips and blocked
// moves and records fall durations.
type Recorder interface {
	controller.Observer
}

type recorder struct {
	ctx   context.Context
	attrs []attribute.KeyValue

	jumps    metric.Int64Counter
	landings metric.Int64Counter
	slips    metric.Int64Counter
	blocked  metric.Int64Counter
	falls    metric.Float64Histogram
}

var _ Recorder = &recorder{}

// NewRecorder creates a Recorder. Instruments come from the global meter provider
// unless WithMeter is given.
//
// Parameters:
//   - options: functional options to configure the recorder
//
// Returns:
//   - Recorder: the recorder
//   - error: error if an instrument could not be created
func NewRecorder(options ...RecorderBuilderOption) (Recorder, error) {
	r := &recorder{ctx: context.Background()}
	m := meter()
	cfg := recorderConfig{}
	for _, option := range options {
		option(&cfg)
	}
	if cfg.meter != nil {
		m = cfg.meter
	}
	if cfg.ctx != nil {
		r.ctx = cfg.ctx
	}
	if cfg.player != "" {
		r.attrs = append(r.attrs, attribute.String("player", cfg.player))
	}

	var err error
	if r.jumps, err = m.Int64Counter("fps.jumps",
		metric.WithDescription("Jumps launched"),
		metric.WithUnit("{jump}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create jumps counter: %w", err)
	}
	if r.landings, err = m.Int64Counter("fps.landings",
		metric.WithDescription("Airborne to grounded transitions"),
		metric.WithUnit("{landing}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create landings counter: %w", err)
	}
	if r.slips, err = m.Int64Counter("fps.slips",
		metric.WithDescription("Slips started on steep slopes"),
		metric.WithUnit("{slip}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create slips counter: %w", err)
	}
	if r.blocked, err = m.Int64Counter("fps.moves.blocked",
		metric.WithDescription("Planar moves discarded by a collision probe"),
		metric.WithUnit("{move}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create blocked counter: %w", err)
	}
	if r.falls, err = m.Float64Histogram("fps.fall.duration",
		metric.WithDescription("Time spent off the ground before landing"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("failed to create fall histogram: %w", err)
	}
	return r, nil
}

func (r *recorder) with(extra ...attribute.KeyValue) metric.MeasurementOption {
	return metric.WithAttributes(append(append([]attribute.KeyValue(nil), r.attrs...), extra...)...)
}

func (r *recorder) OnJump(sprinting bool) {
	r.jumps.Add(r.ctx, 1, r.with(attribute.Bool("sprinting", sprinting)))
}

func (r *recorder) OnLand(fallTime float32) {
	r.landings.Add(r.ctx, 1, r.with())
	r.falls.Record(r.ctx, float64(fallTime), r.with())
}

func (r *recorder) OnSlip(normal mgl32.Vec3) {
	r.slips.Add(r.ctx, 1, r.with(attribute.Float64("normal.y", float64(normal.Y()))))
}

func (r *recorder) OnBlocked(owner collision.ObjectID) {
	r.blocked.Add(r.ctx, 1, r.with(attribute.Int64("owner", int64(owner))))
}
