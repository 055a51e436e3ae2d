package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

type recorderConfig struct {
	meter  metric.Meter
	ctx    context.Context
	player string
}

// RecorderBuilderOption configures a Recorder.
type RecorderBuilderOption func(*recorderConfig)

// WithMeter sets the meter instruments are created from.
//
// Parameters:
//   - m: the meter
//
// Returns:
//   - RecorderBuilderOption: a function that applies the meter option
func WithMeter(m metric.Meter) RecorderBuilderOption {
	return func(c *recorderConfig) {
		c.meter = m
	}
}

// WithContext sets the context measurements are recorded under.
//
// Parameters:
//   - ctx: the context
//
// Returns:
//   - RecorderBuilderOption: a function that applies the context option
func WithContext(ctx context.Context) RecorderBuilderOption {
	return func(c *recorderConfig) {
		c.ctx = ctx
	}
}

// WithPlayer tags every measurement with a player attribute.
//
// Parameters:
//   - name: the player or scenario name
//
// Returns:
//   - RecorderBuilderOption: a function that applies the player option
func WithPlayer(name string) RecorderBuilderOption {
	return func(c *recorderConfig) {
		c.player = name
	}
}
