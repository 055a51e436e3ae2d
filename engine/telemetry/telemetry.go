// Package telemetry exports controller locomotion events as OpenTelemetry metrics.
package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/Carmen-Shannon/oxy-fps/engine/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
