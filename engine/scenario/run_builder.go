package scenario

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/rs/zerolog"
)

type runConfig struct {
	log       zerolog.Logger
	observers []controller.Observer
}

// RunOption configures a scenario run.
type RunOption func(*runConfig)

// WithLogger sets the logger handed to the controller, tagged with the scenario name.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - RunOption: a function that applies the logger option
func WithLogger(log zerolog.Logger) RunOption {
	return func(c *runConfig) {
		c.log = log
	}
}

// WithObserver adds an observer to every controller the run creates.
// With RunAll the observer receives events from concurrent runs.
//
// Parameters:
//   - o: the observer
//
// Returns:
//   - RunOption: a function that applies the observer option
func WithObserver(o controller.Observer) RunOption {
	return func(c *runConfig) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}
