package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/Carmen-Shannon/oxy-fps/config"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/scenario"
	"github.com/Carmen-Shannon/oxy-fps/engine/telemetry"
	"github.com/rs/zerolog"
)

// ErrScenariosFailed is returned when at least one scenario did not pass.
var ErrScenariosFailed = errors.New("one or more scenarios failed")

// loadScenarios reads every file and applies the configured key bindings.
func loadScenarios(paths []string, bindings input.Bindings) ([]*scenario.Scenario, error) {
	scenarios := make([]*scenario.Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := scenario.Load(p)
		if err != nil {
			return nil, err
		}
		s.Bindings = bindings
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// report logs one line per result and returns the number of failures.
func report(log zerolog.Logger, results []*scenario.Result) int {
	failed := 0
	for _, res := range results {
		if res.Passed() {
			log.Info().Str("scenario", res.Name).Int("frames", res.Frames).Msg("PASS")
			continue
		}
		failed++
		ev := log.Error().Str("scenario", res.Name).Int("frames", res.Frames)
		if res.Err != nil {
			ev = ev.Err(res.Err)
		}
		ev.Strs("failures", res.Failures).Msg("FAIL")
	}
	return failed
}

func simCommand(cfg *config.Config, paths []string, workers int, log zerolog.Logger) error {
	scenarios, err := loadScenarios(paths, cfg.Input.Bindings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	recorder, err := telemetry.NewRecorder(telemetry.WithContext(ctx), telemetry.WithPlayer("sim"))
	if err != nil {
		return err
	}

	results := scenario.RunAll(ctx, scenarios, workers,
		scenario.WithLogger(log.With().Str("component", "scenario").Logger()),
		scenario.WithObserver(recorder),
	)
	failed := report(log, results)
	log.Info().Int("total", len(results)).Int("failed", failed).Msg("simulation finished")
	if failed > 0 {
		return ErrScenariosFailed
	}
	return nil
}
