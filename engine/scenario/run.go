package scenario

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Result is the outcome of one scenario run.
type Result struct {
	Name     string
	Frames   int
	State    controller.PlayerState
	Counters controller.Counters
	// MinY and MaxY are the eye height extremes over the run.
	MinY float32
	MaxY float32
	// Failures lists every expectation that did not hold.
	Failures []string
	// Err is set when the run could not start or was cancelled.
	Err error
}

// Passed reports whether the run completed and every expectation held.
func (r *Result) Passed() bool {
	return r.Err == nil && len(r.Failures) == 0
}

// Run drives a fresh controller through the scenario at its fixed frame interval.
// Cancellation is checked between frames.
//
// Parameters:
//   - ctx: cancels the run
//   - options: functional options to configure the run
//
// Returns:
//   - *Result: the outcome, partial if the run was cancelled
//   - error: error if the controller could not be created or ctx was cancelled
func (s *Scenario) Run(ctx context.Context, options ...RunOption) (*Result, error) {
	cfg := runConfig{log: zerolog.Nop()}
	for _, option := range options {
		option(&cfg)
	}
	log := cfg.log.With().Str("scenario", s.Name).Logger()
	res := &Result{Name: s.Name}

	script := input.NewScript(s.Bindings, s.Steps...)
	cam := camera.NewCamera()
	counters := &controller.Counters{}
	aggregate := input.DefaultAggregateConfig()
	aggregate.Bindings = s.Bindings
	ctrlOpts := []controller.ControllerBuilderOption{
		controller.WithTuning(s.Tuning),
		controller.WithAggregateConfig(aggregate),
		controller.WithSpawn(mgl32.Vec3(s.Spawn)),
		controller.WithLook(mgl32.DegToRad(s.Look[0]), mgl32.DegToRad(s.Look[1])),
		controller.WithLogger(log),
		controller.WithObserver(counters),
	}
	for _, o := range cfg.observers {
		ctrlOpts = append(ctrlOpts, controller.WithObserver(o))
	}
	ctrl, err := controller.New(cam, s.BuildWorld(), script, ctrlOpts...)
	if err != nil {
		res.Err = err
		return res, err
	}

	res.MinY, res.MaxY = float32(math.Inf(1)), float32(math.Inf(-1))
	end := s.Duration()
	for now := 0.0; now <= end; now += s.FrameMillis {
		if err := ctx.Err(); err != nil {
			res.Err = err
			res.State, res.Counters = ctrl.State(), *counters
			log.Warn().Err(err).Int("frames", res.Frames).Msg("scenario cancelled")
			return res, err
		}
		script.Seek(now)
		ctrl.Update(now)
		res.Frames++

		y := ctrl.State().Position.Y()
		res.MinY, res.MaxY = min(res.MinY, y), max(res.MaxY, y)
	}

	res.State, res.Counters = ctrl.State(), *counters
	res.Failures = s.Expect.check(res)
	log.Info().
		Int("frames", res.Frames).
		Bool("passed", res.Passed()).
		Strs("failures", res.Failures).
		Msg("scenario finished")
	return res, nil
}

// RunAll runs independent scenarios in parallel on a worker pool. Results are in input order;
// a failed or cancelled run reports through Result.Err.
//
// Parameters:
//   - ctx: cancels every run
//   - scenarios: the scenarios to run
//   - workers: the maximum number of concurrent runs (at least 1)
//   - options: functional options applied to every run
//
// Returns:
//   - []*Result: one result per scenario
func RunAll(ctx context.Context, scenarios []*Scenario, workers int, options ...RunOption) []*Result {
	results := make([]*Result, len(scenarios))
	if len(scenarios) == 0 {
		return results
	}
	pool := worker.NewDynamicWorkerPool(max(workers, 1), max(len(scenarios), 1), 1*time.Second)

	// the pool's own Wait blocks until workers idle out, so runs are joined with a WaitGroup
	var wg sync.WaitGroup
	for i, s := range scenarios {
		wg.Add(1)
		idx, sc := i, s
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				res, err := sc.Run(ctx, options...)
				results[idx] = res
				return res, err
			},
		})
	}
	wg.Wait()
	return results
}

func (e Expect) check(r *Result) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}
	st := r.State

	if e.Position != nil {
		tol := e.Tolerance
		if tol == 0 {
			tol = 0.05
		}
		want := mgl32.Vec3(*e.Position)
		if d := st.Position.Sub(want).Len(); d > tol {
			fail("position %v is %.3f from %v (tolerance %.3f)", st.Position, d, want, tol)
		}
	}
	if e.Grounded != nil && st.Grounded != *e.Grounded {
		fail("grounded = %t, want %t", st.Grounded, *e.Grounded)
	}
	if e.Slipping != nil && st.Slipping != *e.Slipping {
		fail("slipping = %t, want %t", st.Slipping, *e.Slipping)
	}
	if e.Sprinting != nil && st.Sprinting != *e.Sprinting {
		fail("sprinting = %t, want %t", st.Sprinting, *e.Sprinting)
	}

	c := r.Counters
	if e.Jumps != nil && c.Jumps != *e.Jumps {
		fail("jumps = %d, want %d", c.Jumps, *e.Jumps)
	}
	if c.Landings < e.MinLandings {
		fail("landings = %d, want at least %d", c.Landings, e.MinLandings)
	}
	if c.Slips < e.MinSlips {
		fail("slips = %d, want at least %d", c.Slips, e.MinSlips)
	}
	if c.Blocked < e.MinBlocked {
		fail("blocked moves = %d, want at least %d", c.Blocked, e.MinBlocked)
	}
	if e.MaxBlocked != nil && c.Blocked > *e.MaxBlocked {
		fail("blocked moves = %d, want at most %d", c.Blocked, *e.MaxBlocked)
	}

	if e.MinY != nil && r.MinY < *e.MinY {
		fail("eye dropped to %.3f, want at least %.3f", r.MinY, *e.MinY)
	}
	if e.MaxY != nil && r.MaxY > *e.MaxY {
		fail("eye rose to %.3f, want at most %.3f", r.MaxY, *e.MaxY)
	}
	return failures
}
