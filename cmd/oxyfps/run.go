package main

import (
	"context"
	_ "embed"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/config"
	"github.com/Carmen-Shannon/oxy-fps/engine"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/Carmen-Shannon/oxy-fps/engine/renderer"
	"github.com/Carmen-Shannon/oxy-fps/engine/scenario"
	"github.com/Carmen-Shannon/oxy-fps/engine/telemetry"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

//go:embed level.yaml
var demoLevel []byte

const titleInterval = 250 * time.Millisecond

func loadLevel(path string) (*scenario.Scenario, error) {
	if path != "" {
		return scenario.Load(path)
	}
	return scenario.Parse(demoLevel)
}

// appendSegments converts probe segments into line list vertices.
func appendSegments(dst []model.GPULineVertex, segments []common.Segment) []model.GPULineVertex {
	for _, s := range segments {
		dst = append(dst,
			model.GPULineVertex{Position: s.From, Color: s.Color},
			model.GPULineVertex{Position: s.To, Color: s.Color},
		)
	}
	return dst
}

// describe summarizes the player state for the window title.
func describe(s controller.PlayerState) string {
	mode := "walking"
	switch {
	case s.Slipping:
		mode = "slipping"
	case !s.Grounded:
		mode = "airborne"
	case s.Sprinting:
		mode = "sprinting"
	}
	return fmt.Sprintf("%s (%.1f, %.1f, %.1f)", mode, s.Position.X(), s.Position.Y(), s.Position.Z())
}

func runCommand(cfg *config.Config, levelPath string, log zerolog.Logger) error {
	level, err := loadLevel(levelPath)
	if err != nil {
		return err
	}
	world := level.BuildWorld()
	log.Info().Str("level", level.Name).Int("objects", world.Count()).Msg("level loaded")

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithCursorCaptured(cfg.Window.CaptureCursor),
	)
	defer func() { _ = win.Close() }()

	cam := camera.NewCamera(
		camera.WithFov(mgl32.DegToRad(70)),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithNear(0.05),
		camera.WithFar(500),
	)

	acc := input.NewAccumulator(
		input.WithMouseScale(cfg.Input.MouseScale),
		input.WithInvertY(cfg.Input.InvertY),
	)
	var overlay atomic.Bool
	win.SetKeyDownCallback(func(code uint32) {
		if code == common.KeyF3 {
			log.Debug().Bool("overlay", !overlay.Load()).Msg("probe overlay toggled")
			overlay.Store(!overlay.Load())
			return
		}
		acc.KeyDown(code)
	})
	win.SetKeyUpCallback(acc.KeyUp)
	win.SetMouseMoveCallback(acc.MouseMove)
	win.SetGamepadCallback(acc.SetGamepad)
	win.SetCaptureCallback(func(captured bool) {
		// Keys held while the pointer was free never get their release event.
		acc.Reset()
		log.Debug().Bool("captured", captured).Msg("cursor capture changed")
	})
	win.SetGamepadConnectCallback(func(connected bool) {
		log.Info().Bool("connected", connected).Msg("gamepad changed")
	})

	recorder, err := telemetry.NewRecorder(telemetry.WithPlayer("local"))
	if err != nil {
		return err
	}
	counters := &controller.Counters{}
	ctrl, err := controller.New(cam, world, acc,
		controller.WithTuning(cfg.Controller),
		controller.WithAggregateConfig(cfg.Input.AggregateConfig),
		controller.WithLogger(log.With().Str("component", "controller").Logger()),
		controller.WithObserver(recorder),
		controller.WithObserver(counters),
		controller.WithSpawn(mgl32.Vec3(level.Spawn)),
		controller.WithLook(mgl32.DegToRad(level.Look[0]), mgl32.DegToRad(level.Look[1])),
	)
	if err != nil {
		return err
	}

	presentMode := renderer.PresentModeVSync
	if cfg.Engine.RenderFrameLimit > 0 {
		presentMode = renderer.PresentModeUncapped
	}
	r, err := renderer.NewRenderer(win,
		renderer.WithPresentMode(presentMode),
		renderer.WithLogger(log.With().Str("component", "renderer").Logger()),
	)
	if err != nil {
		return err
	}
	defer r.Close()

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(cam),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.RenderFrameLimit),
		engine.WithProfiling(cfg.Engine.Profiler),
		engine.WithLogger(log.With().Str("component", "engine").Logger()),
	)
	eng.SetTickCallback(ctrl.UpdateFunc())

	geometry := world.Wireframe(nil, common.SegmentColorGeometry())
	lines := make([]model.GPULineVertex, 0, len(geometry)+2*cfg.Controller.DebugSegmentCap)
	var lastTitle time.Time
	var lastErr string
	eng.SetRenderCallback(func(float32) {
		lines = append(lines[:0], geometry...)
		if overlay.Load() {
			lines = appendSegments(lines, ctrl.DebugSegments())
		}
		if err := r.Render(cam.Uniform(), lines); err != nil {
			if err.Error() != lastErr {
				log.Warn().Err(err).Msg("frame dropped")
			}
			lastErr = err.Error()
		} else {
			lastErr = ""
		}

		if now := time.Now(); now.Sub(lastTitle) >= titleInterval {
			lastTitle = now
			win.SetTitle(cfg.Window.Title + " | " + describe(ctrl.State()))
		}
	})

	waitCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Input.GamepadWaitMillis > 0 {
		go func() {
			wait := common.MillisDuration(float64(cfg.Input.GamepadWaitMillis))
			if input.WaitForGamepad(waitCtx, win, wait) {
				log.Info().Msg("gamepad ready")
			} else if waitCtx.Err() == nil {
				log.Info().Dur("waited", wait).Msg("no gamepad, using keyboard and mouse")
			}
		}()
	}

	eng.Run()

	log.Info().
		Int("jumps", counters.Jumps).
		Int("landings", counters.Landings).
		Int("slips", counters.Slips).
		Int("blocked", counters.Blocked).
		Float32("longest_fall", counters.LongestFall).
		Msg("session finished")
	return nil
}
