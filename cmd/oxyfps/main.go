package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-fps/config"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug  bool   `help:"Whether to enable debug logging."`
	Config string `help:"Configuration file (YAML, JSON or TOML)." short:"c" type:"existingfile"`

	Run struct {
		Level string `help:"Scenario file whose world and spawn replace the built-in level." type:"existingfile"`
	} `cmd:"" default:"1" help:"Open a window and walk around the demo level."`

	Sim struct {
		Scenarios []string `arg:"" name:"scenarios" help:"Scenario files to run headlessly." type:"existingfile"`
		Workers   int      `help:"Number of scenarios run in parallel." default:"4"`
	} `cmd:"" help:"Run scenarios without a window and report the results."`

	ShowConfig struct {
	} `cmd:"" name:"config" help:"Write the effective configuration to standard output."`
}

// The window and the GPU surface must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func setupLogger(cfg *config.Config, debug bool) zerolog.Logger {
	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}
	return log.Logger
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("oxyfps"),
		kong.Description("a first-person character controller for the oxy engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		writeError(err)
	}
	logger := setupLogger(cfg, CLI.Debug)

	switch ctx.Command() {
	case "run":
		err = runCommand(cfg, CLI.Run.Level, logger)
	case "sim <scenarios>":
		err = simCommand(cfg, CLI.Sim.Scenarios, CLI.Sim.Workers, logger)
	case "config":
		err = cfg.Write(os.Stdout)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		writeError(err)
	}
}
