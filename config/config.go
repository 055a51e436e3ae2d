// Package config loads oxyfps settings from defaults, an optional config file and
// OXYFPS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. OXYFPS_CONTROLLER_WALK_SPEED.
const EnvPrefix = "OXYFPS"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// WindowConfig sizes the demo window.
type WindowConfig struct {
	Title         string `mapstructure:"title" yaml:"title"`
	Width         int    `mapstructure:"width" yaml:"width"`
	Height        int    `mapstructure:"height" yaml:"height"`
	CaptureCursor bool   `mapstructure:"capture_cursor" yaml:"capture_cursor"`
}

// EngineConfig sets the loop rates.
type EngineConfig struct {
	TickRate         float64 `mapstructure:"tick_rate" yaml:"tick_rate"`
	RenderFrameLimit float64 `mapstructure:"render_frame_limit" yaml:"render_frame_limit"`
	Profiler         bool    `mapstructure:"profiler" yaml:"profiler"`
}

// InputConfig extends the aggregation settings with pointer handling.
type InputConfig struct {
	input.AggregateConfig `mapstructure:",squash" yaml:",inline"`
	MouseScale            float32 `mapstructure:"mouse_scale" yaml:"mouse_scale"`
	InvertY               bool    `mapstructure:"invert_y" yaml:"invert_y"`
	// GamepadWaitMillis is how long the demo waits for a controller at startup; 0 skips the wait.
	GamepadWaitMillis int `mapstructure:"gamepad_wait_ms" yaml:"gamepad_wait_ms"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Pretty bool   `mapstructure:"pretty" yaml:"pretty"`
}

// Config is the full oxyfps configuration.
type Config struct {
	Controller controller.Tuning `mapstructure:"controller" yaml:"controller"`
	Input      InputConfig       `mapstructure:"input" yaml:"input"`
	Window     WindowConfig      `mapstructure:"window" yaml:"window"`
	Engine     EngineConfig      `mapstructure:"engine" yaml:"engine"`
	Log        LogConfig         `mapstructure:"log" yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Controller: controller.DefaultTuning(),
		Input: InputConfig{
			AggregateConfig: input.DefaultAggregateConfig(),
			MouseScale:      1,
		},
		Window: WindowConfig{
			Title:         "oxy-fps",
			Width:         1280,
			Height:        720,
			CaptureCursor: true,
		},
		Engine: EngineConfig{
			TickRate: 120,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Load reads configuration from defaults, the file at path (if non-empty) and the environment.
// The file type is taken from its extension; JSON, YAML and TOML are accepted.
//
// Parameters:
//   - path: the config file, or "" for defaults and environment only
//
// Returns:
//   - *Config: the merged configuration
//   - error: error if the file cannot be read or the result does not validate
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section.
//
// Returns:
//   - error: an error wrapping ErrInvalidConfig, or the controller's ErrInvalidTuning error
func (c *Config) Validate() error {
	if err := c.Controller.Validate(); err != nil {
		return err
	}
	if err := c.Input.Bindings.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Input.GamepadDeadzone < 0 || c.Input.GamepadDeadzone >= 1 {
		return fmt.Errorf("%w: input.gamepad_deadzone must be in [0, 1)", ErrInvalidConfig)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive", ErrInvalidConfig)
	}
	if c.Engine.TickRate < 0 || c.Engine.RenderFrameLimit < 0 {
		return fmt.Errorf("%w: engine rates must not be negative", ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LogLevel returns the configured zerolog level, falling back to info.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(common.Coalesce(c.Log.Level, "info"))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Write encodes the configuration as YAML.
//
// Parameters:
//   - w: the destination
//
// Returns:
//   - error: error if encoding fails
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return enc.Close()
}

// Write encodes the default configuration as YAML.
//
// Parameters:
//   - w: the destination
//
// Returns:
//   - error: error if encoding fails
func Write(w io.Writer) error {
	return Default().Write(w)
}
