// Package scenario runs the character controller headlessly against scripted input
// and checks the outcome. Scenarios are YAML documents.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is wrapped by every scenario validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Shape names a world primitive.
type Shape string

const (
	ShapeBox   Shape = "box"
	ShapeRamp  Shape = "ramp"
	ShapePlane Shape = "plane"
)

// ObjectSpec places one primitive in the world.
type ObjectSpec struct {
	Name  string `yaml:"name"`
	Shape Shape  `yaml:"shape"`
	// Size is the box half extents, the plane half extents (x, _, z) or the
	// ramp footprint half extents and tall-end height (x, height, z).
	Size     [3]float32 `yaml:"size"`
	Position [3]float32 `yaml:"position"`
	// Rotation is in degrees, applied yaw (Y) then pitch (X) then roll (Z).
	Rotation [3]float32 `yaml:"rotation"`
	Scale    [3]float32 `yaml:"scale"`
	// Solid defaults to true.
	Solid   *bool `yaml:"solid"`
	Enabled *bool `yaml:"enabled"`
}

// Expect lists the checks made after the last frame. Unset fields are not checked.
type Expect struct {
	Position  *[3]float32 `yaml:"position"`
	Tolerance float32     `yaml:"tolerance"`
	Grounded  *bool       `yaml:"grounded"`
	Slipping  *bool       `yaml:"slipping"`
	Sprinting *bool       `yaml:"sprinting"`

	Jumps       *int `yaml:"jumps"`
	MinLandings int  `yaml:"min_landings"`
	MinSlips    int  `yaml:"min_slips"`
	MinBlocked  int  `yaml:"min_blocked"`
	MaxBlocked  *int `yaml:"max_blocked"`

	// MinY and MaxY bound the eye height over the whole run.
	MinY *float32 `yaml:"min_y"`
	MaxY *float32 `yaml:"max_y"`
}

// Scenario is one headless controller run.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// FrameMillis is the fixed frame interval.
	FrameMillis float64 `yaml:"frame_ms"`
	// DurationMillis defaults to the end of the last input step.
	DurationMillis float64 `yaml:"duration_ms"`

	Spawn [3]float32 `yaml:"spawn"`
	// Look is yaw and pitch in degrees.
	Look [2]float32 `yaml:"look"`

	// Tuning starts from the controller defaults; keys present in the file override them.
	Tuning   controller.Tuning  `yaml:"tuning"`
	Bindings input.Bindings     `yaml:"-"`
	World    []ObjectSpec       `yaml:"world"`
	Steps    []input.ScriptStep `yaml:"steps"`
	Expect   Expect             `yaml:"expect"`
}

func newScenario() *Scenario {
	return &Scenario{
		FrameMillis: 16,
		Spawn:       [3]float32{0, controller.DefaultTuning().PlayerHeight, 0},
		Tuning:      controller.DefaultTuning(),
		Bindings:    input.DefaultBindings(),
	}
}

// Load reads and validates a scenario file. The scenario name defaults to the file name.
//
// Parameters:
//   - path: the YAML file
//
// Returns:
//   - *Scenario: the scenario
//   - error: error if the file cannot be read, decoded or validated
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Name = common.Coalesce(s.Name, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	return s, nil
}

// Parse decodes and validates a scenario document. Unknown keys are rejected.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - *Scenario: the scenario
//   - error: error if decoding or validation fails
func Parse(data []byte) (*Scenario, error) {
	s := newScenario()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the frame timing, world objects, input steps and tuning.
//
// Returns:
//   - error: an error wrapping ErrInvalidScenario or controller.ErrInvalidTuning
func (s *Scenario) Validate() error {
	if s.FrameMillis <= 0 {
		return fmt.Errorf("%w: frame_ms must be positive", ErrInvalidScenario)
	}
	if s.DurationMillis < 0 {
		return fmt.Errorf("%w: duration_ms must not be negative", ErrInvalidScenario)
	}
	for i, o := range s.World {
		switch o.Shape {
		case ShapeBox, ShapeRamp, ShapePlane:
		default:
			return fmt.Errorf("%w: world[%d]: unknown shape %q", ErrInvalidScenario, i, o.Shape)
		}
	}
	for i, st := range s.Steps {
		if st.To <= st.From {
			return fmt.Errorf("%w: steps[%d]: to must be after from", ErrInvalidScenario, i)
		}
		for _, a := range st.Hold {
			if _, err := input.ParseAction(string(a)); err != nil {
				return fmt.Errorf("%w: steps[%d]: %v", ErrInvalidScenario, i, err)
			}
		}
	}
	return s.Tuning.Validate()
}

// Duration returns the run length in milliseconds, at least one frame.
func (s *Scenario) Duration() float64 {
	d := s.DurationMillis
	if d == 0 {
		d = input.NewScript(s.Bindings, s.Steps...).End()
	}
	return max(d, s.FrameMillis)
}
