package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/common"
)

// ScriptStep holds a set of actions for a window of frame time.
// Steps may overlap; held actions union and look deltas add.
type ScriptStep struct {
	// From and To bound the step in frame milliseconds, From inclusive, To exclusive.
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	// Hold lists the actions held during the step.
	Hold []Action `yaml:"hold"`
	// Look is added to the look delta of every frame in the step.
	Look [2]float32 `yaml:"look"`
	// Gamepad, when set, is reported as the gamepad state during the step.
	Gamepad *common.GamepadState `yaml:"gamepad"`
}

// Script is a timeline-driven Source for headless runs and tests.
// The driver calls Seek with the frame timestamp before each controller update.
type Script struct {
	mu       *sync.Mutex
	bindings Bindings
	steps    []ScriptStep
	now      float64
}

var _ Source = &Script{}

// NewScript creates a Script that presses the first key bound to each held action.
//
// Parameters:
//   - bindings: the bindings the controller aggregates with
//   - steps: the input timeline
//
// Returns:
//   - *Script: the scripted source
func NewScript(bindings Bindings, steps ...ScriptStep) *Script {
	return &Script{
		mu:       &sync.Mutex{},
		bindings: bindings,
		steps:    steps,
	}
}

// Seek moves the script to a frame timestamp.
//
// Parameters:
//   - nowMillis: the timestamp the next Snapshot describes
func (s *Script) Seek(nowMillis float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = nowMillis
}

// End returns the latest To of any step.
func (s *Script) End() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var end float64
	for _, st := range s.steps {
		end = max(end, st.To)
	}
	return end
}

func (s *Script) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{Held: make(map[uint32]bool)}
	for _, st := range s.steps {
		if s.now < st.From || s.now >= st.To {
			continue
		}
		for _, a := range st.Hold {
			if keys := s.bindings.Keys(a); len(keys) > 0 {
				snap.Held[keys[0]] = true
			}
		}
		snap.LookDX += st.Look[0]
		snap.LookDY += st.Look[1]
		if st.Gamepad != nil {
			cp := *st.Gamepad
			snap.Gamepad = &cp
		}
	}
	return snap
}
