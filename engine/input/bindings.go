package input

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-fps/common"
)

// Action names a bindable control.
type Action string

const (
	ActionForward  Action = "forward"
	ActionBackward Action = "backward"
	ActionLeft     Action = "left"
	ActionRight    Action = "right"
	ActionJump     Action = "jump"
	ActionSprint   Action = "sprint"
)

// Actions lists every bindable control.
func Actions() []Action {
	return []Action{ActionForward, ActionBackward, ActionLeft, ActionRight, ActionJump, ActionSprint}
}

// ParseAction resolves a case-insensitive action name.
//
// Parameters:
//   - name: the action name, e.g. "forward"
//
// Returns:
//   - Action: the parsed action
//   - error: error if the name is unknown
func ParseAction(name string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Actions() {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("input: unknown action %q", name)
}

// Bindings maps each action to the key codes that trigger it.
type Bindings struct {
	Forward  []uint32 `mapstructure:"forward" yaml:"forward"`
	Backward []uint32 `mapstructure:"backward" yaml:"backward"`
	Left     []uint32 `mapstructure:"left" yaml:"left"`
	Right    []uint32 `mapstructure:"right" yaml:"right"`
	Jump     []uint32 `mapstructure:"jump" yaml:"jump"`
	Sprint   []uint32 `mapstructure:"sprint" yaml:"sprint"`
}

// DefaultBindings returns WASD and arrow movement, Space to jump and Left Shift or
// Left Control to sprint.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:  []uint32{common.KeyW, common.KeyUp},
		Backward: []uint32{common.KeyS, common.KeyDown},
		Left:     []uint32{common.KeyA, common.KeyLeft},
		Right:    []uint32{common.KeyD, common.KeyRight},
		Jump:     []uint32{common.KeySpace},
		Sprint:   []uint32{common.KeyLeftShift, common.KeyLeftControl},
	}
}

// Keys returns the codes bound to an action.
//
// Parameters:
//   - a: the action
//
// Returns:
//   - []uint32: the bound key codes, nil for an unknown action
func (b Bindings) Keys(a Action) []uint32 {
	switch a {
	case ActionForward:
		return b.Forward
	case ActionBackward:
		return b.Backward
	case ActionLeft:
		return b.Left
	case ActionRight:
		return b.Right
	case ActionJump:
		return b.Jump
	case ActionSprint:
		return b.Sprint
	}
	return nil
}

// Validate checks that every action has at least one key.
func (b Bindings) Validate() error {
	for _, a := range Actions() {
		if len(b.Keys(a)) == 0 {
			return fmt.Errorf("input: action %q has no key bound", a)
		}
	}
	return nil
}
