// Package input turns raw device events into the per-frame action vector consumed by the
// character controller. Device listeners write into an Accumulator on the window thread;
// the frame callback drains it once per frame through the Source interface.
package input

import (
	"maps"
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/common"
)

// Snapshot is the device state for one frame.
// Look deltas are the sum of every pointer event since the previous snapshot.
type Snapshot struct {
	Held    map[uint32]bool
	LookDX  float32
	LookDY  float32
	Gamepad *common.GamepadState
}

// IsHeld reports whether any of the given key codes is held.
func (s Snapshot) IsHeld(codes ...uint32) bool {
	for _, c := range codes {
		if s.Held[c] {
			return true
		}
	}
	return false
}

// Source supplies one Snapshot per frame. Implementations drain accumulated
// deltas on read so an unconsumed frame produces no rotation.
type Source interface {
	// Snapshot returns the current device state and resets the look deltas.
	//
	// Returns:
	//   - Snapshot: held keys, drained look deltas and optional gamepad state
	Snapshot() Snapshot
}

// Accumulator collects device events between frames.
// All methods are safe to call from the window thread while the frame callback reads.
type Accumulator interface {
	Source

	// KeyDown marks a key as held.
	//
	// Parameters:
	//   - code: the virtual key code
	KeyDown(code uint32)

	// KeyUp marks a key as released.
	//
	// Parameters:
	//   - code: the virtual key code
	KeyUp(code uint32)

	// MouseMove records an absolute cursor position and accumulates the delta from
	// the previous one. The first event after creation or Reset only primes the position.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	MouseMove(x, y int32)

	// AddLookDelta accumulates a relative look delta.
	//
	// Parameters:
	//   - dx, dy: pointer or analogue units
	AddLookDelta(dx, dy float32)

	// SetGamepad replaces the latest polled gamepad state. nil means no gamepad.
	//
	// Parameters:
	//   - state: the polled state, copied
	SetGamepad(state *common.GamepadState)

	// Reset releases every key, drops pending deltas and forgets the last cursor position.
	Reset()
}

type accumulator struct {
	mu *sync.Mutex

	held    map[uint32]bool
	lookDX  float32
	lookDY  float32
	gamepad *common.GamepadState

	primed bool
	lastX  int32
	lastY  int32

	mouseScale float32
	invertY    bool
}

var _ Accumulator = &accumulator{}

// NewAccumulator creates an empty Accumulator.
//
// Parameters:
//   - options: functional options to configure the accumulator
//
// Returns:
//   - Accumulator: the newly created accumulator
func NewAccumulator(options ...AccumulatorBuilderOption) Accumulator {
	a := &accumulator{
		mu:         &sync.Mutex{},
		held:       make(map[uint32]bool),
		mouseScale: 1,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *accumulator) KeyDown(code uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.held[code] = true
}

func (a *accumulator) KeyUp(code uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.held, code)
}

func (a *accumulator) MouseMove(x, y int32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.primed {
		a.lastX, a.lastY = x, y
		a.primed = true
		return
	}
	a.addLocked(float32(x-a.lastX), float32(y-a.lastY))
	a.lastX, a.lastY = x, y
}

func (a *accumulator) AddLookDelta(dx, dy float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.addLocked(dx, dy)
}

// addLocked must be called with mu held.
func (a *accumulator) addLocked(dx, dy float32) {
	if a.invertY {
		dy = -dy
	}
	a.lookDX += dx * a.mouseScale
	a.lookDY += dy * a.mouseScale
}

func (a *accumulator) SetGamepad(state *common.GamepadState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if state == nil {
		a.gamepad = nil
		return
	}
	cp := *state
	a.gamepad = &cp
}

func (a *accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.held)
	a.lookDX, a.lookDY = 0, 0
	a.gamepad = nil
	a.primed = false
}

func (a *accumulator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := Snapshot{
		Held:   maps.Clone(a.held),
		LookDX: a.lookDX,
		LookDY: a.lookDY,
	}
	if a.gamepad != nil {
		cp := *a.gamepad
		s.Gamepad = &cp
	}
	a.lookDX, a.lookDY = 0, 0
	return s
}
