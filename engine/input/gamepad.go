package input

import (
	"context"
	"time"
)

// GamepadProbe reports whether a gamepad is connected.
type GamepadProbe interface {
	GamepadConnected() bool
}

// GamepadProbeFunc adapts a plain function to the GamepadProbe interface.
type GamepadProbeFunc func() bool

// GamepadConnected calls f().
func (f GamepadProbeFunc) GamepadConnected() bool {
	return f()
}

const gamepadPollInterval = 50 * time.Millisecond

// WaitForGamepad polls the probe until a gamepad connects, the timeout elapses or ctx is done.
// A false result is not an error: the caller continues with keyboard and mouse.
//
// Parameters:
//   - ctx: cancels the wait early
//   - pad: the connection probe
//   - timeout: upper bound on the wait, zero or negative checks once
//
// Returns:
//   - bool: true if a gamepad is connected
func WaitForGamepad(ctx context.Context, pad GamepadProbe, timeout time.Duration) bool {
	if pad.GamepadConnected() {
		return true
	}
	if timeout <= 0 {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ticker := time.NewTicker(gamepadPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return pad.GamepadConnected()
		case <-ticker.C:
			if pad.GamepadConnected() {
				return true
			}
		}
	}
}
