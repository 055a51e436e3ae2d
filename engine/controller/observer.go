package controller

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/collision"
	"github.com/go-gl/mathgl/mgl32"
)

// Observer receives locomotion events from the controller's frame update.
// Callbacks run synchronously inside Update and must not call back into the controller.
type Observer interface {
	// OnJump is called on the frame a jump launches.
	//
	// Parameters:
	//   - sprinting: true if the sprint jump multiplier applied
	OnJump(sprinting bool)

	// OnLand is called on the airborne to grounded transition.
	//
	// Parameters:
	//   - fallTime: seconds spent off the ground
	OnLand(fallTime float32)

	// OnSlip is called when a slip starts and arms the cooldown.
	//
	// Parameters:
	//   - normal: the world space normal of the steep support
	OnSlip(normal mgl32.Vec3)

	// OnBlocked is called when a collision probe discards the frame's movement.
	//
	// Parameters:
	//   - owner: the object that blocked the move
	OnBlocked(owner collision.ObjectID)
}

// observers fans events out to every registered Observer.
type observers []Observer

func (o observers) OnJump(sprinting bool) {
	for _, ob := range o {
		ob.OnJump(sprinting)
	}
}

func (o observers) OnLand(fallTime float32) {
	for _, ob := range o {
		ob.OnLand(fallTime)
	}
}

func (o observers) OnSlip(normal mgl32.Vec3) {
	for _, ob := range o {
		ob.OnSlip(normal)
	}
}

func (o observers) OnBlocked(owner collision.ObjectID) {
	for _, ob := range o {
		ob.OnBlocked(owner)
	}
}

// Counters is an Observer that tallies events. Not safe for concurrent use.
type Counters struct {
	Jumps    int
	Landings int
	Slips    int
	Blocked  int
	// LongestFall is the largest fall time seen, in seconds.
	LongestFall float32
}

var _ Observer = &Counters{}

func (c *Counters) OnJump(bool) { c.Jumps++ }

func (c *Counters) OnLand(fallTime float32) {
	c.Landings++
	c.LongestFall = max(c.LongestFall, fallTime)
}

func (c *Counters) OnSlip(mgl32.Vec3) { c.Slips++ }

func (c *Counters) OnBlocked(collision.ObjectID) { c.Blocked++ }
