package controller

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoSupportSurface is returned when a slide is requested with nothing underfoot.
// The controller only slides after a grounded classification, so this is a logic error.
var ErrNoSupportSurface = errors.New("controller: slip evaluated without a support surface")

// slipTestDirections returns the cardinal directions tried against the slope normal.
func slipTestDirections(vertical bool) []mgl32.Vec3 {
	dirs := []mgl32.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 0, 1}, {0, 0, -1}}
	if vertical {
		dirs = append(dirs, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0})
	}
	return dirs
}

// SlideVector picks the test direction whose cross product with the support normal
// points furthest downhill and returns that cross product.
//
// Parameters:
//   - g: a grounded classification
//   - vertical: include ±Y in the test directions
//
// Returns:
//   - mgl32.Vec3: normal × direction for the steepest descending direction
//   - error: ErrNoSupportSurface if g has no supports
func SlideVector(g GroundResult, vertical bool) (mgl32.Vec3, error) {
	support, ok := g.Support()
	if !ok {
		return mgl32.Vec3{}, ErrNoSupportSurface
	}

	var best mgl32.Vec3
	for i, d := range slipTestDirections(vertical) {
		v := support.Normal.Cross(d)
		if i == 0 || v.Y() < best.Y() {
			best = v
		}
	}
	return best, nil
}

// applySlip slides the player down a steep support and arms the cooldown.
// The cooldown is armed against the frame timestamp and never re-armed while running.
func (c *controller) applySlip(g GroundResult, nowMillis float64, dt float32) {
	slide, err := SlideVector(g, c.tuning.SlipTestVertical)
	if err != nil {
		panic(err)
	}
	c.state.Position = c.state.Position.Add(slide.Mul(c.tuning.SlipSpeed * dt))

	if c.state.SlipCooldownActive(nowMillis) {
		return
	}
	c.state.SlipCooldownUntil = nowMillis + c.tuning.SlipCooldownMillis
	support, _ := g.Support()
	c.log.Debug().Uint64("owner", uint64(support.Owner)).Float64("until_ms", c.state.SlipCooldownUntil).Msg("slip")
	c.observers.OnSlip(support.Normal)
}
