package controller

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/collision"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// moveBases returns the horizontal forward and strafe vectors for the camera's right axis.
// forward = up × right, so camera pitch never tilts movement.
func moveBases(right mgl32.Vec3) (forward, strafe mgl32.Vec3) {
	strafe = common.FlattenY(right)
	forward = common.WorldUp().Cross(strafe)
	return forward, strafe
}

// planarDisplacement combines the action vector with the move bases.
// Diagonal input is clamped to unit length before scaling by speed*dt.
func planarDisplacement(av input.ActionVector, right mgl32.Vec3, speed, dt float32) mgl32.Vec3 {
	move := mgl32.Vec2{av.MoveForward, av.MoveRight}
	if l := move.Len(); l > 1 {
		move = move.Mul(1 / l)
	}
	forward, strafe := moveBases(right)
	return forward.Mul(move[0]).Add(strafe.Mul(move[1])).Mul(speed * dt)
}

// resolvePlanar validates a horizontal move and applies it if nothing is in the way.
// current is the frame's initial classification; floorShift is how far the player has
// moved vertically since it was taken.
//
// Returns the displacement that was applied, zero when blocked or idle.
func (c *controller) resolvePlanar(av input.ActionVector, speed, dt float32, current GroundResult, floorShift float32) mgl32.Vec3 {
	disp := planarDisplacement(av, c.cam.LocalX(), speed, dt)
	if disp.Len() == 0 {
		return mgl32.Vec3{}
	}
	pos := c.state.Position

	if current.Grounded && c.state.VerticalVelocity <= 0 {
		dest := c.classifier.Classify(pos.Add(disp), c.state.VerticalVelocity)
		curFloor, _ := current.FloorDistance()
		destFloor, ok := dest.FloorDistance()
		if dest.Grounded && ok {
			disp[1] = (curFloor + floorShift) - destFloor
		}
	}

	length := disp.Len() + c.tuning.CollisionClearance
	dir := disp.Normalize()
	blocked, owner := false, collision.ObjectID(0)
	for _, origin := range c.probeOrigins(pos) {
		hit, ok := collision.Nearest(c.solids.Cast(origin, dir))
		probeBlocked := ok && hit.Distance < length
		color := common.SegmentColorClear()
		if probeBlocked {
			color = common.SegmentColorBlocked()
			if !blocked {
				blocked, owner = true, hit.Owner
			}
		}
		c.debug.push(common.Segment{From: origin, To: origin.Add(dir.Mul(length)), Color: color})
	}

	if blocked {
		c.log.Debug().Uint64("owner", uint64(owner)).Msg("move blocked")
		c.observers.OnBlocked(owner)
		return mgl32.Vec3{}
	}
	c.state.Position = pos.Add(disp)
	return disp
}

// probeOrigins returns the eye position followed by any extra probe heights.
func (c *controller) probeOrigins(eye mgl32.Vec3) []mgl32.Vec3 {
	origins := make([]mgl32.Vec3, 0, 1+len(c.tuning.ProbeOffsets))
	origins = append(origins, eye)
	for _, off := range c.tuning.ProbeOffsets {
		origins = append(origins, eye.Add(mgl32.Vec3{0, off, 0}))
	}
	return origins
}
