package controller

// integrateVertical applies jump and gravity for one frame and returns the vertical displacement.
// jumpEdge is the frame's jump rising edge.
func (c *controller) integrateVertical(g GroundResult, jumpEdge bool, dt float32) float32 {
	s := &c.state
	t := c.tuning

	if g.Grounded && !g.Slipping {
		if s.FallTime > 0 {
			c.log.Debug().Float32("fall_time", s.FallTime).Msg("landed")
			c.observers.OnLand(s.FallTime)
		}
		s.FallTime = 0
		s.VerticalVelocity = 0
		s.LaunchVelocity = 0
		if !jumpEdge {
			return 0
		}
		s.LaunchVelocity = t.JumpSpeed
		if s.Sprinting {
			s.LaunchVelocity *= t.SprintJumpMultiplier
		}
		c.log.Debug().Float32("launch", s.LaunchVelocity).Bool("sprinting", s.Sprinting).Msg("jump")
		c.observers.OnJump(s.Sprinting)
	}

	s.FallTime += dt
	s.VerticalVelocity = s.LaunchVelocity - t.Gravity*s.FallTime
	dy := s.VerticalVelocity * dt

	if dy < 0 {
		if floor, ok := g.FloorDistance(); ok {
			dy = max(dy, -max(floor-t.PlayerHeight, 0))
		}
	}
	return dy
}
