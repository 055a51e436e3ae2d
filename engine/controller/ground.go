package controller

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/collision"
	"github.com/go-gl/mathgl/mgl32"
)

// GroundResult classifies the surface below a position for one frame.
// Supports are kept nearest first even when the player is not grounded,
// so a fall can be capped at the floor.
type GroundResult struct {
	Grounded bool
	Slipping bool
	Supports []collision.Hit
}

// Support returns the nearest surface below.
//
// Returns:
//   - collision.Hit: the nearest downward hit
//   - bool: false when nothing is below
func (g GroundResult) Support() (collision.Hit, bool) {
	return collision.Nearest(g.Supports)
}

// FloorDistance returns the distance from the probe origin to the nearest surface below.
//
// Returns:
//   - float32: the distance
//   - bool: false when nothing is below
func (g GroundResult) FloorDistance() (float32, bool) {
	h, ok := g.Support()
	return h.Distance, ok
}

// Classifier answers grounded and slipping queries against a collision provider.
// It holds no per-frame state and may be invoked at hypothetical positions.
type Classifier struct {
	solids collision.Provider
	tuning Tuning
}

// NewClassifier creates a Classifier.
//
// Parameters:
//   - solids: the solid geometry set
//   - tuning: supplies PlayerHeight, StandEpsilon and SlopeDotThreshold
//
// Returns:
//   - Classifier: the classifier
func NewClassifier(solids collision.Provider, tuning Tuning) Classifier {
	return Classifier{solids: solids, tuning: tuning}
}

// Classify casts down from origin. A player moving upward is never grounded and
// no query is made.
//
// Parameters:
//   - origin: the eye position to test
//   - verticalVelocity: the current vertical velocity
//
// Returns:
//   - GroundResult: the classification
func (c Classifier) Classify(origin mgl32.Vec3, verticalVelocity float32) GroundResult {
	if verticalVelocity > 0 {
		return GroundResult{}
	}
	res := GroundResult{Supports: c.solids.Cast(origin, mgl32.Vec3{0, -1, 0})}
	nearest, ok := res.Support()
	if !ok || nearest.Distance > c.tuning.PlayerHeight+c.tuning.StandEpsilon {
		return res
	}
	res.Grounded = true
	res.Slipping = nearest.Normal.Dot(common.WorldUp()) < c.tuning.SlopeDotThreshold
	return res
}
