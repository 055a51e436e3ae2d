package scenario

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// BuildWorld creates a scene holding the scenario's objects.
//
// Returns:
//   - scene.Scene: the world, object IDs assigned in file order from 1
func (s *Scenario) BuildWorld() scene.Scene {
	world := scene.NewScene(s.Name)
	for i, o := range s.World {
		world.Add(o.gameObject(i))
	}
	return world
}

func (o ObjectSpec) model(index int) model.Model {
	name := o.Name
	if name == "" {
		name = fmt.Sprintf("%s-%d", o.Shape, index)
	}
	sz := o.Size
	switch o.Shape {
	case ShapeRamp:
		return model.Ramp(name, sz[0], sz[2], sz[1])
	case ShapePlane:
		return model.Plane(name, sz[0], sz[2])
	}
	return model.Box(name, sz[0], sz[1], sz[2])
}

func (o ObjectSpec) gameObject(index int) game_object.GameObject {
	scale := o.Scale
	if scale == [3]float32{} {
		scale = [3]float32{1, 1, 1}
	}
	solid, enabled := true, true
	if o.Solid != nil {
		solid = *o.Solid
	}
	if o.Enabled != nil {
		enabled = *o.Enabled
	}
	return game_object.NewGameObject(
		game_object.WithModel(o.model(index)),
		game_object.WithSolid(solid),
		game_object.WithEnabled(enabled),
		game_object.WithPosition(o.Position[0], o.Position[1], o.Position[2]),
		game_object.WithRotation(
			mgl32.DegToRad(o.Rotation[0]),
			mgl32.DegToRad(o.Rotation[1]),
			mgl32.DegToRad(o.Rotation[2]),
		),
		game_object.WithScale(scale[0], scale[1], scale[2]),
	)
}
