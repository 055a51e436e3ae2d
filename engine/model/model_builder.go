package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithPositions is an option builder that sets the model-space vertex positions.
//
// Parameters:
//   - positions: the vertex positions
//
// Returns:
//   - ModelBuilderOption: a function that applies the positions option to a model
func WithPositions(positions []mgl32.Vec3) ModelBuilderOption {
	return func(m *model) {
		m.positions = positions
	}
}

// WithIndices is an option builder that sets the triangle index list.
// Trailing indices that do not form a full triangle are ignored.
//
// Parameters:
//   - indices: three indices per triangle, counter-clockwise when viewed from outside
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices[:len(indices)-len(indices)%3]
	}
}

// WithBoundingRadius is an option builder that overrides the derived bounding radius.
//
// Parameters:
//   - radius: the bounding sphere radius
//
// Returns:
//   - ModelBuilderOption: a function that applies the radius option to a model
func WithBoundingRadius(radius float32) ModelBuilderOption {
	return func(m *model) {
		m.boundingRadius = radius
	}
}
