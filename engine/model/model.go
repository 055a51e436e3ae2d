package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

// model is the implementation of the Model interface.
type model struct {
	name           string
	positions      []mgl32.Vec3
	indices        []uint32
	boundingRadius float32
}

// Model defines the interface for a static triangle mesh used for collision queries
// and wireframe presentation. Vertices are stored in model space; the owning
// GameObject supplies the world transform.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Positions retrieves the model-space vertex positions.
	//
	// Returns:
	//   - []mgl32.Vec3: the vertex positions
	Positions() []mgl32.Vec3

	// Indices retrieves the triangle index list, three indices per triangle.
	//
	// Returns:
	//   - []uint32: the triangle indices
	Indices() []uint32

	// TriangleCount returns the number of triangles in the mesh.
	//
	// Returns:
	//   - int: the triangle count
	TriangleCount() int

	// Triangle returns the three model-space vertices of triangle i.
	//
	// Parameters:
	//   - i: the triangle index in [0, TriangleCount)
	//
	// Returns:
	//   - a, b, c: the triangle vertices in counter-clockwise order
	Triangle(i int) (a, b, c mgl32.Vec3)

	// BoundingRadius returns the bounding sphere radius for this model, measured as
	// the maximum vertex distance from the origin. Used by the ray broad phase.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// Edges returns every unique triangle edge, for wireframe presentation.
	//
	// Returns:
	//   - []Edge: the unique edges in model space
	Edges() []Edge
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
// The bounding radius is derived from the positions unless set explicitly.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	if m.boundingRadius == 0 {
		for _, p := range m.positions {
			if l := p.Len(); l > m.boundingRadius {
				m.boundingRadius = l
			}
		}
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Positions() []mgl32.Vec3 {
	return m.positions
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) TriangleCount() int {
	return len(m.indices) / 3
}

func (m *model) Triangle(i int) (a, b, c mgl32.Vec3) {
	base := i * 3
	return m.positions[m.indices[base]], m.positions[m.indices[base+1]], m.positions[m.indices[base+2]]
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) Edges() []Edge {
	seen := make(map[[2]uint32]struct{}, len(m.indices))
	edges := make([]Edge, 0, len(m.indices))
	for t := 0; t+2 < len(m.indices); t += 3 {
		tri := [3]uint32{m.indices[t], m.indices[t+1], m.indices[t+2]}
		for k := 0; k < 3; k++ {
			i, j := tri[k], tri[(k+1)%3]
			if i > j {
				i, j = j, i
			}
			key := [2]uint32{i, j}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, Edge{From: m.positions[i], To: m.positions[j]})
		}
	}
	return edges
}
