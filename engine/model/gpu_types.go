package model

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPULineVertex is the GPU-aligned representation of one end of a wireframe line.
// Matches the WGSL VertexInput struct of the line presenter.
// Size: 28 bytes (position 12 + color 16), tightly packed in a vertex buffer.
type GPULineVertex struct {
	Position [3]float32 // offset  0: world space position
	Color    [4]float32 // offset 12: RGBA color
}

// Size returns the size of the GPULineVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (v GPULineVertex) Size() int {
	return int(unsafe.Sizeof(v))
}

// AppendLineVertices transforms edges to world space and appends two vertices per edge.
//
// Parameters:
//   - dst: the slice to append to
//   - edges: model-space edges
//   - transform: the model matrix
//   - color: RGBA color for every vertex
//
// Returns:
//   - []GPULineVertex: dst with 2*len(edges) vertices appended
func AppendLineVertices(dst []GPULineVertex, edges []Edge, transform mgl32.Mat4, color [4]float32) []GPULineVertex {
	for _, e := range edges {
		from := mgl32.TransformCoordinate(e.From, transform)
		to := mgl32.TransformCoordinate(e.To, transform)
		dst = append(dst,
			GPULineVertex{Position: from, Color: color},
			GPULineVertex{Position: to, Color: color},
		)
	}
	return dst
}
