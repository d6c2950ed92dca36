package geometry

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
)

var (
	// ErrInvalidDimension is returned when a primitive is asked for a non-positive size.
	ErrInvalidDimension = errors.New("geometry: dimension must be positive")
	// ErrInvalidResolution is returned when a tessellated primitive gets too few segments.
	ErrInvalidResolution = errors.New("geometry: resolution too low")
)

// TriangleMesh is the authored (editable) mesh. Vertices are shared between triangles;
// per-triangle data (normals, UVs) is indexed by triangle, UVs three per triangle in
// corner order. Optional attributes are empty until generated.
type TriangleMesh struct {
	Vertices  []Vector3
	Triangles [][3]uint32

	TriangleNormals []Vector3
	VertexNormals   []Vector3
	TriangleUVs     []Vector2
	VertexColors    []Vector3
}

func (m *TriangleMesh) VertexCount() int { return len(m.Vertices) }
func (m *TriangleMesh) TriangleCount() int { return len(m.Triangles) }

func (m *TriangleMesh) HasTriangleNormals() bool {
	return len(m.Triangles) > 0 && len(m.TriangleNormals) == len(m.Triangles)
}

func (m *TriangleMesh) HasVertexNormals() bool {
	return len(m.Vertices) > 0 && len(m.VertexNormals) == len(m.Vertices)
}

func (m *TriangleMesh) HasTriangleUVs() bool {
	return len(m.Triangles) > 0 && len(m.TriangleUVs) == 3*len(m.Triangles)
}

func (m *TriangleMesh) HasVertexColors() bool {
	return len(m.Vertices) > 0 && len(m.VertexColors) == len(m.Vertices)
}

// ComputeTriangleNormals sets one unit normal per triangle from its winding order:
// normalize((b-a) x (c-a)). Degenerate triangles get the zero vector.
// Running it again on an unchanged mesh yields the same normals.
func (m *TriangleMesh) ComputeTriangleNormals() {
	normals := make([]Vector3, len(m.Triangles))
	for i, t := range m.Triangles {
		normals[i] = m.faceCross(t).Normalize()
	}
	m.TriangleNormals = normals
}

// ComputeVertexNormals sets one unit normal per vertex: the sum of the unnormalized
// face normals around it, so larger triangles weigh more, then normalized.
func (m *TriangleMesh) ComputeVertexNormals() {
	normals := make([]Vector3, len(m.Vertices))
	for _, t := range m.Triangles {
		n := m.faceCross(t)
		for _, idx := range t {
			normals[idx] = normals[idx].Add(n)
		}
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	m.VertexNormals = normals
}

// faceCross is (b-a) x (c-a); its length is twice the triangle area.
func (m *TriangleMesh) faceCross(t [3]uint32) Vector3 {
	a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
	return b.Sub(a).Cross(c.Sub(a))
}

// Translate shifts every vertex by offset. Normals and UVs do not change.
func (m *TriangleMesh) Translate(offset Vector3) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Add(offset)
	}
}

// PaintUniformColor sets every vertex color to c (RGB in [0,1]).
func (m *TriangleMesh) PaintUniformColor(c Vector3) {
	colors := make([]Vector3, len(m.Vertices))
	for i := range colors {
		colors[i] = c
	}
	m.VertexColors = colors
}

// Bounds returns the axis-aligned box around all vertices.
func (m *TriangleMesh) Bounds() AABB {
	b := EmptyAABB()
	for _, v := range m.Vertices {
		b.Extend(v)
	}
	return b
}

// Clone returns a deep copy that shares no slices with m.
func (m *TriangleMesh) Clone() (*TriangleMesh, error) {
	out := &TriangleMesh{}
	if err := copier.CopyWithOption(out, m, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone mesh: %w", err)
	}
	return out, nil
}
