// Package render converts authored meshes into flat, per-corner buffers that can be
// uploaded to the GPU as-is.
package render

import (
	"errors"
	"fmt"

	"box-viewer/internal/geometry"
)

var (
	ErrEmptyMesh         = errors.New("render: mesh has no triangles")
	ErrIndexOutOfRange   = errors.New("render: triangle index out of range")
	ErrAttributeMismatch = errors.New("render: attribute count does not match mesh")
)

// Mesh is an unindexed triangle list: corner i of triangle t is element 3t+i in every buffer.
// Optional buffers are empty when the source had no such attribute.
type Mesh struct {
	Positions []float32 // 3 per corner
	Normals   []float32 // 3 per corner
	TexCoords []float32 // 2 per corner
	Colors    []uint8   // RGBA per corner
	Bounds    geometry.AABB
}

func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }
func (m *Mesh) TriangleCount() int { return len(m.Positions) / 9 }
func (m *Mesh) HasNormals() bool { return len(m.Normals) > 0 }
func (m *Mesh) HasTexCoords() bool { return len(m.TexCoords) > 0 }
func (m *Mesh) HasColors() bool { return len(m.Colors) > 0 }

// FromLegacy expands an authored mesh into a render mesh without modifying it.
// Vertex normals win over triangle normals; with neither, Normals stays empty.
// V is flipped to the top-left texture origin the GPU samples with.
func FromLegacy(src *geometry.TriangleMesh) (*Mesh, error) {
	if src == nil || len(src.Triangles) == 0 {
		return nil, ErrEmptyMesh
	}
	if err := checkAttributes(src); err != nil {
		return nil, err
	}

	corners := 3 * len(src.Triangles)
	out := &Mesh{
		Positions: make([]float32, 0, 3*corners),
		Bounds:    geometry.EmptyAABB(),
	}
	vertexNormals := src.HasVertexNormals()
	faceNormals := !vertexNormals && src.HasTriangleNormals()
	if vertexNormals || faceNormals {
		out.Normals = make([]float32, 0, 3*corners)
	}
	if src.HasTriangleUVs() {
		out.TexCoords = make([]float32, 0, 2*corners)
	}
	if src.HasVertexColors() {
		out.Colors = make([]uint8, 0, 4*corners)
	}

	for t, tri := range src.Triangles {
		for c, idx := range tri {
			p := src.Vertices[idx]
			out.Positions = append(out.Positions, p.X, p.Y, p.Z)
			out.Bounds.Extend(p)

			switch {
			case vertexNormals:
				n := src.VertexNormals[idx]
				out.Normals = append(out.Normals, n.X, n.Y, n.Z)
			case faceNormals:
				n := src.TriangleNormals[t]
				out.Normals = append(out.Normals, n.X, n.Y, n.Z)
			}
			if out.TexCoords != nil {
				uv := src.TriangleUVs[3*t+c]
				out.TexCoords = append(out.TexCoords, uv.U, 1-uv.V)
			}
			if out.Colors != nil {
				col := src.VertexColors[idx]
				out.Colors = append(out.Colors, unitToByte(col.X), unitToByte(col.Y), unitToByte(col.Z), 255)
			}
		}
	}
	return out, nil
}

func checkAttributes(src *geometry.TriangleMesh) error {
	n := uint32(len(src.Vertices))
	for t, tri := range src.Triangles {
		for _, idx := range tri {
			if idx >= n {
				return fmt.Errorf("triangle %d uses vertex %d of %d: %w", t, idx, n, ErrIndexOutOfRange)
			}
		}
	}
	if len(src.TriangleNormals) > 0 && !src.HasTriangleNormals() {
		return fmt.Errorf("%d triangle normals for %d triangles: %w", len(src.TriangleNormals), len(src.Triangles), ErrAttributeMismatch)
	}
	if len(src.VertexNormals) > 0 && !src.HasVertexNormals() {
		return fmt.Errorf("%d vertex normals for %d vertices: %w", len(src.VertexNormals), n, ErrAttributeMismatch)
	}
	if len(src.TriangleUVs) > 0 && !src.HasTriangleUVs() {
		return fmt.Errorf("%d UVs for %d triangles: %w", len(src.TriangleUVs), len(src.Triangles), ErrAttributeMismatch)
	}
	if len(src.VertexColors) > 0 && !src.HasVertexColors() {
		return fmt.Errorf("%d colors for %d vertices: %w", len(src.VertexColors), n, ErrAttributeMismatch)
	}
	return nil
}

func unitToByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
