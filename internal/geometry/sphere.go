package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// CreateSphere builds a UV sphere centered at the origin. resolution is the number of
// latitude bands; longitude uses twice as many segments. Each ring repeats its first
// vertex at the seam so the equirectangular UVs do not wrap.
func CreateSphere(radius float32, resolution int) (*TriangleMesh, error) {
	if !validDimension(radius) {
		return nil, fmt.Errorf("sphere radius %g: %w", radius, ErrInvalidDimension)
	}
	if resolution < 2 {
		return nil, fmt.Errorf("sphere resolution %d: %w", resolution, ErrInvalidResolution)
	}
	rings := resolution
	segments := 2 * resolution
	stride := uint32(segments + 1)

	m := &TriangleMesh{Vertices: make([]Vector3, 0, (rings+1)*(segments+1))}
	uvAt := make([]Vector2, 0, cap(m.Vertices))
	for r := 0; r <= rings; r++ {
		theta := math32.Pi * float32(r) / float32(rings)
		sinT, cosT := math32.Sincos(theta)
		for s := 0; s <= segments; s++ {
			phi := 2 * math32.Pi * float32(s) / float32(segments)
			sinP, cosP := math32.Sincos(phi)
			m.Vertices = append(m.Vertices, Vector3{
				X: radius * sinT * cosP,
				Y: radius * cosT,
				Z: -radius * sinT * sinP,
			})
			uvAt = append(uvAt, Vector2{
				U: float32(s) / float32(segments),
				V: 1 - float32(r)/float32(rings),
			})
		}
	}

	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			// Pole rows collapse one triangle of each quad to a point; skip those.
			if r != 0 {
				m.appendTriangle([3]uint32{a, b, a + 1}, uvAt)
			}
			if r != rings-1 {
				m.appendTriangle([3]uint32{a + 1, b, b + 1}, uvAt)
			}
		}
	}
	return m, nil
}

func (m *TriangleMesh) appendTriangle(t [3]uint32, uvAt []Vector2) {
	m.Triangles = append(m.Triangles, t)
	m.TriangleUVs = append(m.TriangleUVs, uvAt[t[0]], uvAt[t[1]], uvAt[t[2]])
}
