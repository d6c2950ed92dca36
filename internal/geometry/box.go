package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// BoxOptions controls UV generation for CreateBox.
// MapTextureToEachFace only has an effect together with CreateUVMap.
type BoxOptions struct {
	CreateUVMap          bool
	MapTextureToEachFace bool
}

// Atlas layout used when faces share one texture: 3 columns x 2 rows, one face per cell.
const (
	atlasCols = 3
	atlasRows = 2
)

// boxFaces lists the four corners of each face, counter-clockwise seen from outside,
// as indices into the 8 box vertices. Vertex index bits: 1 = +X, 2 = +Z, 4 = +Y.
var boxFaces = [6][4]uint32{
	{4, 6, 7, 5}, // +Y
	{0, 2, 6, 4}, // -X
	{0, 1, 3, 2}, // -Y
	{1, 5, 7, 3}, // +X
	{2, 3, 7, 6}, // +Z
	{0, 4, 5, 1}, // -Z
}

// faceUV is the texture coordinate of each quad corner, in boxFaces order.
var faceUV = [4]Vector2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// quadTriangles splits a quad (corners 0..3) into two triangles with the same winding.
var quadTriangles = [2][3]int{{0, 1, 2}, {0, 2, 3}}

// validDimension reports whether d is a positive finite length. NaN fails the comparison.
func validDimension(d float32) bool {
	return d > 0 && !math32.IsInf(d, 1)
}

// CreateBox builds an axis-aligned box centered at the origin with the given extents:
// 8 shared vertices and 12 outward-facing triangles, two per face. Triangles 2f and 2f+1
// belong to face f. Every dimension must be positive and finite.
func CreateBox(width, height, depth float32, opts BoxOptions) (*TriangleMesh, error) {
	for _, d := range [3]float32{width, height, depth} {
		if !validDimension(d) {
			return nil, fmt.Errorf("box %gx%gx%g: %w", width, height, depth, ErrInvalidDimension)
		}
	}
	hw, hh, hd := width/2, height/2, depth/2

	m := &TriangleMesh{Vertices: make([]Vector3, 8)}
	for i := range m.Vertices {
		v := Vector3{-hw, -hh, -hd}
		if i&1 != 0 {
			v.X = hw
		}
		if i&2 != 0 {
			v.Z = hd
		}
		if i&4 != 0 {
			v.Y = hh
		}
		m.Vertices[i] = v
	}

	m.Triangles = make([][3]uint32, 0, 12)
	for _, quad := range boxFaces {
		for _, tri := range quadTriangles {
			m.Triangles = append(m.Triangles, [3]uint32{quad[tri[0]], quad[tri[1]], quad[tri[2]]})
		}
	}

	if opts.CreateUVMap {
		m.TriangleUVs = boxUVs(opts.MapTextureToEachFace)
	}
	return m, nil
}

// boxUVs returns three UVs per triangle. perFace maps every face onto the whole texture;
// otherwise face f is squeezed into atlas cell (f%3, f/3).
func boxUVs(perFace bool) []Vector2 {
	uvs := make([]Vector2, 0, 36)
	for f := range boxFaces {
		scaleU, scaleV := float32(1), float32(1)
		var offU, offV float32
		if !perFace {
			scaleU, scaleV = 1/float32(atlasCols), 1/float32(atlasRows)
			offU = float32(f%atlasCols) * scaleU
			offV = float32(f/atlasCols) * scaleV
		}
		for _, tri := range quadTriangles {
			for _, c := range tri {
				uv := faceUV[c]
				uvs = append(uvs, Vector2{U: offU + uv.U*scaleU, V: offV + uv.V*scaleV})
			}
		}
	}
	return uvs
}
