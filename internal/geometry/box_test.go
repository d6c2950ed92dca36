package geometry_test

import (
	"errors"
	"testing"

	"box-viewer/internal/geometry"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

func demoBox(t *testing.T) *geometry.TriangleMesh {
	t.Helper()
	m, err := geometry.CreateBox(2, 4, 4, geometry.BoxOptions{CreateUVMap: true, MapTextureToEachFace: true})
	require.NoError(t, err)
	return m
}

func TestCreateBox_CenteredExtents(t *testing.T) {
	t.Parallel()

	m := demoBox(t)
	require.Equal(t, 8, m.VertexCount())
	require.Equal(t, 12, m.TriangleCount())

	b := m.Bounds()
	assert.Equal(t, geometry.NewVector3(-1, -2, -2), b.Min)
	assert.Equal(t, geometry.NewVector3(1, 2, 2), b.Max)
}

func TestCreateBox_TranslateMovesBounds(t *testing.T) {
	t.Parallel()

	m := demoBox(t)
	m.Translate(geometry.NewVector3(-5, 0, -2))

	b := m.Bounds()
	assert.Equal(t, geometry.NewVector3(-6, -2, -4), b.Min)
	assert.Equal(t, geometry.NewVector3(-4, 2, 0), b.Max)
}

func TestCreateBox_InvalidDimensions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		w, h, d float32
	}{
		{"zero width", 0, 1, 1},
		{"negative height", 1, -1, 1},
		{"negative depth", 1, 1, -0.5},
		{"nan", 1, math32.NaN(), 1},
		{"infinite width", math32.Inf(1), 1, 1},
		{"infinite depth", 2, 4, math32.Inf(1)},
		{"negative infinity", 1, math32.Inf(-1), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := geometry.CreateBox(tc.w, tc.h, tc.d, geometry.BoxOptions{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, geometry.ErrInvalidDimension))
			assert.Nil(t, m)
		})
	}
}

func TestCreateBox_OutwardNormals(t *testing.T) {
	t.Parallel()

	m := demoBox(t)
	m.ComputeTriangleNormals()
	center := m.Bounds().Center()

	for i, tri := range m.Triangles {
		a := m.Vertices[tri[0]]
		n := m.TriangleNormals[i]
		assert.Greater(t, a.Sub(center).Dot(n), float32(0), "triangle %d faces inward", i)
	}
}

func TestCreateBox_FacePairsShareNormal(t *testing.T) {
	t.Parallel()

	m := demoBox(t)
	m.ComputeTriangleNormals()
	for f := 0; f < 6; f++ {
		assert.Equal(t, m.TriangleNormals[2*f], m.TriangleNormals[2*f+1], "face %d", f)
	}
}

func TestCreateBox_PerFaceUVsSpanUnitSquare(t *testing.T) {
	t.Parallel()

	m := demoBox(t)
	require.True(t, m.HasTriangleUVs())

	for f := 0; f < 6; f++ {
		uvs := m.TriangleUVs[6*f : 6*f+6]
		minU, minV, maxU, maxV := uvRange(uvs)
		assert.InDelta(t, 0, minU, tol, "face %d", f)
		assert.InDelta(t, 0, minV, tol, "face %d", f)
		assert.InDelta(t, 1, maxU, tol, "face %d", f)
		assert.InDelta(t, 1, maxV, tol, "face %d", f)
	}
}

func TestCreateBox_PerFaceUVsFollowDistinctVertices(t *testing.T) {
	t.Parallel()

	m := demoBox(t)
	seen := make(map[[4]uint32]int)
	for f := 0; f < 6; f++ {
		// Corner vertex carrying each of the four quad UVs.
		var key [4]uint32
		for k := 0; k < 6; k++ {
			tri := m.Triangles[2*f+k/3]
			uv := m.TriangleUVs[6*f+k]
			slot := int(uv.U) + 2*int(uv.V)
			key[slot] = tri[k%3]
		}
		if prev, ok := seen[key]; ok {
			t.Fatalf("faces %d and %d share a UV-to-vertex mapping", prev, f)
		}
		seen[key] = f
	}
}

func TestCreateBox_AtlasUVsStayInCell(t *testing.T) {
	t.Parallel()

	m, err := geometry.CreateBox(1, 1, 1, geometry.BoxOptions{CreateUVMap: true})
	require.NoError(t, err)
	require.True(t, m.HasTriangleUVs())

	for f := 0; f < 6; f++ {
		minU, minV, maxU, maxV := uvRange(m.TriangleUVs[6*f : 6*f+6])
		col, row := float32(f%3), float32(f/3)
		assert.InDelta(t, col/3, minU, tol, "face %d", f)
		assert.InDelta(t, (col+1)/3, maxU, tol, "face %d", f)
		assert.InDelta(t, row/2, minV, tol, "face %d", f)
		assert.InDelta(t, (row+1)/2, maxV, tol, "face %d", f)
	}
}

func TestCreateBox_NoUVMap(t *testing.T) {
	t.Parallel()

	// Per-face mapping without a UV map is ignored.
	m, err := geometry.CreateBox(1, 2, 3, geometry.BoxOptions{MapTextureToEachFace: true})
	require.NoError(t, err)
	assert.False(t, m.HasTriangleUVs())
	assert.Empty(t, m.TriangleUVs)
}

func uvRange(uvs []geometry.Vector2) (minU, minV, maxU, maxV float32) {
	minU, minV = math32.Inf(1), math32.Inf(1)
	maxU, maxV = math32.Inf(-1), math32.Inf(-1)
	for _, uv := range uvs {
		minU, maxU = min(minU, uv.U), max(maxU, uv.U)
		minV, maxV = min(minV, uv.V), max(maxV, uv.V)
	}
	return
}
