package geometry_test

import (
	"errors"
	"testing"

	"box-viewer/internal/geometry"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTriangleNormals_Idempotent(t *testing.T) {
	t.Parallel()

	m := demoBox(t)
	m.ComputeTriangleNormals()
	first := append([]geometry.Vector3(nil), m.TriangleNormals...)

	m.ComputeTriangleNormals()
	assert.Equal(t, first, m.TriangleNormals)
}

func TestComputeTriangleNormals_UnitLength(t *testing.T) {
	t.Parallel()

	box := demoBox(t)
	sphere, err := geometry.CreateSphere(1.5, 12)
	require.NoError(t, err)

	for name, m := range map[string]*geometry.TriangleMesh{"box": box, "sphere": sphere} {
		m.ComputeTriangleNormals()
		require.True(t, m.HasTriangleNormals(), name)
		for i, n := range m.TriangleNormals {
			assert.InDelta(t, 1, n.Length(), tol, "%s triangle %d", name, i)
		}
	}
}

func TestComputeTriangleNormals_DegenerateIsZero(t *testing.T) {
	t.Parallel()

	m := &geometry.TriangleMesh{
		Vertices:  []geometry.Vector3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		Triangles: [][3]uint32{{0, 1, 2}},
	}
	m.ComputeTriangleNormals()
	assert.Equal(t, geometry.Vector3{}, m.TriangleNormals[0])
}

func TestTranslate_KeepsNormalsAndUVs(t *testing.T) {
	t.Parallel()

	m := demoBox(t)
	m.ComputeTriangleNormals()
	normals := append([]geometry.Vector3(nil), m.TriangleNormals...)
	uvs := append([]geometry.Vector2(nil), m.TriangleUVs...)

	m.Translate(geometry.NewVector3(-5, 0, -2))
	assert.Equal(t, normals, m.TriangleNormals)
	assert.Equal(t, uvs, m.TriangleUVs)
}

func TestTranslate_ComposesAdditively(t *testing.T) {
	t.Parallel()

	twice := demoBox(t)
	twice.Translate(geometry.NewVector3(1, 2, 3))
	twice.Translate(geometry.NewVector3(-6, -2, -5))

	once := demoBox(t)
	once.Translate(geometry.NewVector3(-5, 0, -2))

	assert.Equal(t, once.Vertices, twice.Vertices)
}

func TestComputeVertexNormals_SpherePointsOutward(t *testing.T) {
	t.Parallel()

	m, err := geometry.CreateSphere(2, 8)
	require.NoError(t, err)
	m.ComputeVertexNormals()
	require.True(t, m.HasVertexNormals())

	used := make(map[uint32]bool)
	for _, tri := range m.Triangles {
		used[tri[0]], used[tri[1]], used[tri[2]] = true, true, true
	}
	for i, v := range m.Vertices {
		if !used[uint32(i)] {
			continue
		}
		n := m.VertexNormals[i]
		assert.InDelta(t, 1, n.Length(), 1e-5, "vertex %d", i)
		assert.Greater(t, n.Dot(v.Normalize()), float32(0.9), "vertex %d", i)
	}
}

func TestCreateSphere_Bounds(t *testing.T) {
	t.Parallel()

	m, err := geometry.CreateSphere(1, 16)
	require.NoError(t, err)
	require.True(t, m.HasTriangleUVs())

	b := m.Bounds()
	assert.InDelta(t, -1, b.Min.Y, tol)
	assert.InDelta(t, 1, b.Max.Y, tol)
	for _, v := range m.Vertices {
		assert.InDelta(t, 1, v.Length(), 1e-5)
	}
}

func TestCreateSphere_Invalid(t *testing.T) {
	t.Parallel()

	for _, r := range []float32{0, -1, math32.NaN(), math32.Inf(1)} {
		m, err := geometry.CreateSphere(r, 8)
		assert.True(t, errors.Is(err, geometry.ErrInvalidDimension), "radius %g", r)
		assert.Nil(t, m)
	}

	_, err := geometry.CreateSphere(1, 1)
	assert.True(t, errors.Is(err, geometry.ErrInvalidResolution))
}

func TestPaintUniformColor(t *testing.T) {
	t.Parallel()

	m := demoBox(t)
	assert.False(t, m.HasVertexColors())

	red := geometry.NewVector3(1, 0, 0)
	m.PaintUniformColor(red)
	require.True(t, m.HasVertexColors())
	for _, c := range m.VertexColors {
		assert.Equal(t, red, c)
	}
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	m := demoBox(t)
	m.ComputeTriangleNormals()
	m.PaintUniformColor(geometry.NewVector3(0.2, 0.4, 0.6))

	c, err := m.Clone()
	require.NoError(t, err)
	assert.Equal(t, m.Vertices, c.Vertices)
	assert.Equal(t, m.Triangles, c.Triangles)
	assert.Equal(t, m.TriangleNormals, c.TriangleNormals)
	assert.Equal(t, m.TriangleUVs, c.TriangleUVs)

	c.Translate(geometry.NewVector3(10, 0, 0))
	c.Triangles[0][0] = 7
	assert.Equal(t, float32(-1), m.Bounds().Min.X)
	assert.NotEqual(t, uint32(7), m.Triangles[0][0])
}

func TestAABB_UnionAndEmpty(t *testing.T) {
	t.Parallel()

	empty := geometry.EmptyAABB()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, geometry.Vector3{}, empty.Size())

	a := geometry.AABB{Min: geometry.NewVector3(0, 0, 0), Max: geometry.NewVector3(1, 1, 1)}
	b := geometry.AABB{Min: geometry.NewVector3(-2, 0.5, 0), Max: geometry.NewVector3(0, 3, 0.5)}

	assert.Equal(t, a, empty.Union(a))
	u := a.Union(b)
	assert.Equal(t, geometry.NewVector3(-2, 0, 0), u.Min)
	assert.Equal(t, geometry.NewVector3(1, 3, 1), u.Max)
	assert.Equal(t, geometry.NewVector3(-0.5, 1.5, 0.5), u.Center())
}
