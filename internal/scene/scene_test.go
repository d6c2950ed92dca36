package scene_test

import (
	"testing"

	"box-viewer/internal/geometry"
	"box-viewer/internal/render"
	"box-viewer/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meshWithBounds(min, max geometry.Vector3) *render.Mesh {
	return &render.Mesh{Bounds: geometry.AABB{Min: min, Max: max}}
}

func TestScene_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	s := scene.New()
	s.Add("cube", &render.Mesh{})
	s.Add("ball", &render.Mesh{})
	s.Add("cube", &render.Mesh{})

	geoms := s.Geometries()
	require.Equal(t, 3, s.Len())
	assert.Equal(t, "cube", geoms[0].Name)
	assert.Equal(t, "ball", geoms[1].Name)
	assert.Equal(t, "cube", geoms[2].Name)

	geoms[0].Name = "changed"
	assert.Equal(t, "cube", s.Geometries()[0].Name)
}

func TestBounds_UnionOfGeometries(t *testing.T) {
	t.Parallel()

	geoms := []scene.Geometry{
		{Name: "a", Mesh: meshWithBounds(geometry.NewVector3(-6, -2, -4), geometry.NewVector3(-4, 2, 0))},
		{Name: "b", Mesh: meshWithBounds(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 3, 1))},
		{Name: "nil"},
	}
	b := scene.Bounds(geoms)
	assert.Equal(t, geometry.NewVector3(-6, -2, -4), b.Min)
	assert.Equal(t, geometry.NewVector3(1, 3, 1), b.Max)

	assert.True(t, scene.Bounds(nil).IsEmpty())
}

func TestFrame_LooksAtCenterFromOutside(t *testing.T) {
	t.Parallel()

	b := geometry.AABB{Min: geometry.NewVector3(-6, -2, -4), Max: geometry.NewVector3(-4, 2, 0)}
	v := scene.Frame(b)

	assert.Equal(t, geometry.NewVector3(-5, 0, -2), v.Target)
	assert.Equal(t, geometry.NewVector3(0, 1, 0), v.Up)
	assert.Equal(t, float32(45), v.Fovy)

	dist := v.Position.Sub(v.Target).Length()
	radius := b.Size().Length() / 2
	assert.Greater(t, dist, radius*2)
	assert.Greater(t, v.Position.Y, v.Target.Y)
}

func TestFrame_EmptyBoundsFramesOrigin(t *testing.T) {
	t.Parallel()

	v := scene.Frame(geometry.EmptyAABB())
	assert.Equal(t, geometry.Vector3{}, v.Target)
	assert.Greater(t, v.Position.Length(), float32(1))
}
