package scene

import (
	"box-viewer/internal/geometry"
	"box-viewer/internal/render"

	"github.com/chewxy/math32"
)

// Geometry is one named entry handed to the viewer. The name labels the object in the UI.
type Geometry struct {
	Name string
	Mesh *render.Mesh
}

// Scene is an ordered list of geometries. Names are not checked here; the viewer
// rejects duplicates when presenting.
type Scene struct {
	geoms []Geometry
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends a geometry. Order is preserved for drawing and for the UI list.
func (s *Scene) Add(name string, mesh *render.Mesh) {
	s.geoms = append(s.geoms, Geometry{Name: name, Mesh: mesh})
}

// Geometries returns a copy of the entries in insertion order.
func (s *Scene) Geometries() []Geometry {
	out := make([]Geometry, len(s.geoms))
	copy(out, s.geoms)
	return out
}

func (s *Scene) Len() int {
	return len(s.geoms)
}

// Bounds returns the union of the world bounds of every geometry.
func Bounds(geoms []Geometry) geometry.AABB {
	b := geometry.EmptyAABB()
	for _, g := range geoms {
		if g.Mesh != nil {
			b = b.Union(g.Mesh.Bounds)
		}
	}
	return b
}

// View is a perspective camera placement.
type View struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	Fovy     float32 // degrees
}

const (
	defaultFovy    = 45
	minFrameRadius = 1
	framePadding   = 1.1
)

// viewDirection points from the target to the camera: above and front-right,
// like the editor default of (10,10,10) looking at the origin.
var viewDirection = geometry.NewVector3(1, 0.8, 1).Normalize()

// Frame returns a camera that looks at the center of b from far enough away that a
// sphere around the box fits the vertical field of view. An empty box frames the origin.
func Frame(b geometry.AABB) View {
	center := b.Center()
	radius := b.Size().Length() / 2
	if radius < minFrameRadius {
		radius = minFrameRadius
	}
	halfFov := float32(defaultFovy) / 2 * math32.Pi / 180
	dist := radius / math32.Sin(halfFov) * framePadding
	return View{
		Position: center.Add(viewDirection.Scale(dist)),
		Target:   center,
		Up:       geometry.NewVector3(0, 1, 0),
		Fovy:     defaultFovy,
	}
}
