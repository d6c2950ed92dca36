// Package app runs the linear pipeline: build each primitive, compute normals, translate,
// convert to a render mesh, then hand the scene to a presenter once.
package app

import (
	"context"
	"fmt"
	"image"

	"box-viewer/internal/config"
	"box-viewer/internal/display"
	"box-viewer/internal/geometry"
	"box-viewer/internal/logger"
	"box-viewer/internal/render"
	"box-viewer/internal/scene"
	"box-viewer/internal/texture"
)

// defaultSphereResolution matches the latitude bands of the editor sphere primitive.
const defaultSphereResolution = 16

// BuildMesh creates the authored mesh for def and applies its normals, color and translation.
func BuildMesh(def config.GeometryDef) (*geometry.TriangleMesh, error) {
	m, err := authoredMesh(def)
	if err != nil {
		return nil, err
	}
	m.Translate(vec3(def.Translate))
	return m, nil
}

func vec3(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}

// authoredMesh is the primitive for def with normals and color, still centered at the origin.
func authoredMesh(def config.GeometryDef) (*geometry.TriangleMesh, error) {
	var (
		m   *geometry.TriangleMesh
		err error
	)
	switch def.Type {
	case config.TypeBox:
		m, err = geometry.CreateBox(def.Size[0], def.Size[1], def.Size[2], geometry.BoxOptions{
			CreateUVMap:          def.CreateUVMap,
			MapTextureToEachFace: def.MapTextureToEachFace,
		})
	case config.TypeSphere:
		res := def.Resolution
		if res == 0 {
			res = defaultSphereResolution
		}
		m, err = geometry.CreateSphere(def.Radius, res)
		if err == nil && !def.CreateUVMap {
			m.TriangleUVs = nil
		}
	default:
		err = fmt.Errorf("unknown geometry type %q", def.Type)
	}
	if err != nil {
		return nil, err
	}

	switch def.Normals {
	case "", config.NormalsTriangle:
		m.ComputeTriangleNormals()
	case config.NormalsVertex:
		m.ComputeVertexNormals()
	case config.NormalsNone:
	default:
		return nil, fmt.Errorf("unknown normals mode %q", def.Normals)
	}
	if def.Color != nil {
		m.PaintUniformColor(vec3(*def.Color))
	}
	return m, nil
}

// placements is the geometry itself followed by its instances, each as a name and offset.
func placements(def config.GeometryDef) []config.Instance {
	out := make([]config.Instance, 0, 1+len(def.Instances))
	out = append(out, config.Instance{Name: def.Name, Translate: def.Translate})
	return append(out, def.Instances...)
}

// Build turns every definition into named render meshes, in order. A definition is built
// once; the geometry and each of its instances translate their own copy of that mesh.
func Build(defs []config.GeometryDef) (*scene.Scene, error) {
	scn := scene.New()
	for _, def := range defs {
		authored, err := authoredMesh(def)
		if err != nil {
			return nil, fmt.Errorf("build %q: %w", def.Name, err)
		}
		for _, pl := range placements(def) {
			m, err := authored.Clone()
			if err != nil {
				return nil, fmt.Errorf("copy %q: %w", pl.Name, err)
			}
			m.Translate(vec3(pl.Translate))
			rm, err := render.FromLegacy(m)
			if err != nil {
				return nil, fmt.Errorf("convert %q: %w", pl.Name, err)
			}
			scn.Add(pl.Name, rm)
		}
	}
	return scn, nil
}

// DisplayConfig maps the window and light prefs and the texture onto what the presenter needs.
func DisplayConfig(w config.Window, l config.Light, tex image.Image) display.Config {
	bg := w.Background
	return display.Config{
		Background: display.Color{R: bg[0], G: bg[1], B: bg[2], A: bg[3]},
		ShowUI:     w.ShowUI,
		Width:      w.Width,
		Height:     w.Height,
		Title:      w.Title,
		TargetFPS:  w.TargetFPS,
		Texture:    tex,
		Light: display.Light{
			Direction:        vec3(l.Direction),
			Color:            display.Color{R: l.Color[0], G: l.Color[1], B: l.Color[2], A: 1},
			Ambient:          display.Color{R: l.Ambient[0], G: l.Ambient[1], B: l.Ambient[2], A: 1},
			Intensity:        l.Intensity,
			SpecularPower:    l.SpecularPower,
			SpecularStrength: l.SpecularStrength,
		},
	}
}

// LoadTexture returns the configured texture prepared for upload, or the built-in
// checkerboard when path is empty.
func LoadTexture(path string) (image.Image, error) {
	if path == "" {
		return texture.Default(), nil
	}
	img, err := texture.Load(path)
	if err != nil {
		return nil, err
	}
	return texture.Prepare(img, texture.MaxSize), nil
}

// Run validates prefs, builds the scene and presents it once. It returns when the
// presenter does.
func Run(ctx context.Context, p display.Presenter, prefs config.Prefs, log *logger.Logger) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	scn, err := Build(prefs.Geometries)
	if err != nil {
		return err
	}
	for _, g := range scn.Geometries() {
		b := g.Mesh.Bounds
		log.Logf("built %q: %d triangles, bounds (%.2f, %.2f, %.2f)-(%.2f, %.2f, %.2f)",
			g.Name, g.Mesh.TriangleCount(), b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	}

	tex, err := LoadTexture(prefs.Texture)
	if err != nil {
		return err
	}
	cfg := DisplayConfig(prefs.Window, prefs.Light, tex)
	log.Logf("presenting %d geometries at %dx%d", scn.Len(), cfg.Width, cfg.Height)
	if err := p.Present(ctx, scn.Geometries(), cfg); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	log.Log("viewer closed")
	return nil
}
