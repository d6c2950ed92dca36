package primitives

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"box-viewer/internal/display"
	"box-viewer/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// defaultTint is the albedo color multiplied into every primitive.
var defaultTint = rl.White

// uploaded is one render mesh living on the GPU. Only the vertex array and buffer
// ids are kept in mesh; the CPU-side data stays in src.
type uploaded struct {
	name     string
	src      *render.Mesh
	mesh     rl.Mesh
	textured bool
}

// Registry owns the GPU copies of the scene meshes, the lit materials and the albedo
// texture. Everything is created after the window/OpenGL context exists and released
// by Unload before the window closes.
type Registry struct {
	meshes      []uploaded
	mtl         rl.Material
	texturedMtl rl.Material
	texture     rl.Texture2D
	lit         []litShader // custom shaders we loaded; the default shader is not ours to free
	light       display.Light
	loaded      bool
	viewPos     [3]float32 // camera position, set each frame for specular highlights
}

// NewRegistry returns an empty registry that will shade with light.
func NewRegistry(light display.Light) *Registry {
	return &Registry{light: light}
}

// SetView sets the camera position for this frame. Call once per frame before Draw.
func (r *Registry) SetView(viewPos [3]float32) {
	r.viewPos = viewPos
}

// Load creates the materials and uploads tex as the albedo texture for UV-mapped meshes.
func (r *Registry) Load(tex image.Image) error {
	r.mtl = rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
		r.lit = append(r.lit, newLitShader(shader, r.light))
	}
	r.texturedMtl = rl.LoadMaterialDefault()
	if shader := loadLitTexturedShader(); rl.IsShaderValid(shader) {
		r.texturedMtl.Shader = shader
		r.lit = append(r.lit, newLitShader(shader, r.light))
	}
	for _, m := range []*rl.Material{&r.mtl, &r.texturedMtl} {
		if albedo := m.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = defaultTint
		}
	}

	if tex != nil {
		img := rl.NewImageFromImage(tex)
		r.texture = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		if !rl.IsTextureValid(r.texture) {
			return errors.New("upload texture: invalid texture")
		}
		rl.GenTextureMipmaps(&r.texture)
		rl.SetTextureFilter(r.texture, rl.FilterTrilinear)
		rl.SetMaterialTexture(&r.texturedMtl, rl.MapAlbedo, r.texture)
	}
	r.loaded = true
	return nil
}

// Add uploads a render mesh under name. Meshes with texture coordinates are drawn with
// the textured material.
func (r *Registry) Add(name string, src *render.Mesh) error {
	if src.VertexCount() == 0 {
		return fmt.Errorf("upload %q: %w", name, render.ErrEmptyMesh)
	}
	mesh := rl.Mesh{
		VertexCount:   int32(src.VertexCount()),
		TriangleCount: int32(src.TriangleCount()),
		Vertices:      unsafe.SliceData(src.Positions),
	}
	if src.HasNormals() {
		mesh.Normals = unsafe.SliceData(src.Normals)
	}
	if src.HasTexCoords() {
		mesh.Texcoords = unsafe.SliceData(src.TexCoords)
	}
	if src.HasColors() {
		mesh.Colors = unsafe.SliceData(src.Colors)
	}
	// Upload mesh data from CPU (RAM) to GPU (VRAM) memory.
	rl.UploadMesh(&mesh, false)
	// The buffers belong to Go; raylib must neither keep nor free them.
	mesh.Vertices, mesh.Normals, mesh.Texcoords, mesh.Colors = nil, nil, nil, nil
	if mesh.VaoID == 0 {
		rl.UnloadMesh(&mesh)
		return fmt.Errorf("upload %q: no vertex array", name)
	}
	r.meshes = append(r.meshes, uploaded{
		name:     name,
		src:      src,
		mesh:     mesh,
		textured: src.HasTexCoords() && rl.IsTextureValid(r.texture),
	})
	return nil
}

// Draw draws every uploaded mesh in insertion order. Must be called between
// BeginMode3D and EndMode3D, after SetView. Vertices are already in world space.
func (r *Registry) Draw(wireframe bool) {
	for _, s := range r.lit {
		s.setViewPos(r.viewPos)
	}
	if wireframe {
		rl.EnableWireMode()
		defer rl.DisableWireMode()
	}
	transform := rl.MatrixIdentity()
	for _, u := range r.meshes {
		mtl := r.mtl
		if u.textured {
			mtl = r.texturedMtl
		}
		rl.DrawMesh(u.mesh, mtl, transform)
	}
}

// Unload frees every GPU resource.
func (r *Registry) Unload() {
	for i := range r.meshes {
		rl.UnloadMesh(&r.meshes[i].mesh)
	}
	r.meshes = nil
	if !r.loaded {
		return
	}
	if rl.IsTextureValid(r.texture) {
		rl.UnloadTexture(r.texture)
	}
	for _, s := range r.lit {
		rl.UnloadShader(s.shader)
	}
	r.lit = nil
	r.loaded = false
}
