// Package viewer presents a scene in an interactive raylib window.
package viewer

import (
	"context"
	"fmt"

	"box-viewer/internal/debug"
	"box-viewer/internal/display"
	"box-viewer/internal/graphics"
	"box-viewer/internal/logger"
	"box-viewer/internal/primitives"
	"box-viewer/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var boundsColor = rl.NewColor(230, 120, 40, 255)

var keyHelp = []string{
	"RMB drag + WASD: move camera   wheel: zoom",
	"G grid   B bounds   W wireframe   R reset view   H hide UI",
}

// Window implements display.Presenter on the graphics device.
type Window struct {
	dev *graphics.Device
	log *logger.Logger
}

var _ display.Presenter = (*Window)(nil)

// New returns a presenter drawing through dev.
func New(dev *graphics.Device, log *logger.Logger) *Window {
	return &Window{dev: dev, log: log}
}

// frameState is what the keyboard toggles between frames.
type frameState struct {
	camera    rl.Camera3D
	home      rl.Camera3D
	grid      bool
	bounds    bool
	wireframe bool
	geoms     []scene.Geometry
	registry  *primitives.Registry
	overlay   *debug.Overlay
}

// Present opens the window, uploads geoms and runs the frame loop until the window is
// closed or ctx is cancelled. GPU resources and the window are released before it returns.
func (w *Window) Present(ctx context.Context, geoms []scene.Geometry, cfg display.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := display.CheckGeometries(geoms); err != nil {
		return err
	}

	title := cfg.Title
	if title == "" {
		title = "boxview"
	}
	err := w.dev.OpenWindow(graphics.WindowOptions{
		Title:     title,
		Width:     cfg.Width,
		Height:    cfg.Height,
		TargetFPS: cfg.TargetFPS,
		Resizable: true,
	})
	if err != nil {
		return err
	}
	defer w.dev.CloseWindow()
	w.log.Logf("window %dx%d opened", cfg.Width, cfg.Height)

	reg := primitives.NewRegistry(cfg.Light)
	defer reg.Unload()
	if err := reg.Load(cfg.Texture); err != nil {
		return err
	}
	for _, g := range geoms {
		if err := reg.Add(g.Name, g.Mesh); err != nil {
			return err
		}
	}
	w.log.Logf("uploaded %d geometries", len(geoms))

	cam := newCamera(scene.Frame(scene.Bounds(geoms)))
	st := &frameState{
		camera:   cam,
		home:     cam,
		grid:     true,
		geoms:    geoms,
		registry: reg,
	}
	if cfg.ShowUI {
		st.overlay = debug.New(fmt.Sprintf("%s: %d geometries", title, len(geoms)), sceneLines(geoms), keyHelp, w.log.Tail)
	}

	bg := rl.ColorFromNormalized(rl.NewVector4(cfg.Background.R, cfg.Background.G, cfg.Background.B, cfg.Background.A))
	w.dev.Run(ctx, bg, st.update, st.draw)
	if ctx.Err() != nil {
		w.log.Log("viewer interrupted")
	}
	return nil
}

func (st *frameState) update() {
	switch {
	case rl.IsKeyPressed(rl.KeyG):
		st.grid = !st.grid
	case rl.IsKeyPressed(rl.KeyB):
		st.bounds = !st.bounds
	case rl.IsKeyPressed(rl.KeyW) && !rl.IsMouseButtonDown(rl.MouseButtonRight):
		st.wireframe = !st.wireframe
	case rl.IsKeyPressed(rl.KeyR):
		st.camera = st.home
	case rl.IsKeyPressed(rl.KeyH) && st.overlay != nil:
		st.overlay.Toggle()
	}
	updateCamera(&st.camera)
}

func (st *frameState) draw() {
	pos := st.camera.Position
	st.registry.SetView([3]float32{pos.X, pos.Y, pos.Z})

	rl.BeginMode3D(st.camera)
	if st.grid {
		drawGrid()
	}
	st.registry.Draw(st.wireframe)
	if st.bounds {
		for _, g := range st.geoms {
			rl.DrawBoundingBox(boundingBox(g.Mesh.Bounds), boundsColor)
		}
	}
	rl.EndMode3D()

	if st.overlay != nil {
		st.overlay.Draw()
	}
}

// sceneLines is one panel line per geometry: name, counts and world bounds.
func sceneLines(geoms []scene.Geometry) []string {
	lines := make([]string, 0, len(geoms))
	for _, g := range geoms {
		b := g.Mesh.Bounds
		lines = append(lines, fmt.Sprintf("%s  %d tris  [%.1f,%.1f]x[%.1f,%.1f]x[%.1f,%.1f]",
			g.Name, g.Mesh.TriangleCount(), b.Min.X, b.Max.X, b.Min.Y, b.Max.Y, b.Min.Z, b.Max.Z))
	}
	return lines
}
