package viewer

import (
	"box-viewer/internal/geometry"
	"box-viewer/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func vec3(v geometry.Vector3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

// newCamera returns a perspective camera placed by scene.Frame.
func newCamera(v scene.View) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(v.Position),
		Target:     vec3(v.Target),
		Up:         vec3(v.Up),
		Fovy:       v.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// updateCamera moves the camera while the right mouse button is held (mouse look,
// WASD, wheel zoom), so the left button and the keyboard stay free otherwise.
func updateCamera(cam *rl.Camera3D) {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		rl.UpdateCamera(cam, rl.CameraFree)
		return
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		zoom(cam, wheel)
	}
}

const (
	zoomStep    = 0.1
	minDistance = 0.5
)

// zoom moves the camera along its view line; positive steps move closer.
func zoom(cam *rl.Camera3D, steps float32) {
	offset := rl.Vector3Subtract(cam.Position, cam.Target)
	dist := rl.Vector3Length(offset)
	if dist == 0 {
		return
	}
	next := max(dist*(1-zoomStep*steps), minDistance)
	cam.Position = rl.Vector3Add(cam.Target, rl.Vector3Scale(offset, next/dist))
}

func boundingBox(b geometry.AABB) rl.BoundingBox {
	return rl.NewBoundingBox(vec3(b.Min), vec3(b.Max))
}
