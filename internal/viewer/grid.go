package viewer

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 60
	gridMajorAlpha = 140
	axisLineAlpha  = 220
)

var (
	gridMinor = rl.NewColor(90, 100, 100, gridMinorAlpha)
	gridMajor = rl.NewColor(70, 80, 80, gridMajorAlpha)
	axisX     = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY     = rl.NewColor(80, 200, 80, axisLineAlpha)
	axisZ     = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// drawGrid draws a grid on the XZ plane (Y=0) with major/minor lines and the three
// axis lines through the origin. Reuses start/end to avoid per-frame allocations.
func drawGrid() {
	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := gridMajor
		if i%gridMajorStep != 0 {
			c = gridMinor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = -gridExtent, 0, 0
	end.X, end.Y, end.Z = gridExtent, 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, -gridExtent, 0
	end.X, end.Y, end.Z = 0, gridExtent, 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, -gridExtent
	end.X, end.Y, end.Z = 0, 0, gridExtent
	rl.DrawLine3D(start, end, axisZ)
}
