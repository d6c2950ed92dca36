package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
	panelWidth     = 520
	logPanelLines  = 4
)

var (
	panelColor = rl.NewColor(24, 24, 24, 200)
	titleColor = rl.White
	textColor  = rl.LightGray
	logColor   = rl.Gray
)

// Overlay is the on-screen UI: a panel with the scene contents, key help and the most
// recent log lines on the left, FPS and heap counters on the right. Hidden entirely
// when Visible is false.
type Overlay struct {
	Visible      bool
	ShowFPS      bool
	ShowMemAlloc bool

	title        string
	sceneLines   []string
	help         []string
	logTail      func(n int) []string
	logLines     []string
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns an overlay showing title above the given scene lines. logTail, when not
// nil, supplies the last n log lines for the bottom of the panel. Counters start on.
func New(title string, sceneLines, help []string, logTail func(n int) []string) *Overlay {
	return &Overlay{
		Visible:      true,
		ShowFPS:      true,
		ShowMemAlloc: true,
		title:        title,
		sceneLines:   sceneLines,
		help:         help,
		logTail:      logTail,
	}
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Draw renders the overlay in screen space. Call after EndMode3D.
// Counter text is only recomputed every updateInterval frames to limit allocations.
func (o *Overlay) Draw() {
	if !o.Visible {
		return
	}
	o.frameCount++
	update := o.frameCount%updateInterval == 0 || o.lastFpsText == ""
	if update && o.logTail != nil {
		o.logLines = o.logTail(logPanelLines)
	}

	o.drawPanel()

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	if o.ShowFPS {
		if update {
			o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRightAligned(o.lastFpsText, screenW, y, rl.DarkGreen)
		y += lineHeight
	}
	if o.ShowMemAlloc {
		if update || o.lastMemText == "" {
			runtime.ReadMemStats(&o.lastMemStats)
			mb := float64(o.lastMemStats.Alloc) / (1024 * 1024)
			o.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRightAligned(o.lastMemText, screenW, y, rl.DarkGreen)
	}
}

func (o *Overlay) drawPanel() {
	lines := 1 + len(o.sceneLines) + 1 + len(o.help)
	if len(o.logLines) > 0 {
		lines += 1 + len(o.logLines)
	}
	h := int32(lines*lineHeight + 2*padding)
	rl.DrawRectangle(padding, padding, panelWidth, h, panelColor)

	x := int32(2 * padding)
	y := int32(2 * padding)
	rl.DrawText(o.title, x, y, fontSize, titleColor)
	y += lineHeight
	for _, line := range o.sceneLines {
		rl.DrawText(line, x, y, fontSize, textColor)
		y += lineHeight
	}
	y += lineHeight
	for _, line := range o.help {
		rl.DrawText(line, x, y, fontSize-4, textColor)
		y += lineHeight
	}
	if len(o.logLines) == 0 {
		return
	}
	y += lineHeight
	for _, line := range o.logLines {
		rl.DrawText(line, x, y, fontSize-6, logColor)
		y += lineHeight
	}
}

func drawRightAligned(text string, screenW, y int32, c rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, c)
}
