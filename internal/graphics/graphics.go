package graphics

import (
	"context"
	"errors"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// ErrDeviceInUse is returned by Acquire while another Device is held.
	ErrDeviceInUse = errors.New("graphics: device already acquired")
	// ErrNoDisplay is returned when the window or GL context cannot be created.
	ErrNoDisplay = errors.New("graphics: could not open window")
	// ErrWindowOpen is returned by OpenWindow when the device already has one.
	ErrWindowOpen = errors.New("graphics: window already open")
)

// raylib keeps one window and GL context per process.
var acquired atomic.Bool

// WindowOptions configures the window opened by OpenWindow.
type WindowOptions struct {
	Title     string
	Width     int
	Height    int
	TargetFPS int
	Resizable bool
}

// Device is the process-wide graphics handle. Acquire it once at program start and
// Release it before exit; at most one window is open at a time.
type Device struct {
	open     bool
	released bool
}

// Acquire returns the graphics device, or ErrDeviceInUse if it is already held.
func Acquire() (*Device, error) {
	if !acquired.CompareAndSwap(false, true) {
		return nil, ErrDeviceInUse
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	return &Device{}, nil
}

// OpenWindow creates the window and GL context. GPU resources may only be loaded after it returns.
func (d *Device) OpenWindow(opts WindowOptions) error {
	if d.open {
		return ErrWindowOpen
	}
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if opts.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return ErrNoDisplay
	}
	d.open = true

	rl.SetExitKey(rl.KeyNull) // close via window button; ESC is free for the overlay
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	return nil
}

// Run is the frame loop. Each frame it calls update (input, camera), then clears the
// screen to bg and calls draw. It returns when the window is closed or ctx is done.
func (d *Device) Run(ctx context.Context, bg rl.Color, update, draw func()) {
	for d.open && !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return
		}
		update()

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		draw()
		rl.EndDrawing()
	}
}

// CloseWindow destroys the window and GL context. Safe to call when no window is open.
func (d *Device) CloseWindow() {
	if !d.open {
		return
	}
	rl.CloseWindow()
	d.open = false
}

// Release closes any open window and lets the device be acquired again.
func (d *Device) Release() {
	if d.released {
		return
	}
	d.CloseWindow()
	d.released = true
	acquired.Store(false)
}
