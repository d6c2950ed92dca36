// Package display defines what a viewer is asked to show and how it is asked.
// It has no graphics dependency so the pipeline can be tested against a stub.
package display

import (
	"context"
	"errors"
	"fmt"
	"image"

	"box-viewer/internal/geometry"
	"box-viewer/internal/scene"
)

var (
	ErrEmptyScene    = errors.New("display: nothing to present")
	ErrDuplicateName = errors.New("display: duplicate geometry name")
	ErrInvalidConfig = errors.New("display: invalid configuration")
)

// Color is a normalized RGBA color, each channel in [0,1].
type Color struct {
	R, G, B, A float32
}

// Light is a directional key light with ambient fill. Direction points toward the light.
// Alpha is ignored for Color and Ambient.
type Light struct {
	Direction        geometry.Vector3
	Color            Color
	Ambient          Color
	Intensity        float32
	SpecularPower    float32
	SpecularStrength float32
}

// Config is the window setup for one presentation.
// Texture is applied to every geometry that has UVs; nil selects a built-in checkerboard.
type Config struct {
	Background Color
	ShowUI     bool
	Width      int
	Height     int

	Title     string
	TargetFPS int
	Texture   image.Image
	Light     Light
}

// Presenter shows geometries interactively. Present blocks until the user closes the
// window or ctx is cancelled.
type Presenter interface {
	Present(ctx context.Context, geoms []scene.Geometry, cfg Config) error
}

// Validate checks the window size, the background channel range and the light direction.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	for _, ch := range [4]float32{c.Background.R, c.Background.G, c.Background.B, c.Background.A} {
		if !(ch >= 0 && ch <= 1) {
			return fmt.Errorf("background %v: channel out of [0,1]: %w", c.Background, ErrInvalidConfig)
		}
	}
	if c.Light.Direction.Length() == 0 {
		return fmt.Errorf("light direction is zero: %w", ErrInvalidConfig)
	}
	return nil
}

// CheckGeometries rejects an empty list, entries without a mesh, and repeated names.
func CheckGeometries(geoms []scene.Geometry) error {
	if len(geoms) == 0 {
		return ErrEmptyScene
	}
	seen := make(map[string]struct{}, len(geoms))
	for i, g := range geoms {
		if g.Mesh == nil {
			return fmt.Errorf("geometry %d (%q) has no mesh: %w", i, g.Name, ErrEmptyScene)
		}
		if _, dup := seen[g.Name]; dup {
			return fmt.Errorf("%q: %w", g.Name, ErrDuplicateName)
		}
		seen[g.Name] = struct{}{}
	}
	return nil
}
