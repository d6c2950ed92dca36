package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location, relative to the process working directory.
const DefaultPath = "config/boxview.yaml"

// Geometry types understood by the pipeline.
const (
	TypeBox    = "box"
	TypeSphere = "sphere"
)

// Normal modes for GeometryDef.Normals.
const (
	NormalsTriangle = "triangle"
	NormalsVertex   = "vertex"
	NormalsNone     = "none"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Prefs is the whole viewer configuration. A missing file means Default().
type Prefs struct {
	Window     Window        `yaml:"window"`
	Light      Light         `yaml:"light"`
	Texture    string        `yaml:"texture,omitempty"` // image file; empty = built-in checkerboard
	Geometries []GeometryDef `yaml:"geometries"`
}

// Window holds the display settings.
type Window struct {
	Title      string     `yaml:"title,omitempty"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background [4]float32 `yaml:"background"` // RGBA in [0,1]
	ShowUI     bool       `yaml:"show_ui"`
	TargetFPS  int        `yaml:"target_fps,omitempty"`
}

// Light is the single directional key light plus ambient fill used by the lit shaders.
// Direction points from the scene toward the light and need not be normalized.
type Light struct {
	Direction        [3]float32 `yaml:"direction"`
	Color            [3]float32 `yaml:"color"`
	Ambient          [3]float32 `yaml:"ambient"`
	Intensity        float32    `yaml:"intensity"`
	SpecularPower    float32    `yaml:"specular_power"`
	SpecularStrength float32    `yaml:"specular_strength"`
}

// Instance is an extra copy of a geometry under its own name and translation.
type Instance struct {
	Name      string     `yaml:"name"`
	Translate [3]float32 `yaml:"translate"`
}

// GeometryDef describes one primitive to build, shade, move and show.
// Size is used by boxes, Radius and Resolution by spheres. Color, when set, paints
// every vertex (RGB in [0,1]). Each of Instances shows another copy of the same mesh.
type GeometryDef struct {
	Name                 string      `yaml:"name"`
	Type                 string      `yaml:"type"`
	Size                 [3]float32  `yaml:"size,omitempty"`
	Radius               float32     `yaml:"radius,omitempty"`
	Resolution           int         `yaml:"resolution,omitempty"`
	CreateUVMap          bool        `yaml:"create_uv_map"`
	MapTextureToEachFace bool        `yaml:"map_texture_to_each_face"`
	Normals              string      `yaml:"normals,omitempty"`
	Color                *[3]float32 `yaml:"color,omitempty"`
	Translate            [3]float32  `yaml:"translate"`
	Instances            []Instance  `yaml:"instances,omitempty"`
}

// DemoGeometry is the textured 2x4x4 box named "cube", moved to (-5, 0, -2).
func DemoGeometry() GeometryDef {
	return GeometryDef{
		Name:                 "cube",
		Type:                 TypeBox,
		Size:                 [3]float32{2, 4, 4},
		CreateUVMap:          true,
		MapTextureToEachFace: true,
		Normals:              NormalsTriangle,
		Translate:            [3]float32{-5, 0, -2},
	}
}

// DefaultLight is a warm key light above and in front-right of the scene with a dim
// ambient so faces turned away are not black.
func DefaultLight() Light {
	return Light{
		Direction:        [3]float32{0.5, 1, 0.5},
		Color:            [3]float32{1.0, 0.98, 0.95},
		Ambient:          [3]float32{0.25, 0.27, 0.3},
		Intensity:        0.8,
		SpecularPower:    48,
		SpecularStrength: 0.25,
	}
}

// Default returns the demo setup: one cube on a pale cyan 1920x1080 window with UI shown.
func Default() Prefs {
	return Prefs{
		Window: Window{
			Title:      "boxview",
			Width:      1920,
			Height:     1080,
			Background: [4]float32{0.8, 0.9, 0.9, 1.0},
			ShowUI:     true,
			TargetFPS:  60,
		},
		Light:      DefaultLight(),
		Geometries: []GeometryDef{DemoGeometry()},
	}
}

// Load reads prefs from path. A missing file returns Default() and no error.
// An unreadable or unparsable file returns Default() together with the error so the
// caller can log it and carry on.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	p := Default()
	p.Geometries = nil
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(p.Geometries) == 0 {
		p.Geometries = []GeometryDef{DemoGeometry()}
	}
	return p, nil
}

// LoadOrCreate is Load, except that a missing file is first written with Default() so
// the user has something to edit. created reports whether that happened.
func LoadOrCreate(path string) (p Prefs, created bool, err error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		p = Default()
		if err := Save(path, p); err != nil {
			return p, false, fmt.Errorf("write default config %s: %w", path, err)
		}
		return p, true, nil
	}
	p, err = Load(path)
	return p, false, err
}

// Save writes prefs to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first problem found in the window settings or the geometry
// list. Dimensions are left to the geometry constructors.
func (p Prefs) Validate() error {
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", p.Window.Width, p.Window.Height, ErrInvalid)
	}
	for _, ch := range p.Window.Background {
		if !(ch >= 0 && ch <= 1) {
			return fmt.Errorf("background %v: %w", p.Window.Background, ErrInvalid)
		}
	}
	if err := p.Light.validate(); err != nil {
		return err
	}
	if len(p.Geometries) == 0 {
		return fmt.Errorf("no geometries: %w", ErrInvalid)
	}
	names := make(map[string]bool, len(p.Geometries))
	claim := func(name string) error {
		if names[name] {
			return fmt.Errorf("geometry %q defined twice: %w", name, ErrInvalid)
		}
		names[name] = true
		return nil
	}
	for i, g := range p.Geometries {
		if g.Name == "" {
			return fmt.Errorf("geometry %d has no name: %w", i, ErrInvalid)
		}
		if err := claim(g.Name); err != nil {
			return err
		}
		for j, inst := range g.Instances {
			if inst.Name == "" {
				return fmt.Errorf("geometry %q: instance %d has no name: %w", g.Name, j, ErrInvalid)
			}
			if err := claim(inst.Name); err != nil {
				return err
			}
		}
		switch g.Type {
		case TypeBox, TypeSphere:
		default:
			return fmt.Errorf("geometry %q: unknown type %q: %w", g.Name, g.Type, ErrInvalid)
		}
		switch g.Normals {
		case "", NormalsTriangle, NormalsVertex, NormalsNone:
		default:
			return fmt.Errorf("geometry %q: unknown normals mode %q: %w", g.Name, g.Normals, ErrInvalid)
		}
	}
	return nil
}

func (l Light) validate() error {
	if l.Direction == [3]float32{} {
		return fmt.Errorf("light direction is zero: %w", ErrInvalid)
	}
	if l.Intensity < 0 || l.SpecularPower < 0 || l.SpecularStrength < 0 {
		return fmt.Errorf("light intensity and specular terms must not be negative: %w", ErrInvalid)
	}
	return nil
}

// Environment variables read by ApplyEnv.
const (
	EnvConfig  = "BOXVIEW_CONFIG"
	EnvTexture = "BOXVIEW_TEXTURE"
	EnvWidth   = "BOXVIEW_WIDTH"
	EnvHeight  = "BOXVIEW_HEIGHT"
	EnvShowUI  = "BOXVIEW_SHOW_UI"
)

// ApplyEnv overrides prefs from BOXVIEW_* variables. Unset variables leave the value alone.
func (p *Prefs) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvTexture); v != "" {
		p.Texture = v
	}
	if v := getenv(EnvWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWidth, err)
		}
		p.Window.Width = n
	}
	if v := getenv(EnvHeight); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHeight, err)
		}
		p.Window.Height = n
	}
	if v := getenv(EnvShowUI); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvShowUI, err)
		}
		p.Window.ShowUI = b
	}
	return nil
}
