// package config loads view and camera settings from a YAML file. A zero
// value for any field means "use the built-in default"; no further validation
// happens here, since the camera contract accepts degenerate parameters and
// lets them propagate into the produced matrices.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grava-viz/grava-go/common"
)

// ViewConfig holds all settings for one graph view session.
type ViewConfig struct {
	Display  DisplayConfig `yaml:"display"`
	Camera   CameraConfig  `yaml:"camera"`
	Gestures GestureConfig `yaml:"gestures"`
}

// DisplayConfig describes the initial viewport.
type DisplayConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig describes the camera's optical parameters.
type CameraConfig struct {
	// Fov is the vertical field of view in radians.
	Fov  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
	// PlanarViewDepth is the fixed depth the 2D camera reports from its
	// position so a perspective pipeline behaves sanely for flat content.
	PlanarViewDepth float32 `yaml:"planar_view_depth"`
	// FocalDistance is the 3D camera's initial distance to its look-at point.
	FocalDistance float32 `yaml:"focal_distance"`
}

// GestureConfig describes pointer-gesture sensitivity for the view layer.
type GestureConfig struct {
	// DragSensitivity converts pixel drag deltas to translation gesture units.
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	// OrbitSensitivity converts pixel drag deltas to orbit angles in radians.
	OrbitSensitivity float32 `yaml:"orbit_sensitivity"`
}

// Default returns the built-in view configuration: an 800x600 viewport and
// the camera constants the graph renderer was tuned for.
//
// Returns:
//   - ViewConfig: the default configuration
func Default() ViewConfig {
	return ViewConfig{
		Display: DisplayConfig{
			Width:  800,
			Height: 600,
			Title:  "graph view",
		},
		Camera: CameraConfig{
			Fov:             1.0,
			Near:            1.0,
			Far:             10000.0,
			PlanarViewDepth: 5550.0,
			FocalDistance:   100.0,
		},
		Gestures: GestureConfig{
			DragSensitivity:  1.0,
			OrbitSensitivity: 0.01,
		},
	}
}

// Load reads a ViewConfig from a YAML file. Fields the file leaves unset (or
// zero) fall back to the Default values.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - ViewConfig: the merged configuration
//   - error: I/O or YAML decoding error
func Load(path string) (ViewConfig, error) {
	def := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("read view config: %w", err)
	}

	var cfg ViewConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return def, fmt.Errorf("parse view config: %w", err)
	}
	return cfg.withDefaults(def), nil
}

// withDefaults fills zero-valued fields from def.
func (c ViewConfig) withDefaults(def ViewConfig) ViewConfig {
	c.Display.Width = common.Coalesce(c.Display.Width, def.Display.Width)
	c.Display.Height = common.Coalesce(c.Display.Height, def.Display.Height)
	c.Display.Title = common.Coalesce(c.Display.Title, def.Display.Title)

	c.Camera.Fov = common.Coalesce(c.Camera.Fov, def.Camera.Fov)
	c.Camera.Near = common.Coalesce(c.Camera.Near, def.Camera.Near)
	c.Camera.Far = common.Coalesce(c.Camera.Far, def.Camera.Far)
	c.Camera.PlanarViewDepth = common.Coalesce(c.Camera.PlanarViewDepth, def.Camera.PlanarViewDepth)
	c.Camera.FocalDistance = common.Coalesce(c.Camera.FocalDistance, def.Camera.FocalDistance)

	c.Gestures.DragSensitivity = common.Coalesce(c.Gestures.DragSensitivity, def.Gestures.DragSensitivity)
	c.Gestures.OrbitSensitivity = common.Coalesce(c.Gestures.OrbitSensitivity, def.Gestures.OrbitSensitivity)
	return c
}
