package camera

import (
	"github.com/grava-viz/grava-go/config"
)

// cameraSettings collects the optional initial state shared by both camera
// constructors. Variant-specific fields are ignored by the variant that has
// no use for them (the 2D camera drops Z components, the 3D camera has no
// planar view depth).
type cameraSettings struct {
	fov             float32
	planarViewDepth float32
	focalDistance   float32

	position    [3]float32
	positionSet bool

	up    [3]float32
	upSet bool
}

func newCameraSettings() *cameraSettings {
	return &cameraSettings{
		fov:             1.0,
		planarViewDepth: DefaultPlanarViewDepth,
		focalDistance:   defaultFocalDistance,
	}
}

// CameraOption is a functional option for configuring a camera at
// construction time.
type CameraOption func(*cameraSettings)

// WithFov sets the vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraOption: functional option to set the field of view
func WithFov(fov float32) CameraOption {
	return func(s *cameraSettings) {
		s.fov = fov
	}
}

// WithPosition sets the camera's initial world-space position. The 2D
// variant keeps only the X and Y components.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraOption: functional option to set the position
func WithPosition(x, y, z float32) CameraOption {
	return func(s *cameraSettings) {
		s.position = [3]float32{x, y, z}
		s.positionSet = true
	}
}

// WithUp sets the camera's initial up direction; it is normalized before
// use. The 2D variant keeps only the X and Y components.
//
// Parameters:
//   - x, y, z: the up direction
//
// Returns:
//   - CameraOption: functional option to set the up vector
func WithUp(x, y, z float32) CameraOption {
	return func(s *cameraSettings) {
		s.up = [3]float32{x, y, z}
		s.upSet = true
	}
}

// WithPlanarViewDepth overrides DefaultPlanarViewDepth, the fixed Z value
// the 2D camera reports from Position(). The 3D variant ignores it.
//
// Parameters:
//   - depth: the planar view depth
//
// Returns:
//   - CameraOption: functional option to set the planar view depth
func WithPlanarViewDepth(depth float32) CameraOption {
	return func(s *cameraSettings) {
		s.planarViewDepth = depth
	}
}

// WithFocalDistance sets the 3D camera's initial distance to its look-at
// point. The 2D variant ignores it.
//
// Parameters:
//   - distance: the focal distance
//
// Returns:
//   - CameraOption: functional option to set the focal distance
func WithFocalDistance(distance float32) CameraOption {
	return func(s *cameraSettings) {
		s.focalDistance = distance
	}
}

// WithViewConfig applies the camera parameters of a loaded view
// configuration.
//
// Parameters:
//   - cfg: the camera section of a view configuration
//
// Returns:
//   - CameraOption: functional option applying the configured values
func WithViewConfig(cfg config.CameraConfig) CameraOption {
	return func(s *cameraSettings) {
		if cfg.Fov != 0 {
			s.fov = cfg.Fov
		}
		if cfg.PlanarViewDepth != 0 {
			s.planarViewDepth = cfg.PlanarViewDepth
		}
		if cfg.FocalDistance != 0 {
			s.focalDistance = cfg.FocalDistance
		}
	}
}
