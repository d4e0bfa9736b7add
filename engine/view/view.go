// package view ties one camera to one view session. The original design kept
// a process-wide active camera; View replaces that with an explicitly owned
// reference handed to the renderer and input layer at construction. A View
// (and the camera it owns) belongs to a single goroutine; calls must come
// from the render/input loop that owns the session.
package view

import (
	"github.com/grava-viz/grava-go/common"
	"github.com/grava-viz/grava-go/config"
	"github.com/grava-viz/grava-go/engine/camera"
)

// View owns the active camera of one graph view session and adapts raw
// pointer/window events to camera gestures.
type View interface {
	// Camera returns the active camera. The reference changes when the view
	// toggles between 2D and 3D mode, so consumers should re-fetch it per
	// frame rather than hold it.
	//
	// Returns:
	//   - camera.Camera: the active camera
	Camera() camera.Camera

	// Is3D reports whether the view currently renders in 3D mode.
	Is3D() bool

	// ToggleMode switches between 2D and 3D rendering, reconstructing the
	// active camera through the flatten/lift conversions. The previous
	// camera is discarded.
	ToggleMode()

	// Resize updates the camera's viewport after a window resize.
	//
	// Parameters:
	//   - width, height: new viewport size in pixels
	Resize(width, height int)

	// BeginDrag starts a pan gesture session.
	BeginDrag()

	// Drag applies one pointer-drag step of a pan session. Deltas are in
	// pixels with screen coordinates (Y grows downward); the view scales and
	// reorients them so the content follows the pointer.
	//
	// Parameters:
	//   - dx, dy: pointer movement in pixels since the last call
	Drag(dx, dy float32)

	// BeginOrbit starts an orbit gesture session.
	BeginOrbit()

	// Orbit applies one pointer-drag step of an orbit session.
	//
	// Parameters:
	//   - dx, dy: pointer movement in pixels since the last call
	Orbit(dx, dy float32)

	// Visible reports whether a sphere around the given world-space point
	// intersects the camera's viewing volume. Used to cull graph nodes.
	//
	// Parameters:
	//   - x, y, z: node center in world space
	//   - radius: node bounding radius
	//
	// Returns:
	//   - bool: true if any part of the sphere may be on screen
	Visible(x, y, z, radius float32) bool

	// PickDistance returns the on-screen pixel distance between a projected
	// world-space point and a pointer position. Hit-testing picks the node
	// with the smallest distance under a threshold.
	//
	// Parameters:
	//   - x, y, z: node center in world space
	//   - screenX, screenY: pointer position in pixels
	//
	// Returns:
	//   - int: the pixel distance
	PickDistance(x, y, z float32, screenX, screenY int) int
}

type viewImpl struct {
	cam    camera.Camera
	mode3d bool

	dragSensitivity  float32
	orbitSensitivity float32
}

var _ View = &viewImpl{}

// NewView creates a view session starting in 2D mode with a camera built
// from the given configuration.
//
// Parameters:
//   - cfg: the view configuration
//
// Returns:
//   - View: the new view session
func NewView(cfg config.ViewConfig) View {
	return &viewImpl{
		cam: camera.NewCamera2D(
			cfg.Display.Width, cfg.Display.Height,
			cfg.Camera.Near, cfg.Camera.Far,
			camera.WithViewConfig(cfg.Camera),
		),
		dragSensitivity:  cfg.Gestures.DragSensitivity,
		orbitSensitivity: cfg.Gestures.OrbitSensitivity,
	}
}

func (v *viewImpl) Camera() camera.Camera {
	return v.cam
}

func (v *viewImpl) Is3D() bool {
	return v.mode3d
}

func (v *viewImpl) ToggleMode() {
	if v.mode3d {
		v.cam = camera.NewCamera2DFrom3D(v.cam)
	} else {
		v.cam = camera.NewCamera3DFrom2D(v.cam)
	}
	v.mode3d = !v.mode3d
}

func (v *viewImpl) Resize(width, height int) {
	v.cam.SetImageSize(float32(width), float32(height))
}

func (v *viewImpl) BeginDrag() {
	v.cam.StartTranslation()
}

// Drag inverts the deltas so the camera moves against the pointer and the
// content appears to follow it; screen Y grows downward, world up grows up.
func (v *viewImpl) Drag(dx, dy float32) {
	v.cam.UpdateTranslation(-dx*v.dragSensitivity, dy*v.dragSensitivity)
}

func (v *viewImpl) BeginOrbit() {
	v.cam.StartOrbit(1)
}

func (v *viewImpl) Orbit(dx, dy float32) {
	v.cam.UpdateOrbit(dx*v.orbitSensitivity, dy*v.orbitSensitivity)
}

func (v *viewImpl) Visible(x, y, z, radius float32) bool {
	vp := v.cam.ViewProjectiveMatrix()
	return common.FrustumFromMatrix(vp[:]).IntersectsSphere(x, y, z, radius)
}

func (v *viewImpl) PickDistance(x, y, z float32, screenX, screenY int) int {
	return v.cam.PlanarDistance(x, y, z, screenX, screenY)
}
