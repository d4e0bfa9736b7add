package camera

import (
	"github.com/grava-viz/grava-go/common"
)

// NewCamera2DFrom3D flattens a camera onto the XY plane: viewport, field of
// view and clip planes are copied, position and up lose their Z component
// (up is re-normalized), and any roll or pitch implied by the source's front
// vector is discarded. Invoked when the UI toggles from 3D to 2D rendering.
//
// Parameters:
//   - src: the camera to flatten
//   - options: functional options applied on top of the copied state
//
// Returns:
//   - Camera: the new 2D camera
func NewCamera2DFrom3D(src Camera, options ...CameraOption) Camera {
	s := newCameraSettings()
	for _, option := range options {
		option(s)
	}

	px, py, _ := src.Position()
	ux, uy, _ := src.UpVector()
	nx, ny, _ := common.Normalize3(ux, uy, 0)

	return &camera2dImpl{
		cameraBase: cameraBase{
			fovy:            src.Fov(),
			recomputeMatrix: true,
		},
		position:        [2]float32{px, py},
		up:              [2]float32{nx, ny},
		imageWidth:      src.ImageWidth(),
		imageHeight:     src.ImageHeight(),
		near:            src.Near(),
		far:             src.Far(),
		planarViewDepth: s.planarViewDepth,
	}
}

// NewCamera3DFrom2D lifts a flattened camera back into 3D space: the camera
// keeps its planar position and up direction, looks down the negative Z axis
// at its former look-at point, and adopts the source's reported depth as its
// focal distance. The asymmetric inverse of NewCamera2DFrom3D.
//
// Parameters:
//   - src: the camera to lift
//   - options: functional options applied on top of the copied state
//
// Returns:
//   - Camera: the new 3D camera
func NewCamera3DFrom2D(src Camera, options ...CameraOption) Camera {
	s := newCameraSettings()
	for _, option := range options {
		option(s)
	}

	px, py, pz := src.Position()
	ux, uy, _ := src.UpVector()
	nx, ny, _ := common.Normalize3(ux, uy, 0)

	return &camera3dImpl{
		cameraBase: cameraBase{
			fovy:            src.Fov(),
			recomputeMatrix: true,
		},
		position:      [3]float32{px, py, pz},
		front:         [3]float32{0, 0, -1},
		up:            [3]float32{nx, ny, 0},
		imageWidth:    src.ImageWidth(),
		imageHeight:   src.ImageHeight(),
		near:          src.Near(),
		far:           src.Far(),
		focalDistance: common.Coalesce(pz, s.focalDistance),
		orbitModifier: 1,
	}
}
