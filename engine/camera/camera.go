// package camera implements the controllable viewpoint of a graph view: it
// turns position, orientation, field of view and clip planes into the view
// and projective matrices the renderer consumes each frame, and supports the
// inverse operations a pointer-driven UI needs (screen-to-world conversion,
// picking distances, translate/rotate/orbit gestures).
//
// Two variants implement the Camera interface: a 2D camera constrained to the
// XY plane with a fixed -Z look direction, and a full 6-DOF 3D camera. A
// camera instance is owned by exactly one view session at a time; operations
// are plain synchronous computations and concurrent use must be serialized by
// the caller.
package camera

import (
	"github.com/grava-viz/grava-go/common"
)

// Camera is the capability interface every camera variant implements. All
// consumers (renderer, input layer) program against this contract.
//
// Matrix accessors are lazy: every mutator only marks the cached matrices
// stale, and the next accessor call recomputes them. No operation returns an
// error; degenerate inputs (zero viewport height, near == far) flow silently
// into non-finite matrix entries.
type Camera interface {
	// Copy returns a deep, independent clone of the camera. Mutating the
	// clone never affects the original.
	//
	// Returns:
	//   - Camera: the clone
	Copy() Camera

	// SetImageSize sets the viewport size in pixels.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	SetImageSize(width, height float32)

	// SetClipPlanes sets the near and far clipping plane distances.
	//
	// Parameters:
	//   - near, far: clip plane distances
	SetClipPlanes(near, far float32)

	// FrontVector returns the camera's viewing direction. For the 2D variant
	// this is always the negative Z axis.
	//
	// Returns:
	//   - x, y, z: the front vector
	FrontVector() (x, y, z float32)

	// UpVector returns the camera's up direction, unit length at all times.
	//
	// Returns:
	//   - x, y, z: the up vector
	UpVector() (x, y, z float32)

	// RightVector returns front x up.
	//
	// Returns:
	//   - x, y, z: the right vector
	RightVector() (x, y, z float32)

	// Position returns the camera's world-space position. The 2D variant
	// reports its planar view depth as the Z component; callers must not
	// assume it encodes scene depth.
	//
	// Returns:
	//   - x, y, z: the camera position
	Position() (x, y, z float32)

	// LookAtPoint returns the point the camera looks at.
	//
	// Returns:
	//   - x, y, z: the look-at point
	LookAtPoint() (x, y, z float32)

	// ImageWidth returns the viewport width in pixels.
	ImageWidth() float32

	// ImageHeight returns the viewport height in pixels.
	ImageHeight() float32

	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Near returns the near clip plane distance.
	Near() float32

	// Far returns the far clip plane distance.
	Far() float32

	// ProjectedDistanceFrom returns the distance of the point from the
	// camera along the viewing direction.
	//
	// Parameters:
	//   - x, y, z: world-space point
	//
	// Returns:
	//   - float32: the distance along the front vector
	ProjectedDistanceFrom(x, y, z float32) float32

	// ViewMatrix returns the world-to-camera matrix. Lazily recomputed and
	// cached; repeated calls without an intervening mutation return the
	// identical cached value.
	//
	// Returns:
	//   - common.Mat4: the view matrix (column-major)
	ViewMatrix() common.Mat4

	// ProjectiveMatrix returns the camera-to-clip-space perspective matrix,
	// cached like ViewMatrix.
	//
	// Returns:
	//   - common.Mat4: the projective matrix (column-major)
	ProjectiveMatrix() common.Mat4

	// ViewProjectiveMatrix returns the cached product
	// ProjectiveMatrix() * ViewMatrix().
	//
	// Returns:
	//   - common.Mat4: the combined matrix (column-major)
	ViewProjectiveMatrix() common.Mat4

	// ProjectPoint transforms a world-space point to screen space: it applies
	// the view-projective matrix, performs the perspective divide, and maps
	// normalized device coordinates to pixels with the Y axis flipped.
	//
	// Parameters:
	//   - x, y, z: world-space point
	//   - size: the point's world-space size (the 2D variant ignores it and
	//     reports PlaceholderNodeSize)
	//
	// Returns:
	//   - screenX, screenY: pixel coordinates
	//   - screenSize: the point's on-screen size in pixels
	ProjectPoint(x, y, z, size float32) (screenX, screenY, screenSize int)

	// ProjectPointInverse returns the world-space point on the camera's
	// viewing plane corresponding to the given screen point. The 2D variant
	// approximates this with its own planar position.
	//
	// Parameters:
	//   - x, y: pixel coordinates
	//
	// Returns:
	//   - wx, wy, wz: the world-space point
	ProjectPointInverse(x, y float32) (wx, wy, wz float32)

	// ProjectVectorInverse returns the world-space vector corresponding to
	// the given screen-space vector.
	//
	// Parameters:
	//   - x, y: screen-space vector components
	//
	// Returns:
	//   - wx, wy, wz: the world-space vector
	ProjectVectorInverse(x, y float32) (wx, wy, wz float32)

	// PlanarDistance projects the world-space point to screen space and
	// returns the rounded pixel distance to (a, b). Used for picking.
	//
	// Parameters:
	//   - x, y, z: world-space point
	//   - a, b: screen point in pixels
	//
	// Returns:
	//   - int: the Euclidean pixel distance
	PlanarDistance(x, y, z float32, a, b int) int

	// Translate moves the camera by the given world-space delta. The 2D
	// variant drops the Z component.
	//
	// Parameters:
	//   - x, y, z: the translation
	Translate(x, y, z float32)

	// Rotate rotates the camera's orientation by angle radians about an axis
	// through the camera. The 2D variant has a single rotation axis and
	// ignores the supplied one in favor of its front vector.
	//
	// Parameters:
	//   - axisX, axisY, axisZ: the rotation axis
	//   - angle: rotation angle in radians
	Rotate(axisX, axisY, axisZ, angle float32)

	// RotateAround rotates the camera about an axis through an arbitrary
	// pivot point, swinging the position along. The 2D variant substitutes
	// its front vector for the axis.
	//
	// Parameters:
	//   - originX, originY, originZ: the pivot point
	//   - axisX, axisY, axisZ: the rotation axis
	//   - angle: rotation angle in radians
	RotateAround(originX, originY, originZ, axisX, axisY, axisZ, angle float32)

	// LookAt aims the camera at the center point with the given up direction.
	// The 2D camera sits directly above its look-at point, so for that
	// variant this moves the camera to the center rather than aiming at it.
	//
	// Parameters:
	//   - centerX, centerY, centerZ: the point to look at
	//   - upX, upY, upZ: the up direction
	LookAt(centerX, centerY, centerZ, upX, upY, upZ float32)

	// LookAtFrom positions the camera at eye and aims it at center. The 2D
	// variant discards the eye and delegates to LookAt, since one of the two
	// points is redundant for a camera fixed above its target.
	//
	// Parameters:
	//   - eyeX, eyeY, eyeZ: the camera position
	//   - centerX, centerY, centerZ: the point to look at
	//   - upX, upY, upZ: the up direction
	LookAtFrom(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32)

	// StartTranslation begins a pointer-drag translation session.
	StartTranslation()

	// UpdateTranslation applies one drag step of a translation session,
	// converting screen-space deltas to a world-space move along the right
	// and up vectors.
	//
	// Parameters:
	//   - horizontal, vertical: screen-space drag deltas
	UpdateTranslation(horizontal, vertical float32)

	// StartOrbit begins an orbit session.
	//
	// Parameters:
	//   - orbitModifier: sensitivity multiplier for subsequent UpdateOrbit calls
	StartOrbit(orbitModifier float32)

	// UpdateOrbit applies one drag step of an orbit session. The 2D variant
	// has one rotational degree of freedom and ignores y.
	//
	// Parameters:
	//   - x: horizontal orbit angle in radians
	//   - y: vertical orbit angle in radians
	UpdateOrbit(x, y float32)
}

// cameraBase holds the state shared by all camera variants: the vertical
// field of view and the dirty flag guarding the cached matrices. Every
// mutator calls requireRecomputeMatrix; the matrix accessors recompute both
// caches and clear the flag, never eagerly.
type cameraBase struct {
	fovy            float32
	recomputeMatrix bool
}

func (cb *cameraBase) requireRecomputeMatrix() {
	cb.recomputeMatrix = true
}

// Fov returns the vertical field of view in radians.
func (cb *cameraBase) Fov() float32 {
	return cb.fovy
}
