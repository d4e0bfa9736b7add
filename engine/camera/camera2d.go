package camera

import (
	"github.com/chewxy/math32"

	"github.com/grava-viz/grava-go/common"
)

const (
	// DefaultPlanarViewDepth is the fixed Z value the 2D camera reports from
	// Position(). A nominally flat scene still goes through a perspective
	// pipeline, and placing the camera this far above the XY plane keeps the
	// perspective divide well-behaved. Part of the camera's public contract:
	// position().z does not encode scene depth.
	DefaultPlanarViewDepth float32 = 5550.0

	// PlaceholderNodeSize is the fixed on-screen size ProjectPoint reports
	// for the 2D variant instead of deriving one from the requested
	// world-space size and depth. Downstream consumers tolerate this value;
	// the 3D variant computes the real thing.
	PlaceholderNodeSize = 5
)

// camera2dImpl is the camera variant constrained to the XY plane. Its look
// direction is fixed along negative Z for the lifetime of the instance;
// rotation only ever changes the up vector.
type camera2dImpl struct {
	cameraBase

	position [2]float32
	up       [2]float32

	imageWidth      float32
	imageHeight     float32
	near            float32
	far             float32
	planarViewDepth float32

	viewMatrix           [16]float32
	projectiveMatrix     [16]float32
	viewProjectiveMatrix [16]float32
}

var _ Camera = &camera2dImpl{}

// NewCamera2D creates a 2D camera at the origin with up = +Y and a field of
// view of 1 radian.
//
// Parameters:
//   - width, height: viewport size in pixels
//   - near, far: clip plane distances
//   - options: functional options to adjust the initial state
//
// Returns:
//   - Camera: the newly created camera
func NewCamera2D(width, height int, near, far float32, options ...CameraOption) Camera {
	s := newCameraSettings()
	for _, option := range options {
		option(s)
	}

	c := &camera2dImpl{
		cameraBase: cameraBase{
			fovy:            s.fov,
			recomputeMatrix: true,
		},
		up:              [2]float32{0, 1},
		imageWidth:      float32(width),
		imageHeight:     float32(height),
		near:            near,
		far:             far,
		planarViewDepth: s.planarViewDepth,
	}
	if s.positionSet {
		c.position = [2]float32{s.position[0], s.position[1]}
	}
	if s.upSet {
		ux, uy, _ := common.Normalize3(s.up[0], s.up[1], 0)
		c.up = [2]float32{ux, uy}
	}
	return c
}

func (c *camera2dImpl) Copy() Camera {
	clone := *c
	clone.requireRecomputeMatrix()
	return &clone
}

func (c *camera2dImpl) SetImageSize(width, height float32) {
	c.imageWidth = width
	c.imageHeight = height
	c.requireRecomputeMatrix()
}

func (c *camera2dImpl) SetClipPlanes(near, far float32) {
	c.near = near
	c.far = far
	c.requireRecomputeMatrix()
}

// FrontVector always returns the negative Z axis for a 2D camera.
func (c *camera2dImpl) FrontVector() (x, y, z float32) {
	return 0, 0, -1
}

func (c *camera2dImpl) UpVector() (x, y, z float32) {
	return c.up[0], c.up[1], 0
}

func (c *camera2dImpl) RightVector() (x, y, z float32) {
	fx, fy, fz := c.FrontVector()
	ux, uy, uz := c.UpVector()
	return common.Cross3(fx, fy, fz, ux, uy, uz)
}

// Position reports the planar view depth as the Z component, not scene depth.
func (c *camera2dImpl) Position() (x, y, z float32) {
	return c.position[0], c.position[1], c.planarViewDepth
}

func (c *camera2dImpl) LookAtPoint() (x, y, z float32) {
	return c.position[0], c.position[1], 0
}

func (c *camera2dImpl) ImageWidth() float32  { return c.imageWidth }
func (c *camera2dImpl) ImageHeight() float32 { return c.imageHeight }
func (c *camera2dImpl) Near() float32        { return c.near }
func (c *camera2dImpl) Far() float32         { return c.far }

func (c *camera2dImpl) ProjectedDistanceFrom(x, y, z float32) float32 {
	px, py, pz := c.Position()
	fx, fy, fz := c.FrontVector()
	return common.Dot3(x-px, y-py, z-pz, fx, fy, fz)
}

// Translate moves the camera inside the XY plane; the Z component of the
// delta is dropped.
func (c *camera2dImpl) Translate(x, y, z float32) {
	c.position[0] += x
	c.position[1] += y
	c.requireRecomputeMatrix()
}

// Rotate ignores the supplied axis: a 2D camera has exactly one rotation
// axis, its fixed front vector.
func (c *camera2dImpl) Rotate(axisX, axisY, axisZ, angle float32) {
	fx, fy, fz := c.FrontVector()
	ux, uy, uz := c.UpVector()
	rx, ry, _ := common.RotateVec3(ux, uy, uz, fx, fy, fz, angle)
	c.up = [2]float32{rx, ry}
	c.requireRecomputeMatrix()
}

// RotateAround substitutes the front vector for the axis like Rotate, and
// additionally swings the camera position about the pivot by the same angle.
func (c *camera2dImpl) RotateAround(originX, originY, originZ, axisX, axisY, axisZ, angle float32) {
	fx, fy, fz := c.FrontVector()

	ux, uy, uz := c.UpVector()
	rx, ry, _ := common.RotateVec3(ux, uy, uz, fx, fy, fz, angle)
	c.up = [2]float32{rx, ry}

	dx, dy, dz := c.position[0]-originX, c.position[1]-originY, -originZ
	sx, sy, _ := common.RotateVec3(dx, dy, dz, fx, fy, fz, angle)
	c.position = [2]float32{originX + sx, originY + sy}
	c.requireRecomputeMatrix()
}

// LookAt moves the camera directly above the center point: for a 2D view,
// "looking at" a point means sitting over it, not aiming toward it.
func (c *camera2dImpl) LookAt(centerX, centerY, centerZ, upX, upY, upZ float32) {
	ux, uy, _ := common.Normalize3(upX, upY, 0)
	c.up = [2]float32{ux, uy}
	c.position = [2]float32{centerX, centerY}
	c.requireRecomputeMatrix()
}

// LookAtFrom discards the eye position; with the camera fixed above its
// target, eye and center are redundant and the center wins.
func (c *camera2dImpl) LookAtFrom(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	c.LookAt(centerX, centerY, centerZ, upX, upY, upZ)
}

func (c *camera2dImpl) ViewMatrix() common.Mat4 {
	c.recomputeIfNeeded()
	return c.viewMatrix
}

func (c *camera2dImpl) ProjectiveMatrix() common.Mat4 {
	c.recomputeIfNeeded()
	return c.projectiveMatrix
}

func (c *camera2dImpl) ViewProjectiveMatrix() common.Mat4 {
	c.recomputeIfNeeded()
	return c.viewProjectiveMatrix
}

// recomputeIfNeeded rebuilds all cached matrices and clears the dirty flag.
// Both accessors share one flag, so view and projective caches are always
// rebuilt together and stay mutually consistent.
func (c *camera2dImpl) recomputeIfNeeded() {
	if !c.recomputeMatrix {
		return
	}
	c.recomputeView()
	c.recomputeProjective()
	common.Mul4(c.viewProjectiveMatrix[:], c.projectiveMatrix[:], c.viewMatrix[:])
	c.recomputeMatrix = false
}

// recomputeView installs the orthonormal basis right/up/-front as the
// transposed (world-to-camera) rotation and sets the translation column to
// the negated position, planar view depth included.
func (c *camera2dImpl) recomputeView() {
	rx, ry, rz := c.RightVector()
	ux, uy, uz := c.UpVector()
	fx, fy, fz := c.FrontVector()
	px, py, pz := c.Position()

	m := &c.viewMatrix
	m[0], m[4], m[8] = rx, ry, rz
	m[1], m[5], m[9] = ux, uy, uz
	m[2], m[6], m[10] = -fx, -fy, -fz
	m[3], m[7], m[11] = 0, 0, 0
	m[12], m[13], m[14] = -px, -py, -pz
	m[15] = 1
}

func (c *camera2dImpl) recomputeProjective() {
	common.Perspective(c.projectiveMatrix[:], c.fovy, c.imageWidth/c.imageHeight, c.near, c.far)
}

// ProjectPoint ignores the requested size and reports PlaceholderNodeSize.
func (c *camera2dImpl) ProjectPoint(x, y, z, size float32) (screenX, screenY, screenSize int) {
	vp := c.ViewProjectiveMatrix()
	cx, cy, _, cw := common.XformVec4(vp[:], x, y, z, 1)

	ndcX := cx / cw
	ndcY := cy / cw
	screenX = int((ndcX + 1.0) * c.imageWidth / 2.0)
	screenY = int((1.0 - ndcY) * c.imageHeight / 2.0)
	return screenX, screenY, PlaceholderNodeSize
}

// ProjectPointInverse approximates the inverse projection with the camera's
// own planar position; the screen point is not consulted.
func (c *camera2dImpl) ProjectPointInverse(x, y float32) (wx, wy, wz float32) {
	return c.position[0], c.position[1], 0
}

// ProjectVectorInverse maps a screen-space vector to world space by scaling
// the right and up vectors with the field-of-view ratio shared with
// UpdateTranslation. An approximation, not a matrix inverse.
func (c *camera2dImpl) ProjectVectorInverse(x, y float32) (wx, wy, wz float32) {
	ratio := fovTranslationRatio(c.fovy)
	rx, ry, rz := c.RightVector()
	ux, uy, uz := c.UpVector()
	return rx*x*ratio + ux*y*ratio,
		ry*x*ratio + uy*y*ratio,
		rz*x*ratio + uz*y*ratio
}

func (c *camera2dImpl) PlanarDistance(x, y, z float32, a, b int) int {
	sx, sy, _ := c.ProjectPoint(x, y, z, 0)
	dx := float32(sx - a)
	dy := float32(sy - b)
	return int(math32.Sqrt(dx*dx + dy*dy))
}

// StartTranslation is a no-op: 2D translation sessions need no bookkeeping.
func (c *camera2dImpl) StartTranslation() {}

func (c *camera2dImpl) UpdateTranslation(horizontal, vertical float32) {
	ratio := fovTranslationRatio(c.fovy)
	rx, ry, rz := c.RightVector()
	ux, uy, uz := c.UpVector()
	c.Translate(
		rx*horizontal*ratio+ux*vertical*ratio,
		ry*horizontal*ratio+uy*vertical*ratio,
		rz*horizontal*ratio+uz*vertical*ratio,
	)
}

// StartOrbit is a no-op: the 2D variant keeps no orbit session state.
func (c *camera2dImpl) StartOrbit(orbitModifier float32) {}

// UpdateOrbit rotates the up vector about the Z axis by x. The y parameter
// is accepted for interface symmetry; 2D has one rotational degree of
// freedom.
func (c *camera2dImpl) UpdateOrbit(x, y float32) {
	sin := math32.Sin(x)
	cos := math32.Cos(x)
	ux, uy := c.up[0], c.up[1]
	c.up = [2]float32{cos*ux - sin*uy, sin*ux + cos*uy}
	c.requireRecomputeMatrix()
}

// fovTranslationRatio scales screen-space gesture deltas to world units. At
// the default field of view of 1 radian the ratio is exactly 1; wider fields
// of view translate faster so the scene appears to track the pointer.
func fovTranslationRatio(fovy float32) float32 {
	return math32.Sqrt((1 - math32.Cos(fovy)) / (1 - math32.Cos(1.0)))
}
