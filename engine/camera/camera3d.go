package camera

import (
	"github.com/chewxy/math32"

	"github.com/grava-viz/grava-go/common"
)

// defaultFocalDistance is the initial distance between a fresh 3D camera and
// its look-at point.
const defaultFocalDistance float32 = 100.0

// camera3dImpl is the full 6-DOF camera variant. front and up are kept unit
// length and mutually orthogonal; the look-at point sits focalDistance along
// the front vector.
type camera3dImpl struct {
	cameraBase

	position [3]float32
	front    [3]float32
	up       [3]float32

	imageWidth  float32
	imageHeight float32
	near        float32
	far         float32

	focalDistance float32

	// orbit session state, set by StartOrbit
	orbitPivot    [3]float32
	orbitModifier float32
	orbitActive   bool

	viewMatrix           [16]float32
	projectiveMatrix     [16]float32
	viewProjectiveMatrix [16]float32
}

var _ Camera = &camera3dImpl{}

// NewCamera3D creates a 3D camera at the origin looking down the negative Z
// axis with up = +Y and a field of view of 1 radian.
//
// Parameters:
//   - width, height: viewport size in pixels
//   - near, far: clip plane distances
//   - options: functional options to adjust the initial state
//
// Returns:
//   - Camera: the newly created camera
func NewCamera3D(width, height int, near, far float32, options ...CameraOption) Camera {
	s := newCameraSettings()
	for _, option := range options {
		option(s)
	}

	c := &camera3dImpl{
		cameraBase: cameraBase{
			fovy:            s.fov,
			recomputeMatrix: true,
		},
		front:         [3]float32{0, 0, -1},
		up:            [3]float32{0, 1, 0},
		imageWidth:    float32(width),
		imageHeight:   float32(height),
		near:          near,
		far:           far,
		focalDistance: s.focalDistance,
		orbitModifier: 1,
	}
	if s.positionSet {
		c.position = s.position
	}
	if s.upSet {
		c.setOrientation(c.front, s.up)
	}
	return c
}

func (c *camera3dImpl) Copy() Camera {
	clone := *c
	clone.requireRecomputeMatrix()
	return &clone
}

func (c *camera3dImpl) SetImageSize(width, height float32) {
	c.imageWidth = width
	c.imageHeight = height
	c.requireRecomputeMatrix()
}

func (c *camera3dImpl) SetClipPlanes(near, far float32) {
	c.near = near
	c.far = far
	c.requireRecomputeMatrix()
}

func (c *camera3dImpl) FrontVector() (x, y, z float32) {
	return c.front[0], c.front[1], c.front[2]
}

func (c *camera3dImpl) UpVector() (x, y, z float32) {
	return c.up[0], c.up[1], c.up[2]
}

func (c *camera3dImpl) RightVector() (x, y, z float32) {
	return common.Cross3(c.front[0], c.front[1], c.front[2], c.up[0], c.up[1], c.up[2])
}

func (c *camera3dImpl) Position() (x, y, z float32) {
	return c.position[0], c.position[1], c.position[2]
}

func (c *camera3dImpl) LookAtPoint() (x, y, z float32) {
	return c.position[0] + c.front[0]*c.focalDistance,
		c.position[1] + c.front[1]*c.focalDistance,
		c.position[2] + c.front[2]*c.focalDistance
}

func (c *camera3dImpl) ImageWidth() float32  { return c.imageWidth }
func (c *camera3dImpl) ImageHeight() float32 { return c.imageHeight }
func (c *camera3dImpl) Near() float32        { return c.near }
func (c *camera3dImpl) Far() float32         { return c.far }

func (c *camera3dImpl) ProjectedDistanceFrom(x, y, z float32) float32 {
	return common.Dot3(x-c.position[0], y-c.position[1], z-c.position[2],
		c.front[0], c.front[1], c.front[2])
}

func (c *camera3dImpl) Translate(x, y, z float32) {
	c.position[0] += x
	c.position[1] += y
	c.position[2] += z
	c.requireRecomputeMatrix()
}

// Rotate honors the supplied axis, rotating the camera's orientation about
// an axis through the camera position.
func (c *camera3dImpl) Rotate(axisX, axisY, axisZ, angle float32) {
	fx, fy, fz := common.RotateVec3(c.front[0], c.front[1], c.front[2], axisX, axisY, axisZ, angle)
	ux, uy, uz := common.RotateVec3(c.up[0], c.up[1], c.up[2], axisX, axisY, axisZ, angle)
	c.setOrientation([3]float32{fx, fy, fz}, [3]float32{ux, uy, uz})
	c.requireRecomputeMatrix()
}

// RotateAround rotates orientation like Rotate and swings the camera
// position about the pivot by the same angle.
func (c *camera3dImpl) RotateAround(originX, originY, originZ, axisX, axisY, axisZ, angle float32) {
	dx := c.position[0] - originX
	dy := c.position[1] - originY
	dz := c.position[2] - originZ
	sx, sy, sz := common.RotateVec3(dx, dy, dz, axisX, axisY, axisZ, angle)
	c.position = [3]float32{originX + sx, originY + sy, originZ + sz}
	c.Rotate(axisX, axisY, axisZ, angle)
}

// LookAt aims the camera at the center point; the focal distance becomes the
// distance to it.
func (c *camera3dImpl) LookAt(centerX, centerY, centerZ, upX, upY, upZ float32) {
	dx := centerX - c.position[0]
	dy := centerY - c.position[1]
	dz := centerZ - c.position[2]
	if d := common.Length3(dx, dy, dz); d > 0 {
		c.focalDistance = d
	}
	fx, fy, fz := common.Normalize3(dx, dy, dz)
	c.setOrientation([3]float32{fx, fy, fz}, [3]float32{upX, upY, upZ})
	c.requireRecomputeMatrix()
}

// LookAtFrom honors the eye position for the 3D variant.
func (c *camera3dImpl) LookAtFrom(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	c.position = [3]float32{eyeX, eyeY, eyeZ}
	c.LookAt(centerX, centerY, centerZ, upX, upY, upZ)
}

// setOrientation installs front and up, normalizing front and projecting up
// into the plane perpendicular to it so the basis stays orthonormal.
func (c *camera3dImpl) setOrientation(front, up [3]float32) {
	fx, fy, fz := common.Normalize3(front[0], front[1], front[2])
	d := common.Dot3(up[0], up[1], up[2], fx, fy, fz)
	ux, uy, uz := common.Normalize3(up[0]-fx*d, up[1]-fy*d, up[2]-fz*d)
	c.front = [3]float32{fx, fy, fz}
	c.up = [3]float32{ux, uy, uz}
}

func (c *camera3dImpl) ViewMatrix() common.Mat4 {
	c.recomputeIfNeeded()
	return c.viewMatrix
}

func (c *camera3dImpl) ProjectiveMatrix() common.Mat4 {
	c.recomputeIfNeeded()
	return c.projectiveMatrix
}

func (c *camera3dImpl) ViewProjectiveMatrix() common.Mat4 {
	c.recomputeIfNeeded()
	return c.viewProjectiveMatrix
}

func (c *camera3dImpl) recomputeIfNeeded() {
	if !c.recomputeMatrix {
		return
	}
	common.LookAt(c.viewMatrix[:],
		c.position[0], c.position[1], c.position[2],
		c.position[0]+c.front[0], c.position[1]+c.front[1], c.position[2]+c.front[2],
		c.up[0], c.up[1], c.up[2],
	)
	common.Perspective(c.projectiveMatrix[:], c.fovy, c.imageWidth/c.imageHeight, c.near, c.far)
	common.Mul4(c.viewProjectiveMatrix[:], c.projectiveMatrix[:], c.viewMatrix[:])
	c.recomputeMatrix = false
}

// ProjectPoint derives the on-screen size from the requested world-space
// size and the point's depth, unlike the 2D variant's placeholder.
func (c *camera3dImpl) ProjectPoint(x, y, z, size float32) (screenX, screenY, screenSize int) {
	vp := c.ViewProjectiveMatrix()
	cx, cy, _, cw := common.XformVec4(vp[:], x, y, z, 1)

	ndcX := cx / cw
	ndcY := cy / cw
	screenX = int((ndcX + 1.0) * c.imageWidth / 2.0)
	screenY = int((1.0 - ndcY) * c.imageHeight / 2.0)

	f := 1.0 / math32.Tan(c.fovy/2.0)
	screenSize = int(size * f * c.imageHeight / (2.0 * cw))
	return screenX, screenY, screenSize
}

// ProjectPointInverse casts a ray through the screen point and intersects it
// with the viewing plane: the plane through the look-at point perpendicular
// to the front vector.
func (c *camera3dImpl) ProjectPointInverse(x, y float32) (wx, wy, wz float32) {
	vp := c.ViewProjectiveMatrix()
	var inv [16]float32
	if !common.Invert4(inv[:], vp[:]) {
		return c.LookAtPoint()
	}

	ndcX := 2.0*x/c.imageWidth - 1.0
	ndcY := 1.0 - 2.0*y/c.imageHeight

	nx, ny, nz, nw := common.XformVec4(inv[:], ndcX, ndcY, -1, 1)
	fx, fy, fz, fw := common.XformVec4(inv[:], ndcX, ndcY, 1, 1)
	nx, ny, nz = nx/nw, ny/nw, nz/nw
	fx, fy, fz = fx/fw, fy/fw, fz/fw

	dx, dy, dz := common.Normalize3(fx-nx, fy-ny, fz-nz)
	denom := common.Dot3(dx, dy, dz, c.front[0], c.front[1], c.front[2])
	if denom == 0 {
		return c.LookAtPoint()
	}
	lx, ly, lz := c.LookAtPoint()
	t := common.Dot3(lx-nx, ly-ny, lz-nz, c.front[0], c.front[1], c.front[2]) / denom
	return nx + dx*t, ny + dy*t, nz + dz*t
}

// ProjectVectorInverse uses the same field-of-view ratio as the gesture
// handlers, so programmatic conversions match interactive panning.
func (c *camera3dImpl) ProjectVectorInverse(x, y float32) (wx, wy, wz float32) {
	ratio := fovTranslationRatio(c.fovy)
	rx, ry, rz := c.RightVector()
	ux, uy, uz := c.UpVector()
	return rx*x*ratio + ux*y*ratio,
		ry*x*ratio + uy*y*ratio,
		rz*x*ratio + uz*y*ratio
}

func (c *camera3dImpl) PlanarDistance(x, y, z float32, a, b int) int {
	sx, sy, _ := c.ProjectPoint(x, y, z, 0)
	dx := float32(sx - a)
	dy := float32(sy - b)
	return int(math32.Sqrt(dx*dx + dy*dy))
}

func (c *camera3dImpl) StartTranslation() {}

func (c *camera3dImpl) UpdateTranslation(horizontal, vertical float32) {
	ratio := fovTranslationRatio(c.fovy)
	rx, ry, rz := c.RightVector()
	ux, uy, uz := c.UpVector()
	c.Translate(
		rx*horizontal*ratio+ux*vertical*ratio,
		ry*horizontal*ratio+uy*vertical*ratio,
		rz*horizontal*ratio+uz*vertical*ratio,
	)
}

// StartOrbit snapshots the look-at point as the orbit pivot and stores the
// sensitivity modifier for subsequent UpdateOrbit calls.
func (c *camera3dImpl) StartOrbit(orbitModifier float32) {
	lx, ly, lz := c.LookAtPoint()
	c.orbitPivot = [3]float32{lx, ly, lz}
	c.orbitModifier = common.Coalesce(orbitModifier, 1)
	c.orbitActive = true
}

// UpdateOrbit swings the camera around the orbit pivot: x rotates about the
// world Y axis, y about the camera's right axis. Distance to the pivot is
// preserved.
func (c *camera3dImpl) UpdateOrbit(x, y float32) {
	px, py, pz := c.orbitPivot[0], c.orbitPivot[1], c.orbitPivot[2]
	if !c.orbitActive {
		px, py, pz = c.LookAtPoint()
	}

	yaw := -x * c.orbitModifier
	pitch := -y * c.orbitModifier

	dx := c.position[0] - px
	dy := c.position[1] - py
	dz := c.position[2] - pz

	// horizontal swing about the world up axis
	dx, dy, dz = common.RotateVec3(dx, dy, dz, 0, 1, 0, yaw)
	fx, fy, fz := common.RotateVec3(c.front[0], c.front[1], c.front[2], 0, 1, 0, yaw)
	ux, uy, uz := common.RotateVec3(c.up[0], c.up[1], c.up[2], 0, 1, 0, yaw)

	// vertical swing about the camera's right axis
	rx, ry, rz := common.Cross3(fx, fy, fz, ux, uy, uz)
	dx, dy, dz = common.RotateVec3(dx, dy, dz, rx, ry, rz, pitch)
	fx, fy, fz = common.RotateVec3(fx, fy, fz, rx, ry, rz, pitch)
	ux, uy, uz = common.RotateVec3(ux, uy, uz, rx, ry, rz, pitch)

	c.position = [3]float32{px + dx, py + dy, pz + dz}
	c.setOrientation([3]float32{fx, fy, fz}, [3]float32{ux, uy, uz})
	c.requireRecomputeMatrix()
}
