package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grava-viz/grava-go/common"
)

const tol = 1.0e-4

func newTestCamera2D() Camera {
	return NewCamera2D(800, 600, 1, 1000)
}

func upLength(c Camera) float32 {
	return common.Length3(c.UpVector())
}

func TestCamera2DDefaults(t *testing.T) {
	c := newTestCamera2D()

	px, py, pz := c.Position()
	assert.Equal(t, [3]float32{0, 0, DefaultPlanarViewDepth}, [3]float32{px, py, pz})

	ux, uy, uz := c.UpVector()
	assert.Equal(t, [3]float32{0, 1, 0}, [3]float32{ux, uy, uz})

	fx, fy, fz := c.FrontVector()
	assert.Equal(t, [3]float32{0, 0, -1}, [3]float32{fx, fy, fz})

	rx, ry, rz := c.RightVector()
	assert.Equal(t, [3]float32{1, 0, 0}, [3]float32{rx, ry, rz})

	assert.Equal(t, float32(1.0), c.Fov())
	assert.Equal(t, float32(800), c.ImageWidth())
	assert.Equal(t, float32(600), c.ImageHeight())
}

func TestUpStaysUnitUnderRotationSequences(t *testing.T) {
	c := newTestCamera2D()
	angles := []float32{0.1, -2.3, 0.7, 3.9, -0.01, 1.2}

	for _, a := range angles {
		c.Rotate(0, 1, 0, a) // supplied axis is irrelevant in 2D
		assert.InDelta(t, 1.0, upLength(c), tol)
	}
	for _, a := range angles {
		c.UpdateOrbit(a, a*3)
		assert.InDelta(t, 1.0, upLength(c), tol)
	}
	for _, a := range angles {
		c.RotateAround(5, -3, 2, 1, 1, 1, a)
		assert.InDelta(t, 1.0, upLength(c), tol)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	c := newTestCamera2D()
	c.LookAt(1, 2, 0, 0, 1, 0)

	clone := c.Copy()
	clone.Translate(100, 200, 0)
	clone.Rotate(0, 0, 0, 1.5)
	clone.SetImageSize(10, 10)

	px, py, _ := c.Position()
	assert.Equal(t, [2]float32{1, 2}, [2]float32{px, py})
	ux, uy, _ := c.UpVector()
	assert.InDelta(t, 0, ux, tol)
	assert.InDelta(t, 1, uy, tol)
	assert.Equal(t, float32(800), c.ImageWidth())

	cx, cy, _ := clone.Position()
	assert.Equal(t, [2]float32{101, 202}, [2]float32{cx, cy})
}

func TestMatrixAccessorsAreIdempotent(t *testing.T) {
	c := newTestCamera2D()
	c.Translate(3, 4, 0)

	v1 := c.ViewMatrix()
	p1 := c.ProjectiveMatrix()
	vp1 := c.ViewProjectiveMatrix()

	assert.Equal(t, v1, c.ViewMatrix())
	assert.Equal(t, p1, c.ProjectiveMatrix())
	assert.Equal(t, vp1, c.ViewProjectiveMatrix())
}

func TestEveryMutatorDirtiesTheMatrices(t *testing.T) {
	mutators := map[string]func(Camera){
		"translate":     func(c Camera) { c.Translate(1, 2, 0) },
		"rotate":        func(c Camera) { c.Rotate(0, 0, -1, 0.5) },
		"rotateAround":  func(c Camera) { c.RotateAround(3, 3, 0, 0, 0, -1, 0.5) },
		"lookAt":        func(c Camera) { c.LookAt(9, 9, 0, 1, 0, 0) },
		"lookAtFrom":    func(c Camera) { c.LookAtFrom(0, 0, 0, 9, 9, 0, 1, 0, 0) },
		"updateOrbit":   func(c Camera) { c.UpdateOrbit(0.3, 0) },
		"updateDrag":    func(c Camera) { c.UpdateTranslation(5, 5) },
		"setClipPlanes": func(c Camera) { c.SetClipPlanes(2, 500) },
		"setImageSize":  func(c Camera) { c.SetImageSize(1024, 768) },
	}

	for name, mutate := range mutators {
		c := newTestCamera2D()
		before := c.ViewProjectiveMatrix()
		mutate(c)
		assert.NotEqual(t, before, c.ViewProjectiveMatrix(), "mutator %q must be observable", name)
	}
}

func TestLookAtMovesAboveCenter(t *testing.T) {
	c := newTestCamera2D()
	c.LookAt(10, 20, 0, 0, 1, 0)

	px, py, pz := c.Position()
	assert.Equal(t, [3]float32{10, 20, DefaultPlanarViewDepth}, [3]float32{px, py, pz})

	lx, ly, lz := c.LookAtPoint()
	assert.Equal(t, [3]float32{10, 20, 0}, [3]float32{lx, ly, lz})
}

func TestLookAtFromDiscardsEye(t *testing.T) {
	a := newTestCamera2D()
	b := newTestCamera2D()
	a.LookAt(10, 20, 0, 0, 1, 0)
	b.LookAtFrom(-500, 77, 3, 10, 20, 0, 0, 1, 0)

	assert.Equal(t, a.ViewMatrix(), b.ViewMatrix())
}

func TestLookAtNormalizesUp(t *testing.T) {
	c := newTestCamera2D()
	c.LookAt(0, 0, 0, 0, 8, 0)
	assert.InDelta(t, 1.0, upLength(c), tol)
}

func TestProjectPointAtLookAtHitsImageCenter(t *testing.T) {
	c := newTestCamera2D()

	sx, sy, ssize := c.ProjectPoint(0, 0, 0, 1)
	assert.InDelta(t, 400, float64(sx), 1)
	assert.InDelta(t, 300, float64(sy), 1)
	assert.Equal(t, PlaceholderNodeSize, ssize)

	// still centered after panning: the look-at point tracks the camera
	c.LookAt(123, -45, 0, 0, 1, 0)
	sx, sy, _ = c.ProjectPoint(123, -45, 0, 1)
	assert.InDelta(t, 400, float64(sx), 1)
	assert.InDelta(t, 300, float64(sy), 1)
}

func TestUpdateOrbitRotatesUpAboutZ(t *testing.T) {
	c := newTestCamera2D()
	c.UpdateOrbit(float32(math.Pi/2), 0)

	ux, uy, _ := c.UpVector()
	assert.InDelta(t, -1, ux, tol)
	assert.InDelta(t, 0, uy, tol)
}

func TestUpdateOrbitIgnoresY(t *testing.T) {
	for _, y := range []float32{0, 1, -3.5, 1000} {
		c := newTestCamera2D()
		c.UpdateOrbit(0.8, y)
		ux, uy, _ := c.UpVector()

		ref := newTestCamera2D()
		ref.UpdateOrbit(0.8, 0)
		rx, ry, _ := ref.UpVector()

		assert.InDelta(t, rx, ux, tol)
		assert.InDelta(t, ry, uy, tol)
	}
}

func TestUpdateTranslationDisplacement(t *testing.T) {
	c := newTestCamera2D()
	c.UpdateTranslation(10, 0)

	// ratio = sqrt((1-cos(fov))/(1-cos(1))) == 1 at the default fov
	px, py, _ := c.Position()
	assert.InDelta(t, 10, px, tol)
	assert.InDelta(t, 0, py, tol)
	assert.InDelta(t, 10, common.Length3(px, py, 0), tol)
}

func TestUpdateTranslationScalesWithFov(t *testing.T) {
	fov := float32(2.0)
	c := NewCamera2D(800, 600, 1, 1000, WithFov(fov))
	c.UpdateTranslation(10, 0)

	want := 10 * float32(math.Sqrt((1-math.Cos(float64(fov)))/(1-math.Cos(1.0))))
	px, py, _ := c.Position()
	assert.InDelta(t, want, common.Length3(px, py, 0), tol)
}

func TestUpdateTranslationFollowsRotatedAxes(t *testing.T) {
	c := newTestCamera2D()
	c.UpdateOrbit(float32(math.Pi/2), 0) // up becomes (-1, 0), right becomes (0, -1)
	c.UpdateTranslation(0, 4)

	px, py, _ := c.Position()
	assert.InDelta(t, -4, px, tol)
	assert.InDelta(t, 0, py, tol)
}

func TestRotateIgnoresSuppliedAxis(t *testing.T) {
	a := newTestCamera2D()
	b := newTestCamera2D()
	a.Rotate(1, 0, 0, 0.9)
	b.Rotate(0, 1, 0, 0.9)

	ax, ay, _ := a.UpVector()
	bx, by, _ := b.UpVector()
	assert.InDelta(t, ax, bx, tol)
	assert.InDelta(t, ay, by, tol)
}

func TestRotateAroundSwingsPosition(t *testing.T) {
	c := newTestCamera2D()
	c.LookAt(10, 0, 0, 0, 1, 0)
	// half turn about the origin through the rotation axis
	c.RotateAround(0, 0, 0, 0, 0, -1, float32(math.Pi))

	px, py, _ := c.Position()
	assert.InDelta(t, -10, px, tol)
	assert.InDelta(t, 0, py, tol)
	assert.InDelta(t, 1.0, upLength(c), tol)
}

func TestProjectPointInverseReturnsPlanarPosition(t *testing.T) {
	c := newTestCamera2D()
	c.LookAt(7, -3, 0, 0, 1, 0)

	wx, wy, wz := c.ProjectPointInverse(640, 11)
	assert.Equal(t, [3]float32{7, -3, 0}, [3]float32{wx, wy, wz})
}

func TestProjectVectorInverseAtDefaultFov(t *testing.T) {
	c := newTestCamera2D()
	wx, wy, wz := c.ProjectVectorInverse(3, 4)
	assert.InDelta(t, 3, wx, tol)
	assert.InDelta(t, 4, wy, tol)
	assert.InDelta(t, 0, wz, tol)
}

func TestPlanarDistance(t *testing.T) {
	c := newTestCamera2D()
	// the origin lands on the image center (400, 300)
	assert.Equal(t, 5, c.PlanarDistance(0, 0, 0, 403, 304))
	assert.Equal(t, 0, c.PlanarDistance(0, 0, 0, 400, 300))
}

func TestProjectedDistanceFrom(t *testing.T) {
	c := newTestCamera2D()
	// front is -Z, camera depth is the planar view depth
	assert.InDelta(t, DefaultPlanarViewDepth, c.ProjectedDistanceFrom(0, 0, 0), tol)
	assert.InDelta(t, DefaultPlanarViewDepth+100, c.ProjectedDistanceFrom(0, 0, -100), tol)
}

func TestGestureSessionStartsAreNoOps(t *testing.T) {
	c := newTestCamera2D()
	before := c.ViewProjectiveMatrix()
	c.StartTranslation()
	c.StartOrbit(3)
	assert.Equal(t, before, c.ViewProjectiveMatrix())
}

func TestViewMatrixBasisAndTranslation(t *testing.T) {
	c := newTestCamera2D()
	c.Translate(7, 8, 0)
	m := c.ViewMatrix()

	// identity rotation for the default orientation
	assert.InDelta(t, 1, m[0], tol)
	assert.InDelta(t, 1, m[5], tol)
	assert.InDelta(t, 1, m[10], tol)
	// translation column is the negated position, planar depth included
	assert.InDelta(t, -7, m[12], tol)
	assert.InDelta(t, -8, m[13], tol)
	assert.InDelta(t, -DefaultPlanarViewDepth, m[14], tol)
	assert.Equal(t, float32(1), m[15])
}

func TestBuilderOptions(t *testing.T) {
	c := NewCamera2D(640, 480, 1, 100,
		WithFov(0.5),
		WithPosition(1, 2, 99),
		WithUp(3, 0, 99),
		WithPlanarViewDepth(1234),
	)

	assert.Equal(t, float32(0.5), c.Fov())
	px, py, pz := c.Position()
	assert.Equal(t, [3]float32{1, 2, 1234}, [3]float32{px, py, pz})
	ux, uy, uz := c.UpVector()
	assert.Equal(t, [3]float32{1, 0, 0}, [3]float32{ux, uy, uz}, "up is flattened and normalized")
}
