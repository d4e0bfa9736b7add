package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grava-viz/grava-go/config"
)

func newTestView() View {
	return NewView(config.Default())
}

func TestNewViewStartsIn2D(t *testing.T) {
	v := newTestView()

	assert.False(t, v.Is3D())
	fx, fy, fz := v.Camera().FrontVector()
	assert.Equal(t, [3]float32{0, 0, -1}, [3]float32{fx, fy, fz})
	assert.Equal(t, float32(800), v.Camera().ImageWidth())
	assert.Equal(t, float32(600), v.Camera().ImageHeight())
}

func TestResizePropagatesToCamera(t *testing.T) {
	v := newTestView()
	v.Resize(1920, 1080)

	assert.Equal(t, float32(1920), v.Camera().ImageWidth())
	assert.Equal(t, float32(1080), v.Camera().ImageHeight())
}

func TestDragMovesContentWithPointer(t *testing.T) {
	v := newTestView()
	v.BeginDrag()
	// pointer moves right and down; the camera must move left and down so
	// the content tracks the pointer on screen
	v.Drag(10, 4)

	px, py, _ := v.Camera().Position()
	assert.InDelta(t, -10, px, 1e-4)
	assert.InDelta(t, 4, py, 1e-4)
}

func TestToggleModeRoundTrip(t *testing.T) {
	v := newTestView()
	v.Drag(-12, 34)
	px, py, _ := v.Camera().Position()

	v.ToggleMode()
	assert.True(t, v.Is3D())
	qx, qy, _ := v.Camera().Position()
	assert.InDelta(t, px, qx, 1e-4)
	assert.InDelta(t, py, qy, 1e-4)

	v.ToggleMode()
	assert.False(t, v.Is3D())
	rx, ry, _ := v.Camera().Position()
	assert.InDelta(t, px, rx, 1e-4)
	assert.InDelta(t, py, ry, 1e-4)
}

func TestToggleModeSwapsCameraInstance(t *testing.T) {
	v := newTestView()
	before := v.Camera()
	v.ToggleMode()
	assert.NotSame(t, before, v.Camera())
}

func TestOrbitRotatesUpIn2D(t *testing.T) {
	v := newTestView()
	v.BeginOrbit()
	// default orbit sensitivity is 0.01 rad per pixel
	v.Orbit(float32(math.Pi/2)*100, 0)

	ux, uy, _ := v.Camera().UpVector()
	assert.InDelta(t, -1, ux, 1e-3)
	assert.InDelta(t, 0, uy, 1e-3)
}

func TestVisibleCullsFarPoints(t *testing.T) {
	v := newTestView()

	// the origin sits at the image center of the default camera
	assert.True(t, v.Visible(0, 0, 0, 1))
	// far outside the horizontal extent of the frustum
	assert.False(t, v.Visible(1e6, 0, 0, 1))
	// a huge radius pulls an off-screen center back in
	assert.True(t, v.Visible(1e6, 0, 0, 2e6))
}

func TestPickDistance(t *testing.T) {
	v := newTestView()

	assert.Equal(t, 0, v.PickDistance(0, 0, 0, 400, 300))
	assert.Equal(t, 5, v.PickDistance(0, 0, 0, 403, 304))
}
