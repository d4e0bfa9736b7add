package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// perspective frustum at the origin looking down negative Z
func testFrustum() Frustum {
	var proj [16]float32
	Perspective(proj[:], 1.0, 800.0/600.0, 1, 1000)
	return FrustumFromMatrix(proj[:])
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum()

	assert.True(t, f.ContainsPoint(0, 0, -10))
	assert.True(t, f.ContainsPoint(0, 0, -999))
	assert.False(t, f.ContainsPoint(0, 0, 10), "behind the camera")
	assert.False(t, f.ContainsPoint(0, 0, -0.5), "in front of the near plane")
	assert.False(t, f.ContainsPoint(0, 0, -2000), "beyond the far plane")
	assert.False(t, f.ContainsPoint(1000, 0, -10), "far off to the side")
}

func TestFrustumIntersectsSphere(t *testing.T) {
	f := testFrustum()

	assert.True(t, f.IntersectsSphere(0, 0, -10, 1))
	// center outside, radius reaches in across the near plane
	assert.True(t, f.IntersectsSphere(0, 0, -0.5, 2))
	assert.False(t, f.IntersectsSphere(0, 0, 10, 1))
	assert.False(t, f.IntersectsSphere(1000, 0, -10, 1))
}

func TestFrustumPlanesAreNormalized(t *testing.T) {
	f := testFrustum()
	for i, p := range f.Planes {
		l := Length3(p.Normal[0], p.Normal[1], p.Normal[2])
		assert.InDelta(t, 1.0, l, tol, "plane %d", i)
	}
}

func TestFrustumFollowsView(t *testing.T) {
	var view, proj, vp [16]float32
	// camera at x=100 looking down negative Z
	LookAt(view[:], 100, 0, 0, 100, 0, -1, 0, 1, 0)
	Perspective(proj[:], 1.0, 1.0, 1, 1000)
	Mul4(vp[:], proj[:], view[:])

	f := FrustumFromMatrix(vp[:])
	assert.True(t, f.ContainsPoint(100, 0, -10))
	assert.False(t, f.ContainsPoint(0, 0, -10))
}
