package common

// Plane represents a plane in 3D space via the equation ax + by + cz + d = 0,
// where (a, b, c) is the normal and d the signed distance from the origin.
type Plane struct {
	Normal   [3]float32
	Distance float32
}

// SignedDistance returns the signed distance from the point to the plane.
// Positive values lie on the normal's side of the plane.
func (p Plane) SignedDistance(x, y, z float32) float32 {
	return p.Normal[0]*x + p.Normal[1]*y + p.Normal[2]*z + p.Distance
}

// Frustum holds the six clipping planes of a camera's viewing volume,
// oriented so the positive half-space of every plane is inside the volume.
// The view layer uses it to skip graph nodes that cannot be on screen.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// Frustum plane indices.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// FrustumFromMatrix extracts the six frustum planes from a combined
// projective * view matrix using the Gribb/Hartmann method: each plane is the
// sum or difference of the matrix's fourth row with one of the other rows.
// All planes are normalized.
//
// Parameters:
//   - viewProj: the combined matrix (16 elements, column-major)
//
// Returns:
//   - Frustum: the extracted frustum
func FrustumFromMatrix(viewProj []float32) Frustum {
	// row r of the column-major matrix, as (x, y, z, w)
	row := func(r int) (float32, float32, float32, float32) {
		return viewProj[r], viewProj[4+r], viewProj[8+r], viewProj[12+r]
	}
	w0, w1, w2, w3 := row(3)

	var f Frustum
	for i, src := range [6]struct {
		r    int
		sign float32
	}{
		{0, 1},  // left: row3 + row0
		{0, -1}, // right: row3 - row0
		{1, 1},  // bottom: row3 + row1
		{1, -1}, // top: row3 - row1
		{2, 1},  // near: row3 + row2
		{2, -1}, // far: row3 - row2
	} {
		x0, x1, x2, x3 := row(src.r)
		p := Plane{
			Normal:   [3]float32{w0 + src.sign*x0, w1 + src.sign*x1, w2 + src.sign*x2},
			Distance: w3 + src.sign*x3,
		}
		if l := Length3(p.Normal[0], p.Normal[1], p.Normal[2]); l > 0 {
			inv := 1.0 / l
			p.Normal[0] *= inv
			p.Normal[1] *= inv
			p.Normal[2] *= inv
			p.Distance *= inv
		}
		f.Planes[i] = p
	}
	return f
}

// ContainsPoint reports whether the point lies inside (or on the boundary of)
// the frustum.
//
// Parameters:
//   - x, y, z: world-space point
//
// Returns:
//   - bool: true if the point is inside all six planes
func (f Frustum) ContainsPoint(x, y, z float32) bool {
	for i := range f.Planes {
		if f.Planes[i].SignedDistance(x, y, z) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether a sphere intersects the frustum. Used for
// node culling, where the sphere bounds a rendered graph node.
//
// Parameters:
//   - x, y, z: sphere center in world space
//   - radius: sphere radius
//
// Returns:
//   - bool: true if any part of the sphere is inside the frustum
func (f Frustum) IntersectsSphere(x, y, z, radius float32) bool {
	for i := range f.Planes {
		if f.Planes[i].SignedDistance(x, y, z) < -radius {
			return false
		}
	}
	return true
}
