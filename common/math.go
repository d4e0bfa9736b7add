// package common contains the linear algebra primitives shared by the camera
// variants and the view layer: 4x4 column-major matrices stored as flat
// float32 slices, scalar-triple vector helpers, and axis-angle rotation.
package common

import (
	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 matrix stored as 16 floats in column-major order
// (element (row r, col c) lives at index c*4+r).
type Mat4 = [16]float32

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are column-major. Result: out = a * b. It is safe for out to
// alias a or b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			buf[col*4+row] = sum
		}
	}
	copy(out, buf[:])
}

// Transpose4 transposes a 4x4 column-major matrix in place.
//
// Parameters:
//   - m: the matrix to transpose (16 elements)
func Transpose4(m []float32) {
	for col := 0; col < 4; col++ {
		for row := col + 1; row < 4; row++ {
			m[col*4+row], m[row*4+col] = m[row*4+col], m[col*4+row]
		}
	}
}

// Perspective creates a perspective projection matrix in the conventional
// OpenGL form, mapping depth to [-1, 1] clip space:
//
//	f/aspect  0         0                        0
//	0         f         0                        0
//	0         0         (far+near)/(near-far)    2*far*near/(near-far)
//	0         0         -1                       0
//
// where f = 1/tan(fovY/2). Degenerate inputs (zero aspect, near == far)
// produce non-finite entries rather than errors; callers own input sanity.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2.0)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = (far + near) / (near - far)
	out[14] = (2.0 * far * near) / (near - far)
	out[11] = -1.0
	out[15] = 0.0
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to camera space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - centerX, centerY, centerZ: target point the camera looks at
//   - upX, upY, upZ: up vector defining camera orientation
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	zx, zy, zz := Normalize3(eyeX-centerX, eyeY-centerY, eyeZ-centerZ)
	xx, xy, xz := Normalize3(Cross3(upX, upY, upZ, zx, zy, zz))
	yx, yy, yz := Cross3(zx, zy, zz, xx, xy, xz)

	out[0], out[4], out[8], out[12] = xx, xy, xz, -(xx*eyeX + xy*eyeY + xz*eyeZ)
	out[1], out[5], out[9], out[13] = yx, yy, yz, -(yx*eyeX + yy*eyeY + yz*eyeZ)
	out[2], out[6], out[10], out[14] = zx, zy, zz, -(zx*eyeX + zy*eyeY + zz*eyeZ)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// XformVec4 transforms the homogeneous point (x, y, z, w) by the 4x4
// column-major matrix m.
//
// Parameters:
//   - m: the transform (16 elements, column-major)
//   - x, y, z, w: the homogeneous point
//
// Returns:
//   - rx, ry, rz, rw: the transformed point
func XformVec4(m []float32, x, y, z, w float32) (rx, ry, rz, rw float32) {
	rx = m[0]*x + m[4]*y + m[8]*z + m[12]*w
	ry = m[1]*x + m[5]*y + m[9]*z + m[13]*w
	rz = m[2]*x + m[6]*y + m[10]*z + m[14]*w
	rw = m[3]*x + m[7]*y + m[11]*z + m[15]*w
	return rx, ry, rz, rw
}

// Invert4 computes the inverse of a 4x4 column-major matrix using the
// Laplace expansion (cofactor) method. If the matrix is singular
// (determinant == 0) the output is left unchanged and the function returns
// false.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - m: source matrix (16 elements, column-major)
//
// Returns:
//   - bool: true if the matrix was successfully inverted, false if singular
func Invert4(out, m []float32) bool {
	// 2x2 sub-determinants of the left and right half of the matrix.
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return false
	}
	invDet := 1.0 / det

	out[0] = (m[5]*c5 - m[6]*c4 + m[7]*c3) * invDet
	out[1] = (-m[1]*c5 + m[2]*c4 - m[3]*c3) * invDet
	out[2] = (m[13]*s5 - m[14]*s4 + m[15]*s3) * invDet
	out[3] = (-m[9]*s5 + m[10]*s4 - m[11]*s3) * invDet

	out[4] = (-m[4]*c5 + m[6]*c2 - m[7]*c1) * invDet
	out[5] = (m[0]*c5 - m[2]*c2 + m[3]*c1) * invDet
	out[6] = (-m[12]*s5 + m[14]*s2 - m[15]*s1) * invDet
	out[7] = (m[8]*s5 - m[10]*s2 + m[11]*s1) * invDet

	out[8] = (m[4]*c4 - m[5]*c2 + m[7]*c0) * invDet
	out[9] = (-m[0]*c4 + m[1]*c2 - m[3]*c0) * invDet
	out[10] = (m[12]*s4 - m[13]*s2 + m[15]*s0) * invDet
	out[11] = (-m[8]*s4 + m[9]*s2 - m[11]*s0) * invDet

	out[12] = (-m[4]*c3 + m[5]*c1 - m[6]*c0) * invDet
	out[13] = (m[0]*c3 - m[1]*c1 + m[2]*c0) * invDet
	out[14] = (-m[12]*s3 + m[13]*s1 - m[14]*s0) * invDet
	out[15] = (m[8]*s3 - m[9]*s1 + m[10]*s0) * invDet

	return true
}

// Dot3 returns the dot product of two 3D vectors.
func Dot3(ax, ay, az, bx, by, bz float32) float32 {
	return ax*bx + ay*by + az*bz
}

// Cross3 returns the cross product a x b of two 3D vectors.
func Cross3(ax, ay, az, bx, by, bz float32) (x, y, z float32) {
	return ay*bz - az*by, az*bx - ax*bz, ax*by - ay*bx
}

// Length3 returns the Euclidean length of a 3D vector.
func Length3(x, y, z float32) float32 {
	return math32.Sqrt(x*x + y*y + z*z)
}

// Normalize3 returns the unit vector pointing in the direction of (x, y, z).
// A zero vector is returned unchanged.
func Normalize3(x, y, z float32) (nx, ny, nz float32) {
	l := Length3(x, y, z)
	if l == 0 {
		return x, y, z
	}
	inv := 1.0 / l
	return x * inv, y * inv, z * inv
}

// RotateVec3 rotates the vector v by angle radians about the given axis
// using the Rodrigues rotation formula. The axis does not need to be
// normalized.
//
// Parameters:
//   - vx, vy, vz: the vector to rotate
//   - axisX, axisY, axisZ: the rotation axis
//   - angle: rotation angle in radians (counter-clockwise looking down the axis)
//
// Returns:
//   - rx, ry, rz: the rotated vector
func RotateVec3(vx, vy, vz, axisX, axisY, axisZ, angle float32) (rx, ry, rz float32) {
	kx, ky, kz := Normalize3(axisX, axisY, axisZ)
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)

	crossX, crossY, crossZ := Cross3(kx, ky, kz, vx, vy, vz)
	dot := Dot3(kx, ky, kz, vx, vy, vz)

	rx = vx*cos + crossX*sin + kx*dot*(1-cos)
	ry = vy*cos + crossY*sin + ky*dot*(1-cos)
	rz = vz*cos + crossZ*sin + kz*dot*(1-cos)
	return rx, ry, rz
}
