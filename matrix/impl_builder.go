// SPDX-License-Identifier: MIT

// Package matrix: factories for elementary transforms.
//
// Every factory writes all nine scalars; there is no partial construction.
// Rotations are right-handed and active under the column-vector convention
// (p' = M·p): RotationZ(π/2) maps (1,0,0) to (0,1,0).
package matrix

import "math"

// sincos returns sin(a) and cos(a) rounded to float32.
func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))

	return float32(s), float32(c)
}

// New builds a Matrix3 from a row-major literal: rows[r][c] becomes element (r, c).
func New(rows [Size][Size]float32) Matrix3 {
	var m Matrix3
	var r, c int // loop iterators
	for r = 0; r < Size; r++ {
		for c = 0; c < Size; c++ {
			m[idx(r, c)] = rows[r][c]
		}
	}

	return m
}

// Identity returns the 3×3 identity matrix.
func Identity() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotationX returns the rotation by angle radians around the X axis:
//
//	| 1  0   0 |
//	| 0  c  -s |
//	| 0  s   c |
func RotationX(angle float32) Matrix3 {
	s, c := sincos(angle)

	return Matrix3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// RotationY returns the rotation by angle radians around the Y axis:
//
//	|  c  0  s |
//	|  0  1  0 |
//	| -s  0  c |
func RotationY(angle float32) Matrix3 {
	s, c := sincos(angle)

	return Matrix3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// RotationZ returns the rotation by angle radians around the Z axis:
//
//	| c  -s  0 |
//	| s   c  0 |
//	| 0   0  1 |
func RotationZ(angle float32) Matrix3 {
	s, c := sincos(angle)

	return Matrix3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Rotation returns the combined Euler rotation Rz(az)·Ry(ay)·Rx(ax): a point is
// rotated around X first, then Y, then Z.
//
// sin/cos of az are always evaluated; those of ax and ay only when at least one
// of them is non-zero (otherwise sin=0, cos=1 are used directly).
func Rotation(ax, ay, az float32) Matrix3 {
	var (
		sx, cx float32 = 0, 1
		sy, cy float32 = 0, 1
	)
	sz, cz := sincos(az)
	if ax != 0 || ay != 0 {
		sx, cx = sincos(ax)
		sy, cy = sincos(ay)
	}

	return Matrix3{
		// column 0
		cy * cz,
		cy * sz,
		-sy,
		// column 1
		sx*sy*cz - cx*sz,
		sx*sy*sz + cx*cz,
		sx * cy,
		// column 2
		cx*sy*cz + sx*sz,
		cx*sy*sz - sx*cz,
		cx * cy,
	}
}

// Scaling returns the diagonal matrix diag(sx, sy, sz).
func Scaling(sx, sy, sz float32) Matrix3 {
	return Matrix3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, sz,
	}
}

// Translation returns the homogeneous 2D translation by (tx, ty):
//
//	| 1  0  tx |
//	| 0  1  ty |
//	| 0  0  1  |
//
// Applied to (x, y, 1) it yields (x+tx, y+ty, 1).
func Translation(tx, ty float32) Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		tx, ty, 1,
	}
}

// MakeIdentity overwrites m with the identity.
func (m *Matrix3) MakeIdentity() { *m = Identity() }

// MakeRotationX overwrites m with RotationX(angle).
func (m *Matrix3) MakeRotationX(angle float32) { *m = RotationX(angle) }

// MakeRotationY overwrites m with RotationY(angle).
func (m *Matrix3) MakeRotationY(angle float32) { *m = RotationY(angle) }

// MakeRotationZ overwrites m with RotationZ(angle).
func (m *Matrix3) MakeRotationZ(angle float32) { *m = RotationZ(angle) }

// MakeRotation overwrites m with Rotation(ax, ay, az).
func (m *Matrix3) MakeRotation(ax, ay, az float32) { *m = Rotation(ax, ay, az) }

// MakeScaling overwrites m with Scaling(sx, sy, sz).
func (m *Matrix3) MakeScaling(sx, sy, sz float32) { *m = Scaling(sx, sy, sz) }

// MakeTranslation overwrites m with Translation(tx, ty).
func (m *Matrix3) MakeTranslation(tx, ty float32) { *m = Translation(tx, ty) }
