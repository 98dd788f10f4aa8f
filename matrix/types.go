// SPDX-License-Identifier: MIT

// Package matrix: domain types. This file contains ONLY the value types and
// their index helpers; factories, kernels and codecs live in dedicated files.
package matrix

// Size is the fixed dimension of Matrix3.
const Size = 3

// Matrix3 is a dense 3×3 matrix of float32 values in column-major layout:
// element (row r, column c) lives at index c*Size+r.
//
// The zero value is the zero matrix (not the identity). Matrix3 is an array,
// so assignment and pass-by-value produce fully independent copies.
type Matrix3 [Size * Size]float32

// Point3 is a 3-component vector transformed by Matrix3.Transform.
type Point3 struct {
	X, Y, Z float32
}

// idx maps (row, col) to the column-major flat index.
// Callers guarantee 0 ≤ row, col < Size.
func idx(row, col int) int {
	return col*Size + row
}

// inRange reports whether (row, col) addresses an element of a 3×3 matrix.
func inRange(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
