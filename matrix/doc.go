// SPDX-License-Identifier: MIT

// Package matrix provides Matrix3, a dense 3×3 float32 value type used to
// represent and compose color-space transforms.
//
// The matrix package provides:
//
//   - Factories for elementary transforms: Identity, RotationX/Y/Z, Rotation
//     (Euler Z·Y·X), Scaling and a homogeneous 2D Translation.
//   - Composition (Mul, Product), Transpose and point transform (Transform).
//   - Inversion through LU decomposition with partial pivoting, reporting
//     ErrSingular for matrices without a usable inverse.
//   - A versioned binary codec and human-readable printers.
//
// Conventions:
//
//	Column-vector convention: p' = M·p. Element (row r, column c) is stored
//	at index c*3+r (column-major). Angles are in radians.
//
//	    | m[0] m[3] m[6] |
//	    | m[1] m[4] m[7] |
//	    | m[2] m[5] m[8] |
//
// Matrix3 and Point3 are plain arrays/structs: assignment copies, nothing is
// shared, and concurrent use of distinct values needs no synchronization.
package matrix
