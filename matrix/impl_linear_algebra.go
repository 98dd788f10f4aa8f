// SPDX-License-Identifier: MIT

// Package matrix: inversion kernels.
//
// Invert factorizes a copy of the matrix with Crout's LU decomposition using
// partial pivoting and implicit row scaling, then solves L·U·x = e_k for each
// column e_k of the identity. The general n×n routine is instantiated for n=3
// on a row-major float64 scratch buffer; the result is rounded back to float32.
package matrix

import (
	"fmt"
	"math"
)

// lu3 is a row-major float64 scratch buffer: element (r, c) at r*Size+c.
type lu3 [Size * Size]float64

// load copies m into a row-major float64 buffer.
func (m *Matrix3) load() lu3 {
	var a lu3
	var r, c int // loop iterators
	for r = 0; r < Size; r++ {
		for c = 0; c < Size; c++ {
			a[r*Size+c] = float64(m[idx(r, c)])
		}
	}

	return a
}

// Invert replaces m with its inverse.
// Implementation:
//   - Stage 1: copy m into a float64 buffer and run luDecompose.
//   - Stage 2: seed the right-hand side with the identity and run
//     luBacksubstitute once per column.
//   - Stage 3: round the solution back into m.
//
// Errors:
//   - ErrSingular when a row is all zero, no pivot candidate exists, a pivot is
//     exactly zero, or the scaled pivot falls below the pivot tolerance
//     (DefaultPivotTolerance, override with WithPivotTolerance).
//
// Callers must not rely on m after a failure; copy first if rollback matters.
//
// Complexity: O(n³) with n=3, no allocation.
func (m *Matrix3) Invert(opts ...Option) error {
	cfg := gatherOptions(opts...)

	a := m.load()
	var perm [Size]int
	if _, err := luDecompose(&a, &perm, cfg.pivotTol); err != nil {
		return matrixErrorf(opInvert, err)
	}

	inv := lu3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	luBacksubstitute(&a, &perm, &inv)

	var r, c int // loop iterators
	for r = 0; r < Size; r++ {
		for c = 0; c < Size; c++ {
			m[idx(r, c)] = float32(inv[r*Size+c])
		}
	}

	return nil
}

// Inverse returns the inverse of m, leaving m untouched.
func Inverse(m Matrix3, opts ...Option) (Matrix3, error) {
	if err := m.Invert(opts...); err != nil {
		return Matrix3{}, err
	}

	return m, nil
}

// Solve returns x such that M·x = b.
// Errors follow Invert (ErrSingular).
func (m Matrix3) Solve(b Point3, opts ...Option) (Point3, error) {
	cfg := gatherOptions(opts...)

	a := m.load()
	var perm [Size]int
	if _, err := luDecompose(&a, &perm, cfg.pivotTol); err != nil {
		return Point3{}, matrixErrorf(opSolve, err)
	}

	x := [Size]float64{float64(b.X), float64(b.Y), float64(b.Z)}
	luSolve(&a, &perm, &x)

	return Point3{float32(x[0]), float32(x[1]), float32(x[2])}, nil
}

// Determinant returns det(M) as the signed product of the LU pivots.
// Matrices that Invert rejects with default options (zero row, zero pivot,
// scaled pivot below DefaultPivotTolerance) yield exactly 0.
func (m Matrix3) Determinant() float64 {
	a := m.load()
	var perm [Size]int
	parity, err := luDecompose(&a, &perm, DefaultPivotTolerance)
	if err != nil {
		return 0
	}

	det := parity
	for j := 0; j < Size; j++ {
		det *= a[j*Size+j]
	}

	return det
}

// luDecompose factorizes a in place into L (unit diagonal, strictly below the
// diagonal) and U (on and above the diagonal) with row permutation perm, where
// perm[j] is the row swapped into position j at step j.
//
// Implementation:
//   - Stage 1: scale[i] = 1/max|a[i][*]|; an all-zero row is singular.
//   - Stage 2: for each column j, update the entries above the diagonal, then
//     the diagonal and below, choosing the pivot row that maximizes
//     scale[i]*|a[i][j]|.
//   - Stage 3: swap the pivot row into place, reject zero or sub-tolerance
//     pivots, and divide the sub-diagonal column by the pivot.
//
// Returns the permutation parity (+1 or -1) for determinant computation.
func luDecompose(a *lu3, perm *[Size]int, pivotTol float64) (float64, error) {
	var (
		scale         [Size]float64
		i, j, k, imax int
		big, sum, v   float64
		parity        = 1.0
	)

	// Implicit scaling per row.
	for i = 0; i < Size; i++ {
		big = 0
		for j = 0; j < Size; j++ {
			if v = math.Abs(a[i*Size+j]); v > big {
				big = v
			}
		}
		if big == 0 {
			return 0, fmt.Errorf("row %d is zero: %w", i, ErrSingular)
		}
		scale[i] = 1 / big
	}

	for j = 0; j < Size; j++ {
		// U entries above the diagonal.
		for i = 0; i < j; i++ {
			sum = a[i*Size+j]
			for k = 0; k < i; k++ {
				sum -= a[i*Size+k] * a[k*Size+j]
			}
			a[i*Size+j] = sum
		}

		// Diagonal and below: Schur-complement update and pivot search.
		big = 0
		imax = -1
		for i = j; i < Size; i++ {
			sum = a[i*Size+j]
			for k = 0; k < j; k++ {
				sum -= a[i*Size+k] * a[k*Size+j]
			}
			a[i*Size+j] = sum
			if v = scale[i] * math.Abs(sum); v >= big {
				big = v
				imax = i
			}
		}
		if imax < 0 {
			return 0, fmt.Errorf("no pivot in column %d: %w", j, ErrSingular)
		}

		if imax != j {
			for k = 0; k < Size; k++ {
				a[imax*Size+k], a[j*Size+k] = a[j*Size+k], a[imax*Size+k]
			}
			scale[imax] = scale[j]
			parity = -parity
		}
		perm[j] = imax

		if a[j*Size+j] == 0 || big < pivotTol {
			return 0, fmt.Errorf("pivot %d is %g: %w", j, a[j*Size+j], ErrSingular)
		}

		if j != Size-1 {
			v = 1 / a[j*Size+j]
			for i = j + 1; i < Size; i++ {
				a[i*Size+j] *= v
			}
		}
	}

	return parity, nil
}

// luBacksubstitute solves L·U·X = B column by column, overwriting b (row-major)
// with X. a and perm must come from a successful luDecompose.
func luBacksubstitute(a *lu3, perm *[Size]int, b *lu3) {
	var (
		col, i int
		x      [Size]float64
	)
	for col = 0; col < Size; col++ {
		for i = 0; i < Size; i++ {
			x[i] = b[i*Size+col]
		}
		luSolve(a, perm, &x)
		for i = 0; i < Size; i++ {
			b[i*Size+col] = x[i]
		}
	}
}

// luSolve solves L·U·x = b in place for a single right-hand side.
// Implementation:
//   - Stage 1: forward substitution, unscrambling perm as it goes and
//     skipping the leading zeros of b.
//   - Stage 2: backward substitution against U.
func luSolve(a *lu3, perm *[Size]int, x *[Size]float64) {
	var (
		i, k, ip int
		first    = -1 // first non-zero entry of the permuted b
		sum      float64
	)
	for i = 0; i < Size; i++ {
		ip = perm[i]
		sum = x[ip]
		x[ip] = x[i]
		if first >= 0 {
			for k = first; k < i; k++ {
				sum -= a[i*Size+k] * x[k]
			}
		} else if sum != 0 {
			first = i
		}
		x[i] = sum
	}

	for i = Size - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < Size; k++ {
			sum -= a[i*Size+k] * x[k]
		}
		x[i] = sum / a[i*Size+i]
	}
}
