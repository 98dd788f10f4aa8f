// SPDX-License-Identifier: MIT

// Package matrix: element access, composition, transpose and point transform.
// All kernels here are total over finite inputs; only the indexers can fail.
package matrix

import "math"

// At returns element (row, col).
// Returns ErrOutOfRange if row or col is outside 0..2.
// Complexity: O(1).
func (m *Matrix3) At(row, col int) (float32, error) {
	if !inRange(row, col) {
		return 0, matrixErrorf(opAt, ErrOutOfRange)
	}

	return m[idx(row, col)], nil
}

// Set assigns v to element (row, col).
// Returns ErrOutOfRange if row or col is outside 0..2.
// Complexity: O(1).
func (m *Matrix3) Set(row, col int, v float32) error {
	if !inRange(row, col) {
		return matrixErrorf(opSet, ErrOutOfRange)
	}
	m[idx(row, col)] = v

	return nil
}

// Row returns row i as a Point3. Panics if i is outside 0..2.
func (m Matrix3) Row(i int) Point3 {
	return Point3{m[idx(i, 0)], m[idx(i, 1)], m[idx(i, 2)]}
}

// Col returns column i as a Point3. Panics if i is outside 0..2.
func (m Matrix3) Col(i int) Point3 {
	return Point3{m[idx(0, i)], m[idx(1, i)], m[idx(2, i)]}
}

// Mul replaces m with the matrix product m·o.
// Under the column-vector convention the result applies o first, then m.
//
// Implementation:
//   - Stage 1: accumulate every (r, c) into a scratch value (i→j→k order),
//     so o may alias m.
//   - Stage 2: copy the scratch back into m.
//
// Complexity: O(27) multiply-adds, no allocation.
func (m *Matrix3) Mul(o Matrix3) {
	var (
		res     Matrix3
		r, c, k int
		sum     float32
	)
	for r = 0; r < Size; r++ {
		for c = 0; c < Size; c++ {
			sum = 0
			for k = 0; k < Size; k++ {
				sum += m[idx(r, k)] * o[idx(k, c)]
			}
			res[idx(r, c)] = sum
		}
	}
	*m = res
}

// Product returns a·b without mutating either operand.
func Product(a, b Matrix3) Matrix3 {
	a.Mul(b)

	return a
}

// Transpose swaps m in place with its transpose. Only fields are permuted,
// so Transpose twice restores m bit-for-bit.
func (m *Matrix3) Transpose() {
	var r, c int // loop iterators
	for r = 0; r < Size; r++ {
		for c = r + 1; c < Size; c++ {
			m[idx(r, c)], m[idx(c, r)] = m[idx(c, r)], m[idx(r, c)]
		}
	}
}

// Transposed returns the transpose of m, leaving m untouched.
func (m Matrix3) Transposed() Matrix3 {
	m.Transpose()

	return m
}

// Transform applies m to p: p' = M·p.
func (m Matrix3) Transform(p Point3) Point3 {
	return Point3{
		X: p.X*m[0] + p.Y*m[3] + p.Z*m[6],
		Y: p.X*m[1] + p.Y*m[4] + p.Z*m[7],
		Z: p.X*m[2] + p.Y*m[5] + p.Z*m[8],
	}
}

// Equal reports whether every element of m equals the matching element of o.
func (m Matrix3) Equal(o Matrix3) bool {
	return m == o
}

// ApproxEqual reports whether |m[i]-o[i]| ≤ eps for all nine elements.
// eps defaults to DefaultEpsilon and can be overridden with WithEpsilon.
func (m Matrix3) ApproxEqual(o Matrix3, opts ...Option) bool {
	cfg := gatherOptions(opts...)
	for i := range m {
		if math.Abs(float64(m[i])-float64(o[i])) > cfg.eps {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether p and q differ by at most eps per component.
func (p Point3) ApproxEqual(q Point3, opts ...Option) bool {
	cfg := gatherOptions(opts...)

	return math.Abs(float64(p.X-q.X)) <= cfg.eps &&
		math.Abs(float64(p.Y-q.Y)) <= cfg.eps &&
		math.Abs(float64(p.Z-q.Z)) <= cfg.eps
}
