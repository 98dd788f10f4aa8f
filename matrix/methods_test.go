// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Matrix3 access and composition.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvcolor/matrix"
	"github.com/stretchr/testify/require"
)

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	m := matrix.Identity()
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
		_, err := m.At(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)

		err = m.Set(rc[0], rc[1], 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
	require.True(t, m.Equal(matrix.Identity()), "failed Set must not write")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	t.Parallel()

	var m matrix.Matrix3
	require.NoError(t, m.Set(2, 1, 7.5))
	require.Equal(t, float32(7.5), MustAt(t, m, 2, 1))
	require.Equal(t, matrix.Point3{Y: 7.5}, m.Row(2))
	require.Equal(t, matrix.Point3{Z: 7.5}, m.Col(1))
}

// TestCopyIndependence ensures assignment yields storage-independent copies.
func TestCopyIndependence(t *testing.T) {
	t.Parallel()

	a := matrix.Identity()
	b := a
	require.NoError(t, b.Set(0, 0, 3))
	require.Equal(t, float32(1), MustAt(t, a, 0, 0))
	require.Equal(t, float32(3), MustAt(t, b, 0, 0))
}

// TestMul_IdentityIsNeutral checks I·M == M·I == M bit-for-bit.
func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()

	for _, m := range []matrix.Matrix3{sample, matrix.Rotation(0.3, -0.2, 1.1), RandomMatrix(7)} {
		left := matrix.Identity()
		left.Mul(m)
		require.True(t, left.Equal(m), "I·M = %v", left)

		right := m
		right.Mul(matrix.Identity())
		require.True(t, right.Equal(m), "M·I = %v", right)
	}
}

// TestMul_Known checks a hand-computed product.
func TestMul_Known(t *testing.T) {
	t.Parallel()

	a := matrix.New([3][3]float32{{1, 2, 0}, {0, 1, 0}, {0, 0, 2}})
	b := matrix.New([3][3]float32{{1, 0, 1}, {2, 1, 0}, {0, 3, 1}})
	want := matrix.New([3][3]float32{{5, 2, 1}, {2, 1, 0}, {0, 6, 2}})
	require.True(t, matrix.Product(a, b).Equal(want), "got %v", matrix.Product(a, b))
}

// TestMul_NotCommutative documents operand order: scale∘translate ≠ translate∘scale.
func TestMul_NotCommutative(t *testing.T) {
	t.Parallel()

	s, tr := matrix.Scaling(2, 2, 1), matrix.Translation(1, 0)
	require.False(t, matrix.Product(s, tr).Equal(matrix.Product(tr, s)))

	// Product(a, b) applies b first.
	p := matrix.Point3{X: 1, Y: 1, Z: 1}
	require.Equal(t, matrix.Point3{X: 4, Y: 2, Z: 1}, matrix.Product(s, tr).Transform(p))
	require.Equal(t, matrix.Point3{X: 3, Y: 2, Z: 1}, matrix.Product(tr, s).Transform(p))
}

// TestMul_Aliasing ensures m.Mul(m) squares m.
func TestMul_Aliasing(t *testing.T) {
	t.Parallel()

	m := sample
	want := matrix.Product(sample, sample)
	m.Mul(m)
	require.True(t, m.Equal(want))
}

// TestProduct_DoesNotMutate confirms the value form leaves operands intact.
func TestProduct_DoesNotMutate(t *testing.T) {
	t.Parallel()

	a, b := sample, matrix.RotationZ(1)
	_ = matrix.Product(a, b)
	require.True(t, a.Equal(sample))
	require.True(t, b.Equal(matrix.RotationZ(1)))
}

// TestTransform_ComposesLikeProduct checks (a·b)·p ≈ a·(b·p).
func TestTransform_ComposesLikeProduct(t *testing.T) {
	t.Parallel()

	a, b := matrix.Rotation(0.2, 0.5, -0.4), matrix.Scaling(1.5, 0.5, 2)
	p := matrix.Point3{X: 0.3, Y: -1.2, Z: 2}
	RequirePointClose(t, a.Transform(b.Transform(p)), matrix.Product(a, b).Transform(p), tol)
}

// TestTranspose_Involution verifies transpose(transpose(M)) == M exactly.
func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		m := RandomMatrix(seed)
		tr := m.Transposed()
		var r, c int
		for r = 0; r < 3; r++ {
			for c = 0; c < 3; c++ {
				require.Equal(t, MustAt(t, m, r, c), MustAt(t, tr, c, r))
			}
		}
		tr.Transpose()
		require.Equal(t, m, tr)
	}
}

// TestApproxEqual covers default and custom tolerances.
func TestApproxEqual(t *testing.T) {
	t.Parallel()

	a := matrix.Identity()
	b := a
	require.NoError(t, b.Set(1, 1, 1+1e-6))
	require.True(t, a.ApproxEqual(b))
	require.False(t, a.ApproxEqual(b, matrix.WithEpsilon(0)))

	require.NoError(t, b.Set(2, 0, 0.01))
	require.False(t, a.ApproxEqual(b))
	require.True(t, a.ApproxEqual(b, matrix.WithEpsilon(0.1)))

	p := matrix.Point3{X: 1, Y: 2, Z: 3}
	require.True(t, p.ApproxEqual(matrix.Point3{X: 1, Y: 2, Z: 3.000001}))
	require.False(t, p.ApproxEqual(matrix.Point3{X: 1.1, Y: 2, Z: 3}))
}

// TestErrorsAreTagged ensures wrapped errors keep the operation prefix.
func TestErrorsAreTagged(t *testing.T) {
	t.Parallel()

	m := matrix.Identity()
	_, err := m.At(9, 0)
	require.True(t, errors.Is(err, matrix.ErrOutOfRange))
	require.Contains(t, err.Error(), "At:")
}
