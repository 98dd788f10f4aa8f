// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and tolerance-aware comparisons.
//   - Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvcolor/matrix"
	"github.com/stretchr/testify/require"
)

// tolerance for float32 round-off in composed transforms.
const tol = 1e-5

// approx compares float32 values within an absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// RequireClose FAILS the test when any element of got differs from want by
// more than margin; the diff is reported row by row via go-cmp.
func RequireClose(t *testing.T, want, got matrix.Matrix3, margin float64) {
	t.Helper()
	if diff := cmp.Diff(rowsOf(want), rowsOf(got), approx(margin)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// RequirePointClose FAILS the test when any component differs by more than margin.
func RequirePointClose(t *testing.T, want, got matrix.Point3, margin float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx(margin)); diff != "" {
		t.Fatalf("point mismatch (-want +got):\n%s", diff)
	}
}

// rowsOf exposes m row-major so diffs read like the written matrix.
func rowsOf(m matrix.Matrix3) [3][3]float32 {
	var out [3][3]float32
	for r := 0; r < 3; r++ {
		p := m.Row(r)
		out[r] = [3]float32{p.X, p.Y, p.Z}
	}

	return out
}

// MustAt READS element (r, c) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix3, r, c int) float32 {
	t.Helper()
	v, err := m.At(r, c)
	require.NoError(t, err)

	return v
}

// RandomMatrix RETURNS a Matrix3 with deterministic U(-1,1) entries for seed.
func RandomMatrix(seed int64) matrix.Matrix3 {
	rng := rand.New(rand.NewSource(seed))
	var m matrix.Matrix3
	for i := range m {
		m[i] = float32(rng.Float64()*2 - 1)
	}

	return m
}

// sample is a non-symmetric, well-conditioned fixture.
var sample = matrix.New([3][3]float32{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 10},
})
