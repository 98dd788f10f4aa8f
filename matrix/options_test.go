// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for option constructors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcolor/matrix"
	"github.com/stretchr/testify/require"
)

// TestOptionConstructors_PanicOnInvalid verifies strict validation.
func TestOptionConstructors_PanicOnInvalid(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.Panics(t, func() { matrix.WithEpsilon(v) })
		require.Panics(t, func() { matrix.WithPivotTolerance(v) })
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
	require.NotPanics(t, func() { matrix.WithPivotTolerance(0) })
}

// TestOptions_LastWriterWins applies setters in order.
func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	a, b := matrix.Identity(), matrix.Scaling(1.05, 1, 1)
	require.True(t, a.ApproxEqual(b, matrix.WithEpsilon(0), matrix.WithEpsilon(0.1)))
	require.False(t, a.ApproxEqual(b, matrix.WithEpsilon(0.1), matrix.WithEpsilon(0)))
}
