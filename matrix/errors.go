// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations MUST return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions; panics are reserved
// for invalid Option parameters (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrSingular is returned by Invert when the matrix has no usable inverse:
	// an all-zero row, no pivot candidate, or a (numerically) zero pivot.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrOutOfRange indicates that a row or column index is outside 0..2.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrVersion is returned when decoding a record written by a newer codec.
	ErrVersion = errors.New("matrix: record version newer than supported")

	// ErrShortBuffer is returned when a binary record is truncated.
	ErrShortBuffer = errors.New("matrix: short buffer")
)

// Operation name constants for unified error wrapping.
const (
	opAt        = "At"
	opSet       = "Set"
	opInvert    = "Invert"
	opSolve     = "Solve"
	opUnmarshal = "UnmarshalBinary"
	opReadFrom  = "ReadFrom"
	opWriteTo   = "WriteTo"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
