// SPDX-License-Identifier: MIT
// Package locus: sentinel error set.
// Callers match these with errors.Is; returned errors carry an operation tag
// added by locusErrorf.

package locus

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a temperature outside [MinTemperature, MaxTemperature].
	ErrOutOfRange = errors.New("locus: temperature out of range")

	// ErrUnknownObserver indicates an observer other than 2° or 10°.
	ErrUnknownObserver = errors.New("locus: unknown observer")

	// ErrBadSweep indicates a sweep with a non-positive step or from > to.
	ErrBadSweep = errors.New("locus: bad sweep")
)

// Operation name constants for unified error wrapping.
const (
	opCoordinatesAt = "CoordinatesAt"
	opTable         = "Table"
	opSweep         = "Sweep"
	opParseObserver = "ParseObserver"
)

// locusErrorf wraps err with an operation tag. Use only when err != nil.
func locusErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
