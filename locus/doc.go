// SPDX-License-Identifier: MIT

// Package locus maps a blackbody temperature to its CIE (x, y) chromaticity
// on the Planckian locus.
//
// Two fixed tables are embedded, one per standard observer (CIE 1931 2° and
// CIE 1964 10°). Both cover MinTemperature..MaxTemperature in uniform steps;
// queries between rows are linearly interpolated, queries outside the range
// fail with ErrOutOfRange. Nothing is extrapolated.
//
// The tables are read-only, so every function here is safe for concurrent use.
package locus
