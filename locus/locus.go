// SPDX-License-Identifier: MIT

package locus

import (
	"fmt"
	"math"
)

// MaxSweepSamples caps the number of rows a single Sweep may produce.
const MaxSweepSamples = 1 << 20

// step is the temperature distance between consecutive rows (100 K).
var step = (MaxTemperature - MinTemperature) / float32(tableLen-1)

// Step returns the temperature distance between consecutive table rows.
func Step() float32 {
	return step
}

// tableFor returns the table of obs.
func tableFor(obs Observer) (*[tableLen]Chromaticity, error) {
	switch obs {
	case Observer2Deg:
		return &cie1931Table, nil
	case Observer10Deg:
		return &cie1964Table, nil
	}

	return nil, fmt.Errorf("%d: %w", int(obs), ErrUnknownObserver)
}

// checkRange reports ErrOutOfRange for temperatures outside the tables.
// NaN is rejected as well.
func checkRange(temperature float32) error {
	if !(temperature >= MinTemperature && temperature <= MaxTemperature) {
		return fmt.Errorf("%g K not in [%g, %g]: %w", temperature, MinTemperature, MaxTemperature, ErrOutOfRange)
	}

	return nil
}

// CoordinatesAt returns the chromaticity of a blackbody at temperature (K)
// as seen by obs.
// Implementation:
//   - Stage 1: validate temperature and observer.
//   - Stage 2: map temperature to a fractional row index; the last row is
//     returned as is for MaxTemperature.
//   - Stage 3: interpolate x and y independently between the two rows.
//
// Errors: ErrOutOfRange, ErrUnknownObserver.
func CoordinatesAt(temperature float32, obs Observer) (Chromaticity, error) {
	if err := checkRange(temperature); err != nil {
		return Chromaticity{}, locusErrorf(opCoordinatesAt, err)
	}
	table, err := tableFor(obs)
	if err != nil {
		return Chromaticity{}, locusErrorf(opCoordinatesAt, err)
	}

	return interpolate(table, temperature), nil
}

// interpolate assumes temperature is in range.
func interpolate(table *[tableLen]Chromaticity, temperature float32) Chromaticity {
	if temperature == MaxTemperature {
		return table[tableLen-1]
	}

	pos := float64(temperature-MinTemperature) / float64(step)
	i := int(math.Floor(pos))
	if i >= tableLen-1 {
		return table[tableLen-1]
	}
	frac := float32(pos - float64(i))

	base, next := table[i], table[i+1]

	return Chromaticity{
		X: base.X*(1-frac) + next.X*frac,
		Y: base.Y*(1-frac) + next.Y*frac,
	}
}

// At2Degrees is CoordinatesAt with the CIE 1931 2° observer.
func At2Degrees(temperature float32) (Chromaticity, error) {
	return CoordinatesAt(temperature, Observer2Deg)
}

// At10Degrees is CoordinatesAt with the CIE 1964 10° observer.
func At10Degrees(temperature float32) (Chromaticity, error) {
	return CoordinatesAt(temperature, Observer10Deg)
}

// Table returns a copy of the raw rows for obs; row i is at
// MinTemperature + i·Step().
func Table(obs Observer) ([]Chromaticity, error) {
	table, err := tableFor(obs)
	if err != nil {
		return nil, locusErrorf(opTable, err)
	}
	out := make([]Chromaticity, tableLen)
	copy(out, table[:])

	return out, nil
}

// Sweep samples the locus at from, from+step, ... up to and including to.
// Temperatures are computed as from + k·step so no rounding drift accumulates.
//
// Errors:
//   - ErrOutOfRange when from or to lies outside the tables.
//   - ErrBadSweep when step <= 0, from > to, or more than MaxSweepSamples
//     rows would be produced.
//   - ErrUnknownObserver.
func Sweep(from, to, stepK float32, obs Observer) ([]Sample, error) {
	if err := checkRange(from); err != nil {
		return nil, locusErrorf(opSweep, err)
	}
	if err := checkRange(to); err != nil {
		return nil, locusErrorf(opSweep, err)
	}
	if !(stepK > 0) || from > to {
		return nil, locusErrorf(opSweep, fmt.Errorf("from=%g to=%g step=%g: %w", from, to, stepK, ErrBadSweep))
	}
	table, err := tableFor(obs)
	if err != nil {
		return nil, locusErrorf(opSweep, err)
	}

	// ratio is checked in float64 before the int conversion can overflow.
	ratio := math.Floor((float64(to) - float64(from)) / float64(stepK))
	if ratio >= MaxSweepSamples {
		return nil, locusErrorf(opSweep, fmt.Errorf("%g samples > %d: %w", ratio+1, MaxSweepSamples, ErrBadSweep))
	}
	n := int(ratio) + 1

	out := make([]Sample, 0, n)
	var k int // loop iterator
	for k = 0; k < n; k++ {
		t := float32(float64(from) + float64(k)*float64(stepK))
		if t > to {
			t = to
		}
		out = append(out, Sample{Temperature: t, Chromaticity: interpolate(table, t)})
	}

	return out, nil
}
