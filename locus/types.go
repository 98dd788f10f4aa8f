// SPDX-License-Identifier: MIT

package locus

import (
	"fmt"
	"strings"
)

// Temperature bounds of both tables, in kelvin.
const (
	MinTemperature float32 = 1000
	MaxTemperature float32 = 40000
)

// tableLen is the row count of each table: one row per 100 K.
const tableLen = 391

// Chromaticity is a CIE (x, y) chromaticity coordinate pair.
type Chromaticity struct {
	X, Y float32
}

// String renders the pair as "(x, y)".
func (c Chromaticity) String() string {
	return fmt.Sprintf("(%g, %g)", c.X, c.Y)
}

// Observer selects the standard observer angle of a table.
type Observer int

const (
	// Observer2Deg is the CIE 1931 2° standard observer.
	Observer2Deg Observer = 2
	// Observer10Deg is the CIE 1964 10° standard observer.
	Observer10Deg Observer = 10
)

// String renders the observer as "2deg" or "10deg".
func (o Observer) String() string {
	return fmt.Sprintf("%ddeg", int(o))
}

// ParseObserver accepts "2", "2deg", "2°" and the 10° equivalents.
func ParseObserver(s string) (Observer, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimSuffix(strings.TrimSuffix(v, "deg"), "°")
	switch v {
	case "2":
		return Observer2Deg, nil
	case "10":
		return Observer10Deg, nil
	}

	return 0, locusErrorf(opParseObserver, fmt.Errorf("%q: %w", s, ErrUnknownObserver))
}

// Sample is one point of a Sweep.
type Sample struct {
	Temperature  float32
	Chromaticity Chromaticity
}
