// SPDX-License-Identifier: MIT
package locus_test

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/locus"
)

// ExampleCoordinatesAt looks up D65's correlated color temperature.
func ExampleCoordinatesAt() {
	c, err := locus.CoordinatesAt(6500, locus.Observer2Deg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)

	_, err = locus.CoordinatesAt(500, locus.Observer2Deg)
	fmt.Println(err)

	// Output:
	// (0.3155, 0.327)
	// CoordinatesAt: 500 K not in [1000, 40000]: locus: temperature out of range
}

// ExampleSweep samples the 10° locus every 500 K.
func ExampleSweep() {
	samples, err := locus.Sweep(1000, 2000, 500, locus.Observer10Deg)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range samples {
		fmt.Printf("%g %v\n", s.Temperature, s.Chromaticity)
	}

	// Output:
	// 1000 (0.6472, 0.3506)
	// 1500 (0.5864, 0.394)
	// 2000 (0.53, 0.4123)
}
