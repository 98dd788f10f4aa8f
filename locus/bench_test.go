// SPDX-License-Identifier: MIT
// Package locus_test provides benchmarks for the chromaticity lookup.
package locus_test

import (
	"testing"

	"github.com/katalvlaran/lvcolor/locus"
)

var (
	sinkC locus.Chromaticity
	sinkS []locus.Sample
)

func BenchmarkCoordinatesAt(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c, err := locus.CoordinatesAt(1000+float32(i%39000), locus.Observer2Deg)
		if err != nil {
			b.Fatal(err)
		}
		sinkC = c
	}
}

func BenchmarkSweep(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, err := locus.Sweep(1000, 40000, 10, locus.Observer10Deg)
		if err != nil {
			b.Fatal(err)
		}
		sinkS = s
	}
}
