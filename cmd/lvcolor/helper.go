// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcolor/locus"
	"github.com/katalvlaran/lvcolor/matrix"
	"golang.org/x/text/number"
)

// parseFloat32 parses a single float32 argument.
func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return float32(v), nil
}

// parseFloats parses exactly n float32 arguments.
func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(args))
	}
	out := make([]float32, n)
	for i, s := range args {
		v, err := parseFloat32(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseMatrix reads nine numbers in row-major order.
func parseMatrix(args []string) (matrix.Matrix3, error) {
	v, err := parseFloats(args, matrix.Size*matrix.Size)
	if err != nil {
		return matrix.Matrix3{}, err
	}
	return matrix.New([3][3]float32{
		{v[0], v[1], v[2]},
		{v[3], v[4], v[5]},
		{v[6], v[7], v[8]},
	}), nil
}

// parsePoint reads "x,y,z".
func parsePoint(s string) (matrix.Point3, error) {
	parts := strings.Split(s, ",")
	v, err := parseFloats(parts, 3)
	if err != nil {
		return matrix.Point3{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return matrix.Point3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// parseKelvin accepts "6500", "6500K" and "6500 k".
func parseKelvin(s string) (float32, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimSpace(strings.TrimRight(v, "kK"))
	return parseFloat32(v)
}

// observer resolves a flag value, falling back to the configured default.
func (a *app) observer(flag string) (locus.Observer, error) {
	if flag == "" {
		flag = a.cfg.Observer
	}
	return locus.ParseObserver(flag)
}

// num formats v with the configured number of decimals in the active locale.
func (a *app) num(v float64) string {
	return a.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(a.cfg.Precision),
		number.MaxFractionDigits(a.cfg.Precision)))
}

// kelvin formats a temperature with at most two decimals.
func (a *app) kelvin(t float32) string {
	return a.printer.Sprint(number.Decimal(float64(t), number.MaxFractionDigits(2)))
}

// matrixRows renders m as three localized, right-aligned rows.
func (a *app) matrixRows(m matrix.Matrix3) string {
	var sb strings.Builder
	var r int // loop iterator
	for r = 0; r < matrix.Size; r++ {
		row := m.Row(r)
		fmt.Fprintf(&sb, "%12s %12s %12s\n",
			a.num(float64(row.X)), a.num(float64(row.Y)), a.num(float64(row.Z)))
	}
	return sb.String()
}
