// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	debugPrefix = "Matrix :  "
	debugIndent = "          "
	debugWidth  = 12
)

// formatFloat renders v with the shortest representation that round-trips as float32.
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// String renders m on a single line, row by row.
func (m Matrix3) String() string {
	var sb strings.Builder
	sb.WriteString(debugPrefix)
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteString("      ")
		}
		fmt.Fprintf(&sb, "%s %s %s", formatFloat(m[idx(r, 0)]), formatFloat(m[idx(r, 1)]), formatFloat(m[idx(r, 2)]))
	}

	return sb.String()
}

// Debug renders m as three right-aligned rows:
//
//	Matrix :             1            0            0
//	                     0            1            0
//	                     0            0            1
func (m Matrix3) Debug() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r == 0 {
			sb.WriteString(debugPrefix)
		} else {
			sb.WriteString(debugIndent)
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*s", debugWidth, formatFloat(m[idx(r, c)]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Formula renders m as an RGB channel mix, one output channel per line:
//
//	r= r*1 + g*0 + b*0
func (m Matrix3) Formula() string {
	channels := [Size]string{"r", "g", "b"}
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		fmt.Fprintf(&sb, "%s= r*%s + g*%s + b*%s\n",
			channels[r],
			formatFloat(m[idx(r, 0)]),
			formatFloat(m[idx(r, 1)]),
			formatFloat(m[idx(r, 2)]))
	}

	return sb.String()
}

// String renders p as "(x, y, z)".
func (p Point3) String() string {
	return "(" + formatFloat(p.X) + ", " + formatFloat(p.Y) + ", " + formatFloat(p.Z) + ")"
}
