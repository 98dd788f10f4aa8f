// SPDX-License-Identifier: MIT

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/lvcolor/matrix"
	"github.com/spf13/cobra"
)

func newMatrixCmd(a *app) *cobra.Command {
	var formula bool

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build, invert and apply 3x3 color transforms",
		Long: `Build, invert and apply 3x3 color transforms.

Matrices are given as nine numbers in row-major order. Put "--" before
arguments that start with a minus sign.`,
	}
	cmd.PersistentFlags().BoolVar(&formula, "formula", false, "Print the matrix as an RGB channel mix")

	show := func(w io.Writer, m matrix.Matrix3) error {
		if formula {
			_, err := io.WriteString(w, m.Formula())
			return err
		}
		_, err := io.WriteString(w, a.matrixRows(m))
		return err
	}

	cmd.AddCommand(
		newInvertCmd(a, show),
		newRotateCmd(a, show),
		newScaleCmd(show),
		newTranslateCmd(show),
		newTransformCmd(a),
		newDetCmd(a),
		newEncodeCmd(),
		newDecodeCmd(show),
	)
	return cmd
}

type showFunc func(io.Writer, matrix.Matrix3) error

func newInvertCmd(a *app, show showFunc) *cobra.Command {
	var pivotTol float64

	cmd := &cobra.Command{
		Use:   "invert <m00> <m01> ... <m22>",
		Short: "Invert a matrix",
		Args:  cobra.ExactArgs(9),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(args)
			if err != nil {
				return err
			}
			if pivotTol < 0 || math.IsNaN(pivotTol) || math.IsInf(pivotTol, 0) {
				return fmt.Errorf("invalid --pivot-tol %g", pivotTol)
			}
			inv, err := matrix.Inverse(m, matrix.WithPivotTolerance(pivotTol))
			if err != nil {
				a.log.Debug("inversion failed", "matrix", m.String(), "error", err)
				return err
			}
			return show(cmd.OutOrStdout(), inv)
		},
	}
	cmd.Flags().Float64Var(&pivotTol, "pivot-tol", matrix.DefaultPivotTolerance, "Smallest accepted scaled pivot")
	return cmd
}

func newRotateCmd(a *app, show showFunc) *cobra.Command {
	var x, y, z float64
	var degrees bool

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Build Rz·Ry·Rx from Euler angles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if degrees {
				x, y, z = x*math.Pi/180, y*math.Pi/180, z*math.Pi/180
			}
			a.log.Debug("rotation", "x", x, "y", y, "z", z)
			return show(cmd.OutOrStdout(), matrix.Rotation(float32(x), float32(y), float32(z)))
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "Angle around X")
	cmd.Flags().Float64Var(&y, "y", 0, "Angle around Y")
	cmd.Flags().Float64Var(&z, "z", 0, "Angle around Z")
	cmd.Flags().BoolVar(&degrees, "degrees", false, "Angles are in degrees instead of radians")
	return cmd
}

func newScaleCmd(show showFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "scale <sx> <sy> <sz>",
		Short: "Build a scaling matrix",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, 3)
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), matrix.Scaling(v[0], v[1], v[2]))
		},
	}
}

func newTranslateCmd(show showFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "translate <tx> <ty>",
		Short: "Build a homogeneous 2D translation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, 2)
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), matrix.Translation(v[0], v[1]))
		},
	}
}

func newTransformCmd(a *app) *cobra.Command {
	var point string

	cmd := &cobra.Command{
		Use:   "transform <m00> <m01> ... <m22> --point x,y,z",
		Short: "Apply a matrix to a point",
		Args:  cobra.ExactArgs(9),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(args)
			if err != nil {
				return err
			}
			p, err := parsePoint(point)
			if err != nil {
				return err
			}
			q := m.Transform(p)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				a.num(float64(q.X)), a.num(float64(q.Y)), a.num(float64(q.Z)))
			return err
		},
	}
	cmd.Flags().StringVar(&point, "point", "", "Point to transform as x,y,z")
	_ = cmd.MarkFlagRequired("point")
	return cmd
}

func newDetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "det <m00> <m01> ... <m22>",
		Short: "Print the determinant",
		Args:  cobra.ExactArgs(9),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.num(m.Determinant()))
			return err
		},
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <m00> <m01> ... <m22>",
		Short: "Print the versioned binary record as hex",
		Args:  cobra.ExactArgs(9),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(args)
			if err != nil {
				return err
			}
			data, err := m.MarshalBinary()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return err
		},
	}
}

func newDecodeCmd(show showFunc) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a hex binary record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}
			var m matrix.Matrix3
			if err := m.UnmarshalBinary(data); err != nil {
				return err
			}
			if raw {
				_, err = io.WriteString(cmd.OutOrStdout(), m.Debug())
				return err
			}
			return show(cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print stored values without locale formatting")
	return cmd
}
