// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/katalvlaran/lvcolor/locus"
	"github.com/spf13/cobra"
)

func newLocusCmd(a *app) *cobra.Command {
	var observer string

	cmd := &cobra.Command{
		Use:   "locus <kelvin>",
		Short: "Print the CIE (x, y) chromaticity of a blackbody",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obs, err := a.observer(observer)
			if err != nil {
				return err
			}
			t, err := parseKelvin(args[0])
			if err != nil {
				return err
			}

			c, err := locus.CoordinatesAt(t, obs)
			if err != nil {
				return err
			}
			a.log.Debug("locus lookup", "kelvin", t, "observer", obs.String())

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s K (%s): x=%s y=%s\n",
				a.kelvin(t), obs, a.num(float64(c.X)), a.num(float64(c.Y)))
			return err
		},
	}
	cmd.PersistentFlags().StringVar(&observer, "observer", "", "Standard observer: 2 or 10 (default LVCOLOR_OBSERVER)")

	cmd.AddCommand(newSweepCmd(a, &observer))
	return cmd
}

func newSweepCmd(a *app, observer *string) *cobra.Command {
	var from, to, step float32
	var output string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sample the locus over a temperature range as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obs, err := a.observer(*observer)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("step") {
				step = float32(a.cfg.SweepStep)
			}

			samples, err := locus.Sweep(from, to, step, obs)
			if err != nil {
				return err
			}
			a.log.Debug("sweep computed", "from", from, "to", to, "step", step, "rows", len(samples))

			if output == "" {
				return writeSweepCSV(cmd.OutOrStdout(), samples)
			}

			var s *spinner.Spinner
			if !quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
				s.Suffix = fmt.Sprintf(" Writing %d samples to %s...", len(samples), output)
				s.Start()
			}
			err = writeSweepFile(output, samples)
			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}

			a.log.Info("sweep written", "file", output, "rows", len(samples), "observer", obs.String())
			return nil
		},
	}
	cmd.Flags().Float32Var(&from, "from", locus.MinTemperature, "First temperature in K")
	cmd.Flags().Float32Var(&to, "to", locus.MaxTemperature, "Last temperature in K")
	cmd.Flags().Float32Var(&step, "step", 0, "Temperature step in K (default LVCOLOR_SWEEP_STEP)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write CSV to file instead of stdout")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}

func writeSweepFile(path string, samples []locus.Sample) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writeSweepCSV(f, samples)
}

// writeSweepCSV writes "kelvin,x,y" rows with full float32 precision.
func writeSweepCSV(w io.Writer, samples []locus.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kelvin", "x", "y"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(float64(s.Temperature), 'g', -1, 32),
			strconv.FormatFloat(float64(s.Chromaticity.X), 'g', -1, 32),
			strconv.FormatFloat(float64(s.Chromaticity.Y), 'g', -1, 32),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
