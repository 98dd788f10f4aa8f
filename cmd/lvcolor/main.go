// SPDX-License-Identifier: MIT

// Command lvcolor looks up blackbody chromaticities and builds, inverts and
// applies 3×3 color transforms from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvcolor/config"
	"github.com/katalvlaran/lvcolor/logger"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// app carries the state shared by all subcommands once the root command has
// loaded the configuration.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	printer *message.Printer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string
	var lang string
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "lvcolor",
		Short:        "Blackbody chromaticity and 3x3 color matrix toolkit",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, envFile, lang)
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file with LVCOLOR_* settings (default .env)")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en", "BCP 47 language tag for number formatting")

	rootCmd.AddCommand(newLocusCmd(a))
	rootCmd.AddCommand(newMatrixCmd(a))
	return rootCmd
}

func (a *app) init(cmd *cobra.Command, envFile, lang string) error {
	cfg := config.Load(envFile)
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("invalid --lang %q: %w", lang, err)
	}

	a.cfg = cfg
	a.log = log
	a.printer = message.NewPrinter(tag)
	a.log.Debug("configuration loaded", "observer", cfg.Observer, "precision", cfg.Precision, "lang", tag.String())
	return nil
}
