// SPDX-License-Identifier: MIT

// Package config loads lvcolor settings from an optional dotenv file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/lvcolor/locus"
	"github.com/katalvlaran/lvcolor/logger"
)

const (
	// ConstantConfigFilename is read when Load is given an empty name.
	ConstantConfigFilename = ".env"

	DefaultObserver  = "2"
	DefaultPrecision = 4
	DefaultLogLevel  = "info"
	DefaultSweepStep = 100.0

	// MaxPrecision bounds the decimals printed by the CLI; float32 carries
	// about seven significant digits.
	MaxPrecision = 9
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the CLI defaults.
type Config struct {
	Observer  string
	Precision int
	LogLevel  string
	SweepStep float64
}

// Load reads filename (missing files are ignored) and then the environment.
// Variables already set in the environment win over the file.
func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	return &Config{
		Observer:  getEnv("LVCOLOR_OBSERVER", DefaultObserver),
		Precision: getEnvInt("LVCOLOR_PRECISION", DefaultPrecision),
		LogLevel:  getEnv("LVCOLOR_LOG_LEVEL", DefaultLogLevel),
		SweepStep: getEnvFloat("LVCOLOR_SWEEP_STEP", DefaultSweepStep),
	}
}

// Validate rejects settings the CLI cannot honor.
func (c *Config) Validate() error {
	if _, err := locus.ParseObserver(c.Observer); err != nil {
		return fmt.Errorf("LVCOLOR_OBSERVER=%q: %w", c.Observer, ErrInvalidConfig)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("LVCOLOR_PRECISION=%d not in [0, %d]: %w", c.Precision, MaxPrecision, ErrInvalidConfig)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LVCOLOR_LOG_LEVEL=%q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if !(c.SweepStep > 0) {
		return fmt.Errorf("LVCOLOR_SWEEP_STEP=%g must be positive: %w", c.SweepStep, ErrInvalidConfig)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
