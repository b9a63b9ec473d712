// Package config holds the egg-symmetry command configuration.
//
// Values are layered: defaults, then the TOML file, then EGG_SYMMETRY_*
// environment variables, then explicitly set command-line flags.
package config

import (
	"fmt"
	"strconv"

	"github.com/ironsheep/egg-symmetry/internal/imaging"
	"github.com/ironsheep/egg-symmetry/internal/logging"
	"github.com/ironsheep/egg-symmetry/internal/symmetry"
)

// Config holds CLI configuration for egg-symmetry.
type Config struct {
	Algorithm string
	LogLevel  string

	// Rendering
	CellSize   int
	Format     string
	Foreground string
	Background string
	OutputDir  string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Algorithm:  string(symmetry.DefaultAlgorithm),
		LogLevel:   "info",
		CellSize:   imaging.DefaultCellSize,
		Format:     string(imaging.FormatPNG),
		Foreground: imaging.DefaultForeground,
		Background: imaging.DefaultBackground,
		OutputDir:  ".",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := symmetry.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.CellSize < imaging.MinCellSize {
		return fmt.Errorf("cell-size must be at least %d, got %d", imaging.MinCellSize, c.CellSize)
	}
	if _, err := imaging.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := imaging.ParsePalette(c.Foreground, c.Background); err != nil {
		return err
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	return nil
}

// Palette returns the parsed rendering palette. Call after Validate.
func (c Config) Palette() imaging.Palette {
	p, err := imaging.ParsePalette(c.Foreground, c.Background)
	if err != nil {
		return imaging.DefaultPalette()
	}
	return p
}

// configSetter applies values while respecting flags the user set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setInt(flag, i, dst)
	return nil
}
