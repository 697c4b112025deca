// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPackaging is returned when default_packaging is blank.
	ErrInvalidPackaging = errors.New("invalid default packaging")
	// ErrInvalidPomFileName is returned when pom_file_name is blank or
	// contains path separators.
	ErrInvalidPomFileName = errors.New("invalid pom file name")
)

type (
	// UIConfig holds user-interface settings.
	UIConfig struct {
		// Verbose enables debug-level output without the --verbose flag.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}

	// Config is the pomkit tool configuration. It concerns tool behavior
	// only; project descriptors themselves are never configured here.
	Config struct {
		// DefaultPackaging is the packaging written into newly created
		// descriptors (conventionally "jar").
		DefaultPackaging string `mapstructure:"default_packaging" toml:"default_packaging"`

		// PomFileName is the descriptor file name assumed when -f/--file
		// is not given.
		PomFileName string `mapstructure:"pom_file_name" toml:"pom_file_name"`

		// UI holds user-interface settings.
		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}
)

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultPackaging: "jar",
		PomFileName:      "pom.xml",
		UI:               UIConfig{Verbose: false},
	}
}

// Validate checks constraints the TOML decoding cannot express.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DefaultPackaging) == "" {
		return fmt.Errorf("%w: must not be blank", ErrInvalidPackaging)
	}
	if strings.TrimSpace(c.PomFileName) == "" || strings.ContainsAny(c.PomFileName, `/\`) {
		return fmt.Errorf("%w: %q must be a bare file name", ErrInvalidPomFileName, c.PomFileName)
	}
	return nil
}
