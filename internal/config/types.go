// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidSitePath is returned when a site path entry is empty.
	ErrInvalidSitePath = errors.New("invalid site path")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// Config is the application configuration.
	Config struct {
		// InstallerCommand is the command line used to invoke the external
		// package installer (e.g. "python3 -m pip").
		InstallerCommand string `mapstructure:"installer_command"`

		// SitePaths are the directories scanned for installed packages when
		// resolving anchored dependency addresses.
		SitePaths []string `mapstructure:"site_paths"`

		// StateDir is where the install record lives. Empty means the
		// config directory.
		StateDir string `mapstructure:"state_dir"`

		// UI holds user interface settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds user interface settings.
	UIConfig struct {
		// ColorScheme selects the terminal color scheme.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`

		// Verbose enables verbose output by default.
		Verbose bool `mapstructure:"verbose"`
	}
)

// IsValid reports whether the color scheme is one of the known values.
func (c ColorScheme) IsValid() bool {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true
	default:
		return false
	}
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		InstallerCommand: "python3 -m pip",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Validate checks constraints the CUE schema cannot express.
func (c *Config) Validate() error {
	if !c.UI.ColorScheme.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidColorScheme, c.UI.ColorScheme)
	}
	for i, p := range c.SitePaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: site_paths[%d] is empty", ErrInvalidSitePath, i)
		}
	}
	return nil
}
