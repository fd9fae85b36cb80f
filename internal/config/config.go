// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/viper"

	"github.com/lazyunit/lazyunit/internal/issue"
)

const (
	// AppName is the application name.
	AppName = "lazyunit"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// StateFileName is the name of the install record file.
	StateFileName = "state.toml"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the lazyunit configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// StateFilePath returns the install record path for the given config,
// honoring state_dir when set.
func StateFilePath(cfg *Config) (string, error) {
	if cfg.StateDir != "" {
		return filepath.Join(cfg.StateDir, StateFileName), nil
	}
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, StateFileName), nil
}

// load reads the config file (if any), validates it against the schema, and
// unmarshals the merged result.
func load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("installer_command", defaults.InstallerCommand)
	v.SetDefault("site_paths", defaults.SitePaths)
	v.SetDefault("state_dir", defaults.StateDir)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	// An explicit --config path is used exclusively; otherwise look in the
	// config directory, then the current directory.
	if configFileOverride != "" {
		if !fileExists(configFileOverride) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFileOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Run 'lazyunit config init' to create a default configuration").
				Wrap(fmt.Errorf("config file not found: %s", configFileOverride)).
				BuildError()
		}
		if err := loadCUEIntoViper(v, configFileOverride); err != nil {
			return nil, wrapParseError(err, configFileOverride)
		}
	} else {
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		switch {
		case fileExists(cuePath):
			if err := loadCUEIntoViper(v, cuePath); err != nil {
				return nil, wrapParseError(err, cuePath)
			}
		case fileExists(ConfigFileName + "." + ConfigFileExt):
			localPath := ConfigFileName + "." + ConfigFileExt
			if err := loadCUEIntoViper(v, localPath); err != nil {
				return nil, wrapParseError(err, localPath)
			}
		}
		// No config file found: defaults apply, no error.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion("Check the values in your config.cue against 'lazyunit config show'").
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

func wrapParseError(err error, path string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		Wrap(err).
		BuildError()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config
// schema, and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err(), path)
	}

	// Unify with the schema to validate against the #Config definition.
	// Concrete(false) because all config fields are optional.
	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return formatCUEError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

func formatCUEError(err error, path string) error {
	return fmt.Errorf("invalid CUE in %s:\n%s", path, cueerrors.Details(err, nil))
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// CreateDefaultConfig creates a default config file if it doesn't exist
func CreateDefaultConfig() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if _, err := os.Stat(cfgPath); err == nil {
		return nil // File exists
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// lazyunit configuration file\n\n")

	sb.WriteString(fmt.Sprintf("installer_command: %q\n", cfg.InstallerCommand))

	if len(cfg.SitePaths) > 0 {
		sb.WriteString("\nsite_paths: [\n")
		for _, p := range cfg.SitePaths {
			sb.WriteString(fmt.Sprintf("\t%q,\n", p))
		}
		sb.WriteString("]\n")
	}

	if cfg.StateDir != "" {
		sb.WriteString(fmt.Sprintf("\nstate_dir: %q\n", cfg.StateDir))
	}

	sb.WriteString("\nui: {\n")
	sb.WriteString(fmt.Sprintf("\tcolor_scheme: %q\n", cfg.UI.ColorScheme))
	sb.WriteString(fmt.Sprintf("\tverbose: %v\n", cfg.UI.Verbose))
	sb.WriteString("}\n")

	return sb.String()
}
