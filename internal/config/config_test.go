// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Tests in this file share the package-level cache and overrides, so they do
// not run in parallel.

func useConfigDir(t *testing.T, dir string) {
	t.Helper()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	useConfigDir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.InstallerCommand != "python3 -m pip" {
		t.Errorf("InstallerCommand = %q", cfg.InstallerCommand)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("ColorScheme = %q", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("Verbose should default to false")
	}
	if len(cfg.SitePaths) != 0 {
		t.Errorf("SitePaths = %v", cfg.SitePaths)
	}
}

func TestLoad_CachesUntilReset(t *testing.T) {
	useConfigDir(t, t.TempDir())

	first, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	second, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("Load should return the cached config")
	}
}

func TestLoad_ReadsCUEConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
installer_command: "uv pip"
site_paths: ["/opt/site-a", "/opt/site-b"]
state_dir: "/var/lib/lazyunit"
ui: {
	color_scheme: "dark"
	verbose: true
}
`)
	useConfigDir(t, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.InstallerCommand != "uv pip" {
		t.Errorf("InstallerCommand = %q", cfg.InstallerCommand)
	}
	if len(cfg.SitePaths) != 2 || cfg.SitePaths[0] != "/opt/site-a" {
		t.Errorf("SitePaths = %v", cfg.SitePaths)
	}
	if cfg.StateDir != "/var/lib/lazyunit" {
		t.Errorf("StateDir = %q", cfg.StateDir)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark || !cfg.UI.Verbose {
		t.Errorf("UI = %+v", cfg.UI)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `site_paths: ["/opt/site-a"]`+"\n")
	useConfigDir(t, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.InstallerCommand != "python3 -m pip" {
		t.Errorf("unset field should keep its default, got %q", cfg.InstallerCommand)
	}
	if len(cfg.SitePaths) != 1 {
		t.Errorf("SitePaths = %v", cfg.SitePaths)
	}
}

func TestLoad_RejectsInvalidCUE(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `installer_command: 42`+"\n")
	useConfigDir(t, dir)

	if _, err := Load(); err == nil {
		t.Fatal("schema violation should fail the load")
	}
}

func TestLoad_RejectsUnknownColorScheme(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `ui: color_scheme: "sepia"`+"\n")
	useConfigDir(t, dir)

	if _, err := Load(); err == nil {
		t.Fatal("unknown color scheme should fail the load")
	}
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.cue")
	if err := os.WriteFile(path, []byte(`installer_command: "pip"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigFilePathOverride(path)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.InstallerCommand != "pip" {
		t.Errorf("InstallerCommand = %q", cfg.InstallerCommand)
	}
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.cue"))
	t.Cleanup(Reset)

	if _, err := Load(); err == nil {
		t.Fatal("a missing explicit config file should fail the load")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}

	cfg.UI.ColorScheme = "sepia"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("Validate = %v, want ErrInvalidColorScheme", err)
	}

	cfg = DefaultConfig()
	cfg.SitePaths = []string{"/opt/site-a", "  "}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidSitePath) {
		t.Errorf("Validate = %v, want ErrInvalidSitePath", err)
	}
}

func TestStateFilePath(t *testing.T) {
	dir := t.TempDir()
	useConfigDir(t, dir)

	cfg := DefaultConfig()
	got, err := StateFilePath(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, StateFileName) {
		t.Errorf("StateFilePath = %q", got)
	}

	cfg.StateDir = "/var/lib/lazyunit"
	got, err = StateFilePath(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join("/var/lib/lazyunit", StateFileName) {
		t.Errorf("StateFilePath with state_dir = %q", got)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	useConfigDir(t, dir)

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig failed: %v", err)
	}
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), `installer_command: "python3 -m pip"`) {
		t.Errorf("generated config missing defaults:\n%s", data)
	}

	// Idempotent: an existing file is left alone.
	if err := os.WriteFile(path, []byte(`installer_command: "pip"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("second CreateDefaultConfig failed: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"pip"`) {
		t.Error("CreateDefaultConfig overwrote an existing file")
	}
}

func TestGenerateCUE_RoundTrips(t *testing.T) {
	cfg := &Config{
		InstallerCommand: "uv pip",
		SitePaths:        []string{"/opt/site-a"},
		StateDir:         "/var/lib/lazyunit",
		UI:               UIConfig{ColorScheme: ColorSchemeLight, Verbose: true},
	}

	dir := t.TempDir()
	writeConfig(t, dir, GenerateCUE(cfg))
	useConfigDir(t, dir)

	got, err := Load()
	if err != nil {
		t.Fatalf("generated config failed to load: %v", err)
	}
	if got.InstallerCommand != cfg.InstallerCommand ||
		got.StateDir != cfg.StateDir ||
		got.UI.ColorScheme != cfg.UI.ColorScheme ||
		got.UI.Verbose != cfg.UI.Verbose {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}
