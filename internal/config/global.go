// SPDX-License-Identifier: MPL-2.0

package config

import "sync"

var (
	mu     sync.Mutex
	cached *Config

	// configDirOverride allows tests (and --config-dir style flags) to
	// override the config directory. os.UserHomeDir() doesn't reliably
	// respect the HOME environment variable on all platforms.
	configDirOverride string

	// configFileOverride is set from the --config flag and used exclusively
	// when non-empty.
	configFileOverride string
)

// Load returns the application configuration, loading it on first use and
// caching it for the rest of the process.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()
	if cached != nil {
		return cached, nil
	}
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	cached = cfg
	return cfg, nil
}

// Reset clears the cache and test overrides. Call from test cleanup to
// restore defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cached = nil
	configDirOverride = ""
	configFileOverride = ""
}

// SetConfigDirOverride sets a custom config directory path. Primarily for
// tests.
func SetConfigDirOverride(dir string) {
	mu.Lock()
	defer mu.Unlock()
	cached = nil
	configDirOverride = dir
}

// SetConfigFilePathOverride sets an explicit config file path, used
// exclusively when non-empty.
func SetConfigFilePathOverride(path string) {
	mu.Lock()
	defer mu.Unlock()
	cached = nil
	configFileOverride = path
}
