// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/lazyunit/lazyunit/internal/config"
	"github.com/lazyunit/lazyunit/internal/depspec"
	"github.com/lazyunit/lazyunit/internal/installer"
)

// services bundles the collaborators a CLI command needs, wired from the
// loaded configuration.
type services struct {
	cfg      *config.Config
	index    *depspec.Index
	adapter  installer.Adapter
	recorder *installer.Recorder
}

// loadServices loads configuration and builds the site index, installer
// adapter, and install recorder from it.
func loadServices() (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	adapter, err := installer.NewCommandAdapter(cfg.InstallerCommand)
	if err != nil {
		return nil, err
	}

	statePath, err := config.StateFilePath(cfg)
	if err != nil {
		return nil, err
	}

	return &services{
		cfg:      cfg,
		index:    depspec.NewIndex(cfg.SitePaths...),
		adapter:  adapter,
		recorder: installer.NewRecorder(statePath),
	}, nil
}

// resolveAddress resolves a CLI address argument (bare path or
// "<anchor>:<relative-path>") to a concrete requirements file, with bare
// relative paths anchored at the current directory.
func (s *services) resolveAddress(arg string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	return depspec.ParseAddress(arg).Resolve(s.index, cwd)
}
