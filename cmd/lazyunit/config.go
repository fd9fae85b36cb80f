// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lazyunit/lazyunit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lazyunit configuration",
	Long: `Manage lazyunit configuration.

Configuration is stored in:
  - Linux: ~/.config/lazyunit/config.cue
  - macOS: ~/Library/Application Support/lazyunit/config.cue
  - Windows: %APPDATA%\lazyunit\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateDefaultConfig(); err != nil {
				return err
			}
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			path := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Configuration ready: ")+path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})
}
