// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for lazyunit.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lazyunit/lazyunit/internal/config"
	"github.com/lazyunit/lazyunit/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "lazyunit",
		Short: "Deferred activation for optional capabilities",
		Long: TitleStyle.Render("lazyunit") + SubtitleStyle.Render(" - Deferred activation for optional capabilities") + `

lazyunit lets an application declare many optional, heavy, or
environment-dependent capabilities up front without paying their load
cost: units guarded by a lazy group only activate when a member is
first actually used, and each group installs its third-party
dependencies at most once.

Dependencies are declared as requirement addresses, either a bare file
path or 'package:path' anchored inside an installed package, and the
external installer runs a dry run before every real install.

` + SubtitleStyle.Render("Examples:") + `
  lazyunit plan libcompute:requirements.txt   Show what an install would do
  lazyunit install ./requirements.txt         Install a requirements file
  lazyunit site list                          List packages in the site paths
  lazyunit record list                        Show recorded installs
  lazyunit config show                        Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/lazyunit/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(siteCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		renderIssueHelp(os.Stderr, err)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file and applies global settings.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
