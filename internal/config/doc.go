// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as
// the file format.
//
// Configuration is loaded from ~/.config/lazyunit/config.cue (or the XDG
// equivalent on Linux, ~/Library/Application Support/lazyunit/config.cue on
// macOS, %APPDATA%\lazyunit\config.cue on Windows) and validated against an
// embedded CUE schema. It selects the installer command line, the site paths
// scanned for installed packages, the state directory for the install record,
// and UI settings.
package config
