// SPDX-License-Identifier: MPL-2.0

// Package depspec locates the requirements file behind a dependency address.
//
// An address is either a bare filesystem path or "<anchor>:<relative-path>",
// where the anchor names an installed package whose resource root is found by
// scanning the configured site directories. Locating an anchor is a pure
// filesystem lookup: none of the anchor package's code runs, so an anchor
// whose own dependencies are not installed yet can still be resolved.
package depspec
