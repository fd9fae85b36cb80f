// SPDX-License-Identifier: MPL-2.0

// Package installer drives the external package installer as an opaque
// subprocess. The cycle is always dry-run-then-install: the dry run produces
// a machine-readable plan, and the real install only happens when the plan is
// non-empty. Failures from either step propagate unchanged; a partial or
// failed install must never be masked.
package installer
