// SPDX-License-Identifier: MPL-2.0

// Package unit provides the process-wide unit registry: a mapping from unit
// names to their current binding, plus the ordinary load path that resolves a
// name to a live unit through registered providers.
//
// A binding moves through an explicit state machine
// (absent → placeholder → locked → resolved) and never moves backwards once
// resolved. Lazy groups (see pkg/lazy) intercept loads by pushing a Finder
// onto the registry's hook chain; everything else goes through providers.
package unit
