// SPDX-License-Identifier: MPL-2.0

package unit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnitNotFound is the sentinel wrapped by every load failure.
	ErrUnitNotFound = errors.New("unit not found")

	// ErrUnitHalted is the sentinel for the locked-name failure. It wraps
	// ErrUnitNotFound so that errors.Is(err, ErrUnitNotFound) holds, while
	// errors.Is(err, ErrUnitHalted) distinguishes a guarded name from a name
	// that simply does not exist.
	ErrUnitHalted = fmt.Errorf("unit load halted: %w", ErrUnitNotFound)

	// ErrNoSuchMember is the sentinel wrapped by NoSuchMemberError.
	ErrNoSuchMember = errors.New("no such member")
)

type (
	// NotFoundError is returned when no binding, finder, or provider can
	// supply the requested name.
	NotFoundError struct {
		Name string
	}

	// HaltedError is returned when the ordinary load path encounters a name
	// locked by a lazy group. It signals that the name must be reached
	// through its placeholder, not through a plain load: code that worked in
	// an environment where the dependencies happened to be installed fails
	// identically in one where they are not.
	HaltedError struct {
		Name string
	}

	// NoSuchMemberError is returned by Unit.Attr for an unknown member name.
	NoSuchMemberError struct {
		Unit   string
		Member string
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unit %q not found", e.Name)
}

// Unwrap returns ErrUnitNotFound for errors.Is compatibility.
func (e *NotFoundError) Unwrap() error { return ErrUnitNotFound }

// Error implements the error interface.
func (e *HaltedError) Error() string {
	return fmt.Sprintf("load of unit %q halted; the name is locked by a lazy group and must be reached through its placeholder", e.Name)
}

// Unwrap returns ErrUnitHalted (itself wrapping ErrUnitNotFound).
func (e *HaltedError) Unwrap() error { return ErrUnitHalted }

// Error implements the error interface.
func (e *NoSuchMemberError) Error() string {
	return fmt.Sprintf("unit %q has no member %q", e.Unit, e.Member)
}

// Unwrap returns ErrNoSuchMember for errors.Is compatibility.
func (e *NoSuchMemberError) Unwrap() error { return ErrNoSuchMember }
