// SPDX-License-Identifier: MPL-2.0

package depspec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrAnchorNotFound is the sentinel wrapped by AnchorNotFoundError.
var ErrAnchorNotFound = errors.New("anchor package not found")

type (
	// Address identifies a requirements file, either directly by path or
	// relative to an installed anchor package's resource root.
	Address struct {
		// Anchor is the installed package the path is relative to.
		// Empty for a bare filesystem path.
		Anchor string
		// Path is the relative path inside the anchor, or the bare path.
		Path string
	}

	// AnchorNotFoundError is returned when no site directory contains the
	// anchor package.
	AnchorNotFoundError struct {
		Anchor string
		Sites  []string
	}
)

// Error implements the error interface.
func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("anchor package %q not found in site paths %v", e.Anchor, e.Sites)
}

// Unwrap returns ErrAnchorNotFound for errors.Is compatibility.
func (e *AnchorNotFoundError) Unwrap() error { return ErrAnchorNotFound }

// ParseAddress splits an address on its last colon into anchor and path.
// An address without a colon is a bare path.
func ParseAddress(s string) Address {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return Address{Path: s}
	}
	return Address{Anchor: s[:i], Path: s[i+1:]}
}

// IsAnchored reports whether the address is relative to an anchor package.
func (a Address) IsAnchored() bool { return a.Anchor != "" }

// String renders the address back to its textual form.
func (a Address) String() string {
	if a.Anchor == "" {
		return a.Path
	}
	return a.Anchor + ":" + a.Path
}

// Resolve turns the address into a concrete, existing file path. Anchored
// addresses are joined onto the anchor's resource root from the index; bare
// relative paths are joined onto baseDir. A missing anchor or missing file
// fails immediately.
func (a Address) Resolve(idx *Index, baseDir string) (string, error) {
	var path string
	if a.IsAnchored() {
		root, err := idx.Locate(a.Anchor)
		if err != nil {
			return "", err
		}
		path = filepath.Join(root, filepath.FromSlash(a.Path))
	} else {
		path = filepath.FromSlash(a.Path)
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("resolve dependency spec %q: %w", a.String(), err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("resolve dependency spec %q: %s is a directory", a.String(), path)
	}
	return path, nil
}
