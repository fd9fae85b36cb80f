// SPDX-License-Identifier: MPL-2.0

package depspec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseAddress(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in     string
		anchor string
		path   string
	}{
		{"requirements.txt", "", "requirements.txt"},
		{"deps/requirements.txt", "", "deps/requirements.txt"},
		{"SomePackage:requirements.txt", "SomePackage", "requirements.txt"},
		{"SomePackage:deps/extra.txt", "SomePackage", "deps/extra.txt"},
		// Only the last colon splits.
		{"a:b:c.txt", "a:b", "c.txt"},
	}
	for _, tc := range cases {
		addr := ParseAddress(tc.in)
		if addr.Anchor != tc.anchor || addr.Path != tc.path {
			t.Errorf("ParseAddress(%q) = {%q, %q}, want {%q, %q}",
				tc.in, addr.Anchor, addr.Path, tc.anchor, tc.path)
		}
		if addr.String() != tc.in {
			t.Errorf("String() = %q, want %q", addr.String(), tc.in)
		}
		if addr.IsAnchored() != (tc.anchor != "") {
			t.Errorf("IsAnchored(%q) = %v", tc.in, addr.IsAnchored())
		}
	}
}

func TestAddress_Resolve_Bare(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := filepath.Join(dir, "requirements.txt")
	if err := os.WriteFile(file, []byte("left-pad\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Relative path joins the base directory.
	got, err := ParseAddress("requirements.txt").Resolve(NewIndex(), dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != file {
		t.Errorf("Resolve = %q, want %q", got, file)
	}

	// Absolute path ignores the base directory.
	got, err = ParseAddress(file).Resolve(NewIndex(), "/nonexistent")
	if err != nil {
		t.Fatalf("Resolve of absolute path failed: %v", err)
	}
	if got != file {
		t.Errorf("Resolve = %q, want %q", got, file)
	}

	// Missing file fails.
	if _, err := ParseAddress("missing.txt").Resolve(NewIndex(), dir); err == nil {
		t.Error("Resolve of a missing file should fail")
	}

	// A directory is not a requirements file.
	if _, err := ParseAddress(dir).Resolve(NewIndex(), ""); err == nil {
		t.Error("Resolve of a directory should fail")
	}
}

func TestAddress_Resolve_Anchored(t *testing.T) {
	t.Parallel()
	site := t.TempDir()
	pkgDir := filepath.Join(site, "some_package")
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(pkgDir, "requirements.txt")
	if err := os.WriteFile(file, []byte("left-pad\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	idx := NewIndex(site)
	got, err := ParseAddress("some-package:requirements.txt").Resolve(idx, "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != file {
		t.Errorf("Resolve = %q, want %q", got, file)
	}

	_, err = ParseAddress("absent-package:requirements.txt").Resolve(idx, "")
	if !errors.Is(err, ErrAnchorNotFound) {
		t.Errorf("missing anchor should fail with ErrAnchorNotFound, got: %v", err)
	}
	var anf *AnchorNotFoundError
	if !errors.As(err, &anf) {
		t.Fatalf("error should be *AnchorNotFoundError, got: %T", err)
	}
	if anf.Anchor != "absent-package" {
		t.Errorf("AnchorNotFoundError.Anchor = %q", anf.Anchor)
	}
}

func TestIndex_Locate(t *testing.T) {
	t.Parallel()
	siteA := t.TempDir()
	siteB := t.TempDir()
	for _, dir := range []string{
		filepath.Join(siteA, "First_Pkg"),
		filepath.Join(siteB, "first_pkg"),
		filepath.Join(siteB, "second_pkg"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	idx := NewIndex(siteA, siteB, filepath.Join(siteA, "does-not-exist"))

	// Sites are consulted in order; name matching treats "-" and "_" and
	// letter case as equivalent.
	got, err := idx.Locate("first-pkg")
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if got != filepath.Join(siteA, "First_Pkg") {
		t.Errorf("Locate = %q, want the first site's match", got)
	}

	if _, err := idx.Locate("third-pkg"); !errors.Is(err, ErrAnchorNotFound) {
		t.Errorf("Locate of unknown package: %v", err)
	}
}

func TestIndex_InvalidateSeesNewPackages(t *testing.T) {
	t.Parallel()
	site := t.TempDir()
	idx := NewIndex(site)

	if _, err := idx.Locate("newpkg"); err == nil {
		t.Fatal("Locate should fail before the package exists")
	}

	pkgDir := filepath.Join(site, "newpkg")
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	idx.Invalidate()

	got, err := idx.Locate("newpkg")
	if err != nil {
		t.Fatalf("Locate after invalidation failed: %v", err)
	}
	if got != pkgDir {
		t.Errorf("Locate = %q, want %q", got, pkgDir)
	}
}

func TestIndex_Packages(t *testing.T) {
	t.Parallel()
	siteA := t.TempDir()
	siteB := t.TempDir()
	for _, dir := range []string{
		filepath.Join(siteA, "beta"),
		filepath.Join(siteA, ".hidden"),
		filepath.Join(siteB, "alpha"),
		filepath.Join(siteB, "beta"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	// Plain files are not packages.
	if err := os.WriteFile(filepath.Join(siteA, "README"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got := NewIndex(siteA, siteB).Packages()
	want := []string{"alpha", "beta"}
	if len(got) != len(want) {
		t.Fatalf("Packages = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Packages = %v, want %v", got, want)
		}
	}
}
