// SPDX-License-Identifier: MPL-2.0

package depspec

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Index maps installed package names to their on-disk resource roots by
// scanning site directories. Successful lookups are cached; Invalidate drops
// the cache so loads after an install see newly appeared packages.
type Index struct {
	mu    sync.Mutex
	sites []string
	cache map[string]string
}

// NewIndex creates an index over the given site directories, consulted in
// order.
func NewIndex(sites ...string) *Index {
	return &Index{sites: sites, cache: map[string]string{}}
}

// Sites returns the site directories the index scans.
func (ix *Index) Sites() []string {
	out := make([]string, len(ix.sites))
	copy(out, ix.sites)
	return out
}

// Locate returns the resource root of an installed package without running
// any of its code. Package directory names are matched with "-" and "_"
// treated as equivalent, mirroring common distribution-name normalization.
func (ix *Index) Locate(pkg string) (string, error) {
	ix.mu.Lock()
	if dir, ok := ix.cache[pkg]; ok {
		ix.mu.Unlock()
		return dir, nil
	}
	sites := ix.sites
	ix.mu.Unlock()

	want := normalize(pkg)
	for _, site := range sites {
		entries, err := os.ReadDir(site)
		if err != nil {
			continue // unreadable or missing site dirs are skipped, not fatal
		}
		for _, e := range entries {
			if !e.IsDir() || normalize(e.Name()) != want {
				continue
			}
			dir := filepath.Join(site, e.Name())
			ix.mu.Lock()
			ix.cache[pkg] = dir
			ix.mu.Unlock()
			return dir, nil
		}
	}

	return "", &AnchorNotFoundError{Anchor: pkg, Sites: sites}
}

// Invalidate clears the location cache. Call after an install so that
// subsequent lookups see packages that appeared on disk.
func (ix *Index) Invalidate() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.cache = map[string]string{}
}

// Packages enumerates the package directories present across all sites,
// deduplicated and sorted.
func (ix *Index) Packages() []string {
	seen := map[string]bool{}
	for _, site := range ix.sites {
		entries, err := os.ReadDir(site)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
				seen[e.Name()] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "-", "_"))
}
