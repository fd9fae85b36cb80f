// SPDX-License-Identifier: MPL-2.0

package lazy

import (
	"context"

	"github.com/lazyunit/lazyunit/pkg/unit"
)

type (
	// groupFinder is the resolution hook a group installs while entered. It
	// answers every lookup, for any name, with a placeholder-producing
	// loader: within a guarded scope, referencing a name must never do real
	// work; only attribute access may.
	groupFinder struct {
		group *Group
	}

	groupLoader struct {
		group *Group
	}
)

// Find always produces a loader bound to the owning group. It never fails
// and never delegates to the next hook in the chain.
func (f *groupFinder) Find(string) unit.Loader {
	return &groupLoader{group: f.group}
}

// Load materializes the group's placeholder for a name, creating and
// registering one on first sight.
func (l *groupLoader) Load(_ context.Context, name string) (unit.Unit, error) {
	if p, ok := l.group.units[name]; ok {
		return p, nil
	}
	p := newPlaceholder(name, l.group)
	l.group.register(p)
	return p, nil
}
