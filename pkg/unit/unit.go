// SPDX-License-Identifier: MPL-2.0

package unit

import (
	"context"
	"sort"
)

type (
	// Unit is a loadable, named piece of code: a collection of named members
	// (functions, values, sub-objects) exposed behind a single name.
	Unit interface {
		// Name returns the unit's registered name.
		Name() string

		// Attr returns the member bound to the given name. The context is
		// threaded through because attribute access on a deferred unit may
		// block on dependency installation and the real load.
		Attr(ctx context.Context, name string) (any, error)

		// Attrs returns the names of all exposed members, sorted.
		Attrs() []string
	}

	// Deferred is implemented by stand-in units whose real content is only
	// produced on first attribute access. The registry uses it to decide
	// whether a unit produced by a Finder binds as a placeholder.
	Deferred interface {
		Unit

		// Resolved reports whether the real unit has been loaded.
		Resolved() bool

		// Real returns the genuine unit once resolved, or nil before that.
		// It never triggers resolution; callers that want to force it should
		// access an attribute instead.
		Real() Unit
	}

	// Module is the plain Unit implementation produced by providers.
	Module struct {
		name    string
		members map[string]any
	}
)

// New builds a real unit from a member table. The table is not copied; the
// caller must not mutate it afterwards.
func New(name string, members map[string]any) *Module {
	if members == nil {
		members = map[string]any{}
	}
	return &Module{name: name, members: members}
}

// Name returns the unit's name.
func (m *Module) Name() string { return m.name }

// Attr returns the named member, or a NoSuchMemberError.
func (m *Module) Attr(_ context.Context, name string) (any, error) {
	v, ok := m.members[name]
	if !ok {
		return nil, &NoSuchMemberError{Unit: m.name, Member: name}
	}
	return v, nil
}

// Attrs returns the sorted member names.
func (m *Module) Attrs() []string {
	names := make([]string, 0, len(m.members))
	for n := range m.members {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Real unwraps a deferred unit to the genuine one when it has been resolved.
// For anything else (including an unresolved placeholder) it returns u as-is.
func Real(u Unit) Unit {
	if d, ok := u.(Deferred); ok && d.Resolved() {
		return d.Real()
	}
	return u
}
