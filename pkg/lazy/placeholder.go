// SPDX-License-Identifier: MPL-2.0

package lazy

import (
	"context"

	"github.com/lazyunit/lazyunit/pkg/unit"
)

// Placeholder stands in for a guarded unit. It is a two-state object: while
// unresolved, any attribute access runs the activation protocol (unlock the
// group's names, resolve dependencies, genuine load, copy members); once
// resolved, attribute access reads the copied members directly and the
// transition never reverses. Bookkeeping lives in struct fields and methods,
// outside the member namespace, so touching it cannot re-trigger activation.
type Placeholder struct {
	name     string
	group    *Group
	resolved bool
	real     unit.Unit
	members  map[string]any
}

var (
	_ unit.Unit     = (*Placeholder)(nil)
	_ unit.Deferred = (*Placeholder)(nil)
)

func newPlaceholder(name string, group *Group) *Placeholder {
	return &Placeholder{name: name, group: group}
}

// Name returns the guarded unit's name.
func (p *Placeholder) Name() string { return p.name }

// Resolved reports whether the real unit has been loaded.
func (p *Placeholder) Resolved() bool { return p.resolved }

// Real returns the genuine unit once resolved, nil before. It never triggers
// activation.
func (p *Placeholder) Real() unit.Unit { return p.real }

// Group returns the owning group.
func (p *Placeholder) Group() *Group { return p.group }

// Attrs lists the real unit's members once resolved. Before that it returns
// nil: listing is bookkeeping, not use, and must not trigger activation.
func (p *Placeholder) Attrs() []string {
	if !p.resolved {
		return nil
	}
	return p.real.Attrs()
}

// Attr returns a member of the guarded unit, activating it on first access.
// Any failure along the way (address resolution, installer, genuine load)
// surfaces here, at the access that wanted the member, and leaves the
// placeholder unresolved.
func (p *Placeholder) Attr(ctx context.Context, name string) (any, error) {
	if !p.resolved {
		if err := p.activate(ctx); err != nil {
			return nil, err
		}
	}
	v, ok := p.members[name]
	if !ok {
		return nil, &unit.NoSuchMemberError{Unit: p.name, Member: name}
	}
	return v, nil
}

// Materialize forces activation and returns the genuine unit. Equivalent to
// a first attribute access without naming any particular member.
func (p *Placeholder) Materialize(ctx context.Context) (unit.Unit, error) {
	if !p.resolved {
		if err := p.activate(ctx); err != nil {
			return nil, err
		}
	}
	return p.real, nil
}

// activate runs the one-way unresolved → resolved transition: unlock the
// group's names, resolve dependencies (installs at most once per group),
// genuine load through the un-hooked path, copy the real unit's members.
// The genuine load bypasses the hook chain, so activation cannot re-enter
// itself through the name it is resolving.
func (p *Placeholder) activate(ctx context.Context) error {
	p.group.Unlock()

	if err := p.group.Resolve(ctx); err != nil {
		return err
	}

	real, err := p.group.reg.LoadGenuine(ctx, p.name)
	if err != nil {
		return err
	}

	members := map[string]any{}
	for _, n := range real.Attrs() {
		v, err := real.Attr(ctx, n)
		if err != nil {
			return err
		}
		members[n] = v
	}

	p.real = real
	p.members = members
	p.resolved = true
	return nil
}

// Materialize resolves u to its genuine unit: deferred units activate if
// needed, anything else is returned as-is.
func Materialize(ctx context.Context, u unit.Unit) (unit.Unit, error) {
	if p, ok := u.(*Placeholder); ok {
		return p.Materialize(ctx)
	}
	return unit.Real(u), nil
}
