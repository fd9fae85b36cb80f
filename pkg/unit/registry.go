// SPDX-License-Identifier: MPL-2.0

package unit

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

const (
	// BindingAbsent means the name has never been bound (or was unlocked).
	BindingAbsent BindingState = iota
	// BindingPlaceholder means a lazy group's stand-in occupies the name.
	BindingPlaceholder
	// BindingLocked means a lazy group has sealed the name: plain loads fail
	// with a HaltedError until the name's placeholder unlocks it.
	BindingLocked
	// BindingResolved means the genuine unit occupies the name.
	BindingResolved
)

type (
	// BindingState is the per-name state of the registry's state machine.
	// Legal transitions are absent → placeholder → locked → resolved; a name
	// never reverts once resolved.
	BindingState int

	// Provider is the ordinary supply of a unit: invoked by the unguarded
	// load path the first time its name is requested.
	Provider func(ctx context.Context) (Unit, error)

	// Loader materializes a unit for a name, as handed out by a Finder.
	Loader interface {
		Load(ctx context.Context, name string) (Unit, error)
	}

	// Finder is an interception hook consulted before providers. A nil
	// Loader delegates to the next hook in the chain.
	Finder interface {
		Find(name string) Loader
	}

	// Registry is the process-wide mapping from unit names to bindings,
	// together with the front-insertion chain of Finder hooks.
	Registry struct {
		mu        sync.Mutex
		bindings  map[string]binding
		providers map[string]Provider
		finders   []Finder // index 0 is the front of the chain
	}

	binding struct {
		state BindingState
		unit  Unit
	}
)

// String returns a short state name for diagnostics.
func (s BindingState) String() string {
	switch s {
	case BindingAbsent:
		return "absent"
	case BindingPlaceholder:
		return "placeholder"
	case BindingLocked:
		return "locked"
	case BindingResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings:  map[string]binding{},
		providers: map[string]Provider{},
	}
}

// Default is the process-wide registry used by the package-level wrappers
// and, unless overridden, by lazy groups.
var Default = NewRegistry()

// Register installs the provider for a name on the default registry.
func Register(name string, p Provider) { Default.Register(name, p) }

// Load resolves a name through the default registry's ordinary load path.
func Load(ctx context.Context, name string) (Unit, error) { return Default.Load(ctx, name) }

// State reports the binding state of a name on the default registry.
func State(name string) BindingState { return Default.State(name) }

// Register installs the provider for a name. Re-registering replaces the
// previous provider but never touches an existing binding.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// PushFinder inserts a hook at the front of the chain so that it is consulted
// before every previously installed hook.
func (r *Registry) PushFinder(f Finder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finders = append([]Finder{f}, r.finders...)
}

// PopFinder removes a hook, which must be the current front of the chain.
// Removing any other hook is a nesting violation and panics: groups must exit
// in strict reverse order of entering.
func (r *Registry) PopFinder(f Finder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.finders) == 0 || r.finders[0] != f {
		panic(fmt.Sprintf("unit: PopFinder: hook %T is not the front of the resolution chain; groups must exit in reverse order of entering", f))
	}
	r.finders = r.finders[1:]
}

// State reports the binding state of a name.
func (r *Registry) State(name string) BindingState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bindings[name].state
}

// Load resolves a name through the ordinary load path: existing binding
// first, then the hook chain front-to-back, then the registered provider.
// A locked name fails with a HaltedError.
func (r *Registry) Load(ctx context.Context, name string) (Unit, error) {
	r.mu.Lock()
	b := r.bindings[name]
	switch b.state {
	case BindingLocked:
		r.mu.Unlock()
		return nil, &HaltedError{Name: name}
	case BindingPlaceholder, BindingResolved:
		r.mu.Unlock()
		return b.unit, nil
	}
	finders := slices.Clone(r.finders)
	r.mu.Unlock()

	// Hooks and providers run unlocked: loading one unit may load others.
	for _, f := range finders {
		l := f.Find(name)
		if l == nil {
			continue
		}
		u, err := l.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		r.bind(name, u)
		return u, nil
	}

	return r.loadFromProvider(ctx, name)
}

// LoadGenuine resolves a name while skipping the hook chain and ignoring a
// placeholder binding. It is the load path a placeholder itself uses once its
// group has unlocked the name and resolved dependencies; the resulting
// genuine unit replaces whatever occupied the name before.
func (r *Registry) LoadGenuine(ctx context.Context, name string) (Unit, error) {
	r.mu.Lock()
	b := r.bindings[name]
	switch b.state {
	case BindingLocked:
		r.mu.Unlock()
		return nil, &HaltedError{Name: name}
	case BindingResolved:
		r.mu.Unlock()
		return b.unit, nil
	}
	r.mu.Unlock()

	return r.loadFromProvider(ctx, name)
}

// LockPlaceholder seals a name iff its current binding is still the given
// placeholder. A binding that already advanced past the placeholder is left
// untouched. Reports whether the name was locked.
func (r *Registry) LockPlaceholder(name string, p Unit) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.bindings[name]
	if b.state != BindingPlaceholder || b.unit != p {
		return false
	}
	r.bindings[name] = binding{state: BindingLocked, unit: p}
	return true
}

// UnlockName reverts a locked name toward absent so that a subsequent genuine
// load can proceed. Names in any other state are left untouched. Reports
// whether the name was unlocked.
func (r *Registry) UnlockName(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bindings[name].state != BindingLocked {
		return false
	}
	delete(r.bindings, name)
	return true
}

func (r *Registry) loadFromProvider(ctx context.Context, name string) (Unit, error) {
	r.mu.Lock()
	p := r.providers[name]
	r.mu.Unlock()
	if p == nil {
		return nil, &NotFoundError{Name: name}
	}
	u, err := p(ctx)
	if err != nil {
		return nil, err
	}
	r.bindResolved(name, u)
	return u, nil
}

// bind records a hook-produced unit. A deferred unit that has not resolved
// yet binds as a placeholder; anything else binds as resolved.
func (r *Registry) bind(name string, u Unit) {
	state := BindingResolved
	if d, ok := u.(Deferred); ok && !d.Resolved() {
		state = BindingPlaceholder
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bindings[name].state == BindingResolved {
		return
	}
	r.bindings[name] = binding{state: state, unit: u}
}

func (r *Registry) bindResolved(name string, u Unit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[name] = binding{state: BindingResolved, unit: u}
}
