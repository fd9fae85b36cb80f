// SPDX-License-Identifier: MPL-2.0

package lazy

import (
	"context"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lazyunit/lazyunit/internal/depspec"
	"github.com/lazyunit/lazyunit/internal/installer"
	"github.com/lazyunit/lazyunit/pkg/unit"
)

type (
	// Group guards a set of unit names: loads inside its scope produce
	// placeholders, names lock on exit, and the group's declared
	// dependencies install at most once, on first real use of any guarded
	// unit.
	Group struct {
		requires    *depspec.Address
		needInstall bool
		units       map[string]*Placeholder
		caller      string
		baseDir     string
		finder      *groupFinder

		reg      *unit.Registry
		inst     installer.Adapter
		index    *depspec.Index
		recorder *installer.Recorder
		logger   *log.Logger
	}

	// Option customizes a Group at construction.
	Option func(*Group)
)

// WithRegistry points the group at a registry other than unit.Default.
func WithRegistry(r *unit.Registry) Option {
	return func(g *Group) { g.reg = r }
}

// WithInstaller substitutes the installer adapter.
func WithInstaller(a installer.Adapter) Option {
	return func(g *Group) { g.inst = a }
}

// WithIndex substitutes the site index used to resolve anchored addresses.
func WithIndex(ix *depspec.Index) Option {
	return func(g *Group) { g.index = ix }
}

// WithRecorder enables recording of completed installs.
func WithRecorder(r *installer.Recorder) Option {
	return func(g *Group) { g.recorder = r }
}

// WithLogger sets the logger used to report resolution progress.
func WithLogger(l *log.Logger) Option {
	return func(g *Group) { g.logger = l }
}

// NewGroup creates a group. requires, when non-empty, is a dependency
// address ("<anchor>:<relative-path>" or a bare path) naming a requirements
// file; it is resolved to a concrete file only when the first guarded unit is
// actually used. The caller's source file labels the group in diagnostics and
// anchors bare relative addresses.
func NewGroup(requires string, opts ...Option) (*Group, error) {
	g := &Group{
		units:  map[string]*Placeholder{},
		caller: "unknown",
		logger: log.Default(),
	}
	g.finder = &groupFinder{group: g}

	if _, file, _, ok := runtime.Caller(1); ok {
		g.caller = filepath.Base(file)
		g.baseDir = filepath.Dir(file)
	}

	if requires != "" {
		addr := depspec.ParseAddress(requires)
		g.requires = &addr
		g.needInstall = true
	}

	for _, opt := range opts {
		opt(g)
	}
	if g.reg == nil {
		g.reg = unit.Default
	}
	if g.index == nil {
		g.index = depspec.NewIndex()
	}
	if g.inst == nil && g.requires != nil {
		a, err := installer.NewCommandAdapter(installer.DefaultCommand, installer.WithLogger(g.logger))
		if err != nil {
			return nil, err
		}
		g.inst = a
	}

	return g, nil
}

// Caller returns the diagnostic label of the code that created the group.
func (g *Group) Caller() string { return g.caller }

// Enter pushes the group's hook to the front of the registry's resolution
// chain. Every load until Exit resolves to a placeholder owned by this group.
func (g *Group) Enter() {
	g.reg.PushFinder(g.finder)
}

// Exit pops the hook, which must still be the front of the chain, and
// locks every name the group registered.
func (g *Group) Exit() {
	g.reg.PopFinder(g.finder)
	g.Lock()
}

// Do runs fn between Enter and Exit. Exit runs on every path out of fn, so
// the hook is removed and the group's names lock even when fn fails.
func (g *Group) Do(fn func() error) error {
	g.Enter()
	defer g.Exit()
	return fn()
}

// Import loads a name through the group's registry. Inside the guarded scope
// this produces the group's placeholder for the name.
func (g *Group) Import(ctx context.Context, name string) (unit.Unit, error) {
	return g.reg.Load(ctx, name)
}

// Units returns the placeholders registered under this group, keyed by name.
func (g *Group) Units() map[string]*Placeholder {
	out := make(map[string]*Placeholder, len(g.units))
	for n, p := range g.units {
		out[n] = p
	}
	return out
}

// Lock seals every registered name whose binding is still this group's own
// placeholder. Names that already advanced past the placeholder are left
// alone. After locking, a plain load of a guarded name fails with a halted
// error instead of silently taking the unguarded, dependency-unsafe path.
func (g *Group) Lock() {
	for name, p := range g.units {
		g.reg.LockPlaceholder(name, p)
	}
}

// Unlock reverts every currently locked name of the group toward absent so
// the genuine loads can proceed. Guarded units may load each other, so the
// whole group unlocks together.
func (g *Group) Unlock() {
	for name := range g.units {
		g.reg.UnlockName(name)
	}
}

// Resolve installs the group's declared dependencies if that is still
// pending. The dependency address resolves to a concrete file here, not
// earlier, so an anchor package can be located before its own dependencies
// are installed. Safe to call any number of times, from any number of
// placeholders: after the first success it is a no-op, which is what bounds
// installation to at most once per group.
func (g *Group) Resolve(ctx context.Context) error {
	if !g.needInstall || g.requires == nil {
		return nil
	}

	reqFile, err := g.requires.Resolve(g.index, g.baseDir)
	if err != nil {
		return err
	}

	g.logger.Info("resolving dependencies", "group", g.caller, "requirements", reqFile)
	specs := []string{"-r", reqFile}

	plan, err := g.inst.DryRun(ctx, specs)
	if err != nil {
		return err
	}
	for _, e := range plan.Install {
		g.logger.Info("installing " + e.String())
	}

	if !plan.Empty() {
		if err := g.inst.Install(ctx, specs); err != nil {
			return err
		}
		g.index.Invalidate()
		g.record(reqFile, plan)
	}

	g.needInstall = false
	return nil
}

// record notes a completed install. Recording is observational: failures are
// logged, never surfaced.
func (g *Group) record(reqFile string, plan *installer.Plan) {
	if g.recorder == nil {
		return
	}
	rec := installer.Record{
		Caller:       g.caller,
		Requirements: reqFile,
		Installed:    time.Now(),
		Entries:      plan.Install,
	}
	if err := g.recorder.Append(rec); err != nil {
		g.logger.Warn("failed to record install", "err", err)
	}
}

// register adopts a placeholder produced by the group's loader. Idempotent
// per name.
func (g *Group) register(p *Placeholder) {
	if _, ok := g.units[p.Name()]; !ok {
		g.units[p.Name()] = p
	}
}
