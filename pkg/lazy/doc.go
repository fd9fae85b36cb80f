// SPDX-License-Identifier: MPL-2.0

// Package lazy defers activation of named unit groups until first real use.
//
// A Group scopes a set of unit loads: while the group is entered, every load
// resolves to an inert placeholder instead of running a provider. On exit the
// group locks its names so that plain loads fail loudly rather than bypassing
// the guard. The first attribute access on a placeholder unlocks its group's
// names, installs the group's declared dependencies (at most once per group),
// performs the genuine load, and from then on the placeholder behaves as the
// real unit.
//
//	g, err := lazy.NewGroup("libcompute:requirements.txt")
//	...
//	var compute unit.Unit
//	err = g.Do(func() error {
//		compute, err = g.Import(ctx, "libcompute")
//		return err
//	})
//	...
//	apply, err := compute.Attr(ctx, "apply")
//	//                     ^ first attribute access installs the
//	//                       requirements and loads the real unit
package lazy
