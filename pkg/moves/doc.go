// Package moves is the move-effect registry (spec.md §4.1): a dispatch
// table from ident.MoveID to the Go function that builds the probabilistic
// instruction branches for that move's non-generic behavior, layered above
// pkg/damage, pkg/hooks, pkg/instructions, pkg/repository, pkg/typechart,
// pkg/battle, pkg/format and pkg/ident.
//
// Most damaging moves need nothing beyond the generic chance-weighted
// secondary/self effect and drain/recoil handling already encoded in their
// repository.MoveRecord; GenericDamagingEffect covers those without a named
// entry in the registry. Moves whose behavior can't be expressed from
// catalogue data alone (status-only moves, weather/terrain/hazard setters,
// protection, healing fractions that vary by weather) get a named function
// here. Anything not covered returns ErrMoveNotRegistered rather than a
// guess, per the representative-subset scoping decision recorded in
// DESIGN.md.
package moves
