// Package engine is the turn engine (spec.md §4.3): it takes a BattleState
// and a pair of player choices, resolves auto-targeting, determines move
// order, executes both actions (switches with their entry/exit effects,
// moves through the pkg/moves registry with accuracy and critical-hit
// branching), combines the two actions' outcome trees into one weighted
// BattleInstructions set, appends the pkg/endofturn pipeline to every
// branch, and increments the turn counter.
package engine
