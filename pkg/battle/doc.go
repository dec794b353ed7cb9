// Package battle defines the mutable battle world: two sides of up to three
// active Pokémon each, field-wide conditions, and the turn counter
// (spec.md §3). State is the sole piece of mutable data the engine
// operates on; it is deep-clonable in O(team size) and carries no hidden
// global state, so callers can fork a branch, apply an instruction list,
// and compare against a sibling branch built from the same clone.
package battle
