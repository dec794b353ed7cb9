// Package instructions defines the tagged union of atomic, reversible state
// deltas ("instructions") produced by the turn engine and move effects, and
// the BattleInstructions container that bundles a weighted branch of them
// (spec.md §3 "Instruction entity", §9 "Reversibility"). Every instruction
// variant carries enough pre-image data to invert itself; Apply/Revert are
// the composite mechanism a caller (a tree search, a test) uses to explore
// and back out of a branch.
package instructions
