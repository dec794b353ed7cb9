package instructions

import (
	"fmt"
	"strings"

	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
)

// BattleInstructions is one possible turn outcome: a percentage weight and
// the ordered list of atomic instructions that, if selected, advance state
// by exactly that much (spec.md §3 "Instruction set"). Instruction sets
// returned together by generate_instructions are independent Monte-Carlo
// outcomes, not alternatives to be merged.
type BattleInstructions struct {
	Percentage   float64
	Instructions []Instruction
}

// AffectedPositions returns the deduplicated set of positions touched by
// any instruction in this branch.
func (bi BattleInstructions) AffectedPositions() []format.BattlePosition {
	seen := make(map[format.BattlePosition]bool)
	var out []format.BattlePosition
	for _, ins := range bi.Instructions {
		for _, pos := range ins.Positions() {
			if !seen[pos] {
				seen[pos] = true
				out = append(out, pos)
			}
		}
	}
	return out
}

// Apply mutates s by replaying every instruction in order. This is the
// public apply_instructions operation of spec.md §6: in-place mutation, no
// branching.
func Apply(s *battle.State, list []Instruction) {
	for _, ins := range list {
		ins.Apply(s)
	}
}

// ApplyBattleInstructions applies one branch's instruction list to s.
func ApplyBattleInstructions(s *battle.State, bi BattleInstructions) {
	Apply(s, bi.Instructions)
}

// Revert undoes a previously-applied instruction list by reverting in
// reverse order, restoring s to its pre-application value (spec.md §8
// round-trip law).
func Revert(s *battle.State, list []Instruction) {
	for i := len(list) - 1; i >= 0; i-- {
		list[i].Revert(s)
	}
}

// NormalizeWeights scales a set of branch percentages so they sum to
// 100 within the tolerance spec.md §8 requires (99.99..100.01), dropping
// any branch whose weight rounds to 0. It is the Branch Combiner's final
// step (spec.md §4.3 step 5).
func NormalizeWeights(branches []BattleInstructions) []BattleInstructions {
	var total float64
	for _, b := range branches {
		total += b.Percentage
	}
	if total <= 0 {
		return nil
	}
	out := make([]BattleInstructions, 0, len(branches))
	for _, b := range branches {
		if b.Percentage <= 0 {
			continue
		}
		b.Percentage = b.Percentage * 100.0 / total
		out = append(out, b)
	}
	return out
}

// Combine produces the cross product of two independent branch sets (one
// per acting Pokémon this turn), per spec.md §4.3 step 5: each pair's
// percentage is the product of the parents' divided by 100, and its
// instruction list is the concatenation of the parents'. An empty parent
// list is treated as a single 100% no-op branch.
func Combine(first, second []BattleInstructions) []BattleInstructions {
	if len(first) == 0 {
		first = []BattleInstructions{{Percentage: 100}}
	}
	if len(second) == 0 {
		second = []BattleInstructions{{Percentage: 100}}
	}
	out := make([]BattleInstructions, 0, len(first)*len(second))
	for _, a := range first {
		for _, b := range second {
			pct := a.Percentage * b.Percentage / 100.0
			if pct <= 0 {
				continue
			}
			merged := make([]Instruction, 0, len(a.Instructions)+len(b.Instructions))
			merged = append(merged, a.Instructions...)
			merged = append(merged, b.Instructions...)
			out = append(out, BattleInstructions{Percentage: pct, Instructions: merged})
		}
	}
	return NormalizeWeights(out)
}

// AppendAll returns a copy of branches with extra appended to every
// branch's instruction list, used to graft the end-of-turn pipeline's
// output onto every surviving turn branch (spec.md §4.3 step 6).
func AppendAll(branches []BattleInstructions, extra []Instruction) []BattleInstructions {
	out := make([]BattleInstructions, len(branches))
	for i, b := range branches {
		merged := make([]Instruction, 0, len(b.Instructions)+len(extra))
		merged = append(merged, b.Instructions...)
		merged = append(merged, extra...)
		out[i] = BattleInstructions{Percentage: b.Percentage, Instructions: merged}
	}
	return out
}

// Debug renders a branch's instruction list in the debug form tests use as
// golden output (spec.md §6).
func (bi BattleInstructions) Debug() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.2f%%: ", bi.Percentage)
	parts := make([]string, len(bi.Instructions))
	for i, ins := range bi.Instructions {
		parts[i] = ins.Kind().String()
	}
	b.WriteString(strings.Join(parts, ", "))
	return b.String()
}
