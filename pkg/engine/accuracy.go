package engine

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/repository"
)

// critStageChance is the spec.md §4.2 critical-hit rate table: stage 0
// through 3+ map to 1/24, 1/8, 1/2, 1 respectively.
var critStageChance = [4]float64{1.0 / 24, 1.0 / 8, 1.0 / 2, 1}

// critChance resolves a move's effective critical-hit probability: the
// catalogue's CritRatio plus Scope Lens/Razor Claw (+1) and Super Luck
// (+1), clamped to the table, or 1.0 outright for WillCrit/always-crit
// moves (Frost Breath, Storm Throw).
func critChance(attacker *battle.Pokemon, mv repository.MoveRecord) float64 {
	if mv.WillCrit {
		return 1
	}
	stage := mv.CritRatio
	if attacker.Item == ident.NewItem("scopelens") || attacker.Item == ident.NewItem("razorclaw") {
		stage++
	}
	if hasAbility(attacker, "superluck") {
		stage++
	}
	if stage < 0 {
		stage = 0
	}
	if stage >= len(critStageChance) {
		stage = len(critStageChance) - 1
	}
	return critStageChance[stage]
}

// minDamageRoll and maxDamageRoll are the two branches spec.md §4.2 step 8
// requires in place of the full 16-way roll table: "branching mode outputs
// min and max rolls as two branches." Each carries half the weight of
// whichever crit/non-crit branch it sits under.
const (
	minDamageRoll = 0.85
	maxDamageRoll = 1.00
)
