package moves

import (
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// counterRetaliate builds the Counter family's damage branch: the user
// retaliates for a multiple of the last hit recorded on it this same turn
// (pkg/battle.Pokemon.LastHit*, stamped by pkg/engine right after a hit
// lands), provided that hit's category matches category (nil accepts
// either, for Metal Burst/Comeuppance). No qualifying hit this turn — the
// user moved first, or only took the wrong category of damage — fails
// outright, matching the real game's "Counter/Mirror Coat has no effect"
// message.
func counterRetaliate(ctx Context, multiplier float64, category *ident.MoveCategory) ([]instructions.BattleInstructions, error) {
	user := ctx.User()
	if user == nil || user.LastHitTurn != ctx.State.Turn || user.LastHitDamage <= 0 {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	if category != nil && user.LastHitCategory != *category {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}

	amount := int(float64(user.LastHitDamage) * multiplier)
	if amount <= 0 {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.Damage{Target: ctx.TargetPos, Amount: amount}},
	}}, nil
}

func counter(ctx Context) ([]instructions.BattleInstructions, error) {
	category := ident.CategoryPhysical
	return counterRetaliate(ctx, 2, &category)
}

func mirrorCoat(ctx Context) ([]instructions.BattleInstructions, error) {
	category := ident.CategorySpecial
	return counterRetaliate(ctx, 2, &category)
}

func metalBurstFamily(ctx Context) ([]instructions.BattleInstructions, error) {
	return counterRetaliate(ctx, 1.5, nil)
}
