package moves

import (
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// boostMove builds the single guaranteed branch for a pure stat-stage move
// (no damage, no accuracy roll at the instruction-generation layer since
// self-targeted boosts never miss): Swords Dance, Dragon Dance, Nasty Plot,
// Agility, Growth and the self family; Growl, Leer, Tail Whip, String Shot
// and the target-debuff family. Grounded on the Rust original's
// apply_move_effects arms for the same move names, generalized from one
// near-identical arm per move into a single deltas-driven helper.
func boostMove(pos format.BattlePosition, deltas map[ident.Stat]int) ([]instructions.BattleInstructions, error) {
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.BoostStats{Target: pos, Deltas: deltas}},
	}}, nil
}

func swordsDance(ctx Context) ([]instructions.BattleInstructions, error) {
	return boostMove(ctx.UserPos, map[ident.Stat]int{ident.StatAtk: 2})
}

func dragonDance(ctx Context) ([]instructions.BattleInstructions, error) {
	return boostMove(ctx.UserPos, map[ident.Stat]int{ident.StatAtk: 1, ident.StatSpe: 1})
}

func nastyPlot(ctx Context) ([]instructions.BattleInstructions, error) {
	return boostMove(ctx.UserPos, map[ident.Stat]int{ident.StatSpA: 2})
}

func agility(ctx Context) ([]instructions.BattleInstructions, error) {
	return boostMove(ctx.UserPos, map[ident.Stat]int{ident.StatSpe: 2})
}

func growth(ctx Context) ([]instructions.BattleInstructions, error) {
	delta := 1
	if ctx.State.Field.Weather == ident.WeatherSun || ctx.State.Field.Weather == ident.WeatherHarshSun {
		delta = 2
	}
	return boostMove(ctx.UserPos, map[ident.Stat]int{ident.StatAtk: delta, ident.StatSpA: delta})
}

func calmMind(ctx Context) ([]instructions.BattleInstructions, error) {
	return boostMove(ctx.UserPos, map[ident.Stat]int{ident.StatSpA: 1, ident.StatSpD: 1})
}

func bulkUp(ctx Context) ([]instructions.BattleInstructions, error) {
	return boostMove(ctx.UserPos, map[ident.Stat]int{ident.StatAtk: 1, ident.StatDef: 1})
}

func growl(ctx Context) ([]instructions.BattleInstructions, error) {
	return boostMove(ctx.TargetPos, map[ident.Stat]int{ident.StatAtk: -1})
}

func leer(ctx Context) ([]instructions.BattleInstructions, error) {
	return boostMove(ctx.TargetPos, map[ident.Stat]int{ident.StatDef: -1})
}

func tailWhip(ctx Context) ([]instructions.BattleInstructions, error) {
	return boostMove(ctx.TargetPos, map[ident.Stat]int{ident.StatDef: -1})
}

func stringShot(ctx Context) ([]instructions.BattleInstructions, error) {
	return boostMove(ctx.TargetPos, map[ident.Stat]int{ident.StatSpe: -2})
}
