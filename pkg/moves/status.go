package moves

import (
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// statusMove builds the single branch for a pure status-inflicting move:
// no damage, the named major status applied to target unless blocked by a
// type immunity or an existing status. Grounded on the Rust original's
// apply_move_effects arms for thunderwave/toxic/willowisp/stunspore/
// poisonpowder/glare/sleeppowder/spore, generalized into one helper instead
// of one near-identical arm per move name.
func statusMove(ctx Context, status ident.MajorStatus, immune bool, duration int) ([]instructions.BattleInstructions, error) {
	if immune || alreadyStatused(ctx.Target()) {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplyStatus{Target: ctx.TargetPos, Status: status, Duration: duration}},
	}}, nil
}

func thunderWave(ctx Context) ([]instructions.BattleInstructions, error) {
	t := ctx.Target()
	immune := t.HasType(ident.TypeElectric) || (ctx.State.Format.Generation >= 7 && t.HasType(ident.TypeGround))
	return statusMove(ctx, ident.StatusParalyze, immune, 0)
}

func stunSpore(ctx Context) ([]instructions.BattleInstructions, error) {
	t := ctx.Target()
	immune := t.HasType(ident.TypeGrass) || t.HasType(ident.TypeElectric) ||
		(ctx.State.Format.Generation >= 7 && t.HasType(ident.TypeGround))
	return statusMove(ctx, ident.StatusParalyze, immune, 0)
}

func glare(ctx Context) ([]instructions.BattleInstructions, error) {
	t := ctx.Target()
	immune := ctx.State.Format.Generation >= 7 && t.HasType(ident.TypeGround)
	return statusMove(ctx, ident.StatusParalyze, immune, 0)
}

func toxic(ctx Context) ([]instructions.BattleInstructions, error) {
	t := ctx.Target()
	immune := t.HasType(ident.TypePoison) || t.HasType(ident.TypeSteel)
	return statusMove(ctx, ident.StatusBadlyPoisoned, immune, 0)
}

func poisonPowder(ctx Context) ([]instructions.BattleInstructions, error) {
	t := ctx.Target()
	immune := t.HasType(ident.TypeGrass) || t.HasType(ident.TypePoison) || t.HasType(ident.TypeSteel)
	return statusMove(ctx, ident.StatusPoison, immune, 0)
}

func willOWisp(ctx Context) ([]instructions.BattleInstructions, error) {
	t := ctx.Target()
	immune := t.HasType(ident.TypeFire)
	return statusMove(ctx, ident.StatusBurn, immune, 0)
}

// sleepMove is shared by Sleep Powder/Spore: Grass-types resist the powder
// delivery, and sleep uses a 1-3 turn counter (spec.md §4.4 step 7 ticks it
// down at end of turn).
func sleepMove(ctx Context) ([]instructions.BattleInstructions, error) {
	t := ctx.Target()
	immune := t.HasType(ident.TypeGrass)
	return statusMove(ctx, ident.StatusSleep, immune, 3)
}
