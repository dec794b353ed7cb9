package moves

import (
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// protect applies the one-turn Protect volatile to the user. Consecutive-use
// success-rate falloff is not modelled: every use builds the same
// guaranteed-success instruction list.
func protect(ctx Context) ([]instructions.BattleInstructions, error) {
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplyVolatile{Target: ctx.UserPos, Volatile: ident.VolatileProtect, Duration: 1}},
	}}, nil
}

// substitute costs a quarter of the user's max HP to create a Substitute
// with that much HP; it fails outright (a guaranteed no-op branch) if the
// user is already behind one or doesn't have the HP to spare, matching the
// real game's "already has a substitute" / "not enough HP" fail conditions.
func substitute(ctx Context) ([]instructions.BattleInstructions, error) {
	user := ctx.User()
	if user.HasVolatile(ident.VolatileSubstitute) {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	cost := user.MaxHP / 4
	if cost <= 0 || user.HP <= cost {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	return []instructions.BattleInstructions{{
		Percentage: 100,
		Instructions: []instructions.Instruction{
			&instructions.Damage{Target: ctx.UserPos, Amount: cost},
			&instructions.ChangeSubstituteHealth{Target: ctx.UserPos, Delta: cost},
			&instructions.ApplyVolatile{Target: ctx.UserPos, Volatile: ident.VolatileSubstitute},
		},
	}}, nil
}

// leechSeed applies the draining volatile to target unless it is a
// Grass-type (immune) or already seeded.
func leechSeed(ctx Context) ([]instructions.BattleInstructions, error) {
	t := ctx.Target()
	if t.HasType(ident.TypeGrass) || t.HasVolatile(ident.VolatileLeechSeed) {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplyVolatile{Target: ctx.TargetPos, Volatile: ident.VolatileLeechSeed}},
	}}, nil
}

// tauntMove locks the target out of status moves for a few turns.
func tauntMove(ctx Context) ([]instructions.BattleInstructions, error) {
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplyVolatile{Target: ctx.TargetPos, Volatile: ident.VolatileTaunt, Duration: 3}},
	}}, nil
}

