package moves

import (
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// healFraction builds the single branch for a move that restores a flat
// fraction of the user's max HP, used directly by Recover/Roost/Soft-
// Boiled/Milk Drink/Slack Off and as the building block for the
// weather-dependent trio.
func healFraction(pos format.BattlePosition, maxHP int, numerator, denominator int) ([]instructions.BattleInstructions, error) {
	amount := maxHP * numerator / denominator
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.Heal{Target: pos, Amount: amount}},
	}}, nil
}

func recoverMove(ctx Context) ([]instructions.BattleInstructions, error) {
	return healFraction(ctx.UserPos, ctx.User().MaxHP, 1, 2)
}

// roost grounds a Flying-type user for the turn in addition to healing
// half its max HP (spec.md's type-interaction edge cases): the type change
// is temporary and reverted by the end-of-turn pipeline clearing the
// volatile, not by this instruction list.
func roost(ctx Context) ([]instructions.BattleInstructions, error) {
	branches, err := healFraction(ctx.UserPos, ctx.User().MaxHP, 1, 2)
	if err != nil {
		return nil, err
	}
	branches[0].Instructions = append(branches[0].Instructions, &instructions.ApplyVolatile{Target: ctx.UserPos, Volatile: ident.VolatileRoost, Duration: 1})
	return branches, nil
}

// weatherHeal implements the Moonlight/Synthesis/Morning Sun/Shore Up
// family: a 2/3 heal in their favored weather, 1/4 in any other weather,
// and the usual 1/2 with no weather active at all. Grounded on the Rust
// original's per-move weather branching, generalized into one helper keyed
// by which weather condition is "favored" for this particular move.
func weatherHeal(favored ident.Weather) func(Context) ([]instructions.BattleInstructions, error) {
	return func(ctx Context) ([]instructions.BattleInstructions, error) {
		num, den := 1, 2
		switch ctx.State.Field.Weather {
		case ident.WeatherNone:
			num, den = 1, 2
		case favored:
			num, den = 2, 3
		default:
			num, den = 1, 4
		}
		return healFraction(ctx.UserPos, ctx.User().MaxHP, num, den)
	}
}

func aquaRing(ctx Context) ([]instructions.BattleInstructions, error) {
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplyVolatile{Target: ctx.UserPos, Volatile: ident.VolatileAquaRing}},
	}}, nil
}
