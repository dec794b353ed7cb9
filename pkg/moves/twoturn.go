package moves

import (
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// twoTurnRelease reports whether this use of a charging move should resolve
// immediately: it already spent last turn charging, it's holding Power
// Herb (a one-time skip), or skipCondition (Sun for Solar Beam, being
// underground/airborne is irrelevant to this family) waives the charge
// turn outright.
func twoTurnRelease(ctx Context, charging bool, skipCondition bool) bool {
	return charging || ctx.User().Item == ident.NewItem("powerherb") || skipCondition
}

// chargeUp is the shared charge-turn branch: apply the two-turn volatile
// and deal no damage. semiInvulnerable additionally grants the Dig/Fly-
// style dodge for moves that hide the user away rather than just winding
// up in place (Solar Beam has none).
func chargeUp(ctx Context, semiInvulnerable bool) ([]instructions.BattleInstructions, error) {
	instrs := []instructions.Instruction{
		&instructions.ApplyVolatile{Target: ctx.UserPos, Volatile: ident.VolatileChargingTwoTurn, Duration: 1},
	}
	if semiInvulnerable {
		instrs = append(instrs, &instructions.ApplyVolatile{Target: ctx.UserPos, Volatile: ident.VolatileSemiInvulnerable, Duration: 1})
	}
	return []instructions.BattleInstructions{{Percentage: 100, Instructions: instrs}}, nil
}

// release is the shared strike-turn branch: clear the charging volatiles
// (if any were pending, i.e. this isn't a Power Herb/weather-skipped
// instant use) and deal the damage pkg/damage already computed.
func release(ctx Context, charging, semiInvulnerable bool) ([]instructions.BattleInstructions, error) {
	var out []instructions.Instruction
	if charging {
		out = append(out, &instructions.RemoveVolatile{Target: ctx.UserPos, Volatile: ident.VolatileChargingTwoTurn})
		if semiInvulnerable {
			out = append(out, &instructions.RemoveVolatile{Target: ctx.UserPos, Volatile: ident.VolatileSemiInvulnerable})
		}
	}
	if ctx.DamageDealt > 0 {
		out = append(out, &instructions.Damage{Target: ctx.TargetPos, Amount: ctx.DamageDealt})
	}
	return []instructions.BattleInstructions{{Percentage: 100, Instructions: out}}, nil
}

// solarBeam is the representative charge-then-release move (spec.md §4.1
// "two-turn charge"): it charges on the first use, releasing immediately
// instead under Sun or while holding Power Herb.
func solarBeam(ctx Context) ([]instructions.BattleInstructions, error) {
	user := ctx.User()
	charging := user.HasVolatile(ident.VolatileChargingTwoTurn)
	if !twoTurnRelease(ctx, charging, ctx.State.Field.Weather == ident.WeatherSun) {
		return chargeUp(ctx, false)
	}
	return release(ctx, charging, false)
}

// dig is the semi-invulnerable variant of the same family (also covers
// Fly/Dive/Phantom Force/Shadow Force's shape, modulo the specific immunity
// each one grants while hidden, which pkg/typechart's accuracy check would
// need to special-case to fully land): charges underground, dodging nearly
// every move, then strikes next turn.
func dig(ctx Context) ([]instructions.BattleInstructions, error) {
	user := ctx.User()
	charging := user.HasVolatile(ident.VolatileChargingTwoTurn)
	if !twoTurnRelease(ctx, charging, false) {
		return chargeUp(ctx, true)
	}
	return release(ctx, charging, true)
}
