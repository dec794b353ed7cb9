package engine

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/ident"
)

// flingPower looks up the user's held item's Fling base power, 0 if it
// isn't holding anything flingable or the catalogue has no entry for it.
func flingPower(env Env, user *battle.Pokemon) int {
	if user.Item == ident.Item("") {
		return 0
	}
	item, err := env.Repo.Item(env.Generation, user.Item)
	if err != nil {
		return 0
	}
	return item.FlingPower
}

// variableBasePower resolves the handful of moves whose base power spec.md
// §4.1's "variable power" family computes from battle state rather than
// reading a fixed catalogue value, returning ok=false for everything else
// (including moves this engine doesn't special-case from that family, e.g.
// Sucker Punch's going_first dependency, left as a catalogue-fixed power
// until a representative need to branch on move choice shows up).
func variableBasePower(moveID ident.MoveID, basePower int, user, target *battle.Pokemon, env Env) (power int, ok bool) {
	switch moveID {
	case ident.NewMoveID("fling"):
		if p := flingPower(env, user); p > 0 {
			return p, true
		}
		return 0, false
	case ident.NewMoveID("gyroball"):
		userSpe := user.EffectiveStat(ident.StatSpe)
		if userSpe <= 0 {
			return 150, true
		}
		p := int(25 * target.EffectiveStat(ident.StatSpe) / userSpe)
		if p < 1 {
			p = 1
		}
		if p > 150 {
			p = 150
		}
		return p, true
	case ident.NewMoveID("lowkick"), ident.NewMoveID("grassknot"):
		return weightBasedPower(target.Weight), true
	case ident.NewMoveID("knockoff"):
		if target.Item != ident.Item("") {
			return basePower * 3 / 2, true
		}
		return 0, false
	}
	return 0, false
}

// weightBasedPower is Low Kick/Grass Knot's weight-to-power table
// (spec.md §4.1), keyed on the target's weight in kilograms.
func weightBasedPower(weightKg float64) int {
	switch {
	case weightKg < 10:
		return 20
	case weightKg < 25:
		return 40
	case weightKg < 50:
		return 60
	case weightKg < 100:
		return 80
	case weightKg < 200:
		return 100
	default:
		return 120
	}
}
