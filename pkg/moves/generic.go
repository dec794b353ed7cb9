package moves

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
	"goldbox-rpg/pkg/repository"
)

// GenericDamagingEffect builds the instruction branches shared by every
// damaging move that needs nothing beyond what its catalogue record
// already encodes: the hit itself, fixed recoil/drain fractions, and a
// chance-weighted secondary/self effect. It is the fallback Apply uses for
// any MoveID with no entry in registry, grounded on the Rust original's
// split between calculate_damage_modern (the hit) and the generic
// secondary-effect application that runs once per hit regardless of which
// move, before apply_move_effects special-cases the rest.
func GenericDamagingEffect(ctx Context) ([]instructions.BattleInstructions, error) {
	var hit []instructions.Instruction
	if ctx.DamageDealt > 0 {
		hit = append(hit, &instructions.Damage{Target: ctx.TargetPos, Amount: ctx.DamageDealt})
		hit = append(hit, fractionalInstructions(ctx, ctx.MoveData.Recoil, ctx.UserPos, false)...)
		hit = append(hit, fractionalInstructions(ctx, ctx.MoveData.Drain, ctx.UserPos, true)...)
	}
	branches := []instructions.BattleInstructions{{Percentage: 100, Instructions: hit}}

	branches = instructions.Combine(branches, secondaryBranches(ctx.MoveData.Secondary, ctx.TargetPos))
	branches = instructions.Combine(branches, secondaryBranches(ctx.MoveData.Self, ctx.UserPos))
	return branches, nil
}

// fractionalInstructions turns a [numerator, denominator] Recoil or Drain
// fraction of ctx.DamageDealt into a Damage (recoil, harms) or Heal (drain,
// heals) instruction on pos. A zero denominator or numerator means the
// move has no such effect.
func fractionalInstructions(ctx Context, frac [2]int, pos format.BattlePosition, heals bool) []instructions.Instruction {
	if frac[0] == 0 || frac[1] == 0 {
		return nil
	}
	amount := ctx.DamageDealt * frac[0] / frac[1]
	if amount <= 0 {
		return nil
	}
	if heals {
		return []instructions.Instruction{&instructions.Heal{Target: pos, Amount: amount}}
	}
	return []instructions.Instruction{&instructions.Damage{Target: pos, Amount: amount}}
}

// secondaryBranches turns a catalogue SecondaryEffect into the two weighted
// branches (effect applied / effect not applied) Combine needs, or nil when
// effect is absent (Combine treats a nil/empty branch set as a single
// guaranteed no-op branch).
func secondaryBranches(effect *repository.SecondaryEffect, pos format.BattlePosition) []instructions.BattleInstructions {
	if effect == nil {
		return nil
	}
	instrs := secondaryEffectInstructions(*effect, pos)
	if len(instrs) == 0 {
		return nil
	}
	chance := effect.Chance
	if chance <= 0 || chance >= 100 {
		return []instructions.BattleInstructions{{Percentage: 100, Instructions: instrs}}
	}
	return []instructions.BattleInstructions{
		{Percentage: float64(chance), Instructions: instrs},
		{Percentage: float64(100 - chance), Instructions: nil},
	}
}

// secondaryEffectInstructions converts one SecondaryEffect's status/
// volatile/boost payload into the instructions that apply it to pos.
func secondaryEffectInstructions(effect repository.SecondaryEffect, pos format.BattlePosition) []instructions.Instruction {
	var out []instructions.Instruction
	if effect.Status != ident.StatusNone {
		out = append(out, &instructions.ApplyStatus{Target: pos, Status: effect.Status})
	}
	if effect.HasVolatile {
		out = append(out, &instructions.ApplyVolatile{Target: pos, Volatile: effect.VolatileStatus})
	}
	if len(effect.Boosts) > 0 {
		deltas := make(map[ident.Stat]int, len(effect.Boosts))
		for stat, delta := range effect.Boosts {
			deltas[stat] = delta
		}
		out = append(out, &instructions.BoostStats{Target: pos, Deltas: deltas})
	}
	return out
}

// alreadyStatused reports whether p already holds a major status other than
// None, blocking most new status-inflicting moves (Rest is the one
// exception and is handled in its own function).
func alreadyStatused(p *battle.Pokemon) bool { return p.Status != ident.StatusNone }
