package endofturn

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/instructions"
)

// futureSightResolution ticks every pending Future Sight/Doom Desire hit
// down by one turn, dealing its stored damage and clearing the entry once
// Turns reaches 0 (spec.md §4.4 step 4). The damage was computed at set
// time against the attacker's stats, so resolution just applies it to
// whoever currently occupies the target slot, fainted or not already
// accounted for by earlier steps in the same pipeline pass.
func futureSightResolution(s *battle.State) []instructions.Instruction {
	var out []instructions.Instruction
	for side := 0; side < 2; side++ {
		// Iterated by slot index rather than ranging the map directly so the
		// resulting instruction order is deterministic turn to turn.
		for slot := 0; slot < len(s.Sides[side].Active); slot++ {
			fs, ok := s.Sides[side].FutureSights[slot]
			if !ok {
				continue
			}
			pos := format.BattlePosition{Side: side, Slot: slot}
			if fs.Turns > 1 {
				out = append(out, &instructions.SetFutureSight{
					TargetSide: side, TargetSlot: slot,
					AttackerSide: fs.AttackerSide, AttackerSlot: fs.AttackerSlot,
					Damage: fs.Damage, Turns: fs.Turns - 1, MoveName: fs.MoveName,
				})
				continue
			}
			target := s.PokemonAt(pos)
			if target != nil && !target.Fainted() {
				out = append(out, &instructions.Damage{Target: pos, Amount: fs.Damage})
			}
			out = append(out, &instructions.RemoveFutureSight{Side: side, Slot: slot})
		}
	}
	return out
}

// wishResolution ticks every pending Wish down by one turn, healing half the
// setter's max HP to whoever occupies the slot when it fires (spec.md §4.4
// step 5). A Wish set on an empty slot that gets filled by a switch before
// it fires still heals the new occupant; one that never gets filled simply
// expires with no heal.
func wishResolution(s *battle.State) []instructions.Instruction {
	var out []instructions.Instruction
	for side := 0; side < 2; side++ {
		for slot := 0; slot < len(s.Sides[side].Active); slot++ {
			w, ok := s.Sides[side].Wishes[slot]
			if !ok {
				continue
			}
			pos := format.BattlePosition{Side: side, Slot: slot}
			if w.Turns > 1 {
				out = append(out, &instructions.SetWish{Side: side, Slot: slot, Heal: w.HealAmount, Turns: w.Turns - 1})
				continue
			}
			target := s.PokemonAt(pos)
			if target != nil && !target.Fainted() && target.HP < target.MaxHP {
				out = append(out, &instructions.Heal{Target: pos, Amount: w.HealAmount})
			}
			out = append(out, &instructions.RemoveWish{Side: side, Slot: slot})
		}
	}
	return out
}
