package engine

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/ident"
)

// GetAllOptions enumerates each side's legal actions for the upcoming turn
// (spec.md §6's get_all_options, one of the four required public
// operations): a Switch choice per eligible bench Pokémon, and a Move (plus
// a MoveTera variant, once per battle) per usable move slot, gated by PP,
// Disable/Choice-lock (MoveSlot.Disabled already folds both in), Taunt, and
// Encore.
func GetAllOptions(s *battle.State) (sideOne, sideTwo []Choice) {
	return optionsForSide(s, 0), optionsForSide(s, 1)
}

func optionsForSide(s *battle.State, side int) []Choice {
	sd := s.Sides[side]
	if sd == nil {
		return nil
	}

	var out []Choice
	for slot := range sd.Active {
		p := sd.ActiveAt(slot)
		if p == nil || p.Fainted() {
			out = append(out, switchOptions(sd, slot)...)
			continue
		}
		out = append(out, moveOptions(p, slot)...)
		out = append(out, switchOptions(sd, slot)...)
	}
	return out
}

// switchOptions lists every roster slot that is alive and not already
// occupying one of this side's active slots.
func switchOptions(sd *battle.Side, slot int) []Choice {
	active := make(map[int]bool, len(sd.Active))
	for _, idx := range sd.Active {
		if idx >= 0 {
			active[idx] = true
		}
	}

	var out []Choice
	for i, p := range sd.Roster {
		if p == nil || p.Fainted() || active[i] {
			continue
		}
		out = append(out, Choice{Kind: ChoiceSwitch, RosterIndex: i, slot: slot})
	}
	return out
}

// moveOptions lists every move slot this Pokémon may currently select,
// applying Encore's move lock and Taunt's status-move block on top of the
// per-slot PP/Disabled gates already tracked on MoveSlot. Every usable move
// also yields a MoveTera variant when this Pokémon
// hasn't Terastallized yet this battle (spec.md §4.3 Choice.MoveTera).
func moveOptions(p *battle.Pokemon, slot int) []Choice {
	lockedMove := -1
	if v, ok := p.Volatiles[ident.VolatileEncore]; ok {
		lockedMove = v.Data
	}
	taunted := p.HasVolatile(ident.VolatileTaunt)

	var out []Choice
	for i, m := range p.Moves {
		if m.ID == "" || m.PP <= 0 || m.Disabled {
			continue
		}
		if lockedMove >= 0 && i != lockedMove {
			continue
		}
		if taunted && m.Category == ident.CategoryStatus {
			continue
		}
		out = append(out, Choice{Kind: ChoiceMove, MoveIndex: i, slot: slot})
		if !p.Terastallized {
			out = append(out, Choice{Kind: ChoiceMoveTera, MoveIndex: i, TeraType: p.TeraType, slot: slot})
		}
	}
	return out
}
