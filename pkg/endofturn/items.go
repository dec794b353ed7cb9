package endofturn

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// itemEndOfTurn applies the end-of-turn held-item effects spec.md §4.4 step
// 8 names: Leftovers/Black Sludge/Sticky Barb residual HP, Flame
// Orb/Toxic Orb self-infliction, and Leppa Berry's PP restoration. Magic
// Guard blocks the damaging ones the same way it blocks status/Leech Seed
// damage; it never blocks healing.
func itemEndOfTurn(s *battle.State) []instructions.Instruction {
	var out []instructions.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p == nil || p.Fainted() {
			continue
		}
		guarded := hasAbility(p, "magicguard")

		switch p.Item {
		case ident.NewItem("leftovers"):
			out = append(out, &instructions.Heal{Target: pos, Amount: maxInt(p.MaxHP/16, 1)})
		case ident.NewItem("blacksludge"):
			if p.HasType(ident.TypePoison) {
				out = append(out, &instructions.Heal{Target: pos, Amount: maxInt(p.MaxHP/16, 1)})
			} else if !guarded {
				out = append(out, &instructions.Damage{Target: pos, Amount: maxInt(p.MaxHP/8, 1)})
			}
		case ident.NewItem("stickybarb"):
			if !guarded {
				out = append(out, &instructions.Damage{Target: pos, Amount: maxInt(p.MaxHP/8, 1)})
			}
		case ident.NewItem("flameorb"):
			if p.Status == ident.StatusNone && !p.HasType(ident.TypeFire) {
				out = append(out, &instructions.ApplyStatus{Target: pos, Status: ident.StatusBurn})
			}
		case ident.NewItem("toxicorb"):
			if p.Status == ident.StatusNone && !p.HasType(ident.TypePoison) && !p.HasType(ident.TypeSteel) {
				out = append(out, &instructions.ApplyStatus{Target: pos, Status: ident.StatusBadlyPoisoned})
			}
		case ident.NewItem("leppaberry"):
			out = append(out, leppaBerryRestore(p, pos)...)
		}
	}
	return out
}

// leppaBerryRestore restores 10 PP (capped at the slot's MaxPP) to the
// first move that has run out, consuming the berry; a holder with no
// exhausted move produces no instructions at all.
func leppaBerryRestore(p *battle.Pokemon, pos format.BattlePosition) []instructions.Instruction {
	for i, m := range p.Moves {
		if m.ID == "" || m.PP > 0 {
			continue
		}
		restore := m.MaxPP - m.PP
		if restore > 10 {
			restore = 10
		}
		if restore <= 0 {
			continue
		}
		return []instructions.Instruction{
			&instructions.DecrementPP{Target: pos, MoveIndex: i, Amount: -restore},
			&instructions.ChangeItem{Target: pos, Item: ident.Item("")},
		}
	}
	return nil
}
