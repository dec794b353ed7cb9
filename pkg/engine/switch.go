package engine

import (
	"sort"

	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
	"goldbox-rpg/pkg/typechart"
)

// sortedVolatiles returns a Pokémon's active volatile keys in a stable
// order so the instruction list built from them is deterministic turn to
// turn, matching pkg/endofturn's identically-named helper.
func sortedVolatiles(p *battle.Pokemon) []ident.Volatile {
	out := make([]ident.Volatile, 0, len(p.Volatiles))
	for v := range p.Volatiles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// isGrounded duplicates the grounded check pkg/damage and pkg/endofturn
// each already carry their own copy of, rather than introduce a cross-
// package dependency on either for one boolean helper.
func isGrounded(p *battle.Pokemon) bool {
	if p.HasType(ident.TypeFlying) {
		return false
	}
	if hasAbility(p, "levitate") {
		return false
	}
	if p.Item == ident.NewItem("airballoon") {
		return false
	}
	if p.HasVolatile(ident.VolatileMagnetRise) || p.HasVolatile(ident.VolatileTelekinesis) {
		return false
	}
	return true
}

// switchOut clears the departing Pokémon's volatile statuses and stat
// boosts (neither persists across a switch) before the Switch instruction
// itself is applied (spec.md §4.3 step 3, grounded on
// switch_effects.rs's process_switch_out_volatile_cleanup).
func switchOut(s *battle.State, pos format.BattlePosition) []instructions.Instruction {
	p := s.PokemonAt(pos)
	if p == nil {
		return nil
	}
	var out []instructions.Instruction
	for _, v := range sortedVolatiles(p) {
		out = append(out, &instructions.RemoveVolatile{Target: pos, Volatile: v})
	}
	deltas := map[ident.Stat]int{}
	for stat, boost := range p.Boosts {
		if boost != 0 {
			deltas[ident.Stat(stat)] = -boost
		}
	}
	if len(deltas) > 0 {
		out = append(out, &instructions.BoostStats{Target: pos, Deltas: deltas})
	}
	return out
}

// switchIn generates entry-hazard and switch-in-ability effects for the
// newcomer, in official order: Spikes, Stealth Rock, Toxic Spikes, Sticky
// Web, then Intimidate, grounded on switch_effects.rs's
// process_switch_in_effects. Weather- and terrain-setting abilities and
// switch-in items are not handled here.
func switchIn(s *battle.State, pos format.BattlePosition, chart *typechart.Chart) []instructions.Instruction {
	p := s.PokemonAt(pos)
	if p == nil {
		return nil
	}
	side := s.Sides[pos.Side]
	var out []instructions.Instruction

	if layers := side.SpikesLayers(); layers > 0 && isGrounded(p) {
		fraction := [4]int{0, 8, 6, 4}[layers]
		out = append(out, &instructions.Damage{Target: pos, Amount: maxIntEngine(p.MaxHP/fraction, 1)})
	}
	if side.HasCondition(ident.SideStealthRock) {
		eff := chart.EffectivenessAgainst(ident.TypeRock, p.EffectiveTypes(), false)
		dmg := int(float64(p.MaxHP) / 8 * eff)
		if dmg > 0 {
			out = append(out, &instructions.Damage{Target: pos, Amount: dmg})
		}
	}
	if layers := side.ToxicSpikesLayers(); layers > 0 && isGrounded(p) {
		switch {
		case p.HasType(ident.TypePoison):
			out = append(out, &instructions.RemoveSideCondition{Side: pos.Side, Condition: ident.SideToxicSpikes})
		case p.HasType(ident.TypeSteel) || p.Status != ident.StatusNone:
			// immune or already statused; hazard persists, no effect
		case layers >= 2:
			out = append(out, &instructions.ApplyStatus{Target: pos, Status: ident.StatusBadlyPoisoned})
		default:
			out = append(out, &instructions.ApplyStatus{Target: pos, Status: ident.StatusPoison})
		}
	}
	if side.HasCondition(ident.SideStickyWeb) && isGrounded(p) {
		out = append(out, &instructions.BoostStats{Target: pos, Deltas: map[ident.Stat]int{ident.StatSpe: -1}})
	}

	if hasAbility(p, "intimidate") {
		out = append(out, intimidate(s, pos)...)
	}

	return out
}

// intimidateImmune lists the abilities known to block Intimidate's Attack
// drop outright (Clear Body-family stat-protection abilities, plus the
// ones that specifically name Intimidate).
var intimidateImmune = map[string]bool{
	"clearbody": true, "whitesmoke": true, "hypercutter": true, "innerfocus": true,
	"oblivious": true, "owntempo": true, "fullmetalbody": true, "guarddog": true,
	"mindseye": true,
}

func intimidate(s *battle.State, from format.BattlePosition) []instructions.Instruction {
	var out []instructions.Instruction
	for _, pos := range s.ActivePositions() {
		if pos.Side == from.Side {
			continue
		}
		target := s.PokemonAt(pos)
		if target == nil || target.Fainted() {
			continue
		}
		if intimidateImmune[string(target.Ability)] {
			continue
		}
		out = append(out, &instructions.BoostStats{Target: pos, Deltas: map[ident.Stat]int{ident.StatAtk: -1}})
	}
	return out
}

func maxIntEngine(a, b int) int {
	if a > b {
		return a
	}
	return b
}
