package endofturn

import (
	"sort"

	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// statusDamage applies residual burn/poison/toxic damage (spec.md §4.4 step
// 6). Toxic's counter increments every turn it's active and its damage
// scales with it (n/16 of max HP, n starting at 1); burn and regular poison
// are a flat 1/16 and 1/8 respectively. Magic Guard blocks all three.
func statusDamage(s *battle.State) []instructions.Instruction {
	var out []instructions.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p == nil || p.Fainted() || hasAbility(p, "magicguard") {
			continue
		}
		switch p.Status {
		case ident.StatusBurn:
			out = append(out, &instructions.Damage{Target: pos, Amount: maxInt(p.MaxHP/16, 1)})
		case ident.StatusPoison:
			out = append(out, &instructions.Damage{Target: pos, Amount: maxInt(p.MaxHP/8, 1)})
		case ident.StatusBadlyPoisoned:
			n := p.StatusDuration + 1
			out = append(out, &instructions.ChangeStatusDuration{Target: pos, Delta: 1})
			out = append(out, &instructions.Damage{Target: pos, Amount: maxInt(p.MaxHP*n/16, 1)})
		}
	}
	return out
}

// sortedVolatiles returns a Pokémon's active volatile keys in a stable
// order so instruction lists built by ranging over them are deterministic.
func sortedVolatiles(p *battle.Pokemon) []ident.Volatile {
	out := make([]ident.Volatile, 0, len(p.Volatiles))
	for v := range p.Volatiles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// leechSeedDamage deals 1/8 max HP to every Leech Seeded Pokémon and heals
// the opposing Pokémon standing in the mirrored slot by the same amount
// (spec.md §4.4 step 7). An empty or fainted mirror slot still lets the
// damage go through with no corresponding heal.
func leechSeedDamage(s *battle.State) []instructions.Instruction {
	var out []instructions.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p == nil || p.Fainted() || !p.HasVolatile(ident.VolatileLeechSeed) {
			continue
		}
		amount := maxInt(p.MaxHP/8, 1)
		out = append(out, &instructions.Damage{Target: pos, Amount: amount})
		mirror := s.PokemonAt(mirrorPosition(pos))
		if mirror != nil && !mirror.Fainted() {
			out = append(out, &instructions.Heal{Target: mirrorPosition(pos), Amount: amount})
		}
	}
	return out
}

func mirrorPosition(pos format.BattlePosition) format.BattlePosition {
	return format.BattlePosition{Side: 1 - pos.Side, Slot: pos.Slot}
}

// perishSongDecrementing is excluded from the generic volatileDecrements
// pass because hitting 0 faints the Pokémon rather than simply clearing the
// volatile; protectCounter is excluded because it isn't duration-based (it's
// a hidden consecutive-use tally read and reset by the protect move effect
// itself, never by the end-of-turn pipeline). ChargingTwoTurn and
// SemiInvulnerable are excluded for the same reason as protectCounter: the
// charging move's own effect function clears them explicitly on the release
// turn (pkg/moves/twoturn.go), and a generic decrement to 0 between the
// charge and release turns would clear the marker the release turn's
// HasVolatile check depends on.
var skipGenericDecrement = map[ident.Volatile]bool{
	ident.VolatilePerishSong:      true,
	ident.VolatileProtectCounter:  true,
	ident.VolatileChargingTwoTurn: true,
	ident.VolatileSemiInvulnerable: true,
}

// volatileDecrements ticks every other duration-bearing volatile down by one
// turn, relying on ChangeVolatileDuration's own self-clearing-at-zero
// behavior (spec.md §4.4 step 8).
func volatileDecrements(s *battle.State) []instructions.Instruction {
	var out []instructions.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p == nil || p.Fainted() {
			continue
		}
		for _, v := range sortedVolatiles(p) {
			inst := p.Volatiles[v]
			if skipGenericDecrement[v] || inst.Duration <= 0 {
				continue
			}
			out = append(out, &instructions.ChangeVolatileDuration{Target: pos, Volatile: v, Delta: -1})
		}
	}
	return out
}

// perishSongCountdown ticks Perish Song down, fainting the Pokémon the turn
// it reaches 0 regardless of HP (spec.md §4.4 step 10).
func perishSongCountdown(s *battle.State) []instructions.Instruction {
	var out []instructions.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p == nil || p.Fainted() {
			continue
		}
		inst, ok := p.Volatiles[ident.VolatilePerishSong]
		if !ok {
			continue
		}
		if inst.Duration <= 1 {
			out = append(out, &instructions.RemoveVolatile{Target: pos, Volatile: ident.VolatilePerishSong})
			out = append(out, &instructions.Faint{Target: pos})
			continue
		}
		out = append(out, &instructions.ChangeVolatileDuration{Target: pos, Volatile: ident.VolatilePerishSong, Delta: -1})
	}
	return out
}
