package endofturn

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// fieldEffectDecrements ticks weather, terrain, Trick Room and Gravity
// duration counters, clearing each at 0 (spec.md §4.4 step 1). The
// individual instructions already self-clear at 0 (DecrementWeatherTurns
// etc.), so this step only needs to fire the ones that are actually active.
func fieldEffectDecrements(s *battle.State) []instructions.Instruction {
	var out []instructions.Instruction
	if s.Field.Weather != ident.WeatherNone && s.Field.WeatherTurns > 0 {
		out = append(out, &instructions.DecrementWeatherTurns{Delta: -1})
	}
	if s.Field.Terrain != ident.TerrainNone && s.Field.TerrainTurns > 0 {
		out = append(out, &instructions.DecrementTerrainTurns{Delta: -1})
	}
	if s.Field.TrickRoom && s.Field.TrickRoomTurns > 0 {
		out = append(out, &instructions.DecrementGlobalDuration{Field: instructions.GlobalTrickRoom, Delta: -1})
	}
	if s.Field.Gravity && s.Field.GravityTurns > 0 {
		out = append(out, &instructions.DecrementGlobalDuration{Field: instructions.GlobalGravity, Delta: -1})
	}
	return out
}

// timedSideConditions lists the side conditions that tick down every turn;
// Spikes/Toxic Spikes/Stealth Rock/Sticky Web are layer counts that persist
// until removed by Rapid Spin/Defog, not turn counters.
var timedSideConditions = []ident.SideCondition{
	ident.SideReflect, ident.SideLightScreen, ident.SideAuroraVeil, ident.SideTailwind,
	ident.SideQuickGuard, ident.SideWideGuard,
}

func sideConditionDecrements(s *battle.State) []instructions.Instruction {
	var out []instructions.Instruction
	for side := 0; side < 2; side++ {
		for _, cond := range timedSideConditions {
			if s.Sides[side].Conditions[cond] > 0 {
				out = append(out, &instructions.DecrementSideConditionDuration{Side: side, Condition: cond, Delta: -1})
			}
		}
	}
	return out
}

// magicGuard/overcoat/iceBody are checked by direct ability-tag comparison
// rather than through pkg/hooks since end-of-turn weather immunity isn't
// part of the damage-calculation dispatch pkg/hooks serves; this mirrors
// how pkg/damage's own isGrounded checks Levitate directly.
func hasAbility(p *battle.Pokemon, name string) bool { return p.Ability == ident.NewAbility(name) }

func weatherDamage(s *battle.State) []instructions.Instruction {
	var out []instructions.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p == nil || p.Fainted() {
			continue
		}
		switch s.Field.Weather {
		case ident.WeatherSand:
			if hasAbility(p, "magicguard") || hasAbility(p, "overcoat") {
				continue
			}
			if p.HasType(ident.TypeRock) || p.HasType(ident.TypeGround) || p.HasType(ident.TypeSteel) {
				continue
			}
			out = append(out, &instructions.Damage{Target: pos, Amount: p.MaxHP / 16})
		case ident.WeatherHail:
			switch {
			case hasAbility(p, "icebody"):
				out = append(out, &instructions.Heal{Target: pos, Amount: p.MaxHP / 16})
			case hasAbility(p, "magicguard") || hasAbility(p, "overcoat") || p.HasType(ident.TypeIce):
				// immune, no instruction
			default:
				out = append(out, &instructions.Damage{Target: pos, Amount: p.MaxHP / 16})
			}
		}
	}
	return out
}

// terrainHealing restores 1/16 max HP to grounded Pokémon standing on
// Grassy Terrain (spec.md §4.4 step 9); ungrounded Pokémon and anyone
// already at full HP are skipped.
func terrainHealing(s *battle.State) []instructions.Instruction {
	if s.Field.Terrain != ident.TerrainGrassy {
		return nil
	}
	var out []instructions.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p == nil || p.Fainted() || p.HP >= p.MaxHP {
			continue
		}
		if !isGrounded(p) {
			continue
		}
		out = append(out, &instructions.Heal{Target: pos, Amount: p.MaxHP / 16})
	}
	return out
}

// isGrounded duplicates pkg/damage's grounded check (Flying/Levitate/Air
// Balloon/Magnet Rise/Telekinesis are all ungrounded); it isn't imported
// from pkg/damage to avoid a dependency from endofturn down into the
// damage-formula package for one boolean helper.
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
