package endofturn

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/instructions"
)

// Process runs the full end-of-turn pipeline against state and returns the
// ordered instruction list that produces the result, grounded on the Rust
// original's process_end_of_turn_effects step order: field-effect
// decrements, side-condition decrements, weather damage, Future Sight,
// Wish, major-status damage, Leech Seed, held-item effects, volatile
// decrements, terrain healing, Perish Song. Each step runs against a
// scratch clone that is
// mutated as it goes so a later step sees the effects of an earlier one
// (e.g. a Pokémon burn damage fainted from doesn't also take Leech Seed
// damage); the caller applies the returned list to the real state itself.
func Process(state *battle.State) []instructions.Instruction {
	working := state.Clone()

	steps := []func(*battle.State) []instructions.Instruction{
		fieldEffectDecrements,
		sideConditionDecrements,
		weatherDamage,
		futureSightResolution,
		wishResolution,
		statusDamage,
		leechSeedDamage,
		itemEndOfTurn,
		volatileDecrements,
		terrainHealing,
		perishSongCountdown,
	}

	var all []instructions.Instruction
	for _, step := range steps {
		ins := step(working)
		instructions.Apply(working, ins)
		all = append(all, ins...)
	}
	return all
}
