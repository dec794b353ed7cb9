package moves

import (
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// weatherMoveDuration is how long weather set by a move lasts absent a
// weather-extending item (spec.md §4.1; Smooth Rock-style extensions are
// not modeled, a scoping decision consistent with the representative-
// subset Open Question decision already recorded for pkg/moves).
const weatherMoveDuration = 5

func weatherMove(w ident.Weather) func(Context) ([]instructions.BattleInstructions, error) {
	return func(ctx Context) ([]instructions.BattleInstructions, error) {
		return []instructions.BattleInstructions{{
			Percentage: 100,
			Instructions: []instructions.Instruction{&instructions.SetWeather{
				Weather: w, Turns: weatherMoveDuration,
				SourceSide: ctx.UserPos.Side, SourceSlot: ctx.UserPos.Slot, HasSource: true,
			}},
		}}, nil
	}
}

const terrainMoveDuration = 5

func terrainMove(t ident.Terrain) func(Context) ([]instructions.BattleInstructions, error) {
	return func(ctx Context) ([]instructions.BattleInstructions, error) {
		return []instructions.BattleInstructions{{
			Percentage:   100,
			Instructions: []instructions.Instruction{&instructions.SetTerrain{Terrain: t, Turns: terrainMoveDuration}},
		}}, nil
	}
}

func trickRoom(ctx Context) ([]instructions.BattleInstructions, error) {
	value := !ctx.State.Field.TrickRoom
	turns := 0
	if value {
		turns = 5
	}
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ToggleTrickRoom{Value: value, Turns: turns}},
	}}, nil
}

func gravity(ctx Context) ([]instructions.BattleInstructions, error) {
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ToggleGravity{Value: true, Turns: 5}},
	}}, nil
}

// screenMove sets a timed side-wide condition (Reflect/Light Screen/Aurora
// Veil/Tailwind) on the user's own side.
func screenMove(cond ident.SideCondition, turns int) func(Context) ([]instructions.BattleInstructions, error) {
	return func(ctx Context) ([]instructions.BattleInstructions, error) {
		return []instructions.BattleInstructions{{
			Percentage:   100,
			Instructions: []instructions.Instruction{&instructions.ApplySideCondition{Side: ctx.UserPos.Side, Condition: cond, Value: turns}},
		}}, nil
	}
}

func stealthRock(ctx Context) ([]instructions.BattleInstructions, error) {
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplySideCondition{Side: ctx.TargetPos.Side, Condition: ident.SideStealthRock, Value: 1}},
	}}, nil
}

func stickyWeb(ctx Context) ([]instructions.BattleInstructions, error) {
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplySideCondition{Side: ctx.TargetPos.Side, Condition: ident.SideStickyWeb, Value: 1}},
	}}, nil
}

// spikes stacks up to 3 layers; a fourth use is a guaranteed no-op branch
// rather than an error, matching how a legal-move generator would simply
// exclude the move rather than have Apply fail on it.
func spikes(ctx Context) ([]instructions.BattleInstructions, error) {
	side := ctx.TargetSide()
	current := side.SpikesLayers()
	if current >= 3 {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplySideCondition{Side: ctx.TargetPos.Side, Condition: ident.SideSpikes, Value: current + 1}},
	}}, nil
}

func toxicSpikes(ctx Context) ([]instructions.BattleInstructions, error) {
	side := ctx.TargetSide()
	current := side.ToxicSpikesLayers()
	if current >= 2 {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplySideCondition{Side: ctx.TargetPos.Side, Condition: ident.SideToxicSpikes, Value: current + 1}},
	}}, nil
}

// rapidSpin clears every hazard from the user's own side in addition to
// dealing its (generically-handled) damage; Apply chains this onto the
// generic damaging path since Rapid Spin has base power.
func rapidSpin(ctx Context) ([]instructions.BattleInstructions, error) {
	branches, err := GenericDamagingEffect(ctx)
	if err != nil {
		return nil, err
	}
	clear := clearHazards(ctx.UserPos.Side)
	for i := range branches {
		branches[i].Instructions = append(branches[i].Instructions, clear...)
	}
	return branches, nil
}

func clearHazards(side int) []instructions.Instruction {
	hazards := []ident.SideCondition{ident.SideSpikes, ident.SideToxicSpikes, ident.SideStealthRock, ident.SideStickyWeb}
	out := make([]instructions.Instruction, 0, len(hazards))
	for _, h := range hazards {
		out = append(out, &instructions.RemoveSideCondition{Side: side, Condition: h})
	}
	return out
}

// mortalSpin is Rapid Spin's sibling and behaves identically: it clears the
// user's own hazards in addition to the (generically-handled) damage. It
// does not remove Leech Seed.
func mortalSpin(ctx Context) ([]instructions.BattleInstructions, error) {
	branches, err := GenericDamagingEffect(ctx)
	if err != nil {
		return nil, err
	}
	clear := clearHazards(ctx.UserPos.Side)
	for i := range branches {
		branches[i].Instructions = append(branches[i].Instructions, clear...)
	}
	return branches, nil
}

// tidyUp is Rapid Spin's non-damaging, both-sides-at-once sibling: it
// clears every hazard on both sides of the field, then raises the user's
// Attack and Speed. Substitutes are left in place.
func tidyUp(ctx Context) ([]instructions.BattleInstructions, error) {
	instrs := clearHazards(0)
	instrs = append(instrs, clearHazards(1)...)
	instrs = append(instrs,
		&instructions.BoostStats{Target: ctx.UserPos, Deltas: map[ident.Stat]int{ident.StatAtk: 1}},
		&instructions.BoostStats{Target: ctx.UserPos, Deltas: map[ident.Stat]int{ident.StatSpe: 1}},
	)
	return []instructions.BattleInstructions{{Percentage: 100, Instructions: instrs}}, nil
}

// defog clears every hazard and screen from both sides and lowers the
// target's evasion by one stage.
func defog(ctx Context) ([]instructions.BattleInstructions, error) {
	screens := []ident.SideCondition{ident.SideReflect, ident.SideLightScreen, ident.SideAuroraVeil, ident.SideSafeguard, ident.SideMist}
	var instrs []instructions.Instruction
	for _, side := range []int{0, 1} {
		instrs = append(instrs, clearHazards(side)...)
		for _, cond := range screens {
			instrs = append(instrs, &instructions.RemoveSideCondition{Side: side, Condition: cond})
		}
	}
	instrs = append(instrs, &instructions.BoostStats{Target: ctx.TargetPos, Deltas: map[ident.Stat]int{ident.StatEvasion: -1}})
	return []instructions.BattleInstructions{{Percentage: 100, Instructions: instrs}}, nil
}

// courtChange swaps every side condition (hazards, screens, Tailwind)
// between the two sides in a single exchange.
func courtChange(ctx Context) ([]instructions.BattleInstructions, error) {
	swapped := []ident.SideCondition{
		ident.SideReflect, ident.SideLightScreen, ident.SideAuroraVeil, ident.SideTailwind,
		ident.SideSpikes, ident.SideToxicSpikes, ident.SideStealthRock, ident.SideStickyWeb,
		ident.SideSafeguard, ident.SideMist, ident.SideLuckyChant,
	}
	instrs := make([]instructions.Instruction, 0, len(swapped))
	for _, cond := range swapped {
		instrs = append(instrs, &instructions.SwapSideCondition{Condition: cond})
	}
	return []instructions.BattleInstructions{{Percentage: 100, Instructions: instrs}}, nil
}

// quickGuard and wideGuard set the one-turn side conditions pkg/engine's
// protectionBlocks consults before resolving a hit: Quick Guard blocks
// priority moves, Wide Guard blocks spread moves, both against the user's
// own side only.
func quickGuard(ctx Context) ([]instructions.BattleInstructions, error) {
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplySideCondition{Side: ctx.UserPos.Side, Condition: ident.SideQuickGuard, Value: 1}},
	}}, nil
}

func wideGuard(ctx Context) ([]instructions.BattleInstructions, error) {
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplySideCondition{Side: ctx.UserPos.Side, Condition: ident.SideWideGuard, Value: 1}},
	}}, nil
}
