package engine

import (
	"fmt"

	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/damage"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
	"goldbox-rpg/pkg/metrics"
	"goldbox-rpg/pkg/moves"
	"goldbox-rpg/pkg/repository"
	"goldbox-rpg/pkg/typechart"
)

// Env bundles the generation-scoped lookups a turn needs: the data
// repository, the generation's type chart, and the generation number
// itself. One Env is built once per battle and reused across turns. Metrics
// is optional; a nil value disables instrumentation rather than erroring.
type Env struct {
	Repo       *repository.Repository
	Chart      *typechart.Chart
	Generation int
	Metrics    *metrics.Collector
}

// resolveAction turns one actor's choice into its weighted outcome tree
// (spec.md §4.3 steps 3-4): a switch's exit/entry effects, or a move's PP
// deduction, accuracy roll, and move-effect dispatch with critical-hit
// branching for damaging moves. opponentSwitching is true when the other
// side's declared action this turn is a switch, which doubles Pursuit's
// base power (spec.md §4.1, §4.3 scenario 5).
func resolveAction(s *battle.State, a actor, opponentSwitching bool, env Env) ([]instructions.BattleInstructions, error) {
	switch {
	case a.Choice.isSwitch():
		return resolveSwitch(s, a, env), nil
	case a.Choice.isMove():
		return resolveMove(s, a, opponentSwitching, env)
	default:
		return nil, nil
	}
}

func resolveSwitch(s *battle.State, a actor, env Env) []instructions.BattleInstructions {
	var out []instructions.Instruction
	out = append(out, switchOut(s, a.Pos)...)
	out = append(out, &instructions.Switch{Target: a.Pos, NewRosterIndex: a.Choice.RosterIndex})

	// Switch-in effects are generated against the state as it will look
	// once the Switch instruction above has applied, so they see the
	// newcomer rather than the departing Pokémon; apply to a scratch clone
	// exactly for that lookup, discarding the clone afterward.
	scratch := s.Clone()
	instructions.Apply(scratch, out)
	out = append(out, switchIn(scratch, a.Pos, env.Chart)...)

	return []instructions.BattleInstructions{{Percentage: 100, Instructions: out}}
}

func resolveMove(s *battle.State, a actor, opponentSwitching bool, env Env) ([]instructions.BattleInstructions, error) {
	user := s.PokemonAt(a.Pos)
	if user == nil {
		return nil, nil
	}
	if a.Choice.MoveIndex < 0 || a.Choice.MoveIndex >= len(user.Moves) {
		return nil, fmt.Errorf("engine: move index %d out of range for %s", a.Choice.MoveIndex, a.Pos)
	}
	slot := user.Moves[a.Choice.MoveIndex]
	moveData, err := env.Repo.Move(env.Generation, slot.ID)
	if err != nil {
		return nil, fmt.Errorf("engine: resolving move %s: %w", slot.ID, err)
	}
	if opponentSwitching && isPursuit(slot) {
		moveData.BasePower *= 2
	}

	targets := a.Choice.Targets
	if len(targets) == 0 {
		targets = format.ResolveTargets(moveData.Target, a.Pos, s.Format.ActivePerSide)
	}

	pp := []instructions.Instruction{&instructions.DecrementPP{Target: a.Pos, MoveIndex: a.Choice.MoveIndex, Amount: 1}}

	// Terastallizing happens before the move resolves, so this turn's STAB
	// and type matchups must already see the new type; resolve hits against
	// a scratch clone with the toggle pre-applied, but still record the
	// instruction itself so replay sees it (spec.md §4.3 Choice.MoveTera).
	hitState := s
	if a.Choice.Kind == ChoiceMoveTera && !user.Terastallized {
		teraInstr := &instructions.ToggleTerastallised{Target: a.Pos, Value: true}
		pp = append(pp, teraInstr)

		scratch := s.Clone()
		teraInstr.Apply(scratch)
		hitState = scratch
	}

	branches := []instructions.BattleInstructions{{Percentage: 100}}

	for _, targetPos := range targets {
		target := hitState.PokemonAt(targetPos)
		if target == nil {
			continue
		}
		targetMoveData := moveData
		if power, ok := variableBasePower(moveData.ID, moveData.BasePower, hitState.PokemonAt(a.Pos), target, env); ok {
			targetMoveData.BasePower = power
		}
		targetBranches, err := resolveHit(hitState, a.Pos, targetPos, hitState.PokemonAt(a.Pos), target, slot, targetMoveData, env, len(targets))
		if err != nil {
			return nil, err
		}
		branches = instructions.Combine(branches, targetBranches)
	}

	if len(targets) > 1 {
		for i := range branches {
			branches[i].Instructions = mergeSpreadDamage(branches[i].Instructions)
		}
	}

	branches = instructions.AppendAll(branches, pp)
	return instructions.NormalizeWeights(branches), nil
}

// mergeSpreadDamage collapses the independent per-target Damage
// instructions a spread move's branch produced into a single
// MultiTargetDamage, matching spec.md §3's "multi-target damage with a
// vector of (position, amount, previous-hp)" shape. Non-damage instructions
// (secondary effects, recoil, ...) are left where they are; a branch with
// fewer than two Damage instructions (e.g. all but one target missed) is
// returned unchanged.
func mergeSpreadDamage(instrs []instructions.Instruction) []instructions.Instruction {
	var hits []instructions.MultiHit
	for _, ins := range instrs {
		if d, ok := ins.(*instructions.Damage); ok {
			hits = append(hits, instructions.MultiHit{Target: d.Target, Amount: d.Amount})
		}
	}
	if len(hits) < 2 {
		return instrs
	}

	out := make([]instructions.Instruction, 0, len(instrs)-len(hits)+1)
	inserted := false
	for _, ins := range instrs {
		if _, ok := ins.(*instructions.Damage); ok {
			if !inserted {
				out = append(out, &instructions.MultiTargetDamage{Hits: hits})
				inserted = true
			}
			continue
		}
		out = append(out, ins)
	}
	return out
}

// resolveHit produces one target's weighted outcome set: a miss branch (if
// the move can miss) and a hit branch split further into critical and
// non-critical damage variants for damaging moves, each dispatched through
// the move-effect registry (spec.md §4.3 step 4).
func resolveHit(s *battle.State, userPos, targetPos format.BattlePosition, user, target *battle.Pokemon, slot battle.MoveSlot, moveData repository.MoveRecord, env Env, targetCount int) ([]instructions.BattleInstructions, error) {
	if protectionBlocks(s, targetPos, moveData) {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}

	accuracy := moveData.Accuracy
	var missPct float64
	if accuracy > 0 {
		missPct = 100 - float64(accuracy)
	}

	outcomes, err := hitOutcomes(s, userPos, targetPos, user, target, moveData, env, targetCount)
	if err != nil {
		return nil, err
	}

	hitPct := 100 - missPct
	scaled := make([]instructions.BattleInstructions, 0, len(outcomes)+1)
	for _, o := range outcomes {
		scaled = append(scaled, instructions.BattleInstructions{
			Percentage:   o.Percentage * hitPct / 100,
			Instructions: o.Instructions,
		})
	}
	if missPct > 0 {
		scaled = append(scaled, instructions.BattleInstructions{Percentage: missPct})
	}
	return instructions.NormalizeWeights(scaled), nil
}

// hitOutcomes assumes the move has already hit and produces its branches
// summing to 100: a single dispatch for status/no-power moves, or a
// critical/non-critical damage split for everything else (spec.md §4.3
// step 4 "within the hit branch, damaging moves optionally branch again on
// critical hit").
func hitOutcomes(s *battle.State, userPos, targetPos format.BattlePosition, user, target *battle.Pokemon, moveData repository.MoveRecord, env Env, targetCount int) ([]instructions.BattleInstructions, error) {
	if moveData.Category == ident.CategoryStatus || moveData.BasePower == 0 {
		return moves.Apply(moves.Context{
			State: s, Chart: env.Chart, Move: moveData.ID, MoveData: moveData,
			UserPos: userPos, TargetPos: targetPos,
		})
	}

	p := critChance(user, moveData)
	if p >= 1 {
		return damageOutcome(s, userPos, targetPos, moveData, env, targetCount, true)
	}

	nonCrit, err := damageOutcome(s, userPos, targetPos, moveData, env, targetCount, false)
	if err != nil {
		return nil, err
	}
	crit, err := damageOutcome(s, userPos, targetPos, moveData, env, targetCount, true)
	if err != nil {
		return nil, err
	}

	out := make([]instructions.BattleInstructions, 0, len(nonCrit)+len(crit))
	out = append(out, scalePercentage(nonCrit, (1-p)*100)...)
	out = append(out, scalePercentage(crit, p*100)...)
	return instructions.NormalizeWeights(out), nil
}

// damageOutcome branches a single critical-hit variant across the min and
// max damage rolls (spec.md §4.2 step 8), calculating each roll's damage and
// dispatching the move-effect registry with it; the two roll branches sum
// to 100.
func damageOutcome(s *battle.State, userPos, targetPos format.BattlePosition, moveData repository.MoveRecord, env Env, targetCount int, isCrit bool) ([]instructions.BattleInstructions, error) {
	rolls := []float64{minDamageRoll, maxDamageRoll}
	out := make([]instructions.BattleInstructions, 0, len(rolls))
	for _, roll := range rolls {
		user, target := s.PokemonAt(userPos), s.PokemonAt(targetPos)
		result := damage.Calculate(damage.Context{
			State: s, Chart: env.Chart,
			Attacker: user, Defender: target, AttackerPos: userPos, DefenderPos: targetPos,
			Move: moveData.ID, MoveData: moveData,
			IsCritical: isCrit, DamageRoll: roll, TargetCount: targetCount,
		})
		dealt := result.Damage
		if target.HasVolatile(ident.VolatileEndure) && dealt >= target.HP && target.HP > 1 {
			dealt = target.HP - 1
		}
		branches, err := moves.Apply(moves.Context{
			State: s, Chart: env.Chart, Move: moveData.ID, MoveData: moveData,
			UserPos: userPos, TargetPos: targetPos, DamageDealt: dealt,
		})
		if err != nil {
			return nil, err
		}
		// Stamp the hit on the defender so a Counter-family move it uses
		// later this same turn can read back what it was just hit by.
		recordHit := &instructions.RecordHit{Target: targetPos, Damage: dealt, Category: moveData.Category, Turn: s.Turn}
		branches = instructions.AppendAll(branches, []instructions.Instruction{recordHit})
		out = append(out, scalePercentage(instructions.NormalizeWeights(branches), 50)...)
	}
	return instructions.NormalizeWeights(out), nil
}

// scalePercentage rescales a set of branches that sum to 100 down to sum
// to factor, preserving their relative weights.
func scalePercentage(branches []instructions.BattleInstructions, factor float64) []instructions.BattleInstructions {
	out := make([]instructions.BattleInstructions, len(branches))
	for i, b := range branches {
		out[i] = instructions.BattleInstructions{Percentage: b.Percentage * factor / 100, Instructions: b.Instructions}
	}
	return out
}
