package moves

import (
	"goldbox-rpg/pkg/damage"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// hitCount is one possible strike count for a multi-hit move and its
// probability of occurring this use.
type hitCount struct {
	hits       int
	percentage float64
}

// hitCountBranches resolves spec.md §4.1's multi-hit distribution: 2-5
// hits at 35/35/15/15% generically, a fixed count when the catalogue's
// MultiHit range collapses to a single value (Triple Kick-style [3,3]), and
// always the catalogue's max count under Skill Link.
func hitCountBranches(ctx Context) []hitCount {
	min, max := ctx.MoveData.MultiHit[0], ctx.MoveData.MultiHit[1]
	if min <= 0 {
		min, max = 2, 5
	}
	if min == max {
		return []hitCount{{hits: min, percentage: 100}}
	}
	if user := ctx.User(); user != nil && user.Ability == ident.NewAbility("skilllink") {
		return []hitCount{{hits: max, percentage: 100}}
	}

	weight := map[int]float64{2: 35, 3: 35, 4: 15, 5: 15}
	total := 0.0
	for n := min; n <= max; n++ {
		total += weight[n]
	}
	if total <= 0 {
		return []hitCount{{hits: max, percentage: 100}}
	}

	var out []hitCount
	for n := min; n <= max; n++ {
		if w := weight[n]; w > 0 {
			out = append(out, hitCount{hits: n, percentage: w / total * 100})
		}
	}
	return out
}

// multiHitDamage resolves hits strikes against the target in sequence,
// stopping early if the target faints partway through. Each hit recomputes
// damage against a scratch clone kept current with the hits already built,
// so a later hit sees the HP left by the ones before it. Individual hits don't branch on critical hit
// or roll variance the way a single-hit move's damage does (spec.md §4.2
// step 8); each lands its average roll non-critically, a deliberate
// simplification to keep a 2-5-hit move's branch count tractable.
func multiHitDamage(ctx Context, hits int) []instructions.Instruction {
	scratch := ctx.State.Clone()
	var out []instructions.Instruction
	for i := 0; i < hits; i++ {
		attacker, defender := scratch.PokemonAt(ctx.UserPos), scratch.PokemonAt(ctx.TargetPos)
		if attacker == nil || defender == nil || defender.Fainted() {
			break
		}
		result := damage.Calculate(damage.Context{
			State: scratch, Chart: ctx.Chart,
			Attacker: attacker, Defender: defender,
			AttackerPos: ctx.UserPos, DefenderPos: ctx.TargetPos,
			Move: ctx.Move, MoveData: ctx.MoveData,
			DamageRoll: 0.925, TargetCount: 1,
		})
		if result.Damage <= 0 {
			continue
		}
		instr := &instructions.Damage{Target: ctx.TargetPos, Amount: result.Damage}
		instr.Apply(scratch)
		out = append(out, instr)
	}
	return out
}

// multiHitMove dispatches any move whose catalogue record carries a
// MultiHit range (Bullet Seed, Rock Blast, Pin Missile, Fury Attack, ...),
// branching on how many times it strikes. Scale Shot additionally drops the
// user's Defense and raises its Speed once after every hit has landed.
func multiHitMove(ctx Context) ([]instructions.BattleInstructions, error) {
	branches := make([]instructions.BattleInstructions, 0, 4)
	for _, c := range hitCountBranches(ctx) {
		instrs := multiHitDamage(ctx, c.hits)
		if len(instrs) > 0 && ctx.Move == ident.NewMoveID("scaleshot") {
			instrs = append(instrs,
				&instructions.BoostStats{Target: ctx.UserPos, Deltas: map[ident.Stat]int{ident.StatDef: -1}},
				&instructions.BoostStats{Target: ctx.UserPos, Deltas: map[ident.Stat]int{ident.StatSpe: 2}},
			)
		}
		branches = append(branches, instructions.BattleInstructions{Percentage: c.percentage, Instructions: instrs})
	}
	return instructions.NormalizeWeights(branches), nil
}
