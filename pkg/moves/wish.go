package moves

import (
	"goldbox-rpg/pkg/damage"
	"goldbox-rpg/pkg/instructions"
)

// delayedHitTurns is how many end-of-turn passes elapse before a Wish heal
// or a Future Sight-family hit lands (pkg/endofturn/delayed.go fires once
// its stored Turns counter reaches 1 at an end-of-turn pass, so a value set
// the turn of use needs one more than the in-game "turns later" count).
const delayedHitTurns = 2

// wish stores half the user's max HP as a pending heal on its own
// side-slot, landing on whichever Pokémon occupies that slot two turns
// from now (spec.md §4.4 step 5); it fails outright if a Wish is already
// pending there.
func wish(ctx Context) ([]instructions.BattleInstructions, error) {
	side := ctx.State.Sides[ctx.UserPos.Side]
	if _, pending := side.Wishes[ctx.UserPos.Slot]; pending {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	user := ctx.User()
	heal := user.MaxHP / 2
	return []instructions.BattleInstructions{{
		Percentage: 100,
		Instructions: []instructions.Instruction{
			&instructions.SetWish{Side: ctx.UserPos.Side, Slot: ctx.UserPos.Slot, Heal: heal, Turns: delayedHitTurns},
		},
	}}, nil
}

// futureSight computes its damage immediately against the user's current
// stats and the target's current defenses, then stores the result as a
// pending hit on the target's side-slot; it lands two turns from now against
// whoever occupies that slot then, fainted status notwithstanding (spec.md
// §3 "Side entity", §4.4 step 4).
func futureSight(ctx Context) ([]instructions.BattleInstructions, error) {
	user, target := ctx.User(), ctx.Target()
	result := damage.Calculate(damage.Context{
		State: ctx.State, Chart: ctx.Chart,
		Attacker: user, Defender: target,
		AttackerPos: ctx.UserPos, DefenderPos: ctx.TargetPos,
		Move: ctx.Move, MoveData: ctx.MoveData,
		DamageRoll: 0.925, TargetCount: 1,
	})
	return []instructions.BattleInstructions{{
		Percentage: 100,
		Instructions: []instructions.Instruction{
			&instructions.SetFutureSight{
				TargetSide: ctx.TargetPos.Side, TargetSlot: ctx.TargetPos.Slot,
				AttackerSide: ctx.UserPos.Side, AttackerSlot: ctx.UserPos.Slot,
				Damage: result.Damage, Turns: delayedHitTurns,
				MoveName: string(ctx.Move),
			},
		},
	}}, nil
}
