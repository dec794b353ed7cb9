package moves

import (
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// restSleepTurns is how long Rest's self-inflicted sleep lasts: unlike the
// 1-3 turn range sleepMove rolls, Rest is always exactly two turns asleep.
const restSleepTurns = 2

// rest clears the user's major status and heals it to full, replacing
// whatever status (if any) it had with a fixed Sleep counter; it is a
// guaranteed no-op branch if the user is already at full HP and has no
// status to cure.
func rest(ctx Context) ([]instructions.BattleInstructions, error) {
	user := ctx.User()
	if user.HP >= user.MaxHP && user.Status == ident.StatusNone {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	instrs := []instructions.Instruction{
		&instructions.Heal{Target: ctx.UserPos, Amount: user.MaxHP - user.HP},
		&instructions.ApplyStatus{Target: ctx.UserPos, Status: ident.StatusSleep, Duration: restSleepTurns},
	}
	return []instructions.BattleInstructions{{Percentage: 100, Instructions: instrs}}, nil
}

// endure applies the volatile pkg/engine's damage resolution consults to
// clamp any hit that would otherwise faint the user down to 1 HP instead,
// for the rest of this turn only.
func endure(ctx Context) ([]instructions.BattleInstructions, error) {
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.ApplyVolatile{Target: ctx.UserPos, Volatile: ident.VolatileEndure, Duration: 1}},
	}}, nil
}
