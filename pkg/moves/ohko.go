package moves

import "goldbox-rpg/pkg/instructions"

// ohko implements Guillotine/Fissure/Horn Drill/Sheer Cold: a guaranteed
// no-op branch if the target outlevels the user (the one accuracy-
// independent fail condition this engine tracks; the catalogue's listed
// Accuracy already encodes the 30% base chance pkg/engine's miss branch
// applies before this function ever runs), otherwise a hit for exactly the
// target's current HP.
func ohko(ctx Context) ([]instructions.BattleInstructions, error) {
	user, target := ctx.User(), ctx.Target()
	if target.Level > user.Level {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	return []instructions.BattleInstructions{{
		Percentage:   100,
		Instructions: []instructions.Instruction{&instructions.Damage{Target: ctx.TargetPos, Amount: target.HP}},
	}}, nil
}
