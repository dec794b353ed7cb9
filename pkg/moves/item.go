package moves

import (
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// noItem is the sentinel empty item value, matching ident.Item's zero value
// for "not holding anything."
const noItem = ident.Item("")

// knockOff deals its (generically-handled, already 1.5x-boosted by
// pkg/engine's variableBasePower when the target holds a removable item)
// damage, then strips the target's item outright unless it's protected by
// Multitype/Sticky Hold-style stickiness, which this engine doesn't yet
// model as an ability hook — only the plain "has an item" case is covered.
func knockOff(ctx Context) ([]instructions.BattleInstructions, error) {
	branches, err := GenericDamagingEffect(ctx)
	if err != nil {
		return nil, err
	}
	target := ctx.Target()
	if target.Item == noItem {
		return branches, nil
	}
	for i := range branches {
		if len(branches[i].Instructions) == 0 {
			continue // this branch's hit missed/failed; nothing to knock off
		}
		branches[i].Instructions = append(branches[i].Instructions, &instructions.ChangeItem{Target: ctx.TargetPos, Item: noItem})
	}
	return branches, nil
}

// thief deals its damage, then steals the target's item for the user if
// the user is empty-handed and the target isn't (spec.md §4.1 item
// interaction family).
func thief(ctx Context) ([]instructions.BattleInstructions, error) {
	branches, err := GenericDamagingEffect(ctx)
	if err != nil {
		return nil, err
	}
	user, target := ctx.User(), ctx.Target()
	if user.Item != noItem || target.Item == noItem {
		return branches, nil
	}
	stolen := target.Item
	for i := range branches {
		if len(branches[i].Instructions) == 0 {
			continue
		}
		branches[i].Instructions = append(branches[i].Instructions,
			&instructions.ChangeItem{Target: ctx.TargetPos, Item: noItem},
			&instructions.ChangeItem{Target: ctx.UserPos, Item: stolen},
		)
	}
	return branches, nil
}

// trick swaps the user's and target's held items outright, guaranteed
// success regardless of what either side is holding (including neither).
func trick(ctx Context) ([]instructions.BattleInstructions, error) {
	user, target := ctx.User(), ctx.Target()
	return []instructions.BattleInstructions{{
		Percentage: 100,
		Instructions: []instructions.Instruction{
			&instructions.ChangeItem{Target: ctx.UserPos, Item: target.Item},
			&instructions.ChangeItem{Target: ctx.TargetPos, Item: user.Item},
		},
	}}, nil
}

// fling hurls the user's held item at the target for damage (pkg/engine's
// variableBasePower already resolved the catalogue's 0 base power into the
// item's FlingPower before pkg/damage ran, so ctx.DamageDealt is already
// correct here), consuming the item; it is a guaranteed no-op branch if the
// user wasn't holding anything flingable, in which case DamageDealt is 0.
func fling(ctx Context) ([]instructions.BattleInstructions, error) {
	if ctx.DamageDealt <= 0 {
		return []instructions.BattleInstructions{{Percentage: 100}}, nil
	}
	return []instructions.BattleInstructions{{
		Percentage: 100,
		Instructions: []instructions.Instruction{
			&instructions.Damage{Target: ctx.TargetPos, Amount: ctx.DamageDealt},
			&instructions.ChangeItem{Target: ctx.UserPos, Item: noItem},
		},
	}}, nil
}
