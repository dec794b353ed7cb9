package format

import "goldbox-rpg/pkg/ident"

// ResolveTargets computes the default target set for a move's target class
// when the caller's choice omitted explicit targets (spec.md §4.3 step 1).
// It mirrors the original engine's get_default_targets: Normal/AdjacentFoe
// pick the first opposing slot, spread classes pick every legal slot, Self
// picks the user.
func ResolveTargets(class ident.TargetClass, user BattlePosition, activePerSide int) []BattlePosition {
	switch class {
	case ident.TargetSelf:
		return []BattlePosition{user}
	case ident.TargetNormal, ident.TargetAdjacentFoe, ident.TargetAny:
		return []BattlePosition{{Side: user.OpponentSide(), Slot: 0}}
	case ident.TargetAllAdjacentFoes:
		return AllAdjacentFoes(user, activePerSide)
	case ident.TargetAllAdjacent:
		return AllAdjacent(user, activePerSide)
	case ident.TargetAdjacentAlly:
		return AdjacentAlly(user, activePerSide)
	case ident.TargetAdjacentAllyOrSelf:
		return []BattlePosition{user}
	case ident.TargetAllyTeam, ident.TargetAllySide:
		out := make([]BattlePosition, 0, activePerSide)
		for slot := 0; slot < activePerSide; slot++ {
			out = append(out, BattlePosition{Side: user.Side, Slot: slot})
		}
		return out
	case ident.TargetFoeSide:
		out := make([]BattlePosition, 0, activePerSide)
		for slot := 0; slot < activePerSide; slot++ {
			out = append(out, BattlePosition{Side: user.OpponentSide(), Slot: slot})
		}
		return out
	case ident.TargetAll:
		out := make([]BattlePosition, 0, activePerSide*2)
		for side := 0; side < 2; side++ {
			for slot := 0; slot < activePerSide; slot++ {
				out = append(out, BattlePosition{Side: side, Slot: slot})
			}
		}
		return out
	case ident.TargetRandomNormal:
		// Deterministic callers resolve the random slot themselves via the
		// engine's PRNG; default to slot 0 here so a caller that never
		// re-resolves still gets a legal, in-bounds target.
		return []BattlePosition{{Side: user.OpponentSide(), Slot: 0}}
	case ident.TargetScripted:
		// Counter/Mirror Coat/Metal Burst resolve their real target inside
		// the move effect itself, from the stored last-hit attacker.
		return nil
	case ident.TargetAllies:
		return AdjacentAlly(user, activePerSide)
	default:
		return []BattlePosition{{Side: user.OpponentSide(), Slot: 0}}
	}
}
