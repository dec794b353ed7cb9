package engine

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/repository"
)

// protectionBlocks reports whether targetPos is shielded from this hit by
// Protect/Detect on the Pokémon itself, or by Wide Guard/Quick Guard on its
// side (spec.md §4.1's protection family). A blocked hit fails outright, the
// same guaranteed no-op branch Protect's own move effect uses when it can't
// be used.
func protectionBlocks(s *battle.State, targetPos format.BattlePosition, moveData repository.MoveRecord) bool {
	target := s.PokemonAt(targetPos)
	if target != nil && target.HasVolatile(ident.VolatileProtect) {
		return true
	}
	side := s.Sides[targetPos.Side]
	if side == nil {
		return false
	}
	if side.HasCondition(ident.SideWideGuard) && moveData.Target.IsSpreadMove() {
		return true
	}
	if side.HasCondition(ident.SideQuickGuard) && moveData.Priority > 0 {
		return true
	}
	return false
}
