package engine

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
)

// actor pairs one side's resolved choice with the position it's acting
// from, in execution order.
type actor struct {
	Side   int
	Pos    format.BattlePosition
	Choice Choice
}

// determineOrder resolves which side acts first this turn (spec.md §4.3
// step 2): both switches compare Speed; one switch goes first unless the
// opponent's move is Pursuit; otherwise higher move priority acts first,
// ties broken by effective Speed.
func determineOrder(s *battle.State, c0, c1 Choice) (first, second actor) {
	pos0 := format.BattlePosition{Side: 0, Slot: c0.slot}
	pos1 := format.BattlePosition{Side: 1, Slot: c1.slot}
	a0 := actor{Side: 0, Pos: pos0, Choice: c0}
	a1 := actor{Side: 1, Pos: pos1, Choice: c1}

	switch {
	case c0.isSwitch() && c1.isSwitch():
		if effectiveSpeed(s, pos0) >= effectiveSpeed(s, pos1) {
			return a0, a1
		}
		return a1, a0
	case c0.isSwitch():
		if c1.isMove() && isPursuit(activeMove(s, pos1, c1)) {
			return a1, a0
		}
		return a0, a1
	case c1.isSwitch():
		if c0.isMove() && isPursuit(activeMove(s, pos0, c0)) {
			return a0, a1
		}
		return a1, a0
	}

	p0, p1 := movePriority(s.PokemonAt(pos0), activeMove(s, pos0, c0)), movePriority(s.PokemonAt(pos1), activeMove(s, pos1, c1))
	switch {
	case p0 > p1:
		return a0, a1
	case p1 > p0:
		return a1, a0
	}
	if effectiveSpeed(s, pos0) >= effectiveSpeed(s, pos1) {
		return a0, a1
	}
	return a1, a0
}

// activeMove resolves the MoveSlot a choice refers to; a zero-value slot is
// returned for a None/Switch choice or an out-of-range index, which sorts
// as priority 0 and isn't mistaken for Pursuit.
func activeMove(s *battle.State, pos format.BattlePosition, c Choice) battle.MoveSlot {
	if !c.isMove() {
		return battle.MoveSlot{}
	}
	p := s.PokemonAt(pos)
	if p == nil || c.MoveIndex < 0 || c.MoveIndex >= len(p.Moves) {
		return battle.MoveSlot{}
	}
	return p.Moves[c.MoveIndex]
}
