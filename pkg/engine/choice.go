package engine

import (
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
)

// ChoiceKind discriminates the four action shapes spec.md §4.3 names.
type ChoiceKind uint8

const (
	ChoiceNone ChoiceKind = iota
	ChoiceSwitch
	ChoiceMove
	ChoiceMoveTera
)

// Choice is one side's declared action for the turn. Targets may be left
// nil to have GenerateInstructions auto-resolve them from the move's
// target class (spec.md §4.3 step 1).
type Choice struct {
	Kind ChoiceKind

	RosterIndex int // ChoiceSwitch: which roster slot to bring in

	MoveIndex int                     // ChoiceMove/ChoiceMoveTera: index into Moves[4]
	Targets   []format.BattlePosition // explicit targets, or nil to auto-resolve
	TeraType  ident.Type              // ChoiceMoveTera only

	slot int // which of the user's own active slots is acting (singles: always 0)
}

func (c Choice) isSwitch() bool { return c.Kind == ChoiceSwitch }
func (c Choice) isMove() bool   { return c.Kind == ChoiceMove || c.Kind == ChoiceMoveTera }
