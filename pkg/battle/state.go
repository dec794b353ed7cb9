package battle

import (
	"fmt"

	"github.com/google/uuid"

	"goldbox-rpg/pkg/format"
)

// State is the complete mutable world: a format descriptor, two sides, a
// field, and a turn counter (spec.md §3 "Battle state"). It is the sole
// argument every pure generation function takes by reference; no hidden
// global state is consulted during mutation (spec.md §3, §9).
type State struct {
	// ID identifies this battle instance across process boundaries (log
	// correlation, a future UI session); generation mechanics never read it.
	ID uuid.UUID

	Format *format.BattleFormat
	Sides  [2]*Side
	Field  Field
	Turn   int
}

// New constructs an empty battle in the given format, with both sides
// allocated but no Pokémon in their rosters yet (callers populate Sides[i]
// .Roster from the data repository before starting the first turn).
func New(f *format.BattleFormat) *State {
	return &State{
		ID:     uuid.New(),
		Format: f,
		Sides: [2]*Side{
			NewSide(f.ActivePerSide),
			NewSide(f.ActivePerSide),
		},
	}
}

// PokemonAt resolves a BattlePosition to the Pokémon there, or nil.
func (s *State) PokemonAt(pos format.BattlePosition) *Pokemon {
	if pos.Side < 0 || pos.Side > 1 {
		return nil
	}
	return s.Sides[pos.Side].ActiveAt(pos.Slot)
}

// SideOf returns the side a BattlePosition belongs to.
func (s *State) SideOf(pos format.BattlePosition) *Side { return s.Sides[pos.Side] }

// ActivePositions returns every currently-occupied BattlePosition across
// both sides, in side-then-slot order.
func (s *State) ActivePositions() []format.BattlePosition {
	var out []format.BattlePosition
	for side := 0; side < 2; side++ {
		for slot := 0; slot < len(s.Sides[side].Active); slot++ {
			if s.Sides[side].ActiveAt(slot) != nil {
				out = append(out, format.BattlePosition{Side: side, Slot: slot})
			}
		}
	}
	return out
}

// Clone deep-copies the entire state in O(team size), the primitive branch
// search and instruction-application callers rely on (spec.md §5, §9).
func (s *State) Clone() *State {
	cp := &State{
		ID:     s.ID,
		Format: s.Format,
		Field:  s.Field.Clone(),
		Turn:   s.Turn,
	}
	cp.Sides[0] = s.Sides[0].Clone()
	cp.Sides[1] = s.Sides[1].Clone()
	return cp
}

// String renders a debug representation used by tests as golden output
// (spec.md §6 "State serialisation").
func (s *State) String() string {
	return fmt.Sprintf("turn=%d weather=%s terrain=%s sides=[%d,%d active]",
		s.Turn, s.Field.Weather, s.Field.Terrain, len(s.Sides[0].Roster), len(s.Sides[1].Roster))
}
