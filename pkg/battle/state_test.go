package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
)

func testFormat(t *testing.T) *format.BattleFormat {
	t.Helper()
	f, err := format.New("gen9customgame", 9, format.Singles, 6, 1, nil, format.BanList{})
	require.NoError(t, err)
	return f
}

func TestNew_AllocatesEmptySidesAndID(t *testing.T) {
	s := New(testFormat(t))

	require.NotNil(t, s.Sides[0])
	require.NotNil(t, s.Sides[1])
	assert.Equal(t, 0, s.Turn)
	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID), "New assigns a nonzero correlation ID")
}

func TestPokemonAt_EmptyAndOutOfRange(t *testing.T) {
	s := New(testFormat(t))

	assert.Nil(t, s.PokemonAt(format.BattlePosition{Side: 0, Slot: 0}))
	assert.Nil(t, s.PokemonAt(format.BattlePosition{Side: 2, Slot: 0}))
}

func TestPokemonAt_ResolvesActiveSlot(t *testing.T) {
	s := New(testFormat(t))
	mon := &Pokemon{Species: ident.NewSpecies("pikachu"), HP: 35, MaxHP: 35}
	s.Sides[0].Roster = []*Pokemon{mon}
	s.Sides[0].SetActive(0, 0)

	assert.Same(t, mon, s.PokemonAt(format.BattlePosition{Side: 0, Slot: 0}))
}

func TestActivePositions_OnlyOccupiedSlots(t *testing.T) {
	s := New(testFormat(t))
	mon := &Pokemon{Species: ident.NewSpecies("pikachu"), HP: 35, MaxHP: 35}
	s.Sides[0].Roster = []*Pokemon{mon}
	s.Sides[0].SetActive(0, 0)

	positions := s.ActivePositions()
	assert.Equal(t, []format.BattlePosition{{Side: 0, Slot: 0}}, positions)
}

func TestClone_PreservesIDAndDeepCopiesSides(t *testing.T) {
	s := New(testFormat(t))
	mon := &Pokemon{Species: ident.NewSpecies("pikachu"), HP: 35, MaxHP: 35}
	s.Sides[0].Roster = []*Pokemon{mon}
	s.Sides[0].SetActive(0, 0)
	s.Turn = 3

	cp := s.Clone()
	assert.Equal(t, s.ID, cp.ID, "Clone preserves the original's correlation ID")
	assert.Equal(t, s.Turn, cp.Turn)

	cp.Sides[0].Roster[0].HP = 1
	assert.Equal(t, 35, s.Sides[0].Roster[0].HP, "Clone deep-copies roster Pokémon")
}

func TestString_RendersTurnWeatherAndRosterSizes(t *testing.T) {
	s := New(testFormat(t))
	s.Sides[0].Roster = []*Pokemon{{Species: ident.NewSpecies("pikachu")}}

	assert.Contains(t, s.String(), "turn=0")
	assert.Contains(t, s.String(), "sides=[1,0 active]")
}
