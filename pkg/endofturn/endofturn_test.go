package endofturn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

func twoMonState(t *testing.T, a, b *battle.Pokemon) *battle.State {
	t.Helper()
	f, err := format.New("gen9customgame", 9, format.Singles, 6, 0, nil, format.BanList{})
	require.NoError(t, err)
	s := battle.New(f)
	s.Sides[0].Roster = []*battle.Pokemon{a}
	s.Sides[0].Active[0] = 0
	s.Sides[1].Roster = []*battle.Pokemon{b}
	s.Sides[1].Active[0] = 0
	return s
}

func mon(species ident.Species, types []ident.Type, hp, maxHP int) *battle.Pokemon {
	return &battle.Pokemon{
		Species: species, Level: 100, HP: hp, MaxHP: maxHP,
		Base:  battle.BaseStats{HP: maxHP, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100},
		Stats: battle.BaseStats{HP: maxHP, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100},
		Types: types,
	}
}

func TestStatusDamage_BurnDealsOneSixteenth(t *testing.T) {
	a := mon(ident.NewSpecies("machamp"), []ident.Type{ident.TypeFighting}, 160, 160)
	a.Status = ident.StatusBurn
	b := mon(ident.NewSpecies("machamp"), []ident.Type{ident.TypeFighting}, 160, 160)
	state := twoMonState(t, a, b)

	ins := statusDamage(state)
	require.Len(t, ins, 1)
	dmg, ok := ins[0].(*instructions.Damage)
	require.True(t, ok)
	assert.Equal(t, 10, dmg.Amount)
}

func TestStatusDamage_ToxicCounterIncreasesEachTurn(t *testing.T) {
	a := mon(ident.NewSpecies("muk"), []ident.Type{ident.TypePoison}, 200, 200)
	a.Status = ident.StatusBadlyPoisoned
	a.StatusDuration = 2 // third tick: 3/16
	b := mon(ident.NewSpecies("muk"), []ident.Type{ident.TypePoison}, 200, 200)
	state := twoMonState(t, a, b)

	ins := statusDamage(state)
	require.Len(t, ins, 2)
	assert.Equal(t, instructions.KindChangeStatusDuration, ins[0].Kind())
	dmg, ok := ins[1].(*instructions.Damage)
	require.True(t, ok)
	assert.Equal(t, 37, dmg.Amount) // 200*3/16
}

func TestStatusDamage_MagicGuardBlocksResidualDamage(t *testing.T) {
	a := mon(ident.NewSpecies("clefable"), []ident.Type{ident.TypeFairy}, 100, 100)
	a.Status = ident.StatusPoison
	a.Ability = ident.NewAbility("magicguard")
	b := mon(ident.NewSpecies("clefable"), []ident.Type{ident.TypeFairy}, 100, 100)
	state := twoMonState(t, a, b)

	assert.Empty(t, statusDamage(state))
}

func TestWeatherDamage_SandstormSparesImmuneTypes(t *testing.T) {
	a := mon(ident.NewSpecies("tyranitar"), []ident.Type{ident.TypeRock, ident.TypeDark}, 200, 200)
	b := mon(ident.NewSpecies("gyarados"), []ident.Type{ident.TypeWater, ident.TypeFlying}, 200, 200)
	state := twoMonState(t, a, b)
	state.Field.Weather = ident.WeatherSand

	ins := weatherDamage(state)
	require.Len(t, ins, 1)
	dmg := ins[0].(*instructions.Damage)
	assert.Equal(t, format.BattlePosition{Side: 1, Slot: 0}, dmg.Target)
	assert.Equal(t, 12, dmg.Amount)
}

func TestWeatherDamage_IceBodyHealsInHail(t *testing.T) {
	a := mon(ident.NewSpecies("beartic"), []ident.Type{ident.TypeIce}, 100, 200)
	a.Ability = ident.NewAbility("icebody")
	b := mon(ident.NewSpecies("beartic"), []ident.Type{ident.TypeIce}, 100, 200)
	state := twoMonState(t, a, b)
	state.Field.Weather = ident.WeatherHail

	ins := weatherDamage(state)
	require.Len(t, ins, 1)
	heal, ok := ins[0].(*instructions.Heal)
	require.True(t, ok)
	assert.Equal(t, format.BattlePosition{Side: 0, Slot: 0}, heal.Target)
}

func TestLeechSeedDamage_HealsMirroredOpponent(t *testing.T) {
	a := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 200, 200)
	a.Volatiles = map[ident.Volatile]*battle.VolatileInstance{ident.VolatileLeechSeed: {Duration: -1}}
	b := mon(ident.NewSpecies("venusaur"), []ident.Type{ident.TypeGrass}, 100, 200)
	state := twoMonState(t, a, b)

	ins := leechSeedDamage(state)
	require.Len(t, ins, 2)
	dmg := ins[0].(*instructions.Damage)
	heal := ins[1].(*instructions.Heal)
	assert.Equal(t, dmg.Amount, heal.Amount)
	assert.Equal(t, format.BattlePosition{Side: 0, Slot: 0}, dmg.Target)
	assert.Equal(t, format.BattlePosition{Side: 1, Slot: 0}, heal.Target)
}

func TestTerrainHealing_SkipsUngroundedPokemon(t *testing.T) {
	a := mon(ident.NewSpecies("togekiss"), []ident.Type{ident.TypeFairy, ident.TypeFlying}, 100, 300)
	b := mon(ident.NewSpecies("rillaboom"), []ident.Type{ident.TypeGrass}, 100, 300)
	state := twoMonState(t, a, b)
	state.Field.Terrain = ident.TerrainGrassy

	ins := terrainHealing(state)
	require.Len(t, ins, 1)
	heal := ins[0].(*instructions.Heal)
	assert.Equal(t, format.BattlePosition{Side: 1, Slot: 0}, heal.Target)
}

func TestPerishSongCountdown_FaintsAtZero(t *testing.T) {
	a := mon(ident.NewSpecies("gengar"), []ident.Type{ident.TypeGhost}, 100, 100)
	a.Volatiles = map[ident.Volatile]*battle.VolatileInstance{ident.VolatilePerishSong: {Duration: 1}}
	b := mon(ident.NewSpecies("gengar"), []ident.Type{ident.TypeGhost}, 100, 100)
	state := twoMonState(t, a, b)

	ins := perishSongCountdown(state)
	require.Len(t, ins, 2)
	assert.Equal(t, instructions.KindRemoveVolatile, ins[0].Kind())
	assert.Equal(t, instructions.KindFaint, ins[1].Kind())
}

func TestWishResolution_HealsSlotOccupantWhenItFires(t *testing.T) {
	a := mon(ident.NewSpecies("clefable"), []ident.Type{ident.TypeFairy}, 50, 200)
	b := mon(ident.NewSpecies("clefable"), []ident.Type{ident.TypeFairy}, 50, 200)
	state := twoMonState(t, a, b)
	state.Sides[0].Wishes[0] = &battle.WishState{HealAmount: 100, Turns: 1}

	ins := wishResolution(state)
	require.Len(t, ins, 2)
	heal, ok := ins[0].(*instructions.Heal)
	require.True(t, ok)
	assert.Equal(t, 100, heal.Amount)
	assert.Equal(t, instructions.KindRemoveWish, ins[1].Kind())
}

func TestFutureSightResolution_DecrementsWithoutFiringEarly(t *testing.T) {
	a := mon(ident.NewSpecies("gardevoir"), []ident.Type{ident.TypePsychic, ident.TypeFairy}, 100, 100)
	b := mon(ident.NewSpecies("gardevoir"), []ident.Type{ident.TypePsychic, ident.TypeFairy}, 100, 100)
	state := twoMonState(t, a, b)
	state.Sides[1].FutureSights[0] = &battle.FutureSightState{Damage: 80, Turns: 2, MoveName: "futuresight"}

	ins := futureSightResolution(state)
	require.Len(t, ins, 1)
	assert.Equal(t, instructions.KindSetFutureSight, ins[0].Kind())
}

func TestProcess_AppliesStepsInOrderAgainstMutatingClone(t *testing.T) {
	a := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 5, 160)
	a.Status = ident.StatusBurn
	a.Volatiles = map[ident.Volatile]*battle.VolatileInstance{ident.VolatileLeechSeed: {Duration: -1}}
	b := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 160, 160)
	state := twoMonState(t, a, b)

	all := Process(state)
	require.NotEmpty(t, all)

	// The burn damage alone (10) exceeds a's remaining 5 HP, so Leech Seed
	// should deal no further damage to an already-fainted Pokémon this turn.
	var sawLeechSeedDamageOnA bool
	for _, ins := range all {
		if dmg, ok := ins.(*instructions.Damage); ok && dmg.Target == (format.BattlePosition{Side: 0, Slot: 0}) {
			if dmg.Amount == 10 {
				continue // the burn tick itself
			}
			sawLeechSeedDamageOnA = true
		}
	}
	assert.False(t, sawLeechSeedDamageOnA, "a fainted Pokémon should not take further residual damage the same turn")
}
