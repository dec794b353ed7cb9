package moves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
	"goldbox-rpg/pkg/repository"
	"goldbox-rpg/pkg/typechart"
)

func twoMonState(t *testing.T, user, target *battle.Pokemon) (*battle.State, format.BattlePosition, format.BattlePosition) {
	t.Helper()
	f, err := format.New("gen9customgame", 9, format.Singles, 6, 0, nil, format.BanList{})
	require.NoError(t, err)
	s := battle.New(f)
	s.Sides[0].Roster = []*battle.Pokemon{user}
	s.Sides[0].Active[0] = 0
	s.Sides[1].Roster = []*battle.Pokemon{target}
	s.Sides[1].Active[0] = 0
	return s, format.BattlePosition{Side: 0, Slot: 0}, format.BattlePosition{Side: 1, Slot: 0}
}

func mon(species ident.Species, types []ident.Type, hp, maxHP int) *battle.Pokemon {
	return &battle.Pokemon{
		Species: species, Level: 100, HP: hp, MaxHP: maxHP,
		Base: battle.BaseStats{HP: maxHP, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100},
		Stats: battle.BaseStats{HP: maxHP, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100},
		Types: types,
	}
}

func TestApply_UnregisteredStatusMoveReturnsError(t *testing.T) {
	user := mon(ident.NewSpecies("ditto"), []ident.Type{ident.TypeNormal}, 100, 100)
	target := mon(ident.NewSpecies("ditto"), []ident.Type{ident.TypeNormal}, 100, 100)
	state, userPos, targetPos := twoMonState(t, user, target)

	_, err := Apply(Context{
		State: state, Chart: typechart.New(9),
		Move:     ident.NewMoveID("batonpass"),
		MoveData: repository.MoveRecord{Category: ident.CategoryStatus},
		UserPos:  userPos, TargetPos: targetPos,
	})
	assert.ErrorIs(t, err, ErrMoveNotRegistered)
}

func TestApply_GenericDamagingMoveFallsThroughToDamageAndSecondary(t *testing.T) {
	user := mon(ident.NewSpecies("pikachu"), []ident.Type{ident.TypeElectric}, 100, 100)
	target := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 200, 200)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := Apply(Context{
		State: state, Chart: typechart.New(9),
		Move: ident.NewMoveID("thunderbolt"),
		MoveData: repository.MoveRecord{
			Category: ident.CategorySpecial, Type: ident.TypeElectric, BasePower: 90,
			Secondary: &repository.SecondaryEffect{Chance: 10, Status: ident.StatusParalyze},
		},
		UserPos: userPos, TargetPos: targetPos, DamageDealt: 55,
	})
	require.NoError(t, err)
	require.Len(t, branches, 2)

	var total float64
	for _, b := range branches {
		total += b.Percentage
		require.NotEmpty(t, b.Instructions)
		assert.Equal(t, instructions.KindDamage, b.Instructions[0].Kind())
	}
	assert.InDelta(t, 100, total, 0.01)
}

func TestThunderWave_GroundTypeImmuneInLaterGenerations(t *testing.T) {
	user := mon(ident.NewSpecies("pikachu"), []ident.Type{ident.TypeElectric}, 100, 100)
	target := mon(ident.NewSpecies("donphan"), []ident.Type{ident.TypeGround}, 100, 100)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := thunderWave(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Empty(t, branches[0].Instructions, "Ground-types are immune to Thunder Wave from gen 7 onward")
}

func TestToxic_PoisonTypeImmune(t *testing.T) {
	user := mon(ident.NewSpecies("gengar"), []ident.Type{ident.TypePoison}, 100, 100)
	target := mon(ident.NewSpecies("muk"), []ident.Type{ident.TypePoison}, 100, 100)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := toxic(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	assert.Empty(t, branches[0].Instructions)
}

func TestSwordsDance_BoostsUserAttackByTwoStages(t *testing.T) {
	user := mon(ident.NewSpecies("scyther"), []ident.Type{ident.TypeBug}, 100, 100)
	target := mon(ident.NewSpecies("scyther"), []ident.Type{ident.TypeBug}, 100, 100)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := swordsDance(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	require.Len(t, branches[0].Instructions, 1)
	boost, ok := branches[0].Instructions[0].(*instructions.BoostStats)
	require.True(t, ok)
	assert.Equal(t, 2, boost.Deltas[ident.StatAtk])
}

func TestRecover_HealsHalfMaxHP(t *testing.T) {
	user := mon(ident.NewSpecies("blissey"), []ident.Type{ident.TypeNormal}, 50, 200)
	target := mon(ident.NewSpecies("blissey"), []ident.Type{ident.TypeNormal}, 50, 200)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := recoverMove(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	heal, ok := branches[0].Instructions[0].(*instructions.Heal)
	require.True(t, ok)
	assert.Equal(t, 100, heal.Amount)
}

func TestMoonlight_HealsMoreInSun(t *testing.T) {
	user := mon(ident.NewSpecies("umbreon"), []ident.Type{ident.TypeDark}, 50, 300)
	target := mon(ident.NewSpecies("umbreon"), []ident.Type{ident.TypeDark}, 50, 300)
	state, userPos, targetPos := twoMonState(t, user, target)
	state.Field.Weather = ident.WeatherSun

	branches, err := weatherHeal(ident.WeatherSun)(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	heal := branches[0].Instructions[0].(*instructions.Heal)
	assert.Equal(t, 200, heal.Amount) // 2/3 of 300
}

func TestSpikes_CapsAtThreeLayers(t *testing.T) {
	user := mon(ident.NewSpecies("forretress"), []ident.Type{ident.TypeSteel}, 100, 100)
	target := mon(ident.NewSpecies("forretress"), []ident.Type{ident.TypeSteel}, 100, 100)
	state, userPos, targetPos := twoMonState(t, user, target)
	state.Sides[1].Conditions[ident.SideSpikes] = 3

	branches, err := spikes(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	assert.Empty(t, branches[0].Instructions)
}

func TestSubstitute_FailsWithoutEnoughHP(t *testing.T) {
	user := mon(ident.NewSpecies("gengar"), []ident.Type{ident.TypeGhost}, 10, 100)
	target := mon(ident.NewSpecies("gengar"), []ident.Type{ident.TypeGhost}, 100, 100)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := substitute(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	assert.Empty(t, branches[0].Instructions)
}

func TestLeechSeed_GrassTypeImmune(t *testing.T) {
	user := mon(ident.NewSpecies("venusaur"), []ident.Type{ident.TypeGrass}, 100, 100)
	target := mon(ident.NewSpecies("venusaur"), []ident.Type{ident.TypeGrass}, 100, 100)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := leechSeed(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	assert.Empty(t, branches[0].Instructions)
}
