package moves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
	"goldbox-rpg/pkg/repository"
	"goldbox-rpg/pkg/typechart"
)

func TestCounter_FailsWithoutAQualifyingHitThisTurn(t *testing.T) {
	user := mon(ident.NewSpecies("blissey"), []ident.Type{ident.TypeNormal}, 200, 200)
	target := mon(ident.NewSpecies("machamp"), []ident.Type{ident.TypeFighting}, 200, 200)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := counter(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	assert.Empty(t, branches[0].Instructions)
}

func TestCounter_RetaliatesForDoubleThePhysicalHitTakenThisTurn(t *testing.T) {
	user := mon(ident.NewSpecies("chansey"), []ident.Type{ident.TypeNormal}, 200, 200)
	target := mon(ident.NewSpecies("machamp"), []ident.Type{ident.TypeFighting}, 200, 200)
	state, userPos, targetPos := twoMonState(t, user, target)
	user.LastHitDamage, user.LastHitCategory, user.LastHitTurn = 40, ident.CategoryPhysical, state.Turn

	branches, err := counter(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	dmg, ok := branches[0].Instructions[0].(*instructions.Damage)
	require.True(t, ok)
	assert.Equal(t, 80, dmg.Amount)
}

func TestCounter_IgnoresASpecialHit(t *testing.T) {
	user := mon(ident.NewSpecies("chansey"), []ident.Type{ident.TypeNormal}, 200, 200)
	target := mon(ident.NewSpecies("alakazam"), []ident.Type{ident.TypePsychic}, 200, 200)
	state, userPos, targetPos := twoMonState(t, user, target)
	user.LastHitDamage, user.LastHitCategory, user.LastHitTurn = 40, ident.CategorySpecial, state.Turn

	branches, err := counter(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	assert.Empty(t, branches[0].Instructions)
}

func TestMultiHitMove_FixedCountSkipsTheDistributionTable(t *testing.T) {
	user := mon(ident.NewSpecies("parasect"), []ident.Type{ident.TypeBug}, 200, 200)
	target := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 200, 200)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := multiHitMove(Context{
		State: state, UserPos: userPos, TargetPos: targetPos, Chart: typechart.New(9),
		Move:     ident.NewMoveID("bulletseed"),
		MoveData: repository.MoveRecord{BasePower: 25, Category: ident.CategoryPhysical, Type: ident.TypeGrass, MultiHit: [2]int{3, 3}},
	})
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.InDelta(t, 100, branches[0].Percentage, 0.01)
	assert.Len(t, branches[0].Instructions, 3)
}

func TestMultiHitMove_SkillLinkAlwaysHitsTheMax(t *testing.T) {
	user := mon(ident.NewSpecies("cloyster"), []ident.Type{ident.TypeIce}, 200, 200)
	user.Ability = ident.NewAbility("skilllink")
	target := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 200, 200)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := multiHitMove(Context{
		State: state, UserPos: userPos, TargetPos: targetPos, Chart: typechart.New(9),
		Move:     ident.NewMoveID("iciclespear"),
		MoveData: repository.MoveRecord{BasePower: 25, Category: ident.CategoryPhysical, Type: ident.TypeIce, MultiHit: [2]int{2, 5}},
	})
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Len(t, branches[0].Instructions, 5)
}

func TestSolarBeam_ChargesFirstOutsideSun(t *testing.T) {
	user := mon(ident.NewSpecies("venusaur"), []ident.Type{ident.TypeGrass}, 200, 200)
	target := mon(ident.NewSpecies("blastoise"), []ident.Type{ident.TypeWater}, 200, 200)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := solarBeam(Context{State: state, UserPos: userPos, TargetPos: targetPos, DamageDealt: 80})
	require.NoError(t, err)
	require.Len(t, branches[0].Instructions, 1)
	_, ok := branches[0].Instructions[0].(*instructions.ApplyVolatile)
	assert.True(t, ok, "first use outside Sun should only apply the charging volatile, dealing no damage")
}

func TestSolarBeam_ReleasesImmediatelyInSun(t *testing.T) {
	user := mon(ident.NewSpecies("venusaur"), []ident.Type{ident.TypeGrass}, 200, 200)
	target := mon(ident.NewSpecies("blastoise"), []ident.Type{ident.TypeWater}, 200, 200)
	state, userPos, targetPos := twoMonState(t, user, target)
	state.Field.Weather = ident.WeatherSun

	branches, err := solarBeam(Context{State: state, UserPos: userPos, TargetPos: targetPos, DamageDealt: 80})
	require.NoError(t, err)
	require.Len(t, branches[0].Instructions, 1)
	dmg, ok := branches[0].Instructions[0].(*instructions.Damage)
	require.True(t, ok)
	assert.Equal(t, 80, dmg.Amount)
}

func TestSolarBeam_ReleasesOnTheSecondTurnAfterCharging(t *testing.T) {
	user := mon(ident.NewSpecies("venusaur"), []ident.Type{ident.TypeGrass}, 200, 200)
	target := mon(ident.NewSpecies("blastoise"), []ident.Type{ident.TypeWater}, 200, 200)
	state, userPos, targetPos := twoMonState(t, user, target)
	user.Volatiles = map[ident.Volatile]*battle.VolatileInstance{ident.VolatileChargingTwoTurn: {Duration: 1}}

	branches, err := solarBeam(Context{State: state, UserPos: userPos, TargetPos: targetPos, DamageDealt: 80})
	require.NoError(t, err)
	require.Len(t, branches[0].Instructions, 2)
	var sawRemove, sawDamage bool
	for _, ins := range branches[0].Instructions {
		switch ins.(type) {
		case *instructions.RemoveVolatile:
			sawRemove = true
		case *instructions.Damage:
			sawDamage = true
		}
	}
	assert.True(t, sawRemove)
	assert.True(t, sawDamage)
}

func TestOHKO_FailsAgainstAHigherLevelTarget(t *testing.T) {
	user := mon(ident.NewSpecies("lapras"), []ident.Type{ident.TypeIce}, 200, 200)
	user.Level = 50
	target := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 200, 200)
	target.Level = 100
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := ohko(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	assert.Empty(t, branches[0].Instructions)
}

func TestOHKO_DealsDamageEqualToCurrentHP(t *testing.T) {
	user := mon(ident.NewSpecies("lapras"), []ident.Type{ident.TypeIce}, 200, 200)
	target := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 75, 200)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := ohko(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	dmg, ok := branches[0].Instructions[0].(*instructions.Damage)
	require.True(t, ok)
	assert.Equal(t, 75, dmg.Amount)
}

func TestTrick_SwapsItemsUnconditionally(t *testing.T) {
	user := mon(ident.NewSpecies("rotom"), []ident.Type{ident.TypeElectric}, 100, 100)
	user.Item = ident.NewItem("choicescarf")
	target := mon(ident.NewSpecies("ferrothorn"), []ident.Type{ident.TypeSteel}, 100, 100)
	target.Item = ident.NewItem("leftovers")
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := trick(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	require.Len(t, branches[0].Instructions, 2)
	first := branches[0].Instructions[0].(*instructions.ChangeItem)
	second := branches[0].Instructions[1].(*instructions.ChangeItem)
	assert.Equal(t, ident.NewItem("leftovers"), first.Item)
	assert.Equal(t, ident.NewItem("choicescarf"), second.Item)
}

func TestFling_NoOpWithoutDamage(t *testing.T) {
	user := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 200, 200)
	target := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 200, 200)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := fling(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	assert.Empty(t, branches[0].Instructions)
}

func TestRest_FullyHealsAndSleeps(t *testing.T) {
	user := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 50, 200)
	target := mon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, 50, 200)
	state, userPos, targetPos := twoMonState(t, user, target)

	branches, err := rest(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	require.Len(t, branches[0].Instructions, 2)
	heal := branches[0].Instructions[0].(*instructions.Heal)
	status := branches[0].Instructions[1].(*instructions.ApplyStatus)
	assert.Equal(t, 150, heal.Amount)
	assert.Equal(t, ident.StatusSleep, status.Status)
	assert.Equal(t, restSleepTurns, status.Duration)
}

func TestWish_FailsIfAlreadyPending(t *testing.T) {
	user := mon(ident.NewSpecies("clefable"), []ident.Type{ident.TypeFairy}, 200, 200)
	target := mon(ident.NewSpecies("clefable"), []ident.Type{ident.TypeFairy}, 200, 200)
	state, userPos, targetPos := twoMonState(t, user, target)
	state.Sides[0].Wishes[0] = &battle.WishState{HealAmount: 100, Turns: 1}

	branches, err := wish(Context{State: state, UserPos: userPos, TargetPos: targetPos})
	require.NoError(t, err)
	assert.Empty(t, branches[0].Instructions)
}
