package damage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/repository"
	"goldbox-rpg/pkg/typechart"
)

func singlesState(t *testing.T) *battle.State {
	t.Helper()
	f, err := format.New("gen9customgame", 9, format.Singles, 6, 0, nil, format.BanList{})
	require.NoError(t, err)
	return battle.New(f)
}

func basicMon(species ident.Species, types []ident.Type, stats battle.BaseStats) *battle.Pokemon {
	return &battle.Pokemon{
		Species: species, Level: 100, HP: 200, MaxHP: 200,
		Base: stats, Stats: stats,
		Types: types,
	}
}

func TestCalculate_StatusMoveDealsNoDamage(t *testing.T) {
	attacker := basicMon(ident.NewSpecies("pikachu"), []ident.Type{ident.TypeElectric}, battle.BaseStats{HP: 100, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100})
	defender := basicMon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, battle.BaseStats{HP: 200, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 50})

	result := Calculate(Context{
		State: singlesState(t), Chart: typechart.New(9),
		Attacker: attacker, Defender: defender,
		MoveData:   repository.MoveRecord{Category: ident.CategoryStatus},
		DamageRoll: 1.0,
	})
	assert.Equal(t, 0, result.Damage)
	assert.False(t, result.Blocked)
}

func TestCalculate_TypeImmunityBlocks(t *testing.T) {
	attacker := basicMon(ident.NewSpecies("gengar"), []ident.Type{ident.TypeGhost}, battle.BaseStats{HP: 100, Atk: 100, Def: 100, SpA: 130, SpD: 100, Spe: 110})
	defender := basicMon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, battle.BaseStats{HP: 200, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 50})

	result := Calculate(Context{
		State: singlesState(t), Chart: typechart.New(9),
		Attacker: attacker, Defender: defender,
		MoveData: repository.MoveRecord{
			Category: ident.CategorySpecial, Type: ident.TypeGhost, BasePower: 80, Accuracy: 100,
		},
		DamageRoll: 1.0,
	})
	assert.True(t, result.Blocked)
	assert.Equal(t, 0, result.Damage)
}

func TestCalculate_MinimumOneDamage(t *testing.T) {
	attacker := basicMon(ident.NewSpecies("caterpie"), []ident.Type{ident.TypeBug}, battle.BaseStats{HP: 45, Atk: 30, Def: 35, SpA: 20, SpD: 20, Spe: 45})
	defender := basicMon(ident.NewSpecies("steelix"), []ident.Type{ident.TypeSteel, ident.TypeGround}, battle.BaseStats{HP: 75, Atk: 85, Def: 200, SpA: 55, SpD: 65, Spe: 30})

	result := Calculate(Context{
		State: singlesState(t), Chart: typechart.New(9),
		Attacker: attacker, Defender: defender,
		MoveData: repository.MoveRecord{
			Category: ident.CategoryPhysical, Type: ident.TypeBug, BasePower: 35, Accuracy: 100,
		},
		DamageRoll: 0.85,
	})
	assert.GreaterOrEqual(t, result.Damage, 1)
}

func TestCalculate_STABAppliesForMatchingType(t *testing.T) {
	chart := typechart.New(9)
	defender := basicMon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, battle.BaseStats{HP: 200, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 50})

	stabAttacker := basicMon(ident.NewSpecies("pikachu"), []ident.Type{ident.TypeElectric}, battle.BaseStats{HP: 100, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100})
	noStabAttacker := basicMon(ident.NewSpecies("pikachu"), []ident.Type{ident.TypeNormal}, battle.BaseStats{HP: 100, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100})

	move := repository.MoveRecord{Category: ident.CategorySpecial, Type: ident.TypeElectric, BasePower: 90, Accuracy: 100}

	withSTAB := Calculate(Context{State: singlesState(t), Chart: chart, Attacker: stabAttacker, Defender: defender, MoveData: move, DamageRoll: 1.0})
	withoutSTAB := Calculate(Context{State: singlesState(t), Chart: chart, Attacker: noStabAttacker, Defender: defender, MoveData: move, DamageRoll: 1.0})

	assert.Greater(t, withSTAB.Damage, withoutSTAB.Damage)
}

func TestCalculate_BurnHalvesPhysicalDamageUnlessGuts(t *testing.T) {
	defender := basicMon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, battle.BaseStats{HP: 200, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 50})
	move := repository.MoveRecord{Category: ident.CategoryPhysical, Type: ident.TypeNormal, BasePower: 80, Accuracy: 100}

	healthy := basicMon(ident.NewSpecies("ursaring"), []ident.Type{ident.TypeNormal}, battle.BaseStats{HP: 90, Atk: 130, Def: 75, SpA: 75, SpD: 75, Spe: 55})
	burned := basicMon(ident.NewSpecies("ursaring"), []ident.Type{ident.TypeNormal}, battle.BaseStats{HP: 90, Atk: 130, Def: 75, SpA: 75, SpD: 75, Spe: 55})
	burned.Status = ident.StatusBurn

	chart := typechart.New(9)
	healthyResult := Calculate(Context{State: singlesState(t), Chart: chart, Attacker: healthy, Defender: defender, MoveData: move, DamageRoll: 1.0})
	burnedResult := Calculate(Context{State: singlesState(t), Chart: chart, Attacker: burned, Defender: defender, MoveData: move, DamageRoll: 1.0})

	assert.Less(t, burnedResult.Damage, healthyResult.Damage)

	gutsBurned := basicMon(ident.NewSpecies("ursaring"), []ident.Type{ident.TypeNormal}, battle.BaseStats{HP: 90, Atk: 130, Def: 75, SpA: 75, SpD: 75, Spe: 55})
	gutsBurned.Status = ident.StatusBurn
	gutsBurned.Ability = ident.NewAbility("guts")
	gutsResult := Calculate(Context{State: singlesState(t), Chart: chart, Attacker: gutsBurned, Defender: defender, MoveData: move, DamageRoll: 1.0})

	assert.Greater(t, gutsResult.Damage, burnedResult.Damage, "Guts negates the burn penalty and boosts Attack instead")
}

func TestCalculate_SpreadReductionInDoubles(t *testing.T) {
	f, err := format.New("gen9vgc", 9, format.VGC, 6, 0, nil, format.BanList{})
	require.NoError(t, err)
	state := battle.New(f)

	attacker := basicMon(ident.NewSpecies("pikachu"), []ident.Type{ident.TypeElectric}, battle.BaseStats{HP: 100, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100})
	defender := basicMon(ident.NewSpecies("snorlax"), []ident.Type{ident.TypeNormal}, battle.BaseStats{HP: 200, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 50})
	move := repository.MoveRecord{Category: ident.CategorySpecial, Type: ident.TypeElectric, BasePower: 90, Accuracy: 100, Target: ident.TargetAllAdjacentFoes}

	chart := typechart.New(9)
	single := Calculate(Context{State: state, Chart: chart, Attacker: attacker, Defender: defender, MoveData: move, DamageRoll: 1.0, TargetCount: 1})
	spread := Calculate(Context{State: state, Chart: chart, Attacker: attacker, Defender: defender, MoveData: move, DamageRoll: 1.0, TargetCount: 2})

	assert.Less(t, spread.Damage, single.Damage)
}
