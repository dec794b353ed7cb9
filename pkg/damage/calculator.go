package damage

import (
	"math"

	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/hooks"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/typechart"
)

// Calculate runs the full damage formula for one hit, per spec.md §4.2's
// ordered step list: base damage from level/power/attack/defense, then
// critical hit, random roll, type effectiveness, STAB, weather, screens,
// terrain, ability/item modifiers, status, and spread reduction, floored to
// a minimum of 1 whenever the move deals damage at all. It is grounded on
// the Rust original's calculate_damage_modern, generalized from that
// function's single hard-coded step order into the same steps driven by
// pkg/hooks for the ability/item-dependent ones.
func Calculate(ctx Context) Result {
	if ctx.MoveData.Category == ident.CategoryStatus || ctx.MoveData.BasePower == 0 {
		return Result{Damage: 0, TypeEffectiveness: 1}
	}

	moveType := ctx.MoveData.Type

	isContact := ctx.MoveData.HasFlag("contact")
	isBite := ctx.MoveData.HasFlag("bite")

	attackerAbilityCtx := hooks.AbilityContext{
		User: ctx.Attacker, Target: ctx.Defender,
		MoveType: moveType, HasMove: true,
		IsCritical: ctx.IsCritical, Chart: ctx.Chart,
		IsContact: isContact, IsBite: isBite,
	}
	defenderAbilityCtx := hooks.AbilityContext{
		User: ctx.Defender, Target: ctx.Attacker,
		MoveType: moveType, HasMove: true,
		IsCritical: ctx.IsCritical, Chart: ctx.Chart,
		IsContact: isContact, IsBite: isBite,
	}
	attackerAbility := hooks.ApplyAbilityEffect(ctx.Attacker.Ability, attackerAbilityCtx)
	if ctx.Attacker.Ability == ident.NewAbility("technician") && ctx.MoveData.BasePower > 60 {
		attackerAbility.PowerMultiplier = 1
	}
	defenderAbility := hooks.ApplyAbilityEffect(ctx.Defender.Ability, defenderAbilityCtx)

	if defenderAbility.Immunity {
		return Result{Damage: 0, Blocked: true, TypeEffectiveness: 0}
	}

	freezeDry := ctx.Move == ident.NewMoveID("freezedry")
	typeEff := float64(ctx.Chart.EffectivenessAgainst(moveType, ctx.Defender.EffectiveTypes(), freezeDry))
	if typeEff == 0 {
		return Result{Damage: 0, Blocked: true, TypeEffectiveness: 0}
	}

	attackStat, defenseStat := resolveStats(ctx, attackerAbility, defenderAbility)

	level := float64(ctx.Attacker.Level)
	basePower := float64(ctx.MoveData.BasePower) * attackerAbility.PowerMultiplier
	baseDamage := (2.0*level/5.0+2.0)*basePower*attackStat/defenseStat/50.0 + 2.0

	damage := baseDamage
	if ctx.IsCritical {
		damage *= 1.5
	}
	if ctx.DamageRoll > 0 {
		damage *= ctx.DamageRoll
	} else {
		damage *= 1.0
	}

	damage *= typeEff

	damage *= stabMultiplier(ctx)

	damage *= weatherModifier(ctx, moveType)
	damage *= screenModifier(ctx, attackerAbility)
	damage *= terrainModifier(ctx, moveType)

	damage *= attackerAbility.DamageMultiplier
	damage *= defenderAbility.DamageMultiplier

	item := hooks.ApplyItemEffect(ctx.Attacker.Item, hooks.ItemContext{
		User: ctx.Attacker, Target: ctx.Defender, MoveType: moveType, HasMove: true, IsCritical: ctx.IsCritical,
	})
	damage *= item.DamageMultiplier

	if ctx.MoveData.Category == ident.CategoryPhysical && ctx.Attacker.Status == ident.StatusBurn &&
		ctx.Attacker.Ability != ident.NewAbility("guts") {
		damage *= 0.5
	}

	if ctx.TargetCount > 1 && ctx.State != nil && ctx.State.Format != nil && ctx.State.Format.FormatType.SupportsSpreadMoves() {
		damage *= 0.75
	}

	finalDamage := int(math.Max(1, math.Floor(damage)))

	return Result{
		Damage:             finalDamage,
		WasCritical:        ctx.IsCritical,
		TypeEffectiveness:  typeEff,
		UserRecoilFraction: item.UserRecoilFraction,
	}
}

func resolveStats(ctx Context, attackerAbility, defenderAbility hooks.AbilityEffectResult) (attack, defense float64) {
	switch ctx.MoveData.Category {
	case ident.CategoryPhysical:
		attack = ctx.Attacker.EffectiveStat(ident.StatAtk) * attackerAbility.AtkMultiplier
		defense = ctx.Defender.EffectiveStat(ident.StatDef) * defenderAbility.DefMultiplier
	default: // Special
		attack = ctx.Attacker.EffectiveStat(ident.StatSpA) * attackerAbility.SpAMultiplier
		defense = ctx.Defender.EffectiveStat(ident.StatSpD) * defenderAbility.SpDMultiplier
	}

	attack *= hooks.ApplyItemStatMultiplier(ctx.Attacker.Item, ctx.MoveData.Category)

	if !weatherNegated(ctx) {
		defense *= weatherStatMultiplier(ctx)
	}

	return attack, defense
}

// weatherStatMultiplier applies Sandstorm's Rock-type Special Defense boost
// and Snow's Ice-type Defense boost (spec.md §4.2 step 2 weather-stat rule).
func weatherStatMultiplier(ctx Context) float64 {
	if ctx.State == nil {
		return 1.0
	}
	switch ctx.State.Field.Weather {
	case ident.WeatherSand:
		if ctx.MoveData.Category == ident.CategorySpecial && hasType(ctx.Defender, ident.TypeRock) {
			return 1.5
		}
	case ident.WeatherSnow:
		if ctx.MoveData.Category == ident.CategoryPhysical && hasType(ctx.Defender, ident.TypeIce) {
			return 1.5
		}
	}
	return 1.0
}

func stabMultiplier(ctx Context) float64 {
	adaptability := ctx.Attacker.Ability == ident.NewAbility("adaptability")
	moveType := ctx.MoveData.Type
	if ctx.Attacker.Terastallized {
		return typechart.STABForTera(ctx.Attacker.Types, ctx.Attacker.TeraType, moveType, adaptability)
	}
	return typechart.STABMultiplier(ctx.Attacker.Types, moveType, adaptability)
}

func weatherModifier(ctx Context, moveType ident.Type) float64 {
	if ctx.State == nil || weatherNegated(ctx) {
		return 1.0
	}
	switch ctx.State.Field.Weather {
	case ident.WeatherSun:
		switch moveType {
		case ident.TypeFire:
			return 1.5
		case ident.TypeWater:
			return 0.5
		}
	case ident.WeatherRain:
		switch moveType {
		case ident.TypeWater:
			return 1.5
		case ident.TypeFire:
			return 0.5
		}
	case ident.WeatherHarshSun:
		switch moveType {
		case ident.TypeFire:
			return 1.5
		case ident.TypeWater:
			return 0.0
		}
	case ident.WeatherHeavyRain:
		switch moveType {
		case ident.TypeWater:
			return 1.5
		case ident.TypeFire:
			return 0.0
		}
	}
	return 1.0
}

// weatherNegated reports whether any active Pokémon on either side holds
// Cloud Nine or Air Lock.
func weatherNegated(ctx Context) bool {
	if ctx.State == nil {
		return false
	}
	for _, pos := range ctx.State.ActivePositions() {
		p := ctx.State.PokemonAt(pos)
		if p != nil && hooks.AbilityNegatesWeather(p.Ability) {
			return true
		}
	}
	return false
}

func screenModifier(ctx Context, attackerAbility hooks.AbilityEffectResult) float64 {
	if attackerAbility.BypassesScreens || ctx.State == nil {
		return 1.0
	}
	side := ctx.State.SideOf(ctx.DefenderPos)
	spread := ctx.State.Format.FormatType.SupportsSpreadMoves()

	if side.HasCondition(ident.SideAuroraVeil) {
		if spread {
			return 2.0 / 3.0
		}
		return 0.5
	}
	switch ctx.MoveData.Category {
	case ident.CategoryPhysical:
		if side.HasCondition(ident.SideReflect) {
			if spread {
				return 2.0 / 3.0
			}
			return 0.5
		}
	case ident.CategorySpecial:
		if side.HasCondition(ident.SideLightScreen) {
			if spread {
				return 2.0 / 3.0
			}
			return 0.5
		}
	}
	return 1.0
}

func terrainModifier(ctx Context, moveType ident.Type) float64 {
	if ctx.State == nil {
		return 1.0
	}
	gen := ctx.State.Format.Generation
	boosted := 1.3
	if gen < 8 {
		boosted = 1.5
	}
	switch ctx.State.Field.Terrain {
	case ident.TerrainElectric:
		if moveType == ident.TypeElectric && isGrounded(ctx.Attacker) {
			return boosted
		}
	case ident.TerrainGrassy:
		if moveType == ident.TypeGrass && isGrounded(ctx.Attacker) {
			return boosted
		}
		if moveType == ident.TypeGround && isGrounded(ctx.Defender) {
			return 0.5
		}
	case ident.TerrainPsychic:
		if moveType == ident.TypePsychic && isGrounded(ctx.Attacker) {
			return boosted
		}
	case ident.TerrainMisty:
		if moveType == ident.TypeDragon && isGrounded(ctx.Defender) {
			return 0.5
		}
	}
	return 1.0
}

// isGrounded reports whether p is affected by terrain (spec.md §4.2 step 8):
// Flying-types, Levitate holders, Air Balloon holders and Magnet
// Rise/Telekinesis volatiles are all ungrounded.
func isGrounded(p *battle.Pokemon) bool {
	if hasType(p, ident.TypeFlying) {
		return false
	}
	if p.Ability == ident.NewAbility("levitate") {
		return false
	}
	if p.Item == ident.NewItem("airballoon") {
		return false
	}
	if p.HasVolatile(ident.VolatileMagnetRise) || p.HasVolatile(ident.VolatileTelekinesis) {
		return false
	}
	return true
}

func hasType(p *battle.Pokemon, t ident.Type) bool {
	for _, x := range p.EffectiveTypes() {
		if x == t {
			return true
		}
	}
	return false
}
