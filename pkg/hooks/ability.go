package hooks

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/typechart"
)

// AbilityContext is the information an ability callback needs to compute
// its effect. Not every field is populated for every call site: a
// switch-in hook has no move type, an end-of-turn hook has no target.
type AbilityContext struct {
	User   *battle.Pokemon
	Target *battle.Pokemon // nil when the hook isn't move-triggered

	MoveType   ident.Type // ident.TypeNone when not applicable
	HasMove    bool
	IsCritical bool
	IsContact  bool
	IsBite     bool

	Chart *typechart.Chart // required for effectiveness-dependent abilities
}

// AbilityEffectResult is the uniform output of every ability callback: a
// set of multipliers defaulting to identity (1.0) and flags defaulting to
// false, so an unhandled ability and an ability with no effect in this
// context look identical to the caller.
type AbilityEffectResult struct {
	DamageMultiplier float64
	PowerMultiplier  float64

	AtkMultiplier float64
	DefMultiplier float64
	SpAMultiplier float64
	SpDMultiplier float64

	Immunity                bool
	IgnoreTypeEffectiveness bool
	StabMultiplier          float64

	NegatesWeather  bool
	BypassesScreens bool
}

// NoAbilityEffect is the identity result: every multiplier 1.0, every flag
// false.
func NoAbilityEffect() AbilityEffectResult {
	return AbilityEffectResult{
		DamageMultiplier: 1, PowerMultiplier: 1,
		AtkMultiplier: 1, DefMultiplier: 1, SpAMultiplier: 1, SpDMultiplier: 1,
		StabMultiplier: 1,
	}
}

func immunity() AbilityEffectResult {
	r := NoAbilityEffect()
	r.Immunity = true
	return r
}

func damageMultiplier(m float64) AbilityEffectResult {
	r := NoAbilityEffect()
	r.DamageMultiplier = m
	return r
}

type abilityFunc func(AbilityContext) AbilityEffectResult

// abilityRegistry mirrors the dispatch table shape of the Rust original's
// apply_ability_effect: a flat map from normalized ability name to a
// callback returning a uniform result struct. It covers the abilities with
// the widest competitive impact on damage calculation; any ability not
// listed here falls through to NoAbilityEffect, the same behavior the
// original gives its own unmatched arm.
var abilityRegistry = map[ident.Ability]abilityFunc{
	ident.NewAbility("levitate"):     typeImmunity(ident.TypeGround),
	ident.NewAbility("flashfire"):    typeImmunity(ident.TypeFire),
	ident.NewAbility("waterabsorb"):  typeImmunity(ident.TypeWater),
	ident.NewAbility("voltabsorb"):   typeImmunity(ident.TypeElectric),
	ident.NewAbility("sapsipper"):    typeImmunity(ident.TypeGrass),
	ident.NewAbility("stormdrain"):   typeImmunity(ident.TypeWater),
	ident.NewAbility("lightningrod"): typeImmunity(ident.TypeElectric),
	ident.NewAbility("motordrive"):   typeImmunity(ident.TypeElectric),
	ident.NewAbility("dryskin"):      applyDrySkin,
	ident.NewAbility("wonderguard"):  applyWonderGuard,

	ident.NewAbility("filter"):    damageReduction(0.75),
	ident.NewAbility("solidrock"): damageReduction(0.75),
	ident.NewAbility("multiscale"): applyMultiscale,
	ident.NewAbility("thickfat"):   applyThickFat,

	ident.NewAbility("neuroforce"): applyNeuroforce,
	ident.NewAbility("tintedlens"): applyTintedLens,

	ident.NewAbility("technician"): applyTechnician,
	ident.NewAbility("toughclaws"): contactBoost(1.3),
	ident.NewAbility("strongjaw"):  biteBoost(1.5),

	ident.NewAbility("hugepower"): statDoubler(2, 0, 0, 0),
	ident.NewAbility("purepower"): statDoubler(2, 0, 0, 0),
	ident.NewAbility("guts"):      applyGuts,
	ident.NewAbility("marvelscale"): applyMarvelScale,

	ident.NewAbility("adaptability"): applyAdaptability,

	ident.NewAbility("cloudnine"): weatherNegation,
	ident.NewAbility("airlock"):   weatherNegation,

	ident.NewAbility("infiltrator"): screenBypass,
}

// ApplyAbilityEffect resolves ability's effect in ctx, returning the
// identity result for any ability not in the registry.
func ApplyAbilityEffect(ability ident.Ability, ctx AbilityContext) AbilityEffectResult {
	fn, ok := abilityRegistry[ability]
	if !ok {
		return NoAbilityEffect()
	}
	return fn(ctx)
}

// AbilityNegatesWeather reports whether ability is Cloud Nine/Air Lock,
// used by pkg/damage's weather-modifier step without needing a full
// AbilityContext.
func AbilityNegatesWeather(ability ident.Ability) bool {
	switch ability {
	case ident.NewAbility("cloudnine"), ident.NewAbility("airlock"):
		return true
	default:
		return false
	}
}

// AbilityBypassesScreens reports whether ability is Infiltrator.
func AbilityBypassesScreens(ability ident.Ability) bool {
	return ability == ident.NewAbility("infiltrator")
}

func typeImmunity(t ident.Type) abilityFunc {
	return func(ctx AbilityContext) AbilityEffectResult {
		if ctx.HasMove && ctx.MoveType == t {
			return immunity()
		}
		return NoAbilityEffect()
	}
}

func damageReduction(m float64) abilityFunc {
	return func(AbilityContext) AbilityEffectResult { return damageMultiplier(m) }
}

func contactBoost(m float64) abilityFunc {
	return func(ctx AbilityContext) AbilityEffectResult {
		if ctx.IsContact {
			r := NoAbilityEffect()
			r.PowerMultiplier = m
			return r
		}
		return NoAbilityEffect()
	}
}

// biteBoost is Strong Jaw's power boost for bite-flagged moves (Bite, Crunch,
// Fire Fang, ...); IsBite is set by pkg/damage from the move record's "bite"
// flag.
func biteBoost(m float64) abilityFunc {
	return func(ctx AbilityContext) AbilityEffectResult {
		if ctx.IsBite {
			r := NoAbilityEffect()
			r.PowerMultiplier = m
			return r
		}
		return NoAbilityEffect()
	}
}

func applyDrySkin(ctx AbilityContext) AbilityEffectResult {
	if !ctx.HasMove {
		return NoAbilityEffect()
	}
	switch ctx.MoveType {
	case ident.TypeWater:
		return immunity()
	case ident.TypeFire:
		return damageMultiplier(1.25)
	default:
		return NoAbilityEffect()
	}
}

func applyWonderGuard(ctx AbilityContext) AbilityEffectResult {
	if !ctx.HasMove || ctx.User == nil || ctx.Chart == nil {
		return NoAbilityEffect()
	}
	eff := effectivenessAgainst(ctx.Chart, ctx.MoveType, ctx.User)
	if eff <= 1.0 {
		return immunity()
	}
	return NoAbilityEffect()
}

func applyMultiscale(ctx AbilityContext) AbilityEffectResult {
	if ctx.User != nil && ctx.User.HP == ctx.User.MaxHP {
		return damageMultiplier(0.5)
	}
	return NoAbilityEffect()
}

func applyThickFat(ctx AbilityContext) AbilityEffectResult {
	if ctx.HasMove && (ctx.MoveType == ident.TypeFire || ctx.MoveType == ident.TypeIce) {
		return damageMultiplier(0.5)
	}
	return NoAbilityEffect()
}

func applyNeuroforce(ctx AbilityContext) AbilityEffectResult {
	if !ctx.HasMove || ctx.Target == nil || ctx.Chart == nil {
		return NoAbilityEffect()
	}
	if effectivenessAgainst(ctx.Chart, ctx.MoveType, ctx.Target) > 1.0 {
		return damageMultiplier(1.25)
	}
	return NoAbilityEffect()
}

func applyTintedLens(ctx AbilityContext) AbilityEffectResult {
	if !ctx.HasMove || ctx.Target == nil || ctx.Chart == nil {
		return NoAbilityEffect()
	}
	if effectivenessAgainst(ctx.Chart, ctx.MoveType, ctx.Target) < 1.0 {
		return damageMultiplier(2.0)
	}
	return NoAbilityEffect()
}

func applyTechnician(ctx AbilityContext) AbilityEffectResult {
	// Technician's 1.5x applies to moves of base power <= 60; pkg/damage
	// checks the move's base power and discards this boost for moves above
	// 60, so here it is an unconditional boost.
	r := NoAbilityEffect()
	r.PowerMultiplier = 1.5
	return r
}

func statDoubler(atk, def, spa, spd float64) abilityFunc {
	return func(AbilityContext) AbilityEffectResult {
		r := NoAbilityEffect()
		if atk != 0 {
			r.AtkMultiplier = atk
		}
		if def != 0 {
			r.DefMultiplier = def
		}
		if spa != 0 {
			r.SpAMultiplier = spa
		}
		if spd != 0 {
			r.SpDMultiplier = spd
		}
		return r
	}
}

func applyGuts(ctx AbilityContext) AbilityEffectResult {
	if ctx.User != nil && ctx.User.Status != ident.StatusNone {
		r := NoAbilityEffect()
		r.AtkMultiplier = 1.5
		return r
	}
	return NoAbilityEffect()
}

func applyMarvelScale(ctx AbilityContext) AbilityEffectResult {
	if ctx.User != nil && ctx.User.Status != ident.StatusNone {
		r := NoAbilityEffect()
		r.DefMultiplier = 1.5
		return r
	}
	return NoAbilityEffect()
}

func applyAdaptability(ctx AbilityContext) AbilityEffectResult {
	r := NoAbilityEffect()
	r.StabMultiplier = 2.0
	return r
}

func weatherNegation(AbilityContext) AbilityEffectResult {
	r := NoAbilityEffect()
	r.NegatesWeather = true
	return r
}

func screenBypass(AbilityContext) AbilityEffectResult {
	r := NoAbilityEffect()
	r.BypassesScreens = true
	return r
}

// effectivenessAgainst reports moveType's combined effectiveness against
// target's current type(s). It never applies the Freeze-Dry override —
// that is move-specific, not ability-specific, and is applied directly by
// pkg/damage when the move being resolved is Freeze-Dry.
func effectivenessAgainst(chart *typechart.Chart, moveType ident.Type, target *battle.Pokemon) float64 {
	return float64(chart.EffectivenessAgainst(moveType, target.EffectiveTypes(), false))
}
