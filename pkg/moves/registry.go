package moves

import (
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
)

// EffectFunc builds the probabilistic instruction branches for one move's
// effect, given an already-resolved Context (the damage, if any, already
// computed by pkg/damage).
type EffectFunc func(ctx Context) ([]instructions.BattleInstructions, error)

// registry holds every move with behavior beyond what GenericDamagingEffect
// already covers from catalogue data alone (spec.md §4.1). It spans every
// named move family (status infliction, stat stages, healing, field
// effects, screens/hazards, protection, multi-hit, counter, variable
// power, two-turn charge, item interaction) with at least one
// representative move, but is still a representative subset rather than an
// exhaustive catalogue of every move across nine generations; anything
// absent here falls through to GenericDamagingEffect when it deals damage,
// or ErrMoveNotRegistered when it doesn't.
var registry = map[ident.MoveID]EffectFunc{
	// Status infliction.
	"thunderwave":  thunderWave,
	"stunspore":    stunSpore,
	"glare":        glare,
	"toxic":        toxic,
	"poisonpowder": poisonPowder,
	"willowisp":    willOWisp,
	"sleeppowder":  sleepMove,
	"spore":        sleepMove,

	// Self/target stat stages.
	"swordsdance": swordsDance,
	"dragondance": dragonDance,
	"nastyplot":   nastyPlot,
	"agility":     agility,
	"growth":      growth,
	"calmmind":    calmMind,
	"bulkup":      bulkUp,
	"growl":       growl,
	"leer":        leer,
	"tailwhip":    tailWhip,
	"stringshot":  stringShot,

	// Healing.
	"recover":   recoverMove,
	"softboiled": recoverMove,
	"milkdrink": recoverMove,
	"slackoff":  recoverMove,
	"roost":     roost,
	"moonlight":  weatherHeal(ident.WeatherSun),
	"synthesis":  weatherHeal(ident.WeatherSun),
	"morningsun": weatherHeal(ident.WeatherSun),
	"shoreup":    weatherHeal(ident.WeatherSand),
	"aquaring":   aquaRing,

	// Weather/terrain/global field setters.
	"sunnyday":   weatherMove(ident.WeatherSun),
	"raindance":  weatherMove(ident.WeatherRain),
	"sandstorm":  weatherMove(ident.WeatherSand),
	"hail":       weatherMove(ident.WeatherHail),
	"snowscape":  weatherMove(ident.WeatherSnow),
	"electricterrain": terrainMove(ident.TerrainElectric),
	"grassyterrain":   terrainMove(ident.TerrainGrassy),
	"mistyterrain":    terrainMove(ident.TerrainMisty),
	"psychicterrain":  terrainMove(ident.TerrainPsychic),
	"trickroom": trickRoom,
	"gravity":   gravity,

	// Screens and hazards.
	"reflect":     screenMove(ident.SideReflect, 5),
	"lightscreen": screenMove(ident.SideLightScreen, 5),
	"auroraveil":  screenMove(ident.SideAuroraVeil, 5),
	"tailwind":    screenMove(ident.SideTailwind, 4),
	"stealthrock": stealthRock,
	"stickyweb":   stickyWeb,
	"spikes":      spikes,
	"toxicspikes": toxicSpikes,
	"rapidspin":   rapidSpin,

	// Protection and drain-over-time.
	"protect":    protect,
	"detect":     protect,
	"endure":     endure,
	"quickguard": quickGuard,
	"wideguard":  wideGuard,
	"substitute": substitute,
	"leechseed":  leechSeed,
	"taunt":      tauntMove,

	// Counter family: retaliate for a multiple of the last hit taken.
	"counter":     counter,
	"mirrorcoat":  mirrorCoat,
	"metalburst":  metalBurstFamily,
	"comeuppance": metalBurstFamily,

	// Multi-hit family: 2-5 strikes (or a fixed/Skill-Link-maxed count).
	"bulletseed":    multiHitMove,
	"rockblast":     multiHitMove,
	"pinmissile":    multiHitMove,
	"furyattack":    multiHitMove,
	"spikecannon":   multiHitMove,
	"barrage":       multiHitMove,
	"cometpunch":    multiHitMove,
	"doubleslap":    multiHitMove,
	"iciclespear":   multiHitMove,
	"tailslap":      multiHitMove,
	"scaleshot":     multiHitMove,
	"surgingstrikes": multiHitMove,
	"dragondarts":   multiHitMove,
	"populationbomb": multiHitMove,

	// Two-turn charge family.
	"solarbeam": solarBeam,
	"solarblade": solarBeam,
	"dig":       dig,
	"fly":       dig,
	"dive":      dig,
	"phantomforce": dig,
	"shadowforce": dig,
	"futuresight": futureSight,
	"doomdesire":  futureSight,

	// Item interaction.
	"knockoff":   knockOff,
	"thief":      thief,
	"covet":      thief,
	"trick":      trick,
	"switcheroo": trick,
	"fling":      fling,

	// One-hit knockout.
	"guillotine": ohko,
	"fissure":    ohko,
	"horndrill":  ohko,
	"sheercold":  ohko,

	// Delayed/field-wide utility.
	"wish":        wish,
	"rest":        rest,
	"mortalspin":  mortalSpin,
	"tidyup":      tidyUp,
	"defog":       defog,
	"courtchange": courtChange,
}

// Apply dispatches Move to its registry function, or to GenericDamagingEffect
// when it deals damage and has no named entry, or ErrMoveNotRegistered
// otherwise. This is the public entry point the turn engine calls once per
// acting Pokémon per hit (spec.md §4.3).
func Apply(ctx Context) ([]instructions.BattleInstructions, error) {
	if fn, ok := registry[ctx.Move]; ok {
		return fn(ctx)
	}
	if ctx.MoveData.BasePower > 0 {
		return GenericDamagingEffect(ctx)
	}
	return nil, ErrMoveNotRegistered
}
