package battle

import "goldbox-rpg/pkg/ident"

// BaseStats are a species' unboosted base stat values, the ones loaded from
// the repository and combined with level/EVs/IVs to produce Stats.
type BaseStats struct {
	HP, Atk, Def, SpA, SpD, Spe int
}

// MoveSlot is one of a Pokémon's up to four known moves, with the current
// battle's PP tracking and any Disable/Taunt-style lockout applied to it.
type MoveSlot struct {
	ID       ident.MoveID
	Type     ident.Type
	Category ident.MoveCategory
	BasePower int
	Accuracy  int // 0 or negative means "cannot miss"
	Priority  int
	Target    ident.TargetClass
	PP        int
	MaxPP     int
	Disabled  bool // Disable/Torment/Choice-lock; PP exhaustion is PP==0
}

// VolatileInstance is one active volatile status and its remaining
// duration. Duration <= 0 means "no fixed duration" (stays until another
// effect clears it, e.g. Substitute, Leech Seed).
type VolatileInstance struct {
	Duration int
	// Data carries volatile-specific payload: the disabled move index for
	// VolatileDisable, the stored damage for a two-turn charge, the
	// confusion-hit counter, etc. Keeping this generic avoids a proliferation
	// of near-identical volatile structs for what is fundamentally the same
	// "active for N turns, then removed" shape.
	Data int
}

// Pokemon is a single battler: its species, stats, status, moves and
// held equipment (spec.md §3 "Pokémon entity").
type Pokemon struct {
	Species ident.Species
	Nickname string

	Level int
	HP    int
	MaxHP int

	Base  BaseStats
	Stats BaseStats // computed effective stats at current level, pre-stage

	Boosts [8]int // indexed by ident.Stat; HP index unused

	Status         ident.MajorStatus
	StatusDuration int // toxic counter for BadlyPoisoned, sleep counter for Sleep

	Volatiles map[ident.Volatile]*VolatileInstance

	Moves [4]MoveSlot

	Ability ident.Ability
	Item    ident.Item

	Types []ident.Type // length 1-2

	Gender string
	Weight float64

	TeraType       ident.Type
	Terastallized  bool

	SubstituteHP int

	// LastHit* record the most recent hit this Pokémon took, read back by
	// the Counter family (Counter/Mirror Coat/Metal Burst/Comeuppance) when
	// it acts later the same turn; LastHitTurn lets a reader tell a stale
	// value from a previous turn apart from "hit this turn."
	LastHitDamage   int
	LastHitCategory ident.MoveCategory
	LastHitTurn     int
}

// Fainted reports whether this Pokémon has 0 HP.
func (p *Pokemon) Fainted() bool { return p.HP <= 0 }

// Boost returns the current stage (-6..+6) for a stat.
func (p *Pokemon) Boost(s ident.Stat) int { return p.Boosts[s] }

// ClampBoost saturates a stat stage to the legal -6..+6 range.
func ClampBoost(v int) int {
	if v > 6 {
		return 6
	}
	if v < -6 {
		return -6
	}
	return v
}

// StageMultiplier converts a boost stage into the multiplier applied to the
// corresponding effective stat, per spec.md §4.2 step 3: stage s -> 2/(2-s)
// for s<0 else (2+s)/2. No caller applies accuracy/evasion stages; the damage
// calculator special-cases critical hits separately.
func StageMultiplier(stage int) float64 {
	stage = ClampBoost(stage)
	if stage < 0 {
		return 2.0 / (2.0 - float64(stage))
	}
	return (2.0 + float64(stage)) / 2.0
}

// HasVolatile reports whether the named volatile is currently active.
func (p *Pokemon) HasVolatile(v ident.Volatile) bool {
	_, ok := p.Volatiles[v]
	return ok
}

// HasType reports whether this Pokémon currently has the given type,
// accounting for Terastallization (a Terastallized Pokémon's only type is
// its tera type, per Gen 9 rules).
func (p *Pokemon) HasType(t ident.Type) bool {
	if p.Terastallized {
		return p.TeraType == t
	}
	for _, x := range p.Types {
		if x == t {
			return true
		}
	}
	return false
}

// EffectiveTypes returns the type list used for type-chart lookups right
// now: the tera type alone when Terastallized, else the original list.
func (p *Pokemon) EffectiveTypes() []ident.Type {
	if p.Terastallized {
		return []ident.Type{p.TeraType}
	}
	return p.Types
}

// EffectiveStat computes the in-battle value of one of the six core stats,
// applying the current stage multiplier and status-based adjustments
// (paralysis Speed halving, burn-on-Guts Attack is handled by the damage
// calculator since it depends on the move being used).
func (p *Pokemon) EffectiveStat(s ident.Stat) float64 {
	var base int
	switch s {
	case ident.StatAtk:
		base = p.Stats.Atk
	case ident.StatDef:
		base = p.Stats.Def
	case ident.StatSpA:
		base = p.Stats.SpA
	case ident.StatSpD:
		base = p.Stats.SpD
	case ident.StatSpe:
		base = p.Stats.Spe
	default:
		base = p.Stats.HP
	}
	value := float64(base) * StageMultiplier(p.Boosts[s])
	if s == ident.StatSpe && p.Status == ident.StatusParalyze {
		value *= 0.5
	}
	return value
}

// Clone deep-copies a Pokémon so a branch can mutate it without affecting
// siblings cloned from the same parent state.
func (p *Pokemon) Clone() *Pokemon {
	cp := *p
	cp.Types = append([]ident.Type(nil), p.Types...)
	cp.Moves = p.Moves
	if p.Volatiles != nil {
		cp.Volatiles = make(map[ident.Volatile]*VolatileInstance, len(p.Volatiles))
		for k, v := range p.Volatiles {
			copied := *v
			cp.Volatiles[k] = &copied
		}
	}
	return &cp
}
