package repository

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/ident"
)

// MoveRecord is the generation-independent shape of one move's catalogue
// entry, adapted from the Showdown move-data convention (original_source's
// showdown_types.rs MoveData) into Go idioms: named fields instead of a
// tagged secondary/self-effect union, and flags as a set rather than a
// bitfield struct.
type MoveRecord struct {
	ID       ident.MoveID `json:"id"`
	Name     string       `json:"name"`
	Num      int          `json:"num"`
	Type     ident.Type   `json:"type"`
	Category ident.MoveCategory `json:"category"`

	BasePower int `json:"basePower"`
	Accuracy  int `json:"accuracy"` // 0 means "never misses"
	PP        int `json:"pp"`
	Priority  int `json:"priority"`

	Target ident.TargetClass `json:"target"`
	Flags  map[string]bool   `json:"flags"`

	// Drain/Recoil/Heal are [numerator, denominator] fractions of damage
	// dealt (drain, recoil) or max HP (heal), matching the Showdown
	// convention the original Rust types carried forward verbatim.
	Drain  [2]int `json:"drain"`
	Recoil [2]int `json:"recoil"`
	Heal   [2]int `json:"heal"`

	Status        ident.MajorStatus `json:"status"`
	VolatileStatus ident.Volatile   `json:"volatileStatus"`
	HasVolatile   bool              `json:"hasVolatileStatus"`

	Secondary *SecondaryEffect `json:"secondary,omitempty"`
	Self      *SecondaryEffect `json:"self,omitempty"`

	OHKO           bool `json:"ohko"`
	ThawsTarget    bool `json:"thawsTarget"`
	ForceSwitch    bool `json:"forceSwitch"`
	SelfSwitch     bool `json:"selfSwitch"`
	BreaksProtect  bool `json:"breaksProtect"`
	IgnoreDefensive bool `json:"ignoreDefensive"`
	IgnoreEvasion   bool `json:"ignoreEvasion"`
	IgnoreImmunity  bool `json:"ignoreImmunity"`
	Multiaccuracy   bool `json:"multiaccuracy"`
	// MultiHit is [min, max] uses per invocation; [1,1] means a single hit.
	MultiHit          [2]int `json:"multihit"`
	NoDamageVariance  bool   `json:"noDamageVariance"`
	CritRatio         int    `json:"critRatio"`
	WillCrit          bool   `json:"willCrit"`

	Terrain ident.Terrain `json:"terrain"`
	Weather ident.Weather `json:"weather"`

	IsZ           bool `json:"isZ"`
	IsMax         bool `json:"isMax"`
	IsNonstandard bool `json:"isNonstandard"`

	ShortDesc string `json:"shortDesc"`
	Desc      string `json:"desc"`
}

// HasFlag reports whether the named move flag (contact, protect, sound,
// bullet, ...) is set.
func (m MoveRecord) HasFlag(name string) bool { return m.Flags[name] }

// SecondaryEffect describes a chance-triggered side effect attached to a
// move (its own "secondary" field) or the effect the move applies to its
// own user (its "self" field) — both share this shape in the Showdown
// convention, so one Go type covers both.
type SecondaryEffect struct {
	Chance         int               `json:"chance"` // percent, 0 means "always" when this struct is present at all
	Status         ident.MajorStatus `json:"status"`
	VolatileStatus ident.Volatile    `json:"volatileStatus"`
	HasVolatile    bool              `json:"hasVolatileStatus"`
	Boosts         map[ident.Stat]int `json:"boosts,omitempty"`
}

// PokemonRecord is one species' generation-independent catalogue entry:
// base stats, typing, legal abilities and the data needed to validate a
// team sheet against it.
type PokemonRecord struct {
	Species   ident.Species `json:"species"`
	Name      string        `json:"name"`
	Num       int           `json:"num"`
	Types     []ident.Type  `json:"types"`
	BaseStats battleStats   `json:"baseStats"`

	Abilities      []ident.Ability `json:"abilities"`      // slots 0,1 = regular, 2 = hidden if present
	HiddenAbility  bool            `json:"hasHiddenAbility"`

	Weight float64 `json:"weightkg"`

	NoTera bool `json:"noTera,omitempty"` // mechanically Tera-incapable (e.g. battle-only formes banning it)
}

// battleStats mirrors battle.BaseStats' field shape, decoded straight from
// the catalogue JSON; ToBaseStats converts it for callers building a
// battle.Pokemon.
type battleStats struct {
	HP, Atk, Def, SpA, SpD, Spe int
}

// ToBaseStats converts a catalogue record's stats into battle.BaseStats.
func (p PokemonRecord) ToBaseStats() battle.BaseStats {
	return battle.BaseStats{
		HP:  p.BaseStats.HP,
		Atk: p.BaseStats.Atk,
		Def: p.BaseStats.Def,
		SpA: p.BaseStats.SpA,
		SpD: p.BaseStats.SpD,
		Spe: p.BaseStats.Spe,
	}
}

// ItemRecord is one held item's catalogue entry.
type ItemRecord struct {
	Item ident.Item `json:"item"`
	Name string     `json:"name"`
	Num  int         `json:"num"`

	FlingPower int    `json:"flingPower"`
	IsBerry    bool   `json:"isBerry"`
	IsGem      bool   `json:"isGem"`
	NaturalGift struct {
		BasePower int        `json:"basePower"`
		Type      ident.Type `json:"type"`
	} `json:"naturalGift,omitempty"`

	Desc string `json:"desc"`
}

// AbilityRecord is one ability's catalogue entry. Ability *behavior* lives
// in pkg/hooks as compiled Go functions keyed by ident.Ability; this record
// only carries the display/meta data a team sheet or UI needs.
type AbilityRecord struct {
	Ability ident.Ability `json:"ability"`
	Name    string        `json:"name"`
	Num     int           `json:"num"`
	Desc    string        `json:"desc"`
}
