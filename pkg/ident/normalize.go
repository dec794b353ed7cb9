package ident

import "strings"

// Normalize lowercases s and strips every non-alphanumeric rune. It is the
// single normalization boundary for converting external display strings
// (Showdown-style JSON, user-typed team sheets) into interned tags; the core
// never compares entities by raw display name past this point.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			// punctuation, spaces, apostrophes, hyphens: dropped
		}
	}
	return b.String()
}

// Species is the interned tag for a Pokémon species. It is a normalized
// string rather than a compiled enum because the species catalogue is
// data-driven (loaded per-generation from the repository) and open-ended;
// equality on the normalized form gives the same integer-equality-like
// comparison semantics the design calls for without hand-maintaining an
// enumeration of every species across nine generations.
type Species string

// NewSpecies interns a raw display name into a Species tag.
func NewSpecies(raw string) Species { return Species(Normalize(raw)) }

// MoveID is the interned tag for a move.
type MoveID string

// NewMoveID interns a raw display name into a MoveID tag.
func NewMoveID(raw string) MoveID { return MoveID(Normalize(raw)) }

// Item is the interned tag for a held item.
type Item string

// NewItem interns a raw display name into an Item tag.
func NewItem(raw string) Item { return Item(Normalize(raw)) }

// Ability is the interned tag for an ability.
type Ability string

// NewAbility interns a raw display name into an Ability tag.
func NewAbility(raw string) Ability { return Ability(Normalize(raw)) }

// NoItem is the zero value meaning "holding nothing."
const NoItem Item = ""

// NoAbility is the zero value meaning "no ability assigned."
const NoAbility Ability = ""
